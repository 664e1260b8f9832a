package models

// LeagueType defines the kinds of competitions a league can run
type LeagueType string

const (
	LeagueTypeRegular LeagueType = "regular"
	LeagueTypeCup     LeagueType = "cup"
)

// IsValid checks if the LeagueType is valid
func (t LeagueType) IsValid() bool {
	switch t {
	case LeagueTypeRegular, LeagueTypeCup:
		return true
	}
	return false
}

// MatchStatus is the lifecycle state of a match.
// NotStarted is initial, InProgress is entered by an explicit start action,
// Finished is terminal and only ever set by the scoring pipeline.
type MatchStatus string

const (
	MatchStatusNotStarted MatchStatus = "Not Started"
	MatchStatusInProgress MatchStatus = "In Progress"
	MatchStatusFinished   MatchStatus = "Finished"
)

// IsValid checks if the MatchStatus is valid
func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchStatusNotStarted, MatchStatusInProgress, MatchStatusFinished:
		return true
	}
	return false
}

// SegmentKind distinguishes singles from doubles segments
type SegmentKind string

const (
	SegmentKindSingles SegmentKind = "singles"
	SegmentKindDoubles SegmentKind = "doubles"
)

// SegmentType identifies one of the seven sub-games of a match
type SegmentType string

const (
	SegmentTypeD1 SegmentType = "D1"
	SegmentTypeD2 SegmentType = "D2"
	SegmentTypeS1 SegmentType = "S1"
	SegmentTypeD3 SegmentType = "D3"
	SegmentTypeS2 SegmentType = "S2"
	SegmentTypeD4 SegmentType = "D4"
	SegmentTypeD5 SegmentType = "D5"
)

// segmentOrder is the fixed tie format: segment numbers 1..7 map to these
// types in this exact order. Do not reorder.
var segmentOrder = [SegmentsPerMatch]SegmentType{
	SegmentTypeD1,
	SegmentTypeD2,
	SegmentTypeS1,
	SegmentTypeD3,
	SegmentTypeS2,
	SegmentTypeD4,
	SegmentTypeD5,
}

// segmentDefs resolves kind and participation group per type once, at
// definition time, instead of sniffing the "S"/"D" name prefix.
var segmentDefs = map[SegmentType]struct {
	Kind  SegmentKind
	Group int
}{
	SegmentTypeD1: {SegmentKindDoubles, 1},
	SegmentTypeD2: {SegmentKindDoubles, 1},
	SegmentTypeS1: {SegmentKindSingles, 2},
	SegmentTypeD3: {SegmentKindDoubles, 2},
	SegmentTypeS2: {SegmentKindSingles, 2},
	SegmentTypeD4: {SegmentKindDoubles, 3},
	SegmentTypeD5: {SegmentKindDoubles, 3},
}

// SegmentTypeOrder returns the seven segment types in play order,
// index 0 corresponding to segment number 1.
func SegmentTypeOrder() [SegmentsPerMatch]SegmentType {
	return segmentOrder
}

// Kind returns whether the segment is singles or doubles
func (t SegmentType) Kind() SegmentKind {
	return segmentDefs[t].Kind
}

// ParticipationGroup returns the exclusivity group (1..3) the segment
// belongs to. A player may appear in at most one segment per group,
// per match and side.
func (t SegmentType) ParticipationGroup() int {
	return segmentDefs[t].Group
}

// IsValid checks if the SegmentType is valid
func (t SegmentType) IsValid() bool {
	_, ok := segmentDefs[t]
	return ok
}
