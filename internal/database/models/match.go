package models

import (
	"time"

	"github.com/google/uuid"
)

// SegmentsPerMatch is the number of sub-games composing a match.
const SegmentsPerMatch = 7

// MaxMatchScore is the total a side can reach; a tie ends at 49 points,
// with 48-48 as the recognized deadlock.
const MaxMatchScore = 49

// Match is a fixture between two teams within a match day. Its seven
// SegmentScore rows are created with it and its totals are derived from
// them, never stored.
type Match struct {
	BaseModel
	MatchDayID uuid.UUID   `json:"match_day_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_matches_day_home_away" validate:"required"`
	HomeTeamID uuid.UUID   `json:"home_team_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_matches_day_home_away" validate:"required"`
	AwayTeamID uuid.UUID   `json:"away_team_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_matches_day_home_away" validate:"required"`
	Date       time.Time   `json:"date" gorm:"type:date;not null" validate:"required"`
	Status     MatchStatus `json:"status" gorm:"type:varchar(20);not null;default:'Not Started'"`

	// Relationships
	MatchDay MatchDay       `json:"match_day,omitempty" gorm:"foreignKey:MatchDayID;constraint:OnDelete:CASCADE"`
	HomeTeam Team           `json:"home_team,omitempty" gorm:"foreignKey:HomeTeamID;constraint:OnDelete:CASCADE"`
	AwayTeam Team           `json:"away_team,omitempty" gorm:"foreignKey:AwayTeamID;constraint:OnDelete:CASCADE"`
	Segments []SegmentScore `json:"segments,omitempty" gorm:"foreignKey:MatchID"`
}

// TableName returns the table name for Match
func (Match) TableName() string {
	return "matches"
}

// Score returns the derived totals, summed over loaded segments.
// Both are nil while the match has not started.
func (m *Match) Score() (home, away *int) {
	if m.Status == MatchStatusNotStarted {
		return nil, nil
	}
	var h, a int
	for i := range m.Segments {
		if m.Segments[i].HomeScore != nil {
			h += *m.Segments[i].HomeScore
		}
		if m.Segments[i].AwayScore != nil {
			a += *m.Segments[i].AwayScore
		}
	}
	return &h, &a
}
