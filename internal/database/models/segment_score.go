package models

import (
	"github.com/google/uuid"
)

// MaxSegmentScore is the most points a single segment can contribute to a
// side's total. The cap is enforced cumulatively: through segment k a
// side's total may not exceed k * MaxSegmentScore.
const MaxSegmentScore = 7

// SegmentScore is one of the seven ordered sub-games of a match. Scores
// are optional until played; lineups are per-side player sets.
type SegmentScore struct {
	BaseModel
	MatchID       uuid.UUID   `json:"match_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_segment_scores_match_number" validate:"required"`
	SegmentNumber int         `json:"segment_number" gorm:"not null;uniqueIndex:idx_segment_scores_match_number" validate:"required,min=1,max=7"`
	SegmentType   SegmentType `json:"segment_type" gorm:"type:varchar(2);not null" validate:"required"`
	HomeScore     *int        `json:"home_score,omitempty"`
	AwayScore     *int        `json:"away_score,omitempty"`

	// Relationships
	Match       Match    `json:"match,omitempty" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
	HomePlayers []Player `json:"home_players,omitempty" gorm:"many2many:segment_home_players"`
	AwayPlayers []Player `json:"away_players,omitempty" gorm:"many2many:segment_away_players"`
}

// TableName returns the table name for SegmentScore
func (SegmentScore) TableName() string {
	return "segment_scores"
}

// Scored reports whether both sides have a score recorded
func (s *SegmentScore) Scored() bool {
	return s.HomeScore != nil && s.AwayScore != nil
}
