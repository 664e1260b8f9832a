package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchDay is one round of a season: a set of fixtures sharing a round
// number and date. Round numbers are unique and increase across the season.
type MatchDay struct {
	BaseModel
	SeasonID    uuid.UUID `json:"season_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_match_days_season_round" validate:"required"`
	RoundNumber int       `json:"round_number" gorm:"not null;uniqueIndex:idx_match_days_season_round" validate:"required,min=1"`
	Date        time.Time `json:"date" gorm:"type:date;not null;index" validate:"required"`

	// Relationships
	Season  Season  `json:"season,omitempty" gorm:"foreignKey:SeasonID;constraint:OnDelete:CASCADE"`
	Matches []Match `json:"matches,omitempty" gorm:"foreignKey:MatchDayID"`
}

// TableName returns the table name for MatchDay
func (MatchDay) TableName() string {
	return "match_days"
}

// Completed reports whether every match of the round has finished.
// Requires Matches to be loaded; a round with no matches counts as completed.
func (d *MatchDay) Completed() bool {
	for i := range d.Matches {
		if d.Matches[i].Status != MatchStatusFinished {
			return false
		}
	}
	return true
}
