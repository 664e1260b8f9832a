package models

import (
	"github.com/google/uuid"
)

// StandingsRow is one team's statistics snapshot as of a specific match
// day. Rows are immutable once written; each round's table is a fresh
// snapshot chained from the previous round's rows. Points and goal
// difference are derived on read so they can never drift from the
// stored counters.
type StandingsRow struct {
	BaseModel
	TeamID       uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_standings_team_match_day" validate:"required"`
	MatchDayID   uuid.UUID `json:"match_day_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_standings_team_match_day" validate:"required"`
	Played       int       `json:"played" gorm:"not null;default:0"`
	Wins         int       `json:"wins" gorm:"not null;default:0"`
	Draws        int       `json:"draws" gorm:"not null;default:0"`
	Losses       int       `json:"losses" gorm:"not null;default:0"`
	GoalsFor     int       `json:"goals_for" gorm:"not null;default:0"`
	GoalsAgainst int       `json:"goals_against" gorm:"not null;default:0"`
	Position     *int      `json:"position,omitempty"`

	// Relationships
	Team     Team     `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	MatchDay MatchDay `json:"match_day,omitempty" gorm:"foreignKey:MatchDayID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for StandingsRow
func (StandingsRow) TableName() string {
	return "standings_rows"
}

// Points derives league points: three per win, one per draw
func (r *StandingsRow) Points() int {
	return r.Wins*3 + r.Draws
}

// GoalDifference derives goals for minus goals against
func (r *StandingsRow) GoalDifference() int {
	return r.GoalsFor - r.GoalsAgainst
}
