package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Season is one edition of a league, identified by its starting year.
// Participating teams are attached through SeasonTeam roster entries.
type Season struct {
	BaseModel
	LeagueID uuid.UUID `json:"league_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_seasons_league_year" validate:"required"`
	Year     int       `json:"year" gorm:"not null;uniqueIndex:idx_seasons_league_year" validate:"required,min=1900,max=2200"`
	Active   bool      `json:"active" gorm:"default:false"`

	// Relationships
	League      League      `json:"league,omitempty" gorm:"foreignKey:LeagueID;constraint:OnDelete:CASCADE"`
	SeasonTeams []SeasonTeam `json:"season_teams,omitempty" gorm:"foreignKey:SeasonID"`
	MatchDays   []MatchDay  `json:"match_days,omitempty" gorm:"foreignKey:SeasonID"`
}

// TableName returns the table name for Season
func (Season) TableName() string {
	return "seasons"
}

// Label renders the season the way fixtures and logs refer to it,
// e.g. "Premier 2024/2025".
func (s *Season) Label() string {
	return fmt.Sprintf("%s %d/%d", s.League.Name, s.Year, s.Year+1)
}
