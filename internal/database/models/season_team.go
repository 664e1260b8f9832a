package models

import (
	"github.com/google/uuid"
)

// SeasonTeam binds a team to a season and carries the team's player
// roster for that season. A team appears at most once per season.
type SeasonTeam struct {
	BaseModel
	SeasonID uuid.UUID `json:"season_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_season_teams_season_team" validate:"required"`
	TeamID   uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_season_teams_season_team" validate:"required"`

	// Relationships
	Season  Season   `json:"season,omitempty" gorm:"foreignKey:SeasonID;constraint:OnDelete:CASCADE"`
	Team    Team     `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Players []Player `json:"players,omitempty" gorm:"many2many:season_team_players"`
}

// TableName returns the table name for SeasonTeam
func (SeasonTeam) TableName() string {
	return "season_teams"
}
