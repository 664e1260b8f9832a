package models

import "fmt"

// Player is an individual registered with the league. Team membership is
// per season, through SeasonTeam rosters.
type Player struct {
	BaseModel
	FirstName string `json:"first_name" gorm:"size:50;not null" validate:"required,min=1,max=50"`
	LastName  string `json:"last_name" gorm:"size:50;not null" validate:"required,min=1,max=50"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}

// FullName returns the player's display name
func (p *Player) FullName() string {
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}
