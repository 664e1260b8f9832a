package models

import (
	"github.com/google/uuid"
)

// Team represents a club side. Teams are owned by the league and are
// referenced, never owned, by matches.
type Team struct {
	BaseModel
	Name    string     `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Manager string     `json:"manager" gorm:"size:100" validate:"max=100"`
	VenueID *uuid.UUID `json:"venue_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Venue *Venue `json:"venue,omitempty" gorm:"foreignKey:VenueID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
