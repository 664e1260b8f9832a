package models

// Venue is a playing hall a team calls home
type Venue struct {
	BaseModel
	Name    string `json:"name" gorm:"size:255;not null" validate:"required,min=1,max=255"`
	City    string `json:"city" gorm:"size:255;not null" validate:"required,min=1,max=255"`
	Address string `json:"address" gorm:"size:255" validate:"max=255"`
}

// TableName returns the table name for Venue
func (Venue) TableName() string {
	return "venues"
}
