package models

// League represents a competition run by the association
type League struct {
	BaseModel
	Name string     `json:"name" gorm:"size:255;not null" validate:"required,min=1,max=255"`
	Type LeagueType `json:"type" gorm:"type:varchar(20);not null" validate:"required"`

	// Relationships
	Seasons []Season `json:"seasons,omitempty" gorm:"foreignKey:LeagueID"`
}

// TableName returns the table name for League
func (League) TableName() string {
	return "leagues"
}
