package repository

import (
	"league-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VenueRepository handles database operations for venues
type VenueRepository struct {
	db *gorm.DB
}

// NewVenueRepository creates a new venue repository
func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

// Create creates a new venue
func (r *VenueRepository) Create(venue *models.Venue) error {
	return r.db.Create(venue).Error
}

// GetByID retrieves a venue by ID
func (r *VenueRepository) GetByID(id uuid.UUID) (*models.Venue, error) {
	var venue models.Venue
	err := r.db.First(&venue, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

// GetAll retrieves all venues with pagination
func (r *VenueRepository) GetAll(limit, offset int) ([]models.Venue, int64, error) {
	var venues []models.Venue
	var total int64

	if err := r.db.Model(&models.Venue{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name").Limit(limit).Offset(offset).Find(&venues).Error
	if err != nil {
		return nil, 0, err
	}

	return venues, total, nil
}

// Update updates a venue
func (r *VenueRepository) Update(venue *models.Venue) error {
	return r.db.Save(venue).Error
}

// Delete deletes a venue
func (r *VenueRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Venue{}, "id = ?", id).Error
}
