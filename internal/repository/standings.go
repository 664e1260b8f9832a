package repository

import (
	"league-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StandingsRepository handles database operations for standings rows
type StandingsRepository struct {
	db *gorm.DB
}

// NewStandingsRepository creates a new standings repository
func NewStandingsRepository(db *gorm.DB) *StandingsRepository {
	return &StandingsRepository{db: db}
}

// Create inserts a fresh standings row. The (team, match_day) unique index
// rejects duplicates, which keeps retried advancement runs from doubling rows.
func (r *StandingsRepository) Create(row *models.StandingsRow) error {
	return r.db.Create(row).Error
}

// GetByMatchDayID retrieves all rows of a match day's table with teams loaded
func (r *StandingsRepository) GetByMatchDayID(matchDayID uuid.UUID) ([]models.StandingsRow, error) {
	var rows []models.StandingsRow
	err := r.db.
		Where("match_day_id = ?", matchDayID).
		Preload("Team").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ExistsForMatchDay reports whether any standings rows exist for the match day
func (r *StandingsRepository) ExistsForMatchDay(matchDayID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.StandingsRow{}).Where("match_day_id = ?", matchDayID).Count(&count).Error
	return count > 0, err
}

// SetPosition stores the computed rank of a row
func (r *StandingsRepository) SetPosition(rowID uuid.UUID, position int) error {
	return r.db.Model(&models.StandingsRow{}).Where("id = ?", rowID).Update("position", position).Error
}
