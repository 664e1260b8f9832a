package repository

import (
	"errors"
	"time"

	"league-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchDayRepository handles database operations for match days
type MatchDayRepository struct {
	db *gorm.DB
}

// NewMatchDayRepository creates a new match day repository
func NewMatchDayRepository(db *gorm.DB) *MatchDayRepository {
	return &MatchDayRepository{db: db}
}

// GetOrCreate returns the existing match day for (season, round, date) or
// creates it, so schedule generation can be re-run without duplicating rounds.
func (r *MatchDayRepository) GetOrCreate(seasonID uuid.UUID, roundNumber int, date time.Time) (*models.MatchDay, error) {
	var matchDay models.MatchDay
	err := r.db.First(&matchDay, "season_id = ? AND round_number = ? AND date = ?", seasonID, roundNumber, date).Error
	if err == nil {
		return &matchDay, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	matchDay = models.MatchDay{
		SeasonID:    seasonID,
		RoundNumber: roundNumber,
		Date:        date,
	}
	if err := r.db.Create(&matchDay).Error; err != nil {
		return nil, err
	}
	return &matchDay, nil
}

// GetByID retrieves a match day by ID
func (r *MatchDayRepository) GetByID(id uuid.UUID) (*models.MatchDay, error) {
	var matchDay models.MatchDay
	err := r.db.First(&matchDay, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &matchDay, nil
}

// GetWithMatches retrieves a match day with its matches and their teams
func (r *MatchDayRepository) GetWithMatches(id uuid.UUID) (*models.MatchDay, error) {
	var matchDay models.MatchDay
	err := r.db.
		Preload("Matches").
		Preload("Matches.HomeTeam").
		Preload("Matches.AwayTeam").
		Preload("Matches.Segments").
		First(&matchDay, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &matchDay, nil
}

// GetBySeasonID retrieves all match days of a season in round order
func (r *MatchDayRepository) GetBySeasonID(seasonID uuid.UUID) ([]models.MatchDay, error) {
	var matchDays []models.MatchDay
	err := r.db.Where("season_id = ?", seasonID).Order("round_number").Find(&matchDays).Error
	if err != nil {
		return nil, err
	}
	return matchDays, nil
}

// GetPrevious retrieves the match day with the highest round number
// strictly below the given one for the same season. Returns (nil, nil)
// when there is none: round 1 starts from an empty baseline.
func (r *MatchDayRepository) GetPrevious(seasonID uuid.UUID, roundNumber int) (*models.MatchDay, error) {
	var matchDay models.MatchDay
	err := r.db.
		Where("season_id = ? AND round_number < ?", seasonID, roundNumber).
		Order("round_number DESC").
		First(&matchDay).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &matchDay, nil
}

// Delete deletes a match day
func (r *MatchDayRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MatchDay{}, "id = ?", id).Error
}
