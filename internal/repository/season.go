package repository

import (
	"league-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeasonRepository handles database operations for seasons
type SeasonRepository struct {
	db *gorm.DB
}

// NewSeasonRepository creates a new season repository
func NewSeasonRepository(db *gorm.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

// Create creates a new season
func (r *SeasonRepository) Create(season *models.Season) error {
	return r.db.Create(season).Error
}

// GetByID retrieves a season by ID with its league
func (r *SeasonRepository) GetByID(id uuid.UUID) (*models.Season, error) {
	var season models.Season
	err := r.db.Preload("League").First(&season, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &season, nil
}

// GetAll retrieves all seasons with pagination, most recent first
func (r *SeasonRepository) GetAll(limit, offset int) ([]models.Season, int64, error) {
	var seasons []models.Season
	var total int64

	if err := r.db.Model(&models.Season{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("League").Order("year DESC").Limit(limit).Offset(offset).Find(&seasons).Error
	if err != nil {
		return nil, 0, err
	}

	return seasons, total, nil
}

// GetByLeagueAndYear retrieves a season by its unique (league, year) pair
func (r *SeasonRepository) GetByLeagueAndYear(leagueID uuid.UUID, year int) (*models.Season, error) {
	var season models.Season
	err := r.db.First(&season, "league_id = ? AND year = ?", leagueID, year).Error
	if err != nil {
		return nil, err
	}
	return &season, nil
}

// GetByLeagueID retrieves all seasons of a league, most recent first
func (r *SeasonRepository) GetByLeagueID(leagueID uuid.UUID) ([]models.Season, error) {
	var seasons []models.Season
	err := r.db.Where("league_id = ?", leagueID).Order("year DESC").Find(&seasons).Error
	if err != nil {
		return nil, err
	}
	return seasons, nil
}

// GetActiveByType retrieves the active season for a league type
func (r *SeasonRepository) GetActiveByType(leagueType models.LeagueType) (*models.Season, error) {
	var season models.Season
	err := r.db.
		Joins("JOIN leagues ON seasons.league_id = leagues.id").
		Where("seasons.active = ? AND leagues.type = ?", true, leagueType).
		Preload("League").
		First(&season).Error
	if err != nil {
		return nil, err
	}
	return &season, nil
}

// Update updates a season
func (r *SeasonRepository) Update(season *models.Season) error {
	return r.db.Save(season).Error
}

// Delete deletes a season
func (r *SeasonRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Season{}, "id = ?", id).Error
}
