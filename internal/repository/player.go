package repository

import (
	"errors"

	"league-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerRepository handles database operations for players
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create creates a new player
func (r *PlayerRepository) Create(player *models.Player) error {
	return r.db.Create(player).Error
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(id uuid.UUID) (*models.Player, error) {
	var player models.Player
	err := r.db.First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetByIDs retrieves players by a set of IDs
func (r *PlayerRepository) GetByIDs(ids []uuid.UUID) ([]models.Player, error) {
	if len(ids) == 0 {
		return []models.Player{}, nil
	}
	var players []models.Player
	err := r.db.Where("id IN ?", ids).Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// GetAll retrieves all players ordered by last name with pagination
func (r *PlayerRepository) GetAll(limit, offset int) ([]models.Player, int64, error) {
	var players []models.Player
	var total int64

	if err := r.db.Model(&models.Player{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("last_name, first_name").Limit(limit).Offset(offset).Find(&players).Error
	if err != nil {
		return nil, 0, err
	}

	return players, total, nil
}

// Search searches players by first or last name
func (r *PlayerRepository) Search(query string, limit, offset int) ([]models.Player, int64, error) {
	var players []models.Player
	var total int64

	searchQuery := r.db.Model(&models.Player{}).
		Where("first_name ILIKE ? OR last_name ILIKE ?", "%"+query+"%", "%"+query+"%")

	if err := searchQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := searchQuery.Order("last_name, first_name").Limit(limit).Offset(offset).Find(&players).Error
	if err != nil {
		return nil, 0, err
	}

	return players, total, nil
}

// GetCurrentTeam resolves the team a player is rostered with for a season.
// Returns gorm.ErrRecordNotFound when the player has no roster entry.
func (r *PlayerRepository) GetCurrentTeam(seasonID, playerID uuid.UUID) (*models.Team, error) {
	var seasonTeam models.SeasonTeam
	err := r.db.
		Joins("JOIN season_team_players ON season_team_players.season_team_id = season_teams.id").
		Where("season_teams.season_id = ? AND season_team_players.player_id = ?", seasonID, playerID).
		Preload("Team").
		First(&seasonTeam).Error
	if err != nil {
		return nil, err
	}
	if seasonTeam.Team.ID == uuid.Nil {
		return nil, errors.New("roster entry has no team loaded")
	}
	return &seasonTeam.Team, nil
}

// Update updates a player
func (r *PlayerRepository) Update(player *models.Player) error {
	return r.db.Save(player).Error
}

// Delete deletes a player
func (r *PlayerRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Player{}, "id = ?", id).Error
}
