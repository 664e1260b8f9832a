package repository

import (
	"league-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeasonTeamRepository handles database operations for season rosters
type SeasonTeamRepository struct {
	db *gorm.DB
}

// NewSeasonTeamRepository creates a new season team repository
func NewSeasonTeamRepository(db *gorm.DB) *SeasonTeamRepository {
	return &SeasonTeamRepository{db: db}
}

// Create creates a new season roster entry
func (r *SeasonTeamRepository) Create(seasonTeam *models.SeasonTeam) error {
	return r.db.Create(seasonTeam).Error
}

// GetByID retrieves a roster entry by ID
func (r *SeasonTeamRepository) GetByID(id uuid.UUID) (*models.SeasonTeam, error) {
	var seasonTeam models.SeasonTeam
	err := r.db.Preload("Team").First(&seasonTeam, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &seasonTeam, nil
}

// GetBySeasonID retrieves a season's roster entries ordered by team name.
// The ordering is load-bearing: the fixture scheduler derives its rotation
// from this order.
func (r *SeasonTeamRepository) GetBySeasonID(seasonID uuid.UUID) ([]models.SeasonTeam, error) {
	var seasonTeams []models.SeasonTeam
	err := r.db.
		Joins("JOIN teams ON season_teams.team_id = teams.id").
		Where("season_teams.season_id = ?", seasonID).
		Order("teams.name").
		Preload("Team").
		Find(&seasonTeams).Error
	if err != nil {
		return nil, err
	}
	return seasonTeams, nil
}

// GetBySeasonAndTeam retrieves the roster entry for a (season, team) pair
func (r *SeasonTeamRepository) GetBySeasonAndTeam(seasonID, teamID uuid.UUID) (*models.SeasonTeam, error) {
	var seasonTeam models.SeasonTeam
	err := r.db.Preload("Team").First(&seasonTeam, "season_id = ? AND team_id = ?", seasonID, teamID).Error
	if err != nil {
		return nil, err
	}
	return &seasonTeam, nil
}

// GetWithPlayers retrieves a roster entry with its player list
func (r *SeasonTeamRepository) GetWithPlayers(id uuid.UUID) (*models.SeasonTeam, error) {
	var seasonTeam models.SeasonTeam
	err := r.db.Preload("Team").Preload("Players", func(db *gorm.DB) *gorm.DB {
		return db.Order("players.last_name, players.first_name")
	}).First(&seasonTeam, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &seasonTeam, nil
}

// AddPlayer appends a player to the roster
func (r *SeasonTeamRepository) AddPlayer(seasonTeamID, playerID uuid.UUID) error {
	seasonTeam := models.SeasonTeam{BaseModel: models.BaseModel{ID: seasonTeamID}}
	player := models.Player{BaseModel: models.BaseModel{ID: playerID}}
	return r.db.Model(&seasonTeam).Association("Players").Append(&player)
}

// RemovePlayer removes a player from the roster
func (r *SeasonTeamRepository) RemovePlayer(seasonTeamID, playerID uuid.UUID) error {
	seasonTeam := models.SeasonTeam{BaseModel: models.BaseModel{ID: seasonTeamID}}
	player := models.Player{BaseModel: models.BaseModel{ID: playerID}}
	return r.db.Model(&seasonTeam).Association("Players").Delete(&player)
}

// PlayerInSeason reports whether the player already belongs to any roster
// of the season
func (r *SeasonTeamRepository) PlayerInSeason(seasonID, playerID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.SeasonTeam{}).
		Joins("JOIN season_team_players ON season_team_players.season_team_id = season_teams.id").
		Where("season_teams.season_id = ? AND season_team_players.player_id = ?", seasonID, playerID).
		Count(&count).Error
	return count > 0, err
}

// Delete deletes a roster entry
func (r *SeasonTeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.SeasonTeam{}, "id = ?", id).Error
}
