package repository

import (
	"league-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchRepository handles database operations for matches
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// CreateWithSegments creates a match and its seven segment score rows in
// one transaction. A match never exists without its full segment set.
func (r *MatchRepository) CreateWithSegments(match *models.Match) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(match).Error; err != nil {
			return err
		}
		order := models.SegmentTypeOrder()
		for i, segmentType := range order {
			segment := models.SegmentScore{
				MatchID:       match.ID,
				SegmentNumber: i + 1,
				SegmentType:   segmentType,
			}
			if err := tx.Create(&segment).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a match by ID with its teams
func (r *MatchRepository) GetByID(id uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := r.db.Preload("HomeTeam").Preload("AwayTeam").First(&match, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// GetWithSegments retrieves a match with segments in play order,
// including segment lineups
func (r *MatchRepository) GetWithSegments(id uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := r.db.
		Preload("HomeTeam").
		Preload("AwayTeam").
		Preload("Segments", func(db *gorm.DB) *gorm.DB {
			return db.Order("segment_scores.segment_number")
		}).
		Preload("Segments.HomePlayers").
		Preload("Segments.AwayPlayers").
		First(&match, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// GetByMatchDayID retrieves all matches of a match day
func (r *MatchRepository) GetByMatchDayID(matchDayID uuid.UUID) ([]models.Match, error) {
	var matches []models.Match
	err := r.db.
		Where("match_day_id = ?", matchDayID).
		Preload("HomeTeam").
		Preload("AwayTeam").
		Preload("Segments").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// GetFinishedByMatchDayID retrieves the finished matches of a match day
// with their segments loaded, so derived totals can be computed
func (r *MatchRepository) GetFinishedByMatchDayID(matchDayID uuid.UUID) ([]models.Match, error) {
	var matches []models.Match
	err := r.db.
		Where("match_day_id = ? AND status = ?", matchDayID, models.MatchStatusFinished).
		Preload("Segments").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// UpdateStatus sets the status of a match
func (r *MatchRepository) UpdateStatus(matchID uuid.UUID, status models.MatchStatus) error {
	return r.db.Model(&models.Match{}).Where("id = ?", matchID).Update("status", status).Error
}
