package repository

import (
	"league-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SegmentScoreRepository handles database operations for segment scores
type SegmentScoreRepository struct {
	db *gorm.DB
}

// NewSegmentScoreRepository creates a new segment score repository
func NewSegmentScoreRepository(db *gorm.DB) *SegmentScoreRepository {
	return &SegmentScoreRepository{db: db}
}

// GetByMatchAndNumber retrieves one segment of a match with its lineups
func (r *SegmentScoreRepository) GetByMatchAndNumber(matchID uuid.UUID, segmentNumber int) (*models.SegmentScore, error) {
	var segment models.SegmentScore
	err := r.db.
		Preload("HomePlayers").
		Preload("AwayPlayers").
		First(&segment, "match_id = ? AND segment_number = ?", matchID, segmentNumber).Error
	if err != nil {
		return nil, err
	}
	return &segment, nil
}

// GetByMatchID retrieves all segments of a match in play order with lineups
func (r *SegmentScoreRepository) GetByMatchID(matchID uuid.UUID) ([]models.SegmentScore, error) {
	var segments []models.SegmentScore
	err := r.db.
		Where("match_id = ?", matchID).
		Order("segment_number").
		Preload("HomePlayers").
		Preload("AwayPlayers").
		Find(&segments).Error
	if err != nil {
		return nil, err
	}
	return segments, nil
}

// UpdateScore persists a segment's scores and replaces both lineups in one
// transaction, so a rejected write never applies partially.
func (r *SegmentScoreRepository) UpdateScore(segment *models.SegmentScore, homePlayers, awayPlayers []models.Player) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(segment).Select("HomeScore", "AwayScore").Updates(map[string]interface{}{
			"home_score": segment.HomeScore,
			"away_score": segment.AwayScore,
		}).Error; err != nil {
			return err
		}
		if err := tx.Model(segment).Association("HomePlayers").Replace(playersToInterfaces(homePlayers)...); err != nil {
			return err
		}
		if err := tx.Model(segment).Association("AwayPlayers").Replace(playersToInterfaces(awayPlayers)...); err != nil {
			return err
		}
		return nil
	})
}

func playersToInterfaces(players []models.Player) []interface{} {
	out := make([]interface{}, len(players))
	for i := range players {
		out[i] = &players[i]
	}
	return out
}
