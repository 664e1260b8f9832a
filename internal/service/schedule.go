package service

import (
	"fmt"
	"time"

	"league-manager-backend/internal/database/models"
	apperrors "league-manager-backend/internal/errors"
	"league-manager-backend/internal/logger"
	"league-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ScheduleService generates a season's fixture list
type ScheduleService struct {
	seasonRepo     repository.SeasonRepositoryInterface
	seasonTeamRepo repository.SeasonTeamRepositoryInterface
	matchDayRepo   repository.MatchDayRepositoryInterface
	matchRepo      repository.MatchRepositoryInterface
	validator      *validator.Validate
	log            *logger.Logger
}

// Ensure ScheduleService implements ScheduleServiceInterface
var _ ScheduleServiceInterface = (*ScheduleService)(nil)

// NewScheduleService creates a new ScheduleService
func NewScheduleService(
	seasonRepo repository.SeasonRepositoryInterface,
	seasonTeamRepo repository.SeasonTeamRepositoryInterface,
	matchDayRepo repository.MatchDayRepositoryInterface,
	matchRepo repository.MatchRepositoryInterface,
	validator *validator.Validate,
	log *logger.Logger,
) *ScheduleService {
	return &ScheduleService{
		seasonRepo:     seasonRepo,
		seasonTeamRepo: seasonTeamRepo,
		matchDayRepo:   matchDayRepo,
		matchRepo:      matchRepo,
		validator:      validator,
		log:            log,
	}
}

// GenerateScheduleRequest represents the payload for generating a
// season's fixtures
type GenerateScheduleRequest struct {
	StartDate    string `json:"start_date" validate:"required"`
	IntervalDays int    `json:"interval_days" validate:"required,min=1"`
}

// GenerateScheduleResponse reports the outcome of schedule generation
type GenerateScheduleResponse struct {
	Message        string `json:"message"`
	Rounds         int    `json:"rounds"`
	MatchesCreated int    `json:"matches_created"`
}

// GenerateSchedule builds a full double round-robin for the season:
// one match day per round, one match with its seven segments per
// pairing. With fewer than two entered teams nothing is generated and
// the response says so instead of failing.
func (s *ScheduleService) GenerateSchedule(seasonID uuid.UUID, req *GenerateScheduleRequest) (*GenerateScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("start_date", "must be a date in YYYY-MM-DD format")
	}

	season, err := s.seasonRepo.GetByID(seasonID)
	if err != nil {
		return nil, apperrors.ErrSeasonNotFound
	}

	seasonTeams, err := s.seasonTeamRepo.GetBySeasonID(seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get season teams: %w", err)
	}
	if len(seasonTeams) < 2 {
		return &GenerateScheduleResponse{
			Message: fmt.Sprintf("Season %s has insufficient teams.", season.Label()),
		}, nil
	}

	// Rotation order follows roster order as returned by the repository
	teamIDs := make([]uuid.UUID, len(seasonTeams))
	for i := range seasonTeams {
		teamIDs[i] = seasonTeams[i].TeamID
	}

	rounds := buildFixtures(teamIDs, startDate, req.IntervalDays)
	created := 0
	for _, round := range rounds {
		matchDay, err := s.matchDayRepo.GetOrCreate(seasonID, round.Number, round.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to create match day %d: %w", round.Number, err)
		}
		for _, pairing := range round.Pairings {
			match := &models.Match{
				MatchDayID: matchDay.ID,
				HomeTeamID: pairing.HomeTeamID,
				AwayTeamID: pairing.AwayTeamID,
				Date:       round.Date,
				Status:     models.MatchStatusNotStarted,
			}
			if err := s.matchRepo.CreateWithSegments(match); err != nil {
				return nil, fmt.Errorf("failed to create match in round %d: %w", round.Number, err)
			}
			created++
		}
	}

	s.log.WithFields(map[string]interface{}{
		"season_id": seasonID,
		"rounds":    len(rounds),
		"matches":   created,
	}).Info("schedule generated")

	return &GenerateScheduleResponse{
		Message:        fmt.Sprintf("Schedule generated for season %s.", season.Label()),
		Rounds:         len(rounds),
		MatchesCreated: created,
	}, nil
}
