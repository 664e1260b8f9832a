package service

import (
	"fmt"
	"sort"

	"league-manager-backend/internal/database/models"
	apperrors "league-manager-backend/internal/errors"
	"league-manager-backend/internal/logger"
	"league-manager-backend/internal/repository"

	"github.com/google/uuid"
)

// StandingsService computes and serves the league table snapshots
type StandingsService struct {
	repo         repository.StandingsRepositoryInterface
	matchDayRepo repository.MatchDayRepositoryInterface
	matchRepo    repository.MatchRepositoryInterface
	log          *logger.Logger
}

// Ensure StandingsService implements StandingsServiceInterface
var _ StandingsServiceInterface = (*StandingsService)(nil)

// NewStandingsService creates a new StandingsService
func NewStandingsService(
	repo repository.StandingsRepositoryInterface,
	matchDayRepo repository.MatchDayRepositoryInterface,
	matchRepo repository.MatchRepositoryInterface,
	log *logger.Logger,
) *StandingsService {
	return &StandingsService{
		repo:         repo,
		matchDayRepo: matchDayRepo,
		matchRepo:    matchRepo,
		log:          log,
	}
}

// StandingsRowResponse represents one team's line in a standings table
type StandingsRowResponse struct {
	Position       int       `json:"position"`
	TeamID         uuid.UUID `json:"team_id"`
	TeamName       string    `json:"team_name"`
	Played         int       `json:"played"`
	Wins           int       `json:"wins"`
	Draws          int       `json:"draws"`
	Losses         int       `json:"losses"`
	GoalsFor       int       `json:"goals_for"`
	GoalsAgainst   int       `json:"goals_against"`
	GoalDifference int       `json:"goal_difference"`
	Points         int       `json:"points"`
}

// StandingsResponse represents a match day's full table
type StandingsResponse struct {
	MatchDayID  uuid.UUID              `json:"match_day_id"`
	RoundNumber int                    `json:"round_number"`
	Rows        []StandingsRowResponse `json:"rows"`
}

// AdvanceStandings writes the standings snapshot for a completed match
// day: previous table plus this round's results, ranked and positioned.
// Running it again for the same match day is a no-op, so retries after
// partial failures are safe.
func (s *StandingsService) AdvanceStandings(matchDayID uuid.UUID) error {
	matchDay, err := s.matchDayRepo.GetWithMatches(matchDayID)
	if err != nil {
		return apperrors.ErrMatchDayNotFound
	}
	if !matchDay.Completed() {
		return apperrors.ErrMatchDayIncomplete
	}

	exists, err := s.repo.ExistsForMatchDay(matchDayID)
	if err != nil {
		return fmt.Errorf("failed to check existing standings: %w", err)
	}
	if exists {
		return nil
	}

	previous, err := s.previousRows(matchDay.SeasonID, matchDay.RoundNumber)
	if err != nil {
		return err
	}

	finished, err := s.matchRepo.GetFinishedByMatchDayID(matchDayID)
	if err != nil {
		return fmt.Errorf("failed to load finished matches: %w", err)
	}
	results := make([]matchResult, 0, len(finished))
	for i := range finished {
		match := &finished[i]
		home, away := match.Score()
		if home == nil || away == nil {
			continue
		}
		results = append(results, matchResult{
			HomeTeamID: match.HomeTeamID,
			AwayTeamID: match.AwayTeamID,
			HomeScore:  *home,
			AwayScore:  *away,
		})
	}

	rows := computeStandings(previous, results, matchDayID)
	rankStandings(rows)
	for i := range rows {
		position := i + 1
		rows[i].Position = &position
		if err := s.repo.Create(&rows[i]); err != nil {
			return fmt.Errorf("failed to store standings row: %w", err)
		}
	}

	s.log.WithFields(map[string]interface{}{
		"match_day_id": matchDayID,
		"rows":         len(rows),
	}).Info("standings advanced")
	return nil
}

// GetStandings retrieves the table snapshot of a match day in rank order
func (s *StandingsService) GetStandings(matchDayID uuid.UUID) (*StandingsResponse, error) {
	matchDay, err := s.matchDayRepo.GetByID(matchDayID)
	if err != nil {
		return nil, apperrors.ErrMatchDayNotFound
	}

	rows, err := s.repo.GetByMatchDayID(matchDayID)
	if err != nil {
		return nil, fmt.Errorf("failed to get standings: %w", err)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		pi, pj := rows[i].Position, rows[j].Position
		if pi == nil || pj == nil {
			return pj == nil && pi != nil
		}
		return *pi < *pj
	})

	response := &StandingsResponse{
		MatchDayID:  matchDayID,
		RoundNumber: matchDay.RoundNumber,
		Rows:        make([]StandingsRowResponse, len(rows)),
	}
	for i := range rows {
		row := &rows[i]
		position := i + 1
		if row.Position != nil {
			position = *row.Position
		}
		response.Rows[i] = StandingsRowResponse{
			Position:       position,
			TeamID:         row.TeamID,
			TeamName:       row.Team.Name,
			Played:         row.Played,
			Wins:           row.Wins,
			Draws:          row.Draws,
			Losses:         row.Losses,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: row.GoalDifference(),
			Points:         row.Points(),
		}
	}
	return response, nil
}

// previousRows loads the most recent standings snapshot before the given
// round, or an empty baseline for the first one
func (s *StandingsService) previousRows(seasonID uuid.UUID, roundNumber int) ([]models.StandingsRow, error) {
	previousDay, err := s.matchDayRepo.GetPrevious(seasonID, roundNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to find previous match day: %w", err)
	}
	if previousDay == nil {
		return nil, nil
	}
	rows, err := s.repo.GetByMatchDayID(previousDay.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load previous standings: %w", err)
	}
	return rows, nil
}
