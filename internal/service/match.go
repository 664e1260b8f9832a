package service

import (
	"fmt"

	"league-manager-backend/internal/database/models"
	apperrors "league-manager-backend/internal/errors"
	"league-manager-backend/internal/logger"
	"league-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MatchService runs the match lifecycle: starting matches, recording
// segment scores, and firing match day completion.
type MatchService struct {
	matchRepo    repository.MatchRepositoryInterface
	segmentRepo  repository.SegmentScoreRepositoryInterface
	matchDayRepo repository.MatchDayRepositoryInterface
	playerRepo   repository.PlayerRepositoryInterface
	standings    StandingsServiceInterface
	validator    *validator.Validate
	log          *logger.Logger
}

// Ensure MatchService implements MatchServiceInterface
var _ MatchServiceInterface = (*MatchService)(nil)

// NewMatchService creates a new MatchService
func NewMatchService(
	matchRepo repository.MatchRepositoryInterface,
	segmentRepo repository.SegmentScoreRepositoryInterface,
	matchDayRepo repository.MatchDayRepositoryInterface,
	playerRepo repository.PlayerRepositoryInterface,
	standings StandingsServiceInterface,
	validator *validator.Validate,
	log *logger.Logger,
) *MatchService {
	return &MatchService{
		matchRepo:    matchRepo,
		segmentRepo:  segmentRepo,
		matchDayRepo: matchDayRepo,
		playerRepo:   playerRepo,
		standings:    standings,
		validator:    validator,
		log:          log,
	}
}

// RecordSegmentRequest represents the payload for recording one
// segment's result
type RecordSegmentRequest struct {
	HomeScore     *int        `json:"home_score" validate:"omitempty,min=0"`
	AwayScore     *int        `json:"away_score" validate:"omitempty,min=0"`
	HomePlayerIDs []uuid.UUID `json:"home_player_ids"`
	AwayPlayerIDs []uuid.UUID `json:"away_player_ids"`
}

// SegmentScoreResponse represents one segment of a match in API responses
type SegmentScoreResponse struct {
	ID            uuid.UUID        `json:"id"`
	SegmentNumber int              `json:"segment_number"`
	SegmentType   string           `json:"segment_type"`
	HomeScore     *int             `json:"home_score,omitempty"`
	AwayScore     *int             `json:"away_score,omitempty"`
	HomePlayers   []PlayerResponse `json:"home_players,omitempty"`
	AwayPlayers   []PlayerResponse `json:"away_players,omitempty"`
}

// MatchResponse represents a match with derived totals and its segments
type MatchResponse struct {
	ID         uuid.UUID              `json:"id"`
	MatchDayID uuid.UUID              `json:"match_day_id"`
	HomeTeam   string                 `json:"home_team"`
	AwayTeam   string                 `json:"away_team"`
	Date       string                 `json:"date"`
	Status     string                 `json:"status"`
	HomeScore  *int                   `json:"home_score,omitempty"`
	AwayScore  *int                   `json:"away_score,omitempty"`
	Segments   []SegmentScoreResponse `json:"segments,omitempty"`
}

// MatchDayResponse represents a round with its fixtures
type MatchDayResponse struct {
	ID          uuid.UUID       `json:"id"`
	SeasonID    uuid.UUID       `json:"season_id"`
	RoundNumber int             `json:"round_number"`
	Date        string          `json:"date"`
	Completed   bool            `json:"completed"`
	Matches     []MatchResponse `json:"matches,omitempty"`
}

// RecordSegmentResponse reports a segment write and what it triggered
type RecordSegmentResponse struct {
	Match            MatchResponse `json:"match"`
	MatchFinished    bool          `json:"match_finished"`
	MatchDayComplete bool          `json:"match_day_complete"`
}

// StartMatch moves a match from Not Started to In Progress
func (s *MatchService) StartMatch(matchID uuid.UUID) (*MatchResponse, error) {
	match, err := s.matchRepo.GetByID(matchID)
	if err != nil {
		return nil, apperrors.ErrMatchNotFound
	}
	switch match.Status {
	case models.MatchStatusInProgress:
		return nil, apperrors.ErrMatchAlreadyStarted
	case models.MatchStatusFinished:
		return nil, apperrors.ErrMatchFinished
	}

	if err := s.matchRepo.UpdateStatus(matchID, models.MatchStatusInProgress); err != nil {
		return nil, fmt.Errorf("failed to start match: %w", err)
	}

	s.log.WithField("match_id", matchID).Info("match started")
	return s.GetMatch(matchID)
}

// GetMatch retrieves a match with its segments and derived totals
func (s *MatchService) GetMatch(matchID uuid.UUID) (*MatchResponse, error) {
	match, err := s.matchRepo.GetWithSegments(matchID)
	if err != nil {
		return nil, apperrors.ErrMatchNotFound
	}
	response := s.toResponse(match)
	return &response, nil
}

// GetMatchesByMatchDay retrieves the matches of a match day
func (s *MatchService) GetMatchesByMatchDay(matchDayID uuid.UUID) ([]MatchResponse, error) {
	if _, err := s.matchDayRepo.GetByID(matchDayID); err != nil {
		return nil, apperrors.ErrMatchDayNotFound
	}

	matches, err := s.matchRepo.GetByMatchDayID(matchDayID)
	if err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}

	responses := make([]MatchResponse, len(matches))
	for i := range matches {
		responses[i] = s.toResponse(&matches[i])
	}
	return responses, nil
}

// GetMatchDay retrieves a round with its fixtures
func (s *MatchService) GetMatchDay(matchDayID uuid.UUID) (*MatchDayResponse, error) {
	matchDay, err := s.matchDayRepo.GetWithMatches(matchDayID)
	if err != nil {
		return nil, apperrors.ErrMatchDayNotFound
	}

	response := MatchDayResponse{
		ID:          matchDay.ID,
		SeasonID:    matchDay.SeasonID,
		RoundNumber: matchDay.RoundNumber,
		Date:        matchDay.Date.Format("2006-01-02"),
		Completed:   matchDay.Completed(),
	}
	for i := range matchDay.Matches {
		response.Matches = append(response.Matches, s.toResponse(&matchDay.Matches[i]))
	}
	return &response, nil
}

// GetMatchDaysBySeason retrieves a season's rounds in order, without fixtures
func (s *MatchService) GetMatchDaysBySeason(seasonID uuid.UUID) ([]MatchDayResponse, error) {
	matchDays, err := s.matchDayRepo.GetBySeasonID(seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match days: %w", err)
	}

	responses := make([]MatchDayResponse, len(matchDays))
	for i := range matchDays {
		matchDay := &matchDays[i]
		responses[i] = MatchDayResponse{
			ID:          matchDay.ID,
			SeasonID:    matchDay.SeasonID,
			RoundNumber: matchDay.RoundNumber,
			Date:        matchDay.Date.Format("2006-01-02"),
		}
	}
	return responses, nil
}

// RecordSegmentScore validates and stores one segment result, then runs
// the follow-up chain: finish the match when its segments decide it, and
// advance standings when the whole match day is done. Writes to finished
// matches are rejected; results are final once a match ends.
func (s *MatchService) RecordSegmentScore(matchID uuid.UUID, segmentNumber int, req *RecordSegmentRequest) (*RecordSegmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	match, err := s.matchRepo.GetWithSegments(matchID)
	if err != nil {
		return nil, apperrors.ErrMatchNotFound
	}
	if match.Status == models.MatchStatusFinished {
		return nil, apperrors.ErrMatchFinished
	}
	if match.Status == models.MatchStatusNotStarted {
		return nil, apperrors.NewValidationError("status", "match has not been started")
	}

	upd := segmentUpdate{
		Number:        segmentNumber,
		HomeScore:     req.HomeScore,
		AwayScore:     req.AwayScore,
		HomePlayerIDs: req.HomePlayerIDs,
		AwayPlayerIDs: req.AwayPlayerIDs,
	}
	if err := validateSegmentUpdate(match.Segments, upd); err != nil {
		return nil, err
	}

	homePlayers, err := s.resolvePlayers(req.HomePlayerIDs)
	if err != nil {
		return nil, err
	}
	awayPlayers, err := s.resolvePlayers(req.AwayPlayerIDs)
	if err != nil {
		return nil, err
	}

	segment := findSegment(match.Segments, segmentNumber)
	segment.HomeScore = req.HomeScore
	segment.AwayScore = req.AwayScore
	if err := s.segmentRepo.UpdateScore(segment, homePlayers, awayPlayers); err != nil {
		return nil, fmt.Errorf("failed to record segment score: %w", err)
	}

	finished := false
	if matchComplete(match.Segments) {
		if err := s.matchRepo.UpdateStatus(matchID, models.MatchStatusFinished); err != nil {
			return nil, fmt.Errorf("failed to finish match: %w", err)
		}
		match.Status = models.MatchStatusFinished
		finished = true
		s.log.WithField("match_id", matchID).Info("match finished")
	}

	dayComplete := false
	if finished {
		dayComplete, err = s.advanceIfDayComplete(match.MatchDayID)
		if err != nil {
			return nil, err
		}
	}

	return &RecordSegmentResponse{
		Match:            s.toResponse(match),
		MatchFinished:    finished,
		MatchDayComplete: dayComplete,
	}, nil
}

// advanceIfDayComplete checks the whole round and triggers standings
// computation once every match of it has finished
func (s *MatchService) advanceIfDayComplete(matchDayID uuid.UUID) (bool, error) {
	matches, err := s.matchRepo.GetByMatchDayID(matchDayID)
	if err != nil {
		return false, fmt.Errorf("failed to check match day: %w", err)
	}
	for i := range matches {
		if matches[i].Status != models.MatchStatusFinished {
			return false, nil
		}
	}

	if err := s.standings.AdvanceStandings(matchDayID); err != nil {
		return false, fmt.Errorf("failed to advance standings: %w", err)
	}
	s.log.WithField("match_day_id", matchDayID).Info("match day complete, standings advanced")
	return true, nil
}

func (s *MatchService) resolvePlayers(ids []uuid.UUID) ([]models.Player, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	players, err := s.playerRepo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	if len(players) != len(ids) {
		return nil, apperrors.ErrPlayerNotFound
	}
	return players, nil
}

// toResponse converts a Match model to API response
func (s *MatchService) toResponse(match *models.Match) MatchResponse {
	home, away := match.Score()
	response := MatchResponse{
		ID:         match.ID,
		MatchDayID: match.MatchDayID,
		HomeTeam:   match.HomeTeam.Name,
		AwayTeam:   match.AwayTeam.Name,
		Date:       match.Date.Format("2006-01-02"),
		Status:     string(match.Status),
		HomeScore:  home,
		AwayScore:  away,
	}
	for i := range match.Segments {
		response.Segments = append(response.Segments, s.toSegmentResponse(&match.Segments[i]))
	}
	return response
}

func (s *MatchService) toSegmentResponse(segment *models.SegmentScore) SegmentScoreResponse {
	response := SegmentScoreResponse{
		ID:            segment.ID,
		SegmentNumber: segment.SegmentNumber,
		SegmentType:   string(segment.SegmentType),
		HomeScore:     segment.HomeScore,
		AwayScore:     segment.AwayScore,
	}
	for i := range segment.HomePlayers {
		player := &segment.HomePlayers[i]
		response.HomePlayers = append(response.HomePlayers, PlayerResponse{
			ID: player.ID, FirstName: player.FirstName, LastName: player.LastName, FullName: player.FullName(),
		})
	}
	for i := range segment.AwayPlayers {
		player := &segment.AwayPlayers[i]
		response.AwayPlayers = append(response.AwayPlayers, PlayerResponse{
			ID: player.ID, FirstName: player.FirstName, LastName: player.LastName, FullName: player.FullName(),
		})
	}
	return response
}
