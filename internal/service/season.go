package service

import (
	"fmt"

	"league-manager-backend/internal/database/models"
	apperrors "league-manager-backend/internal/errors"
	"league-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SeasonService provides season and roster business logic
type SeasonService struct {
	repo           repository.SeasonRepositoryInterface
	leagueRepo     repository.LeagueRepositoryInterface
	teamRepo       repository.TeamRepositoryInterface
	playerRepo     repository.PlayerRepositoryInterface
	seasonTeamRepo repository.SeasonTeamRepositoryInterface
	validator      *validator.Validate
}

// Ensure SeasonService implements SeasonServiceInterface
var _ SeasonServiceInterface = (*SeasonService)(nil)

// NewSeasonService creates a new SeasonService
func NewSeasonService(
	repo repository.SeasonRepositoryInterface,
	leagueRepo repository.LeagueRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	playerRepo repository.PlayerRepositoryInterface,
	seasonTeamRepo repository.SeasonTeamRepositoryInterface,
	validator *validator.Validate,
) *SeasonService {
	return &SeasonService{
		repo:           repo,
		leagueRepo:     leagueRepo,
		teamRepo:       teamRepo,
		playerRepo:     playerRepo,
		seasonTeamRepo: seasonTeamRepo,
		validator:      validator,
	}
}

// CreateSeasonRequest represents the payload for creating a season
type CreateSeasonRequest struct {
	LeagueID uuid.UUID `json:"league_id" validate:"required"`
	Year     int       `json:"year" validate:"required,min=1900,max=2200"`
	Active   bool      `json:"active"`
}

// UpdateSeasonRequest represents the payload for updating a season
type UpdateSeasonRequest struct {
	Active *bool `json:"active,omitempty"`
}

// SeasonResponse represents a single season in API responses
type SeasonResponse struct {
	ID       uuid.UUID `json:"id"`
	LeagueID uuid.UUID `json:"league_id"`
	Year     int       `json:"year"`
	Active   bool      `json:"active"`
	Label    string    `json:"label,omitempty"`
}

// SeasonListResponse represents a paginated list of seasons
type SeasonListResponse struct {
	Seasons  []SeasonResponse `json:"seasons"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// SeasonTeamResponse represents a team's roster entry within a season
type SeasonTeamResponse struct {
	ID       uuid.UUID        `json:"id"`
	SeasonID uuid.UUID        `json:"season_id"`
	TeamID   uuid.UUID        `json:"team_id"`
	TeamName string           `json:"team_name"`
	Players  []PlayerResponse `json:"players,omitempty"`
}

// AddTeamToSeasonRequest represents the payload for entering a team into a season
type AddTeamToSeasonRequest struct {
	TeamID uuid.UUID `json:"team_id" validate:"required"`
}

// AddPlayerToRosterRequest represents the payload for registering a player
// on a season roster
type AddPlayerToRosterRequest struct {
	PlayerID uuid.UUID `json:"player_id" validate:"required"`
}

// CreateSeason creates a new season of a league. A league runs at most
// one season per starting year.
func (s *SeasonService) CreateSeason(req *CreateSeasonRequest) (*SeasonResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.leagueRepo.GetByID(req.LeagueID); err != nil {
		return nil, apperrors.ErrLeagueNotFound
	}
	if existing, err := s.repo.GetByLeagueAndYear(req.LeagueID, req.Year); err == nil && existing != nil {
		return nil, apperrors.ErrSeasonExists
	}

	season := &models.Season{
		LeagueID: req.LeagueID,
		Year:     req.Year,
		Active:   req.Active,
	}
	if err := s.repo.Create(season); err != nil {
		return nil, fmt.Errorf("failed to create season: %w", err)
	}

	response := s.toResponse(season)
	return &response, nil
}

// GetSeasonByID retrieves a season by its ID
func (s *SeasonService) GetSeasonByID(id uuid.UUID) (*SeasonResponse, error) {
	season, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrSeasonNotFound
	}
	response := s.toResponse(season)
	return &response, nil
}

// GetAllSeasons retrieves seasons with pagination, newest first
func (s *SeasonService) GetAllSeasons(page, pageSize int) (*SeasonListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	seasons, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get seasons: %w", err)
	}

	responses := make([]SeasonResponse, len(seasons))
	for i := range seasons {
		responses[i] = s.toResponse(&seasons[i])
	}

	return &SeasonListResponse{
		Seasons:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetSeasonsByLeague retrieves all seasons of a league, newest first
func (s *SeasonService) GetSeasonsByLeague(leagueID uuid.UUID) ([]SeasonResponse, error) {
	if _, err := s.leagueRepo.GetByID(leagueID); err != nil {
		return nil, apperrors.ErrLeagueNotFound
	}

	seasons, err := s.repo.GetByLeagueID(leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get seasons: %w", err)
	}

	responses := make([]SeasonResponse, len(seasons))
	for i := range seasons {
		responses[i] = s.toResponse(&seasons[i])
	}
	return responses, nil
}

// UpdateSeason updates an existing season
func (s *SeasonService) UpdateSeason(id uuid.UUID, req *UpdateSeasonRequest) (*SeasonResponse, error) {
	season, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrSeasonNotFound
	}

	if req.Active != nil {
		season.Active = *req.Active
	}

	if err := s.repo.Update(season); err != nil {
		return nil, fmt.Errorf("failed to update season: %w", err)
	}

	response := s.toResponse(season)
	return &response, nil
}

// DeleteSeason deletes a season
func (s *SeasonService) DeleteSeason(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrSeasonNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete season: %w", err)
	}
	return nil
}

// AddTeamToSeason enters a team into a season. A team participates at
// most once per season.
func (s *SeasonService) AddTeamToSeason(seasonID uuid.UUID, req *AddTeamToSeasonRequest) (*SeasonTeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.repo.GetByID(seasonID); err != nil {
		return nil, apperrors.ErrSeasonNotFound
	}
	team, err := s.teamRepo.GetByID(req.TeamID)
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}
	if existing, err := s.seasonTeamRepo.GetBySeasonAndTeam(seasonID, req.TeamID); err == nil && existing != nil {
		return nil, apperrors.ErrSeasonTeamExists
	}

	seasonTeam := &models.SeasonTeam{
		SeasonID: seasonID,
		TeamID:   req.TeamID,
	}
	if err := s.seasonTeamRepo.Create(seasonTeam); err != nil {
		return nil, fmt.Errorf("failed to add team to season: %w", err)
	}

	return &SeasonTeamResponse{
		ID:       seasonTeam.ID,
		SeasonID: seasonTeam.SeasonID,
		TeamID:   seasonTeam.TeamID,
		TeamName: team.Name,
	}, nil
}

// GetSeasonTeams retrieves the teams entered into a season
func (s *SeasonService) GetSeasonTeams(seasonID uuid.UUID) ([]SeasonTeamResponse, error) {
	if _, err := s.repo.GetByID(seasonID); err != nil {
		return nil, apperrors.ErrSeasonNotFound
	}

	seasonTeams, err := s.seasonTeamRepo.GetBySeasonID(seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get season teams: %w", err)
	}

	responses := make([]SeasonTeamResponse, len(seasonTeams))
	for i := range seasonTeams {
		responses[i] = s.toSeasonTeamResponse(&seasonTeams[i])
	}
	return responses, nil
}

// RemoveTeamFromSeason withdraws a team's roster entry from a season
func (s *SeasonService) RemoveTeamFromSeason(seasonTeamID uuid.UUID) error {
	if _, err := s.seasonTeamRepo.GetByID(seasonTeamID); err != nil {
		return apperrors.ErrSeasonTeamNotFound
	}
	if err := s.seasonTeamRepo.Delete(seasonTeamID); err != nil {
		return fmt.Errorf("failed to remove team from season: %w", err)
	}
	return nil
}

// AddPlayerToRoster registers a player on a team's season roster. A
// player belongs to at most one roster per season.
func (s *SeasonService) AddPlayerToRoster(seasonTeamID uuid.UUID, req *AddPlayerToRosterRequest) (*SeasonTeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	seasonTeam, err := s.seasonTeamRepo.GetByID(seasonTeamID)
	if err != nil {
		return nil, apperrors.ErrSeasonTeamNotFound
	}
	if _, err := s.playerRepo.GetByID(req.PlayerID); err != nil {
		return nil, apperrors.ErrPlayerNotFound
	}

	taken, err := s.seasonTeamRepo.PlayerInSeason(seasonTeam.SeasonID, req.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check roster membership: %w", err)
	}
	if taken {
		return nil, apperrors.ErrPlayerAlreadyInRoster
	}

	if err := s.seasonTeamRepo.AddPlayer(seasonTeamID, req.PlayerID); err != nil {
		return nil, fmt.Errorf("failed to add player to roster: %w", err)
	}

	return s.GetRoster(seasonTeamID)
}

// RemovePlayerFromRoster removes a player from a team's season roster
func (s *SeasonService) RemovePlayerFromRoster(seasonTeamID, playerID uuid.UUID) error {
	if _, err := s.seasonTeamRepo.GetByID(seasonTeamID); err != nil {
		return apperrors.ErrSeasonTeamNotFound
	}
	if err := s.seasonTeamRepo.RemovePlayer(seasonTeamID, playerID); err != nil {
		return fmt.Errorf("failed to remove player from roster: %w", err)
	}
	return nil
}

// GetRoster retrieves a roster entry with its player list
func (s *SeasonService) GetRoster(seasonTeamID uuid.UUID) (*SeasonTeamResponse, error) {
	seasonTeam, err := s.seasonTeamRepo.GetWithPlayers(seasonTeamID)
	if err != nil {
		return nil, apperrors.ErrSeasonTeamNotFound
	}
	response := s.toSeasonTeamResponse(seasonTeam)
	return &response, nil
}

func (s *SeasonService) toSeasonTeamResponse(seasonTeam *models.SeasonTeam) SeasonTeamResponse {
	players := make([]PlayerResponse, len(seasonTeam.Players))
	for i := range seasonTeam.Players {
		player := &seasonTeam.Players[i]
		players[i] = PlayerResponse{
			ID:        player.ID,
			FirstName: player.FirstName,
			LastName:  player.LastName,
			FullName:  player.FullName(),
		}
	}
	return SeasonTeamResponse{
		ID:       seasonTeam.ID,
		SeasonID: seasonTeam.SeasonID,
		TeamID:   seasonTeam.TeamID,
		TeamName: seasonTeam.Team.Name,
		Players:  players,
	}
}

// toResponse converts a Season model to API response
func (s *SeasonService) toResponse(season *models.Season) SeasonResponse {
	response := SeasonResponse{
		ID:       season.ID,
		LeagueID: season.LeagueID,
		Year:     season.Year,
		Active:   season.Active,
	}
	if season.League.Name != "" {
		response.Label = season.Label()
	}
	return response
}
