package service

import (
	"fmt"
	"strings"

	"league-manager-backend/internal/database/models"
	apperrors "league-manager-backend/internal/errors"
	"league-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PlayerService provides player-related business logic
type PlayerService struct {
	repo      repository.PlayerRepositoryInterface
	validator *validator.Validate
}

// Ensure PlayerService implements PlayerServiceInterface
var _ PlayerServiceInterface = (*PlayerService)(nil)

// NewPlayerService creates a new PlayerService
func NewPlayerService(repo repository.PlayerRepositoryInterface, validator *validator.Validate) *PlayerService {
	return &PlayerService{
		repo:      repo,
		validator: validator,
	}
}

// CreatePlayerRequest represents the payload for creating a player
type CreatePlayerRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string `json:"last_name" validate:"required,min=1,max=50"`
}

// UpdatePlayerRequest represents the payload for updating a player
type UpdatePlayerRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=50"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=50"`
}

// PlayerResponse represents a single player in API responses
type PlayerResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
}

// PlayerListResponse represents a paginated list of players
type PlayerListResponse struct {
	Players  []PlayerResponse `json:"players"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// CreatePlayer creates a new player
func (s *PlayerService) CreatePlayer(req *CreatePlayerRequest) (*PlayerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	player := &models.Player{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
	}
	if err := s.repo.Create(player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	response := s.toResponse(player)
	return &response, nil
}

// GetPlayerByID retrieves a player by their ID
func (s *PlayerService) GetPlayerByID(id uuid.UUID) (*PlayerResponse, error) {
	player, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrPlayerNotFound
	}
	response := s.toResponse(player)
	return &response, nil
}

// GetAllPlayers retrieves players with pagination
func (s *PlayerService) GetAllPlayers(page, pageSize int) (*PlayerListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	players, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	return s.toListResponse(players, total, page, pageSize), nil
}

// SearchPlayers retrieves players whose names match the query
func (s *PlayerService) SearchPlayers(query string, page, pageSize int) (*PlayerListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	players, total, err := s.repo.Search(strings.TrimSpace(query), pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search players: %w", err)
	}

	return s.toListResponse(players, total, page, pageSize), nil
}

// GetCurrentTeam retrieves the team whose roster the player belongs to in
// the given season
func (s *PlayerService) GetCurrentTeam(seasonID, playerID uuid.UUID) (*TeamResponse, error) {
	if _, err := s.repo.GetByID(playerID); err != nil {
		return nil, apperrors.ErrPlayerNotFound
	}

	team, err := s.repo.GetCurrentTeam(seasonID, playerID)
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}

	return &TeamResponse{
		ID:      team.ID,
		Name:    team.Name,
		Manager: team.Manager,
	}, nil
}

// UpdatePlayer updates an existing player
func (s *PlayerService) UpdatePlayer(id uuid.UUID, req *UpdatePlayerRequest) (*PlayerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	player, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrPlayerNotFound
	}

	if req.FirstName != nil {
		player.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		player.LastName = strings.TrimSpace(*req.LastName)
	}

	if err := s.repo.Update(player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	response := s.toResponse(player)
	return &response, nil
}

// DeletePlayer deletes a player
func (s *PlayerService) DeletePlayer(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrPlayerNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return nil
}

func (s *PlayerService) toListResponse(players []models.Player, total int64, page, pageSize int) *PlayerListResponse {
	responses := make([]PlayerResponse, len(players))
	for i := range players {
		responses[i] = s.toResponse(&players[i])
	}
	return &PlayerListResponse{
		Players:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}

// toResponse converts a Player model to API response
func (s *PlayerService) toResponse(player *models.Player) PlayerResponse {
	return PlayerResponse{
		ID:        player.ID,
		FirstName: player.FirstName,
		LastName:  player.LastName,
		FullName:  player.FullName(),
	}
}
