package service

import (
	"fmt"

	"league-manager-backend/internal/database/models"
	apperrors "league-manager-backend/internal/errors"
	"league-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// LeagueService provides league-related business logic
type LeagueService struct {
	repo      repository.LeagueRepositoryInterface
	validator *validator.Validate
}

// Ensure LeagueService implements LeagueServiceInterface
var _ LeagueServiceInterface = (*LeagueService)(nil)

// NewLeagueService creates a new LeagueService
func NewLeagueService(repo repository.LeagueRepositoryInterface, validator *validator.Validate) *LeagueService {
	return &LeagueService{
		repo:      repo,
		validator: validator,
	}
}

// CreateLeagueRequest represents the payload for creating a league
type CreateLeagueRequest struct {
	Name string            `json:"name" validate:"required,min=1,max=255"`
	Type models.LeagueType `json:"type" validate:"required"`
}

// UpdateLeagueRequest represents the payload for updating a league
type UpdateLeagueRequest struct {
	Name *string            `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Type *models.LeagueType `json:"type,omitempty"`
}

// LeagueResponse represents a single league in API responses
type LeagueResponse struct {
	ID   uuid.UUID         `json:"id"`
	Name string            `json:"name"`
	Type models.LeagueType `json:"type"`
}

// LeagueListResponse represents a paginated list of leagues
type LeagueListResponse struct {
	Leagues  []LeagueResponse `json:"leagues"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// CreateLeague creates a new league
func (s *LeagueService) CreateLeague(req *CreateLeagueRequest) (*LeagueResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("type", "must be 'regular' or 'cup'")
	}

	league := &models.League{
		Name: req.Name,
		Type: req.Type,
	}
	if err := s.repo.Create(league); err != nil {
		return nil, fmt.Errorf("failed to create league: %w", err)
	}

	response := s.toResponse(league)
	return &response, nil
}

// GetLeagueByID retrieves a league by its ID
func (s *LeagueService) GetLeagueByID(id uuid.UUID) (*LeagueResponse, error) {
	league, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrLeagueNotFound
	}
	response := s.toResponse(league)
	return &response, nil
}

// GetAllLeagues retrieves leagues with pagination
func (s *LeagueService) GetAllLeagues(page, pageSize int) (*LeagueListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	leagues, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get leagues: %w", err)
	}

	responses := make([]LeagueResponse, len(leagues))
	for i := range leagues {
		responses[i] = s.toResponse(&leagues[i])
	}

	return &LeagueListResponse{
		Leagues:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateLeague updates an existing league
func (s *LeagueService) UpdateLeague(id uuid.UUID, req *UpdateLeagueRequest) (*LeagueResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	league, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrLeagueNotFound
	}

	if req.Name != nil {
		league.Name = *req.Name
	}
	if req.Type != nil {
		if !req.Type.IsValid() {
			return nil, apperrors.NewValidationError("type", "must be 'regular' or 'cup'")
		}
		league.Type = *req.Type
	}

	if err := s.repo.Update(league); err != nil {
		return nil, fmt.Errorf("failed to update league: %w", err)
	}

	response := s.toResponse(league)
	return &response, nil
}

// DeleteLeague deletes a league
func (s *LeagueService) DeleteLeague(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrLeagueNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete league: %w", err)
	}
	return nil
}

// toResponse converts a League model to API response
func (s *LeagueService) toResponse(league *models.League) LeagueResponse {
	return LeagueResponse{
		ID:   league.ID,
		Name: league.Name,
		Type: league.Type,
	}
}
