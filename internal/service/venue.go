package service

import (
	"fmt"

	"league-manager-backend/internal/database/models"
	apperrors "league-manager-backend/internal/errors"
	"league-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// VenueService provides venue-related business logic
type VenueService struct {
	repo      repository.VenueRepositoryInterface
	validator *validator.Validate
}

// Ensure VenueService implements VenueServiceInterface
var _ VenueServiceInterface = (*VenueService)(nil)

// NewVenueService creates a new VenueService
func NewVenueService(repo repository.VenueRepositoryInterface, validator *validator.Validate) *VenueService {
	return &VenueService{
		repo:      repo,
		validator: validator,
	}
}

// CreateVenueRequest represents the payload for creating a venue
type CreateVenueRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	City    string `json:"city" validate:"required,min=1,max=255"`
	Address string `json:"address" validate:"max=255"`
}

// UpdateVenueRequest represents the payload for updating a venue
type UpdateVenueRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	City    *string `json:"city,omitempty" validate:"omitempty,min=1,max=255"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=255"`
}

// VenueResponse represents a single venue in API responses
type VenueResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	City    string    `json:"city"`
	Address string    `json:"address,omitempty"`
}

// VenueListResponse represents a paginated list of venues
type VenueListResponse struct {
	Venues   []VenueResponse `json:"venues"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// CreateVenue creates a new venue
func (s *VenueService) CreateVenue(req *CreateVenueRequest) (*VenueResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	venue := &models.Venue{
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
	}
	if err := s.repo.Create(venue); err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}

	response := s.toResponse(venue)
	return &response, nil
}

// GetVenueByID retrieves a venue by its ID
func (s *VenueService) GetVenueByID(id uuid.UUID) (*VenueResponse, error) {
	venue, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrVenueNotFound
	}
	response := s.toResponse(venue)
	return &response, nil
}

// GetAllVenues retrieves venues with pagination
func (s *VenueService) GetAllVenues(page, pageSize int) (*VenueListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	venues, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get venues: %w", err)
	}

	responses := make([]VenueResponse, len(venues))
	for i := range venues {
		responses[i] = s.toResponse(&venues[i])
	}

	return &VenueListResponse{
		Venues:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateVenue updates an existing venue
func (s *VenueService) UpdateVenue(id uuid.UUID, req *UpdateVenueRequest) (*VenueResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	venue, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrVenueNotFound
	}

	if req.Name != nil {
		venue.Name = *req.Name
	}
	if req.City != nil {
		venue.City = *req.City
	}
	if req.Address != nil {
		venue.Address = *req.Address
	}

	if err := s.repo.Update(venue); err != nil {
		return nil, fmt.Errorf("failed to update venue: %w", err)
	}

	response := s.toResponse(venue)
	return &response, nil
}

// DeleteVenue deletes a venue
func (s *VenueService) DeleteVenue(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrVenueNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete venue: %w", err)
	}
	return nil
}

// toResponse converts a Venue model to API response
func (s *VenueService) toResponse(venue *models.Venue) VenueResponse {
	return VenueResponse{
		ID:      venue.ID,
		Name:    venue.Name,
		City:    venue.City,
		Address: venue.Address,
	}
}
