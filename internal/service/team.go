package service

import (
	"fmt"

	"league-manager-backend/internal/database/models"
	apperrors "league-manager-backend/internal/errors"
	"league-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TeamService provides team-related business logic
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	venueRepo repository.VenueRepositoryInterface
	validator *validator.Validate
}

// Ensure TeamService implements TeamServiceInterface
var _ TeamServiceInterface = (*TeamService)(nil)

// NewTeamService creates a new TeamService
func NewTeamService(repo repository.TeamRepositoryInterface, venueRepo repository.VenueRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		venueRepo: venueRepo,
		validator: validator,
	}
}

// CreateTeamRequest represents the payload for creating a team
type CreateTeamRequest struct {
	Name    string     `json:"name" validate:"required,min=1,max=100"`
	Manager string     `json:"manager" validate:"max=100"`
	VenueID *uuid.UUID `json:"venue_id,omitempty"`
}

// UpdateTeamRequest represents the payload for updating a team
type UpdateTeamRequest struct {
	Name    *string    `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Manager *string    `json:"manager,omitempty" validate:"omitempty,max=100"`
	VenueID *uuid.UUID `json:"venue_id,omitempty"`
}

// TeamResponse represents a single team in API responses
type TeamResponse struct {
	ID      uuid.UUID      `json:"id"`
	Name    string         `json:"name"`
	Manager string         `json:"manager,omitempty"`
	Venue   *VenueResponse `json:"venue,omitempty"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []TeamResponse `json:"teams"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// TeamScheduleEntry is one fixture of a team's season schedule
type TeamScheduleEntry struct {
	MatchID     uuid.UUID `json:"match_id"`
	RoundNumber int       `json:"round_number"`
	Date        string    `json:"date"`
	HomeTeam    string    `json:"home_team"`
	AwayTeam    string    `json:"away_team"`
	Status      string    `json:"status"`
	HomeScore   *int      `json:"home_score,omitempty"`
	AwayScore   *int      `json:"away_score,omitempty"`
}

// TeamScheduleResponse represents a team's fixtures within a season
type TeamScheduleResponse struct {
	TeamID   uuid.UUID           `json:"team_id"`
	SeasonID uuid.UUID           `json:"season_id"`
	Matches  []TeamScheduleEntry `json:"matches"`
}

// CreateTeam creates a new team
func (s *TeamService) CreateTeam(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.VenueID != nil {
		if _, err := s.venueRepo.GetByID(*req.VenueID); err != nil {
			return nil, apperrors.ErrVenueNotFound
		}
	}

	team := &models.Team{
		Name:    req.Name,
		Manager: req.Manager,
		VenueID: req.VenueID,
	}
	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	response := s.toResponse(team)
	return &response, nil
}

// GetTeamByID retrieves a team by its ID
func (s *TeamService) GetTeamByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}
	response := s.toResponse(team)
	return &response, nil
}

// GetAllTeams retrieves teams with pagination
func (s *TeamService) GetAllTeams(page, pageSize int) (*TeamListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	teams, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = s.toResponse(&teams[i])
	}

	return &TeamListResponse{
		Teams:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetTeamSchedule retrieves a team's fixtures for a season, in round order
func (s *TeamService) GetTeamSchedule(teamID, seasonID uuid.UUID) (*TeamScheduleResponse, error) {
	if _, err := s.repo.GetByID(teamID); err != nil {
		return nil, apperrors.ErrTeamNotFound
	}

	matches, err := s.repo.GetSchedule(teamID, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team schedule: %w", err)
	}

	entries := make([]TeamScheduleEntry, len(matches))
	for i := range matches {
		match := &matches[i]
		home, away := match.Score()
		entries[i] = TeamScheduleEntry{
			MatchID:     match.ID,
			RoundNumber: match.MatchDay.RoundNumber,
			Date:        match.Date.Format("2006-01-02"),
			HomeTeam:    match.HomeTeam.Name,
			AwayTeam:    match.AwayTeam.Name,
			Status:      string(match.Status),
			HomeScore:   home,
			AwayScore:   away,
		}
	}

	return &TeamScheduleResponse{
		TeamID:   teamID,
		SeasonID: seasonID,
		Matches:  entries,
	}, nil
}

// UpdateTeam updates an existing team
func (s *TeamService) UpdateTeam(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Manager != nil {
		team.Manager = *req.Manager
	}
	if req.VenueID != nil {
		if _, err := s.venueRepo.GetByID(*req.VenueID); err != nil {
			return nil, apperrors.ErrVenueNotFound
		}
		team.VenueID = req.VenueID
	}

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	response := s.toResponse(team)
	return &response, nil
}

// DeleteTeam deletes a team
func (s *TeamService) DeleteTeam(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrTeamNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// toResponse converts a Team model to API response
func (s *TeamService) toResponse(team *models.Team) TeamResponse {
	response := TeamResponse{
		ID:      team.ID,
		Name:    team.Name,
		Manager: team.Manager,
	}
	if team.Venue != nil {
		venue := VenueResponse{
			ID:      team.Venue.ID,
			Name:    team.Venue.Name,
			City:    team.Venue.City,
			Address: team.Venue.Address,
		}
		response.Venue = &venue
	}
	return response
}
