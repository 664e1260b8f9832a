package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// LeagueServiceInterface defines the interface for league service
type LeagueServiceInterface interface {
	CreateLeague(req *CreateLeagueRequest) (*LeagueResponse, error)
	GetLeagueByID(id uuid.UUID) (*LeagueResponse, error)
	GetAllLeagues(page, pageSize int) (*LeagueListResponse, error)
	UpdateLeague(id uuid.UUID, req *UpdateLeagueRequest) (*LeagueResponse, error)
	DeleteLeague(id uuid.UUID) error
}

// VenueServiceInterface defines the interface for venue service
type VenueServiceInterface interface {
	CreateVenue(req *CreateVenueRequest) (*VenueResponse, error)
	GetVenueByID(id uuid.UUID) (*VenueResponse, error)
	GetAllVenues(page, pageSize int) (*VenueListResponse, error)
	UpdateVenue(id uuid.UUID, req *UpdateVenueRequest) (*VenueResponse, error)
	DeleteVenue(id uuid.UUID) error
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	CreateTeam(req *CreateTeamRequest) (*TeamResponse, error)
	GetTeamByID(id uuid.UUID) (*TeamResponse, error)
	GetAllTeams(page, pageSize int) (*TeamListResponse, error)
	GetTeamSchedule(teamID, seasonID uuid.UUID) (*TeamScheduleResponse, error)
	UpdateTeam(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	DeleteTeam(id uuid.UUID) error
}

// PlayerServiceInterface defines the interface for player service
type PlayerServiceInterface interface {
	CreatePlayer(req *CreatePlayerRequest) (*PlayerResponse, error)
	GetPlayerByID(id uuid.UUID) (*PlayerResponse, error)
	GetAllPlayers(page, pageSize int) (*PlayerListResponse, error)
	SearchPlayers(query string, page, pageSize int) (*PlayerListResponse, error)
	GetCurrentTeam(seasonID, playerID uuid.UUID) (*TeamResponse, error)
	UpdatePlayer(id uuid.UUID, req *UpdatePlayerRequest) (*PlayerResponse, error)
	DeletePlayer(id uuid.UUID) error
}

// SeasonServiceInterface defines the interface for season service
type SeasonServiceInterface interface {
	CreateSeason(req *CreateSeasonRequest) (*SeasonResponse, error)
	GetSeasonByID(id uuid.UUID) (*SeasonResponse, error)
	GetAllSeasons(page, pageSize int) (*SeasonListResponse, error)
	GetSeasonsByLeague(leagueID uuid.UUID) ([]SeasonResponse, error)
	UpdateSeason(id uuid.UUID, req *UpdateSeasonRequest) (*SeasonResponse, error)
	DeleteSeason(id uuid.UUID) error
	AddTeamToSeason(seasonID uuid.UUID, req *AddTeamToSeasonRequest) (*SeasonTeamResponse, error)
	GetSeasonTeams(seasonID uuid.UUID) ([]SeasonTeamResponse, error)
	RemoveTeamFromSeason(seasonTeamID uuid.UUID) error
	AddPlayerToRoster(seasonTeamID uuid.UUID, req *AddPlayerToRosterRequest) (*SeasonTeamResponse, error)
	RemovePlayerFromRoster(seasonTeamID, playerID uuid.UUID) error
	GetRoster(seasonTeamID uuid.UUID) (*SeasonTeamResponse, error)
}

// ScheduleServiceInterface defines the interface for schedule generation
type ScheduleServiceInterface interface {
	GenerateSchedule(seasonID uuid.UUID, req *GenerateScheduleRequest) (*GenerateScheduleResponse, error)
}

// MatchServiceInterface defines the interface for match lifecycle operations
type MatchServiceInterface interface {
	StartMatch(matchID uuid.UUID) (*MatchResponse, error)
	GetMatch(matchID uuid.UUID) (*MatchResponse, error)
	GetMatchesByMatchDay(matchDayID uuid.UUID) ([]MatchResponse, error)
	GetMatchDay(matchDayID uuid.UUID) (*MatchDayResponse, error)
	GetMatchDaysBySeason(seasonID uuid.UUID) ([]MatchDayResponse, error)
	RecordSegmentScore(matchID uuid.UUID, segmentNumber int, req *RecordSegmentRequest) (*RecordSegmentResponse, error)
}

// StandingsServiceInterface defines the interface for standings operations
type StandingsServiceInterface interface {
	AdvanceStandings(matchDayID uuid.UUID) error
	GetStandings(matchDayID uuid.UUID) (*StandingsResponse, error)
}
