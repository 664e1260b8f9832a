package repository

import (
	"time"

	"league-manager-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// LeagueRepositoryInterface defines the interface for league repository operations
type LeagueRepositoryInterface interface {
	Create(league *models.League) error
	GetByID(id uuid.UUID) (*models.League, error)
	GetAll(limit, offset int) ([]models.League, int64, error)
	Update(league *models.League) error
	Delete(id uuid.UUID) error
}

// VenueRepositoryInterface defines the interface for venue repository operations
type VenueRepositoryInterface interface {
	Create(venue *models.Venue) error
	GetByID(id uuid.UUID) (*models.Venue, error)
	GetAll(limit, offset int) ([]models.Venue, int64, error)
	Update(venue *models.Venue) error
	Delete(id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetAll(limit, offset int) ([]models.Team, int64, error)
	GetSchedule(teamID, seasonID uuid.UUID) ([]models.Match, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
}

// PlayerRepositoryInterface defines the interface for player repository operations
type PlayerRepositoryInterface interface {
	Create(player *models.Player) error
	GetByID(id uuid.UUID) (*models.Player, error)
	GetByIDs(ids []uuid.UUID) ([]models.Player, error)
	GetAll(limit, offset int) ([]models.Player, int64, error)
	Search(query string, limit, offset int) ([]models.Player, int64, error)
	GetCurrentTeam(seasonID, playerID uuid.UUID) (*models.Team, error)
	Update(player *models.Player) error
	Delete(id uuid.UUID) error
}

// SeasonRepositoryInterface defines the interface for season repository operations
type SeasonRepositoryInterface interface {
	Create(season *models.Season) error
	GetByID(id uuid.UUID) (*models.Season, error)
	GetAll(limit, offset int) ([]models.Season, int64, error)
	GetByLeagueAndYear(leagueID uuid.UUID, year int) (*models.Season, error)
	GetByLeagueID(leagueID uuid.UUID) ([]models.Season, error)
	GetActiveByType(leagueType models.LeagueType) (*models.Season, error)
	Update(season *models.Season) error
	Delete(id uuid.UUID) error
}

// SeasonTeamRepositoryInterface defines the interface for season roster operations
type SeasonTeamRepositoryInterface interface {
	Create(seasonTeam *models.SeasonTeam) error
	GetByID(id uuid.UUID) (*models.SeasonTeam, error)
	GetBySeasonID(seasonID uuid.UUID) ([]models.SeasonTeam, error)
	GetBySeasonAndTeam(seasonID, teamID uuid.UUID) (*models.SeasonTeam, error)
	GetWithPlayers(id uuid.UUID) (*models.SeasonTeam, error)
	AddPlayer(seasonTeamID, playerID uuid.UUID) error
	RemovePlayer(seasonTeamID, playerID uuid.UUID) error
	PlayerInSeason(seasonID, playerID uuid.UUID) (bool, error)
	Delete(id uuid.UUID) error
}

// MatchDayRepositoryInterface defines the interface for match day repository operations
type MatchDayRepositoryInterface interface {
	GetOrCreate(seasonID uuid.UUID, roundNumber int, date time.Time) (*models.MatchDay, error)
	GetByID(id uuid.UUID) (*models.MatchDay, error)
	GetWithMatches(id uuid.UUID) (*models.MatchDay, error)
	GetBySeasonID(seasonID uuid.UUID) ([]models.MatchDay, error)
	GetPrevious(seasonID uuid.UUID, roundNumber int) (*models.MatchDay, error)
	Delete(id uuid.UUID) error
}

// MatchRepositoryInterface defines the interface for match repository operations
type MatchRepositoryInterface interface {
	CreateWithSegments(match *models.Match) error
	GetByID(id uuid.UUID) (*models.Match, error)
	GetWithSegments(id uuid.UUID) (*models.Match, error)
	GetByMatchDayID(matchDayID uuid.UUID) ([]models.Match, error)
	GetFinishedByMatchDayID(matchDayID uuid.UUID) ([]models.Match, error)
	UpdateStatus(matchID uuid.UUID, status models.MatchStatus) error
}

// SegmentScoreRepositoryInterface defines the interface for segment score repository operations
type SegmentScoreRepositoryInterface interface {
	GetByMatchAndNumber(matchID uuid.UUID, segmentNumber int) (*models.SegmentScore, error)
	GetByMatchID(matchID uuid.UUID) ([]models.SegmentScore, error)
	UpdateScore(segment *models.SegmentScore, homePlayers, awayPlayers []models.Player) error
}

// StandingsRepositoryInterface defines the interface for standings repository operations
type StandingsRepositoryInterface interface {
	Create(row *models.StandingsRow) error
	GetByMatchDayID(matchDayID uuid.UUID) ([]models.StandingsRow, error)
	ExistsForMatchDay(matchDayID uuid.UUID) (bool, error)
	SetPosition(rowID uuid.UUID, position int) error
}
