package testutils

import (
	"time"

	"league-manager-backend/internal/database/models"

	"github.com/google/uuid"
)

// LeagueFactory provides methods to create test League data
type LeagueFactory struct{}

// NewLeagueFactory creates a new LeagueFactory
func NewLeagueFactory() *LeagueFactory {
	return &LeagueFactory{}
}

// Create creates a test League with default values
func (f *LeagueFactory) Create() *models.League {
	return &models.League{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Test League",
		Type: models.LeagueTypeRegular,
	}
}

// WithName sets a custom name for the league
func (f *LeagueFactory) WithName(name string) *models.League {
	league := f.Create()
	league.Name = name
	return league
}

// WithType sets a custom type for the league
func (f *LeagueFactory) WithType(leagueType models.LeagueType) *models.League {
	league := f.Create()
	league.Type = leagueType
	return league
}

// VenueFactory provides methods to create test Venue data
type VenueFactory struct{}

// NewVenueFactory creates a new VenueFactory
func NewVenueFactory() *VenueFactory {
	return &VenueFactory{}
}

// Create creates a test Venue with default values
func (f *VenueFactory) Create() *models.Venue {
	return &models.Venue{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:    "Test Hall",
		City:    "Test City",
		Address: "1 Test Street",
	}
}

// WithName sets a custom name for the venue
func (f *VenueFactory) WithName(name string) *models.Venue {
	venue := f.Create()
	venue.Name = name
	return venue
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Team names carry a unique suffix to satisfy the unique index
		Name:    "Test Team " + id.String()[:8],
		Manager: "Test Manager",
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// WithVenue sets the home venue for the team
func (f *TeamFactory) WithVenue(venueID uuid.UUID) *models.Team {
	team := f.Create()
	team.VenueID = &venueID
	return team
}

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct{}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// Create creates a test Player with default values
func (f *PlayerFactory) Create() *models.Player {
	id := uuid.New()
	return &models.Player{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName: "Player",
		LastName:  id.String()[:8],
	}
}

// WithName sets a custom name for the player
func (f *PlayerFactory) WithName(first, last string) *models.Player {
	player := f.Create()
	player.FirstName = first
	player.LastName = last
	return player
}

// SeasonFactory provides methods to create test Season data
type SeasonFactory struct{}

// NewSeasonFactory creates a new SeasonFactory
func NewSeasonFactory() *SeasonFactory {
	return &SeasonFactory{}
}

// Create creates a test Season with default values
func (f *SeasonFactory) Create() *models.Season {
	return &models.Season{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		LeagueID: uuid.New(),
		Year:     2024,
		Active:   true,
	}
}

// WithLeague sets the league ID for the season
func (f *SeasonFactory) WithLeague(leagueID uuid.UUID) *models.Season {
	season := f.Create()
	season.LeagueID = leagueID
	return season
}

// WithYear sets a custom year for the season
func (f *SeasonFactory) WithYear(year int) *models.Season {
	season := f.Create()
	season.Year = year
	return season
}

// SeasonTeamFactory provides methods to create test SeasonTeam data
type SeasonTeamFactory struct{}

// NewSeasonTeamFactory creates a new SeasonTeamFactory
func NewSeasonTeamFactory() *SeasonTeamFactory {
	return &SeasonTeamFactory{}
}

// Create creates a test SeasonTeam with default values
func (f *SeasonTeamFactory) Create() *models.SeasonTeam {
	return &models.SeasonTeam{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SeasonID: uuid.New(),
		TeamID:   uuid.New(),
	}
}

// WithSeasonAndTeam binds the entry to an existing season and team
func (f *SeasonTeamFactory) WithSeasonAndTeam(seasonID, teamID uuid.UUID) *models.SeasonTeam {
	st := f.Create()
	st.SeasonID = seasonID
	st.TeamID = teamID
	return st
}

// MatchDayFactory provides methods to create test MatchDay data
type MatchDayFactory struct{}

// NewMatchDayFactory creates a new MatchDayFactory
func NewMatchDayFactory() *MatchDayFactory {
	return &MatchDayFactory{}
}

// Create creates a test MatchDay with default values
func (f *MatchDayFactory) Create() *models.MatchDay {
	return &models.MatchDay{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SeasonID:    uuid.New(),
		RoundNumber: 1,
		Date:        time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

// WithSeason sets the season ID for the match day
func (f *MatchDayFactory) WithSeason(seasonID uuid.UUID) *models.MatchDay {
	day := f.Create()
	day.SeasonID = seasonID
	return day
}

// WithRound sets the round number and shifts the date accordingly
func (f *MatchDayFactory) WithRound(seasonID uuid.UUID, round int) *models.MatchDay {
	day := f.Create()
	day.SeasonID = seasonID
	day.RoundNumber = round
	day.Date = day.Date.AddDate(0, 0, 7*(round-1))
	return day
}

// MatchFactory provides methods to create test Match data
type MatchFactory struct{}

// NewMatchFactory creates a new MatchFactory
func NewMatchFactory() *MatchFactory {
	return &MatchFactory{}
}

// Create creates a test Match with default values and its seven segments
func (f *MatchFactory) Create() *models.Match {
	id := uuid.New()
	match := &models.Match{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		MatchDayID: uuid.New(),
		HomeTeamID: uuid.New(),
		AwayTeamID: uuid.New(),
		Date:       time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		Status:     models.MatchStatusNotStarted,
	}
	order := models.SegmentTypeOrder()
	for i, segType := range order {
		match.Segments = append(match.Segments, models.SegmentScore{
			BaseModel: models.BaseModel{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			MatchID:       id,
			SegmentNumber: i + 1,
			SegmentType:   segType,
		})
	}
	return match
}

// WithTeams sets the fixture's match day and opposing teams
func (f *MatchFactory) WithTeams(matchDayID, homeTeamID, awayTeamID uuid.UUID) *models.Match {
	match := f.Create()
	match.MatchDayID = matchDayID
	match.HomeTeamID = homeTeamID
	match.AwayTeamID = awayTeamID
	for i := range match.Segments {
		match.Segments[i].MatchID = match.ID
	}
	return match
}

// WithStatus sets the lifecycle status for the match
func (f *MatchFactory) WithStatus(status models.MatchStatus) *models.Match {
	match := f.Create()
	match.Status = status
	return match
}

// StandingsRowFactory provides methods to create test StandingsRow data
type StandingsRowFactory struct{}

// NewStandingsRowFactory creates a new StandingsRowFactory
func NewStandingsRowFactory() *StandingsRowFactory {
	return &StandingsRowFactory{}
}

// Create creates a test StandingsRow with zeroed counters
func (f *StandingsRowFactory) Create() *models.StandingsRow {
	return &models.StandingsRow{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:     uuid.New(),
		MatchDayID: uuid.New(),
	}
}

// WithTeamAndMatchDay binds the row to an existing team and match day
func (f *StandingsRowFactory) WithTeamAndMatchDay(teamID, matchDayID uuid.UUID) *models.StandingsRow {
	row := f.Create()
	row.TeamID = teamID
	row.MatchDayID = matchDayID
	return row
}

// FactorySet provides access to all factories
type FactorySet struct {
	League       *LeagueFactory
	Venue        *VenueFactory
	Team         *TeamFactory
	Player       *PlayerFactory
	Season       *SeasonFactory
	SeasonTeam   *SeasonTeamFactory
	MatchDay     *MatchDayFactory
	Match        *MatchFactory
	StandingsRow *StandingsRowFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		League:       NewLeagueFactory(),
		Venue:        NewVenueFactory(),
		Team:         NewTeamFactory(),
		Player:       NewPlayerFactory(),
		Season:       NewSeasonFactory(),
		SeasonTeam:   NewSeasonTeamFactory(),
		MatchDay:     NewMatchDayFactory(),
		Match:        NewMatchFactory(),
		StandingsRow: NewStandingsRowFactory(),
	}
}

// CreateSeasonWithTeams creates a league, a season in it and n teams entered
// into the season. Nothing is persisted; callers insert what they need.
func (fs *FactorySet) CreateSeasonWithTeams(n int) (*models.League, *models.Season, []*models.Team, []*models.SeasonTeam) {
	league := fs.League.Create()
	season := fs.Season.WithLeague(league.ID)

	teams := make([]*models.Team, 0, n)
	seasonTeams := make([]*models.SeasonTeam, 0, n)
	for i := 0; i < n; i++ {
		team := fs.Team.Create()
		teams = append(teams, team)
		seasonTeams = append(seasonTeams, fs.SeasonTeam.WithSeasonAndTeam(season.ID, team.ID))
	}
	return league, season, teams, seasonTeams
}
