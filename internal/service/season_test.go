package service_test

import (
	"testing"

	"league-manager-backend/internal/database/models"
	apperrors "league-manager-backend/internal/errors"
	"league-manager-backend/internal/mocks"
	"league-manager-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// SeasonServiceTestSuite defines the test suite for SeasonService
type SeasonServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockSeasonRepo     *mocks.MockSeasonRepositoryInterface
	mockLeagueRepo     *mocks.MockLeagueRepositoryInterface
	mockTeamRepo       *mocks.MockTeamRepositoryInterface
	mockPlayerRepo     *mocks.MockPlayerRepositoryInterface
	mockSeasonTeamRepo *mocks.MockSeasonTeamRepositoryInterface
	seasonService      *service.SeasonService
	validator          *validator.Validate
}

// SetupTest sets up the test suite
func (suite *SeasonServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSeasonRepo = mocks.NewMockSeasonRepositoryInterface(suite.ctrl)
	suite.mockLeagueRepo = mocks.NewMockLeagueRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockPlayerRepo = mocks.NewMockPlayerRepositoryInterface(suite.ctrl)
	suite.mockSeasonTeamRepo = mocks.NewMockSeasonTeamRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.seasonService = service.NewSeasonService(
		suite.mockSeasonRepo,
		suite.mockLeagueRepo,
		suite.mockTeamRepo,
		suite.mockPlayerRepo,
		suite.mockSeasonTeamRepo,
		suite.validator,
	)
}

// TearDownTest cleans up after each test
func (suite *SeasonServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateSeason tests creating a season
func (suite *SeasonServiceTestSuite) TestCreateSeason() {
	leagueID := uuid.New()
	req := &service.CreateSeasonRequest{LeagueID: leagueID, Year: 2024, Active: true}

	suite.mockLeagueRepo.EXPECT().
		GetByID(leagueID).
		Return(&models.League{BaseModel: models.BaseModel{ID: leagueID}, Name: "Premier"}, nil).
		Times(1)
	suite.mockSeasonRepo.EXPECT().
		GetByLeagueAndYear(leagueID, 2024).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockSeasonRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.seasonService.CreateSeason(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), leagueID, response.LeagueID)
	assert.Equal(suite.T(), 2024, response.Year)
	assert.True(suite.T(), response.Active)
}

// TestGetAllSeasons tests the paginated season listing
func (suite *SeasonServiceTestSuite) TestGetAllSeasons() {
	league := models.League{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Premier"}
	seasons := []models.Season{
		{BaseModel: models.BaseModel{ID: uuid.New()}, LeagueID: league.ID, Year: 2024, Active: true, League: league},
		{BaseModel: models.BaseModel{ID: uuid.New()}, LeagueID: league.ID, Year: 2023, League: league},
	}

	suite.mockSeasonRepo.EXPECT().
		GetAll(20, 0).
		Return(seasons, int64(2), nil).
		Times(1)

	response, err := suite.seasonService.GetAllSeasons(1, 20)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Seasons, 2)
	assert.Equal(suite.T(), int64(2), response.Total)
	assert.Equal(suite.T(), 1, response.Page)
	assert.Equal(suite.T(), "Premier 2024/2025", response.Seasons[0].Label)
}

// TestGetAllSeasonsDefaultsPagination tests page and size normalization
func (suite *SeasonServiceTestSuite) TestGetAllSeasonsDefaultsPagination() {
	suite.mockSeasonRepo.EXPECT().
		GetAll(20, 0).
		Return([]models.Season{}, int64(0), nil).
		Times(1)

	response, err := suite.seasonService.GetAllSeasons(0, 500)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, response.Page)
	assert.Equal(suite.T(), 20, response.PageSize)
}

// TestCreateSeasonDuplicateYear tests the one-season-per-year rule
func (suite *SeasonServiceTestSuite) TestCreateSeasonDuplicateYear() {
	leagueID := uuid.New()
	req := &service.CreateSeasonRequest{LeagueID: leagueID, Year: 2024}

	suite.mockLeagueRepo.EXPECT().
		GetByID(leagueID).
		Return(&models.League{BaseModel: models.BaseModel{ID: leagueID}}, nil).
		Times(1)
	suite.mockSeasonRepo.EXPECT().
		GetByLeagueAndYear(leagueID, 2024).
		Return(&models.Season{BaseModel: models.BaseModel{ID: uuid.New()}}, nil).
		Times(1)

	response, err := suite.seasonService.CreateSeason(req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSeasonExists)
}

// TestCreateSeasonLeagueNotFound tests creating a season in a missing league
func (suite *SeasonServiceTestSuite) TestCreateSeasonLeagueNotFound() {
	leagueID := uuid.New()
	req := &service.CreateSeasonRequest{LeagueID: leagueID, Year: 2024}

	suite.mockLeagueRepo.EXPECT().
		GetByID(leagueID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.seasonService.CreateSeason(req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrLeagueNotFound)
}

// TestAddTeamToSeason tests entering a team into a season
func (suite *SeasonServiceTestSuite) TestAddTeamToSeason() {
	seasonID, teamID := uuid.New(), uuid.New()
	req := &service.AddTeamToSeasonRequest{TeamID: teamID}

	suite.mockSeasonRepo.EXPECT().
		GetByID(seasonID).
		Return(&models.Season{BaseModel: models.BaseModel{ID: seasonID}}, nil).
		Times(1)
	suite.mockTeamRepo.EXPECT().
		GetByID(teamID).
		Return(&models.Team{BaseModel: models.BaseModel{ID: teamID}, Name: "Rockets"}, nil).
		Times(1)
	suite.mockSeasonTeamRepo.EXPECT().
		GetBySeasonAndTeam(seasonID, teamID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockSeasonTeamRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.seasonService.AddTeamToSeason(seasonID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), teamID, response.TeamID)
	assert.Equal(suite.T(), "Rockets", response.TeamName)
}

// TestAddTeamToSeasonTwice tests the one-entry-per-team rule
func (suite *SeasonServiceTestSuite) TestAddTeamToSeasonTwice() {
	seasonID, teamID := uuid.New(), uuid.New()
	req := &service.AddTeamToSeasonRequest{TeamID: teamID}

	suite.mockSeasonRepo.EXPECT().
		GetByID(seasonID).
		Return(&models.Season{BaseModel: models.BaseModel{ID: seasonID}}, nil).
		Times(1)
	suite.mockTeamRepo.EXPECT().
		GetByID(teamID).
		Return(&models.Team{BaseModel: models.BaseModel{ID: teamID}}, nil).
		Times(1)
	suite.mockSeasonTeamRepo.EXPECT().
		GetBySeasonAndTeam(seasonID, teamID).
		Return(&models.SeasonTeam{BaseModel: models.BaseModel{ID: uuid.New()}}, nil).
		Times(1)

	response, err := suite.seasonService.AddTeamToSeason(seasonID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSeasonTeamExists)
}

// TestAddPlayerToRoster tests registering a player on a roster
func (suite *SeasonServiceTestSuite) TestAddPlayerToRoster() {
	seasonID, seasonTeamID, playerID := uuid.New(), uuid.New(), uuid.New()
	req := &service.AddPlayerToRosterRequest{PlayerID: playerID}

	seasonTeam := &models.SeasonTeam{
		BaseModel: models.BaseModel{ID: seasonTeamID},
		SeasonID:  seasonID,
		TeamID:    uuid.New(),
	}

	suite.mockSeasonTeamRepo.EXPECT().
		GetByID(seasonTeamID).
		Return(seasonTeam, nil).
		Times(1)
	suite.mockPlayerRepo.EXPECT().
		GetByID(playerID).
		Return(&models.Player{BaseModel: models.BaseModel{ID: playerID}, FirstName: "Ana", LastName: "Silva"}, nil).
		Times(1)
	suite.mockSeasonTeamRepo.EXPECT().
		PlayerInSeason(seasonID, playerID).
		Return(false, nil).
		Times(1)
	suite.mockSeasonTeamRepo.EXPECT().
		AddPlayer(seasonTeamID, playerID).
		Return(nil).
		Times(1)

	withPlayers := &models.SeasonTeam{
		BaseModel: models.BaseModel{ID: seasonTeamID},
		SeasonID:  seasonID,
		TeamID:    seasonTeam.TeamID,
		Team:      models.Team{Name: "Rockets"},
		Players: []models.Player{
			{BaseModel: models.BaseModel{ID: playerID}, FirstName: "Ana", LastName: "Silva"},
		},
	}
	suite.mockSeasonTeamRepo.EXPECT().
		GetWithPlayers(seasonTeamID).
		Return(withPlayers, nil).
		Times(1)

	response, err := suite.seasonService.AddPlayerToRoster(seasonTeamID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Len(suite.T(), response.Players, 1)
	assert.Equal(suite.T(), "Ana Silva", response.Players[0].FullName)
}

// TestAddPlayerToRosterAlreadyInSeason tests the one-roster-per-season rule
func (suite *SeasonServiceTestSuite) TestAddPlayerToRosterAlreadyInSeason() {
	seasonID, seasonTeamID, playerID := uuid.New(), uuid.New(), uuid.New()
	req := &service.AddPlayerToRosterRequest{PlayerID: playerID}

	suite.mockSeasonTeamRepo.EXPECT().
		GetByID(seasonTeamID).
		Return(&models.SeasonTeam{BaseModel: models.BaseModel{ID: seasonTeamID}, SeasonID: seasonID}, nil).
		Times(1)
	suite.mockPlayerRepo.EXPECT().
		GetByID(playerID).
		Return(&models.Player{BaseModel: models.BaseModel{ID: playerID}}, nil).
		Times(1)
	// Already rostered somewhere in this season, possibly another team
	suite.mockSeasonTeamRepo.EXPECT().
		PlayerInSeason(seasonID, playerID).
		Return(true, nil).
		Times(1)

	response, err := suite.seasonService.AddPlayerToRoster(seasonTeamID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPlayerAlreadyInRoster)
}

// TestRemovePlayerFromRoster tests removing a rostered player
func (suite *SeasonServiceTestSuite) TestRemovePlayerFromRoster() {
	seasonTeamID, playerID := uuid.New(), uuid.New()

	suite.mockSeasonTeamRepo.EXPECT().
		GetByID(seasonTeamID).
		Return(&models.SeasonTeam{BaseModel: models.BaseModel{ID: seasonTeamID}}, nil).
		Times(1)
	suite.mockSeasonTeamRepo.EXPECT().
		RemovePlayer(seasonTeamID, playerID).
		Return(nil).
		Times(1)

	err := suite.seasonService.RemovePlayerFromRoster(seasonTeamID, playerID)

	assert.NoError(suite.T(), err)
}

// TestRemoveTeamFromSeason tests withdrawing a team
func (suite *SeasonServiceTestSuite) TestRemoveTeamFromSeason() {
	seasonTeamID := uuid.New()

	suite.mockSeasonTeamRepo.EXPECT().
		GetByID(seasonTeamID).
		Return(&models.SeasonTeam{BaseModel: models.BaseModel{ID: seasonTeamID}}, nil).
		Times(1)
	suite.mockSeasonTeamRepo.EXPECT().
		Delete(seasonTeamID).
		Return(nil).
		Times(1)

	err := suite.seasonService.RemoveTeamFromSeason(seasonTeamID)

	assert.NoError(suite.T(), err)
}

// TestSeasonServiceTestSuite runs the test suite
func TestSeasonServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SeasonServiceTestSuite))
}
