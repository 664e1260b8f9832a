package handlers_test

import (
	"net/http"
	"testing"

	"league-manager-backend/internal/api/handlers"
	apperrors "league-manager-backend/internal/errors"
	"league-manager-backend/internal/mocks"
	"league-manager-backend/internal/service"
	"league-manager-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SeasonHandlerTestSuite defines the test suite for SeasonHandler
type SeasonHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockSeasonSvc   *mocks.MockSeasonServiceInterface
	mockScheduleSvc *mocks.MockScheduleServiceInterface
	mockMatchSvc    *mocks.MockMatchServiceInterface
	handler         *handlers.SeasonHandler
	http            *testutils.HTTPTestSuite
}

func (suite *SeasonHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSeasonSvc = mocks.NewMockSeasonServiceInterface(suite.ctrl)
	suite.mockScheduleSvc = mocks.NewMockScheduleServiceInterface(suite.ctrl)
	suite.mockMatchSvc = mocks.NewMockMatchServiceInterface(suite.ctrl)
	suite.handler = handlers.NewSeasonHandler(suite.mockSeasonSvc, suite.mockScheduleSvc, suite.mockMatchSvc)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.GET("/seasons", suite.handler.ListSeasons)
	suite.http.Router.POST("/seasons", suite.handler.CreateSeason)
	suite.http.Router.GET("/seasons/:id", suite.handler.GetSeason)
	suite.http.Router.POST("/seasons/:id/teams", suite.handler.AddTeam)
	suite.http.Router.GET("/seasons/:id/teams", suite.handler.ListTeams)
	suite.http.Router.POST("/seasons/:id/schedule", suite.handler.GenerateSchedule)
	suite.http.Router.GET("/seasons/:id/match-days", suite.handler.ListMatchDays)
	suite.http.Router.GET("/season-teams/:id", suite.handler.GetRoster)
	suite.http.Router.DELETE("/season-teams/:id", suite.handler.RemoveTeamFromSeason)
	suite.http.Router.POST("/season-teams/:id/players", suite.handler.AddPlayerToRoster)
	suite.http.Router.DELETE("/season-teams/:id/players/:player_id", suite.handler.RemovePlayerFromRoster)
}

func (suite *SeasonHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SeasonHandlerTestSuite) TestListSeasons() {
	resp := &service.SeasonListResponse{
		Seasons: []service.SeasonResponse{
			{ID: uuid.New(), LeagueID: uuid.New(), Year: 2024, Active: true, Label: "Premier 2024/2025"},
			{ID: uuid.New(), LeagueID: uuid.New(), Year: 2023, Label: "Premier 2023/2024"},
		},
		Total:    2,
		Page:     1,
		PageSize: 20,
	}
	suite.mockSeasonSvc.EXPECT().GetAllSeasons(1, 20).Return(resp, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/seasons", nil)

	var got service.SeasonListResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Len(suite.T(), got.Seasons, 2)
	assert.Equal(suite.T(), int64(2), got.Total)
	assert.Equal(suite.T(), 2024, got.Seasons[0].Year)
}

func (suite *SeasonHandlerTestSuite) TestCreateSeason() {
	leagueID := uuid.New()
	req := service.CreateSeasonRequest{LeagueID: leagueID, Year: 2024, Active: true}
	resp := &service.SeasonResponse{ID: uuid.New(), LeagueID: leagueID, Year: 2024, Active: true, Label: "Premier 2024/2025"}
	suite.mockSeasonSvc.EXPECT().CreateSeason(gomock.Any()).Return(resp, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/seasons", req)

	var got service.SeasonResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	assert.Equal(suite.T(), 2024, got.Year)
	assert.Equal(suite.T(), "Premier 2024/2025", got.Label)
}

func (suite *SeasonHandlerTestSuite) TestCreateSeasonDuplicate() {
	suite.mockSeasonSvc.EXPECT().CreateSeason(gomock.Any()).Return(nil, apperrors.ErrSeasonExists)

	req := service.CreateSeasonRequest{LeagueID: uuid.New(), Year: 2024}
	w := suite.http.MakeRequest(http.MethodPost, "/seasons", req)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "season already exists")
}

func (suite *SeasonHandlerTestSuite) TestGetSeasonInvalidID() {
	w := suite.http.MakeRequest(http.MethodGet, "/seasons/oops", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid season ID")
}

func (suite *SeasonHandlerTestSuite) TestAddTeam() {
	seasonID, teamID := uuid.New(), uuid.New()
	resp := &service.SeasonTeamResponse{ID: uuid.New(), SeasonID: seasonID, TeamID: teamID, TeamName: "Rockets"}
	suite.mockSeasonSvc.EXPECT().AddTeamToSeason(seasonID, gomock.Any()).Return(resp, nil)

	req := service.AddTeamToSeasonRequest{TeamID: teamID}
	w := suite.http.MakeRequest(http.MethodPost, "/seasons/"+seasonID.String()+"/teams", req)

	var got service.SeasonTeamResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	assert.Equal(suite.T(), "Rockets", got.TeamName)
}

func (suite *SeasonHandlerTestSuite) TestAddTeamAlreadyInSeason() {
	seasonID := uuid.New()
	suite.mockSeasonSvc.EXPECT().AddTeamToSeason(seasonID, gomock.Any()).Return(nil, apperrors.ErrSeasonTeamExists)

	req := service.AddTeamToSeasonRequest{TeamID: uuid.New()}
	w := suite.http.MakeRequest(http.MethodPost, "/seasons/"+seasonID.String()+"/teams", req)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "team already exists in this season")
}

func (suite *SeasonHandlerTestSuite) TestListTeams() {
	seasonID := uuid.New()
	teams := []service.SeasonTeamResponse{
		{ID: uuid.New(), SeasonID: seasonID, TeamID: uuid.New(), TeamName: "Rockets"},
		{ID: uuid.New(), SeasonID: seasonID, TeamID: uuid.New(), TeamName: "Comets"},
	}
	suite.mockSeasonSvc.EXPECT().GetSeasonTeams(seasonID).Return(teams, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/seasons/"+seasonID.String()+"/teams", nil)

	var got []service.SeasonTeamResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Len(suite.T(), got, 2)
}

func (suite *SeasonHandlerTestSuite) TestGenerateSchedule() {
	seasonID := uuid.New()
	resp := &service.GenerateScheduleResponse{
		Message:        "schedule generated for Premier 2024/2025",
		Rounds:         6,
		MatchesCreated: 12,
	}
	suite.mockScheduleSvc.EXPECT().GenerateSchedule(seasonID, gomock.Any()).Return(resp, nil)

	req := service.GenerateScheduleRequest{StartDate: "2024-09-01", IntervalDays: 7}
	w := suite.http.MakeRequest(http.MethodPost, "/seasons/"+seasonID.String()+"/schedule", req)

	var got service.GenerateScheduleResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	assert.Equal(suite.T(), 6, got.Rounds)
	assert.Equal(suite.T(), 12, got.MatchesCreated)
}

func (suite *SeasonHandlerTestSuite) TestGenerateScheduleBadDate() {
	seasonID := uuid.New()
	suite.mockScheduleSvc.EXPECT().
		GenerateSchedule(seasonID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("start_date", "must be a date in YYYY-MM-DD format"))

	req := service.GenerateScheduleRequest{StartDate: "01/09/2024", IntervalDays: 7}
	w := suite.http.MakeRequest(http.MethodPost, "/seasons/"+seasonID.String()+"/schedule", req)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "YYYY-MM-DD")
}

func (suite *SeasonHandlerTestSuite) TestListMatchDays() {
	seasonID := uuid.New()
	days := []service.MatchDayResponse{
		{ID: uuid.New(), SeasonID: seasonID, RoundNumber: 1, Date: "2024-09-01"},
		{ID: uuid.New(), SeasonID: seasonID, RoundNumber: 2, Date: "2024-09-08"},
	}
	suite.mockMatchSvc.EXPECT().GetMatchDaysBySeason(seasonID).Return(days, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/seasons/"+seasonID.String()+"/match-days", nil)

	var got []service.MatchDayResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Len(suite.T(), got, 2)
	assert.Equal(suite.T(), 1, got[0].RoundNumber)
}

func (suite *SeasonHandlerTestSuite) TestGetRoster() {
	seasonTeamID := uuid.New()
	resp := &service.SeasonTeamResponse{
		ID:       seasonTeamID,
		SeasonID: uuid.New(),
		TeamID:   uuid.New(),
		TeamName: "Rockets",
		Players: []service.PlayerResponse{
			{ID: uuid.New(), FullName: "Ana Silva"},
		},
	}
	suite.mockSeasonSvc.EXPECT().GetRoster(seasonTeamID).Return(resp, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/season-teams/"+seasonTeamID.String(), nil)

	var got service.SeasonTeamResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Len(suite.T(), got.Players, 1)
	assert.Equal(suite.T(), "Ana Silva", got.Players[0].FullName)
}

func (suite *SeasonHandlerTestSuite) TestGetRosterNotFound() {
	seasonTeamID := uuid.New()
	suite.mockSeasonSvc.EXPECT().GetRoster(seasonTeamID).Return(nil, apperrors.ErrSeasonTeamNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/season-teams/"+seasonTeamID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "season roster entry not found")
}

func (suite *SeasonHandlerTestSuite) TestAddPlayerToRoster() {
	seasonTeamID, playerID := uuid.New(), uuid.New()
	resp := &service.SeasonTeamResponse{
		ID:       seasonTeamID,
		TeamName: "Rockets",
		Players:  []service.PlayerResponse{{ID: playerID, FullName: "Ana Silva"}},
	}
	suite.mockSeasonSvc.EXPECT().AddPlayerToRoster(seasonTeamID, gomock.Any()).Return(resp, nil)

	req := service.AddPlayerToRosterRequest{PlayerID: playerID}
	w := suite.http.MakeRequest(http.MethodPost, "/season-teams/"+seasonTeamID.String()+"/players", req)

	var got service.SeasonTeamResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Len(suite.T(), got.Players, 1)
}

func (suite *SeasonHandlerTestSuite) TestAddPlayerToRosterAlreadyRostered() {
	seasonTeamID := uuid.New()
	suite.mockSeasonSvc.EXPECT().
		AddPlayerToRoster(seasonTeamID, gomock.Any()).
		Return(nil, apperrors.ErrPlayerAlreadyInRoster)

	req := service.AddPlayerToRosterRequest{PlayerID: uuid.New()}
	w := suite.http.MakeRequest(http.MethodPost, "/season-teams/"+seasonTeamID.String()+"/players", req)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "already belongs to a roster")
}

func (suite *SeasonHandlerTestSuite) TestRemovePlayerFromRoster() {
	seasonTeamID, playerID := uuid.New(), uuid.New()
	suite.mockSeasonSvc.EXPECT().RemovePlayerFromRoster(seasonTeamID, playerID).Return(nil)

	w := suite.http.MakeRequest(http.MethodDelete, "/season-teams/"+seasonTeamID.String()+"/players/"+playerID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *SeasonHandlerTestSuite) TestRemoveTeamFromSeason() {
	seasonTeamID := uuid.New()
	suite.mockSeasonSvc.EXPECT().RemoveTeamFromSeason(seasonTeamID).Return(nil)

	w := suite.http.MakeRequest(http.MethodDelete, "/season-teams/"+seasonTeamID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func TestSeasonHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SeasonHandlerTestSuite))
}
