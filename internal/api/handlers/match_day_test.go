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

// MatchDayHandlerTestSuite defines the test suite for MatchDayHandler
type MatchDayHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockMatchSvc     *mocks.MockMatchServiceInterface
	mockStandingsSvc *mocks.MockStandingsServiceInterface
	handler          *handlers.MatchDayHandler
	http             *testutils.HTTPTestSuite
}

func (suite *MatchDayHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMatchSvc = mocks.NewMockMatchServiceInterface(suite.ctrl)
	suite.mockStandingsSvc = mocks.NewMockStandingsServiceInterface(suite.ctrl)
	suite.handler = handlers.NewMatchDayHandler(suite.mockMatchSvc, suite.mockStandingsSvc)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.GET("/match-days/:id", suite.handler.GetMatchDay)
	suite.http.Router.GET("/match-days/:id/standings", suite.handler.GetStandings)
}

func (suite *MatchDayHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MatchDayHandlerTestSuite) TestGetMatchDay() {
	dayID := uuid.New()
	resp := &service.MatchDayResponse{
		ID:          dayID,
		SeasonID:    uuid.New(),
		RoundNumber: 3,
		Date:        "2024-09-15",
		Completed:   false,
		Matches: []service.MatchResponse{
			{ID: uuid.New(), HomeTeam: "Rockets", AwayTeam: "Comets", Status: "not_started"},
		},
	}
	suite.mockMatchSvc.EXPECT().GetMatchDay(dayID).Return(resp, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/match-days/"+dayID.String(), nil)

	var got service.MatchDayResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), 3, got.RoundNumber)
	assert.Equal(suite.T(), "2024-09-15", got.Date)
	assert.False(suite.T(), got.Completed)
	assert.Len(suite.T(), got.Matches, 1)
}

func (suite *MatchDayHandlerTestSuite) TestGetMatchDayInvalidID() {
	w := suite.http.MakeRequest(http.MethodGet, "/match-days/xyz", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid match day ID")
}

func (suite *MatchDayHandlerTestSuite) TestGetMatchDayNotFound() {
	dayID := uuid.New()
	suite.mockMatchSvc.EXPECT().GetMatchDay(dayID).Return(nil, apperrors.ErrMatchDayNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/match-days/"+dayID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "match day not found")
}

func (suite *MatchDayHandlerTestSuite) TestGetStandings() {
	dayID := uuid.New()
	resp := &service.StandingsResponse{
		MatchDayID:  dayID,
		RoundNumber: 4,
		Rows: []service.StandingsRowResponse{
			{Position: 1, TeamName: "Leaders", Played: 4, Wins: 4, GoalsFor: 120, GoalsAgainst: 76, GoalDifference: 44, Points: 12},
			{Position: 2, TeamName: "Stragglers", Played: 4, Losses: 4, GoalsFor: 76, GoalsAgainst: 120, GoalDifference: -44},
		},
	}
	suite.mockStandingsSvc.EXPECT().GetStandings(dayID).Return(resp, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/match-days/"+dayID.String()+"/standings", nil)

	var got service.StandingsResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), 4, got.RoundNumber)
	assert.Len(suite.T(), got.Rows, 2)
	assert.Equal(suite.T(), "Leaders", got.Rows[0].TeamName)
	assert.Equal(suite.T(), 12, got.Rows[0].Points)
	assert.Equal(suite.T(), -44, got.Rows[1].GoalDifference)
}

func (suite *MatchDayHandlerTestSuite) TestGetStandingsNotFound() {
	dayID := uuid.New()
	suite.mockStandingsSvc.EXPECT().GetStandings(dayID).Return(nil, apperrors.ErrMatchDayNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/match-days/"+dayID.String()+"/standings", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "match day not found")
}

func TestMatchDayHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MatchDayHandlerTestSuite))
}
