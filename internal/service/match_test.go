package service_test

import (
	"testing"
	"time"

	"league-manager-backend/internal/database/models"
	apperrors "league-manager-backend/internal/errors"
	"league-manager-backend/internal/logger"
	"league-manager-backend/internal/mocks"
	"league-manager-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

// MatchServiceTestSuite defines the test suite for MatchService
type MatchServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockMatchRepo    *mocks.MockMatchRepositoryInterface
	mockSegmentRepo  *mocks.MockSegmentScoreRepositoryInterface
	mockMatchDayRepo *mocks.MockMatchDayRepositoryInterface
	mockPlayerRepo   *mocks.MockPlayerRepositoryInterface
	mockStandings    *mocks.MockStandingsServiceInterface
	matchService     *service.MatchService
	validator        *validator.Validate
}

// SetupTest sets up the test suite
func (suite *MatchServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMatchRepo = mocks.NewMockMatchRepositoryInterface(suite.ctrl)
	suite.mockSegmentRepo = mocks.NewMockSegmentScoreRepositoryInterface(suite.ctrl)
	suite.mockMatchDayRepo = mocks.NewMockMatchDayRepositoryInterface(suite.ctrl)
	suite.mockPlayerRepo = mocks.NewMockPlayerRepositoryInterface(suite.ctrl)
	suite.mockStandings = mocks.NewMockStandingsServiceInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.matchService = service.NewMatchService(
		suite.mockMatchRepo,
		suite.mockSegmentRepo,
		suite.mockMatchDayRepo,
		suite.mockPlayerRepo,
		suite.mockStandings,
		suite.validator,
		logger.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *MatchServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// newMatch builds a match with its seven empty segments
func (suite *MatchServiceTestSuite) newMatch(status models.MatchStatus) *models.Match {
	matchID := uuid.New()
	match := &models.Match{
		BaseModel:  models.BaseModel{ID: matchID},
		MatchDayID: uuid.New(),
		HomeTeamID: uuid.New(),
		AwayTeamID: uuid.New(),
		Date:       time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		Status:     status,
		HomeTeam:   models.Team{Name: "Home"},
		AwayTeam:   models.Team{Name: "Away"},
	}
	order := models.SegmentTypeOrder()
	for i, segType := range order {
		match.Segments = append(match.Segments, models.SegmentScore{
			BaseModel:     models.BaseModel{ID: uuid.New()},
			MatchID:       matchID,
			SegmentNumber: i + 1,
			SegmentType:   segType,
		})
	}
	return match
}

// TestStartMatch tests starting a not-yet-started match
func (suite *MatchServiceTestSuite) TestStartMatch() {
	match := suite.newMatch(models.MatchStatusNotStarted)

	suite.mockMatchRepo.EXPECT().
		GetByID(match.ID).
		Return(match, nil).
		Times(1)
	suite.mockMatchRepo.EXPECT().
		UpdateStatus(match.ID, models.MatchStatusInProgress).
		Return(nil).
		Times(1)

	started := suite.newMatch(models.MatchStatusInProgress)
	started.BaseModel.ID = match.ID
	suite.mockMatchRepo.EXPECT().
		GetWithSegments(match.ID).
		Return(started, nil).
		Times(1)

	response, err := suite.matchService.StartMatch(match.ID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), string(models.MatchStatusInProgress), response.Status)
}

// TestStartMatchAlreadyStarted tests starting a running match
func (suite *MatchServiceTestSuite) TestStartMatchAlreadyStarted() {
	match := suite.newMatch(models.MatchStatusInProgress)

	suite.mockMatchRepo.EXPECT().
		GetByID(match.ID).
		Return(match, nil).
		Times(1)

	response, err := suite.matchService.StartMatch(match.ID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMatchAlreadyStarted)
}

// TestStartMatchFinished tests starting a finished match
func (suite *MatchServiceTestSuite) TestStartMatchFinished() {
	match := suite.newMatch(models.MatchStatusFinished)

	suite.mockMatchRepo.EXPECT().
		GetByID(match.ID).
		Return(match, nil).
		Times(1)

	response, err := suite.matchService.StartMatch(match.ID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMatchFinished)
}

// TestStartMatchNotFound tests starting a missing match
func (suite *MatchServiceTestSuite) TestStartMatchNotFound() {
	matchID := uuid.New()

	suite.mockMatchRepo.EXPECT().
		GetByID(matchID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.matchService.StartMatch(matchID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMatchNotFound)
}

// TestRecordSegmentScore tests a plain segment write mid-match
func (suite *MatchServiceTestSuite) TestRecordSegmentScore() {
	match := suite.newMatch(models.MatchStatusInProgress)
	homeIDs := []uuid.UUID{uuid.New(), uuid.New()}
	awayIDs := []uuid.UUID{uuid.New(), uuid.New()}

	req := &service.RecordSegmentRequest{
		HomeScore:     intPtr(4),
		AwayScore:     intPtr(3),
		HomePlayerIDs: homeIDs,
		AwayPlayerIDs: awayIDs,
	}

	suite.mockMatchRepo.EXPECT().
		GetWithSegments(match.ID).
		Return(match, nil).
		Times(1)
	suite.mockPlayerRepo.EXPECT().
		GetByIDs(homeIDs).
		Return([]models.Player{{BaseModel: models.BaseModel{ID: homeIDs[0]}}, {BaseModel: models.BaseModel{ID: homeIDs[1]}}}, nil).
		Times(1)
	suite.mockPlayerRepo.EXPECT().
		GetByIDs(awayIDs).
		Return([]models.Player{{BaseModel: models.BaseModel{ID: awayIDs[0]}}, {BaseModel: models.BaseModel{ID: awayIDs[1]}}}, nil).
		Times(1)
	suite.mockSegmentRepo.EXPECT().
		UpdateScore(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.matchService.RecordSegmentScore(match.ID, 1, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.False(suite.T(), response.MatchFinished)
	assert.False(suite.T(), response.MatchDayComplete)
	assert.Equal(suite.T(), 4, *response.Match.HomeScore)
	assert.Equal(suite.T(), 3, *response.Match.AwayScore)
}

// TestRecordSegmentScoreNotStarted tests writing to a match that never started
func (suite *MatchServiceTestSuite) TestRecordSegmentScoreNotStarted() {
	match := suite.newMatch(models.MatchStatusNotStarted)

	suite.mockMatchRepo.EXPECT().
		GetWithSegments(match.ID).
		Return(match, nil).
		Times(1)

	response, err := suite.matchService.RecordSegmentScore(match.ID, 1, &service.RecordSegmentRequest{})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "not been started")
}

// TestRecordSegmentScoreFinishedMatch tests that finished matches are immutable
func (suite *MatchServiceTestSuite) TestRecordSegmentScoreFinishedMatch() {
	match := suite.newMatch(models.MatchStatusFinished)

	suite.mockMatchRepo.EXPECT().
		GetWithSegments(match.ID).
		Return(match, nil).
		Times(1)

	response, err := suite.matchService.RecordSegmentScore(match.ID, 1, &service.RecordSegmentRequest{})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMatchFinished)
}

// TestRecordSegmentScoreRuleViolation tests that segment rules run before writes
func (suite *MatchServiceTestSuite) TestRecordSegmentScoreRuleViolation() {
	match := suite.newMatch(models.MatchStatusInProgress)

	// Singles segment with a doubles lineup
	req := &service.RecordSegmentRequest{
		HomeScore:     intPtr(4),
		AwayScore:     intPtr(3),
		HomePlayerIDs: []uuid.UUID{uuid.New(), uuid.New()},
		AwayPlayerIDs: []uuid.UUID{uuid.New(), uuid.New()},
	}

	suite.mockMatchRepo.EXPECT().
		GetWithSegments(match.ID).
		Return(match, nil).
		Times(1)

	response, err := suite.matchService.RecordSegmentScore(match.ID, 3, req)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestRecordSegmentScoreUnknownPlayer tests lineups referencing missing players
func (suite *MatchServiceTestSuite) TestRecordSegmentScoreUnknownPlayer() {
	match := suite.newMatch(models.MatchStatusInProgress)
	homeIDs := []uuid.UUID{uuid.New(), uuid.New()}
	awayIDs := []uuid.UUID{uuid.New(), uuid.New()}

	req := &service.RecordSegmentRequest{
		HomeScore:     intPtr(4),
		AwayScore:     intPtr(3),
		HomePlayerIDs: homeIDs,
		AwayPlayerIDs: awayIDs,
	}

	suite.mockMatchRepo.EXPECT().
		GetWithSegments(match.ID).
		Return(match, nil).
		Times(1)
	// Only one of the two home players exists
	suite.mockPlayerRepo.EXPECT().
		GetByIDs(homeIDs).
		Return([]models.Player{{BaseModel: models.BaseModel{ID: homeIDs[0]}}}, nil).
		Times(1)

	response, err := suite.matchService.RecordSegmentScore(match.ID, 1, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPlayerNotFound)
}

// TestRecordSegmentScoreFinishesMatchAndDay tests the completion chain:
// deciding segment finishes the match, last match of the round advances standings
func (suite *MatchServiceTestSuite) TestRecordSegmentScoreFinishesMatchAndDay() {
	match := suite.newMatch(models.MatchStatusInProgress)

	// Six segments already swept 7-0; the seventh decides at 49
	for i := 0; i < 6; i++ {
		match.Segments[i].HomeScore = intPtr(7)
		match.Segments[i].AwayScore = intPtr(0)
	}

	homeIDs := []uuid.UUID{uuid.New(), uuid.New()}
	awayIDs := []uuid.UUID{uuid.New(), uuid.New()}
	req := &service.RecordSegmentRequest{
		HomeScore:     intPtr(7),
		AwayScore:     intPtr(0),
		HomePlayerIDs: homeIDs,
		AwayPlayerIDs: awayIDs,
	}

	suite.mockMatchRepo.EXPECT().
		GetWithSegments(match.ID).
		Return(match, nil).
		Times(1)
	suite.mockPlayerRepo.EXPECT().
		GetByIDs(homeIDs).
		Return([]models.Player{{BaseModel: models.BaseModel{ID: homeIDs[0]}}, {BaseModel: models.BaseModel{ID: homeIDs[1]}}}, nil).
		Times(1)
	suite.mockPlayerRepo.EXPECT().
		GetByIDs(awayIDs).
		Return([]models.Player{{BaseModel: models.BaseModel{ID: awayIDs[0]}}, {BaseModel: models.BaseModel{ID: awayIDs[1]}}}, nil).
		Times(1)
	suite.mockSegmentRepo.EXPECT().
		UpdateScore(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)
	suite.mockMatchRepo.EXPECT().
		UpdateStatus(match.ID, models.MatchStatusFinished).
		Return(nil).
		Times(1)

	// The round's only other match is already finished
	suite.mockMatchRepo.EXPECT().
		GetByMatchDayID(match.MatchDayID).
		Return([]models.Match{
			{BaseModel: match.BaseModel, Status: models.MatchStatusFinished},
			{BaseModel: models.BaseModel{ID: uuid.New()}, Status: models.MatchStatusFinished},
		}, nil).
		Times(1)
	suite.mockStandings.EXPECT().
		AdvanceStandings(match.MatchDayID).
		Return(nil).
		Times(1)

	response, err := suite.matchService.RecordSegmentScore(match.ID, 7, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.True(suite.T(), response.MatchFinished)
	assert.True(suite.T(), response.MatchDayComplete)
	assert.Equal(suite.T(), 49, *response.Match.HomeScore)
	assert.Equal(suite.T(), 0, *response.Match.AwayScore)
}

// TestRecordSegmentScoreMatchFinishesDayStillOpen tests that standings wait
// for the rest of the round
func (suite *MatchServiceTestSuite) TestRecordSegmentScoreMatchFinishesDayStillOpen() {
	match := suite.newMatch(models.MatchStatusInProgress)
	for i := 0; i < 6; i++ {
		match.Segments[i].HomeScore = intPtr(7)
		match.Segments[i].AwayScore = intPtr(0)
	}

	homeIDs := []uuid.UUID{uuid.New(), uuid.New()}
	awayIDs := []uuid.UUID{uuid.New(), uuid.New()}
	req := &service.RecordSegmentRequest{
		HomeScore:     intPtr(7),
		AwayScore:     intPtr(0),
		HomePlayerIDs: homeIDs,
		AwayPlayerIDs: awayIDs,
	}

	suite.mockMatchRepo.EXPECT().
		GetWithSegments(match.ID).
		Return(match, nil).
		Times(1)
	suite.mockPlayerRepo.EXPECT().
		GetByIDs(gomock.Any()).
		Return([]models.Player{{BaseModel: models.BaseModel{ID: homeIDs[0]}}, {BaseModel: models.BaseModel{ID: homeIDs[1]}}}, nil).
		Times(2)
	suite.mockSegmentRepo.EXPECT().
		UpdateScore(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)
	suite.mockMatchRepo.EXPECT().
		UpdateStatus(match.ID, models.MatchStatusFinished).
		Return(nil).
		Times(1)

	// A sibling fixture is still running
	suite.mockMatchRepo.EXPECT().
		GetByMatchDayID(match.MatchDayID).
		Return([]models.Match{
			{BaseModel: match.BaseModel, Status: models.MatchStatusFinished},
			{BaseModel: models.BaseModel{ID: uuid.New()}, Status: models.MatchStatusInProgress},
		}, nil).
		Times(1)

	response, err := suite.matchService.RecordSegmentScore(match.ID, 7, req)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), response.MatchFinished)
	assert.False(suite.T(), response.MatchDayComplete)
}

// TestGetMatchDay tests retrieving a round with fixtures
func (suite *MatchServiceTestSuite) TestGetMatchDay() {
	dayID := uuid.New()
	matchDay := &models.MatchDay{
		BaseModel:   models.BaseModel{ID: dayID},
		SeasonID:    uuid.New(),
		RoundNumber: 3,
		Date:        time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC),
		Matches: []models.Match{
			{BaseModel: models.BaseModel{ID: uuid.New()}, Status: models.MatchStatusFinished},
			{BaseModel: models.BaseModel{ID: uuid.New()}, Status: models.MatchStatusInProgress},
		},
	}

	suite.mockMatchDayRepo.EXPECT().
		GetWithMatches(dayID).
		Return(matchDay, nil).
		Times(1)

	response, err := suite.matchService.GetMatchDay(dayID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, response.RoundNumber)
	assert.Equal(suite.T(), "2024-09-15", response.Date)
	assert.False(suite.T(), response.Completed)
	assert.Len(suite.T(), response.Matches, 2)
}

// TestMatchServiceTestSuite runs the test suite
func TestMatchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MatchServiceTestSuite))
}
