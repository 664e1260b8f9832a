//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"league-manager-backend/internal/database/models"
	"league-manager-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// MatchRepositoryTestSuite tests the MatchRepository
type MatchRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	repo          *MatchRepository
	matchDay      *models.MatchDay
	homeTeam      *models.Team
	awayTeam      *models.Team
}

// SetupSuite runs before all tests in the suite
func (suite *MatchRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
	suite.repo = NewMatchRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *MatchRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds a season with two teams and a round
func (suite *MatchRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	db := suite.baseTestSuite.DB
	league, season, teams, seasonTeams := suite.factories.CreateSeasonWithTeams(2)
	suite.NoError(db.Create(league).Error)
	suite.NoError(db.Create(season).Error)
	for i := range teams {
		suite.NoError(db.Create(teams[i]).Error)
	}
	for i := range seasonTeams {
		suite.NoError(db.Create(seasonTeams[i]).Error)
	}
	suite.homeTeam = teams[0]
	suite.awayTeam = teams[1]

	suite.matchDay = suite.factories.MatchDay.WithSeason(season.ID)
	suite.NoError(db.Create(suite.matchDay).Error)
}

// TearDownTest runs after each test
func (suite *MatchRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// newFixture builds an unpersisted match between the seeded teams
func (suite *MatchRepositoryTestSuite) newFixture() *models.Match {
	return &models.Match{
		MatchDayID: suite.matchDay.ID,
		HomeTeamID: suite.homeTeam.ID,
		AwayTeamID: suite.awayTeam.ID,
		Date:       time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		Status:     models.MatchStatusNotStarted,
	}
}

// TestCreateWithSegments tests that a match is born with its seven segments
func (suite *MatchRepositoryTestSuite) TestCreateWithSegments() {
	match := suite.newFixture()

	err := suite.repo.CreateWithSegments(match)
	suite.NoError(err)

	retrieved, err := suite.repo.GetWithSegments(match.ID)
	suite.NoError(err)
	suite.Len(retrieved.Segments, 7)

	order := models.SegmentTypeOrder()
	for i, segment := range retrieved.Segments {
		suite.Equal(i+1, segment.SegmentNumber)
		suite.Equal(order[i], segment.SegmentType)
		suite.Nil(segment.HomeScore)
		suite.Nil(segment.AwayScore)
	}
}

// TestGetByIDLoadsTeams tests that team associations come back with the match
func (suite *MatchRepositoryTestSuite) TestGetByIDLoadsTeams() {
	match := suite.newFixture()
	suite.NoError(suite.repo.CreateWithSegments(match))

	retrieved, err := suite.repo.GetByID(match.ID)

	suite.NoError(err)
	suite.Equal(suite.homeTeam.Name, retrieved.HomeTeam.Name)
	suite.Equal(suite.awayTeam.Name, retrieved.AwayTeam.Name)
}

// TestUpdateStatus tests moving a match through its lifecycle
func (suite *MatchRepositoryTestSuite) TestUpdateStatus() {
	match := suite.newFixture()
	suite.NoError(suite.repo.CreateWithSegments(match))

	suite.NoError(suite.repo.UpdateStatus(match.ID, models.MatchStatusInProgress))

	retrieved, err := suite.repo.GetByID(match.ID)
	suite.NoError(err)
	suite.Equal(models.MatchStatusInProgress, retrieved.Status)
}

// TestGetByMatchDayID tests listing the fixtures of a round
func (suite *MatchRepositoryTestSuite) TestGetByMatchDayID() {
	match := suite.newFixture()
	suite.NoError(suite.repo.CreateWithSegments(match))

	reverse := suite.newFixture()
	reverse.HomeTeamID, reverse.AwayTeamID = suite.awayTeam.ID, suite.homeTeam.ID
	suite.NoError(suite.repo.CreateWithSegments(reverse))

	matches, err := suite.repo.GetByMatchDayID(suite.matchDay.ID)

	suite.NoError(err)
	suite.Len(matches, 2)
	for _, m := range matches {
		suite.Len(m.Segments, 7)
		suite.NotEmpty(m.HomeTeam.Name)
	}
}

// TestGetFinishedByMatchDayID tests filtering on finished matches only
func (suite *MatchRepositoryTestSuite) TestGetFinishedByMatchDayID() {
	finished := suite.newFixture()
	suite.NoError(suite.repo.CreateWithSegments(finished))
	suite.NoError(suite.repo.UpdateStatus(finished.ID, models.MatchStatusFinished))

	open := suite.newFixture()
	open.HomeTeamID, open.AwayTeamID = suite.awayTeam.ID, suite.homeTeam.ID
	suite.NoError(suite.repo.CreateWithSegments(open))

	matches, err := suite.repo.GetFinishedByMatchDayID(suite.matchDay.ID)

	suite.NoError(err)
	suite.Len(matches, 1)
	suite.Equal(finished.ID, matches[0].ID)
	suite.Len(matches[0].Segments, 7)
}

// Run the test suite
func TestMatchRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MatchRepositoryTestSuite))
}
