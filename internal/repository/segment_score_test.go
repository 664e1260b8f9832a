//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"league-manager-backend/internal/database/models"
	"league-manager-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SegmentScoreRepositoryTestSuite tests the SegmentScoreRepository
type SegmentScoreRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	repo          *SegmentScoreRepository
	match         *models.Match
}

// SetupSuite runs before all tests in the suite
func (suite *SegmentScoreRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
	suite.repo = NewSegmentScoreRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *SegmentScoreRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds a match with its segment set
func (suite *SegmentScoreRepositoryTestSuite) SetupTest() {
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

	matchDay := suite.factories.MatchDay.WithSeason(season.ID)
	suite.NoError(db.Create(matchDay).Error)

	suite.match = &models.Match{
		MatchDayID: matchDay.ID,
		HomeTeamID: teams[0].ID,
		AwayTeamID: teams[1].ID,
		Date:       time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		Status:     models.MatchStatusInProgress,
	}
	suite.NoError(NewMatchRepository(db).CreateWithSegments(suite.match))
}

// TearDownTest runs after each test
func (suite *SegmentScoreRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createPlayers persists n players
func (suite *SegmentScoreRepositoryTestSuite) createPlayers(n int) []models.Player {
	players := make([]models.Player, 0, n)
	for i := 0; i < n; i++ {
		player := suite.factories.Player.Create()
		suite.NoError(suite.baseTestSuite.DB.Create(player).Error)
		players = append(players, *player)
	}
	return players
}

// TestGetByMatchAndNumber tests retrieving one segment of a match
func (suite *SegmentScoreRepositoryTestSuite) TestGetByMatchAndNumber() {
	segment, err := suite.repo.GetByMatchAndNumber(suite.match.ID, 3)

	suite.NoError(err)
	suite.Equal(3, segment.SegmentNumber)
	suite.Equal(models.SegmentTypeOrder()[2], segment.SegmentType)
	suite.Nil(segment.HomeScore)
}

// TestGetByMatchAndNumberNotFound tests an out-of-range segment number
func (suite *SegmentScoreRepositoryTestSuite) TestGetByMatchAndNumberNotFound() {
	segment, err := suite.repo.GetByMatchAndNumber(suite.match.ID, 8)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(segment)
}

// TestGetByMatchID tests listing a match's segments in play order
func (suite *SegmentScoreRepositoryTestSuite) TestGetByMatchID() {
	segments, err := suite.repo.GetByMatchID(suite.match.ID)

	suite.NoError(err)
	suite.Len(segments, 7)
	for i, segment := range segments {
		suite.Equal(i+1, segment.SegmentNumber)
	}
}

// TestUpdateScore tests persisting scores together with both lineups
func (suite *SegmentScoreRepositoryTestSuite) TestUpdateScore() {
	segment, err := suite.repo.GetByMatchAndNumber(suite.match.ID, 1)
	suite.NoError(err)

	homePlayers := suite.createPlayers(2)
	awayPlayers := suite.createPlayers(2)
	home, away := 4, 3
	segment.HomeScore = &home
	segment.AwayScore = &away

	suite.NoError(suite.repo.UpdateScore(segment, homePlayers, awayPlayers))

	retrieved, err := suite.repo.GetByMatchAndNumber(suite.match.ID, 1)
	suite.NoError(err)
	suite.Equal(4, *retrieved.HomeScore)
	suite.Equal(3, *retrieved.AwayScore)
	suite.Len(retrieved.HomePlayers, 2)
	suite.Len(retrieved.AwayPlayers, 2)
}

// TestUpdateScoreReplacesLineups tests that a correction swaps the lineup
// instead of appending to it
func (suite *SegmentScoreRepositoryTestSuite) TestUpdateScoreReplacesLineups() {
	segment, err := suite.repo.GetByMatchAndNumber(suite.match.ID, 3)
	suite.NoError(err)

	first := suite.createPlayers(1)
	second := suite.createPlayers(1)
	home, away := 2, 5
	segment.HomeScore = &home
	segment.AwayScore = &away

	suite.NoError(suite.repo.UpdateScore(segment, first, suite.createPlayers(1)))
	suite.NoError(suite.repo.UpdateScore(segment, second, suite.createPlayers(1)))

	retrieved, err := suite.repo.GetByMatchAndNumber(suite.match.ID, 3)
	suite.NoError(err)
	suite.Len(retrieved.HomePlayers, 1)
	suite.Equal(second[0].ID, retrieved.HomePlayers[0].ID)
}

// Run the test suite
func TestSegmentScoreRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SegmentScoreRepositoryTestSuite))
}
