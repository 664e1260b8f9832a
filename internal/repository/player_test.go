//go:build integration
// +build integration

package repository

import (
	"testing"

	"league-manager-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PlayerRepositoryTestSuite tests the PlayerRepository
type PlayerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	repo          *PlayerRepository
}

// SetupSuite runs before all tests in the suite
func (suite *PlayerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
	suite.repo = NewPlayerRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *PlayerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PlayerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PlayerRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestGetByIDs tests batch lookup by ID set
func (suite *PlayerRepositoryTestSuite) TestGetByIDs() {
	first := suite.factories.Player.WithName("Ana", "Silva")
	second := suite.factories.Player.WithName("Rui", "Costa")
	third := suite.factories.Player.WithName("Maria", "Santos")
	for _, p := range []interface{}{first, second, third} {
		suite.NoError(suite.baseTestSuite.DB.Create(p).Error)
	}

	players, err := suite.repo.GetByIDs([]uuid.UUID{first.ID, third.ID})

	suite.NoError(err)
	suite.Len(players, 2)
}

// TestGetByIDsEmpty tests that an empty ID set short-circuits
func (suite *PlayerRepositoryTestSuite) TestGetByIDsEmpty() {
	players, err := suite.repo.GetByIDs(nil)

	suite.NoError(err)
	suite.Len(players, 0)
}

// TestSearch tests case-insensitive name search
func (suite *PlayerRepositoryTestSuite) TestSearch() {
	suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Player.WithName("Ana", "Silva")).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Player.WithName("Silvia", "Costa")).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Player.WithName("Rui", "Santos")).Error)

	// Matches "Silva" as last name and "Silvia" as first name
	players, total, err := suite.repo.Search("silv", 10, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(players, 2)
}

// TestGetCurrentTeam tests resolving a player's team for a season
func (suite *PlayerRepositoryTestSuite) TestGetCurrentTeam() {
	db := suite.baseTestSuite.DB
	league, season, teams, seasonTeams := suite.factories.CreateSeasonWithTeams(1)
	suite.NoError(db.Create(league).Error)
	suite.NoError(db.Create(season).Error)
	suite.NoError(db.Create(teams[0]).Error)
	suite.NoError(db.Create(seasonTeams[0]).Error)

	player := suite.factories.Player.Create()
	suite.NoError(db.Create(player).Error)
	suite.NoError(NewSeasonTeamRepository(db).AddPlayer(seasonTeams[0].ID, player.ID))

	team, err := suite.repo.GetCurrentTeam(season.ID, player.ID)

	suite.NoError(err)
	suite.Equal(teams[0].ID, team.ID)
}

// TestGetCurrentTeamNotRostered tests a player without a roster entry
func (suite *PlayerRepositoryTestSuite) TestGetCurrentTeamNotRostered() {
	player := suite.factories.Player.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(player).Error)

	team, err := suite.repo.GetCurrentTeam(uuid.New(), player.ID)

	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(team)
}

// Run the test suite
func TestPlayerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerRepositoryTestSuite))
}
