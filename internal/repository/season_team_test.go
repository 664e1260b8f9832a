//go:build integration
// +build integration

package repository

import (
	"testing"

	"league-manager-backend/internal/database/models"
	"league-manager-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// SeasonTeamRepositoryTestSuite tests the SeasonTeamRepository
type SeasonTeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	repo          *SeasonTeamRepository
	season        *models.Season
}

// SetupSuite runs before all tests in the suite
func (suite *SeasonTeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
	suite.repo = NewSeasonTeamRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *SeasonTeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds a league with a season
func (suite *SeasonTeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	league := suite.factories.League.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(league).Error)
	suite.season = suite.factories.Season.WithLeague(league.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.season).Error)
}

// TearDownTest runs after each test
func (suite *SeasonTeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// enterTeam persists a team and its roster entry for the seeded season
func (suite *SeasonTeamRepositoryTestSuite) enterTeam(name string) (*models.Team, *models.SeasonTeam) {
	team := suite.factories.Team.WithName(name)
	suite.NoError(suite.baseTestSuite.DB.Create(team).Error)
	seasonTeam := suite.factories.SeasonTeam.WithSeasonAndTeam(suite.season.ID, team.ID)
	suite.NoError(suite.repo.Create(seasonTeam))
	return team, seasonTeam
}

// TestGetBySeasonIDOrdersByTeamName tests the scheduler-facing ordering
func (suite *SeasonTeamRepositoryTestSuite) TestGetBySeasonIDOrdersByTeamName() {
	suite.enterTeam("Comets")
	suite.enterTeam("Asteroids")
	suite.enterTeam("Rockets")

	entries, err := suite.repo.GetBySeasonID(suite.season.ID)

	suite.NoError(err)
	suite.Len(entries, 3)
	suite.Equal("Asteroids", entries[0].Team.Name)
	suite.Equal("Comets", entries[1].Team.Name)
	suite.Equal("Rockets", entries[2].Team.Name)
}

// TestGetBySeasonAndTeam tests looking up a single roster entry
func (suite *SeasonTeamRepositoryTestSuite) TestGetBySeasonAndTeam() {
	team, seasonTeam := suite.enterTeam("Rockets")

	retrieved, err := suite.repo.GetBySeasonAndTeam(suite.season.ID, team.ID)

	suite.NoError(err)
	suite.Equal(seasonTeam.ID, retrieved.ID)
	suite.Equal("Rockets", retrieved.Team.Name)
}

// TestAddAndRemovePlayer tests the roster membership association
func (suite *SeasonTeamRepositoryTestSuite) TestAddAndRemovePlayer() {
	_, seasonTeam := suite.enterTeam("Rockets")
	player := suite.factories.Player.WithName("Ana", "Silva")
	suite.NoError(suite.baseTestSuite.DB.Create(player).Error)

	suite.NoError(suite.repo.AddPlayer(seasonTeam.ID, player.ID))

	withPlayers, err := suite.repo.GetWithPlayers(seasonTeam.ID)
	suite.NoError(err)
	suite.Len(withPlayers.Players, 1)
	suite.Equal("Silva", withPlayers.Players[0].LastName)

	suite.NoError(suite.repo.RemovePlayer(seasonTeam.ID, player.ID))

	withPlayers, err = suite.repo.GetWithPlayers(seasonTeam.ID)
	suite.NoError(err)
	suite.Len(withPlayers.Players, 0)
}

// TestGetWithPlayersOrdersByName tests roster ordering by last then first name
func (suite *SeasonTeamRepositoryTestSuite) TestGetWithPlayersOrdersByName() {
	_, seasonTeam := suite.enterTeam("Rockets")
	for _, name := range [][2]string{{"Maria", "Costa"}, {"Ana", "Almeida"}, {"Rui", "Costa"}} {
		player := suite.factories.Player.WithName(name[0], name[1])
		suite.NoError(suite.baseTestSuite.DB.Create(player).Error)
		suite.NoError(suite.repo.AddPlayer(seasonTeam.ID, player.ID))
	}

	withPlayers, err := suite.repo.GetWithPlayers(seasonTeam.ID)

	suite.NoError(err)
	suite.Len(withPlayers.Players, 3)
	suite.Equal("Almeida", withPlayers.Players[0].LastName)
	suite.Equal("Maria", withPlayers.Players[1].FirstName)
	suite.Equal("Rui", withPlayers.Players[2].FirstName)
}

// TestPlayerInSeason tests season-wide roster membership across teams
func (suite *SeasonTeamRepositoryTestSuite) TestPlayerInSeason() {
	_, rockets := suite.enterTeam("Rockets")
	suite.enterTeam("Comets")
	player := suite.factories.Player.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(player).Error)

	taken, err := suite.repo.PlayerInSeason(suite.season.ID, player.ID)
	suite.NoError(err)
	suite.False(taken)

	suite.NoError(suite.repo.AddPlayer(rockets.ID, player.ID))

	// Rostered on one team blocks the whole season, not just that team
	taken, err = suite.repo.PlayerInSeason(suite.season.ID, player.ID)
	suite.NoError(err)
	suite.True(taken)
}

// TestDelete tests withdrawing a team's roster entry
func (suite *SeasonTeamRepositoryTestSuite) TestDelete() {
	_, seasonTeam := suite.enterTeam("Rockets")

	suite.NoError(suite.repo.Delete(seasonTeam.ID))

	entries, err := suite.repo.GetBySeasonID(suite.season.ID)
	suite.NoError(err)
	suite.Len(entries, 0)
}

// Run the test suite
func TestSeasonTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SeasonTeamRepositoryTestSuite))
}
