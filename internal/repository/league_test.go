//go:build integration
// +build integration

package repository

import (
	"testing"

	"league-manager-backend/internal/database/models"
	"league-manager-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LeagueRepositoryTestSuite tests the LeagueRepository
type LeagueRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	repo          *LeagueRepository
}

// SetupSuite runs before all tests in the suite
func (suite *LeagueRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
	suite.repo = NewLeagueRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *LeagueRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *LeagueRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *LeagueRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByID tests creating and retrieving a league
func (suite *LeagueRepositoryTestSuite) TestCreateAndGetByID() {
	league := suite.factories.League.WithName("Premier")

	err := suite.repo.Create(league)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(league.ID)
	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(league.ID, retrieved.ID)
	suite.Equal("Premier", retrieved.Name)
	suite.Equal(models.LeagueTypeRegular, retrieved.Type)
}

// TestGetByIDNotFound tests retrieving a non-existent league
func (suite *LeagueRepositoryTestSuite) TestGetByIDNotFound() {
	league, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(league)
}

// TestGetAll tests listing leagues ordered by name
func (suite *LeagueRepositoryTestSuite) TestGetAll() {
	suite.NoError(suite.repo.Create(suite.factories.League.WithName("Challenge Cup")))
	suite.NoError(suite.repo.Create(suite.factories.League.WithName("Amateur")))
	suite.NoError(suite.repo.Create(suite.factories.League.WithName("Premier")))

	leagues, total, err := suite.repo.GetAll(10, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(leagues, 3)
	suite.Equal("Amateur", leagues[0].Name)
	suite.Equal("Challenge Cup", leagues[1].Name)
	suite.Equal("Premier", leagues[2].Name)
}

// TestGetAllWithPagination tests listing leagues page by page
func (suite *LeagueRepositoryTestSuite) TestGetAllWithPagination() {
	for i := 0; i < 5; i++ {
		suite.NoError(suite.repo.Create(suite.factories.League.WithName("League " + uuid.New().String()[:6])))
	}

	leagues, total, err := suite.repo.GetAll(2, 0)
	suite.NoError(err)
	suite.Len(leagues, 2)
	suite.Equal(int64(5), total)

	leagues, total, err = suite.repo.GetAll(2, 4)
	suite.NoError(err)
	suite.Len(leagues, 1)
	suite.Equal(int64(5), total)
}

// TestUpdate tests updating a league
func (suite *LeagueRepositoryTestSuite) TestUpdate() {
	league := suite.factories.League.WithName("Premier")
	suite.NoError(suite.repo.Create(league))

	league.Name = "Premier North"
	league.Type = models.LeagueTypeCup
	suite.NoError(suite.repo.Update(league))

	retrieved, err := suite.repo.GetByID(league.ID)
	suite.NoError(err)
	suite.Equal("Premier North", retrieved.Name)
	suite.Equal(models.LeagueTypeCup, retrieved.Type)
}

// TestDelete tests deleting a league
func (suite *LeagueRepositoryTestSuite) TestDelete() {
	league := suite.factories.League.Create()
	suite.NoError(suite.repo.Create(league))

	suite.NoError(suite.repo.Delete(league.ID))

	_, err := suite.repo.GetByID(league.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestLeagueRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LeagueRepositoryTestSuite))
}
