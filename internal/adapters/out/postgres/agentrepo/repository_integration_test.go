package agentrepo_test

import (
	"context"
	"testing"
	"time"

	"ewaste/internal/adapters/out/postgres/agentrepo"
	"ewaste/internal/core/domain/model/agent"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/domain/model/pickup"
	"ewaste/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type AgentProfileRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

// mockAggregateTracker is a no-op tracker for repository tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func (suite *AgentProfileRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&agentrepo.AgentProfileDTO{})
	suite.Require().NoError(err)
}

func (suite *AgentProfileRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *AgentProfileRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE agent_profiles CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *AgentProfileRepositoryTestSuite) repository() *agentrepo.GormAgentProfileRepository {
	return agentrepo.NewGormAgentProfileRepository(suite.db, &mockAggregateTracker{})
}

func (suite *AgentProfileRepositoryTestSuite) newProfile(businessName string) *agent.Profile {
	profile, err := agent.NewProfile(
		kernel.NewUUID(),
		businessName,
		[]agent.Service{agent.Pickup, agent.DropOff},
		[]pickup.Category{pickup.Computer, pickup.Printer},
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	return profile
}

func (suite *AgentProfileRepositoryTestSuite) TestAddAndGet_RoundTrip() {
	profile := suite.newProfile("Green Loop Recycling")

	err := suite.repository().Add(context.Background(), profile)
	suite.Require().NoError(err)

	restored, err := suite.repository().Get(context.Background(), profile.AccountID())
	suite.Require().NoError(err)

	suite.True(restored.AccountID().IsEqual(profile.AccountID()))
	suite.Equal("Green Loop Recycling", restored.BusinessName())
	suite.Equal([]agent.Service{agent.Pickup, agent.DropOff}, restored.Services())
	suite.Equal([]pickup.Category{pickup.Computer, pickup.Printer}, restored.AcceptedCategories())
	suite.False(restored.IsVerified())
}

func (suite *AgentProfileRepositoryTestSuite) TestGet_UnknownAccount_ReturnsNotFound() {
	_, err := suite.repository().Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AgentProfileRepositoryTestSuite) TestUpdate_KeepsVerifiedFlag() {
	profile := suite.newProfile("Green Loop Recycling")
	err := suite.repository().Add(context.Background(), profile)
	suite.Require().NoError(err)

	profile.Verify(time.Now().UTC().Truncate(time.Microsecond))
	err = suite.repository().Update(context.Background(), profile)
	suite.Require().NoError(err)

	err = profile.Update(
		"Green Loop Recycling Inc",
		[]agent.Service{agent.OnSite},
		[]pickup.Category{pickup.Mobile},
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)

	err = suite.repository().Update(context.Background(), profile)
	suite.Require().NoError(err)

	restored, err := suite.repository().Get(context.Background(), profile.AccountID())
	suite.Require().NoError(err)

	suite.Equal("Green Loop Recycling Inc", restored.BusinessName())
	suite.Equal([]agent.Service{agent.OnSite}, restored.Services())
	suite.True(restored.IsVerified())
}

func (suite *AgentProfileRepositoryTestSuite) TestUpdate_UnknownAccount_ReturnsNotFound() {
	profile := suite.newProfile("Never Added")

	err := suite.repository().Update(context.Background(), profile)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AgentProfileRepositoryTestSuite) TestGetAllVerified_FiltersAndOrders() {
	verified1 := suite.newProfile("Zeta Scrap")
	verified2 := suite.newProfile("Alpha E-Cycle")
	unverified := suite.newProfile("Hidden Recycler")

	repo := suite.repository()
	for _, p := range []*agent.Profile{verified1, verified2, unverified} {
		err := repo.Add(context.Background(), p)
		suite.Require().NoError(err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	verified1.Verify(now)
	verified2.Verify(now)
	suite.Require().NoError(repo.Update(context.Background(), verified1))
	suite.Require().NoError(repo.Update(context.Background(), verified2))

	profiles, err := repo.GetAllVerified(context.Background())
	suite.Require().NoError(err)

	suite.Require().Len(profiles, 2)
	suite.Equal("Alpha E-Cycle", profiles[0].BusinessName())
	suite.Equal("Zeta Scrap", profiles[1].BusinessName())
}

func TestAgentProfileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AgentProfileRepositoryTestSuite))
}
