package queries_test

import (
	"context"
	"testing"
	"time"

	"ewaste/internal/adapters/out/postgres/pickuprepo"
	"ewaste/internal/core/application/usecases/queries"
	"ewaste/internal/core/domain/model/account"
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

// PickupListQueriesTestSuite covers the three list queries over one seeded
// database: the open backlog, the owner's own requests, and the agent's
// assignments.
type PickupListQueriesTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB

	availableHandler queries.GetAvailablePickupsQueryHandler
	myHandler        queries.GetMyPickupsQueryHandler
	assignedHandler  queries.GetAssignedPickupsQueryHandler
}

func (suite *PickupListQueriesTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&pickuprepo.PickupDTO{})
	suite.Require().NoError(err)

	suite.availableHandler = queries.NewGetAvailablePickupsQueryHandler(db)
	suite.myHandler = queries.NewGetMyPickupsQueryHandler(db)
	suite.assignedHandler = queries.NewGetAssignedPickupsQueryHandler(db)
}

func (suite *PickupListQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *PickupListQueriesTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE pickups CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *PickupListQueriesTestSuite) seedPending(ownerID kernel.UUID, scheduled time.Time) *pickup.Pickup {
	item, err := pickup.NewItem(pickup.Other, 1, "")
	suite.Require().NoError(err)

	schedule, err := pickup.NewSchedule(scheduled, "afternoon")
	suite.Require().NoError(err)

	address, err := pickup.NewAddress("1 Elm St", "Portland", "OR", "97201", "USA")
	suite.Require().NoError(err)

	aggregate, err := pickup.NewPickup(
		kernel.NewUUID(), ownerID, []pickup.Item{item}, schedule, address,
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)

	repo := pickuprepo.NewGormPickupRepository(suite.db, &mockAggregateTracker{})
	err = repo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *PickupListQueriesTestSuite) claim(aggregate *pickup.Pickup, agentID kernel.UUID) {
	loaded := aggregate.Status()
	err := aggregate.Claim(agentID, time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)

	repo := pickuprepo.NewGormPickupRepository(suite.db, &mockAggregateTracker{})
	err = repo.Update(context.Background(), aggregate, loaded)
	suite.Require().NoError(err)
}

func (suite *PickupListQueriesTestSuite) principal(id kernel.UUID, role account.Role) account.Principal {
	principal, err := account.NewPrincipal(id, role)
	suite.Require().NoError(err)
	return principal
}

func (suite *PickupListQueriesTestSuite) date(day int) time.Time {
	return time.Date(2026, 11, day, 0, 0, 0, 0, time.UTC)
}

func (suite *PickupListQueriesTestSuite) TestAvailable_OnlyPendingOrderedBySchedule() {
	later := suite.seedPending(kernel.NewUUID(), suite.date(20))
	sooner := suite.seedPending(kernel.NewUUID(), suite.date(5))
	claimed := suite.seedPending(kernel.NewUUID(), suite.date(10))
	suite.claim(claimed, kernel.NewUUID())

	query, err := queries.NewGetAvailablePickupsQuery(
		suite.principal(kernel.NewUUID(), account.Agent),
	)
	suite.Require().NoError(err)

	result, err := suite.availableHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(sooner.ID()))
	suite.True(result[1].ID.IsEqual(later.ID()))
}

func (suite *PickupListQueriesTestSuite) TestAvailable_RequesterForbidden() {
	query, err := queries.NewGetAvailablePickupsQuery(
		suite.principal(kernel.NewUUID(), account.Requester),
	)
	suite.Require().NoError(err)

	_, err = suite.availableHandler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrAccessForbidden)
}

func (suite *PickupListQueriesTestSuite) TestMyPickups_OnlyOwnRequests() {
	ownerID := kernel.NewUUID()
	mine := suite.seedPending(ownerID, suite.date(8))
	suite.seedPending(kernel.NewUUID(), suite.date(9))

	query, err := queries.NewGetMyPickupsQuery(suite.principal(ownerID, account.Requester))
	suite.Require().NoError(err)

	result, err := suite.myHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(mine.ID()))
}

func (suite *PickupListQueriesTestSuite) TestAssigned_OnlyOwnAssignments() {
	agentID := kernel.NewUUID()

	first := suite.seedPending(kernel.NewUUID(), suite.date(3))
	suite.claim(first, agentID)

	other := suite.seedPending(kernel.NewUUID(), suite.date(4))
	suite.claim(other, kernel.NewUUID())

	suite.seedPending(kernel.NewUUID(), suite.date(5))

	query, err := queries.NewGetAssignedPickupsQuery(suite.principal(agentID, account.Agent))
	suite.Require().NoError(err)

	result, err := suite.assignedHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(first.ID()))
	suite.Equal("assigned", result[0].Status)
}

func (suite *PickupListQueriesTestSuite) TestAvailable_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetAvailablePickupsQuery(
		suite.principal(kernel.NewUUID(), account.Agent),
	)
	suite.Require().NoError(err)

	result, err := suite.availableHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func TestPickupListQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(PickupListQueriesTestSuite))
}
