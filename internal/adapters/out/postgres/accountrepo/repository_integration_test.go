package accountrepo_test

import (
	"context"
	"testing"
	"time"

	"ewaste/internal/adapters/out/postgres/accountrepo"
	"ewaste/internal/core/domain/model/account"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type AccountRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func (suite *AccountRepositoryTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&accountrepo.AccountDTO{})
	suite.Require().NoError(err)
}

func (suite *AccountRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *AccountRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE accounts").Error
	suite.Require().NoError(err)
}

func (suite *AccountRepositoryTestSuite) newRepo() *accountrepo.GormAccountRepository {
	return accountrepo.NewGormAccountRepository(suite.db, &mockAggregateTracker{})
}

func (suite *AccountRepositoryTestSuite) newAccount(email string) *account.Account {
	aggregate, err := account.NewAccount(
		kernel.NewUUID(),
		"Dana Reyes",
		email,
		"$2a$10$hash",
		account.Requester,
		"+1 555 0100",
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *AccountRepositoryTestSuite) TestAddAndGet_RoundTrip() {
	repo := suite.newRepo()
	aggregate := suite.newAccount("dana@example.com")

	err := repo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)

	restored, err := repo.Get(context.Background(), aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal("dana@example.com", restored.Email())
	suite.Equal(account.Requester, restored.Role())
	suite.Equal("$2a$10$hash", restored.PasswordHash())
}

func (suite *AccountRepositoryTestSuite) TestAdd_DuplicateEmail_Fails() {
	repo := suite.newRepo()
	suite.Require().NoError(repo.Add(context.Background(), suite.newAccount("dana@example.com")))

	err := repo.Add(context.Background(), suite.newAccount("dana@example.com"))

	suite.Require().ErrorIs(err, errs.ErrConcurrentModification)
}

func (suite *AccountRepositoryTestSuite) TestGetByEmail_CaseInsensitive() {
	repo := suite.newRepo()
	aggregate := suite.newAccount("dana@example.com")
	suite.Require().NoError(repo.Add(context.Background(), aggregate))

	restored, err := repo.GetByEmail(context.Background(), "Dana@Example.COM")
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(aggregate.ID()))

	_, err = repo.GetByEmail(context.Background(), "nobody@example.com")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestAccountRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AccountRepositoryTestSuite))
}
