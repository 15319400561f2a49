package subscriptionrepo_test

import (
	"context"
	"testing"
	"time"

	"freightmarket/internal/adapters/out/postgres/subscriptionrepo"
	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/core/domain/model/subscription"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// SubscriptionRepositoryIntegrationTestSuite verifies the lazy default
// provisioning against a real PostgreSQL instance.
type SubscriptionRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *subscriptionrepo.GormSubscriptionRepository
	tracker    *MockAggregateTracker
}

func (suite *SubscriptionRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&subscriptionrepo.SubscriptionDTO{}))
}

func (suite *SubscriptionRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE subscriptions").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = subscriptionrepo.NewGormSubscriptionRepository(suite.db, suite.tracker)
}

func (suite *SubscriptionRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SubscriptionRepositoryIntegrationTestSuite) TestGetOrCreate_NoRow_CreatesDefaultBasic() {
	ctx := context.Background()
	organizationID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()

	sub, err := suite.repository.GetOrCreate(ctx, organizationID)

	suite.Require().NoError(err)
	suite.True(sub.OrganizationID().IsEqual(organizationID))
	suite.Equal(subscription.Basic, sub.Tier())
	suite.Equal(subscription.Active, sub.Status())

	limit, limited := sub.MaxQuotationsPerMonth()
	suite.True(limited)
	suite.Equal(int64(5), limit)

	suite.assertSubscriptionCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *SubscriptionRepositoryIntegrationTestSuite) TestGetOrCreate_RowExists_ReturnsExisting() {
	ctx := context.Background()
	organizationID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()

	first, err := suite.repository.GetOrCreate(ctx, organizationID)
	suite.Require().NoError(err)

	second, err := suite.repository.GetOrCreate(ctx, organizationID)
	suite.Require().NoError(err)

	suite.True(first.ID().IsEqual(second.ID()))
	suite.assertSubscriptionCount(1)
}

func (suite *SubscriptionRepositoryIntegrationTestSuite) TestGetOrCreate_ConcurrentFirstReads_ConvergeOnOneRow() {
	ctx := context.Background()
	organizationID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()

	results := make(chan error, 4)
	for range 4 {
		go func() {
			_, err := suite.repository.GetOrCreate(ctx, organizationID)
			results <- err
		}()
	}
	for range 4 {
		suite.Require().NoError(<-results)
	}

	suite.assertSubscriptionCount(1)
}

func (suite *SubscriptionRepositoryIntegrationTestSuite) TestGetOrCreate_LosesInsertRace_ReadsWinnerRow() {
	ctx := context.Background()
	organizationID := kernel.NewUUID()

	winner, err := subscription.NewDefaultSubscription(organizationID)
	suite.Require().NoError(err)

	// Sneak the competing row in right before the repository's own insert,
	// so the unique index rejects it exactly as a concurrent winner would.
	const callbackName = "test:competing_subscription_insert"
	suite.Require().NoError(suite.db.Callback().Create().Before("gorm:create").
		Register(callbackName, func(tx *gorm.DB) {
			if tx.Statement.Table != "subscriptions" {
				return
			}
			suite.insertSubscriptionRow(winner)
		}))
	defer func() {
		suite.Require().NoError(suite.db.Callback().Create().Remove(callbackName))
	}()

	sub, err := suite.repository.GetOrCreate(ctx, organizationID)

	suite.Require().NoError(err)
	suite.True(sub.ID().IsEqual(winner.ID()))
	suite.assertSubscriptionCount(1)
}

func (suite *SubscriptionRepositoryIntegrationTestSuite) insertSubscriptionRow(sub *subscription.Subscription) {
	var maxPerMonth *int64
	if limit, limited := sub.MaxQuotationsPerMonth(); limited {
		maxPerMonth = &limit
	}

	suite.Require().NoError(suite.db.Exec(
		"INSERT INTO subscriptions (id, organization_id, tier, status, max_quotations_per_month) VALUES (?, ?, ?, ?, ?)",
		sub.ID().Bytes(), sub.OrganizationID().Bytes(),
		sub.Tier().String(), sub.Status().String(), maxPerMonth).Error)
}

func (suite *SubscriptionRepositoryIntegrationTestSuite) TestUpdate_UpgradedTier_Persists() {
	ctx := context.Background()
	organizationID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Twice()

	created, err := suite.repository.GetOrCreate(ctx, organizationID)
	suite.Require().NoError(err)

	upgraded, err := subscription.NewSubscription(
		created.ID(), organizationID, subscription.Advanced, subscription.Active, nil)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, upgraded))

	reloaded, err := suite.repository.GetOrCreate(ctx, organizationID)
	suite.Require().NoError(err)
	suite.Equal(subscription.Advanced, reloaded.Tier())

	_, limited := reloaded.MaxQuotationsPerMonth()
	suite.False(limited)
}

func (suite *SubscriptionRepositoryIntegrationTestSuite) TestUpdate_MissingRow_ReturnsNotFound() {
	ctx := context.Background()

	sub, err := subscription.NewDefaultSubscription(kernel.NewUUID())
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, sub)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *SubscriptionRepositoryIntegrationTestSuite) assertSubscriptionCount(expected int64) {
	var count int64
	suite.Require().NoError(
		suite.db.Model(&subscriptionrepo.SubscriptionDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestSubscriptionRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionRepositoryIntegrationTestSuite))
}
