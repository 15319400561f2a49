package postgres_test

import (
	"context"
	"testing"
	"time"

	"freightmarket/internal/adapters/out/postgres"
	"freightmarket/internal/adapters/out/postgres/connectionrepo"
	"freightmarket/internal/adapters/out/postgres/inquiryrepo"
	"freightmarket/internal/adapters/out/postgres/quotationrepo"
	"freightmarket/internal/adapters/out/postgres/subscriptionrepo"
	"freightmarket/internal/core/domain/model/inquiry"
	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/core/domain/model/quotation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics of the GORM
// unit of work against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(
		&inquiryrepo.InquiryDTO{},
		&inquiryrepo.PackageDTO{},
		&inquiryrepo.ForwarderResponseDTO{},
		&quotationrepo.QuotationDTO{},
		&subscriptionrepo.SubscriptionDTO{},
		&connectionrepo.ConnectionDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE packages, forwarder_responses, inquiries, quotations, subscriptions, connections").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	inq := suite.createTestInquiry()
	suite.Require().NoError(uow.InquiryRepository().Add(ctx, inq))

	q := suite.createTestQuotation(inq.ID())
	suite.Require().NoError(uow.QuotationRepository().Add(ctx, q))

	suite.Require().NoError(uow.Commit(ctx))

	suite.assertCount(&inquiryrepo.InquiryDTO{}, 1)
	suite.assertCount(&inquiryrepo.PackageDTO{}, 1)
	suite.assertCount(&quotationrepo.QuotationDTO{}, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	inq := suite.createTestInquiry()
	suite.Require().NoError(uow.InquiryRepository().Add(ctx, inq))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertCount(&inquiryrepo.InquiryDTO{}, 0)
	suite.assertCount(&inquiryrepo.PackageDTO{}, 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_AfterCommit_ReturnsError() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	err := uow.Rollback(ctx)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTrackedAggregates_CollectedInModificationOrder() {
	ctx := context.Background()
	uow := suite.factory.CreateUnitOfWork()

	suite.Require().NoError(uow.Begin(ctx))

	inq := suite.createTestInquiry()
	suite.Require().NoError(uow.InquiryRepository().Add(ctx, inq))

	q := suite.createTestQuotation(inq.ID())
	suite.Require().NoError(uow.QuotationRepository().Add(ctx, q))

	suite.Require().NoError(uow.Commit(ctx))

	tracked := uow.GetTrackedAggregates()
	suite.Require().Len(tracked, 2)
	suite.Same(inq, tracked[0])
	suite.Same(q, tracked[1])
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestInquiry() *inquiry.Inquiry {
	pkg, err := inquiry.NewPackage(120, 2, inquiry.WithDimensions(100, 50, 40))
	suite.Require().NoError(err)

	inq, err := inquiry.NewInquiry(
		kernel.NewUUID(), kernel.NewUUID(), inquiry.AirFreight, []inquiry.Package{pkg})
	suite.Require().NoError(err)
	return inq
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestQuotation(inquiryID kernel.UUID) *quotation.Quotation {
	breakdown, err := quotation.NewCostBreakdown(
		decimal.NewFromInt(100),
		decimal.NewFromInt(2000),
		decimal.NewFromInt(50),
		decimal.Zero,
		"EUR",
	)
	suite.Require().NoError(err)

	q, err := quotation.NewQuotation(
		kernel.NewUUID(), inquiryID, kernel.NewUUID(), breakdown,
		time.Now().Add(14*24*time.Hour), time.Now())
	suite.Require().NoError(err)
	return q
}

func (suite *UnitOfWorkIntegrationTestSuite) assertCount(model any, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
