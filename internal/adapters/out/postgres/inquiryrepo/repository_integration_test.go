package inquiryrepo_test

import (
	"context"
	"testing"
	"time"

	"freightmarket/internal/adapters/out/postgres/inquiryrepo"
	"freightmarket/internal/core/domain/model/inquiry"
	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/pkg/errs"

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

// InquiryRepositoryIntegrationTestSuite verifies inquiry and forwarder
// response persistence against a real PostgreSQL instance.
type InquiryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *inquiryrepo.GormInquiryRepository
	tracker    *MockAggregateTracker
}

func (suite *InquiryRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&inquiryrepo.InquiryDTO{},
		&inquiryrepo.PackageDTO{},
		&inquiryrepo.ForwarderResponseDTO{},
	))
}

func (suite *InquiryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE packages, forwarder_responses, inquiries").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = inquiryrepo.NewGormInquiryRepository(suite.db, suite.tracker)
}

func (suite *InquiryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *InquiryRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsPackages() {
	ctx := context.Background()

	first, err := inquiry.NewPackage(500, 1,
		inquiry.WithVolume(2.5),
		inquiry.WithDangerousGoods(),
		inquiry.WithTemperatureControl("+2/+8"),
	)
	suite.Require().NoError(err)

	second, err := inquiry.NewPackage(100, 3,
		inquiry.WithDimensions(100, 50, 40),
		inquiry.WithSpecialHandling("fragile"),
	)
	suite.Require().NoError(err)

	inq, err := inquiry.NewInquiry(
		kernel.NewUUID(), kernel.NewUUID(), inquiry.SeaFreight,
		[]inquiry.Package{first, second})
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", inq.ID(), inq).Once()
	suite.Require().NoError(suite.repository.Add(ctx, inq))

	loaded, err := suite.repository.Get(ctx, inq.ID())
	suite.Require().NoError(err)

	suite.True(loaded.IsEqual(inq))
	suite.Equal(inquiry.SeaFreight, loaded.ServiceType())
	suite.Equal(inquiry.Draft, loaded.Status())

	packages := loaded.Packages()
	suite.Require().Len(packages, 2)

	volume, hasVolume := packages[0].Volume()
	suite.True(hasVolume)
	suite.InDelta(2.5, volume, 1e-9)
	suite.True(packages[0].IsDangerous())

	_, _, height, hasDims := packages[1].Dimensions()
	suite.True(hasDims)
	suite.InDelta(40, height, 1e-9)

	handling, hasHandling := packages[1].SpecialHandling()
	suite.True(hasHandling)
	suite.Equal("fragile", handling)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *InquiryRepositoryIntegrationTestSuite) TestUpdate_StatusTransition_Persists() {
	ctx := context.Background()

	inq := suite.createAndSaveInquiry()

	suite.Require().NoError(inq.Open())
	suite.tracker.On("TrackAggregate", inq.ID(), inq).Once()
	suite.Require().NoError(suite.repository.Update(ctx, inq))

	loaded, err := suite.repository.Get(ctx, inq.ID())
	suite.Require().NoError(err)
	suite.Equal(inquiry.Open, loaded.Status())
	suite.Len(loaded.Packages(), 1)
}

func (suite *InquiryRepositoryIntegrationTestSuite) TestGet_MissingInquiry_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *InquiryRepositoryIntegrationTestSuite) TestGetAllOpen_FiltersByStatus() {
	ctx := context.Background()

	open := suite.createAndSaveInquiry()
	suite.Require().NoError(open.Open())
	suite.tracker.On("TrackAggregate", open.ID(), open).Once()
	suite.Require().NoError(suite.repository.Update(ctx, open))

	suite.createAndSaveInquiry() // stays draft

	inquiries, err := suite.repository.GetAllOpen(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(inquiries, 1)
	suite.True(inquiries[0].IsEqual(open))
}

func (suite *InquiryRepositoryIntegrationTestSuite) TestResponses_RoundTripAndUniqueness() {
	ctx := context.Background()

	inq := suite.createAndSaveInquiry()
	forwarderOrgID := kernel.NewUUID()
	sentAt := time.Now().UTC().Truncate(time.Millisecond)

	response, err := inquiry.NewForwarderResponse(
		kernel.NewUUID(), inq.ID(), forwarderOrgID, sentAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddResponse(ctx, response))

	duplicate, err := inquiry.NewForwarderResponse(
		kernel.NewUUID(), inq.ID(), forwarderOrgID, sentAt)
	suite.Require().NoError(err)
	suite.Require().Error(suite.repository.AddResponse(ctx, duplicate))

	loaded, err := suite.repository.GetResponse(ctx, inq.ID(), forwarderOrgID)
	suite.Require().NoError(err)
	suite.Equal(inquiry.ResponsePending, loaded.Status())
	suite.Nil(loaded.ViewedAt())

	loaded.MarkViewed(time.Now())
	suite.Require().NoError(loaded.Reject())
	suite.Require().NoError(suite.repository.UpdateResponse(ctx, loaded))

	reloaded, err := suite.repository.GetResponse(ctx, inq.ID(), forwarderOrgID)
	suite.Require().NoError(err)
	suite.Equal(inquiry.ResponseRejected, reloaded.Status())
	suite.NotNil(reloaded.ViewedAt())
}

func (suite *InquiryRepositoryIntegrationTestSuite) TestGetResponse_NeverDispatched_ReturnsNotFound() {
	inq := suite.createAndSaveInquiry()

	_, err := suite.repository.GetResponse(context.Background(), inq.ID(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *InquiryRepositoryIntegrationTestSuite) createAndSaveInquiry() *inquiry.Inquiry {
	pkg, err := inquiry.NewPackage(100, 1)
	suite.Require().NoError(err)

	inq, err := inquiry.NewInquiry(
		kernel.NewUUID(), kernel.NewUUID(), inquiry.RoadFreight, []inquiry.Package{pkg})
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", inq.ID(), inq).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), inq))
	return inq
}

func TestInquiryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(InquiryRepositoryIntegrationTestSuite))
}
