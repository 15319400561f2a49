package queries_test

import (
	"context"
	"testing"
	"time"

	"freightmarket/internal/adapters/out/postgres/inquiryrepo"
	"freightmarket/internal/core/application/usecases/queries"
	"freightmarket/internal/core/domain/model/inquiry"
	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetInquiryCargoQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	inquiryRepo *inquiryrepo.GormInquiryRepository
	handler     queries.GetInquiryCargoQueryHandler
}

func (suite *GetInquiryCargoQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&inquiryrepo.InquiryDTO{},
		&inquiryrepo.PackageDTO{},
	))

	suite.inquiryRepo = inquiryrepo.NewGormInquiryRepository(db, noopAggregateTracker{})
	suite.handler = queries.NewGetInquiryCargoQueryHandler(db)
}

func (suite *GetInquiryCargoQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetInquiryCargoQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE packages, inquiries").Error)
}

func (suite *GetInquiryCargoQueryHandlerTestSuite) TestHandle_AirFreight_DerivesVolumetricWeight() {
	pkg, err := inquiry.NewPackage(100, 1, inquiry.WithDimensions(100, 50, 40))
	suite.Require().NoError(err)

	inq := suite.saveInquiry(inquiry.AirFreight, pkg)

	result := suite.query(inq.ID())

	suite.Equal("air_freight", result.ServiceType)
	suite.Require().Len(result.Packages, 1)
	suite.InDelta(0.2, result.Packages[0].Volume, 1e-9)
	suite.InDelta(120, result.Packages[0].ChargeableWeight, 1e-9)
	suite.InDelta(100, result.Summary.TotalGrossWeight, 1e-9)
	suite.InDelta(120, result.Summary.TotalChargeableWeight, 1e-9)
	suite.Equal(1, result.Summary.TotalPieces)
}

func (suite *GetInquiryCargoQueryHandlerTestSuite) TestHandle_Overrides_WinOverCalculation() {
	pkg, err := inquiry.NewPackage(100, 2,
		inquiry.WithDimensions(100, 50, 40),
		inquiry.WithVolume(1.0),
		inquiry.WithChargeableWeight(250),
	)
	suite.Require().NoError(err)

	inq := suite.saveInquiry(inquiry.AirFreight, pkg)

	result := suite.query(inq.ID())

	suite.Require().Len(result.Packages, 1)
	suite.InDelta(1.0, result.Packages[0].Volume, 1e-9)
	suite.InDelta(250, result.Packages[0].ChargeableWeight, 1e-9)
}

func (suite *GetInquiryCargoQueryHandlerTestSuite) TestHandle_RequirementFlags_Aggregate() {
	dangerous, err := inquiry.NewPackage(50, 1, inquiry.WithDangerousGoods())
	suite.Require().NoError(err)

	chilled, err := inquiry.NewPackage(30, 1, inquiry.WithTemperatureControl("+2/+8"))
	suite.Require().NoError(err)

	inq := suite.saveInquiry(inquiry.RoadFreight, dangerous, chilled)

	result := suite.query(inq.ID())

	suite.Require().Len(result.Packages, 2)
	suite.True(result.Summary.HasDangerousGoods)
	suite.True(result.Summary.HasTemperatureControl)
	suite.False(result.Summary.HasSpecialHandling)
	suite.InDelta(80, result.Summary.TotalGrossWeight, 1e-9)
	suite.InDelta(80, result.Summary.TotalChargeableWeight, 1e-9)
	suite.Equal(2, result.Summary.TotalPieces)
}

func (suite *GetInquiryCargoQueryHandlerTestSuite) TestHandle_MissingInquiry_ReturnsNotFound() {
	query, err := queries.NewGetInquiryCargoQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetInquiryCargoQueryHandlerTestSuite) query(
	inquiryID kernel.UUID,
) queries.GetInquiryCargoQueryResponse {
	query, err := queries.NewGetInquiryCargoQuery(inquiryID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	return result
}

func (suite *GetInquiryCargoQueryHandlerTestSuite) saveInquiry(
	serviceType inquiry.ServiceType,
	packages ...inquiry.Package,
) *inquiry.Inquiry {
	inq, err := inquiry.NewInquiry(kernel.NewUUID(), kernel.NewUUID(), serviceType, packages)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.inquiryRepo.Add(context.Background(), inq))
	return inq
}

func TestGetInquiryCargoQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetInquiryCargoQueryHandlerTestSuite))
}
