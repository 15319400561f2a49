package main

import (
	"fmt"
	"log/slog"
	"os"

	"freightmarket/cmd"
	httpin "freightmarket/internal/adapters/in/http"
	"freightmarket/internal/adapters/out/postgres/connectionrepo"
	"freightmarket/internal/adapters/out/postgres/inquiryrepo"
	"freightmarket/internal/adapters/out/postgres/quotationrepo"
	"freightmarket/internal/adapters/out/postgres/subscriptionrepo"
	"freightmarket/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&inquiryrepo.InquiryDTO{},
		&inquiryrepo.PackageDTO{},
		&inquiryrepo.ForwarderResponseDTO{},
		&quotationrepo.QuotationDTO{},
		&subscriptionrepo.SubscriptionDTO{},
		&connectionrepo.ConnectionDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(app.CreateExpireQuotationsCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateCreateInquiryCommandHandler(),
		app.CreatePublishInquiryCommandHandler(),
		app.CreateCancelInquiryCommandHandler(),
		app.CreateAwardInquiryCommandHandler(),
		app.CreateRejectInquiryCommandHandler(),
		app.CreateSubmitQuotationCommandHandler(),
		app.CreateRequestConnectionCommandHandler(),
		app.CreateGetForwarderInquiriesQueryHandler(),
		app.CreateGetShipperInquiriesQueryHandler(),
		app.CreateGetInquiryCargoQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
