package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"seedflow/cmd"
	"seedflow/internal/adapters/out/backend"
	"seedflow/internal/adapters/out/postgres/snapshotrepo"
	"seedflow/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)

	backendClient := backend.NewClient(backend.Config{
		BaseURL:  configs.BackendBaseURL,
		APIToken: configs.BackendAPIToken,
	})

	// The session profile gates everything else: roles decide which jobs
	// run and which surfaces the server grants.
	user, err := backendClient.CurrentUser(context.Background())
	if err != nil {
		log.Fatalf("Failed to fetch session profile: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, backendClient, user, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start polling jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, jobManager, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		BackendBaseURL:  goDotEnvVariable("BACKEND_BASE_URL"),
		BackendAPIToken: goDotEnvVariable("BACKEND_API_TOKEN"),
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&snapshotrepo.SnapshotDTO{}); err != nil {
		log.Fatalf("Failed to migrate snapshot table: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, jobManager *jobs.JobManager, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := app.CreateServer(jobManager)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
