package main

import (
	"fmt"
	"log/slog"
	"os"

	"dispatch/cmd"
	"dispatch/internal/adapters/out/postgres/historyrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/spf13/pflag"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &historyrepo.HistoryEntryDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

// getConfigs loads settings from the environment, with an optional .env
// file, then applies command-line overrides.
func getConfigs() cmd.Config {
	// A missing .env file is fine in containerized deployments where the
	// environment is injected directly.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:          envOrDefault("HTTP_PORT", "8080"),
		DBHost:            envOrDefault("DB_HOST", "localhost"),
		DBPort:            envOrDefault("DB_PORT", "5432"),
		DBUser:            envOrDefault("DB_USER", "postgres"),
		DBPassword:        envOrDefault("DB_PASSWORD", "postgres"),
		DBName:            envOrDefault("DB_NAME", "dispatch"),
		DBSslMode:         envOrDefault("DB_SSLMODE", "disable"),
		ReconcileSchedule: envOrDefault("RECONCILE_SCHEDULE", jobs.DefaultReconcileSchedule),
	}

	pflag.StringVar(&config.HTTPPort, "http-port", config.HTTPPort, "HTTP listen port")
	pflag.StringVar(&config.DBHost, "db-host", config.DBHost, "Postgres host")
	pflag.StringVar(&config.DBPort, "db-port", config.DBPort, "Postgres port")
	pflag.StringVar(&config.DBName, "db-name", config.DBName, "Postgres database name")
	pflag.StringVar(&config.ReconcileSchedule, "reconcile-schedule", config.ReconcileSchedule,
		"cron schedule for the ledger reconciliation sweep")
	pflag.Parse()

	return config
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
