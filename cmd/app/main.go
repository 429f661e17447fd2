package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"deliveries/cmd"
	"deliveries/internal/adapters/out/persistence"
	"deliveries/internal/pkg/clock"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	configs := getConfigs(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := persistence.Open(configs.Database())
	if err != nil {
		log.Fatalf("Unable to open database: %v", err)
	}
	if err = persistence.Bootstrap(ctx, gormDB, logger); err != nil {
		log.Fatalf("Unable to bootstrap database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, clock.System(), logger)
	if err != nil {
		log.Fatalf("Unable to build application: %v", err)
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Unable to create jobs: %v", err)
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Unable to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app.CreateRouter(), configs.HTTPPort, logger)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Warn("No .env file loaded, using process environment", "error", err)
	}

	logQueries, _ := strconv.ParseBool(os.Getenv("DB_LOG_QUERIES"))

	return cmd.Config{
		HTTPPort:           envOrDefault("HTTP_PORT", "8080"),
		DBDriver:           envOrDefault("DB_DRIVER", persistence.DriverPostgres),
		DBHost:             os.Getenv("DB_HOST"),
		DBPort:             os.Getenv("DB_PORT"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		DBSslMode:          envOrDefault("DB_SSLMODE", "disable"),
		DBLogQueries:       logQueries,
		SQLiteDSN:          os.Getenv("SQLITE_DSN"),
		AuthSecret:         os.Getenv("AUTH_SECRET"),
		AuthIssuer:         os.Getenv("AUTH_ISSUER"),
		AuthAudience:       os.Getenv("AUTH_AUDIENCE"),
		ExpirationInterval: os.Getenv("EXPIRATION_INTERVAL"),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func startWebServer(ctx context.Context, e *echo.Echo, port string, logger *slog.Logger) {
	e.Logger.SetLevel(log.INFO)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
