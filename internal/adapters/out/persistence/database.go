package persistence

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"deliveries/internal/core/domain/model/delivery"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config selects and addresses the store.
type Config struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLiteDSN  string
	LogQueries bool
}

// DSN renders the connection string for the configured driver.
func (c Config) DSN() (string, error) {
	switch c.Driver {
	case DriverPostgres:
		return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
			c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode), nil
	case DriverSQLite, "":
		if c.SQLiteDSN == "" {
			return "file:deliveries.db?cache=shared", nil
		}
		return c.SQLiteDSN, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}

// Open connects to the configured store.
func Open(cfg Config) (*gorm.DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	level := logger.Warn
	if cfg.LogQueries {
		level = logger.Info
	}
	gormConfig := &gorm.Config{
		Logger:  logger.Default.LogMode(level),
		NowFunc: func() time.Time { return time.Now().UTC() },
	}

	var dialector gorm.Dialector
	if cfg.Driver == DriverPostgres {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", dialector.Name(), err)
	}
	return db, nil
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// Seed inserts the sample recipient unless a row with its id already exists.
func Seed(ctx context.Context, db *gorm.DB, log *slog.Logger) error {
	row := recipientMapper{}.ToRow(delivery.SampleRecipient())

	result := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	if result.Error != nil {
		return fmt.Errorf("seed recipients: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		log.InfoContext(ctx, "seeded sample recipient", "recipientId", row.ID)
	}
	return nil
}

// Bootstrap runs Migrate then Seed.
func Bootstrap(ctx context.Context, db *gorm.DB, log *slog.Logger) error {
	if err := Migrate(db); err != nil {
		return err
	}
	return Seed(ctx, db, log)
}
