package cmd

import (
	"fmt"
	"time"

	deliveryhttp "deliveries/internal/adapters/in/http"
	"deliveries/internal/adapters/out/persistence"
	"deliveries/internal/jobs"
)

type Config struct {
	HTTPPort           string
	DBDriver           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	DBLogQueries       bool
	SQLiteDSN          string
	AuthSecret         string
	AuthIssuer         string
	AuthAudience       string
	ExpirationInterval string
}

func (c Config) Database() persistence.Config {
	return persistence.Config{
		Driver:     c.DBDriver,
		Host:       c.DBHost,
		Port:       c.DBPort,
		User:       c.DBUser,
		Password:   c.DBPassword,
		Name:       c.DBName,
		SSLMode:    c.DBSslMode,
		SQLiteDSN:  c.SQLiteDSN,
		LogQueries: c.DBLogQueries,
	}
}

func (c Config) Auth() deliveryhttp.AuthConfig {
	return deliveryhttp.AuthConfig{
		Secret:   c.AuthSecret,
		Issuer:   c.AuthIssuer,
		Audience: c.AuthAudience,
	}
}

// SweepInterval parses ExpirationInterval as a Go duration ("30m", "1h").
// An empty value selects the default.
func (c Config) SweepInterval() (time.Duration, error) {
	if c.ExpirationInterval == "" {
		return jobs.DefaultExpirationInterval, nil
	}
	d, err := time.ParseDuration(c.ExpirationInterval)
	if err != nil {
		return 0, fmt.Errorf("parse EXPIRATION_INTERVAL: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("EXPIRATION_INTERVAL must be positive, got %s", d)
	}
	return d, nil
}
