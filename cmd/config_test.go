package cmd

import (
	"testing"
	"time"

	"deliveries/internal/adapters/out/persistence"
	"deliveries/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_SweepInterval(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Duration
		wantErr bool
	}{
		{name: "default", raw: "", want: jobs.DefaultExpirationInterval},
		{name: "minutes", raw: "5m", want: 5 * time.Minute},
		{name: "garbage", raw: "soon", wantErr: true},
		{name: "negative", raw: "-1m", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Config{ExpirationInterval: tt.raw}.SweepInterval()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_Database(t *testing.T) {
	cfg := Config{
		DBDriver:   persistence.DriverPostgres,
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "deliveries",
		DBPassword: "secret",
		DBName:     "deliveries",
		DBSslMode:  "disable",
	}

	dsn, err := cfg.Database().DSN()

	require.NoError(t, err)
	assert.Equal(t, "host=db port=5432 user=deliveries password=secret dbname=deliveries sslmode=disable", dsn)
}
