package services_test

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"deliveries/internal/core/domain/services"
	"deliveries/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicks(t *testing.T) {
	t.Run("should count from year one", func(t *testing.T) {
		assert.Equal(t, int64(621355968000000000), services.Ticks(time.Unix(0, 0)))
	})

	t.Run("should advance by one per 100ns", func(t *testing.T) {
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		assert.Equal(t, services.Ticks(base)+1, services.Ticks(base.Add(100*time.Nanosecond)))
		assert.Equal(t, services.Ticks(base)+10_000_000, services.Ticks(base.Add(time.Second)))
	})

	t.Run("should ignore the location", func(t *testing.T) {
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		assert.Equal(t, services.Ticks(base), services.Ticks(base.In(time.FixedZone("X", -5*3600))))
	})
}

func TestOrderNumberGenerator_CreateOrderNumber(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should format sender and ticks", func(t *testing.T) {
		gen := services.NewOrderNumberGenerator(clock.Fixed(at))

		number := gen.CreateOrderNumber("ACME")

		assert.Equal(t, "ACME_ON_638396640000000000", number)
	})

	t.Run("should keep the sender verbatim", func(t *testing.T) {
		gen := services.NewOrderNumberGenerator(clock.Fixed(at))

		number := gen.CreateOrderNumber("Big Parcel_Co")

		assert.True(t, strings.HasPrefix(number, "Big Parcel_Co_ON_"))
	})

	t.Run("should read the clock on every call", func(t *testing.T) {
		current := at
		gen := services.NewOrderNumberGenerator(clock.Func(func() time.Time { return current }))

		first := gen.CreateOrderNumber("ACME")
		current = current.Add(time.Millisecond)
		second := gen.CreateOrderNumber("ACME")

		assert.NotEqual(t, first, second)
	})

	t.Run("should default to the system clock", func(t *testing.T) {
		gen := services.NewOrderNumberGenerator(nil)

		number := gen.CreateOrderNumber("ACME")

		m := regexp.MustCompile(`^ACME_ON_(\d+)$`).FindStringSubmatch(number)
		require.Len(t, m, 2)
		ticks, err := strconv.ParseInt(m[1], 10, 64)
		require.NoError(t, err)
		assert.Greater(t, ticks, services.Ticks(at))
	})
}
