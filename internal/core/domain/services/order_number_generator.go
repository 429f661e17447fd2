package services

import (
	"fmt"
	"time"

	"deliveries/internal/pkg/clock"
)

// ticksAtUnixEpoch is the number of 100ns intervals between 0001-01-01 UTC and
// 1970-01-01 UTC.
const ticksAtUnixEpoch int64 = 621_355_968_000_000_000

// OrderNumberGenerator produces order numbers of the form
// "<sender>_ON_<ticks>", where ticks counts 100ns intervals since
// 0001-01-01 UTC at the moment of the call.
//
// Numbers are unique only as far as the clock is: two calls for the same
// sender inside one tick collide. The order gateway rejects the duplicate
// key, which surfaces as a CreationFailed error at the order stage.
//
// Example:
//
//	gen := services.NewOrderNumberGenerator(clock.System())
//	gen.CreateOrderNumber("ACME") // "ACME_ON_638412345678901234"
type OrderNumberGenerator struct {
	clock clock.Clock
}

func NewOrderNumberGenerator(c clock.Clock) OrderNumberGenerator {
	return OrderNumberGenerator{clock: clock.OrSystem(c)}
}

func (g OrderNumberGenerator) CreateOrderNumber(sender string) string {
	return fmt.Sprintf("%s_ON_%d", sender, Ticks(g.clock.Now()))
}

// Ticks converts t to 100ns intervals since 0001-01-01 UTC.
func Ticks(t time.Time) int64 {
	return t.UTC().UnixNano()/100 + ticksAtUnixEpoch
}
