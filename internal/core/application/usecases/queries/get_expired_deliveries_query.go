package queries

import (
	"errors"
	"time"

	"deliveries/internal/pkg/errs"
	"deliveries/internal/pkg/guard"
)

var ErrGetExpiredDeliveriesQueryIsNotConstructed = errors.New(
	"GetExpiredDeliveriesQuery must be created via NewGetExpiredDeliveriesQuery constructor",
)

// GetExpiredDeliveriesQuery selects deliveries whose access window ended at
// or before Cutoff and which are not yet Expired.
type GetExpiredDeliveriesQuery struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

func NewGetExpiredDeliveriesQuery(cutoff time.Time) (GetExpiredDeliveriesQuery, error) {
	if cutoff.IsZero() {
		return GetExpiredDeliveriesQuery{}, errs.NewValueIsRequiredError("cutoff")
	}
	return GetExpiredDeliveriesQuery{cutoff: cutoff, guard: guard.NewConstructorGuard()}, nil
}

func (q GetExpiredDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetExpiredDeliveriesQueryIsNotConstructed)
}

func (q GetExpiredDeliveriesQuery) Cutoff() time.Time {
	return q.cutoff
}
