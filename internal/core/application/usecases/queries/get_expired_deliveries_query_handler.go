package queries

import (
	"context"
	"fmt"

	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"
)

// GetExpiredDeliveriesQueryHandler finds the deliveries the expiration sweep
// should move to Expired.
//
// Example:
//
//	handler := NewGetExpiredDeliveriesQueryHandler(gateways)
//	q, _ := NewGetExpiredDeliveriesQuery(time.Now())
//
//	expired, err := handler.Handle(ctx, q)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d deliveries to expire\n", len(expired))
type GetExpiredDeliveriesQueryHandler struct {
	gateways ExpiryGateways
}

func NewGetExpiredDeliveriesQueryHandler(gateways ExpiryGateways) GetExpiredDeliveriesQueryHandler {
	return GetExpiredDeliveriesQueryHandler{gateways: gateways}
}

// Handle returns the base records of every non-Expired delivery that has an
// access window with EndTime <= cutoff. Deliveries without a window are never
// returned. Result order is unspecified.
func (h *GetExpiredDeliveriesQueryHandler) Handle(ctx context.Context, q GetExpiredDeliveriesQuery) ([]delivery.Delivery, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	all, err := h.gateways.Deliveries().GetAll(ctx)
	if err != nil {
		return nil, delivery.NewError(kernel.UUID{}, delivery.ReasonUnknown,
			fmt.Errorf("unable to list deliveries: %w", err))
	}

	windows, err := h.gateways.AccessWindows().GetAll(ctx)
	if err != nil {
		return nil, delivery.NewError(kernel.UUID{}, delivery.ReasonUnknown,
			fmt.Errorf("unable to list access windows: %w", err))
	}

	lapsed := make(map[kernel.UUID]struct{}, len(windows))
	for _, w := range windows {
		if w.HasLapsed(q.Cutoff()) {
			lapsed[w.DeliveryID()] = struct{}{}
		}
	}

	expired := make([]delivery.Delivery, 0)
	for _, d := range all {
		if d.State() == delivery.Expired {
			continue
		}
		if _, ok := lapsed[d.ID()]; ok {
			expired = append(expired, d)
		}
	}
	return expired, nil
}
