package queries

import (
	"context"

	"deliveries/internal/core/domain/model/delivery"
)

// GetDeliveryQueryHandler reads one delivery together with its access window,
// recipient and order.
//
// Example:
//
//	handler := NewGetDeliveryQueryHandler(gateways)
//	q, _ := NewGetDeliveryQuery(deliveryID)
//
//	found, err := handler.Handle(ctx, q)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Delivery %s is %s, order %s", found.ID, found.State, found.Order.Number())
type GetDeliveryQueryHandler struct {
	gateways AggregateGateways
}

func NewGetDeliveryQueryHandler(gateways AggregateGateways) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{gateways: gateways}
}

// Handle assembles the aggregate from five independent reads. Each read is a
// full scan of its collection, and nothing stops a concurrent writer from
// changing one collection between two reads.
func (h *GetDeliveryQueryHandler) Handle(ctx context.Context, q GetDeliveryQuery) (delivery.Aggregate, error) {
	if err := q.Validate(); err != nil {
		return delivery.Aggregate{}, err
	}

	id := q.DeliveryID()
	fail := func(reason delivery.Reason, err error) (delivery.Aggregate, error) {
		return delivery.Aggregate{}, delivery.NewError(id, reason, err)
	}

	d, err := h.gateways.Deliveries().GetByID(ctx, id)
	if err != nil {
		return fail(delivery.ReasonDeliveryNotFound, err)
	}

	window, err := h.gateways.AccessWindows().GetByPredicate(ctx, func(w delivery.AccessWindow) bool {
		return w.DeliveryID().IsEqual(id)
	})
	if err != nil {
		return fail(delivery.ReasonAccessWindowNotFound, err)
	}

	link, err := h.gateways.RecipientDeliveries().GetByPredicate(ctx, func(l delivery.RecipientDelivery) bool {
		return l.DeliveryID().IsEqual(id)
	})
	if err != nil {
		return fail(delivery.ReasonRecipientNotFound, err)
	}

	recipient, err := h.gateways.Recipients().GetByID(ctx, link.RecipientID())
	if err != nil {
		return fail(delivery.ReasonRecipientNotFound, err)
	}

	order, err := h.gateways.Orders().GetByPredicate(ctx, func(o delivery.Order) bool {
		return o.DeliveryID().IsEqual(id)
	})
	if err != nil {
		return fail(delivery.ReasonOrderNotFound, err)
	}

	return delivery.NewAggregate(d, window, recipient, order), nil
}
