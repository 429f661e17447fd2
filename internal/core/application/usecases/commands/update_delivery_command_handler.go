package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"deliveries/internal/core/domain/model/delivery"
)

// UpdateDeliveryCommandHandler moves a delivery to a requested state when the
// transition rules allow it.
//
// Example:
//
//	handler := NewUpdateDeliveryCommandHandler(gateways, logger)
//	cmd, _ := NewUpdateDeliveryCommand(deliveryID, delivery.Approved)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    var deliveryErr *delivery.Error
//	    if errors.As(err, &deliveryErr) && deliveryErr.Reason == delivery.ReasonInvalidTransition {
//	        // the delivery is already past this state
//	    }
//	    return err
//	}
type UpdateDeliveryCommandHandler struct {
	gateways DeliveryGatewayProvider
	logger   *slog.Logger
}

// NewUpdateDeliveryCommandHandler creates a handler for state transitions.
func NewUpdateDeliveryCommandHandler(gateways DeliveryGatewayProvider, logger *slog.Logger) UpdateDeliveryCommandHandler {
	return UpdateDeliveryCommandHandler{
		gateways: gateways,
		logger:   logger.With("component", "update_delivery_handler"),
	}
}

// Handle reads the current state, applies the transition rules and writes the
// new state. The read and the write are separate store operations with no
// lock between them; concurrent updates of one delivery race and the last
// write wins.
func (h *UpdateDeliveryCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	id := cmd.DeliveryID()

	current, err := h.gateways.Deliveries().GetByID(ctx, id)
	if err != nil {
		return delivery.NewError(id, delivery.ReasonDeliveryNotFound, err)
	}

	next, err := current.Transition(cmd.RequestedState())
	if err != nil {
		var transitionErr *delivery.TransitionError
		if errors.As(err, &transitionErr) {
			return delivery.NewError(id, delivery.ReasonInvalidTransition, err)
		}
		return err
	}

	if err = h.gateways.Deliveries().Update(ctx, next); err != nil {
		return delivery.NewError(id, delivery.ReasonUnknown,
			fmt.Errorf("unable to update the delivery state: %w", err))
	}

	h.logger.InfoContext(ctx, "delivery state changed",
		"deliveryId", id.String(),
		"from", current.State().String(),
		"to", next.State().String(),
	)
	return nil
}
