package commands

import (
	"context"
	"log/slog"

	"deliveries/internal/core/domain/model/delivery"
)

// DeleteDeliveryCommandHandler removes deliveries.
type DeleteDeliveryCommandHandler struct {
	gateways DeliveryGatewayProvider
	logger   *slog.Logger
}

func NewDeleteDeliveryCommandHandler(gateways DeliveryGatewayProvider, logger *slog.Logger) DeleteDeliveryCommandHandler {
	return DeleteDeliveryCommandHandler{
		gateways: gateways,
		logger:   logger.With("component", "delete_delivery_handler"),
	}
}

// Handle removes the base delivery record only. The access window, recipient
// link and order stay in the store, orphaned.
func (h *DeleteDeliveryCommandHandler) Handle(ctx context.Context, cmd DeleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.gateways.Deliveries().Delete(ctx, cmd.DeliveryID()); err != nil {
		return delivery.NewError(cmd.DeliveryID(), delivery.ReasonDeletionFailed, err)
	}

	h.logger.InfoContext(ctx, "delivery deleted", "deliveryId", cmd.DeliveryID().String())
	return nil
}
