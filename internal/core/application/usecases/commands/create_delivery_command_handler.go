package commands

import (
	"context"
	"log/slog"

	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/core/ports"
	"deliveries/internal/pkg/clock"
)

// CreateDeliveryCommandHandler registers a new delivery for an existing
// recipient and opens its access window at the current clock time.
//
// Example:
//
//	handler := NewCreateDeliveryCommandHandler(gateways, services.NewOrderNumberGenerator(nil), nil, logger)
//	cmd, _ := NewCreateDeliveryCommand("ACME", delivery.SampleRecipientID, delivery.Created)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("delivery creation failed: %w", err)
//	}
//	fmt.Printf("Delivery %s opened until %s", created.ID, created.AccessWindow.EndTime())
type CreateDeliveryCommandHandler struct {
	gateways     CreateGateways
	orderNumbers ports.OrderNumberGenerator
	clock        clock.Clock
	logger       *slog.Logger
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
// A nil clock falls back to the system clock.
func NewCreateDeliveryCommandHandler(
	gateways CreateGateways,
	orderNumbers ports.OrderNumberGenerator,
	c clock.Clock,
	logger *slog.Logger,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		gateways:     gateways,
		orderNumbers: orderNumbers,
		clock:        clock.OrSystem(c),
		logger:       logger.With("component", "create_delivery_handler"),
	}
}

// Handle checks the recipient exists, then writes the delivery, the recipient
// link, the access window and the order, in that order, each as its own store
// operation. A failed write stops the sequence and is reported as
// CreationFailed with the failing Stage; records already written are kept.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) (delivery.Aggregate, error) {
	if err := cmd.Validate(); err != nil {
		return delivery.Aggregate{}, err
	}

	recipient, err := h.gateways.Recipients().GetByID(ctx, cmd.RecipientID())
	if err != nil {
		return delivery.Aggregate{}, delivery.NewError(kernel.UUID{}, delivery.ReasonRecipientNotFound, err)
	}

	deliveryID := kernel.NewUUID()

	d, err := delivery.NewDelivery(deliveryID, cmd.InitialState())
	if err != nil {
		return delivery.Aggregate{}, err
	}
	if err = h.gateways.Deliveries().Insert(ctx, d); err != nil {
		return delivery.Aggregate{}, h.creationFailed(ctx, deliveryID, delivery.StageDelivery, err)
	}

	link, err := delivery.NewRecipientDelivery(kernel.NewUUID(), recipient.ID(), deliveryID)
	if err != nil {
		return delivery.Aggregate{}, h.creationFailed(ctx, deliveryID, delivery.StageRecipientLink, err)
	}
	if err = h.gateways.RecipientDeliveries().Insert(ctx, link); err != nil {
		return delivery.Aggregate{}, h.creationFailed(ctx, deliveryID, delivery.StageRecipientLink, err)
	}

	window, err := delivery.NewAccessWindow(kernel.NewUUID(), deliveryID, h.clock.Now())
	if err != nil {
		return delivery.Aggregate{}, h.creationFailed(ctx, deliveryID, delivery.StageAccessWindow, err)
	}
	if err = h.gateways.AccessWindows().Insert(ctx, window); err != nil {
		return delivery.Aggregate{}, h.creationFailed(ctx, deliveryID, delivery.StageAccessWindow, err)
	}

	order, err := delivery.NewOrder(h.orderNumbers.CreateOrderNumber(cmd.SenderName()), deliveryID, cmd.SenderName())
	if err != nil {
		return delivery.Aggregate{}, h.creationFailed(ctx, deliveryID, delivery.StageOrder, err)
	}
	if err = h.gateways.Orders().Insert(ctx, order); err != nil {
		return delivery.Aggregate{}, h.creationFailed(ctx, deliveryID, delivery.StageOrder, err)
	}

	h.logger.InfoContext(ctx, "delivery created",
		"deliveryId", deliveryID.String(),
		"orderNumber", order.Number(),
		"state", d.State().String(),
	)

	return delivery.NewAggregate(d, window, recipient, order), nil
}

func (h *CreateDeliveryCommandHandler) creationFailed(
	ctx context.Context,
	deliveryID kernel.UUID,
	stage delivery.Stage,
	err error,
) error {
	h.logger.ErrorContext(ctx, "delivery creation failed, earlier records kept",
		"deliveryId", deliveryID.String(),
		"stage", stage.String(),
		"error", err,
	)
	return delivery.NewCreationError(deliveryID, stage, err)
}
