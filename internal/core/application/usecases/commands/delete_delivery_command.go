package commands

import (
	"errors"

	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/pkg/guard"
)

var ErrDeleteDeliveryCommandIsNotConstructed = errors.New(
	"DeleteDeliveryCommand must be created via NewDeleteDeliveryCommand constructor",
)

// DeleteDeliveryCommand asks for the removal of one delivery.
//
// Example:
//
//	cmd, err := NewDeleteDeliveryCommand(deliveryID)
//	if err != nil {
//	    return err
//	}
//	if err = handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("delete delivery: %w", err)
//	}
type DeleteDeliveryCommand struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteDeliveryCommand(deliveryID kernel.UUID) (DeleteDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return DeleteDeliveryCommand{}, err
	}
	return DeleteDeliveryCommand{deliveryID: deliveryID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDeliveryCommandIsNotConstructed)
}

func (c DeleteDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}
