package commands

import (
	"errors"

	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/pkg/guard"
)

var ErrUpdateDeliveryCommandIsNotConstructed = errors.New(
	"UpdateDeliveryCommand must be created via NewUpdateDeliveryCommand constructor",
)

// UpdateDeliveryCommand requests a move of one delivery to a new state.
type UpdateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID     kernel.UUID
	requestedState delivery.State

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryCommand rejects a nil id and a state outside the known set.
func NewUpdateDeliveryCommand(deliveryID kernel.UUID, requestedState delivery.State) (UpdateDeliveryCommand, error) {
	cmd := UpdateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setRequestedState(requestedState),
	); err != nil {
		return UpdateDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c UpdateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryCommandIsNotConstructed)
}

func (c UpdateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c UpdateDeliveryCommand) RequestedState() delivery.State {
	return c.requestedState
}

func (c *UpdateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryCommand) setRequestedState(state delivery.State) error {
	if err := state.Validate(); err != nil {
		return err
	}

	c.requestedState = state
	return nil
}
