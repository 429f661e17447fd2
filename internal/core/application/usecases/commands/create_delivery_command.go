package commands

import (
	"errors"

	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/pkg/errs"
	"deliveries/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand asks for a new delivery from senderName to an
// existing recipient, starting in initialState.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	senderName   string
	recipientID  kernel.UUID
	initialState delivery.State

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand validates every field and reports all failures
// together.
//
// Example:
//
//	cmd, err := NewCreateDeliveryCommand("ACME", recipientID, delivery.Created)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery request: %w", err)
//	}
func NewCreateDeliveryCommand(
	senderName string,
	recipientID kernel.UUID,
	initialState delivery.State,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSenderName(senderName),
		cmd.setRecipientID(recipientID),
		cmd.setInitialState(initialState),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

func (c CreateDeliveryCommand) SenderName() string {
	return c.senderName
}

func (c CreateDeliveryCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

func (c CreateDeliveryCommand) InitialState() delivery.State {
	return c.initialState
}

func (c *CreateDeliveryCommand) setSenderName(senderName string) error {
	if err := delivery.ValidateSender(senderName); err != nil {
		return err
	}

	c.senderName = senderName
	return nil
}

func (c *CreateDeliveryCommand) setRecipientID(recipientID kernel.UUID) error {
	if recipientID.IsNil() {
		return errs.NewValueIsRequiredError("recipientId")
	}

	c.recipientID = recipientID
	return nil
}

func (c *CreateDeliveryCommand) setInitialState(state delivery.State) error {
	if err := state.Validate(); err != nil {
		return err
	}

	c.initialState = state
	return nil
}
