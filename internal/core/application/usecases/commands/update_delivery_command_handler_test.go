package commands_test

import (
	"errors"
	"testing"

	"deliveries/internal/core/application/usecases/commands"
	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/core/ports"
	"deliveries/internal/core/ports/mocks"
	"deliveries/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustDelivery(t *testing.T, state delivery.State) delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), state)
	require.NoError(t, err)
	return d
}

func TestUpdateDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	current := mustDelivery(t, delivery.Created)
	cmd, err := commands.NewUpdateDeliveryCommand(current.ID(), delivery.Approved)
	require.NoError(t, err)

	g := mocks.NewGateways()
	mock.InOrder(
		g.DeliveryGateway.On("GetByID", ctx, current.ID()).Return(current, nil).Once(),
		g.DeliveryGateway.On("Update", ctx, mock.MatchedBy(func(d delivery.Delivery) bool {
			return d.ID().IsEqual(current.ID()) && d.State() == delivery.Approved
		})).Return(nil).Once(),
	)

	h := commands.NewUpdateDeliveryCommandHandler(g, discardLogger)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	g.AssertExpectations(t)
}

func TestUpdateDeliveryCommandHandler_Handle_DeliveryNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateDeliveryCommand(id, delivery.Cancelled)
	require.NoError(t, err)

	g := mocks.NewGateways()
	g.DeliveryGateway.On("GetByID", ctx, id).
		Return(delivery.Delivery{}, ports.NewStorageError[delivery.Delivery]("get", errs.NewObjectNotFoundError("id", id.String()))).
		Once()

	h := commands.NewUpdateDeliveryCommandHandler(g, discardLogger)
	err = h.Handle(ctx, cmd)

	reason, ok := delivery.ReasonOf(err)
	require.True(t, ok)
	assert.Equal(t, delivery.ReasonDeliveryNotFound, reason)
	g.DeliveryGateway.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateDeliveryCommandHandler_Handle_InvalidTransition(t *testing.T) {
	testCases := []struct {
		from delivery.State
		to   delivery.State
		rule delivery.Rule
	}{
		{delivery.Approved, delivery.Created, delivery.RuleBackwards},
		{delivery.Created, delivery.Completed, delivery.RuleCompleteRequiresApproval},
		{delivery.Completed, delivery.Cancelled, delivery.RuleCompletedNotCancellable},
		{delivery.Expired, delivery.Cancelled, delivery.RuleBackwards},
	}

	for _, tc := range testCases {
		t.Run(tc.from.String()+" to "+tc.to.String(), func(t *testing.T) {
			ctx := t.Context()
			current := mustDelivery(t, tc.from)
			cmd, err := commands.NewUpdateDeliveryCommand(current.ID(), tc.to)
			require.NoError(t, err)

			g := mocks.NewGateways()
			g.DeliveryGateway.On("GetByID", ctx, current.ID()).Return(current, nil).Once()

			h := commands.NewUpdateDeliveryCommandHandler(g, discardLogger)
			err = h.Handle(ctx, cmd)

			var de *delivery.Error
			require.ErrorAs(t, err, &de)
			assert.Equal(t, delivery.ReasonInvalidTransition, de.Reason)
			var te *delivery.TransitionError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, tc.rule, te.Rule)
			g.DeliveryGateway.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateDeliveryCommandHandler_Handle_WriteFailure(t *testing.T) {
	ctx := t.Context()
	current := mustDelivery(t, delivery.Approved)
	cmd, err := commands.NewUpdateDeliveryCommand(current.ID(), delivery.Completed)
	require.NoError(t, err)
	writeErr := ports.NewStorageError[delivery.Delivery]("update", errors.New("connection reset"))

	g := mocks.NewGateways()
	g.DeliveryGateway.On("GetByID", ctx, current.ID()).Return(current, nil).Once()
	g.DeliveryGateway.On("Update", ctx, mock.AnythingOfType("delivery.Delivery")).Return(writeErr).Once()

	h := commands.NewUpdateDeliveryCommandHandler(g, discardLogger)
	err = h.Handle(ctx, cmd)

	reason, ok := delivery.ReasonOf(err)
	require.True(t, ok)
	assert.Equal(t, delivery.ReasonUnknown, reason)
	assert.Contains(t, err.Error(), "unable to update the delivery state")
	assert.ErrorIs(t, err, writeErr)
}

func TestUpdateDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	g := mocks.NewGateways()
	h := commands.NewUpdateDeliveryCommandHandler(g, discardLogger)

	err := h.Handle(t.Context(), commands.UpdateDeliveryCommand{})

	require.ErrorIs(t, err, commands.ErrUpdateDeliveryCommandIsNotConstructed)
	g.DeliveryGateway.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
