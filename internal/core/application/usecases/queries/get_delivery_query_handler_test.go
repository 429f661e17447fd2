package queries_test

import (
	"errors"
	"testing"
	"time"

	"deliveries/internal/core/application/usecases/queries"
	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/core/ports"
	"deliveries/internal/core/ports/mocks"
	"deliveries/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type storedDelivery struct {
	delivery delivery.Delivery
	window   delivery.AccessWindow
	link     delivery.RecipientDelivery
	order    delivery.Order
}

func newStoredDelivery(t *testing.T, state delivery.State, start time.Time) storedDelivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), state)
	require.NoError(t, err)
	w, err := delivery.NewAccessWindow(kernel.NewUUID(), d.ID(), start)
	require.NoError(t, err)
	l, err := delivery.NewRecipientDelivery(kernel.NewUUID(), delivery.SampleRecipientID, d.ID())
	require.NoError(t, err)
	o, err := delivery.NewOrder("ACME_ON_"+d.ID().String(), d.ID(), "ACME")
	require.NoError(t, err)
	return storedDelivery{delivery: d, window: w, link: l, order: o}
}

func notFound[E any](key string) error {
	return ports.NewStorageError[E]("get", errs.NewObjectNotFoundError("id", key))
}

func TestGetDeliveryQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	target := newStoredDelivery(t, delivery.Approved, time.Now())
	other := newStoredDelivery(t, delivery.Created, time.Now())
	q, err := queries.NewGetDeliveryQuery(target.delivery.ID())
	require.NoError(t, err)

	g := mocks.NewGateways()
	g.DeliveryGateway.On("GetByID", ctx, target.delivery.ID()).Return(target.delivery, nil).Once()
	g.AccessWindowGateway.On("GetByPredicate", ctx, mock.Anything).
		Return([]delivery.AccessWindow{other.window, target.window}, nil).Once()
	g.RecipientDeliveryGateway.On("GetByPredicate", ctx, mock.Anything).
		Return([]delivery.RecipientDelivery{other.link, target.link}, nil).Once()
	g.RecipientGateway.On("GetByID", ctx, delivery.SampleRecipientID).Return(delivery.SampleRecipient(), nil).Once()
	g.OrderGateway.On("GetByPredicate", ctx, mock.Anything).
		Return([]delivery.Order{other.order, target.order}, nil).Once()

	h := queries.NewGetDeliveryQueryHandler(g)
	agg, err := h.Handle(ctx, q)

	require.NoError(t, err)
	assert.True(t, agg.ID.IsEqual(target.delivery.ID()))
	assert.Equal(t, delivery.Approved, agg.State)
	assert.True(t, agg.AccessWindow.ID().IsEqual(target.window.ID()))
	assert.Equal(t, target.order.Number(), agg.Order.Number())
	assert.Equal(t, "Mr John Smith", agg.Recipient.Name())
	g.AssertExpectations(t)
}

func TestGetDeliveryQueryHandler_Handle_Failures(t *testing.T) {
	testCases := []struct {
		name   string
		reason delivery.Reason
		setup  func(g *mocks.Gateways, s storedDelivery)
	}{
		{
			name:   "delivery missing",
			reason: delivery.ReasonDeliveryNotFound,
			setup: func(g *mocks.Gateways, s storedDelivery) {
				g.DeliveryGateway.On("GetByID", mock.Anything, s.delivery.ID()).
					Return(delivery.Delivery{}, notFound[delivery.Delivery](s.delivery.ID().String()))
			},
		},
		{
			name:   "access window missing",
			reason: delivery.ReasonAccessWindowNotFound,
			setup: func(g *mocks.Gateways, s storedDelivery) {
				g.DeliveryGateway.On("GetByID", mock.Anything, s.delivery.ID()).Return(s.delivery, nil)
				g.AccessWindowGateway.On("GetByPredicate", mock.Anything, mock.Anything).
					Return([]delivery.AccessWindow{}, nil)
			},
		},
		{
			name:   "recipient link missing",
			reason: delivery.ReasonRecipientNotFound,
			setup: func(g *mocks.Gateways, s storedDelivery) {
				g.DeliveryGateway.On("GetByID", mock.Anything, s.delivery.ID()).Return(s.delivery, nil)
				g.AccessWindowGateway.On("GetByPredicate", mock.Anything, mock.Anything).Return(s.window, nil)
				g.RecipientDeliveryGateway.On("GetByPredicate", mock.Anything, mock.Anything).
					Return(delivery.RecipientDelivery{}, notFound[delivery.RecipientDelivery]("link"))
			},
		},
		{
			name:   "recipient missing",
			reason: delivery.ReasonRecipientNotFound,
			setup: func(g *mocks.Gateways, s storedDelivery) {
				g.DeliveryGateway.On("GetByID", mock.Anything, s.delivery.ID()).Return(s.delivery, nil)
				g.AccessWindowGateway.On("GetByPredicate", mock.Anything, mock.Anything).Return(s.window, nil)
				g.RecipientDeliveryGateway.On("GetByPredicate", mock.Anything, mock.Anything).Return(s.link, nil)
				g.RecipientGateway.On("GetByID", mock.Anything, s.link.RecipientID()).
					Return(delivery.Recipient{}, notFound[delivery.Recipient](s.link.RecipientID().String()))
			},
		},
		{
			name:   "order missing",
			reason: delivery.ReasonOrderNotFound,
			setup: func(g *mocks.Gateways, s storedDelivery) {
				g.DeliveryGateway.On("GetByID", mock.Anything, s.delivery.ID()).Return(s.delivery, nil)
				g.AccessWindowGateway.On("GetByPredicate", mock.Anything, mock.Anything).Return(s.window, nil)
				g.RecipientDeliveryGateway.On("GetByPredicate", mock.Anything, mock.Anything).Return(s.link, nil)
				g.RecipientGateway.On("GetByID", mock.Anything, s.link.RecipientID()).Return(delivery.SampleRecipient(), nil)
				g.OrderGateway.On("GetByPredicate", mock.Anything, mock.Anything).
					Return(delivery.Order{}, errors.New("store unavailable"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stored := newStoredDelivery(t, delivery.Created, time.Now())
			g := mocks.NewGateways()
			tc.setup(g, stored)
			q, err := queries.NewGetDeliveryQuery(stored.delivery.ID())
			require.NoError(t, err)

			h := queries.NewGetDeliveryQueryHandler(g)
			_, err = h.Handle(t.Context(), q)

			var de *delivery.Error
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tc.reason, de.Reason)
			assert.True(t, stored.delivery.ID().IsEqual(de.DeliveryID))
		})
	}
}

func TestGetDeliveryQueryHandler_Handle_ValidationError(t *testing.T) {
	g := mocks.NewGateways()
	h := queries.NewGetDeliveryQueryHandler(g)

	_, err := h.Handle(t.Context(), queries.GetDeliveryQuery{})

	require.ErrorIs(t, err, queries.ErrGetDeliveryQueryIsNotConstructed)
	g.DeliveryGateway.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestNewGetDeliveryQuery(t *testing.T) {
	_, err := queries.NewGetDeliveryQuery(kernel.UUID{})

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
