// Package mocks provides testify mocks for the ports used by the delivery
// use cases.
package mocks

import (
	"context"

	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/core/ports"
	"deliveries/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
)

var errNoMatch = errs.NewObjectNotFoundError("predicate", "no matching record")

// Gateway mocks ports.EntityGateway for any record kind.
//
// GetByPredicate is recorded with the predicate as its only non-context
// argument; use mock.Anything to match it. When the return value is a
// []E, the predicate is applied to it and the first match is returned,
// which lets tests exercise the caller's filter.
type Gateway[ID comparable, E any] struct {
	mock.Mock
}

func (m *Gateway[ID, E]) GetAll(ctx context.Context) ([]E, error) {
	args := m.Called(ctx)
	all, _ := args.Get(0).([]E)
	return all, args.Error(1)
}

func (m *Gateway[ID, E]) GetByID(ctx context.Context, id ID) (E, error) {
	args := m.Called(ctx, id)
	entity, _ := args.Get(0).(E)
	return entity, args.Error(1)
}

func (m *Gateway[ID, E]) GetByPredicate(ctx context.Context, match func(E) bool) (E, error) {
	args := m.Called(ctx, mock.Anything)
	var zero E
	if err := args.Error(1); err != nil {
		return zero, err
	}
	switch v := args.Get(0).(type) {
	case E:
		return v, nil
	case []E:
		for _, entity := range v {
			if match(entity) {
				return entity, nil
			}
		}
		return zero, ports.NewStorageError[E]("get by predicate", errNoMatch)
	}
	return zero, nil
}

func (m *Gateway[ID, E]) Insert(ctx context.Context, entity E) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *Gateway[ID, E]) Update(ctx context.Context, entity E) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *Gateway[ID, E]) Delete(ctx context.Context, id ID) error {
	return m.Called(ctx, id).Error(0)
}

// Gateways bundles one mock per record kind and implements ports.Gateways.
type Gateways struct {
	DeliveryGateway          *Gateway[kernel.UUID, delivery.Delivery]
	AccessWindowGateway      *Gateway[kernel.UUID, delivery.AccessWindow]
	RecipientGateway         *Gateway[kernel.UUID, delivery.Recipient]
	RecipientDeliveryGateway *Gateway[kernel.UUID, delivery.RecipientDelivery]
	OrderGateway             *Gateway[string, delivery.Order]
}

var _ ports.Gateways = (*Gateways)(nil)

func NewGateways() *Gateways {
	return &Gateways{
		DeliveryGateway:          new(Gateway[kernel.UUID, delivery.Delivery]),
		AccessWindowGateway:      new(Gateway[kernel.UUID, delivery.AccessWindow]),
		RecipientGateway:         new(Gateway[kernel.UUID, delivery.Recipient]),
		RecipientDeliveryGateway: new(Gateway[kernel.UUID, delivery.RecipientDelivery]),
		OrderGateway:             new(Gateway[string, delivery.Order]),
	}
}

func (g *Gateways) Deliveries() ports.DeliveryGateway {
	return g.DeliveryGateway
}

func (g *Gateways) AccessWindows() ports.AccessWindowGateway {
	return g.AccessWindowGateway
}

func (g *Gateways) Recipients() ports.RecipientGateway {
	return g.RecipientGateway
}

func (g *Gateways) RecipientDeliveries() ports.RecipientDeliveryGateway {
	return g.RecipientDeliveryGateway
}

func (g *Gateways) Orders() ports.OrderGateway {
	return g.OrderGateway
}

// AssertExpectations checks every mock in the bundle.
func (g *Gateways) AssertExpectations(t mock.TestingT) {
	g.DeliveryGateway.AssertExpectations(t)
	g.AccessWindowGateway.AssertExpectations(t)
	g.RecipientGateway.AssertExpectations(t)
	g.RecipientDeliveryGateway.AssertExpectations(t)
	g.OrderGateway.AssertExpectations(t)
}

// OrderNumberGenerator mocks ports.OrderNumberGenerator.
type OrderNumberGenerator struct {
	mock.Mock
}

func (m *OrderNumberGenerator) CreateOrderNumber(sender string) string {
	return m.Called(sender).String(0)
}
