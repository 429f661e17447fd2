package persistence

import (
	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/core/ports"

	"gorm.io/gorm"
)

var _ ports.Gateways = (*GormGateways)(nil)

// GormGateways builds one Gateway per record kind over a shared *gorm.DB.
// Unlike a unit of work it has no Begin/Commit: each gateway call commits
// on its own.
type GormGateways struct {
	deliveries          *Gateway[kernel.UUID, delivery.Delivery, DeliveryDTO]
	accessWindows       *Gateway[kernel.UUID, delivery.AccessWindow, AccessWindowDTO]
	recipients          *Gateway[kernel.UUID, delivery.Recipient, RecipientDTO]
	recipientDeliveries *Gateway[kernel.UUID, delivery.RecipientDelivery, RecipientDeliveryDTO]
	orders              *Gateway[string, delivery.Order, OrderDTO]
}

func NewGormGateways(db *gorm.DB) *GormGateways {
	return &GormGateways{
		deliveries:          NewGateway[kernel.UUID, delivery.Delivery, DeliveryDTO](db, deliveryMapper{}),
		accessWindows:       NewGateway[kernel.UUID, delivery.AccessWindow, AccessWindowDTO](db, accessWindowMapper{}),
		recipients:          NewGateway[kernel.UUID, delivery.Recipient, RecipientDTO](db, recipientMapper{}),
		recipientDeliveries: NewGateway[kernel.UUID, delivery.RecipientDelivery, RecipientDeliveryDTO](db, recipientDeliveryMapper{}),
		orders:              NewGateway[string, delivery.Order, OrderDTO](db, orderMapper{}),
	}
}

func (g *GormGateways) Deliveries() ports.DeliveryGateway {
	return g.deliveries
}

func (g *GormGateways) AccessWindows() ports.AccessWindowGateway {
	return g.accessWindows
}

func (g *GormGateways) Recipients() ports.RecipientGateway {
	return g.recipients
}

func (g *GormGateways) RecipientDeliveries() ports.RecipientDeliveryGateway {
	return g.recipientDeliveries
}

func (g *GormGateways) Orders() ports.OrderGateway {
	return g.orders
}
