package queries

import "deliveries/internal/core/ports"

type (
	// ExpiryGateways is what the expired-deliveries query scans.
	ExpiryGateways interface {
		Deliveries() ports.DeliveryGateway
		AccessWindows() ports.AccessWindowGateway
	}

	// AggregateGateways is what the get query joins.
	AggregateGateways interface {
		ExpiryGateways
		Recipients() ports.RecipientGateway
		RecipientDeliveries() ports.RecipientDeliveryGateway
		Orders() ports.OrderGateway
	}
)
