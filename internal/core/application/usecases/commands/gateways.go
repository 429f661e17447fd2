package commands

import "deliveries/internal/core/ports"

type (
	DeliveryGatewayProvider interface {
		Deliveries() ports.DeliveryGateway
	}

	// CreateGateways is everything Create writes to or reads from.
	CreateGateways interface {
		DeliveryGatewayProvider
		AccessWindows() ports.AccessWindowGateway
		Recipients() ports.RecipientGateway
		RecipientDeliveries() ports.RecipientDeliveryGateway
		Orders() ports.OrderGateway
	}
)
