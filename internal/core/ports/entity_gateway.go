package ports

import (
	"context"

	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"
)

// EntityGateway is the persistence contract for one kind of record.
//
// Every method is a single, independently committed store operation; there
// is no transaction spanning calls. All failures are returned as
// *StorageError[E], so callers can tell which entity kind failed with
// errors.As.
type EntityGateway[ID comparable, E any] interface {
	// GetAll returns every stored record. Order is unspecified.
	GetAll(ctx context.Context) ([]E, error)

	// GetByID returns the record with the given key. It scans the whole
	// collection; the store is never asked to filter.
	GetByID(ctx context.Context, id ID) (E, error)

	// GetByPredicate returns the single record matching match. Zero matches
	// and more than one match are both errors.
	GetByPredicate(ctx context.Context, match func(E) bool) (E, error)

	// Insert stores a new record. A duplicate key is an error.
	Insert(ctx context.Context, entity E) error

	// Update overwrites the record with the same key. A missing key is an error.
	Update(ctx context.Context, entity E) error

	// Delete removes the record with the given key. A missing key is an error.
	Delete(ctx context.Context, id ID) error
}

type (
	DeliveryGateway          = EntityGateway[kernel.UUID, delivery.Delivery]
	AccessWindowGateway      = EntityGateway[kernel.UUID, delivery.AccessWindow]
	RecipientGateway         = EntityGateway[kernel.UUID, delivery.Recipient]
	RecipientDeliveryGateway = EntityGateway[kernel.UUID, delivery.RecipientDelivery]
	OrderGateway             = EntityGateway[string, delivery.Order]
)

// Gateways hands out one gateway per record kind. Gateways returned by the
// same value share a store connection but never a transaction.
type Gateways interface {
	Deliveries() DeliveryGateway
	AccessWindows() AccessWindowGateway
	Recipients() RecipientGateway
	RecipientDeliveries() RecipientDeliveryGateway
	Orders() OrderGateway
}

// OrderNumberGenerator derives an order number for a sender.
type OrderNumberGenerator interface {
	CreateOrderNumber(sender string) string
}
