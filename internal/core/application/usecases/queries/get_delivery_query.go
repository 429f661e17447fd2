package queries

import (
	"errors"

	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/pkg/guard"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
)

// GetDeliveryQuery selects a single delivery by id.
type GetDeliveryQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDeliveryQuery(deliveryID kernel.UUID) (GetDeliveryQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}
	return GetDeliveryQuery{deliveryID: deliveryID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

func (q GetDeliveryQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}
