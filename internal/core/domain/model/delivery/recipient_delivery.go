package delivery

import (
	"errors"

	"deliveries/internal/core/domain/model/kernel"
)

// RecipientDelivery links a delivery to its recipient.
type RecipientDelivery struct {
	id          kernel.UUID
	recipientID kernel.UUID
	deliveryID  kernel.UUID
}

// NewRecipientDelivery links recipientID to deliveryID under its own id.
func NewRecipientDelivery(id, recipientID, deliveryID kernel.UUID) (RecipientDelivery, error) {
	if err := errors.Join(id.Validate(), recipientID.Validate(), deliveryID.Validate()); err != nil {
		return RecipientDelivery{}, err
	}
	return RecipientDelivery{id: id, recipientID: recipientID, deliveryID: deliveryID}, nil
}

func (l RecipientDelivery) ID() kernel.UUID {
	return l.id
}

func (l RecipientDelivery) RecipientID() kernel.UUID {
	return l.recipientID
}

func (l RecipientDelivery) DeliveryID() kernel.UUID {
	return l.deliveryID
}
