package delivery

import (
	"strings"

	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/pkg/errs"
)

// Order is the sender's order for a delivery. It is keyed by its number, not
// by a UUID.
type Order struct {
	number     string
	deliveryID kernel.UUID
	sender     string
}

// NewOrder requires a non-empty number, a delivery id and a sender name.
//
// Example:
//
//	order, err := NewOrder("ACME_ON_638500000000000000", deliveryID, "ACME")
func NewOrder(number string, deliveryID kernel.UUID, sender string) (Order, error) {
	if strings.TrimSpace(number) == "" {
		return Order{}, errs.NewValueIsRequiredError("orderNumber")
	}
	if err := deliveryID.Validate(); err != nil {
		return Order{}, err
	}
	if err := ValidateSender(sender); err != nil {
		return Order{}, err
	}
	return Order{number: number, deliveryID: deliveryID, sender: sender}, nil
}

// ValidateSender rejects empty and whitespace-only sender names.
func ValidateSender(sender string) error {
	if strings.TrimSpace(sender) == "" {
		return errs.NewValueIsRequiredError("senderName")
	}
	return nil
}

func (o Order) Number() string {
	return o.number
}

func (o Order) DeliveryID() kernel.UUID {
	return o.deliveryID
}

func (o Order) Sender() string {
	return o.sender
}
