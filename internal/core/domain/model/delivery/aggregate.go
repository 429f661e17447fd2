package delivery

import "deliveries/internal/core/domain/model/kernel"

// Aggregate joins a delivery with its access window, recipient and order.
// It is a read model only; writes go through the individual records.
type Aggregate struct {
	ID           kernel.UUID
	State        State
	AccessWindow *AccessWindow
	Recipient    *Recipient
	Order        *Order
}

// NewAggregate copies the delivery's id and state and keeps its own copies of
// the related records.
//
// Example:
//
//	agg := NewAggregate(d, window, SampleRecipient(), order)
//	fmt.Println(agg.AccessWindow.EndTime())
func NewAggregate(d Delivery, window AccessWindow, recipient Recipient, order Order) Aggregate {
	return Aggregate{
		ID:           d.ID(),
		State:        d.State(),
		AccessWindow: &window,
		Recipient:    &recipient,
		Order:        &order,
	}
}
