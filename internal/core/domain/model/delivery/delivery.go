package delivery

import (
	"errors"

	"deliveries/internal/core/domain/model/kernel"
)

// Delivery is the base record: identity plus current state.
type Delivery struct {
	id    kernel.UUID
	state State
}

// NewDelivery builds a base record. The id must be set and state must be
// one of the known states.
//
// Example:
//
//	d, err := NewDelivery(kernel.NewUUID(), Created)
//	if err != nil {
//	    // Handle validation error
//	}
//	approved, err := d.Transition(Approved)
func NewDelivery(id kernel.UUID, state State) (Delivery, error) {
	if err := errors.Join(id.Validate(), state.Validate()); err != nil {
		return Delivery{}, err
	}
	return Delivery{id: id, state: state}, nil
}

func (d Delivery) ID() kernel.UUID {
	return d.id
}

func (d Delivery) State() State {
	return d.state
}

// Transition applies State.TransitionTo and returns the updated record.
// The receiver is left untouched.
func (d Delivery) Transition(to State) (Delivery, error) {
	next, err := d.state.TransitionTo(to)
	if err != nil {
		return d, err
	}
	d.state = next
	return d, nil
}
