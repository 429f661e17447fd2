// Package guard holds ConstructorGuard, a marker embedded in commands, queries
// and domain values so that a zero value can be told apart from one built by
// its constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is set only by NewConstructorGuard. Embed it as a field and
// call Validate from the owner's own Validate method:
//
//	type GetDeliveryQuery struct {
//	    deliveryID kernel.UUID
//	    guard      guard.ConstructorGuard
//	}
//
//	func (q GetDeliveryQuery) Validate() error {
//	    return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard, otherwise validationError
// (or ErrDefaultConstructorGuard when validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
