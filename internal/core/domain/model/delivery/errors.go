package delivery

import (
	"errors"
	"fmt"

	"deliveries/internal/core/domain/model/kernel"
)

// ErrDelivery matches every *Error via errors.Is.
var ErrDelivery = errors.New("delivery error")

// Reason classifies a failed delivery operation.
type Reason int

const (
	ReasonUnknown Reason = iota
	ReasonDeliveryNotFound
	ReasonRecipientNotFound
	ReasonCreationFailed
	ReasonAccessWindowNotFound
	ReasonOrderNotFound
	ReasonInvalidTransition
	ReasonDeletionFailed
)

func (r Reason) String() string {
	switch r {
	case ReasonDeliveryNotFound:
		return "DeliveryNotFound"
	case ReasonRecipientNotFound:
		return "RecipientNotFound"
	case ReasonCreationFailed:
		return "CreationFailed"
	case ReasonAccessWindowNotFound:
		return "AccessWindowNotFound"
	case ReasonOrderNotFound:
		return "OrderNotFound"
	case ReasonInvalidTransition:
		return "InvalidTransition"
	case ReasonDeletionFailed:
		return "DeletionFailed"
	default:
		return "Unknown"
	}
}

// Stage is the Create step at which a CreationFailed error happened. Every
// stage before it has already been written and is not rolled back.
type Stage int

const (
	StageNone Stage = iota
	StageDelivery
	StageRecipientLink
	StageAccessWindow
	StageOrder
)

func (s Stage) String() string {
	switch s {
	case StageDelivery:
		return "delivery"
	case StageRecipientLink:
		return "recipient link"
	case StageAccessWindow:
		return "access window"
	case StageOrder:
		return "order"
	default:
		return "none"
	}
}

// Error is the single error type returned by the delivery use cases.
type Error struct {
	DeliveryID kernel.UUID
	Reason     Reason
	Stage      Stage
	Cause      error
}

func NewError(deliveryID kernel.UUID, reason Reason, cause error) *Error {
	return &Error{DeliveryID: deliveryID, Reason: reason, Cause: cause}
}

func NewCreationError(deliveryID kernel.UUID, stage Stage, cause error) *Error {
	return &Error{DeliveryID: deliveryID, Reason: ReasonCreationFailed, Stage: stage, Cause: cause}
}

func (e *Error) Error() string {
	msg := e.message()
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *Error) message() string {
	switch e.Reason {
	case ReasonDeliveryNotFound:
		return "unable to find delivery"
	case ReasonRecipientNotFound:
		return "unable to find recipient for delivery"
	case ReasonCreationFailed:
		return fmt.Sprintf("unable to create delivery %s at the %s stage, earlier records were kept", e.DeliveryID, e.Stage)
	case ReasonAccessWindowNotFound:
		return "unable to find access window"
	case ReasonOrderNotFound:
		return "unable to find order"
	case ReasonInvalidTransition:
		return "invalid delivery state transition"
	case ReasonDeletionFailed:
		return fmt.Sprintf("unable to delete delivery: %s", e.DeliveryID)
	default:
		return "delivery operation failed"
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	return target == ErrDelivery
}

// ReasonOf returns the Reason carried by err, or ReasonUnknown with ok false
// when err is not a delivery error.
func ReasonOf(err error) (Reason, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Reason, true
	}
	return ReasonUnknown, false
}
