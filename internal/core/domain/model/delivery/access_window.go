package delivery

import (
	"errors"
	"fmt"
	"time"

	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/pkg/errs"
)

// AccessWindowDuration is the fixed length of every access window.
const AccessWindowDuration = 7 * 24 * time.Hour

// AccessWindow is the interval during which the recipient may collect the
// parcel. Times are held in UTC at microsecond precision, the resolution
// of a Postgres timestamptz, so a stored window reads back unchanged.
type AccessWindow struct {
	id         kernel.UUID
	deliveryID kernel.UUID
	startTime  time.Time
	endTime    time.Time
}

// NewAccessWindow opens a window at start lasting AccessWindowDuration.
func NewAccessWindow(id, deliveryID kernel.UUID, start time.Time) (AccessWindow, error) {
	return RestoreAccessWindow(id, deliveryID, start, start.Add(AccessWindowDuration))
}

// RestoreAccessWindow rebuilds a stored window. end must be after start.
func RestoreAccessWindow(id, deliveryID kernel.UUID, start, end time.Time) (AccessWindow, error) {
	if err := errors.Join(id.Validate(), deliveryID.Validate()); err != nil {
		return AccessWindow{}, err
	}
	start = start.UTC().Truncate(time.Microsecond)
	end = end.UTC().Truncate(time.Microsecond)
	if !end.After(start) {
		return AccessWindow{}, errs.NewValueIsInvalidErrorWithCause(
			"endTime",
			fmt.Errorf("end %s is not after start %s", end.Format(time.RFC3339), start.Format(time.RFC3339)),
		)
	}
	return AccessWindow{
		id:         id,
		deliveryID: deliveryID,
		startTime:  start,
		endTime:    end,
	}, nil
}

func (w AccessWindow) ID() kernel.UUID {
	return w.id
}

func (w AccessWindow) DeliveryID() kernel.UUID {
	return w.deliveryID
}

func (w AccessWindow) StartTime() time.Time {
	return w.startTime
}

func (w AccessWindow) EndTime() time.Time {
	return w.endTime
}

// HasLapsed reports whether the window ended at or before cutoff.
func (w AccessWindow) HasLapsed(cutoff time.Time) bool {
	return !w.endTime.After(cutoff)
}
