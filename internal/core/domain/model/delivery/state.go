package delivery

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"deliveries/internal/pkg/errs"
)

// State is the lifecycle position of a delivery. Values are persisted as
// their ordinal, so the constants must not be reordered.
type State int

const (
	Created State = iota
	Approved
	Completed
	Cancelled
	Expired
)

var stateNames = map[State]string{
	Created:   "Created",
	Approved:  "Approved",
	Completed: "Completed",
	Cancelled: "Cancelled",
	Expired:   "Expired",
}

// States lists every valid state in ordinal order.
func States() []State {
	return []State{Created, Approved, Completed, Cancelled, Expired}
}

func (s State) Validate() error {
	if _, ok := stateNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%d is not a valid state", int(s)))
	}
	return nil
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ParseState accepts a state name in any letter case or its ordinal.
func ParseState(raw string) (State, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return stateFromOrdinal(n)
	}
	for s, name := range stateNames {
		if strings.EqualFold(name, raw) {
			return s, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a valid state", raw))
}

func (s State) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts either the name ("Approved") or the ordinal (1).
func (s *State) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		parsed, err := ParseState(name)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("state", err)
	}
	parsed, err := stateFromOrdinal(n)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func stateFromOrdinal(n int) (State, error) {
	if n < int(Created) || n > int(Expired) {
		return 0, errs.NewValueIsOutOfRangeError("state", n, int(Created), int(Expired))
	}
	return State(n), nil
}
