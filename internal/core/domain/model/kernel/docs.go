// Package kernel holds the identifier type shared by every delivery record.
//
// UUID wraps github.com/google/uuid so that the domain never handles the nil
// UUID by accident: the zero value fails Validate, and persistence adapters
// round-trip it through its canonical 36 character text form.
package kernel
