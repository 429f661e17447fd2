// Package errs holds the typed errors used for input validation and lookups.
//
// Every type pairs with a sentinel and unwraps to it, so callers match on the
// sentinel with errors.Is and read details with errors.As:
//
//	ValueIsRequiredError   -> ErrValueIsRequired    (blank sender name, missing id)
//	ValueIsInvalidError    -> ErrValueIsInvalid     (unknown state, malformed id)
//	ValueIsOutOfRangeError -> ErrValueIsOutOfRange
//	ObjectNotFoundError    -> ErrObjectNotFound     (gateway lookups)
//
// Each type has a New* constructor and a New*WithCause variant. IsValidation
// groups the three validation sentinels so the HTTP boundary can tell caller
// mistakes apart from storage faults.
package errs
