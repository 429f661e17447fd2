// Package services provides domain services that do not belong to a single
// delivery record.
//
// The package includes:
//   - OrderNumberGenerator: derives a sender-scoped order number from the clock
//   - TransitionAuthorizer: decides which caller roles may request which delivery states
//
// Both are stateless apart from their injected clock and are safe for
// concurrent use.
package services
