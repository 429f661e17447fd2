// Package delivery models a parcel delivery and the records that hang off it.
//
// A delivery is not stored as one document. Create writes four independent
// records, each reached through its own gateway:
//   - Delivery: the base record, identity plus lifecycle State
//   - RecipientDelivery: links the delivery to a pre-existing Recipient
//   - AccessWindow: the [start, start+7d) interval during which the parcel can be collected
//   - Order: the sender's order, keyed by a generated order number
//
// Aggregate is the joined read model assembled by the get query. It is never
// persisted.
//
// Lifecycle:
//
//	Created ──> Approved ──> Completed
//	   │           │
//	   └───────────┴──> Cancelled ──> Expired
//
// The ordinal order of State is significant: a request may never move to a
// lower ordinal. See State.TransitionTo for the full rule set.
package delivery
