// Package member provides the customer entity of the domain model.
//
// A Member holds identity, a unique name and a postal address. The member's
// order history is intentionally not modelled as an in-memory back-pointer
// collection: the order side owns the relationship and the history is a
// derived view queried from storage.
package member
