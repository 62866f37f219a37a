// Package queries contains read operations in the CQRS architecture.
// Query handlers go straight to the database with raw SQL and return
// read models; they never load or mutate domain aggregates.
package queries

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/guard"
)

var ErrFindOrdersQueryIsNotConstructed = errors.New(
	"FindOrdersQuery must be created via NewFindOrdersQuery constructor",
)

// FindOrdersQuery retrieves orders matching an optional member-name and
// status filter. An empty member name and the Unknown status impose no
// constraint, so the zero filter lists every order.
//
// Example:
//
//	query, _ := NewFindOrdersQuery("Alice", order.Placed)
//	handler := NewFindOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to find orders: %w", err)
//	}
//	fmt.Printf("found %d placed orders for Alice\n", len(orders))
type FindOrdersQuery struct {
	memberName string
	status     order.Status

	guard guard.ConstructorGuard
}

// NewFindOrdersQuery creates a query to search orders.
// A non-Unknown status must be a valid order status; memberName and status
// are each optional and combine conjunctively when both are supplied.
func NewFindOrdersQuery(memberName string, status order.Status) (FindOrdersQuery, error) {
	if status != order.Unknown {
		if err := status.Validate(); err != nil {
			return FindOrdersQuery{}, err
		}
	}

	return FindOrdersQuery{
		memberName: memberName,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindOrdersQuery) Validate() error {
	return q.guard.Validate(ErrFindOrdersQueryIsNotConstructed)
}

// MemberName returns the member-name filter; empty means unfiltered.
func (q FindOrdersQuery) MemberName() string {
	return q.memberName
}

// Status returns the status filter; Unknown means unfiltered.
func (q FindOrdersQuery) Status() order.Status {
	return q.status
}

// FindOrdersQueryResponse represents one order in the search result:
// what an order list page renders.
type FindOrdersQueryResponse struct {
	OrderID    kernel.UUID
	MemberName string
	Status     order.Status
	OrderDate  time.Time
	TotalPrice int
}
