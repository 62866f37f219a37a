package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// A save on the order root covers its exclusively-owned children: lines and
// delivery are persisted with the order, never on their own.
type OrderRepository interface {
	// Add persists a new order aggregate with its lines and delivery.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including its
	// delivery's status. Lines are immutable after placement and are not
	// rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, fully
	// rehydrated: lines with their referenced catalog items, and the delivery.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInPlacedStatus retrieves every order still in Placed status.
	// Used by the delivery progression workflow to find shipments to advance.
	GetAllInPlacedStatus(ctx context.Context) ([]*order.Order, error)
}
