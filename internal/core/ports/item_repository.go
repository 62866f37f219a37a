package ports

import (
	"context"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for catalog items.
type ItemRepository interface {
	// Add persists a new catalog item.
	Add(ctx context.Context, aggregate *item.Item) error

	// Update persists changes to an existing item using optimistic
	// concurrency: the write only applies if the stored version still matches
	// the version the aggregate was loaded with, and bumps it. A mismatch -
	// two transactions racing to mutate the same item's stock - fails with a
	// version conflict instead of committing a lost update.
	Update(ctx context.Context, aggregate *item.Item) error

	// Get retrieves an item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)
}
