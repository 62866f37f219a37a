package queries

import (
	"errors"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrGetAllItemsQueryIsNotConstructed = errors.New(
	"GetAllItemsQuery must be created via NewGetAllItemsQuery constructor",
)

// GetAllItemsQuery retrieves the whole catalog.
type GetAllItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllItemsQuery creates a query to list all catalog items.
// This is a parameterless query.
func NewGetAllItemsQuery() GetAllItemsQuery {
	return GetAllItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllItemsQueryIsNotConstructed)
}

// GetAllItemsQueryResponse represents one catalog item in the listing.
type GetAllItemsQueryResponse struct {
	ID            kernel.UUID
	Kind          item.Kind
	Name          string
	Price         int
	StockQuantity int
}
