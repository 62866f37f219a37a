package queries

import (
	"context"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllItemsQueryHandler retrieves the catalog from the database.
//
// Example:
//
//	handler := NewGetAllItemsQueryHandler(db)
//	items, err := handler.Handle(ctx, NewGetAllItemsQuery())
//	if err != nil {
//	    return err
//	}
//	for _, it := range items {
//	    fmt.Printf("%s %s: %d in stock\n", it.Kind, it.Name, it.StockQuantity)
//	}
type GetAllItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllItemsQueryHandler creates a handler for catalog listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllItemsQueryHandler(db *gorm.DB) GetAllItemsQueryHandler {
	return GetAllItemsQueryHandler{db: db}
}

// Handle executes the query to retrieve all catalog items sorted by name.
// The kind column holds the single-table discriminator and converts back to
// the domain enum per row.
func (h GetAllItemsQueryHandler) Handle(
	ctx context.Context,
	query GetAllItemsQuery,
) ([]GetAllItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetAllItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			dtype,
			name,
			price,
			stock_quantity
		FROM items
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var itemResp GetAllItemsQueryResponse
		var id uuid.UUID
		var dtype string

		err = rows.Scan(
			&id,
			&dtype,
			&itemResp.Name,
			&itemResp.Price,
			&itemResp.StockQuantity,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		itemResp.ID = itemID

		kind, kindErr := item.KindFromString(dtype)
		if kindErr != nil {
			return nil, kindErr
		}
		itemResp.Kind = kind
		items = append(items, itemResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
