package queries

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FindOrdersQueryHandler searches orders in the database.
// Joins the member for its name and aggregates line totals in SQL, so the read
// side never rehydrates order aggregates.
//
// Example:
//
//	handler := NewFindOrdersQueryHandler(db)
//	query, _ := NewFindOrdersQuery("", order.Unknown) // no filter
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("failed to find orders: %v", err)
//	    return err
//	}
type FindOrdersQueryHandler struct {
	db *gorm.DB
}

// NewFindOrdersQueryHandler creates a handler for order search queries.
// Requires a GORM database connection for query execution.
func NewFindOrdersQueryHandler(db *gorm.DB) FindOrdersQueryHandler {
	return FindOrdersQueryHandler{db: db}
}

// Handle executes the order search.
// Applies each supplied filter field; an absent field imposes no constraint.
// Results are sorted by order date, newest first, then by ID for a stable
// order between rows sharing a date.
func (h FindOrdersQueryHandler) Handle(
	ctx context.Context,
	query FindOrdersQuery,
) ([]FindOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			m.name,
			o.status,
			o.order_date,
			COALESCE(SUM(oi.price * oi.quantity), 0)
		FROM orders o
		JOIN members m ON m.id = o.member_id
		LEFT JOIN order_items oi ON oi.order_id = o.id
	`
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if query.MemberName() != "" {
		conditions = append(conditions, "m.name = ?")
		args = append(args, query.MemberName())
	}
	if query.Status() != order.Unknown {
		conditions = append(conditions, "o.status = ?")
		args = append(args, int(query.Status()))
	}

	for i, condition := range conditions {
		if i == 0 {
			sql += " WHERE " + condition
		} else {
			sql += " AND " + condition
		}
	}
	sql += `
		GROUP BY o.id, m.name, o.status, o.order_date
		ORDER BY o.order_date DESC, o.id
	`

	orders := make([]FindOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp FindOrdersQueryResponse
		var id uuid.UUID
		var status int
		var orderDate time.Time

		err = rows.Scan(
			&id,
			&orderResp.MemberName,
			&status,
			&orderDate,
			&orderResp.TotalPrice,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.OrderID = orderID
		orderResp.Status = order.Status(status)
		orderResp.OrderDate = orderDate
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
