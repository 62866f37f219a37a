package queries

import (
	"context"

	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllMembersQueryHandler retrieves all members from the database.
//
// Example:
//
//	handler := NewGetAllMembersQueryHandler(db)
//	members, err := handler.Handle(ctx, NewGetAllMembersQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("found %d members\n", len(members))
type GetAllMembersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllMembersQueryHandler creates a handler for member listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllMembersQueryHandler(db *gorm.DB) GetAllMembersQueryHandler {
	return GetAllMembersQueryHandler{db: db}
}

// Handle executes the query to retrieve all members sorted by name.
func (h GetAllMembersQueryHandler) Handle(
	ctx context.Context,
	query GetAllMembersQuery,
) ([]GetAllMembersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	members := make([]GetAllMembersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address_street,
			address_city,
			address_zip_code
		FROM members
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var memberResp GetAllMembersQueryResponse
		var id uuid.UUID
		var street, city, zipCode string

		err = rows.Scan(
			&id,
			&memberResp.Name,
			&street,
			&city,
			&zipCode,
		)
		if err != nil {
			return nil, err
		}

		memberID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		memberResp.ID = memberID

		address, addrErr := kernel.NewAddress(street, city, zipCode)
		if addrErr != nil {
			return nil, addrErr
		}
		memberResp.Address = address
		members = append(members, memberResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}
