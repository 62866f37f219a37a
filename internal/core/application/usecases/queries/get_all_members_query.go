package queries

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrGetAllMembersQueryIsNotConstructed = errors.New(
	"GetAllMembersQuery must be created via NewGetAllMembersQuery constructor",
)

// GetAllMembersQuery retrieves every registered member.
type GetAllMembersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllMembersQuery creates a query to list all members.
// This is a parameterless query.
func NewGetAllMembersQuery() GetAllMembersQuery {
	return GetAllMembersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllMembersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllMembersQueryIsNotConstructed)
}

// GetAllMembersQueryResponse represents one member in the listing.
type GetAllMembersQueryResponse struct {
	ID      kernel.UUID
	Name    string
	Address kernel.Address
}
