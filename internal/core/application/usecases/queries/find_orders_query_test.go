package queries_test

import (
	"testing"

	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFindOrdersQuery_NoFilter(t *testing.T) {
	query, err := queries.NewFindOrdersQuery("", order.Unknown)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Empty(t, query.MemberName())
	assert.Equal(t, order.Unknown, query.Status())
}

func TestNewFindOrdersQuery_WithFilters(t *testing.T) {
	query, err := queries.NewFindOrdersQuery("Alice", order.Placed)
	require.NoError(t, err)
	assert.Equal(t, "Alice", query.MemberName())
	assert.Equal(t, order.Placed, query.Status())
}

func TestNewFindOrdersQuery_InvalidStatus(t *testing.T) {
	_, err := queries.NewFindOrdersQuery("", order.Status(99))
	require.Error(t, err)
}

func TestFindOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.FindOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrFindOrdersQueryIsNotConstructed)
}

func TestNewGetAllMembersQuery_Valid(t *testing.T) {
	query := queries.NewGetAllMembersQuery()
	require.NoError(t, query.Validate())
}

func TestGetAllMembersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllMembersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllMembersQueryIsNotConstructed)
}

func TestNewGetAllItemsQuery_Valid(t *testing.T) {
	query := queries.NewGetAllItemsQuery()
	require.NoError(t, query.Validate())
}

func TestGetAllItemsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllItemsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllItemsQueryIsNotConstructed)
}
