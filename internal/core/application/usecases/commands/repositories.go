// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence. Each handler opens one unit of work per invocation, so an
// entry point either commits all of its mutations or none of them.
package commands

import (
	"context"

	"shop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// MemberRepoFactory provides access to the member repository within a transaction.
	MemberRepoFactory interface {
		MemberRepository() ports.MemberRepository
	}

	// ItemRepoFactory provides access to the item repository within a transaction.
	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MemberUoW manages transactions for member-only operations
	// (registration, rename).
	MemberUoW interface {
		TxManager
		MemberRepoFactory
	}

	// MemberUoWFactory creates new member unit of work instances.
	MemberUoWFactory interface {
		Create() MemberUoW
	}

	// ItemUoW manages transactions for catalog-only operations.
	ItemUoW interface {
		TxManager
		ItemRepoFactory
	}

	// ItemUoWFactory creates new item unit of work instances.
	ItemUoWFactory interface {
		Create() ItemUoW
	}

	// OrderUoW manages transactions for order-only operations
	// (delivery progression).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions that span member, item and order aggregates.
	// Order placement reads a member and an item, mutates the item's stock and
	// writes the order; cancellation mutates the order and its items. Both run
	// against this full unit of work.
	UoW interface {
		TxManager
		MemberRepoFactory
		ItemRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
