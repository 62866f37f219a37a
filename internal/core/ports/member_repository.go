// Package ports defines the persistence contracts between the domain layer
// and infrastructure. The interfaces here enable dependency inversion and
// testability; the store behind them is a collaborator, not part of the core.
package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
)

// MemberRepository defines the persistence contract for member entities.
type MemberRepository interface {
	// Add persists a new member. The member's name is unique across the
	// store; a violation surfaces as an error at commit even if the
	// registration-time uniqueness check raced with another writer.
	Add(ctx context.Context, aggregate *member.Member) error

	// Update persists changes to an existing member.
	Update(ctx context.Context, aggregate *member.Member) error

	// Get retrieves a member by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*member.Member, error)

	// GetByName retrieves every member with the given name.
	// Used by the registration-time duplicate check; with the unique index in
	// place the result has at most one element.
	GetByName(ctx context.Context, name string) ([]*member.Member, error)
}
