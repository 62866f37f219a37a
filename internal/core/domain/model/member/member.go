package member

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	// ErrMemberIsNotConstructed is returned when a Member instance was not
	// created through NewMember or RestoreMember.
	ErrMemberIsNotConstructed = errors.New("Member must be created via NewMember or RestoreMember")

	// ErrNameIsRequired is returned when attempting to create or rename a
	// member with an empty name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Member is a registered customer: an identity, a name and a postal address.
//
// Member names are unique across the shop; that business rule is enforced at
// registration time and backed by a storage-level uniqueness constraint, so a
// racing second registration with the same name fails at commit.
//
// A member's orders are not held on the member: the order side is
// authoritative for that relationship, and the member's order history is a
// derived view produced by querying orders for the member's identifier.
type Member struct {
	id      kernel.UUID
	name    string
	address kernel.Address

	guard guard.ConstructorGuard
}

// NewMember creates a new Member with the given identity, name and address.
// Name uniqueness is a registration-level rule, not a constructor concern.
func NewMember(id kernel.UUID, name string, address kernel.Address) (*Member, error) {
	m := &Member{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setAddress(address),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMember reconstructs a Member from persistent storage.
func RestoreMember(id kernel.UUID, name string, address kernel.Address) (*Member, error) {
	return NewMember(id, name, address)
}

// Validate ensures the Member instance was properly constructed.
func (m *Member) Validate() error {
	if m == nil {
		return ErrMemberIsNotConstructed
	}
	return m.guard.Validate(ErrMemberIsNotConstructed)
}

// IsEqual compares two members by their unique identifiers.
func (m *Member) IsEqual(other *Member) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the member's unique identifier.
func (m *Member) ID() kernel.UUID {
	return m.id
}

// Name returns the member's name.
func (m *Member) Name() string {
	return m.name
}

// Address returns the member's current postal address.
// Deliveries snapshot this value at order time; changing it later does not
// affect already placed orders.
func (m *Member) Address() kernel.Address {
	return m.address
}

// Rename changes the member's name. The name must be non-empty.
func (m *Member) Rename(name string) error {
	return m.setName(name)
}

func (m *Member) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Member) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	m.name = name
	return nil
}

func (m *Member) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	m.address = address
	return nil
}
