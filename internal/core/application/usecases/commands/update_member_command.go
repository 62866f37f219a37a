package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrUpdateMemberCommandIsNotConstructed = errors.New(
	"UpdateMemberCommand must be created via NewUpdateMemberCommand constructor",
)

// UpdateMemberCommand represents a request to rename an existing member.
type UpdateMemberCommand struct { //nolint:recvcheck //using for validation
	memberID kernel.UUID
	name     string

	guard guard.ConstructorGuard
}

// NewUpdateMemberCommand creates a command to rename a member.
// Validates that the member ID is valid and the new name is not empty.
func NewUpdateMemberCommand(memberID kernel.UUID, name string) (UpdateMemberCommand, error) {
	command := UpdateMemberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMemberID(memberID),
		command.setName(name),
	); err != nil {
		return UpdateMemberCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMemberCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMemberCommandIsNotConstructed)
}

// MemberID returns the identifier of the member to rename.
func (c UpdateMemberCommand) MemberID() kernel.UUID {
	return c.memberID
}

// Name returns the member's new name.
func (c UpdateMemberCommand) Name() string {
	return c.name
}

func (c *UpdateMemberCommand) setMemberID(memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}
	c.memberID = memberID
	return nil
}

func (c *UpdateMemberCommand) setName(name string) error {
	if name == "" {
		return ErrMemberNameIsRequired
	}
	c.name = name
	return nil
}
