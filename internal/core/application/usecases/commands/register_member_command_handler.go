package commands

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/member"
)

// ErrMemberAlreadyExists is returned when a registration uses a name that
// another member already holds.
var ErrMemberAlreadyExists = errors.New("member with the same name already exists")

// RegisterMemberCommandHandler handles the business logic for member registration.
// Enforces the name-uniqueness rule before creating the member.
//
// Example:
//
//	handler := NewRegisterMemberCommandHandler(uowFactory)
//	cmd, _ := NewRegisterMemberCommand(kernel.NewUUID(), "Alice", addr)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("member registration failed: %w", err)
//	}
type RegisterMemberCommandHandler struct {
	uowFactory MemberUoWFactory
}

// NewRegisterMemberCommandHandler creates a handler for member registration.
// Requires a MemberUoWFactory for transactional persistence.
func NewRegisterMemberCommandHandler(uowFactory MemberUoWFactory) RegisterMemberCommandHandler {
	return RegisterMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the member registration command.
// Rejects the registration with ErrMemberAlreadyExists when another member
// already holds the requested name. The duplicate check and the insert run in
// one transaction; the unique index on the name column backstops the check
// against a concurrent registration that slips between the read and the write.
func (h *RegisterMemberCommandHandler) Handle(ctx context.Context, cmd RegisterMemberCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	memberRepo := uow.MemberRepository()

	existing, err := memberRepo.GetByName(ctx, cmd.Name())
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return ErrMemberAlreadyExists
	}

	newMember, err := member.NewMember(cmd.MemberID(), cmd.Name(), cmd.Address())
	if err != nil {
		return err
	}

	if err = memberRepo.Add(ctx, newMember); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
