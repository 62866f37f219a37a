package commands

import (
	"context"
)

// UpdateMemberCommandHandler handles member rename requests.
// Renaming does not touch placed orders: their delivery addresses were
// snapshotted at placement time.
type UpdateMemberCommandHandler struct {
	uowFactory MemberUoWFactory
}

// NewUpdateMemberCommandHandler creates a handler for member renames.
func NewUpdateMemberCommandHandler(uowFactory MemberUoWFactory) UpdateMemberCommandHandler {
	return UpdateMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the member rename command.
// Loads the member, applies the new name and persists the change in one
// transaction. A missing member surfaces as the repository's not-found error.
func (h *UpdateMemberCommandHandler) Handle(ctx context.Context, cmd UpdateMemberCommand) error {
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

	aggregate, err := memberRepo.Get(ctx, cmd.MemberID())
	if err != nil {
		return err
	}

	if err = aggregate.Rename(cmd.Name()); err != nil {
		return err
	}

	if err = memberRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
