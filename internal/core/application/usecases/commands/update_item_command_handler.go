package commands

import (
	"context"
)

// UpdateItemCommandHandler handles catalog item updates.
// The write uses the item's optimistic version, so an update racing a
// concurrent stock mutation fails with a version conflict instead of
// silently overwriting it.
type UpdateItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewUpdateItemCommandHandler creates a handler for catalog item updates.
func NewUpdateItemCommandHandler(uowFactory ItemUoWFactory) UpdateItemCommandHandler {
	return UpdateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item update command.
// Loads the item, overwrites its name and price and persists the change.
// A missing item surfaces as the repository's not-found error.
func (h *UpdateItemCommandHandler) Handle(ctx context.Context, cmd UpdateItemCommand) error {
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

	itemRepo := uow.ItemRepository()

	aggregate, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = aggregate.Change(cmd.Name(), cmd.Price()); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
