package commands

import (
	"context"

	"shop/internal/core/domain/model/item"
)

// CreateItemCommandHandler handles catalog item creation.
// Dispatches on the command's kind to the matching item constructor.
type CreateItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewCreateItemCommandHandler creates a handler for catalog item creation.
func NewCreateItemCommandHandler(uowFactory ItemUoWFactory) CreateItemCommandHandler {
	return CreateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item creation command.
// Builds the kind-specific item and persists it in one transaction.
func (h *CreateItemCommandHandler) Handle(ctx context.Context, cmd CreateItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newItem, err := buildItem(cmd)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ItemRepository().Add(ctx, newItem); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func buildItem(cmd CreateItemCommand) (*item.Item, error) {
	attrs := cmd.Attributes()

	switch cmd.Kind() {
	case item.Album:
		return item.NewAlbum(cmd.ItemID(), cmd.Name(), cmd.Price(), cmd.StockQuantity(), attrs.Artist)
	case item.Movie:
		return item.NewMovie(cmd.ItemID(), cmd.Name(), cmd.Price(), cmd.StockQuantity(), attrs.Director, attrs.Actor)
	default:
		return item.NewBook(cmd.ItemID(), cmd.Name(), cmd.Price(), cmd.StockQuantity(), attrs.Author, attrs.ISBN)
	}
}
