package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrUpdateItemCommandIsNotConstructed = errors.New(
	"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
)

// UpdateItemCommand represents a request to overwrite a catalog item's name
// and price. Stock is not touched here; it only moves through order placement
// and cancellation.
type UpdateItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	name   string
	price  int

	guard guard.ConstructorGuard
}

// NewUpdateItemCommand creates a command to update a catalog item.
// Validates the item ID, that the name is not empty and the price is not
// negative.
func NewUpdateItemCommand(itemID kernel.UUID, name string, price int) (UpdateItemCommand, error) {
	command := UpdateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setItemID(itemID),
		command.setName(name),
		command.setPrice(price),
	); err != nil {
		return UpdateItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to update.
func (c UpdateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the item's new display name.
func (c UpdateItemCommand) Name() string {
	return c.name
}

// Price returns the item's new unit price.
func (c UpdateItemCommand) Price() int {
	return c.price
}

func (c *UpdateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *UpdateItemCommand) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}
	c.name = name
	return nil
}

func (c *UpdateItemCommand) setPrice(price int) error {
	if price < 0 {
		return ErrPriceIsInvalid
	}
	c.price = price
	return nil
}
