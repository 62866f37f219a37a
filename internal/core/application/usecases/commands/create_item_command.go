package commands

import (
	"errors"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	ErrCreateItemCommandIsNotConstructed = errors.New(
		"CreateItemCommand must be created via NewCreateItemCommand constructor",
	)
	ErrItemNameIsRequired = errors.New("item name is required")
	ErrPriceIsInvalid     = errors.New("price must not be negative")
	ErrStockIsInvalid     = errors.New("stock quantity must not be negative")
)

// CreateItemCommand represents a request to add a new item to the catalog.
// Carries the item's kind along with the attributes that kind uses: a book's
// author and ISBN, an album's artist, a movie's director and actor. Attribute
// fields that do not belong to the kind are ignored.
//
// Example:
//
//	cmd, err := NewCreateItemCommand(
//	    kernel.NewUUID(), item.Book, "DDD", 45, 10,
//	    item.Attributes{Author: "Eric Evans", ISBN: "978-0321125217"},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid item data: %w", err)
//	}
type CreateItemCommand struct { //nolint:recvcheck //using for validation
	itemID        kernel.UUID
	kind          item.Kind
	name          string
	price         int
	stockQuantity int
	attributes    item.Attributes

	guard guard.ConstructorGuard
}

// NewCreateItemCommand creates a command to add an item to the catalog.
// Validates the item ID, kind, name, and that price and stock are not negative.
func NewCreateItemCommand(
	itemID kernel.UUID,
	kind item.Kind,
	name string,
	price int,
	stockQuantity int,
	attributes item.Attributes,
) (CreateItemCommand, error) {
	command := CreateItemCommand{
		attributes: attributes,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setItemID(itemID),
		command.setKind(kind),
		command.setName(name),
		command.setPrice(price),
		command.setStockQuantity(stockQuantity),
	); err != nil {
		return CreateItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

// ItemID returns the identity for the new item.
func (c CreateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Kind returns the catalog variant of the new item.
func (c CreateItemCommand) Kind() item.Kind {
	return c.kind
}

// Name returns the new item's display name.
func (c CreateItemCommand) Name() string {
	return c.name
}

// Price returns the new item's unit price.
func (c CreateItemCommand) Price() int {
	return c.price
}

// StockQuantity returns the initial stock level.
func (c CreateItemCommand) StockQuantity() int {
	return c.stockQuantity
}

// Attributes returns the kind-specific attributes.
func (c CreateItemCommand) Attributes() item.Attributes {
	return c.attributes
}

func (c *CreateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *CreateItemCommand) setKind(kind item.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *CreateItemCommand) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateItemCommand) setPrice(price int) error {
	if price < 0 {
		return ErrPriceIsInvalid
	}
	c.price = price
	return nil
}

func (c *CreateItemCommand) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return ErrStockIsInvalid
	}
	c.stockQuantity = stockQuantity
	return nil
}
