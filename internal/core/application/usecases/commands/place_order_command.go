package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// PlaceOrderCommand represents a request to place an order: one member buying
// a quantity of one catalog item. The command generates the identity of the
// order it will create, so the caller knows the order ID before handling.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(memberID, itemID, 3)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("order %s placed", cmd.OrderID())
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	memberID kernel.UUID
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order and assigns it a
// fresh order identity. Validates that both referenced IDs are valid and the
// quantity is positive.
func NewPlaceOrderCommand(memberID kernel.UUID, itemID kernel.UUID, quantity int) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		orderID: kernel.NewUUID(),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMemberID(memberID),
		command.setItemID(itemID),
		command.setQuantity(quantity),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identity assigned to the order being placed.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MemberID returns the identifier of the ordering member.
func (c PlaceOrderCommand) MemberID() kernel.UUID {
	return c.memberID
}

// ItemID returns the identifier of the ordered catalog item.
func (c PlaceOrderCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Quantity returns how many units of the item are ordered.
func (c PlaceOrderCommand) Quantity() int {
	return c.quantity
}

func (c *PlaceOrderCommand) setMemberID(memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}
	c.memberID = memberID
	return nil
}

func (c *PlaceOrderCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *PlaceOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}
