package order

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem instance was not
// created through NewOrderItem or RestoreOrderItem.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem or RestoreOrderItem")

// OrderItem is a priced, quantified line referencing one catalog item within
// one order. The unit price is snapshotted at creation time - it is the price
// the customer agreed to, and later catalog price changes do not touch it.
//
// Creating a line reserves stock: NewOrderItem decrements the referenced
// item's stock as a side effect and fails, creating nothing, when stock is
// insufficient. The reverse side effect - restoring the reserved stock - runs
// exactly once, during the owning order's cancellation cascade. Line
// cancellation is deliberately unexported so it cannot be invoked outside
// Order.Cancel.
//
// An OrderItem is exclusively owned by its Order; the referenced item is
// shared, not owned.
type OrderItem struct { //nolint:recvcheck //using for validation
	id       kernel.UUID
	item     *item.Item
	price    int
	quantity int

	guard guard.ConstructorGuard
}

// NewOrderItem creates an order line for the given item, reserving stock.
// The price is the unit price snapshot; the quantity must be positive.
// Fails with item.ErrInsufficientStock - without touching the item - when the
// item cannot cover the quantity.
func NewOrderItem(id kernel.UUID, itm *item.Item, price int, quantity int) (*OrderItem, error) {
	oi, err := buildOrderItem(id, itm, price, quantity)
	if err != nil {
		return nil, err
	}

	// Reserve the stock. This only runs once all inputs are valid, so a
	// rejected line never leaves a partial decrement behind.
	if err := itm.RemoveStock(quantity); err != nil {
		return nil, err
	}

	return oi, nil
}

// RestoreOrderItem reconstructs an order line from persistent storage.
// The stock reservation already happened when the line was first created, so
// no stock side effect runs here.
func RestoreOrderItem(id kernel.UUID, itm *item.Item, price int, quantity int) (*OrderItem, error) {
	return buildOrderItem(id, itm, price, quantity)
}

func buildOrderItem(id kernel.UUID, itm *item.Item, price int, quantity int) (*OrderItem, error) {
	oi := &OrderItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		oi.setID(id),
		oi.setItem(itm),
		oi.setPrice(price),
		oi.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return oi, nil
}

// Validate ensures the OrderItem instance was properly constructed.
func (oi *OrderItem) Validate() error {
	if oi == nil {
		return ErrOrderItemIsNotConstructed
	}
	return oi.guard.Validate(ErrOrderItemIsNotConstructed)
}

// ID returns the line's unique identifier.
func (oi *OrderItem) ID() kernel.UUID {
	return oi.id
}

// Item returns the referenced catalog item.
func (oi *OrderItem) Item() *item.Item {
	return oi.item
}

// Price returns the unit price snapshot taken at order time.
func (oi *OrderItem) Price() int {
	return oi.price
}

// Quantity returns the ordered quantity.
func (oi *OrderItem) Quantity() int {
	return oi.quantity
}

// TotalPrice returns the line total: unit price snapshot times quantity.
// Pure; no side effects.
func (oi *OrderItem) TotalPrice() int {
	return oi.price * oi.quantity
}

// cancel returns the reserved stock to the referenced item.
// Only the owning order's cancellation cascade may call this, which is what
// keeps the restoration from ever running twice for the same line.
func (oi *OrderItem) cancel() error {
	return oi.item.AddStock(oi.quantity)
}

func (oi *OrderItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	oi.id = id
	return nil
}

func (oi *OrderItem) setItem(itm *item.Item) error {
	if err := itm.Validate(); err != nil {
		return err
	}
	oi.item = itm
	return nil
}

func (oi *OrderItem) setPrice(price int) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%d is negative", price))
	}
	oi.price = price
	return nil
}

func (oi *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	oi.quantity = quantity
	return nil
}
