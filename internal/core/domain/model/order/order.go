package order

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderItemsAreRequired is returned when attempting to create an order
	// without a single line. An order always has at least one line.
	ErrOrderItemsAreRequired = errors.New("order must contain at least one order item")

	// ErrOrderAlreadyDelivered is returned when cancelling an order whose
	// delivery has completed. This is a terminal business rejection: the goods
	// are with the customer and there is nothing to cancel.
	ErrOrderAlreadyDelivered = errors.New("order is already delivered and cannot be cancelled")

	// ErrOrderAlreadyCancelled is returned when cancelling an order a second
	// time. Cancellation runs the stock-restoration cascade, which must happen
	// exactly once, so the repeat is rejected rather than treated as a no-op.
	ErrOrderAlreadyCancelled = errors.New("order is already cancelled")
)

// Order is the aggregate root of the purchasing model. It references the
// purchasing member, exclusively owns an ordered, non-empty list of lines and
// one delivery, and enforces every order-level invariant.
//
// Order follows these invariants:
//   - Has at least one OrderItem from the moment it is created
//   - Status only ever moves Placed -> Cancelled, never back
//   - Total price is always the sum of its line totals, recomputed on demand
//   - Lines and delivery are linked atomically inside NewOrder; callers never
//     observe a half-linked aggregate
//
// The member is referenced by identifier, not held as a live back-pointer:
// the order side is authoritative for the member/order relationship, and a
// member's order history is a derived view queried from storage.
//
// Business rules (cancellation legality, stock restoration, total
// computation) live here on the aggregate rather than in an orchestration
// layer, so calling code cannot bypass them by forgetting a step.
type Order struct {
	id        kernel.UUID
	memberID  kernel.UUID
	items     []*OrderItem
	delivery  *Delivery
	orderDate time.Time
	status    Status

	isConstructed bool
}

// NewOrder assembles a complete order aggregate from its parts: the
// purchasing member's identifier, the delivery and at least one line.
// Everything is linked in one step, the status is set to Placed and the order
// date is stamped with the current time.
//
// No stock is touched here - every line already reserved its stock when it
// was built, which is why line construction precedes order construction.
func NewOrder(id kernel.UUID, memberID kernel.UUID, delivery *Delivery, items []*OrderItem) (*Order, error) {
	o := &Order{
		status:        Placed,
		orderDate:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setMemberID(memberID),
		o.setDelivery(delivery),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistent storage,
// validating the stored status and date.
func RestoreOrder(
	id kernel.UUID,
	memberID kernel.UUID,
	delivery *Delivery,
	items []*OrderItem,
	orderDate time.Time,
	status Status,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(id, memberID, delivery, items)
	if err != nil {
		return nil, err
	}

	o.orderDate = orderDate
	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// MemberID returns the purchasing member's identifier.
func (o *Order) MemberID() kernel.UUID {
	return o.memberID
}

// Items returns the order's lines in insertion order.
func (o *Order) Items() []*OrderItem {
	return o.items
}

// Delivery returns the order's delivery.
func (o *Order) Delivery() *Delivery {
	return o.delivery
}

// OrderDate returns the time the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalPrice returns the sum of every line's total price.
// Recomputed on every call; never cached, so it always reflects the current
// lines.
func (o *Order) TotalPrice() int {
	total := 0
	for _, oi := range o.items {
		total += oi.TotalPrice()
	}
	return total
}

// Cancel cancels the order and cascades the cancellation to every line,
// returning each line's reserved stock to its item in insertion order.
//
// Fails with ErrOrderAlreadyDelivered when the delivery has completed and
// with ErrOrderAlreadyCancelled when the order was cancelled before; in both
// cases nothing changes. Both rejections are final - there is no retry that
// can make either succeed.
func (o *Order) Cancel() error {
	if o.status == Cancelled {
		return ErrOrderAlreadyCancelled
	}
	if o.delivery.IsCompleted() {
		return ErrOrderAlreadyDelivered
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	for _, oi := range o.items {
		if err := oi.cancel(); err != nil {
			return err
		}
	}

	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setMemberID(memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}
	o.memberID = memberID
	return nil
}

func (o *Order) setDelivery(delivery *Delivery) error {
	if err := delivery.Validate(); err != nil {
		return err
	}
	o.delivery = delivery
	return nil
}

func (o *Order) setItems(items []*OrderItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, oi := range items {
		if err := oi.Validate(); err != nil {
			return err
		}
	}

	o.items = items
	return nil
}
