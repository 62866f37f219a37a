package order

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Delivery is the shipment record of exactly one order. The destination
// address is copied from the ordering member at creation time, so it is a
// snapshot: later address changes on the member do not move a placed order's
// shipment.
//
// A Delivery is exclusively owned by its Order: its lifetime is the order's
// lifetime and it is persisted and deleted with the order. The link is
// established once, inside NewOrder, never half-set.
type Delivery struct { //nolint:recvcheck //using for validation
	id      kernel.UUID
	address kernel.Address
	status  DeliveryStatus

	guard guard.ConstructorGuard
}

// NewDelivery creates a delivery for the given destination address in the
// Ready status.
func NewDelivery(id kernel.UUID, address kernel.Address) (*Delivery, error) {
	d := &Delivery{
		status: DeliveryReady,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setAddress(address),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistent storage, validating
// the stored status.
func RestoreDelivery(id kernel.UUID, address kernel.Address, status DeliveryStatus) (*Delivery, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	d, err := NewDelivery(id, address)
	if err != nil {
		return nil, err
	}

	d.status = status
	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// Address returns the destination address snapshot.
func (d *Delivery) Address() kernel.Address {
	return d.address
}

// Status returns the current shipment status.
func (d *Delivery) Status() DeliveryStatus {
	return d.status
}

// IsCompleted reports whether the shipment has been delivered.
func (d *Delivery) IsCompleted() bool {
	return d.status == DeliveryCompleted
}

// Advance moves the shipment one step forward (Ready -> InProgress -> Completed).
// Returns an error when the delivery is already completed.
func (d *Delivery) Advance() error {
	newStatus, err := d.status.Advance()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	d.address = address
	return nil
}
