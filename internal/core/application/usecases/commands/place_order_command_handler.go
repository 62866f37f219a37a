package commands

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Resolves the member and the item, reserves stock through the order line,
// snapshots the member's address into the delivery and persists everything in
// one transaction.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	cmd, _ := NewPlaceOrderCommand(memberID, itemID, 3)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory because placement spans the member, item and order
// aggregates.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// The order line's creation is what decrements the item's stock, so an
// insufficient-stock rejection happens before anything is written. The stock
// decrement is persisted with the item's optimistic version: two placements
// racing over the same item cannot both commit against the same stock level.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	buyer, err := uow.MemberRepository().Get(ctx, cmd.MemberID())
	if err != nil {
		return err
	}

	itemRepo := uow.ItemRepository()
	orderedItem, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	delivery, err := order.NewDelivery(kernel.NewUUID(), buyer.Address())
	if err != nil {
		return err
	}

	line, err := order.NewOrderItem(kernel.NewUUID(), orderedItem, orderedItem.Price(), cmd.Quantity())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), buyer.ID(), delivery, []*order.OrderItem{line})
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, orderedItem); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
