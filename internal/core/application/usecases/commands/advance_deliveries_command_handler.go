package commands

import (
	"context"
)

// AdvanceDeliveriesCommandHandler drives delivery progression for placed
// orders. Completed shipments are left alone; everything else advances one
// status step per handled command.
type AdvanceDeliveriesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceDeliveriesCommandHandler creates a handler for delivery progression.
func NewAdvanceDeliveriesCommandHandler(uowFactory OrderUoWFactory) AdvanceDeliveriesCommandHandler {
	return AdvanceDeliveriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery progression command.
// Loads every order still in placed status, advances each unfinished delivery
// one step and persists the batch in one transaction.
func (h *AdvanceDeliveriesCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveriesCommand) error {
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

	orderRepo := uow.OrderRepository()

	placedOrders, err := orderRepo.GetAllInPlacedStatus(ctx)
	if err != nil {
		return err
	}

	for _, placedOrder := range placedOrders {
		if placedOrder.Delivery().IsCompleted() {
			continue
		}

		if err = placedOrder.Delivery().Advance(); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, placedOrder); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
