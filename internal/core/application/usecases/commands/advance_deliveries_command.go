package commands

import (
	"errors"

	"shop/internal/pkg/guard"
)

// AdvanceDeliveriesCommand triggers delivery progression for all placed orders.
// Each handled tick moves every unfinished shipment one step along
// READY -> IN_PROGRESS -> COMPLETE.
//
// Example:
//
//	cmd := NewAdvanceDeliveriesCommand()
//	handler := NewAdvanceDeliveriesCommandHandler(uowFactory)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("delivery progression failed: %v", err)
//	}
type AdvanceDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

var ErrAdvanceDeliveriesCommandIsNotConstructed = errors.New(
	"AdvanceDeliveriesCommand must be created via NewAdvanceDeliveriesCommand constructor",
)

// NewAdvanceDeliveriesCommand creates a command to advance pending deliveries.
// This is a parameterless command that processes all placed orders.
func NewAdvanceDeliveriesCommand() AdvanceDeliveriesCommand {
	command := AdvanceDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
func (c *AdvanceDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveriesCommandIsNotConstructed)
}
