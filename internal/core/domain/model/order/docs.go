// Package order provides the order aggregate of the shop's domain model: the
// Order root, its OrderItem lines and its Delivery, together with the two
// state machines governing order and shipment lifecycles.
//
// The package includes:
//   - Order: The aggregate root owning lines and delivery, referencing a member
//   - OrderItem: A priced, quantified line referencing one catalog item
//   - Delivery: The shipment record with an address snapshot
//   - Status / DeliveryStatus: Forward-only state machines
//
// Key business rules:
//   - Building a line reserves stock on its item; insufficient stock aborts
//     line creation with no partial effect
//   - An order always has at least one line and moves only Placed -> Cancelled
//   - Cancelling cascades to every line, restoring reserved stock exactly once;
//     orders with a completed delivery, or already cancelled, reject cancellation
//   - Total price is derived from the lines, never stored
//
// The package follows the domain-model pattern: the rules live on the
// entities themselves, and the orchestration layer merely resolves
// identifiers and delegates.
package order
