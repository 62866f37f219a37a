// Package item provides the catalog side of the domain model: sellable
// products with a unit price and a stock quantity.
//
// The package includes:
//   - Item: The catalog aggregate owning all stock mutation logic
//   - Kind: The closed Book/Album/Movie variant tag
//   - Attributes: Variant-specific descriptive fields
//
// Key business rules:
//   - Stock quantity never goes negative; a decrement that would violate this
//     is rejected with ErrInsufficientStock and leaves stock unchanged
//   - Stock increase is unconditional (replenishment and order cancellation)
//   - The variant set is closed and tag-discriminated, matching single-table
//     storage with a type discriminator column
//
// Stock logic lives on Item because Item is the sole owner of that data:
// rules that only need the item's own state must not require cross-aggregate
// coordination.
package item
