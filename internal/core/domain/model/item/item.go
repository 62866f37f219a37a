package item

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through one of the variant constructors or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewBook, NewAlbum, NewMovie or RestoreItem")

	// ErrInsufficientStock is returned when a stock decrement would drive the
	// stock quantity below zero. The decrement is not applied at all in that case.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrNameIsRequired is returned when attempting to create or rename an item
	// with an empty name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Attributes carries the variant-specific descriptive fields of a catalog item.
// Only the fields matching the item's Kind are meaningful; the rest stay empty.
type Attributes struct {
	// Author and ISBN describe a Book.
	Author string
	ISBN   string

	// Artist describes an Album.
	Artist string

	// Director and Actor describe a Movie.
	Director string
	Actor    string
}

// Item is the catalog aggregate: a sellable product with a unit price and a
// stock quantity. It is the sole owner of its stock, so every stock mutation
// goes through AddStock and RemoveStock - business rules that only need the
// item's own state never require cross-aggregate coordination.
//
// Item follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Unit price is never negative
//   - Stock quantity is never negative; a decrement that would violate this
//     fails with ErrInsufficientStock and leaves stock unchanged
//   - Kind is one of the closed Book/Album/Movie set
//
// The version counter supports optimistic concurrency control at the
// persistence boundary: two transactions racing to decrement the same item's
// stock cannot both commit against the same version, so stock can never be
// driven negative by concurrent order placement.
type Item struct { //nolint:recvcheck //using for validation
	id            kernel.UUID
	kind          Kind
	name          string
	price         int
	stockQuantity int
	attributes    Attributes

	// version is the optimistic-concurrency counter, bumped by the
	// persistence layer on every successful update.
	version int

	guard guard.ConstructorGuard
}

// NewBook creates a Book catalog item with the given author and ISBN.
func NewBook(id kernel.UUID, name string, price int, stockQuantity int, author string, isbn string) (*Item, error) {
	return newItem(id, Book, name, price, stockQuantity, Attributes{Author: author, ISBN: isbn})
}

// NewAlbum creates an Album catalog item with the given artist.
func NewAlbum(id kernel.UUID, name string, price int, stockQuantity int, artist string) (*Item, error) {
	return newItem(id, Album, name, price, stockQuantity, Attributes{Artist: artist})
}

// NewMovie creates a Movie catalog item with the given director and actor.
func NewMovie(id kernel.UUID, name string, price int, stockQuantity int, director string, actor string) (*Item, error) {
	return newItem(id, Movie, name, price, stockQuantity, Attributes{Director: director, Actor: actor})
}

func newItem(id kernel.UUID, kind Kind, name string, price int, stockQuantity int, attributes Attributes) (*Item, error) {
	itm := &Item{
		kind:       kind,
		attributes: attributes,
		version:    1,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itm.setID(id),
		itm.setName(name),
		itm.setPrice(price),
		itm.setStockQuantity(stockQuantity),
	); err != nil {
		return nil, err
	}

	return itm, nil
}

// RestoreItem reconstructs an Item aggregate from persistent storage.
// Unlike the variant constructors it accepts the stored version counter and
// validates the stored kind, so corrupted rows surface as errors instead of
// invalid aggregates.
func RestoreItem(
	id kernel.UUID,
	kind Kind,
	name string,
	price int,
	stockQuantity int,
	version int,
	attributes Attributes,
) (*Item, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if version <= 0 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("item version",
			fmt.Errorf("%d is not greater than 0", version))
	}

	itm, err := newItem(id, kind, name, price, stockQuantity, attributes)
	if err != nil {
		return nil, err
	}

	itm.version = version
	return itm, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Kind returns the item's variant tag.
func (i *Item) Kind() Kind {
	return i.kind
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// Price returns the item's current unit price.
func (i *Item) Price() int {
	return i.price
}

// StockQuantity returns the quantity currently in stock.
func (i *Item) StockQuantity() int {
	return i.stockQuantity
}

// Attributes returns the variant-specific descriptive fields.
func (i *Item) Attributes() Attributes {
	return i.attributes
}

// Version returns the optimistic-concurrency counter loaded from storage.
func (i *Item) Version() int {
	return i.version
}

// AddStock increases the stock quantity by the given amount.
// The quantity must be positive; there is no upper bound. Used when stock is
// replenished and when a cancelled order line returns its reserved stock.
func (i *Item) AddStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	i.stockQuantity += quantity
	return nil
}

// RemoveStock decreases the stock quantity by the given amount.
// Fails with ErrInsufficientStock when the decrement would leave a negative
// stock quantity; in that case stock is left exactly as it was. There is no
// partial application.
func (i *Item) RemoveStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	rest := i.stockQuantity - quantity
	if rest < 0 {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientStock, i.stockQuantity, quantity)
	}

	i.stockQuantity = rest
	return nil
}

// Change overwrites the item's name and unit price.
// This is catalog maintenance, not a business operation: beyond the base
// invariants (non-empty name, non-negative price) no rules apply.
func (i *Item) Change(name string, price int) error {
	if err := errors.Join(
		i.setName(name),
		i.setPrice(price),
	); err != nil {
		return err
	}
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price int) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%d is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stockQuantity is invalid",
			fmt.Errorf("%d is negative", stockQuantity))
	}
	i.stockQuantity = stockQuantity
	return nil
}
