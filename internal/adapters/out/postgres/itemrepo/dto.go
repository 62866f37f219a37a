// Package itemrepo provides data transfer objects and mapping functions for
// catalog item persistence. All item variants share the items table,
// discriminated by the dtype column, and carry an optimistic version counter.
package itemrepo

import (
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the single-table database structure for all catalog item
// variants. Variant fields that do not belong to the row's dtype stay empty.
type ItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	DType         string    `gorm:"column:dtype;index"`
	Name          string
	Price         int
	StockQuantity int
	Version       int

	Author   string
	ISBN     string `gorm:"column:isbn"`
	Artist   string
	Director string
	Actor    string
}

// TableName specifies the database table name for catalog items.
func (ItemDTO) TableName() string {
	return "items"
}

// fromDomain converts an item domain aggregate to its database representation.
func fromDomain(aggregate *item.Item) ItemDTO {
	attrs := aggregate.Attributes()

	return ItemDTO{
		ID:            aggregate.ID().Bytes(),
		DType:         aggregate.Kind().String(),
		Name:          aggregate.Name(),
		Price:         aggregate.Price(),
		StockQuantity: aggregate.StockQuantity(),
		Version:       aggregate.Version(),
		Author:        attrs.Author,
		ISBN:          attrs.ISBN,
		Artist:        attrs.Artist,
		Director:      attrs.Director,
		Actor:         attrs.Actor,
	}
}

// toDomain converts a database DTO to an item domain aggregate.
// The stored dtype converts back to the closed Kind set; an unrecognized
// discriminator surfaces as an error rather than an invalid aggregate.
func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	kind, err := item.KindFromString(dto.DType)
	if err != nil {
		return nil, err
	}

	return item.RestoreItem(id, kind, dto.Name, dto.Price, dto.StockQuantity, dto.Version, item.Attributes{
		Author:   dto.Author,
		ISBN:     dto.ISBN,
		Artist:   dto.Artist,
		Director: dto.Director,
		Actor:    dto.Actor,
	})
}
