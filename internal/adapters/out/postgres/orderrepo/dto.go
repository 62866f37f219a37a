// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The order root owns its lines and delivery, so the
// repository persists and rehydrates all three together.
package orderrepo

import (
	"time"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Lines and the delivery live in their own tables keyed by the order ID and
// are saved through the association so a write on the root covers them.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	MemberID  uuid.UUID `gorm:"type:uuid;index"`
	OrderDate time.Time
	Status    int `gorm:"index"`

	Items    []OrderItemDTO `gorm:"foreignKey:OrderID"`
	Delivery DeliveryDTO    `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line: which item, at what price snapshot,
// in what quantity.
type OrderItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	ItemID   uuid.UUID `gorm:"type:uuid;index"`
	Price    int
	Quantity int
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// DeliveryDTO represents the shipment attached to an order, with the
// destination address snapshotted at placement time.
type DeliveryDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Status  int
}

// TableName specifies the database table name for deliveries.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// AddressDTO represents the embedded destination address columns within the
// deliveries table.
type AddressDTO struct {
	Street  string
	City    string
	ZipCode string
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, line := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:       line.ID().Bytes(),
			OrderID:  aggregate.ID().Bytes(),
			ItemID:   line.Item().ID().Bytes(),
			Price:    line.Price(),
			Quantity: line.Quantity(),
		})
	}

	delivery := aggregate.Delivery()

	return OrderDTO{
		ID:        aggregate.ID().Bytes(),
		MemberID:  aggregate.MemberID().Bytes(),
		OrderDate: aggregate.OrderDate(),
		Status:    int(aggregate.Status()),
		Items:     items,
		Delivery: DeliveryDTO{
			ID:      delivery.ID().Bytes(),
			OrderID: aggregate.ID().Bytes(),
			Address: AddressDTO{
				Street:  delivery.Address().Street(),
				City:    delivery.Address().City(),
				ZipCode: delivery.Address().ZipCode(),
			},
			Status: int(delivery.Status()),
		},
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// The caller supplies the catalog items the lines reference, keyed by item
// ID, so restored lines hold live item aggregates the way placed ones do.
func toDomain(dto OrderDTO, itemsByID map[uuid.UUID]*item.Item) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	memberID, err := kernel.UUIDFromBytes(dto.MemberID[:])
	if err != nil {
		return nil, err
	}

	deliveryID, err := kernel.UUIDFromBytes(dto.Delivery.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(
		dto.Delivery.Address.Street,
		dto.Delivery.Address.City,
		dto.Delivery.Address.ZipCode,
	)
	if err != nil {
		return nil, err
	}

	delivery, err := order.RestoreDelivery(deliveryID, address, order.DeliveryStatus(dto.Delivery.Status))
	if err != nil {
		return nil, err
	}

	lines := make([]*order.OrderItem, 0, len(dto.Items))
	for _, lineDTO := range dto.Items {
		lineID, lineErr := kernel.UUIDFromBytes(lineDTO.ID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.RestoreOrderItem(lineID, itemsByID[lineDTO.ItemID], lineDTO.Price, lineDTO.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, memberID, delivery, lines, dto.OrderDate, order.Status(dto.Status))
}
