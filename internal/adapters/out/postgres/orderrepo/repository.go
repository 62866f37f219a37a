package orderrepo

import (
	"context"
	"errors"

	"shop/internal/adapters/out/postgres/itemrepo"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	items   *itemrepo.GormItemRepository
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		items:   itemrepo.NewGormItemRepository(db, tracker),
		tracker: tracker,
	}
}

// Add saves a new order aggregate with its lines and delivery.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order aggregate to the database.
// Saves through the association so the delivery row follows the order row;
// lines are immutable after placement and upsert to their existing state.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order aggregate by ID, fully rehydrated: lines with their
// referenced catalog items, and the delivery.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Delivery").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	itemsByID, err := r.loadLineItems(ctx, dto)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, itemsByID)
}

// GetAllInPlacedStatus retrieves all orders with Placed status, fully
// rehydrated.
func (r *GormOrderRepository) GetAllInPlacedStatus(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Delivery").
		Find(&dtos, "status = ?", int(order.Placed)).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		itemsByID, itemsErr := r.loadLineItems(ctx, dto)
		if itemsErr != nil {
			return nil, itemsErr
		}

		o, restoreErr := toDomain(dto, itemsByID)
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// loadLineItems loads the catalog items an order's lines reference.
func (r *GormOrderRepository) loadLineItems(ctx context.Context, dto OrderDTO) (map[uuid.UUID]*item.Item, error) {
	itemsByID := make(map[uuid.UUID]*item.Item, len(dto.Items))
	for _, lineDTO := range dto.Items {
		if _, ok := itemsByID[lineDTO.ItemID]; ok {
			continue
		}

		itemID, err := kernel.UUIDFromBytes(lineDTO.ItemID[:])
		if err != nil {
			return nil, err
		}

		lineItem, err := r.items.Get(ctx, itemID)
		if err != nil {
			return nil, err
		}
		itemsByID[lineDTO.ItemID] = lineItem
	}

	return itemsByID, nil
}
