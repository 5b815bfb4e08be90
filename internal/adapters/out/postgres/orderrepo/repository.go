package orderrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormOrderStore implements the OrderStore port using GORM.
type GormOrderStore struct {
	db *gorm.DB
}

// NewGormOrderStore creates a new GORM order store.
func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

// FindByOwner retrieves all orders of the given owner, sorted by id.
func (r *GormOrderStore) FindByOwner(ctx context.Context, ownerID int64) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

// Save upserts the order's current state, keyed by its id.
func (r *GormOrderStore) Save(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Save(&dto).Error
}

// OwnersWithUnprocessed lists the distinct owners that still have orders in
// the initial status, sorted by owner id.
func (r *GormOrderStore) OwnersWithUnprocessed(ctx context.Context) ([]int64, error) {
	owners := make([]int64, 0)
	if err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Distinct().
		Where("status = ?", int(order.New)).
		Order("owner_id").
		Pluck("owner_id", &owners).Error; err != nil {
		return nil, err
	}

	return owners, nil
}
