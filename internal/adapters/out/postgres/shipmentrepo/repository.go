package shipmentrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements the ShipmentRepository port using GORM.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// GetByID retrieves a shipment order by its id. A missing order returns
// (nil, nil): the engine reports it as a normal negative outcome.
func (r *GormShipmentRepository) GetByID(ctx context.Context, id int64) (*shipment.Order, error) {
	var dto ShipmentOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus sets the status of the given order.
func (r *GormShipmentRepository) UpdateStatus(ctx context.Context, id int64, status shipment.Status) error {
	result := r.db.WithContext(ctx).
		Model(&ShipmentOrderDTO{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment order", id)
	}

	return nil
}
