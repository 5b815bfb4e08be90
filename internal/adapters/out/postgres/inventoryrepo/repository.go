// Package inventoryrepo implements the InventoryChecker port on top of GORM,
// answering stock availability questions from a stocks table.
package inventoryrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// StockDTO represents the available stock of one product.
type StockDTO struct {
	ProductID int64 `gorm:"primaryKey"`
	Available int
}

// TableName specifies the database table name for stock rows.
func (StockDTO) TableName() string {
	return "stocks"
}

// GormInventoryChecker implements the InventoryChecker port using GORM.
type GormInventoryChecker struct {
	db *gorm.DB
}

// NewGormInventoryChecker creates a new GORM inventory checker.
func NewGormInventoryChecker(db *gorm.DB) *GormInventoryChecker {
	return &GormInventoryChecker{db: db}
}

// CheckStock reports whether the given quantity of the product is available.
// A product without a stock row counts as out of stock.
func (r *GormInventoryChecker) CheckStock(ctx context.Context, productID int64, quantity int) (bool, error) {
	var dto StockDTO
	if err := r.db.WithContext(ctx).First(&dto, "product_id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	return dto.Available >= quantity, nil
}
