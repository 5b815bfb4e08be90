// Package shipmentrepo implements the ShipmentRepository port on top of GORM.
// Shipment orders are owned by an external system; this adapter only reads
// them and advances their status.
package shipmentrepo

import (
	"fulfillment/internal/core/domain/model/shipment"
)

// ShipmentOrderDTO represents the database structure of a shipment order.
type ShipmentOrderDTO struct {
	ID        int64  `gorm:"primaryKey"`
	UserID    int64  `gorm:"index"`
	Status    string `gorm:"type:varchar(32)"`
	ProductID int64
	Quantity  int
	Total     float64
}

// TableName specifies the database table name for shipment orders.
func (ShipmentOrderDTO) TableName() string {
	return "shipment_orders"
}

// toDomain converts a database DTO to a shipment order. The status string is
// carried as-is, including values the engine does not model.
func toDomain(dto ShipmentOrderDTO) (*shipment.Order, error) {
	return shipment.RestoreOrder(
		dto.ID,
		dto.UserID,
		shipment.Status(dto.Status),
		dto.ProductID,
		dto.Quantity,
		dto.Total,
	)
}
