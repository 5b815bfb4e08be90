// Package orderrepo provides data transfer objects and mapping functions for
// persisting the type-dispatch order aggregate. It implements the OrderStore
// port on top of GORM, handling the conversion between domain entities and
// their database representation.
package orderrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by owner and status to support the batch lookup and the scheduled
// job's owner scan.
type OrderDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID  int64     `gorm:"index"`
	TypeTag  string    `gorm:"type:varchar(16)"`
	Amount   float64
	Flag     bool
	Status   int `gorm:"index"`
	Priority int
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:       aggregate.ID().Bytes(),
		OwnerID:  aggregate.OwnerID(),
		TypeTag:  aggregate.TypeTag().String(),
		Amount:   aggregate.Amount(),
		Flag:     aggregate.Flag(),
		Status:   int(aggregate.Status()),
		Priority: int(aggregate.Priority()),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.OwnerID,
		order.TypeTag(dto.TypeTag),
		dto.Amount,
		dto.Flag,
		order.Status(dto.Status),
		order.Priority(dto.Priority),
	)
}
