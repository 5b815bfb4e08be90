package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/shipment"
)

// ShipmentRepository is the abstraction over the externally owned shipment
// order store.
type ShipmentRepository interface {
	// GetByID retrieves a shipment order by its numeric id. A missing order is
	// not an error: the repository returns (nil, nil) and the engine reports
	// it as a normal negative outcome.
	GetByID(ctx context.Context, id int64) (*shipment.Order, error)

	// UpdateStatus sets the order's status. The engine calls this only after a
	// successful lookup.
	UpdateStatus(ctx context.Context, id int64, status shipment.Status) error
}
