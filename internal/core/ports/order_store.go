// Package ports defines the contracts between the decision engines and their
// external collaborators. The engines depend only on these interfaces; adapters
// under internal/adapters provide the implementations.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// OrderStore defines the persistence contract for type-dispatch orders.
type OrderStore interface {
	// FindByOwner retrieves all orders belonging to the given owner, in
	// storage order. An owner without orders yields an empty slice.
	FindByOwner(ctx context.Context, ownerID int64) ([]*order.Order, error)

	// Save persists the order's current state. A returned error is a storage
	// fault; the engine absorbs it by downgrading the order to db_error.
	Save(ctx context.Context, aggregate *order.Order) error

	// OwnersWithUnprocessed lists owners that still have orders in the initial
	// status. Used by the scheduled batch job to pick its work.
	OwnersWithUnprocessed(ctx context.Context) ([]int64, error)
}
