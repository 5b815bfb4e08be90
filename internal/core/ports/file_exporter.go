package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// FileExporter writes the export artifact for type A orders.
type FileExporter interface {
	// ExportTypeA writes one delimited record set for the order's current
	// field values. A returned error is an export fault; the engine absorbs it
	// by marking the order export_failed.
	ExportTypeA(ctx context.Context, aggregate *order.Order, ownerID int64) error
}
