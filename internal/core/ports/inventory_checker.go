package ports

import "context"

// InventoryChecker answers stock availability questions for shipment orders.
type InventoryChecker interface {
	// CheckStock reports whether the given quantity of the product is
	// available. A returned error is an unrecovered failure and aborts the
	// engine call.
	CheckStock(ctx context.Context, productID int64, quantity int) (bool, error)
}
