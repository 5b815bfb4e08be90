package shipment

// Status is the lifecycle state of a shipment order. The set is open: statuses
// arrive from the owning system as strings, and anything outside the known
// constants falls into the engine's unhandled arm instead of failing.
type Status string

const (
	// Pending orders await payment capture.
	Pending Status = "pending"

	// Processing orders await the stock availability check.
	Processing Status = "processing"

	// Paid orders have completed payment; a terminal state for the engine.
	Paid Status = "paid"

	// Canceled orders were withdrawn; a terminal state for the engine.
	Canceled Status = "canceled"
)

// IsRecognized reports whether the status is one the engine models.
func (s Status) IsRecognized() bool {
	switch s {
	case Pending, Processing, Paid, Canceled:
		return true
	default:
		return false
	}
}

// String returns the raw status value.
func (s Status) String() string {
	return string(s)
}
