package commands

// Outcome is the structured result of one status-dispatch step. Negative
// business results (declined payments, missing orders) are Outcome values, not
// errors; only contract violations and authorization failures cross the engine
// boundary as errors.
type Outcome struct {
	// Message is the human-readable result, always set.
	Message string `json:"message"`

	// OrderID is set when the step mutated the order it names.
	OrderID int64 `json:"order_id,omitempty"`

	// Err carries the processor-supplied reason for a failed charge.
	Err string `json:"error,omitempty"`
}
