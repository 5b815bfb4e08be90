package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// SettlementOutcomeSuccess is the outcome value the settlement service returns
// for a successful check. Any other value routes the order to api_error.
const SettlementOutcomeSuccess = "success"

// SettlementResult is the settlement service's answer for one order.
type SettlementResult struct {
	// Outcome is the service-reported result, SettlementOutcomeSuccess on success.
	Outcome string

	// Score is the settlement score the engine compares against its cutoff.
	Score int
}

// SettlementClient performs the remote settlement check for type B orders.
type SettlementClient interface {
	// Call checks the settlement state of the given order. A returned error is
	// a client-side fault; the engine absorbs it by marking the order
	// api_failure.
	Call(ctx context.Context, orderID kernel.UUID) (SettlementResult, error)
}
