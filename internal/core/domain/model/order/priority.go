package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// amountHighPriorityThreshold is the strict cutoff above which an order is
// considered high priority. An amount equal to the threshold stays low.
const amountHighPriorityThreshold = 200

// Priority is derived deterministically from the order amount; callers cannot
// set it independently.
type Priority int

const (
	// Low is the priority for orders with amount at or below the threshold.
	Low Priority = iota

	// High is the priority for orders with amount strictly above the threshold.
	High
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		Low:  "low",
		High: "high",
	}
}

// PriorityForAmount computes the priority an order of the given amount carries.
func PriorityForAmount(amount float64) Priority {
	if amount > amountHighPriorityThreshold {
		return High
	}
	return Low
}

// Validate checks if the Priority value is one of the defined enumeration values.
func (p Priority) Validate() error {
	if _, ok := getPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the persisted name of the priority, or "invalid" for values
// outside the enumeration.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "invalid"
}
