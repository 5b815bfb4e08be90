package ports

import "context"

const (
	// PaymentStatusSuccess marks a captured charge.
	PaymentStatusSuccess = "success"

	// PaymentStatusFailed marks a declined or failed charge.
	PaymentStatusFailed = "failed"
)

// PaymentResult is the payment processor's answer for one charge attempt.
// Declines and transport faults are both carried as failed results; a payment
// failure is a business rejection, not an error.
type PaymentResult struct {
	// Status is PaymentStatusSuccess or PaymentStatusFailed.
	Status string

	// Error holds the processor-supplied failure reason when Status is failed.
	Error string
}

// PaymentProcessor captures payment for shipment orders.
type PaymentProcessor interface {
	// Charge attempts to capture the given amount.
	Charge(ctx context.Context, amount float64) PaymentResult
}
