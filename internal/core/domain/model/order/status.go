package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the processing state of an order. The numeric values match
// the persisted enumeration and must not be reordered.
//
// Every order starts in New. The type-dispatch engine moves it to exactly one
// terminal value per processing run; a storage fault at save time downgrades
// whatever was computed to DBError.
type Status int

const (
	// New is the initial status assigned at creation, before processing.
	New Status = iota

	// Exported means the type A export artifact was written.
	Exported

	// ExportFailed means the type A export step failed; the fault is absorbed here.
	ExportFailed

	// Processed means a type B order passed the settlement score and amount checks.
	Processed

	// Pending means a type B order was deferred by a low score or a raised flag.
	Pending

	// Error means a type B order passed settlement but failed the amount check.
	Error

	// APIError means the settlement service answered with a non-success outcome.
	APIError

	// APIFailure means the settlement call itself failed client-side.
	APIFailure

	// Completed means a flagged type C order finished.
	Completed

	// InProgress means an unflagged type C order is still underway.
	InProgress

	// UnknownType means the order carried an unrecognized type tag.
	UnknownType

	// DBError means persisting the processed order failed.
	DBError
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		New:          "new",
		Exported:     "exported",
		ExportFailed: "export_failed",
		Processed:    "processed",
		Pending:      "pending",
		Error:        "error",
		APIError:     "api_error",
		APIFailure:   "api_failure",
		Completed:    "completed",
		InProgress:   "in_progress",
		UnknownType:  "unknown_type",
		DBError:      "db_error",
	}
}

// Validate checks if the Status value is one of the defined enumeration values.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, or "invalid" for values
// outside the enumeration.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "invalid"
}
