package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrFulfillOrderCommandIsNotConstructed = errors.New(
		"FulfillOrderCommand must be created via NewFulfillOrderCommand constructor",
	)

	// ErrInvalidOrderOrUser is the caller-contract violation for non-positive
	// ids. It is always surfaced to the caller, never absorbed.
	ErrInvalidOrderOrUser = errors.New("Invalid order_id or user_id")
)

// FulfillOrderCommand requests one status-dispatch step for a shipment order
// on behalf of the requesting user.
type FulfillOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	userID  int64

	guard guard.ConstructorGuard
}

// NewFulfillOrderCommand creates a command to progress the given order for the
// given user. Both ids must be positive; anything else is a contract violation
// reported as ErrInvalidOrderOrUser.
func NewFulfillOrderCommand(orderID, userID int64) (FulfillOrderCommand, error) {
	if orderID <= 0 || userID <= 0 {
		return FulfillOrderCommand{}, ErrInvalidOrderOrUser
	}

	return FulfillOrderCommand{
		orderID: orderID,
		userID:  userID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FulfillOrderCommand) Validate() error {
	return c.guard.Validate(ErrFulfillOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to progress.
func (c FulfillOrderCommand) OrderID() int64 {
	return c.orderID
}

// UserID returns the id of the requesting user.
func (c FulfillOrderCommand) UserID() int64 {
	return c.userID
}
