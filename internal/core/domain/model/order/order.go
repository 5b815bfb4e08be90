package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the subject of the type-dispatch engine.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a positive owner id
//   - Amount must be non-negative
//   - Status and priority change only through the processing use case
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// ownerID identifies the user the order belongs to
	ownerID int64

	// typeTag classifies the order for dispatch; the set is open
	typeTag TypeTag

	// amount is the non-negative order value
	amount float64

	// flag is caller-supplied; its meaning depends on the type tag
	flag bool

	// status is the current processing state
	status Status

	// priority is derived from amount during processing
	priority Priority

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an Order in status New with low priority. This is the only
// way to create a fresh order, ensuring all invariants hold from the start.
//
// Parameters:
//   - id: unique identifier (must be a constructed UUID)
//   - ownerID: owning user id (must be positive)
//   - typeTag: dispatch tag (open set, unrecognized values are kept)
//   - amount: order value (must be non-negative)
//   - flag: caller-supplied flag
func NewOrder(id kernel.UUID, ownerID int64, typeTag TypeTag, amount float64, flag bool) (*Order, error) {
	order := &Order{
		typeTag:       typeTag,
		flag:          flag,
		status:        New,
		priority:      Low,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOwnerID(ownerID),
		order.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including its stored
// status and priority. Used by storage adapters only.
func RestoreOrder(
	id kernel.UUID,
	ownerID int64,
	typeTag TypeTag,
	amount float64,
	flag bool,
	status Status,
	priority Priority,
) (*Order, error) {
	order, err := NewOrder(id, ownerID, typeTag, amount, flag)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(status.Validate(), priority.Validate()); err != nil {
		return nil, err
	}

	order.status = status
	order.priority = priority
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the id of the user the order belongs to.
func (o *Order) OwnerID() int64 {
	return o.ownerID
}

// TypeTag returns the dispatch tag of the order.
func (o *Order) TypeTag() TypeTag {
	return o.typeTag
}

// Amount returns the order value.
func (o *Order) Amount() float64 {
	return o.amount
}

// Flag returns the caller-supplied flag.
func (o *Order) Flag() bool {
	return o.flag
}

// Status returns the current processing state of the order.
func (o *Order) Status() Status {
	return o.status
}

// Priority returns the derived priority of the order.
func (o *Order) Priority() Priority {
	return o.priority
}

// ChangeStatus records the outcome of a dispatch step. Only the processing use
// case calls this; the status passed must be one of the defined enumeration
// values.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

// RecalculatePriority rederives the priority from the current amount. Runs
// after every dispatch step regardless of the branch taken.
func (o *Order) RecalculatePriority() {
	o.priority = PriorityForAmount(o.amount)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID int64) error {
	if ownerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("ownerID is invalid", fmt.Errorf("%d is not greater than 0", ownerID))
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setAmount(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid", fmt.Errorf("%g is negative", amount))
	}
	o.amount = amount
	return nil
}
