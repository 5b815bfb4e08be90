package shipment

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the RestoreOrder constructor.
	ErrOrderIsNotConstructed = errors.New("shipment Order must be created via RestoreOrder")
)

// Order is a read model of an externally owned shipment order.
//
// Invariants:
//   - id and userID are positive
//   - quantity is positive, total is non-negative
//   - only the owning user may progress the order
type Order struct {
	// id is the external numeric identifier of the order
	id int64

	// userID identifies the owning user
	userID int64

	// status is the current lifecycle state (open set)
	status Status

	// productID identifies the ordered product
	productID int64

	// quantity is the ordered amount of the product
	quantity int

	// total is the amount to charge for the order
	total float64

	// isConstructed ensures the order was created via RestoreOrder
	isConstructed bool
}

// RestoreOrder reconstructs a shipment order from its external representation.
// The status is carried as-is, including values the engine does not model.
func RestoreOrder(id, userID int64, status Status, productID int64, quantity int, total float64) (*Order, error) {
	order := &Order{
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setUserID(userID),
		order.setProductID(productID),
		order.setQuantity(quantity),
		order.setTotal(total),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the external numeric identifier of the order.
func (o *Order) ID() int64 {
	return o.id
}

// UserID returns the id of the owning user.
func (o *Order) UserID() int64 {
	return o.userID
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// ProductID returns the ordered product's identifier.
func (o *Order) ProductID() int64 {
	return o.productID
}

// Quantity returns the ordered amount of the product.
func (o *Order) Quantity() int {
	return o.quantity
}

// Total returns the amount to charge for the order.
func (o *Order) Total() float64 {
	return o.total
}

// IsOwnedBy reports whether the given user owns the order.
func (o *Order) IsOwnedBy(userID int64) bool {
	return o.userID == userID
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("userID is invalid", fmt.Errorf("%d is not greater than 0", userID))
	}
	o.userID = userID
	return nil
}

func (o *Order) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productID is invalid", fmt.Errorf("%d is not greater than 0", productID))
	}
	o.productID = productID
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setTotal(total float64) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total is invalid", fmt.Errorf("%g is negative", total))
	}
	o.total = total
	return nil
}
