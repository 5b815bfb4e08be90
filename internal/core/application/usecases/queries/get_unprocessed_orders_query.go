package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetUnprocessedOrdersQueryIsNotConstructed = errors.New(
		"GetUnprocessedOrdersQuery must be created via NewGetUnprocessedOrdersQuery constructor",
	)
	ErrQueryOwnerIDIsInvalid = errors.New("owner id must be greater than 0")
)

// GetUnprocessedOrdersQuery requests the orders of one owner that are still in
// the initial status and have not been through the type-dispatch engine yet.
type GetUnprocessedOrdersQuery struct { //nolint:recvcheck //using for validation
	ownerID int64

	guard guard.ConstructorGuard
}

// NewGetUnprocessedOrdersQuery creates a query for the given owner's
// unprocessed orders. The owner id must be positive.
func NewGetUnprocessedOrdersQuery(ownerID int64) (GetUnprocessedOrdersQuery, error) {
	query := GetUnprocessedOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOwnerID(ownerID); err != nil {
		return GetUnprocessedOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnprocessedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnprocessedOrdersQueryIsNotConstructed)
}

// OwnerID returns the id of the owner whose orders are listed.
func (q GetUnprocessedOrdersQuery) OwnerID() int64 {
	return q.ownerID
}

func (q *GetUnprocessedOrdersQuery) setOwnerID(ownerID int64) error {
	if ownerID <= 0 {
		return ErrQueryOwnerIDIsInvalid
	}

	q.ownerID = ownerID
	return nil
}
