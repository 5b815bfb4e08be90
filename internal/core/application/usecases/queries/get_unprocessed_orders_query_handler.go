package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnprocessedOrdersQueryResponse is one unprocessed order row.
type GetUnprocessedOrdersQueryResponse struct {
	ID      uuid.UUID
	TypeTag string
	Amount  float64
	Flag    bool
}

// GetUnprocessedOrdersQueryHandler lists the orders of one owner that the
// type-dispatch engine has not touched yet. Reads straight from the database,
// bypassing the domain model, which is fine for a read-only view.
type GetUnprocessedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnprocessedOrdersQueryHandler creates a handler for unprocessed order
// queries. Requires a GORM database connection for query execution.
func NewGetUnprocessedOrdersQueryHandler(db *gorm.DB) GetUnprocessedOrdersQueryHandler {
	return GetUnprocessedOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by order ID for consistent
// output.
func (h GetUnprocessedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnprocessedOrdersQuery,
) ([]GetUnprocessedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnprocessedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			type_tag,
			amount,
			flag
		FROM orders
		WHERE owner_id = ? AND status = ?
		ORDER BY id
	`, query.OwnerID(), order.New).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUnprocessedOrdersQueryResponse
		if err := rows.Scan(&resp.ID, &resp.TypeTag, &resp.Amount, &resp.Flag); err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
