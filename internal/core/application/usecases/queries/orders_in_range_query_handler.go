package queries

import (
	"context"
	"database/sql"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrdersInRangeQueryHandler reads the admin listing for a creation-time
// range from the database.
type OrdersInRangeQueryHandler struct {
	db *gorm.DB
}

// NewOrdersInRangeQueryHandler creates a handler for the admin range
// listing. Requires a GORM database connection for query execution.
func NewOrdersInRangeQueryHandler(db *gorm.DB) OrdersInRangeQueryHandler {
	return OrdersInRangeQueryHandler{db: db}
}

// Handle executes the query. Returns orders created in [from, to), oldest
// first.
func (h OrdersInRangeQueryHandler) Handle(
	ctx context.Context,
	query OrdersInRangeQuery,
) ([]OrdersInRangeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrdersInRangeQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_id,
			customer_id,
			courier_id,
			status,
			created_at
		FROM orders
		WHERE created_at >= ? AND created_at < ?
		ORDER BY created_at, id
	`, query.From(), query.To()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp OrdersInRangeQueryResponse
		var trackingID uuid.UUID
		var courierID sql.NullInt64
		var status int

		err = rows.Scan(
			&orderResp.ID,
			&trackingID,
			&orderResp.CustomerID,
			&courierID,
			&status,
			&orderResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		tracking, idErr := kernel.TrackingIDFromBytes(trackingID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.TrackingID = tracking
		orderResp.Status = order.Status(status).String()

		if courierID.Valid {
			id := courierID.Int64
			orderResp.CourierID = &id
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
