package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailableOrdersQueryHandler reads the claimable pool from the database.
//
// The projection is advisory: an order listed here can be claimed by
// someone else before the reader acts, and the claim's conditional write is
// what settles the race. The handler therefore runs outside any
// transaction.
type AvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewAvailableOrdersQueryHandler creates a handler for the claimable pool.
// Requires a GORM database connection for query execution.
func NewAvailableOrdersQueryHandler(db *gorm.DB) AvailableOrdersQueryHandler {
	return AvailableOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns pending orders with no courier,
// oldest first.
func (h AvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query AvailableOrdersQuery,
) ([]AvailableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]AvailableOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_id,
			pickup_street,
			pickup_city,
			pieces,
			weight_kg,
			window_from,
			window_to,
			created_at
		FROM orders
		WHERE status = ? AND courier_id IS NULL
		ORDER BY created_at, id
	`, int(order.Pending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp AvailableOrdersQueryResponse
		var trackingID uuid.UUID

		err = rows.Scan(
			&orderResp.ID,
			&trackingID,
			&orderResp.PickupStreet,
			&orderResp.PickupCity,
			&orderResp.Pieces,
			&orderResp.WeightKg,
			&orderResp.WindowFrom,
			&orderResp.WindowTo,
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

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
