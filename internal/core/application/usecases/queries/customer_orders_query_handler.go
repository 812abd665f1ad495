package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerOrdersQueryHandler reads one page of a customer's order list from
// the database, newest order first. A page past the end of the list comes
// back empty rather than failing.
type CustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewCustomerOrdersQueryHandler creates a handler for customer order pages.
// Requires a GORM database connection for query execution.
func NewCustomerOrdersQueryHandler(db *gorm.DB) CustomerOrdersQueryHandler {
	return CustomerOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the requested page.
func (h CustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query CustomerOrdersQuery,
) ([]CustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]CustomerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_id,
			status,
			pickup_street,
			pickup_city,
			dropoff_street,
			dropoff_city,
			pieces,
			weight_kg,
			window_from,
			window_to,
			created_at
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`,
		query.CustomerID().Int64(),
		DefaultPageSize,
		(query.Page()-1)*DefaultPageSize,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp CustomerOrdersQueryResponse
		var trackingID uuid.UUID
		var status int

		err = rows.Scan(
			&orderResp.ID,
			&trackingID,
			&status,
			&orderResp.PickupStreet,
			&orderResp.PickupCity,
			&orderResp.DropoffStreet,
			&orderResp.DropoffCity,
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
		orderResp.Status = order.Status(status).String()

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
