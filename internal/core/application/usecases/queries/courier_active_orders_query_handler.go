package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourierActiveOrdersQueryHandler reads a courier's in-flight jobs from the
// database. Scoping by courier id means a courier can never see another
// courier's assignments through this projection.
type CourierActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewCourierActiveOrdersQueryHandler creates a handler for courier job
// lists. Requires a GORM database connection for query execution.
func NewCourierActiveOrdersQueryHandler(db *gorm.DB) CourierActiveOrdersQueryHandler {
	return CourierActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns the courier's claimed, undelivered
// orders sorted by delivery window start.
func (h CourierActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query CourierActiveOrdersQuery,
) ([]CourierActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]CourierActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_id,
			status,
			pickup_street,
			pickup_city,
			dropoff_street,
			dropoff_city,
			contact_name,
			contact_phone,
			pieces,
			weight_kg,
			window_from,
			window_to
		FROM orders
		WHERE courier_id = ? AND status IN (?, ?)
		ORDER BY window_from, id
	`,
		query.CourierID().Int64(),
		int(order.EnRoutePickup),
		int(order.PickedUp),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp CourierActiveOrdersQueryResponse
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
			&orderResp.ContactName,
			&orderResp.ContactPhone,
			&orderResp.Pieces,
			&orderResp.WeightKg,
			&orderResp.WindowFrom,
			&orderResp.WindowTo,
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
