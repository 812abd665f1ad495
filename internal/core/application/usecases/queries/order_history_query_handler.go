package queries

import (
	"context"

	"dispatch/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// OrderHistoryQueryHandler reads one order's ledger from the database.
// Entries come back in replay order: recorded-at first, insertion id
// breaking ties, so replaying the statuses in sequence reconstructs the
// order's lifecycle.
type OrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewOrderHistoryQueryHandler creates a handler for ledger reads.
// Requires a GORM database connection for query execution.
func NewOrderHistoryQueryHandler(db *gorm.DB) OrderHistoryQueryHandler {
	return OrderHistoryQueryHandler{db: db}
}

// Handle executes the query. An order with no recorded transitions yields
// an empty slice, not an error; the ledger does not record creation.
func (h OrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query OrderHistoryQuery,
) ([]OrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]OrderHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			changed_by,
			recorded_at
		FROM order_history
		WHERE order_id = ?
		ORDER BY recorded_at, id
	`, query.OrderID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry OrderHistoryQueryResponse
		var status int

		err = rows.Scan(
			&status,
			&entry.ChangedBy,
			&entry.RecordedAt,
		)
		if err != nil {
			return nil, err
		}

		entry.Status = order.Status(status).String()

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
