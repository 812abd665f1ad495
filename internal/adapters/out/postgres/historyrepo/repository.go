package historyrepo

import (
	"context"

	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"

	"gorm.io/gorm"
)

// GormHistoryRepository implements HistoryRepository using GORM.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Append inserts one ledger entry. It is a pure insert: concurrent appends
// never conflict with each other or with order-row writes.
func (r *GormHistoryRepository) Append(ctx context.Context, entry *history.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListForOrder returns the order's ledger entries in replay order:
// recording time first, insertion id as tiebreaker.
func (r *GormHistoryRepository) ListForOrder(
	ctx context.Context,
	orderID kernel.OrderID,
) ([]*history.Entry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []HistoryEntryDTO
	err := r.db.WithContext(ctx).
		Order("recorded_at, id").
		Find(&dtos, "order_id = ?", orderID.Int64()).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*history.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, entryErr := toDomain(dto)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// MissingTails finds every non-Pending order whose newest ledger entry does
// not match its authoritative status, including orders with no entries at
// all. The reconciliation sweep backfills these.
func (r *GormHistoryRepository) MissingTails(ctx context.Context) ([]ports.TailGap, error) {
	gaps := make([]ports.TailGap, 0)

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.updated_at
		FROM orders o
		LEFT JOIN (
			SELECT DISTINCT ON (order_id) order_id, status
			FROM order_history
			ORDER BY order_id, recorded_at DESC, id DESC
		) h ON h.order_id = o.id
		WHERE o.status <> ?
		  AND (h.status IS NULL OR h.status <> o.status)
		ORDER BY o.id
	`, int(order.Pending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var gap ports.TailGap
		var id int64
		var status int

		if err = rows.Scan(&id, &status, &gap.UpdatedAt); err != nil {
			return nil, err
		}

		gap.OrderID = kernel.OrderID(id)
		gap.Status = order.Status(status)
		gaps = append(gaps, gap)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return gaps, nil
}
