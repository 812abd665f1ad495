package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// TailGap describes an order whose authoritative status is not mirrored by
// the newest entry of its ledger, as found by the reconciliation sweep.
type TailGap struct {
	OrderID   kernel.OrderID
	Status    order.Status
	UpdatedAt time.Time
}

// HistoryRepository defines the persistence contract for the append-only
// ledger. Appends are pure inserts; existing rows are never updated or
// deleted. Concurrent appends do not conflict since every append is an
// independent insert.
type HistoryRepository interface {
	// Append records one transition. It never mutates existing entries.
	Append(ctx context.Context, entry *history.Entry) error

	// ListForOrder returns the order's entries in recording order, so that
	// replaying them reconstructs the status sequence the order passed
	// through.
	ListForOrder(ctx context.Context, orderID kernel.OrderID) ([]*history.Entry, error)

	// MissingTails returns every non-Pending order whose ledger tail does
	// not match its current status, for the reconciliation sweep to
	// backfill.
	MissingTails(ctx context.Context) ([]TailGap, error)
}
