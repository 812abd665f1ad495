// Package historyrepo provides persistence for the append-only status
// ledger. Rows are only ever inserted; the repository offers no update or
// delete path.
package historyrepo

import (
	"time"

	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// HistoryEntryDTO represents one ledger row. The autoincrement id breaks
// ties between entries recorded in the same instant, so replay order is
// total.
type HistoryEntryDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	OrderID    int64     `gorm:"not null;index"`
	ChangedBy  int64     `gorm:"not null"`
	Status     int       `gorm:"not null"`
	RecordedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for ledger entries.
func (HistoryEntryDTO) TableName() string {
	return "order_history"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry *history.Entry) HistoryEntryDTO {
	return HistoryEntryDTO{
		OrderID:    entry.OrderID().Int64(),
		ChangedBy:  entry.ChangedBy().Int64(),
		Status:     int(entry.Status()),
		RecordedAt: entry.RecordedAt(),
	}
}

// toDomain converts a database row back into a ledger entry.
func toDomain(dto HistoryEntryDTO) (*history.Entry, error) {
	return history.NewEntry(
		kernel.OrderID(dto.OrderID),
		kernel.ActorID(dto.ChangedBy),
		order.Status(dto.Status),
		dto.RecordedAt,
	)
}
