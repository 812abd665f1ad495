package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repository access. Client code must
// explicitly manage the transaction lifecycle.
//
// Repositories obtained while a transaction is active run inside it;
// obtained afterwards they run against the base connection. Command
// handlers rely on the latter for the deliberately decoupled ledger append
// that follows a committed transition.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction if one is active.
	OrderRepository() OrderRepository

	// HistoryRepository returns a HistoryRepository bound to the current
	// transaction if one is active.
	HistoryRepository() HistoryRepository
}
