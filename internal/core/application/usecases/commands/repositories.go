// Package commands contains the business operations that mutate order
// state: creation, the claim, the post-claim lifecycle transitions, and the
// ledger reconciliation sweep. All commands follow a consistent pattern:
// constructor validation, transaction management, conditional persistence,
// and a decoupled ledger append.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across aggregate
// boundaries.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// HistoryRepoFactory provides access to the ledger repository within a
	// transaction.
	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// HistoryUoW manages transactions for ledger-only operations.
	HistoryUoW interface {
		TxManager
		HistoryRepoFactory
	}

	// HistoryUoWFactory creates new ledger unit of work instances.
	HistoryUoWFactory interface {
		Create() HistoryUoW
	}

	// UoW manages transactions spanning the order store and the ledger.
	// The ledger side is also used after commit for the decoupled append.
	UoW interface {
		TxManager
		OrderRepoFactory
		HistoryRepoFactory
	}

	// UoWFactory creates new unit of work instances for operations that
	// touch both the order store and the ledger.
	UoWFactory interface {
		Create() UoW
	}
)
