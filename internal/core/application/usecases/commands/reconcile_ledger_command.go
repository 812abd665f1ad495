package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrReconcileLedgerCommandIsNotConstructed = errors.New(
		"ReconcileLedgerCommand must be created via NewReconcileLedgerCommand constructor",
	)
)

// ReconcileLedgerCommand triggers one pass of the ledger backfill sweep.
// It carries no parameters; the sweep always covers every order whose
// ledger tail disagrees with its current status.
type ReconcileLedgerCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewReconcileLedgerCommand creates a validated sweep command.
func NewReconcileLedgerCommand() (ReconcileLedgerCommand, error) {
	return ReconcileLedgerCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ReconcileLedgerCommand) Validate() error {
	return c.guard.Validate(ErrReconcileLedgerCommandIsNotConstructed)
}
