package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultReconcileSchedule runs the ledger sweep once a minute. A minute of
// lag is acceptable for an audit trail; the current status is always served
// from the order store, never the ledger.
const DefaultReconcileSchedule = "0 * * * * *"

// LedgerReconciliationJob periodically backfills ledger entries for orders
// whose last recorded status trails the order store. Gaps appear only when
// a ledger append fails after a committed transition, so most sweeps find
// nothing.
type LedgerReconciliationJob struct {
	handler  commands.ReconcileLedgerCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewLedgerReconciliationJob creates the sweep job. The schedule is a cron
// expression with a seconds field; an empty schedule falls back to
// DefaultReconcileSchedule.
func NewLedgerReconciliationJob(
	handler commands.ReconcileLedgerCommandHandler,
	schedule string,
	logger *slog.Logger,
) *LedgerReconciliationJob {
	if schedule == "" {
		schedule = DefaultReconcileSchedule
	}

	return &LedgerReconciliationJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "ledger_reconciliation_job"),
	}
}

// Start begins the periodic sweep.
func (j *LedgerReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewReconcileLedgerCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Ledger reconciliation job failed", "error", cmdErr)
			return
		}

		backfilled, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Ledger reconciliation job failed", "error", handleErr)
			return
		}

		if backfilled > 0 {
			j.logger.InfoContext(ctx, "Ledger entries backfilled", "count", backfilled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Ledger reconciliation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep job.
func (j *LedgerReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Ledger reconciliation job stopped")
}
