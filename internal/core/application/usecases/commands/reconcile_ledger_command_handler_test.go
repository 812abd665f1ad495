package commands_test

import (
	"errors"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReconcileLedgerCommandHandler_Handle_BackfillsGaps(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReconcileLedgerCommand()
	require.NoError(t, err)

	updatedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	gaps := []ports.TailGap{
		{OrderID: 41, Status: order.PickedUp, UpdatedAt: updatedAt},
		{OrderID: 42, Status: order.Delivered, UpdatedAt: updatedAt.Add(time.Minute)},
	}

	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("MissingTails", ctx).Return(gaps, nil).Once(),
		historyRepo.On("Append", ctx, mock.MatchedBy(func(e *history.Entry) bool {
			return e.OrderID() == 41 && e.Status() == order.PickedUp &&
				e.ChangedBy().IsSystem() && e.RecordedAt().Equal(updatedAt)
		})).Return(nil).Once(),
		historyRepo.On("Append", ctx, mock.MatchedBy(func(e *history.Entry) bool {
			return e.OrderID() == 42 && e.Status() == order.Delivered && e.ChangedBy().IsSystem()
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockHistoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReconcileLedgerCommandHandler(factory)
	backfilled, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 2, backfilled)
	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReconcileLedgerCommandHandler_Handle_NothingToBackfill(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReconcileLedgerCommand()
	require.NoError(t, err)

	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("MissingTails", ctx).Return([]ports.TailGap{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockHistoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReconcileLedgerCommandHandler(factory)
	backfilled, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 0, backfilled)
	historyRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestReconcileLedgerCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReconcileLedgerCommand()
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockHistoryUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("connection refused")).Once(),
	)

	h := commands.NewReconcileLedgerCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStoreUnavailable)
}

func TestReconcileLedgerCommandHandler_Handle_AppendErrorStopsSweep(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReconcileLedgerCommand()
	require.NoError(t, err)

	updatedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	gaps := []ports.TailGap{
		{OrderID: 41, Status: order.PickedUp, UpdatedAt: updatedAt},
		{OrderID: 42, Status: order.Delivered, UpdatedAt: updatedAt},
	}

	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("MissingTails", ctx).Return(gaps, nil).Once(),
		historyRepo.On("Append", ctx, mock.AnythingOfType("*history.Entry")).
			Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockHistoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReconcileLedgerCommandHandler(factory)
	backfilled, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.Equal(t, 0, backfilled)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestReconcileLedgerCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.ReconcileLedgerCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.Equal(t, commands.ErrReconcileLedgerCommandIsNotConstructed, err)
}
