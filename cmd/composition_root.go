package cmd

import (
	"log/slog"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. Handlers are built on
// demand; each command handler gets its own unit of work per invocation
// through the factory closures below.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateReconcileLedgerCommandHandler() commands.ReconcileLedgerCommandHandler {
	var f commands.HistoryUoWFactory = FuncHistoryUoWFactory(func() commands.HistoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileLedgerCommandHandler(f)
}

func (c *CompositionRoot) CreateAvailableOrdersQueryHandler() queries.AvailableOrdersQueryHandler {
	return queries.NewAvailableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCourierActiveOrdersQueryHandler() queries.CourierActiveOrdersQueryHandler {
	return queries.NewCourierActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCustomerOrdersQueryHandler() queries.CustomerOrdersQueryHandler {
	return queries.NewCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrdersInRangeQueryHandler() queries.OrdersInRangeQueryHandler {
	return queries.NewOrdersInRangeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrderHistoryQueryHandler() queries.OrderHistoryQueryHandler {
	return queries.NewOrderHistoryQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the inbound HTTP adapter with every handler
// it serves.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateClaimOrderCommandHandler(),
		c.CreateAdvanceOrderCommandHandler(),
		c.CreateAvailableOrdersQueryHandler(),
		c.CreateCourierActiveOrdersQueryHandler(),
		c.CreateCustomerOrdersQueryHandler(),
		c.CreateOrdersInRangeQueryHandler(),
		c.CreateOrderHistoryQueryHandler(),
		c.logger,
	)
}

// CreateJobManager assembles the background job set.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateReconcileLedgerCommandHandler(),
		c.config.ReconcileSchedule,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncHistoryUoWFactory func() commands.HistoryUoW

func (f FuncHistoryUoWFactory) Create() commands.HistoryUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
