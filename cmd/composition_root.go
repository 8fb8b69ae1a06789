package cmd

import (
	"log/slog"

	httpadapter "tracking/internal/adapters/in/http"
	"tracking/internal/adapters/out/clock"
	"tracking/internal/adapters/out/postgres"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/services"
	"tracking/internal/core/ports"
	"tracking/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      ports.Clock
	tracker    services.OrderTracker
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock.NewSystemClock(),
		tracker:    services.NewOrderTracker(),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() *commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewPlaceOrderCommandHandler(f, c.clock)
	return &handler
}

func (c *CompositionRoot) CreateGetOrderWithStatusQueryHandler() queries.GetOrderWithStatusQueryHandler {
	return queries.NewGetOrderWithStatusQueryHandler(c.gormDB, c.tracker, c.clock)
}

func (c *CompositionRoot) CreateGetOrdersWithStatusQueryHandler() queries.GetOrdersWithStatusQueryHandler {
	return queries.NewGetOrdersWithStatusQueryHandler(c.gormDB, c.tracker, c.clock)
}

func (c *CompositionRoot) CreateGetRecentOrdersWithStatusQueryHandler() queries.GetRecentOrdersWithStatusQueryHandler {
	return queries.NewGetRecentOrdersWithStatusQueryHandler(c.gormDB, c.tracker, c.clock)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateGetOrderWithStatusQueryHandler(),
		c.CreateGetOrdersWithStatusQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(c.CreateGetRecentOrdersWithStatusQueryHandler(), c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
