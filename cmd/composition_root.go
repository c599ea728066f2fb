package cmd

import (
	"context"
	"log/slog"

	httpin "pedidofacil/internal/adapters/in/http"
	"pedidofacil/internal/adapters/out/postgres"
	"pedidofacil/internal/core/application/usecases/commands"
	"pedidofacil/internal/core/application/usecases/queries"
	"pedidofacil/internal/jobs"
	"pedidofacil/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.OrderMetrics
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		metrics:    metrics.NewOrderMetrics(),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() *commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() *commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateSeedOrdersCommandHandler() *commands.SeedOrdersCommandHandler {
	return commands.NewSeedOrdersCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() *queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() *queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetOrdersSummaryQueryHandler() *queries.GetOrdersSummaryQueryHandler {
	return queries.NewGetOrdersSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetOrdersSummaryQueryHandler(),
		c.metrics,
	)
}

func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	return httpin.NewRouter(ctx, httpin.RouterConfig{
		Server:   c.CreateServer(),
		Observer: c.metrics,
		Gatherer: prometheus.DefaultGatherer,
		Health: func(ctx context.Context) error {
			return postgres.Ping(ctx, c.gormDB)
		},
		Logger:   c.logger,
		LogLevel: c.config.EchoLogLevel(),
	})
}

// CreateJobManager returns a manager with no jobs when the summary schedule is empty.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	if c.config.SummaryJobSchedule == "" {
		return jobs.NewJobManager(nil)
	}

	summaryJob := jobs.NewOrdersSummaryJob(
		c.CreateGetOrdersSummaryQueryHandler(),
		c.metrics,
		c.config.SummaryJobSchedule,
		c.logger,
	)
	return jobs.NewJobManager(summaryJob)
}

// SeedSampleOrders inserts the sample orders when seeding is enabled and the store is empty.
func (c *CompositionRoot) SeedSampleOrders(ctx context.Context) error {
	if !c.config.SeedOnStartup {
		return nil
	}

	_, err := c.CreateSeedOrdersCommandHandler().Handle(ctx, commands.NewSampleOrdersCommand())
	return err
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
