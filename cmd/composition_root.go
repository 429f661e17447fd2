package cmd

import (
	"log/slog"

	deliveryhttp "deliveries/internal/adapters/in/http"
	"deliveries/internal/adapters/out/persistence"
	"deliveries/internal/core/application/usecases/commands"
	"deliveries/internal/core/application/usecases/queries"
	"deliveries/internal/core/domain/services"
	"deliveries/internal/core/ports"
	"deliveries/internal/jobs"
	"deliveries/internal/pkg/clock"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config   Config
	gateways *persistence.GormGateways
	clock    clock.Clock
	tokens   *deliveryhttp.TokenIssuer
	logger   *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, c clock.Clock, logger *slog.Logger) (CompositionRoot, error) {
	c = clock.OrSystem(c)

	tokens, err := deliveryhttp.NewTokenIssuer(config.Auth(), c)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:   config,
		gateways: persistence.NewGormGateways(gormDB),
		clock:    c,
		tokens:   tokens,
		logger:   logger,
	}, nil
}

func (c *CompositionRoot) CreateOrderNumberGenerator() ports.OrderNumberGenerator {
	return services.NewOrderNumberGenerator(c.clock)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.gateways, c.CreateOrderNumberGenerator(), c.clock, c.logger)
}

func (c *CompositionRoot) CreateUpdateDeliveryCommandHandler() commands.UpdateDeliveryCommandHandler {
	return commands.NewUpdateDeliveryCommandHandler(c.gateways, c.logger)
}

func (c *CompositionRoot) CreateDeleteDeliveryCommandHandler() commands.DeleteDeliveryCommandHandler {
	return commands.NewDeleteDeliveryCommandHandler(c.gateways, c.logger)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gateways)
}

func (c *CompositionRoot) CreateGetExpiredDeliveriesQueryHandler() queries.GetExpiredDeliveriesQueryHandler {
	return queries.NewGetExpiredDeliveriesQueryHandler(c.gateways)
}

func (c *CompositionRoot) CreateServer() *deliveryhttp.Server {
	create := c.CreateCreateDeliveryCommandHandler()
	get := c.CreateGetDeliveryQueryHandler()
	update := c.CreateUpdateDeliveryCommandHandler()
	remove := c.CreateDeleteDeliveryCommandHandler()

	return deliveryhttp.NewServer(&create, &get, &update, &remove,
		services.NewTransitionAuthorizer(), c.tokens, c.logger)
}

func (c *CompositionRoot) CreateRouter() *echo.Echo {
	return deliveryhttp.NewRouter(c.CreateServer())
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	interval, err := c.config.SweepInterval()
	if err != nil {
		return nil, err
	}

	finder := c.CreateGetExpiredDeliveriesQueryHandler()
	updater := c.CreateUpdateDeliveryCommandHandler()

	return jobs.NewJobManager(
		jobs.NewDeliveryExpirationJob(&finder, &updater, c.clock, interval, c.logger),
	), nil
}
