package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "paperwork/internal/adapters/in/http"
	"paperwork/internal/adapters/out/documents"
	"paperwork/internal/adapters/out/memory"
	"paperwork/internal/adapters/out/messaging"
	"paperwork/internal/adapters/out/postgres"
	"paperwork/internal/adapters/out/postgres/customerrepo"
	"paperwork/internal/adapters/out/postgres/orderrepo"
	"paperwork/internal/adapters/out/postgres/serialrepo"
	"paperwork/internal/adapters/out/redisstore"
	"paperwork/internal/core/application/usecases/commands"
	"paperwork/internal/core/application/usecases/queries"
	"paperwork/internal/core/domain/model/catalog"
	"paperwork/internal/core/domain/model/fees"
	"paperwork/internal/core/domain/model/pricing"
	"paperwork/internal/core/domain/services"
	"paperwork/internal/core/ports"
	"paperwork/internal/jobs"
	"paperwork/internal/pkg/metrics"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	orders     *memory.OrderStore
	logger     *slog.Logger
	metrics    *metrics.Metrics

	engine     *fees.Engine
	calculator *pricing.Calculator
	sequencer  *services.SerialCheckSequencer
	serials    ports.SerialReservationRepository
	composer   ports.MessageComposer
	messenger  ports.Messenger
	renderer   ports.WorkOrderRenderer

	redisClient *redis.Client
}

// NewCompositionRoot wires the adapters. A nil gormDB keeps orders in memory, and the
// postgres serial store then falls back to memory as well. Otherwise the serial store
// is chosen by cfg.SerialStore; a redis store is pinged before it is used.
func NewCompositionRoot(ctx context.Context, cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	engine := fees.NewEngine(catalog.Default())
	calculator := pricing.NewCalculator(engine)

	composer, err := messaging.NewTemplates(messaging.DefaultTemplates)
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		metrics:    metrics.New(),
		engine:     engine,
		calculator: calculator,
		sequencer:  services.NewSerialCheckSequencer(),
		composer:   composer,
		messenger:  messaging.NewLogMessenger(logger),
		renderer:   documents.NewTextWorkOrderRenderer(calculator, cfg.Locale),
	}

	if gormDB == nil {
		root.orders = memory.NewOrderStore()
		logger.WarnContext(ctx, "No database configured, orders are kept in memory")
	}

	switch cfg.SerialStore {
	case SerialStoreRedis:
		root.redisClient = redisstore.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		store := redisstore.NewSerialStore(root.redisClient)
		if err := store.Ping(ctx); err != nil {
			_ = root.redisClient.Close()
			return nil, fmt.Errorf("redis is unreachable: %w", err)
		}
		root.serials = store
	case SerialStoreMemory:
		root.serials = memory.NewSerialStore()
	default:
		if gormDB == nil {
			root.serials = memory.NewSerialStore()
			break
		}
		root.serials = serialrepo.NewGormSerialReservationRepository(gormDB)
	}

	logger.InfoContext(ctx, "Composition root ready",
		"serial_store", cfg.SerialStore, "orders_in_memory", root.orders != nil)
	return root, nil
}

// Close releases connections the root opened itself.
func (c *CompositionRoot) Close() error {
	if c.redisClient != nil {
		return c.redisClient.Close()
	}
	return nil
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	if c.orders != nil {
		return FuncOrderUoWFactory(func() commands.OrderUoW {
			return c.orders.Create()
		})
	}
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderReader() queries.OrderReader {
	if c.orders != nil {
		return c.orders
	}
	return orderrepo.NewGormOrderRepository(c.gormDB, nil)
}

func (c *CompositionRoot) customerDirectory() ports.CustomerDirectory {
	if c.orders != nil {
		return c.orders
	}
	return customerrepo.NewGormCustomerDirectory(c.gormDB)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.calculator, nil)
}

func (c *CompositionRoot) CreateUpdateOrderPricingCommandHandler() commands.UpdateOrderPricingCommandHandler {
	return commands.NewUpdateOrderPricingCommandHandler(c.orderUoWFactory(), c.calculator, nil)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	return commands.NewRecordPaymentCommandHandler(c.orderUoWFactory(), nil)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), nil)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReserveSerialCommandHandler() commands.ReserveSerialCommandHandler {
	return commands.NewReserveSerialCommandHandler(c.orderUoWFactory(), c.serials, nil)
}

func (c *CompositionRoot) CreateNotifyCustomerCommandHandler() commands.NotifyCustomerCommandHandler {
	return commands.NewNotifyCustomerCommandHandler(c.orderUoWFactory(), c.composer, c.messenger)
}

func (c *CompositionRoot) CreateSendPaymentRemindersCommandHandler() commands.SendPaymentRemindersCommandHandler {
	return commands.NewSendPaymentRemindersCommandHandler(c.orderUoWFactory(), c.composer, c.messenger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderReader(), c.engine)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	if c.orders != nil {
		return queries.NewListOrdersQueryHandlerFromLister(c.orders)
	}
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateQuoteOrderQueryHandler() queries.QuoteOrderQueryHandler {
	return queries.NewQuoteOrderQueryHandler(c.calculator)
}

func (c *CompositionRoot) CreateGetWorkOrderQueryHandler() queries.GetWorkOrderQueryHandler {
	return queries.NewGetWorkOrderQueryHandler(c.orderReader(), c.renderer)
}

func (c *CompositionRoot) CreateCheckSerialAvailabilityQueryHandler() queries.CheckSerialAvailabilityQueryHandler {
	return queries.NewCheckSerialAvailabilityQueryHandler(c.serials, c.sequencer, c.cfg.SerialCheckTimeout, c.logger)
}

func (c *CompositionRoot) CreateSearchCustomersQueryHandler() queries.SearchCustomersQueryHandler {
	return queries.NewSearchCustomersQueryHandler(c.customerDirectory())
}

func (c *CompositionRoot) CreateListCatalogQueryHandler() queries.ListCatalogQueryHandler {
	return queries.NewListCatalogQueryHandler(c.engine.Catalog())
}

// CreateServer builds the HTTP server over every use case.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	handlers := httpin.Handlers{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		UpdateOrderPricing: c.CreateUpdateOrderPricingCommandHandler(),
		RecordPayment:      c.CreateRecordPaymentCommandHandler(),
		ChangeOrderStatus:  c.CreateChangeOrderStatusCommandHandler(),
		DeleteOrder:        c.CreateDeleteOrderCommandHandler(),
		ReserveSerial:      c.CreateReserveSerialCommandHandler(),
		NotifyCustomer:     c.CreateNotifyCustomerCommandHandler(),

		GetOrder:                c.CreateGetOrderQueryHandler(),
		ListOrders:              c.CreateListOrdersQueryHandler(),
		QuoteOrder:              c.CreateQuoteOrderQueryHandler(),
		GetWorkOrder:            c.CreateGetWorkOrderQueryHandler(),
		CheckSerialAvailability: c.CreateCheckSerialAvailabilityQueryHandler(),
		SearchCustomers:         c.CreateSearchCustomersQueryHandler(),
		ListCatalog:             c.CreateListCatalogQueryHandler(),
	}
	return httpin.NewServer(handlers, c.engine, c.metrics, c.logger)
}

// CreateJobManager builds the scheduled jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	reminders := c.CreateSendPaymentRemindersCommandHandler()
	return jobs.NewJobManager(
		jobs.NewPaymentReminderJob(&reminders, c.cfg.ReminderSchedule, c.metrics, c.logger),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
