package cmd

import (
	"fmt"
	"time"

	httpin "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/notify"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/rabbitmq"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/jobs"
	"laundry/internal/pkg/clock"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompositionRoot owns the long-lived dependencies and builds every handler
// from them.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	gate       services.AccessGate
	clock      ports.Clock
	sink       *notify.AsyncSink
	logger     *zap.Logger
}

// NewCompositionRoot wires the notification sink to publisher. A nil
// publisher falls back to logging every notification.
func NewCompositionRoot(config Config, gormDB *gorm.DB, publisher notify.Publisher, logger *zap.Logger) (*CompositionRoot, error) {
	location, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", config.Timezone, err)
	}
	if publisher == nil {
		publisher = notify.NewLogPublisher(logger)
	}

	systemClock := clock.System{}
	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		gate:       services.NewAccessGate(location),
		clock:      systemClock,
		sink:       notify.NewAsyncSink(publisher, config.NotificationQueue, systemClock, logger),
		logger:     logger,
	}, nil
}

// NewRabbitMQPublisher dials the broker when a URL is configured. It returns
// a nil publisher and a nil close func otherwise.
func NewRabbitMQPublisher(config Config) (notify.Publisher, func(), error) {
	if config.RabbitMQURL == "" {
		return nil, nil, nil
	}
	client, err := rabbitmq.Dial(config.RabbitMQURL, config.RabbitMQExchange)
	if err != nil {
		return nil, nil, err
	}
	return rabbitmq.NewPublisher(client, config.RabbitMQExchange), client.Close, nil
}

func (c *CompositionRoot) NotificationSink() *notify.AsyncSink {
	return c.sink
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow(), c.gate, c.sink, c.clock)
}

func (c *CompositionRoot) CreateAssignItemsCommandHandler() commands.AssignItemsCommandHandler {
	return commands.NewAssignItemsCommandHandler(c.uow(), c.gate, c.sink, c.clock, c.config.LaundryRatePerKg)
}

func (c *CompositionRoot) CreateAdvanceStageCommandHandler() commands.AdvanceStageCommandHandler {
	return commands.NewAdvanceStageCommandHandler(c.uow(), c.gate, c.sink, c.clock)
}

func (c *CompositionRoot) CreateMarkOrderPaidCommandHandler() commands.MarkOrderPaidCommandHandler {
	return commands.NewMarkOrderPaidCommandHandler(c.uow(), c.gate, c.sink, c.clock)
}

func (c *CompositionRoot) CreateComplaintCommandHandler() commands.ComplaintCommandHandler {
	return commands.NewComplaintCommandHandler(c.uow(), c.gate, c.sink, c.clock)
}

func (c *CompositionRoot) CreateClaimJobCommandHandler() commands.ClaimJobCommandHandler {
	return commands.NewClaimJobCommandHandler(c.uow(), c.gate, c.sink, c.clock)
}

func (c *CompositionRoot) CreateCreateEmployeeCommandHandler() commands.CreateEmployeeCommandHandler {
	return commands.NewCreateEmployeeCommandHandler(c.uow(), c.gate, c.clock)
}

func (c *CompositionRoot) CreateCreateLaundryItemTypeCommandHandler() commands.CreateLaundryItemTypeCommandHandler {
	return commands.NewCreateLaundryItemTypeCommandHandler(c.uow(), c.gate, c.clock)
}

func (c *CompositionRoot) CreateRemindUnassignedJobsCommandHandler() commands.RemindUnassignedJobsCommandHandler {
	return commands.NewRemindUnassignedJobsCommandHandler(c.uow(), c.sink, c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOutletJobsQueryHandler() queries.ListOutletJobsQueryHandler {
	return queries.NewListOutletJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:    c.CreateCreateOrderCommandHandler(),
		AssignItems:    c.CreateAssignItemsCommandHandler(),
		AdvanceStage:   c.CreateAdvanceStageCommandHandler(),
		MarkOrderPaid:  c.CreateMarkOrderPaidCommandHandler(),
		Complaints:     c.CreateComplaintCommandHandler(),
		ClaimJob:       c.CreateClaimJobCommandHandler(),
		CreateEmployee: c.CreateCreateEmployeeCommandHandler(),
		CreateItemType: c.CreateCreateLaundryItemTypeCommandHandler(),
		GetOrder:       c.CreateGetOrderQueryHandler(),
		ListOrders:     c.CreateListOrdersQueryHandler(),
		ListOutletJobs: c.CreateListOutletJobsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRemindUnassignedJobsCommandHandler(),
		c.config.ReminderSchedule,
		c.config.ReminderThreshold,
		c.logger,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
