package cmd

import (
	"log/slog"

	httpin "prepcenter/internal/adapters/in/http"
	"prepcenter/internal/adapters/out/postgres"
	"prepcenter/internal/adapters/out/postgres/activityrepo"
	"prepcenter/internal/adapters/out/postgres/notificationrepo"
	"prepcenter/internal/core/application/events"
	"prepcenter/internal/core/application/usecases/commands"
	"prepcenter/internal/core/application/usecases/queries"
	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/ports"
	"prepcenter/internal/jobs"
	"prepcenter/internal/pkg/metrics"
	"prepcenter/internal/pkg/resilience"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config        Config
	gormDB        *gorm.DB
	uowFactory    *postgres.GormUnitOfWorkFactory
	notifications *notificationrepo.GormNotificationRepository
	dispatcher    *events.Dispatcher
	clock         kernel.Clock
	metrics       *metrics.Metrics
	logger        *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, m *metrics.Metrics, logger *slog.Logger) CompositionRoot {
	storeBreaker := resilience.NewCircuitBreaker(resilience.DefaultCircuitBreakerConfig("postgres"), logger, m)
	notifications := notificationrepo.NewGormNotificationRepository(gormDB)

	return CompositionRoot{
		config:        config,
		gormDB:        gormDB,
		uowFactory:    postgres.NewGormUnitOfWorkFactory(gormDB, storeBreaker),
		notifications: notifications,
		dispatcher: events.NewDispatcher(
			notifications,
			activityrepo.NewGormActivityRepository(gormDB),
			m,
			logger,
		),
		clock:   kernel.SystemClock{},
		metrics: m,
		logger:  logger,
	}
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.uowFactory, c.dispatcher, c.clock)
}

func (c *CompositionRoot) CreateAdvanceShipmentCommandHandler() commands.AdvanceShipmentCommandHandler {
	return commands.NewAdvanceShipmentCommandHandler(c.uowFactory, c.dispatcher, c.clock)
}

func (c *CompositionRoot) CreateSetShipmentStatusCommandHandler() commands.SetShipmentStatusCommandHandler {
	return commands.NewSetShipmentStatusCommandHandler(c.uowFactory, c.dispatcher, c.clock)
}

func (c *CompositionRoot) CreateCreateTaskCommandHandler() commands.CreateTaskCommandHandler {
	return commands.NewCreateTaskCommandHandler(c.uowFactory, c.dispatcher, c.clock)
}

func (c *CompositionRoot) CreateClaimTaskCommandHandler() commands.ClaimTaskCommandHandler {
	return commands.NewClaimTaskCommandHandler(c.uowFactory, c.dispatcher, c.clock)
}

func (c *CompositionRoot) CreateCompleteTaskCommandHandler() commands.CompleteTaskCommandHandler {
	return commands.NewCompleteTaskCommandHandler(c.uowFactory, c.dispatcher, c.clock)
}

func (c *CompositionRoot) CreateCancelTaskCommandHandler() commands.CancelTaskCommandHandler {
	return commands.NewCancelTaskCommandHandler(c.uowFactory, c.dispatcher, c.clock)
}

func (c *CompositionRoot) CreateCreateStationCommandHandler() commands.CreateStationCommandHandler {
	return commands.NewCreateStationCommandHandler(c.uowFactory, c.dispatcher, c.clock)
}

func (c *CompositionRoot) CreateUpdateStationCommandHandler() commands.UpdateStationCommandHandler {
	return commands.NewUpdateStationCommandHandler(c.uowFactory, c.dispatcher, c.clock)
}

// CreateHTTPHandlers bundles every use case the HTTP adapter exposes.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateShipment:    c.CreateCreateShipmentCommandHandler(),
		AdvanceShipment:   c.CreateAdvanceShipmentCommandHandler(),
		SetShipmentStatus: c.CreateSetShipmentStatusCommandHandler(),
		CreateTask:        c.CreateCreateTaskCommandHandler(),
		ClaimTask:         c.CreateClaimTaskCommandHandler(),
		CompleteTask:      c.CreateCompleteTaskCommandHandler(),
		CancelTask:        c.CreateCancelTaskCommandHandler(),
		CreateStation:     c.CreateCreateStationCommandHandler(),
		UpdateStation:     c.CreateUpdateStationCommandHandler(),

		GetShipment:         queries.NewGetShipmentQueryHandler(c.gormDB),
		ListShipments:       queries.NewListShipmentsQueryHandler(c.gormDB),
		GetTask:             queries.NewGetTaskQueryHandler(c.gormDB),
		ListTasks:           queries.NewListTasksQueryHandler(c.gormDB),
		GetStation:          queries.NewGetStationQueryHandler(c.gormDB),
		ListStations:        queries.NewListStationsQueryHandler(c.gormDB),
		GetStationLoadAudit: queries.NewGetStationLoadAuditQueryHandler(c.gormDB),
		ListInbox:           queries.NewListInboxQueryHandler(c.gormDB),
		ListActivity:        queries.NewListActivityQueryHandler(c.gormDB),
	}
}

// CreateJobManager schedules the background jobs. The relay job is only scheduled when a
// publisher is given.
func (c *CompositionRoot) CreateJobManager(publisher ports.NotificationPublisher) *jobs.JobManager {
	schedules := []jobs.Schedule{
		{
			Spec: c.config.LoadAuditSchedule,
			Job: jobs.NewStationLoadAuditJob(
				queries.NewGetStationLoadAuditQueryHandler(c.gormDB), c.metrics, c.logger),
		},
		{
			Spec: c.config.StaleTaskSchedule,
			Job: jobs.NewStaleTaskReportJob(
				queries.NewListStaleTasksQueryHandler(c.gormDB), c.config.StaleTaskThreshold, c.clock, c.logger),
		},
	}
	if publisher != nil {
		schedules = append(schedules, jobs.Schedule{
			Spec: c.config.RelaySchedule,
			Job: jobs.NewNotificationRelayJob(
				c.notifications, publisher, c.config.RelayBatchSize, c.metrics, c.logger),
		})
	}
	return jobs.NewJobManager(c.logger, schedules...)
}
