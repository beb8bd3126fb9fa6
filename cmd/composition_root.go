package cmd

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/geocoding"
	"logistics/internal/adapters/out/notification"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/articlerepo"
	"logistics/internal/adapters/out/postgres/driverrepo"
	"logistics/internal/adapters/out/postgres/taskrepo"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"
	"logistics/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	geocoder   *geocoding.NominatimClient
	sender     notification.Sender
	location   *time.Location
	logger     *slog.Logger
}

// NewCompositionRoot opens the outbound clients. Call Close when done.
func NewCompositionRoot(ctx context.Context, cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	location, err := cfg.Dispatch.Location()
	if err != nil {
		return nil, err
	}

	sender, err := notification.NewSender(ctx, cfg.Notification.Sender(), logger)
	if err != nil {
		return nil, errors.Wrap(err, "create notification sender")
	}

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		geocoder:   geocoding.NewNominatimClient(cfg.Geocoding.Client(), logger),
		sender:     sender,
		location:   location,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) Close() error {
	c.geocoder.Close()
	return c.sender.Close()
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) optimizer() services.RouteOptimizer {
	return services.NewRouteOptimizer(c.cfg.Dispatch.GracePeriod)
}

func (c *CompositionRoot) calculator() services.RouteMetricsCalculator {
	return services.NewRouteMetricsCalculator(c.cfg.Dispatch.AverageSpeedKmh, c.cfg.Dispatch.DwellTime)
}

func (c *CompositionRoot) resequencer() commands.RouteResequencer {
	return commands.NewRouteResequencer(c.optimizer())
}

func (c *CompositionRoot) routeNotifier() commands.RouteNotifier {
	return commands.NewRouteNotifier(c.sender, c.logger)
}

func (c *CompositionRoot) CreateCreateTaskCommandHandler() commands.CreateTaskCommandHandler {
	return commands.NewCreateTaskCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateScheduleTaskCommandHandler() commands.ScheduleTaskCommandHandler {
	return commands.NewScheduleTaskCommandHandler(c.uow(), c.resequencer(), c.routeNotifier())
}

func (c *CompositionRoot) CreateChangeTaskStatusCommandHandler() commands.ChangeTaskStatusCommandHandler {
	return commands.NewChangeTaskStatusCommandHandler(c.uow(), c.resequencer(), c.routeNotifier())
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.uow(), c.resequencer(), c.routeNotifier())
}

func (c *CompositionRoot) CreateAutoAssignTaskCommandHandler() commands.AutoAssignTaskCommandHandler {
	return commands.NewAutoAssignTaskCommandHandler(
		c.uow(),
		services.NewDriverScorer(c.cfg.Dispatch.BestScoring()),
		c.resequencer(),
		c.routeNotifier(),
	)
}

func (c *CompositionRoot) CreateCaptureTaskDataHandler() commands.CaptureTaskDataHandler {
	var f commands.TaskUoWFactory = FuncTaskUoWFactory(func() commands.TaskUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCaptureTaskDataHandler(f)
}

func (c *CompositionRoot) CreateGeocodeTaskCommandHandler() commands.GeocodeTaskCommandHandler {
	return commands.NewGeocodeTaskCommandHandler(c.uow(), c.geocoder, c.resequencer(), c.routeNotifier(), c.logger)
}

func (c *CompositionRoot) CreateReoptimizeRouteCommandHandler() commands.ReoptimizeRouteCommandHandler {
	return commands.NewReoptimizeRouteCommandHandler(c.uow(), c.resequencer(), c.routeNotifier())
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDriverCommandHandler() commands.UpdateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordArticleWeightCommandHandler() commands.RecordArticleWeightCommandHandler {
	var f commands.ArticleUoWFactory = FuncArticleUoWFactory(func() commands.ArticleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordArticleWeightCommandHandler(f)
}

func (c *CompositionRoot) CreateGetTaskQueryHandler() queries.GetTaskQueryHandler {
	return queries.NewGetTaskQueryHandler(taskrepo.NewGormTaskRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetDriverTasksQueryHandler() queries.GetDriverTasksQueryHandler {
	return queries.NewGetDriverTasksQueryHandler(
		taskrepo.NewGormTaskRepository(c.gormDB),
		driverrepo.NewGormDriverRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateRouteQueryHandler() queries.RouteQueryHandler {
	return queries.NewRouteQueryHandler(
		taskrepo.NewGormTaskRepository(c.gormDB),
		driverrepo.NewGormDriverRepository(c.gormDB),
		c.optimizer(),
		c.calculator(),
	)
}

func (c *CompositionRoot) CreateFindDriverQueryHandler() queries.FindDriverQueryHandler {
	return queries.NewFindDriverQueryHandler(
		taskrepo.NewGormTaskRepository(c.gormDB),
		driverrepo.NewGormDriverRepository(c.gormDB),
		services.NewDriverScorer(c.cfg.Dispatch.NearestScoring()),
		services.NewDriverScorer(c.cfg.Dispatch.BestScoring()),
	)
}

func (c *CompositionRoot) CreateWeighingQueryHandler() queries.WeighingQueryHandler {
	return queries.NewWeighingQueryHandler(
		taskrepo.NewGormTaskRepository(c.gormDB),
		articlerepo.NewGormArticleRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateEstimateTravelTimeQueryHandler() queries.EstimateTravelTimeQueryHandler {
	return queries.NewEstimateTravelTimeQueryHandler(taskrepo.NewGormTaskRepository(c.gormDB), c.calculator())
}

func (c *CompositionRoot) CreateGetPendingTasksQueryHandler() queries.GetPendingTasksQueryHandler {
	return queries.NewGetPendingTasksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllDriversQueryHandler() queries.GetAllDriversQueryHandler {
	return queries.NewGetAllDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.Handlers{
		CreateTask:          c.CreateCreateTaskCommandHandler(),
		ScheduleTask:        c.CreateScheduleTaskCommandHandler(),
		ChangeTaskStatus:    c.CreateChangeTaskStatusCommandHandler(),
		AssignDriver:        c.CreateAssignDriverCommandHandler(),
		AutoAssignTask:      c.CreateAutoAssignTaskCommandHandler(),
		CaptureTaskData:     c.CreateCaptureTaskDataHandler(),
		GeocodeTask:         c.CreateGeocodeTaskCommandHandler(),
		ReoptimizeRoute:     c.CreateReoptimizeRouteCommandHandler(),
		CreateDriver:        c.CreateCreateDriverCommandHandler(),
		UpdateDriver:        c.CreateUpdateDriverCommandHandler(),
		RecordArticleWeight: c.CreateRecordArticleWeightCommandHandler(),

		GetTask:            c.CreateGetTaskQueryHandler(),
		GetDriverTasks:     c.CreateGetDriverTasksQueryHandler(),
		Routes:             c.CreateRouteQueryHandler(),
		FindDriver:         c.CreateFindDriverQueryHandler(),
		Weighing:           c.CreateWeighingQueryHandler(),
		EstimateTravelTime: c.CreateEstimateTravelTimeQueryHandler(),
		PendingTasks:       c.CreateGetPendingTasksQueryHandler(),
		Drivers:            c.CreateGetAllDriversQueryHandler(),
	}, c.location, c.logger)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	e, err := http.NewRouter(c.CreateHTTPServer(), c.logger)
	if err != nil {
		return nil, err
	}
	e.Server.ReadTimeout = c.cfg.HTTP.ReadTimeout
	e.Server.WriteTimeout = c.cfg.HTTP.WriteTimeout
	return e, nil
}

// CreateJobManager wires the enabled background jobs. A disabled job is left nil.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	tasks := taskrepo.NewGormTaskRepository(c.gormDB)

	var geocodeRetry *jobs.GeocodeRetryJob
	if cfg := c.cfg.Jobs.GeocodeRetry; cfg.Enabled {
		geocodeRetry = jobs.NewGeocodeRetryJob(tasks, c.CreateGeocodeTaskCommandHandler(), cfg.Schedule, cfg.BatchSize, c.logger)
	}

	var autoDispatch *jobs.AutoDispatchJob
	if cfg := c.cfg.Jobs.AutoDispatch; cfg.Enabled {
		autoDispatch = jobs.NewAutoDispatchJob(tasks, c.CreateAutoAssignTaskCommandHandler(), cfg.Schedule, c.location, c.logger)
	}

	return jobs.NewJobManager(geocodeRetry, autoDispatch)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncTaskUoWFactory func() commands.TaskUoW

func (f FuncTaskUoWFactory) Create() commands.TaskUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncArticleUoWFactory func() commands.ArticleUoW

func (f FuncArticleUoWFactory) Create() commands.ArticleUoW {
	return f()
}
