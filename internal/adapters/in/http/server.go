package http

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/generated/servers"
)

// The dispatcher board and the driver directory are read straight from SQL;
// the server only needs their Handle methods.
type (
	PendingTasksReader interface {
		Handle(ctx context.Context, query queries.GetPendingTasksQuery) ([]queries.PendingTask, error)
	}

	DriverDirectory interface {
		Handle(ctx context.Context, query queries.GetAllDriversQuery) ([]queries.GetAllDriversQueryResponse, error)
	}
)

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	// Command handlers
	CreateTask          commands.CreateTaskCommandHandler
	ScheduleTask        commands.ScheduleTaskCommandHandler
	ChangeTaskStatus    commands.ChangeTaskStatusCommandHandler
	AssignDriver        commands.AssignDriverCommandHandler
	AutoAssignTask      commands.AutoAssignTaskCommandHandler
	CaptureTaskData     commands.CaptureTaskDataHandler
	GeocodeTask         commands.GeocodeTaskCommandHandler
	ReoptimizeRoute     commands.ReoptimizeRouteCommandHandler
	CreateDriver        commands.CreateDriverCommandHandler
	UpdateDriver        commands.UpdateDriverCommandHandler
	RecordArticleWeight commands.RecordArticleWeightCommandHandler

	// Query handlers
	GetTask            queries.GetTaskQueryHandler
	GetDriverTasks     queries.GetDriverTasksQueryHandler
	Routes             queries.RouteQueryHandler
	FindDriver         queries.FindDriverQueryHandler
	Weighing           queries.WeighingQueryHandler
	EstimateTravelTime queries.EstimateTravelTimeQueryHandler
	PendingTasks       PendingTasksReader
	Drivers            DriverDirectory
}

// Server implements servers.ServerInterface. It translates HTTP requests into
// commands and queries and maps the results back to the API models.
type Server struct {
	h        Handlers
	location *time.Location
	now      func() time.Time
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates the HTTP server. location decides which calendar day
// "today" is when a request does not name one.
func NewServer(h Handlers, location *time.Location, logger *slog.Logger) *Server {
	if location == nil {
		location = time.Local
	}
	return &Server{
		h:        h,
		location: location,
		now:      time.Now,
		logger:   logger.With("component", "http"),
	}
}

func (s *Server) today() kernel.Date {
	return kernel.DateOf(s.now().In(s.location))
}

// dayOrToday resolves an optional date parameter.
func (s *Server) dayOrToday(date *servers.OptionalDate) kernel.Date {
	if date == nil {
		return s.today()
	}
	return kernel.DateOf(date.Time)
}
