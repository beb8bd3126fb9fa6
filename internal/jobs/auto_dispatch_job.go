package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// DefaultAutoDispatchSchedule runs the dispatch every minute.
const DefaultAutoDispatchSchedule = "0 * * * * *"

// UnassignedTaskLister finds pending tasks of a day that no driver has taken.
type UnassignedTaskLister interface {
	ListUnassigned(ctx context.Context, date kernel.Date) ([]*task.Task, error)
}

// AutoDispatchJob assigns today's unassigned, geocoded, pending tasks to the
// best scoring driver. Tasks no driver can take stay unassigned until the next run.
type AutoDispatchJob struct {
	tasks    UnassignedTaskLister
	handler  commands.AutoAssignTaskCommandHandler
	location *time.Location
	now      func() time.Time
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewAutoDispatchJob(
	tasks UnassignedTaskLister,
	handler commands.AutoAssignTaskCommandHandler,
	schedule string,
	location *time.Location,
	logger *slog.Logger,
) *AutoDispatchJob {
	if schedule == "" {
		schedule = DefaultAutoDispatchSchedule
	}
	if location == nil {
		location = time.Local
	}
	return &AutoDispatchJob{
		tasks:    tasks,
		handler:  handler,
		location: location,
		now:      time.Now,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithLocation(location)),
		logger:   logger.With("component", "auto_dispatch_job"),
	}
}

// RunOnce dispatches the tasks of date and returns how many were assigned.
func (j *AutoDispatchJob) RunOnce(ctx context.Context, date kernel.Date) (int, error) {
	unassigned, err := j.tasks.ListUnassigned(ctx, date)
	if err != nil {
		return 0, err
	}

	assigned := 0
	for _, t := range unassigned {
		if !t.HasCoordinates() {
			continue
		}

		cmd, err := commands.NewAutoAssignTaskCommand(t.ID())
		if err != nil {
			j.logger.ErrorContext(ctx, "Invalid auto assign command", "task_id", t.ID().String(), "error", err)
			continue
		}

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			// A full or empty fleet is expected; the task waits for the next run.
			if !errors.Is(err, services.ErrNoDriverAvailable) {
				j.logger.WarnContext(ctx, "Auto dispatch failed", "task_id", t.ID().String(), "error", err)
			}
			continue
		}

		j.logger.DebugContext(ctx, "Task dispatched",
			"task_id", t.ID().String(),
			"driver_id", result.DriverID.String(),
			"route_size", result.RouteSize,
		)
		assigned++
	}

	return assigned, nil
}

// Start schedules the job for the current day of the configured time zone.
func (j *AutoDispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		today := kernel.DateOf(j.now().In(j.location))

		assigned, err := j.RunOnce(ctx, today)
		if err != nil {
			j.logger.ErrorContext(ctx, "Auto dispatch job failed", "error", err)
			return
		}
		if assigned > 0 {
			j.logger.InfoContext(ctx, "Auto dispatch job assigned tasks", "count", assigned, "date", today.String())
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto dispatch job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running dispatch to finish.
func (j *AutoDispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Auto dispatch job stopped")
}
