package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/task"

	"github.com/robfig/cron/v3"
)

// DefaultGeocodeRetrySchedule runs the retry every five minutes.
const DefaultGeocodeRetrySchedule = "0 */5 * * * *"

// MissingCoordinatesLister finds active tasks whose address was never resolved.
type MissingCoordinatesLister interface {
	ListMissingCoordinates(ctx context.Context, limit int) ([]*task.Task, error)
}

// GeocodeRetryJob periodically geocodes tasks that still have no coordinates.
// A failure on one task is logged and the batch continues.
type GeocodeRetryJob struct {
	tasks     MissingCoordinatesLister
	handler   commands.GeocodeTaskCommandHandler
	batchSize int
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewGeocodeRetryJob(
	tasks MissingCoordinatesLister,
	handler commands.GeocodeTaskCommandHandler,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) *GeocodeRetryJob {
	if schedule == "" {
		schedule = DefaultGeocodeRetrySchedule
	}
	return &GeocodeRetryJob{
		tasks:     tasks,
		handler:   handler,
		batchSize: batchSize,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "geocode_retry_job"),
	}
}

// RunOnce processes one batch and returns how many tasks received coordinates.
func (j *GeocodeRetryJob) RunOnce(ctx context.Context) (int, error) {
	pending, err := j.tasks.ListMissingCoordinates(ctx, j.batchSize)
	if err != nil {
		return 0, err
	}

	geocoded := 0
	for _, t := range pending {
		cmd, err := commands.NewGeocodeTaskCommand(t.ID())
		if err != nil {
			j.logger.ErrorContext(ctx, "Invalid geocode command", "task_id", t.ID().String(), "error", err)
			continue
		}

		point, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.WarnContext(ctx, "Geocoding failed", "task_id", t.ID().String(), "error", err)
			continue
		}
		if point != nil {
			geocoded++
		}
	}

	return geocoded, nil
}

// Start schedules the job.
func (j *GeocodeRetryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		geocoded, err := j.RunOnce(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Geocode retry job failed", "error", err)
			return
		}
		if geocoded > 0 {
			j.logger.InfoContext(ctx, "Geocode retry job resolved tasks", "count", geocoded)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Geocode retry job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running batch to finish.
func (j *GeocodeRetryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Geocode retry job stopped")
}
