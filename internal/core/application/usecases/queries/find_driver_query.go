package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/guard"
)

var ErrFindDriverQueryIsNotConstructed = errors.New(
	"FindDriverQuery must be created via NewFindDriverQuery constructor",
)

// ScoringMode selects how drivers are ranked.
type ScoringMode int

const (
	// ScoringNearest ranks by distance only.
	ScoringNearest ScoringMode = iota
	// ScoringBest adds a workload penalty and a daily cap.
	ScoringBest
)

// FindDriverQuery recommends a driver for a task without assigning it.
type FindDriverQuery struct {
	taskID kernel.UUID
	mode   ScoringMode

	guard guard.ConstructorGuard
}

func NewFindDriverQuery(taskID kernel.UUID, mode ScoringMode) (FindDriverQuery, error) {
	if err := taskID.Validate(); err != nil {
		return FindDriverQuery{}, err
	}
	return FindDriverQuery{taskID: taskID, mode: mode, guard: guard.NewConstructorGuard()}, nil
}

func (q FindDriverQuery) Validate() error {
	return q.guard.Validate(ErrFindDriverQueryIsNotConstructed)
}

type FindDriverQueryHandler struct {
	tasks   TaskReader
	drivers DriverReader
	nearest services.DriverScorer
	best    services.DriverScorer
}

func NewFindDriverQueryHandler(
	tasks TaskReader,
	drivers DriverReader,
	nearest services.DriverScorer,
	best services.DriverScorer,
) FindDriverQueryHandler {
	return FindDriverQueryHandler{tasks: tasks, drivers: drivers, nearest: nearest, best: best}
}

// Handle returns the winning score. The task itself never counts toward a
// driver's workload, so asking for a task that is already assigned is stable.
func (h FindDriverQueryHandler) Handle(ctx context.Context, q FindDriverQuery) (services.Score, error) {
	if err := q.Validate(); err != nil {
		return services.Score{}, err
	}

	t, err := h.tasks.Get(ctx, q.taskID)
	if err != nil {
		return services.Score{}, err
	}

	drivers, err := h.drivers.GetAllAvailable(ctx)
	if err != nil {
		return services.Score{}, err
	}

	candidates := make([]services.Candidate, 0, len(drivers))
	for _, d := range drivers {
		dayTasks, listErr := h.tasks.ListByDriverAndDate(ctx, d.ID(), t.ScheduledDate())
		if listErr != nil {
			return services.Score{}, listErr
		}
		candidates = append(candidates, services.Candidate{Driver: d, DayTasks: withoutTask(dayTasks, t)})
	}

	scorer := h.nearest
	if q.mode == ScoringBest {
		scorer = h.best
	}
	return scorer.Select(t, candidates)
}

func withoutTask(tasks []*task.Task, t *task.Task) []*task.Task {
	kept := make([]*task.Task, 0, len(tasks))
	for _, other := range tasks {
		if !other.ID().IsEqual(t.ID()) {
			kept = append(kept, other)
		}
	}
	return kept
}
