package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// AutoAssignTaskCommandHandler scores every available driver for a task and
// assigns it to the winner.
//
// Candidates are ranked from a read of all drivers' days; the winner is then
// locked and scored again on its fresh state, so an availability change or a
// concurrent assignment that pushed it over the daily cap aborts the command
// with services.ErrNoDriverAvailable instead of overloading the driver.
//
// Example:
//
//	handler := NewAutoAssignTaskCommandHandler(uowFactory, scorer, resequencer, notifier)
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrNoDriverAvailable) {
//	    // leave the task in the unassigned pool
//	}
type AutoAssignTaskCommandHandler struct {
	uowFactory  UoWFactory
	scorer      services.DriverScorer
	resequencer RouteResequencer
	notifier    RouteNotifier
}

func NewAutoAssignTaskCommandHandler(
	uowFactory UoWFactory,
	scorer services.DriverScorer,
	resequencer RouteResequencer,
	notifier RouteNotifier,
) AutoAssignTaskCommandHandler {
	return AutoAssignTaskCommandHandler{
		uowFactory:  uowFactory,
		scorer:      scorer,
		resequencer: resequencer,
		notifier:    notifier,
	}
}

func (h AutoAssignTaskCommandHandler) Handle(ctx context.Context, cmd AutoAssignTaskCommand) (AssignmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignmentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taskRepo := uow.TaskRepository()
	driverRepo := uow.DriverRepository()

	t, err := taskRepo.Get(ctx, cmd.TaskID())
	if err != nil {
		return AssignmentResult{}, err
	}
	if !t.HasCoordinates() {
		return AssignmentResult{}, errs.NewInvalidOperationError("auto assign", "task has no coordinates")
	}

	drivers, err := driverRepo.GetAllAvailable(ctx)
	if err != nil {
		return AssignmentResult{}, err
	}

	candidates := make([]services.Candidate, 0, len(drivers))
	for _, d := range drivers {
		dayTasks, listErr := dayTasksExcluding(ctx, taskRepo, d.ID(), t)
		if listErr != nil {
			return AssignmentResult{}, listErr
		}
		candidates = append(candidates, services.Candidate{Driver: d, DayTasks: dayTasks})
	}

	best, err := h.scorer.Select(t, candidates)
	if err != nil {
		return AssignmentResult{}, err
	}

	ids := []kernel.UUID{best.Driver.ID()}
	if previous := t.DriverID(); previous != nil {
		ids = append(ids, *previous)
	}
	locked, err := lockDrivers(ctx, driverRepo, ids...)
	if err != nil {
		return AssignmentResult{}, err
	}
	winner := locked[best.Driver.ID()]
	if t, err = reloadLocked(ctx, taskRepo, cmd.TaskID(), locked); err != nil {
		return AssignmentResult{}, err
	}

	dayTasks, err := dayTasksExcluding(ctx, taskRepo, winner.ID(), t)
	if err != nil {
		return AssignmentResult{}, err
	}
	if _, err = h.scorer.Select(t, []services.Candidate{{Driver: winner, DayTasks: dayTasks}}); err != nil {
		return AssignmentResult{}, err
	}

	result, updates, err := assignLocked(ctx, uow, h.resequencer, t, winner)
	if err != nil {
		return AssignmentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignmentResult{}, err
	}

	h.notifier.notify(ctx, updates...)
	return result, nil
}

func dayTasksExcluding(
	ctx context.Context,
	repo ports.TaskRepository,
	driverID kernel.UUID,
	t *task.Task,
) ([]*task.Task, error) {
	tasks, err := repo.ListByDriverAndDate(ctx, driverID, t.ScheduledDate())
	if err != nil {
		return nil, err
	}

	kept := make([]*task.Task, 0, len(tasks))
	for _, other := range tasks {
		if !other.ID().IsEqual(t.ID()) {
			kept = append(kept, other)
		}
	}
	return kept, nil
}
