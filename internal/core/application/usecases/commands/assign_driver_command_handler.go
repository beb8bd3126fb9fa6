package commands

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
)

// AssignDriverCommandHandler assigns a task to a driver and reoptimizes the
// affected routes in the same transaction. The driver is notified after commit.
type AssignDriverCommandHandler struct {
	uowFactory  UoWFactory
	resequencer RouteResequencer
	notifier    RouteNotifier
}

func NewAssignDriverCommandHandler(
	uowFactory UoWFactory,
	resequencer RouteResequencer,
	notifier RouteNotifier,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory:  uowFactory,
		resequencer: resequencer,
		notifier:    notifier,
	}
}

func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) (AssignmentResult, error) {
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

	t, err := uow.TaskRepository().Get(ctx, cmd.TaskID())
	if err != nil {
		return AssignmentResult{}, err
	}

	ids := []kernel.UUID{cmd.DriverID()}
	if previous := t.DriverID(); previous != nil {
		ids = append(ids, *previous)
	}
	drivers, err := lockDrivers(ctx, uow.DriverRepository(), ids...)
	if err != nil {
		return AssignmentResult{}, err
	}
	if t, err = reloadLocked(ctx, uow.TaskRepository(), cmd.TaskID(), drivers); err != nil {
		return AssignmentResult{}, err
	}

	result, updates, err := assignLocked(ctx, uow, h.resequencer, t, drivers[cmd.DriverID()])
	if err != nil {
		return AssignmentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignmentResult{}, err
	}

	h.notifier.notify(ctx, updates...)
	return result, nil
}

// assignLocked sets d on t and resequences the routes involved. The caller must
// hold the row lock of d and of the task's previous driver.
func assignLocked(
	ctx context.Context,
	uow UoW,
	resequencer RouteResequencer,
	t *task.Task,
	d *driver.Driver,
) (AssignmentResult, []routeUpdate, error) {
	if err := d.EnsureCanTakeTasks(); err != nil {
		return AssignmentResult{}, nil, err
	}

	previous := t.DriverID()
	if err := t.AssignDriver(d.ID()); err != nil {
		return AssignmentResult{}, nil, err
	}

	taskRepo := uow.TaskRepository()
	if err := taskRepo.Update(ctx, t); err != nil {
		return AssignmentResult{}, nil, err
	}

	routeSize, err := resequencer.Resequence(ctx, taskRepo, d.ID(), t.ScheduledDate())
	if err != nil {
		return AssignmentResult{}, nil, err
	}
	updates := []routeUpdate{{driverID: d.ID(), routeSize: routeSize}}

	if previous != nil && !previous.IsEqual(d.ID()) {
		previousSize, seqErr := resequencer.Resequence(ctx, taskRepo, *previous, t.ScheduledDate())
		if seqErr != nil {
			return AssignmentResult{}, nil, seqErr
		}
		updates = append(updates, routeUpdate{driverID: *previous, routeSize: previousSize})
	}

	return AssignmentResult{
		TaskID:     t.ID(),
		DriverID:   d.ID(),
		DriverName: d.Name(),
		RouteSize:  routeSize,
	}, updates, nil
}
