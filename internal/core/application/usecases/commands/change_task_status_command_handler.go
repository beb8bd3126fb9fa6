package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/task"
)

// ChangeTaskStatusCommandHandler applies a guarded lifecycle transition.
// Cancelling an assigned task takes it off its driver's route.
type ChangeTaskStatusCommandHandler struct {
	uowFactory  UoWFactory
	resequencer RouteResequencer
	notifier    RouteNotifier
}

func NewChangeTaskStatusCommandHandler(
	uowFactory UoWFactory,
	resequencer RouteResequencer,
	notifier RouteNotifier,
) ChangeTaskStatusCommandHandler {
	return ChangeTaskStatusCommandHandler{
		uowFactory:  uowFactory,
		resequencer: resequencer,
		notifier:    notifier,
	}
}

func (h ChangeTaskStatusCommandHandler) Handle(ctx context.Context, cmd ChangeTaskStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taskRepo := uow.TaskRepository()

	t, err := lockTaskRoute(ctx, taskRepo, uow.DriverRepository(), cmd.TaskID())
	if err != nil {
		return err
	}

	driverID := t.DriverID()
	reroute := cmd.Target() == task.StatusCancelled && driverID != nil

	if err = t.TransitionTo(cmd.Target(), time.Now()); err != nil {
		return err
	}
	if err = taskRepo.Update(ctx, t); err != nil {
		return err
	}

	var updates []routeUpdate
	if reroute {
		routeSize, seqErr := h.resequencer.Resequence(ctx, taskRepo, *driverID, t.ScheduledDate())
		if seqErr != nil {
			return seqErr
		}
		updates = append(updates, routeUpdate{driverID: *driverID, routeSize: routeSize})
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.notify(ctx, updates...)
	return nil
}
