package commands

import (
	"context"
)

// ScheduleTaskCommandHandler reschedules a task. When the task already has a
// driver, both the day it leaves and the day it joins are resequenced.
type ScheduleTaskCommandHandler struct {
	uowFactory  UoWFactory
	resequencer RouteResequencer
	notifier    RouteNotifier
}

func NewScheduleTaskCommandHandler(
	uowFactory UoWFactory,
	resequencer RouteResequencer,
	notifier RouteNotifier,
) ScheduleTaskCommandHandler {
	return ScheduleTaskCommandHandler{
		uowFactory:  uowFactory,
		resequencer: resequencer,
		notifier:    notifier,
	}
}

func (h ScheduleTaskCommandHandler) Handle(ctx context.Context, cmd ScheduleTaskCommand) error {
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

	previousDate := t.ScheduledDate()
	if err = t.Schedule(cmd.Date(), cmd.Window()); err != nil {
		return err
	}
	if err = taskRepo.Update(ctx, t); err != nil {
		return err
	}

	var updates []routeUpdate
	if driverID != nil {
		routeSize, seqErr := h.resequencer.Resequence(ctx, taskRepo, *driverID, cmd.Date())
		if seqErr != nil {
			return seqErr
		}
		if !previousDate.Equal(cmd.Date()) {
			if _, seqErr = h.resequencer.Resequence(ctx, taskRepo, *driverID, previousDate); seqErr != nil {
				return seqErr
			}
		}
		updates = append(updates, routeUpdate{driverID: *driverID, routeSize: routeSize})
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.notify(ctx, updates...)
	return nil
}
