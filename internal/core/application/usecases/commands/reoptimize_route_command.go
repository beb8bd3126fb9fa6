package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrReoptimizeRouteCommandIsNotConstructed = errors.New(
	"ReoptimizeRouteCommand must be created via NewReoptimizeRouteCommand constructor",
)

// ReoptimizeRouteCommand recomputes and persists a driver's route for a day.
type ReoptimizeRouteCommand struct {
	driverID kernel.UUID
	date     kernel.Date

	guard guard.ConstructorGuard
}

func NewReoptimizeRouteCommand(driverID kernel.UUID, date kernel.Date) (ReoptimizeRouteCommand, error) {
	if err := errors.Join(driverID.Validate(), validateDate(date)); err != nil {
		return ReoptimizeRouteCommand{}, err
	}
	return ReoptimizeRouteCommand{driverID: driverID, date: date, guard: guard.NewConstructorGuard()}, nil
}

func (c ReoptimizeRouteCommand) Validate() error {
	return c.guard.Validate(ErrReoptimizeRouteCommandIsNotConstructed)
}

func (c ReoptimizeRouteCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c ReoptimizeRouteCommand) Date() kernel.Date {
	return c.date
}

type ReoptimizeRouteCommandHandler struct {
	uowFactory  UoWFactory
	resequencer RouteResequencer
	notifier    RouteNotifier
}

func NewReoptimizeRouteCommandHandler(
	uowFactory UoWFactory,
	resequencer RouteResequencer,
	notifier RouteNotifier,
) ReoptimizeRouteCommandHandler {
	return ReoptimizeRouteCommandHandler{
		uowFactory:  uowFactory,
		resequencer: resequencer,
		notifier:    notifier,
	}
}

// Handle returns the number of active tasks on the route.
func (h ReoptimizeRouteCommandHandler) Handle(ctx context.Context, cmd ReoptimizeRouteCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := lockDrivers(ctx, uow.DriverRepository(), cmd.DriverID()); err != nil {
		return 0, err
	}

	routeSize, err := h.resequencer.Resequence(ctx, uow.TaskRepository(), cmd.DriverID(), cmd.Date())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.notifier.notify(ctx, routeUpdate{driverID: cmd.DriverID(), routeSize: routeSize})
	return routeSize, nil
}
