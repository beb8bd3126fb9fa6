package commands

import (
	"context"
	"errors"
	"log/slog"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/guard"
)

var ErrGeocodeTaskCommandIsNotConstructed = errors.New(
	"GeocodeTaskCommand must be created via NewGeocodeTaskCommand constructor",
)

// GeocodeTaskCommand resolves coordinates for a task's address.
type GeocodeTaskCommand struct {
	taskID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGeocodeTaskCommand(taskID kernel.UUID) (GeocodeTaskCommand, error) {
	if err := taskID.Validate(); err != nil {
		return GeocodeTaskCommand{}, err
	}
	return GeocodeTaskCommand{taskID: taskID, guard: guard.NewConstructorGuard()}, nil
}

func (c GeocodeTaskCommand) Validate() error {
	return c.guard.Validate(ErrGeocodeTaskCommandIsNotConstructed)
}

func (c GeocodeTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// GeocodeTaskCommandHandler asks the geocoding provider for the task address
// and stores the result on the task and on the address record it references.
//
// A task that already has coordinates keeps them and the provider is not
// asked. The provider is called outside the transaction. A miss leaves the task
// untouched and returns a nil point. When the task is on a route, the route
// is resequenced since the task may have just become routable.
type GeocodeTaskCommandHandler struct {
	uowFactory  UoWFactory
	geocoder    ports.GeocodingClient
	resequencer RouteResequencer
	notifier    RouteNotifier
	logger      *slog.Logger
}

func NewGeocodeTaskCommandHandler(
	uowFactory UoWFactory,
	geocoder ports.GeocodingClient,
	resequencer RouteResequencer,
	notifier RouteNotifier,
	logger *slog.Logger,
) GeocodeTaskCommandHandler {
	return GeocodeTaskCommandHandler{
		uowFactory:  uowFactory,
		geocoder:    geocoder,
		resequencer: resequencer,
		notifier:    notifier,
		logger:      logger.With("component", "geocode_task"),
	}
}

func (h GeocodeTaskCommandHandler) Handle(ctx context.Context, cmd GeocodeTaskCommand) (*kernel.GeoPoint, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()

	current, err := uow.TaskRepository().Get(ctx, cmd.TaskID())
	if err != nil {
		return nil, err
	}
	if current.HasCoordinates() {
		return current.Location(), nil
	}

	point, err := h.geocoder.Resolve(ctx, current.Address().Street())
	if err != nil {
		return nil, err
	}
	if point == nil {
		h.logger.InfoContext(ctx, "no geocoding match", "task_id", cmd.TaskID().String())
		return nil, nil
	}

	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taskRepo := uow.TaskRepository()

	t, err := lockTaskRoute(ctx, taskRepo, uow.DriverRepository(), cmd.TaskID())
	if err != nil {
		return nil, err
	}
	// Geocoded by someone else while the provider was being asked.
	if t.HasCoordinates() {
		return t.Location(), nil
	}

	driverID := t.DriverID()

	if err = t.Geocode(*point); err != nil {
		return nil, err
	}
	if err = taskRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	if addressID := t.AddressID(); addressID != nil {
		addressRepo := uow.AddressRepository()
		stored, getErr := addressRepo.Get(ctx, *addressID)
		if getErr != nil {
			return nil, getErr
		}
		if err = stored.Geocode(*point); err != nil {
			return nil, err
		}
		if err = addressRepo.Update(ctx, stored); err != nil {
			return nil, err
		}
	}

	var updates []routeUpdate
	if driverID != nil && !t.Status().IsTerminal() {
		routeSize, seqErr := h.resequencer.Resequence(ctx, taskRepo, *driverID, t.ScheduledDate())
		if seqErr != nil {
			return nil, seqErr
		}
		updates = append(updates, routeUpdate{driverID: *driverID, routeSize: routeSize})
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.notify(ctx, updates...)
	return point, nil
}
