package commands

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strconv"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// RouteResequencer recomputes a driver's daily route and persists the new
// sequence numbers. It must run inside the caller's transaction, after the
// driver row has been locked.
type RouteResequencer struct {
	optimizer services.RouteOptimizer
}

func NewRouteResequencer(optimizer services.RouteOptimizer) RouteResequencer {
	return RouteResequencer{optimizer: optimizer}
}

// Resequence numbers the driver's routable tasks on date 1..N, clears the
// number of cancelled and ungeocoded tasks and returns how many active tasks
// the driver has that day. Only tasks whose number changed are written.
func (r RouteResequencer) Resequence(
	ctx context.Context,
	repo ports.TaskRepository,
	driverID kernel.UUID,
	date kernel.Date,
) (int, error) {
	tasks, err := repo.ListByDriverAndDate(ctx, driverID, date)
	if err != nil {
		return 0, err
	}

	changed := make([]*task.Task, 0)
	for _, t := range tasks {
		if t.Status() == task.StatusCancelled && t.Sequence() != nil {
			t.ClearSequence()
			changed = append(changed, t)
		}
	}

	active := services.ExcludeCancelled(tasks)
	routed, unrouted := r.optimizer.Optimize(active)

	for i, t := range routed {
		if seq := t.Sequence(); seq != nil && *seq == i+1 {
			continue
		}
		if err = t.SetSequence(i + 1); err != nil {
			return 0, err
		}
		changed = append(changed, t)
	}
	for _, t := range unrouted {
		if t.Sequence() != nil {
			t.ClearSequence()
			changed = append(changed, t)
		}
	}

	// Capture writes hold only the task row, so the listed copy may be stale:
	// carry the new number over to a locked re-read.
	for _, t := range changed {
		fresh, getErr := repo.GetForUpdate(ctx, t.ID())
		if getErr != nil {
			return 0, getErr
		}
		if seq := t.Sequence(); seq != nil {
			if err = fresh.SetSequence(*seq); err != nil {
				return 0, err
			}
		} else {
			fresh.ClearSequence()
		}
		if err = repo.Update(ctx, fresh); err != nil {
			return 0, err
		}
	}

	return len(active), nil
}

// lockDrivers takes row locks on every distinct driver in a stable order so
// that two transactions touching the same pair of drivers cannot deadlock.
func lockDrivers(ctx context.Context, repo ports.DriverRepository, ids ...kernel.UUID) (map[kernel.UUID]*driver.Driver, error) {
	sorted := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		if !slices.ContainsFunc(sorted, id.IsEqual) {
			sorted = append(sorted, id)
		}
	}
	slices.SortFunc(sorted, func(a, b kernel.UUID) int {
		return cmp.Compare(a.String(), b.String())
	})

	locked := make(map[kernel.UUID]*driver.Driver, len(sorted))
	for _, id := range sorted {
		d, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		locked[id] = d
	}
	return locked, nil
}

// reloadLocked re-reads the task under a row lock once the drivers are locked.
// Drivers are always locked before tasks. A task moved to a driver outside the
// locked set in the meantime is reported as a conflict.
func reloadLocked(
	ctx context.Context,
	repo ports.TaskRepository,
	taskID kernel.UUID,
	locked map[kernel.UUID]*driver.Driver,
) (*task.Task, error) {
	t, err := repo.GetForUpdate(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if current := t.DriverID(); current != nil {
		if _, ok := locked[*current]; !ok {
			return nil, errs.NewInvalidOperationError("update task", "task was reassigned concurrently, retry")
		}
	}
	return t, nil
}

// lockTaskRoute locks the driver currently holding the task, if any, and then
// the task row itself.
func lockTaskRoute(ctx context.Context, tasks ports.TaskRepository, drivers ports.DriverRepository, taskID kernel.UUID) (*task.Task, error) {
	t, err := tasks.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}

	var ids []kernel.UUID
	if driverID := t.DriverID(); driverID != nil {
		ids = append(ids, *driverID)
	}
	locked, err := lockDrivers(ctx, drivers, ids...)
	if err != nil {
		return nil, err
	}
	return reloadLocked(ctx, tasks, taskID, locked)
}

// routeUpdate is a notification owed to a driver once the transaction commits.
type routeUpdate struct {
	driverID  kernel.UUID
	routeSize int
}

// RouteNotifier tells drivers their route changed. Delivery failures are
// logged and never returned.
type RouteNotifier struct {
	sender ports.NotificationSender
	logger *slog.Logger
}

func NewRouteNotifier(sender ports.NotificationSender, logger *slog.Logger) RouteNotifier {
	return RouteNotifier{sender: sender, logger: logger.With("component", "route_notifier")}
}

func (n RouteNotifier) notify(ctx context.Context, updates ...routeUpdate) {
	if n.sender == nil {
		return
	}
	for _, u := range updates {
		message := RouteUpdatedMessage(u.routeSize)
		if err := n.sender.NotifyDriver(ctx, u.driverID, message); err != nil {
			n.logger.WarnContext(ctx, "failed to notify driver",
				"driver_id", u.driverID.String(),
				"error", err,
			)
		}
	}
}

// RouteUpdatedMessage is the text pushed to a driver after their route changes.
func RouteUpdatedMessage(routeSize int) string {
	if routeSize == 1 {
		return "Route updated: you now have 1 task"
	}
	return "Route updated: you now have " + strconv.Itoa(routeSize) + " tasks"
}
