package queries

import (
	"cmp"
	"context"
	"errors"
	"slices"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/guard"
)

var ErrGetDriverTasksQueryIsNotConstructed = errors.New(
	"GetDriverTasksQuery must be created via NewGetDriverTasksQuery constructor",
)

// GetDriverTasksQuery lists a driver's tasks, optionally restricted to one date.
type GetDriverTasksQuery struct {
	driverID kernel.UUID
	date     *kernel.Date

	guard guard.ConstructorGuard
}

// NewGetDriverTasksQuery builds the query; a nil date lists every day.
func NewGetDriverTasksQuery(driverID kernel.UUID, date *kernel.Date) (GetDriverTasksQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverTasksQuery{}, err
	}

	q := GetDriverTasksQuery{driverID: driverID, guard: guard.NewConstructorGuard()}
	if date != nil {
		d := *date
		q.date = &d
	}
	return q, nil
}

func (q GetDriverTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverTasksQueryIsNotConstructed)
}

type GetDriverTasksQueryHandler struct {
	tasks   TaskReader
	drivers DriverReader
}

func NewGetDriverTasksQueryHandler(tasks TaskReader, drivers DriverReader) GetDriverTasksQueryHandler {
	return GetDriverTasksQueryHandler{tasks: tasks, drivers: drivers}
}

// Handle returns tasks grouped by date (oldest first) and in route order within a day.
func (h GetDriverTasksQueryHandler) Handle(ctx context.Context, q GetDriverTasksQuery) ([]*task.Task, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.drivers.Get(ctx, q.driverID); err != nil {
		return nil, err
	}

	if q.date != nil {
		tasks, err := h.tasks.ListByDriverAndDate(ctx, q.driverID, *q.date)
		if err != nil {
			return nil, err
		}
		return services.OrderByRoute(tasks), nil
	}

	tasks, err := h.tasks.ListByDriver(ctx, q.driverID)
	if err != nil {
		return nil, err
	}

	ordered := services.OrderByRoute(tasks)
	slices.SortStableFunc(ordered, func(a, b *task.Task) int {
		return cmp.Compare(a.ScheduledDate().String(), b.ScheduledDate().String())
	})
	return ordered, nil
}
