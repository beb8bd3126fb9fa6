package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrDriverRouteQueryIsNotConstructed = errors.New(
	"DriverRouteQuery must be created via NewDriverRouteQuery constructor",
)

// DriverRouteQuery addresses one driver's route on one day. It is shared by the
// current-route, preview and metrics handlers.
type DriverRouteQuery struct {
	driverID kernel.UUID
	date     kernel.Date

	guard guard.ConstructorGuard
}

func NewDriverRouteQuery(driverID kernel.UUID, date kernel.Date) (DriverRouteQuery, error) {
	if err := driverID.Validate(); err != nil {
		return DriverRouteQuery{}, err
	}
	if date.IsZero() {
		return DriverRouteQuery{}, errs.NewValueIsRequiredError("date")
	}
	return DriverRouteQuery{driverID: driverID, date: date, guard: guard.NewConstructorGuard()}, nil
}

func (q DriverRouteQuery) Validate() error {
	return q.guard.Validate(ErrDriverRouteQueryIsNotConstructed)
}

func (q DriverRouteQuery) DriverID() kernel.UUID {
	return q.driverID
}

func (q DriverRouteQuery) Date() kernel.Date {
	return q.date
}

// Route is a driver's stops for a day in visiting order. Unrouted holds the
// active tasks that cannot be placed because they have no coordinates; it is
// only filled by previews.
type Route struct {
	DriverID kernel.UUID
	Date     kernel.Date
	Stops    []*task.Task
	Unrouted []*task.Task
}

// RouteMetricsView is a route summary for a driver's day.
type RouteMetricsView struct {
	DriverID kernel.UUID
	Date     kernel.Date
	services.RouteMetrics
}

// RouteQueryHandler serves persisted routes, previews and metrics.
//
// Example:
//
//	handler := NewRouteQueryHandler(taskRepo, driverRepo, optimizer, calculator)
//	q, _ := NewDriverRouteQuery(driverID, date)
//	route, err := handler.CurrentRoute(ctx, q)
type RouteQueryHandler struct {
	tasks      TaskReader
	drivers    DriverReader
	optimizer  services.RouteOptimizer
	calculator services.RouteMetricsCalculator
}

func NewRouteQueryHandler(
	tasks TaskReader,
	drivers DriverReader,
	optimizer services.RouteOptimizer,
	calculator services.RouteMetricsCalculator,
) RouteQueryHandler {
	return RouteQueryHandler{
		tasks:      tasks,
		drivers:    drivers,
		optimizer:  optimizer,
		calculator: calculator,
	}
}

// CurrentRoute returns the active tasks in persisted order. Nothing is recomputed.
func (h RouteQueryHandler) CurrentRoute(ctx context.Context, q DriverRouteQuery) (Route, error) {
	active, err := h.activeTasks(ctx, q)
	if err != nil {
		return Route{}, err
	}

	return Route{
		DriverID: q.DriverID(),
		Date:     q.Date(),
		Stops:    services.OrderByRoute(active),
		Unrouted: []*task.Task{},
	}, nil
}

// Preview runs the optimizer over the day without persisting anything.
func (h RouteQueryHandler) Preview(ctx context.Context, q DriverRouteQuery) (Route, error) {
	active, err := h.activeTasks(ctx, q)
	if err != nil {
		return Route{}, err
	}

	routed, unrouted := h.optimizer.Optimize(active)
	return Route{
		DriverID: q.DriverID(),
		Date:     q.Date(),
		Stops:    routed,
		Unrouted: unrouted,
	}, nil
}

// Metrics summarizes the persisted route.
func (h RouteQueryHandler) Metrics(ctx context.Context, q DriverRouteQuery) (RouteMetricsView, error) {
	route, err := h.CurrentRoute(ctx, q)
	if err != nil {
		return RouteMetricsView{}, err
	}

	return RouteMetricsView{
		DriverID:     q.DriverID(),
		Date:         q.Date(),
		RouteMetrics: h.calculator.Calculate(route.Stops),
	}, nil
}

func (h RouteQueryHandler) activeTasks(ctx context.Context, q DriverRouteQuery) ([]*task.Task, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.drivers.Get(ctx, q.DriverID()); err != nil {
		return nil, err
	}

	tasks, err := h.tasks.ListByDriverAndDate(ctx, q.DriverID(), q.Date())
	if err != nil {
		return nil, err
	}
	return services.ExcludeCancelled(tasks), nil
}
