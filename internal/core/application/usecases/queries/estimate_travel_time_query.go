package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrEstimateTravelTimeQueryIsNotConstructed = errors.New(
	"EstimateTravelTimeQuery must be created via NewEstimateTravelTimeQuery constructor",
)

// EstimateTravelTimeQuery estimates the drive from a point to a task.
type EstimateTravelTimeQuery struct {
	taskID kernel.UUID
	from   kernel.GeoPoint

	guard guard.ConstructorGuard
}

func NewEstimateTravelTimeQuery(taskID kernel.UUID, from kernel.GeoPoint) (EstimateTravelTimeQuery, error) {
	if err := errors.Join(taskID.Validate(), from.Validate()); err != nil {
		return EstimateTravelTimeQuery{}, err
	}
	return EstimateTravelTimeQuery{taskID: taskID, from: from, guard: guard.NewConstructorGuard()}, nil
}

func (q EstimateTravelTimeQuery) Validate() error {
	return q.guard.Validate(ErrEstimateTravelTimeQueryIsNotConstructed)
}

type TravelEstimate struct {
	DistanceKm float64
	Minutes    int
}

type EstimateTravelTimeQueryHandler struct {
	tasks      TaskReader
	calculator services.RouteMetricsCalculator
}

func NewEstimateTravelTimeQueryHandler(tasks TaskReader, calculator services.RouteMetricsCalculator) EstimateTravelTimeQueryHandler {
	return EstimateTravelTimeQueryHandler{tasks: tasks, calculator: calculator}
}

func (h EstimateTravelTimeQueryHandler) Handle(ctx context.Context, q EstimateTravelTimeQuery) (TravelEstimate, error) {
	if err := q.Validate(); err != nil {
		return TravelEstimate{}, err
	}

	t, err := h.tasks.Get(ctx, q.taskID)
	if err != nil {
		return TravelEstimate{}, err
	}

	distance, ok := kernel.DistanceBetween(&q.from, t.Location())
	if !ok {
		return TravelEstimate{}, errs.NewInvalidOperationError("estimate travel time", "task has no coordinates")
	}

	return TravelEstimate{
		DistanceKm: distance,
		Minutes:    h.calculator.TravelMinutes(distance),
	}, nil
}
