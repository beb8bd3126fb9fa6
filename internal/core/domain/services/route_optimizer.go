package services

import (
	"math"
	"slices"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
)

// DefaultGracePeriod is how early a stop may start relative to the end of the previous one.
const DefaultGracePeriod = 30 * time.Minute

// RouteOptimizer orders one driver's daily stops with a time-window aware
// nearest-neighbour heuristic. It does not look for an optimal tour.
//
// Stops are split into three buckets visited in this order:
//  1. morning pickups: PICKUP whose window starts before 12:00
//  2. flexible: everything else
//  3. afternoon deliveries: DELIVERY whose window starts after 12:00
//
// Inside a bucket, stops are sorted by window start (missing last) then id. The
// first becomes the seed; the next stop is the nearest remaining one that can be
// visited after the current stop, or the first remaining stop when none can.
type RouteOptimizer struct {
	gracePeriod time.Duration
}

func NewRouteOptimizer(gracePeriod time.Duration) RouteOptimizer {
	return RouteOptimizer{gracePeriod: gracePeriod}
}

// Optimize returns the visiting order of the geocoded tasks and, separately, the
// tasks without coordinates, which cannot be routed. Sequence numbers are not touched.
func (o RouteOptimizer) Optimize(tasks []*task.Task) (routed []*task.Task, unrouted []*task.Task) {
	var morning, flexible, afternoon []*task.Task
	unrouted = make([]*task.Task, 0)

	for _, t := range tasks {
		if !t.HasCoordinates() {
			unrouted = append(unrouted, t)
			continue
		}

		from := t.Window().From()
		switch {
		case t.Kind() == task.KindPickup && from != nil && from.Before(kernel.Noon):
			morning = append(morning, t)
		case t.Kind() == task.KindDelivery && from != nil && from.After(kernel.Noon):
			afternoon = append(afternoon, t)
		default:
			flexible = append(flexible, t)
		}
	}

	routed = make([]*task.Task, 0, len(tasks)-len(unrouted))
	routed = append(routed, o.sequenceBucket(morning)...)
	routed = append(routed, o.sequenceBucket(flexible)...)
	routed = append(routed, o.sequenceBucket(afternoon)...)

	return routed, unrouted
}

func (o RouteOptimizer) sequenceBucket(bucket []*task.Task) []*task.Task {
	sorted := slices.Clone(bucket)
	slices.SortStableFunc(sorted, compareByAvailability)
	if len(sorted) <= 1 {
		return sorted
	}

	route := make([]*task.Task, 0, len(sorted))
	route = append(route, sorted[0])
	remaining := sorted[1:]

	for len(remaining) > 0 {
		current := route[len(route)-1]

		next := -1
		nearest := math.MaxFloat64
		for i, candidate := range remaining {
			if !o.canVisitAfter(current, candidate) {
				continue
			}
			d, _ := kernel.DistanceBetween(current.Location(), candidate.Location())
			if d < nearest {
				nearest = d
				next = i
			}
		}
		if next < 0 {
			next = 0
		}

		route = append(route, remaining[next])
		remaining = slices.Delete(slices.Clone(remaining), next, next+1)
	}

	return route
}

// canVisitAfter holds when next may start no earlier than grace before current ends.
// A missing bound on either side never blocks.
func (o RouteOptimizer) canVisitAfter(current, next *task.Task) bool {
	end := current.Window().To()
	start := next.Window().From()
	if end == nil || start == nil {
		return true
	}
	return float64(start.Minutes()) >= float64(end.Minutes())-o.gracePeriod.Minutes()
}
