package services_test

import (
	"testing"

	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteOptimizer_Optimize(t *testing.T) {
	optimizer := services.NewRouteOptimizer(services.DefaultGracePeriod)

	t.Run("empty_input", func(t *testing.T) {
		routed, unrouted := optimizer.Optimize(nil)

		assert.Empty(t, routed)
		assert.Empty(t, unrouted)
	})

	t.Run("ungeocoded_tasks_are_never_routed", func(t *testing.T) {
		a := geoStop(t, 36.80, 10.18)
		missing := newStop(t, stop{})

		routed, unrouted := optimizer.Optimize([]*task.Task{missing, a})

		assert.Equal(t, ids([]*task.Task{a}), ids(routed))
		assert.Equal(t, ids([]*task.Task{missing}), ids(unrouted))
	})

	t.Run("buckets_are_ordered_morning_flexible_afternoon", func(t *testing.T) {
		la, lo := coords(36.80, 10.18)
		afternoonDelivery := newStop(t, stop{kind: task.KindDelivery, lat: la, lon: lo, from: "14:00", to: "16:00"})
		flexibleDelivery := newStop(t, stop{kind: task.KindDelivery, lat: la, lon: lo, from: "09:00", to: "10:00"})
		morningPickup := newStop(t, stop{kind: task.KindPickup, lat: la, lon: lo, from: "08:00", to: "10:00"})
		noonDelivery := newStop(t, stop{kind: task.KindDelivery, lat: la, lon: lo, from: "12:00"})

		routed, _ := optimizer.Optimize([]*task.Task{afternoonDelivery, noonDelivery, flexibleDelivery, morningPickup})

		require.Len(t, routed, 4)
		assert.Equal(t, morningPickup.ID(), routed[0].ID())
		assert.Equal(t, afternoonDelivery.ID(), routed[3].ID())
		assert.ElementsMatch(t,
			ids([]*task.Task{flexibleDelivery, noonDelivery}),
			ids(routed[1:3]))
	})

	t.Run("nearest_neighbour_from_earliest_seed", func(t *testing.T) {
		// seed has the earliest window; c is nearer to the seed than b
		aLat, aLon := coords(36.80, 10.18)
		seed := newStop(t, stop{lat: aLat, lon: aLon, from: "13:00"})
		far := newStop(t, stop{lat: ptr(36.90), lon: ptr(10.30), from: "13:30"})
		near := newStop(t, stop{lat: ptr(36.81), lon: ptr(10.19), from: "14:00"})

		routed, _ := optimizer.Optimize([]*task.Task{far, near, seed})

		assert.Equal(t, ids([]*task.Task{seed, near, far}), ids(routed))
	})

	t.Run("time_infeasible_neighbour_is_skipped", func(t *testing.T) {
		seed := newStop(t, stop{lat: ptr(36.80), lon: ptr(10.18), from: "13:00", to: "16:00"})
		// starts more than 30 minutes before the seed ends
		tooEarly := newStop(t, stop{lat: ptr(36.801), lon: ptr(10.181), from: "13:10"})
		later := newStop(t, stop{lat: ptr(36.95), lon: ptr(10.40), from: "15:45"})

		routed, _ := optimizer.Optimize([]*task.Task{seed, tooEarly, later})

		assert.Equal(t, ids([]*task.Task{seed, later, tooEarly}), ids(routed))
	})

	t.Run("falls_back_to_first_remaining_when_nothing_feasible", func(t *testing.T) {
		seed := newStop(t, stop{lat: ptr(36.80), lon: ptr(10.18), from: "13:00", to: "18:00"})
		b := newStop(t, stop{lat: ptr(36.90), lon: ptr(10.30), from: "13:10"})
		c := newStop(t, stop{lat: ptr(36.81), lon: ptr(10.19), from: "13:20"})

		routed, _ := optimizer.Optimize([]*task.Task{c, b, seed})

		assert.Equal(t, ids([]*task.Task{seed, b, c}), ids(routed))
	})

	t.Run("deterministic_for_identical_input", func(t *testing.T) {
		tasks := []*task.Task{
			geoStop(t, 36.80, 10.18),
			geoStop(t, 36.82, 10.20),
			geoStop(t, 36.85, 10.25),
			geoStop(t, 36.79, 10.17),
		}

		first, _ := optimizer.Optimize(tasks)
		second, _ := optimizer.Optimize([]*task.Task{tasks[3], tasks[1], tasks[0], tasks[2]})

		assert.Equal(t, ids(first), ids(second))
	})

	t.Run("does_not_touch_sequence_numbers", func(t *testing.T) {
		la, lo := coords(36.80, 10.18)
		tk := newStop(t, stop{lat: la, lon: lo, seq: 7})

		optimizer.Optimize([]*task.Task{tk})

		assert.Equal(t, 7, *tk.Sequence())
	})
}

func ptr(f float64) *float64 {
	return &f
}
