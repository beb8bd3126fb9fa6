package services_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverScorer_Select(t *testing.T) {
	best := services.NewDriverScorer(services.BestScoring(2, 10, 10))
	nearest := services.NewDriverScorer(services.NearestScoring(10))

	target := geoStop(t, 36.80, 10.18)

	t.Run("task_without_coordinates_is_rejected", func(t *testing.T) {
		d := newDriver(t, "Karim", nil)

		_, err := best.Select(newStop(t, stop{}), []services.Candidate{{Driver: d}})

		require.ErrorIs(t, err, errs.ErrInvalidOperation)
		assert.NotErrorIs(t, err, services.ErrNoDriverAvailable)
	})

	t.Run("no_candidates", func(t *testing.T) {
		_, err := best.Select(target, nil)

		require.ErrorIs(t, err, services.ErrNoDriverAvailable)
		require.ErrorIs(t, err, errs.ErrInvalidOperation)
	})

	t.Run("unavailable_driver_is_skipped", func(t *testing.T) {
		off := newDriver(t, "Off", nil)
		off.SetAvailability(false)
		on := newDriver(t, "On", nil)

		got, err := best.Select(target, []services.Candidate{{Driver: off}, {Driver: on}})

		require.NoError(t, err)
		assert.True(t, got.Driver.IsEqual(on))
	})

	t.Run("anchor_is_last_stop_of_route", func(t *testing.T) {
		// driver A sits on the task but its last stop is far away; driver B's last stop is close
		onTop, _ := kernel.NewGeoPoint(36.80, 10.18)
		a := newDriver(t, "A", &onTop)
		aRoute := []*task.Task{newStop(t, stop{lat: ptr(36.80), lon: ptr(10.18), seq: 1}), newStop(t, stop{lat: ptr(37.20), lon: ptr(10.90), seq: 2})}
		b := newDriver(t, "B", nil)
		bRoute := []*task.Task{newStop(t, stop{lat: ptr(36.81), lon: ptr(10.18), seq: 1})}

		got, err := nearest.Select(target, []services.Candidate{{Driver: a, DayTasks: aRoute}, {Driver: b, DayTasks: bRoute}})

		require.NoError(t, err)
		assert.True(t, got.Driver.IsEqual(b))
		assert.Equal(t, 1, got.Workload)
		assert.InDelta(t, 1.11, got.AnchorKm, 0.01)
	})

	t.Run("ungeocoded_last_stop_is_never_selected", func(t *testing.T) {
		onTop, _ := kernel.NewGeoPoint(36.80, 10.18)
		a := newDriver(t, "A", &onTop)
		aRoute := []*task.Task{newStop(t, stop{lat: ptr(36.80), lon: ptr(10.18), seq: 1}), newStop(t, stop{})}
		farPoint, _ := kernel.NewGeoPoint(36.85, 10.18)
		b := newDriver(t, "B", &farPoint)

		got, err := nearest.Select(target, []services.Candidate{{Driver: a, DayTasks: aRoute}, {Driver: b}})
		require.NoError(t, err)
		assert.True(t, got.Driver.IsEqual(b))

		_, err = nearest.Select(target, []services.Candidate{{Driver: a, DayTasks: aRoute}})
		require.ErrorIs(t, err, services.ErrNoDriverAvailable)
	})

	t.Run("current_location_then_default_distance", func(t *testing.T) {
		// 0.1 deg of latitude is ~11.1 km, beyond the 10 km default
		farPoint, _ := kernel.NewGeoPoint(36.90, 10.18)
		located := newDriver(t, "Located", &farPoint)
		unknown := newDriver(t, "Unknown", nil)

		got, err := nearest.Select(target, []services.Candidate{{Driver: located}, {Driver: unknown}})

		require.NoError(t, err)
		assert.True(t, got.Driver.IsEqual(unknown))
		assert.InDelta(t, 10.0, got.Value, 1e-9)
	})

	t.Run("workload_penalty_applies_in_best_mode_only", func(t *testing.T) {
		near, _ := kernel.NewGeoPoint(36.80, 10.18)
		busy := newDriver(t, "Busy", &near)
		busyRoute := make([]*task.Task, 0, 6)
		for range 6 {
			busyRoute = append(busyRoute, newStop(t, stop{lat: ptr(36.80), lon: ptr(10.18)}))
		}
		idle := newDriver(t, "Idle", nil)
		candidates := []services.Candidate{{Driver: busy, DayTasks: busyRoute}, {Driver: idle}}

		gotNearest, err := nearest.Select(target, candidates)
		require.NoError(t, err)
		assert.True(t, gotNearest.Driver.IsEqual(busy))

		gotBest, err := best.Select(target, candidates)
		require.NoError(t, err)
		assert.True(t, gotBest.Driver.IsEqual(idle))
	})

	t.Run("cap_excludes_overloaded_driver", func(t *testing.T) {
		near, _ := kernel.NewGeoPoint(36.80, 10.18)
		full := newDriver(t, "Full", &near)
		route := make([]*task.Task, 0, 11)
		for range 11 {
			route = append(route, newStop(t, stop{lat: ptr(36.80), lon: ptr(10.18)}))
		}

		_, err := best.Select(target, []services.Candidate{{Driver: full, DayTasks: route}})
		require.ErrorIs(t, err, services.ErrNoDriverAvailable)

		got, err := best.Select(target, []services.Candidate{{Driver: full, DayTasks: route[:10]}})
		require.NoError(t, err)
		assert.True(t, got.Driver.IsEqual(full))
	})

	t.Run("cancelled_tasks_do_not_count", func(t *testing.T) {
		d := newDriver(t, "Karim", nil)
		cancelled := newStop(t, stop{})
		require.NoError(t, cancelled.Cancel(cancelled.CreatedAt()))

		got, err := best.Select(target, []services.Candidate{{Driver: d, DayTasks: []*task.Task{cancelled}}})

		require.NoError(t, err)
		assert.Equal(t, 0, got.Workload)
	})

	t.Run("tie_goes_to_first_candidate", func(t *testing.T) {
		first := newDriver(t, "First", nil)
		second := newDriver(t, "Second", nil)

		got, err := best.Select(target, []services.Candidate{{Driver: first}, {Driver: second}})
		require.NoError(t, err)
		assert.True(t, got.Driver.IsEqual(first))

		got, err = best.Select(target, []services.Candidate{{Driver: second}, {Driver: first}})
		require.NoError(t, err)
		assert.True(t, got.Driver.IsEqual(second))
	})
}
