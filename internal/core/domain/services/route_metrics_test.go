package services_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestRouteMetricsCalculator_Calculate(t *testing.T) {
	calc := services.NewRouteMetricsCalculator(services.DefaultAverageSpeedKmh, services.DefaultDwellTime)

	t.Run("empty_route", func(t *testing.T) {
		assert.Equal(t, services.RouteMetrics{}, calc.Calculate(nil))
	})

	t.Run("two_stops", func(t *testing.T) {
		a := geoStop(t, 0, 0)
		b := geoStop(t, 0, 1)

		m := calc.Calculate([]*task.Task{a, b})

		d := kernel.DistanceKm(0, 0, 0, 1)
		assert.Equal(t, 2, m.TaskCount)
		assert.InDelta(t, d, m.TotalDistanceKm, 1e-9)
		assert.InDelta(t, d/30*60+30, m.EstimatedDurationMinutes, 1e-9)
		assert.InDelta(t, 111.2, m.RoundedDistanceKm(), 1e-9)
		assert.InDelta(t, 4.2, m.EstimatedHours(), 1e-9)
	})

	t.Run("legs_with_unknown_end_are_omitted", func(t *testing.T) {
		a := geoStop(t, 0, 0)
		missing := newStop(t, stop{})
		b := geoStop(t, 0, 1)

		m := calc.Calculate([]*task.Task{a, missing, b})

		assert.Equal(t, 3, m.TaskCount)
		assert.InDelta(t, 0.0, m.TotalDistanceKm, 1e-9)
		assert.InDelta(t, 45.0, m.EstimatedDurationMinutes, 1e-9)
	})
}

func TestRouteMetricsCalculator_TravelMinutes(t *testing.T) {
	calc := services.NewRouteMetricsCalculator(30, services.DefaultDwellTime)

	assert.Equal(t, 0, calc.TravelMinutes(0))
	assert.Equal(t, 20, calc.TravelMinutes(10))
	assert.Equal(t, 21, calc.TravelMinutes(10.1))
}

func TestOrderByRoute(t *testing.T) {
	second := newStop(t, stop{seq: 2})
	first := newStop(t, stop{seq: 1})
	loose := newStop(t, stop{from: "08:00"})
	looseNoWindow := newStop(t, stop{})

	ordered := services.OrderByRoute([]*task.Task{looseNoWindow, second, loose, first})

	assert.Equal(t, ids([]*task.Task{first, second, loose, looseNoWindow}), ids(ordered))
}
