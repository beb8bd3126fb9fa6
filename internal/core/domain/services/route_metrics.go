package services

import (
	"math"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
)

const (
	DefaultAverageSpeedKmh = 30.0
	DefaultDwellTime       = 15 * time.Minute
)

// RouteMetrics summarizes a driver's route for a day.
type RouteMetrics struct {
	TaskCount                int
	TotalDistanceKm          float64
	EstimatedDurationMinutes float64
}

// EstimatedHours rounds the duration to one decimal.
func (m RouteMetrics) EstimatedHours() float64 {
	return math.Round(m.EstimatedDurationMinutes/60*10) / 10
}

// RoundedDistanceKm rounds the distance to two decimals.
func (m RouteMetrics) RoundedDistanceKm() float64 {
	return math.Round(m.TotalDistanceKm*100) / 100
}

// RouteMetricsCalculator estimates distance and time of an ordered route.
type RouteMetricsCalculator struct {
	averageSpeedKmh float64
	dwell           time.Duration
}

func NewRouteMetricsCalculator(averageSpeedKmh float64, dwell time.Duration) RouteMetricsCalculator {
	return RouteMetricsCalculator{averageSpeedKmh: averageSpeedKmh, dwell: dwell}
}

// Calculate sums the legs between consecutive stops of route when both ends are
// geocoded, converts the distance to driving time and adds a fixed dwell per stop.
func (c RouteMetricsCalculator) Calculate(route []*task.Task) RouteMetrics {
	if len(route) == 0 {
		return RouteMetrics{}
	}

	var distance float64
	for i := 1; i < len(route); i++ {
		if d, ok := kernel.DistanceBetween(route[i-1].Location(), route[i].Location()); ok {
			distance += d
		}
	}

	return RouteMetrics{
		TaskCount:                len(route),
		TotalDistanceKm:          distance,
		EstimatedDurationMinutes: c.DrivingMinutes(distance) + c.dwell.Minutes()*float64(len(route)),
	}
}

// DrivingMinutes converts a distance to minutes at the average speed.
func (c RouteMetricsCalculator) DrivingMinutes(distanceKm float64) float64 {
	if c.averageSpeedKmh <= 0 {
		return 0
	}
	return distanceKm / c.averageSpeedKmh * 60
}

// TravelMinutes is DrivingMinutes rounded up to whole minutes.
func (c RouteMetricsCalculator) TravelMinutes(distanceKm float64) int {
	return int(math.Ceil(c.DrivingMinutes(distanceKm)))
}
