package services

import (
	"math"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/pkg/errs"
)

// ErrNoDriverAvailable is returned when no candidate survives filtering.
var ErrNoDriverAvailable = errs.NewInvalidOperationError("assign", "no driver available")

// ScoringConfig tunes DriverScorer.
type ScoringConfig struct {
	// WorkloadPenaltyKm is added to the anchor distance once per task the driver already has.
	WorkloadPenaltyKm float64

	// MaxDailyTasks excludes drivers whose task count for the day exceeds it. Zero disables the cap.
	MaxDailyTasks int

	// DefaultAnchorKm is the anchor distance of a driver with no stop that day and no known position.
	DefaultAnchorKm float64
}

// NearestScoring ranks drivers by anchor distance only.
func NearestScoring(defaultAnchorKm float64) ScoringConfig {
	return ScoringConfig{DefaultAnchorKm: defaultAnchorKm}
}

// BestScoring balances distance against workload and caps the day.
func BestScoring(workloadPenaltyKm float64, maxDailyTasks int, defaultAnchorKm float64) ScoringConfig {
	return ScoringConfig{
		WorkloadPenaltyKm: workloadPenaltyKm,
		MaxDailyTasks:     maxDailyTasks,
		DefaultAnchorKm:   defaultAnchorKm,
	}
}

// Candidate is a driver together with the tasks already assigned to it on the target date.
type Candidate struct {
	Driver   *driver.Driver
	DayTasks []*task.Task
}

// Score is the outcome of ranking one driver.
type Score struct {
	Driver   *driver.Driver
	AnchorKm float64
	Workload int
	Value    float64
}

// DriverScorer is a domain service that picks the driver best placed to take a task.
//
// For every available candidate:
//
//	anchor = distance(last stop of the day's route | current position | default, task)
//	score  = anchor + workload * WorkloadPenaltyKm
//
// A driver whose last stop has no coordinates has no known distance and is
// never selected. The lowest score wins; on a tie the candidate encountered
// first is kept.
//
// Example usage:
//
//	scorer := services.NewDriverScorer(services.BestScoring(2, 10, 10))
//	best, err := scorer.Select(t, candidates)
//	if errors.Is(err, services.ErrNoDriverAvailable) {
//	    // every driver is off shift or full
//	}
type DriverScorer struct {
	config ScoringConfig
}

func NewDriverScorer(config ScoringConfig) DriverScorer {
	return DriverScorer{config: config}
}

// Select returns the best scoring candidate for t.
//
// Returns:
//   - an invalid-operation error when t has no coordinates
//   - ErrNoDriverAvailable when every candidate is unavailable, over the cap or unscorable
func (s DriverScorer) Select(t *task.Task, candidates []Candidate) (Score, error) {
	if err := t.Validate(); err != nil {
		return Score{}, err
	}
	target := t.Location()
	if target == nil {
		return Score{}, errs.NewInvalidOperationError("score drivers", "task has no coordinates")
	}

	var (
		best      Score
		bestValue = math.MaxFloat64
		found     bool
	)

	for _, c := range candidates {
		if err := c.Driver.Validate(); err != nil {
			return Score{}, err
		}
		if !c.Driver.IsAvailable() {
			continue
		}

		route := ExcludeCancelled(c.DayTasks)
		workload := len(route)
		if s.config.MaxDailyTasks > 0 && workload > s.config.MaxDailyTasks {
			continue
		}

		anchorKm, ok := s.anchorDistance(c.Driver, route, *target)
		if !ok {
			continue
		}

		value := anchorKm + float64(workload)*s.config.WorkloadPenaltyKm
		if value < bestValue {
			bestValue = value
			best = Score{Driver: c.Driver, AnchorKm: anchorKm, Workload: workload, Value: value}
			found = true
		}
	}

	if !found {
		return Score{}, ErrNoDriverAvailable
	}

	return best, nil
}

func (s DriverScorer) anchorDistance(d *driver.Driver, route []*task.Task, target kernel.GeoPoint) (float64, bool) {
	if len(route) > 0 {
		ordered := OrderByRoute(route)
		last := ordered[len(ordered)-1].Location()
		if last == nil {
			return 0, false
		}
		return kernel.DistanceBetween(last, &target)
	}

	if loc := d.CurrentLocation(); loc != nil {
		return kernel.DistanceBetween(loc, &target)
	}

	if s.config.DefaultAnchorKm <= 0 || math.IsNaN(s.config.DefaultAnchorKm) {
		return 0, false
	}
	return s.config.DefaultAnchorKm, true
}
