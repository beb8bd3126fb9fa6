// Package services provides the dispatch domain services.
//
// The package includes:
//   - DriverScorer: picks the driver for a task from distance to its route and its workload
//   - RouteOptimizer: orders a driver's daily stops (time-window buckets, nearest neighbour)
//   - RouteMetricsCalculator: distance and duration estimates of a persisted route
//   - OrderByRoute: the canonical order of a persisted route
//
// All services are pure: they never touch storage and never mutate sequence numbers.
package services
