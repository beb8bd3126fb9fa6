// Package task implements the Task aggregate: a pickup or delivery stop scheduled on a
// given day, optionally assigned to a driver and positioned in that driver's route.
//
// The package includes:
//   - Task: identity, schedule, address, assignment, route position and capture data
//   - Status: the guarded lifecycle Pending -> InProgress -> Completed, with Cancelled
//     reachable from Pending or InProgress
//   - Kind: Pickup or Delivery
//
// Tasks are never deleted; cancellation is terminal.
package task
