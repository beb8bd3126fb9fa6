// Package ports defines the contracts between the dispatch core and its
// infrastructure: persistence, geocoding and driver notifications.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
)

// TaskRepository defines the persistence contract for task aggregates.
type TaskRepository interface {
	// Add persists a new task.
	Add(ctx context.Context, t *task.Task) error

	// Update persists changes to an existing task, including its sequence
	// number and photo collection.
	Update(ctx context.Context, t *task.Task) error

	// Get returns the task with the given id or an ObjectNotFound error.
	Get(ctx context.Context, id kernel.UUID) (*task.Task, error)

	// GetForUpdate is Get with a row lock held until the surrounding
	// transaction ends. Handlers that write a task load it through here so a
	// concurrent writer cannot overwrite the driver or sequence with a stale copy.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*task.Task, error)

	// ListByDriverAndDate returns every task assigned to the driver on the date,
	// cancelled ones included. Order is unspecified.
	ListByDriverAndDate(ctx context.Context, driverID kernel.UUID, date kernel.Date) ([]*task.Task, error)

	// ListByDriver returns every task ever assigned to the driver, oldest date first.
	ListByDriver(ctx context.Context, driverID kernel.UUID) ([]*task.Task, error)

	// ListPending returns PENDING tasks ordered by scheduled date.
	ListPending(ctx context.Context) ([]*task.Task, error)

	// ListUnassigned returns PENDING tasks scheduled on the date with no driver.
	ListUnassigned(ctx context.Context, date kernel.Date) ([]*task.Task, error)

	// ListMissingCoordinates returns up to limit non-terminal tasks whose
	// address has no coordinates.
	ListMissingCoordinates(ctx context.Context, limit int) ([]*task.Task, error)
}
