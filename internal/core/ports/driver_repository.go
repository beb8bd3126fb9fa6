package ports

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	Add(ctx context.Context, d *driver.Driver) error
	Update(ctx context.Context, d *driver.Driver) error
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetForUpdate loads the driver and holds a row lock on it until the
	// surrounding transaction ends. Assignments to the same driver are
	// serialized through this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAllAvailable returns drivers flagged as available, ordered by name then id.
	GetAllAvailable(ctx context.Context) ([]*driver.Driver, error)
}
