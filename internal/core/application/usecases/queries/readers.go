// Package queries contains read operations over dispatch state.
// Queries never write; route previews are computed in memory only.
package queries

import (
	"context"

	"logistics/internal/core/domain/model/article"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/task"
)

// Readers are the read halves of the repositories queries depend on.
type (
	TaskReader interface {
		Get(ctx context.Context, id kernel.UUID) (*task.Task, error)
		ListByDriverAndDate(ctx context.Context, driverID kernel.UUID, date kernel.Date) ([]*task.Task, error)
		ListByDriver(ctx context.Context, driverID kernel.UUID) ([]*task.Task, error)
	}

	DriverReader interface {
		Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)
		GetAllAvailable(ctx context.Context) ([]*driver.Driver, error)
	}

	ArticleReader interface {
		ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*article.Article, error)
	}
)
