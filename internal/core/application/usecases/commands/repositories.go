// Package commands contains business operations that modify dispatch state.
// Every command follows the same pattern: validation, one transaction, persistence.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces narrow the transaction to the repositories a handler needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	TaskRepoFactory interface {
		TaskRepository() ports.TaskRepository
	}

	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	ArticleRepoFactory interface {
		ArticleRepository() ports.ArticleRepository
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// ArticleUoW manages transactions for weighing operations.
	ArticleUoW interface {
		TxManager
		ArticleRepoFactory
	}

	ArticleUoWFactory interface {
		Create() ArticleUoW
	}

	// TaskUoW manages transactions that touch a single task and never move it
	// between routes (signature, photos).
	TaskUoW interface {
		TxManager
		TaskRepoFactory
	}

	TaskUoWFactory interface {
		Create() TaskUoW
	}

	// UoW spans every repository. Used by commands that create tasks or
	// rewrite a driver's route.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   d, err := uow.DriverRepository().GetForUpdate(ctx, driverID)
	//   tasks, err := uow.TaskRepository().ListByDriverAndDate(ctx, driverID, date)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		TaskRepoFactory
		DriverRepoFactory
		OrderRepoFactory
		AddressRepoFactory
		ArticleRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
