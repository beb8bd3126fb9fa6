package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// It returns an error when no transaction is active, which deferred
	// cleanup after a successful Commit ignores.
	Rollback(ctx context.Context) error

	// Repositories returned below are bound to the transaction started by Begin.
	TaskRepository() TaskRepository
	DriverRepository() DriverRepository
	OrderRepository() OrderRepository
	AddressRepository() AddressRepository
	ArticleRepository() ArticleRepository
}
