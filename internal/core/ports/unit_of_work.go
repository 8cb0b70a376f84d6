package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command so concurrent operations
// never share a transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained after Begin are
// bound to the transaction; Commit or Rollback ends it.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	ShipmentRepository() ShipmentRepository
	TaskRepository() TaskRepository
	StationRepository() StationRepository
}
