package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command so concurrent
// requests never share a transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork spans one database transaction. Callers Begin, defer Rollback
// and Commit on success. Rollback after Commit returns an error that the
// deferred call ignores.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit and Rollback fail when no transaction is open.
	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	// Repositories share the transaction opened by Begin. Outside a
	// transaction they work directly on the connection pool.
	CartRepository() CartRepository
	OrderRepository() OrderRepository
	MenuRepository() MenuRepository
	UserDirectory() UserDirectory
}
