package ports

import (
	"context"
)

// UnitOfWorkFactory creates independent units of work; each call starts with no open transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes order reads and writes to one transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit and Rollback fail when no transaction is open, including after a previous
	// Commit or Rollback.
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// OrderRepository runs inside the transaction opened by Begin, or directly against the
	// pool when none is open.
	OrderRepository() OrderRepository
}
