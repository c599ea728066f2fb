// Package commands holds the write side of order management: creating, updating,
// deleting and seeding orders. Every handler validates its command first and only
// then opens a unit of work, so rejected input never touches the store.
package commands

import (
	"context"

	"pedidofacil/internal/core/ports"
)

// TxManager is the transaction half of a unit of work.
type TxManager interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// OrderUoW gives a handler an order repository bound to its own transaction.
// An order row and its item rows written through it commit or roll back together.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	saved, err := uow.OrderRepository().Save(ctx, o)
//	...
//	return uow.Commit(ctx)
type OrderUoW interface {
	TxManager
	OrderRepository() ports.OrderRepository
}

// OrderUoWFactory hands out a fresh OrderUoW per command.
type OrderUoWFactory interface {
	Create() OrderUoW
}
