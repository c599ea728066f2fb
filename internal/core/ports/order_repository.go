package ports

import (
	"context"

	"pedidofacil/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderFilter narrows GetAll. Zero-value fields are ignored.
type OrderFilter struct {
	// Buyer matches orders whose buyer name contains it, case-insensitively.
	Buyer string
	// Supplier matches orders whose supplier name contains it, case-insensitively.
	Supplier string
	// MinTotal and MaxTotal bound the total value purchased, inclusive.
	MinTotal *decimal.Decimal
	MaxTotal *decimal.Decimal
}

type OrderRepository interface {
	// Save inserts a new order (ID() == 0) with all its items, or updates an existing
	// order and replaces its persisted items with the in-memory set. Either way the
	// write is atomic and the returned order carries every store-assigned id.
	// Updating an id that is not stored returns errs.ErrObjectNotFound.
	Save(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// GetAll returns every stored order matching filter, ordered by id, with items loaded.
	GetAll(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// Get returns one order with its items, or errs.ErrObjectNotFound.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// Exists reports whether an order with id is stored.
	Exists(ctx context.Context, id int64) (bool, error)

	// Delete removes the order and, by cascade, its items. Deleting a missing id is
	// not an error; callers check Exists first.
	Delete(ctx context.Context, id int64) error
}
