package queries

import (
	"errors"

	"pedidofacil/internal/core/ports"
	"pedidofacil/internal/pkg/errs"
	"pedidofacil/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery lists orders with their items. Empty filter fields match every order.
//
// Example:
//
//	minTotal := decimal.RequireFromString("1000")
//	query, err := NewGetAllOrdersQuery(ports.OrderFilter{Buyer: "silva", MinTotal: &minTotal})
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
type GetAllOrdersQuery struct {
	filter ports.OrderFilter

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery rejects a filter whose MinTotal is above its MaxTotal.
func NewGetAllOrdersQuery(filter ports.OrderFilter) (GetAllOrdersQuery, error) {
	if filter.MinTotal != nil && filter.MaxTotal != nil && filter.MinTotal.GreaterThan(*filter.MaxTotal) {
		return GetAllOrdersQuery{}, errs.NewValueIsOutOfRangeError(
			"valorMin", filter.MinTotal.String(), decimal.Zero.String(), filter.MaxTotal.String())
	}

	return GetAllOrdersQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

func (q GetAllOrdersQuery) Filter() ports.OrderFilter {
	return q.filter
}
