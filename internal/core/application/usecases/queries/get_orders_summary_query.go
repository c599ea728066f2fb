package queries

import (
	"errors"

	"pedidofacil/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersSummaryQueryIsNotConstructed = errors.New(
	"GetOrdersSummaryQuery must be created via NewGetOrdersSummaryQuery constructor",
)

// GetOrdersSummaryQuery aggregates the whole store: number of orders, units purchased
// and the value purchased.
type GetOrdersSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrdersSummaryQuery() GetOrdersSummaryQuery {
	return GetOrdersSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersSummaryQueryIsNotConstructed)
}

// GetOrdersSummaryQueryResponse holds store-wide totals. TotalValue may exceed the bound of
// a single order, so it is a plain decimal rather than kernel.Money.
type GetOrdersSummaryQueryResponse struct {
	TotalOrders int64
	TotalItems  int64
	TotalValue  decimal.Decimal
}
