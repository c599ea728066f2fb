package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersSummaryQueryHandler computes store-wide totals with a single SQL statement.
// Totals are summed from the item rows, which are the source of truth for order totals.
//
// Example:
//
//	handler := NewGetOrdersSummaryQueryHandler(db)
//	summary, err := handler.Handle(ctx, NewGetOrdersSummaryQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders, %s purchased\n", summary.TotalOrders, summary.TotalValue.StringFixed(2))
type GetOrdersSummaryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersSummaryQueryHandler(db *gorm.DB) *GetOrdersSummaryQueryHandler {
	return &GetOrdersSummaryQueryHandler{db: db}
}

func (h *GetOrdersSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersSummaryQuery,
) (GetOrdersSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersSummaryQueryResponse{}, err
	}

	var summary GetOrdersSummaryQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM pedido),
			COALESCE(SUM(quantidade_comprada), 0),
			COALESCE(SUM(valor_total_produto), 0)
		FROM produto_pedido
	`).Row()
	if err := row.Scan(&summary.TotalOrders, &summary.TotalItems, &summary.TotalValue); err != nil {
		return GetOrdersSummaryQueryResponse{}, err
	}

	return summary, nil
}
