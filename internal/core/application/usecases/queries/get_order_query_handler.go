package queries

import (
	"context"

	"pedidofacil/internal/core/domain/model/order"
	"pedidofacil/internal/core/ports"
)

// GetOrderQueryHandler loads a single order with its items.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(uowFactory)
//	query, _ := NewGetOrderQuery(1)
//
//	view, err := handler.Handle(ctx, query)
//	if errs.IsNotFound(err) {
//	    // no order with id 1
//	}
//
//	items, err := handler.HandleItems(ctx, query)
type GetOrderQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetOrderQueryHandler(uowFactory ports.UnitOfWorkFactory) *GetOrderQueryHandler {
	return &GetOrderQueryHandler{uowFactory: uowFactory}
}

// Handle returns the order view or an ObjectNotFoundError.
func (h *GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	o, err := h.load(ctx, query)
	if err != nil {
		return OrderResponse{}, err
	}
	return NewOrderResponse(o), nil
}

// HandleItems returns only the order's items in insertion order. The slice is empty for an
// order without items and an ObjectNotFoundError is returned when the order is absent.
func (h *GetOrderQueryHandler) HandleItems(ctx context.Context, query GetOrderQuery) ([]ItemResponse, error) {
	o, err := h.load(ctx, query)
	if err != nil {
		return nil, err
	}
	return newItemResponses(o.Items()), nil
}

func (h *GetOrderQueryHandler) load(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return o, nil
}
