package queries

import (
	"context"

	"pedidofacil/internal/core/ports"
)

// GetAllOrdersQueryHandler lists orders through the order repository inside a read
// transaction, so every order is returned together with its items.
type GetAllOrdersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetAllOrdersQueryHandler(uowFactory ports.UnitOfWorkFactory) *GetAllOrdersQueryHandler {
	return &GetAllOrdersQueryHandler{uowFactory: uowFactory}
}

// Handle returns the matching orders ordered by id. The result is empty, never nil, when
// nothing matches.
func (h *GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
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

	orders, err := uow.OrderRepository().GetAll(ctx, query.Filter())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, NewOrderResponse(o))
	}
	return responses, nil
}
