package commands

import (
	"context"
	"log/slog"

	"pedidofacil/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler loads an order, overwrites its parties, replaces its items and
// saves the result in one transaction. Items of the previous version are discarded.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) *UpdateOrderCommandHandler {
	return &UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "update-order"),
	}
}

// Handle returns an ObjectNotFoundError when the order does not exist. Nothing is written
// when any step fails.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items, err := buildItems(cmd.Lines())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	existing, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = existing.ChangeParties(cmd.Buyer(), cmd.Supplier()); err != nil {
		return nil, err
	}
	if err = existing.ReplaceItems(items); err != nil {
		return nil, err
	}
	if err = existing.Validate(); err != nil {
		return nil, err
	}

	saved, err := repo.Save(ctx, existing)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "order updated",
		"order_id", saved.ID(),
		"items", len(saved.Items()),
		"total_value", saved.TotalValue().String(),
	)
	return saved, nil
}
