package commands

import (
	"context"
	"log/slog"

	"pedidofacil/internal/core/domain/model/order"
)

// CreateOrderCommandHandler builds a new order aggregate from the command and persists it
// together with its items in one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, logger)
//	cmd, _ := NewCreateOrderCommand("Maria Santos", "OfficeMax", lines)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created.ID() is the store-assigned id
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) *CreateOrderCommandHandler {
	return &CreateOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "create-order"),
	}
}

// Handle validates the aggregate before any transaction is opened, then saves it and
// returns the stored order with its assigned ids.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := newOrderFromCommand(cmd)
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

	saved, err := uow.OrderRepository().Save(ctx, newOrder)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "order created",
		"order_id", saved.ID(),
		"items", len(saved.Items()),
		"total_value", saved.TotalValue().String(),
	)
	return saved, nil
}

// newOrderFromCommand builds an unsaved aggregate and checks its totals against the store bounds.
func newOrderFromCommand(cmd CreateOrderCommand) (*order.Order, error) {
	newOrder, err := order.NewOrder(cmd.Buyer(), cmd.Supplier())
	if err != nil {
		return nil, err
	}

	items, err := buildItems(cmd.Lines())
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if err = newOrder.AddItem(item); err != nil {
			return nil, err
		}
	}

	if err = newOrder.Validate(); err != nil {
		return nil, err
	}
	return newOrder, nil
}
