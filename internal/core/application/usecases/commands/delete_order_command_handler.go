package commands

import (
	"context"
	"log/slog"

	"pedidofacil/internal/pkg/errs"
)

// DeleteOrderCommandHandler checks that the order exists and deletes it with its items.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) *DeleteOrderCommandHandler {
	return &DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "delete-order"),
	}
}

// Handle returns an ObjectNotFoundError when no order has the requested id.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	exists, err := repo.Exists(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("pedido", cmd.OrderID())
	}

	if err = repo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order deleted", "order_id", cmd.OrderID())
	return nil
}
