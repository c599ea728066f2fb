package commands

import (
	"context"
	"log/slog"

	"pedidofacil/internal/core/ports"
)

// SeedOrdersCommandHandler inserts the command's orders in one transaction, but only when
// the store is empty. Running it again against a populated store changes nothing.
type SeedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewSeedOrdersCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) *SeedOrdersCommandHandler {
	return &SeedOrdersCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "seed-orders"),
	}
}

// Handle returns the number of orders created.
func (h *SeedOrdersCommandHandler) Handle(ctx context.Context, cmd SeedOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	existing, err := repo.GetAll(ctx, ports.OrderFilter{})
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		h.logger.InfoContext(ctx, "store already has orders, skipping seed", "orders", len(existing))
		return 0, nil
	}

	for _, orderCmd := range cmd.Orders() {
		newOrder, buildErr := newOrderFromCommand(orderCmd)
		if buildErr != nil {
			return 0, buildErr
		}
		if _, err = repo.Save(ctx, newOrder); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.logger.InfoContext(ctx, "sample orders created", "orders", len(cmd.Orders()))
	return len(cmd.Orders()), nil
}
