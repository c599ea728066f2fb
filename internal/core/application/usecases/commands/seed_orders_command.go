package commands

import (
	"errors"
	"slices"

	"pedidofacil/internal/core/domain/model/kernel"
	"pedidofacil/internal/pkg/guard"
)

var ErrSeedOrdersCommandIsNotConstructed = errors.New(
	"SeedOrdersCommand must be created via NewSeedOrdersCommand or NewSampleOrdersCommand constructor",
)

// SeedOrdersCommand creates a fixed set of orders when the store holds none.
type SeedOrdersCommand struct {
	orders []CreateOrderCommand

	guard guard.ConstructorGuard
}

func NewSeedOrdersCommand(orders []CreateOrderCommand) (SeedOrdersCommand, error) {
	for _, cmd := range orders {
		if err := cmd.Validate(); err != nil {
			return SeedOrdersCommand{}, err
		}
	}

	return SeedOrdersCommand{
		orders: slices.Clone(orders),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewSampleOrdersCommand returns the demo data set: three orders with two, three and two items.
func NewSampleOrdersCommand() SeedOrdersCommand {
	samples := []struct {
		buyer, supplier string
		lines           []OrderLine
	}{
		{"João Silva", "TechStore Ltda", []OrderLine{
			{Name: "Notebook Dell Inspiron", Quantity: 2, Value: kernel.MustParseMoney("3500.00")},
			{Name: "Mouse Sem Fio", Quantity: 3, Value: kernel.MustParseMoney("150.00")},
		}},
		{"Maria Santos", "OfficeMax", []OrderLine{
			{Name: "Cadeira Ergonômica", Quantity: 1, Value: kernel.MustParseMoney("800.00")},
			{Name: "Mesa de Escritório", Quantity: 1, Value: kernel.MustParseMoney("450.00")},
			{Name: "Luminária LED", Quantity: 2, Value: kernel.MustParseMoney("120.00")},
		}},
		{"Carlos Oliveira", "ElectroWorld", []OrderLine{
			{Name: "Smartphone Samsung Galaxy", Quantity: 1, Value: kernel.MustParseMoney("1200.00")},
			{Name: "Carregador Portátil", Quantity: 2, Value: kernel.MustParseMoney("180.00")},
		}},
	}

	orders := make([]CreateOrderCommand, 0, len(samples))
	for _, sample := range samples {
		cmd, err := NewCreateOrderCommand(sample.buyer, sample.supplier, sample.lines)
		if err != nil {
			panic(err)
		}
		orders = append(orders, cmd)
	}

	return SeedOrdersCommand{orders: orders, guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through a constructor.
func (c SeedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSeedOrdersCommandIsNotConstructed)
}

func (c SeedOrdersCommand) Orders() []CreateOrderCommand {
	return slices.Clone(c.orders)
}
