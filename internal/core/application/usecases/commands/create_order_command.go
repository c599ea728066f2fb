package commands

import (
	"errors"
	"slices"

	"pedidofacil/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new purchase order with its
// line items.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("João Silva", "TechStore Ltda", []OrderLine{
//	    {Name: "Mouse Sem Fio", Quantity: 3, Value: kernel.MustParseMoney("150.00")},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	buyer    string
	supplier string
	lines    []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates every field of the request and reports all violations
// at once. A nil lines slice means an order without items.
func NewCreateOrderCommand(buyer, supplier string, lines []OrderLine) (CreateOrderCommand, error) {
	if err := errors.Join(
		validateParties(buyer, supplier),
		validateLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		buyer:    buyer,
		supplier: supplier,
		lines:    slices.Clone(lines),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Buyer() string {
	return c.buyer
}

func (c CreateOrderCommand) Supplier() string {
	return c.supplier
}

// Lines returns a copy of the requested line items in request order.
func (c CreateOrderCommand) Lines() []OrderLine {
	return slices.Clone(c.lines)
}
