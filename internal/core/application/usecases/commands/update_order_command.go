package commands

import (
	"errors"
	"slices"

	"pedidofacil/internal/pkg/errs"
	"pedidofacil/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand overwrites the parties of an existing order and replaces its whole
// item set with the requested lines.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  int64
	buyer    string
	supplier string
	lines    []OrderLine

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand validates the request. An empty or nil lines slice leaves the
// order with no items after the update. Field errors are reported first; a valid request
// for an id the store never assigns (<= 0) yields ObjectNotFoundError, as an unknown id does.
func NewUpdateOrderCommand(orderID int64, buyer, supplier string, lines []OrderLine) (UpdateOrderCommand, error) {
	if err := errors.Join(
		validateParties(buyer, supplier),
		validateLines(lines),
	); err != nil {
		return UpdateOrderCommand{}, err
	}
	if orderID <= 0 {
		return UpdateOrderCommand{}, errs.NewObjectNotFoundError("pedido", orderID)
	}

	return UpdateOrderCommand{
		orderID:  orderID,
		buyer:    buyer,
		supplier: supplier,
		lines:    slices.Clone(lines),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c UpdateOrderCommand) Buyer() string {
	return c.buyer
}

func (c UpdateOrderCommand) Supplier() string {
	return c.supplier
}

func (c UpdateOrderCommand) Lines() []OrderLine {
	return slices.Clone(c.lines)
}
