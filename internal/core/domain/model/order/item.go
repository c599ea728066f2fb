package order

import (
	"errors"
	"math"
	"strings"

	"pedidofacil/internal/core/domain/model/kernel"
	"pedidofacil/internal/pkg/errs"
	"pedidofacil/internal/pkg/guard"
)

// MaxQuantity is the largest quantity an int column stores.
const MaxQuantity = math.MaxInt32

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// Item is a line item of an Order. It is created only to be attached to an order and
// is never edited in place: the update path replaces the whole item set.
type Item struct {
	// id is assigned by the store; 0 until the owning order is saved
	id int64

	// orderID is the owning order's id, kept for the foreign key only
	orderID int64

	// attached is set while an order owns the item, saved or not
	attached bool

	name     string
	quantity int
	value    kernel.Money

	guard guard.ConstructorGuard
}

// NewItem validates and creates a detached line item.
//
// Returns a joined error listing every invalid field:
//   - ValueIsRequiredError for a blank name
//   - ValueIsOutOfRangeError for a quantity below 1 or above MaxQuantity
//   - ValueIsOutOfRangeError for a line value that is not greater than zero
func NewItem(name string, quantity int, value kernel.Money) (*Item, error) {
	item := &Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setName(name),
		item.setQuantity(quantity),
		item.setValue(value),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem rebuilds a persisted line item. The same field rules as NewItem apply.
func RestoreItem(id, orderID int64, name string, quantity int, value kernel.Money) (*Item, error) {
	item, err := NewItem(name, quantity, value)
	if err != nil {
		return nil, err
	}

	item.id = id
	item.orderID = orderID
	return item, nil
}

func (i *Item) detach() {
	i.orderID = 0
	i.attached = false
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() int64 {
	return i.id
}

// OrderID returns the owning order's id, or 0 when the item is detached
// or its order has not been saved yet.
func (i *Item) OrderID() int64 {
	return i.orderID
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) Value() kernel.Money {
	return i.value
}

func (i *Item) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setValue(value kernel.Money) error {
	if !value.IsPositive() {
		return errs.NewValueIsOutOfRangeError("line value", value.String(), "0.01", kernel.MaxMoney.StringFixed(kernel.MoneyScale))
	}
	i.value = value
	return nil
}
