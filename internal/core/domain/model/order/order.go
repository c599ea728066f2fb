package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"pedidofacil/internal/core/domain/model/kernel"
	"pedidofacil/internal/pkg/errs"
	"pedidofacil/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrItemAlreadyAttached is returned when the same *Item is attached twice.
	ErrItemAlreadyAttached = errors.New("item is already attached to an order")
)

// Order represents a purchase order. It is the aggregate root that exclusively owns
// its line items and keeps the derived totals in sync with them.
//
// Order follows these invariants:
//   - Buyer and supplier names are never blank
//   - totalValue == sum of item line values, exactly
//   - totalItems == sum of item quantities
//   - Item membership changes only through AddItem, RemoveItem and ReplaceItems
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is assigned by the store on first save; 0 for a new order
	id int64

	buyer    string
	supplier string

	// items is owned by the order and never handed out directly
	items []*Item

	// totalValue and totalItems are derived from items by recomputeTotals
	totalValue kernel.Money
	totalItems int

	guard guard.ConstructorGuard
}

// NewOrder creates an order with no items and zero totals.
//
// Returns a joined ValueIsRequiredError when buyer or supplier is blank.
//
// Example:
//
//	o, err := order.NewOrder("João Silva", "TechStore Ltda")
//	if err != nil {
//	    return err
//	}
//	item, _ := order.NewItem("Mouse Sem Fio", 3, kernel.MustParseMoney("150.00"))
//	_ = o.AddItem(item)
//	// o.TotalValue() == 150.00, o.TotalItems() == 3
func NewOrder(buyer, supplier string) (*Order, error) {
	o := &Order{
		items:      make([]*Item, 0),
		totalValue: kernel.ZeroMoney(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := o.ChangeParties(buyer, supplier); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order with its items. Totals are recomputed from
// the items, never taken from storage.
func RestoreOrder(id int64, buyer, supplier string, items []*Item) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("order id", id, 1, "max int64")
	}

	o, err := NewOrder(buyer, supplier)
	if err != nil {
		return nil, err
	}

	o.id = id
	if err = o.ReplaceItems(items); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was built by a constructor and that its totals fit the
// store's column bounds.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	if err := o.guard.Validate(ErrOrderIsNotConstructed); err != nil {
		return err
	}

	var bounds []error
	if o.totalValue.Exceeds(kernel.MaxMoney) {
		bounds = append(bounds, errs.NewValueIsOutOfRangeError(
			"total value purchased", o.totalValue.String(), "0.00", kernel.MaxMoney.StringFixed(kernel.MoneyScale)))
	}
	if o.totalItems > MaxQuantity {
		bounds = append(bounds, errs.NewValueIsOutOfRangeError("total items purchased", o.totalItems, 0, MaxQuantity))
	}
	return errors.Join(bounds...)
}

func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) Buyer() string {
	return o.buyer
}

func (o *Order) Supplier() string {
	return o.supplier
}

// TotalValue returns the sum of all line values.
func (o *Order) TotalValue() kernel.Money {
	return o.totalValue
}

// TotalItems returns the sum of all item quantities.
func (o *Order) TotalItems() int {
	return o.totalItems
}

// Items returns a copy of the item list in insertion order.
func (o *Order) Items() []*Item {
	return slices.Clone(o.items)
}

// ChangeParties overwrites buyer and supplier. Nothing changes if either is blank.
func (o *Order) ChangeParties(buyer, supplier string) error {
	var errBuyer, errSupplier error
	if strings.TrimSpace(buyer) == "" {
		errBuyer = errs.NewValueIsRequiredError("buyer name")
	}
	if strings.TrimSpace(supplier) == "" {
		errSupplier = errs.NewValueIsRequiredError("supplier name")
	}
	if err := errors.Join(errBuyer, errSupplier); err != nil {
		return err
	}

	o.buyer = buyer
	o.supplier = supplier
	return nil
}

// AddItem attaches item to the order and recomputes the totals.
func (o *Order) AddItem(item *Item) error {
	if err := o.checkAttachable(item); err != nil {
		return err
	}

	o.attach(item)
	o.recomputeTotals()
	return nil
}

// RemoveItem detaches item if the order owns it and recomputes the totals.
// It reports whether the item was found.
func (o *Order) RemoveItem(item *Item) bool {
	idx := slices.Index(o.items, item)
	if idx < 0 {
		return false
	}

	o.items = slices.Delete(o.items, idx, idx+1)
	item.detach()
	o.recomputeTotals()
	return true
}

// ReplaceItems discards the current items and attaches items in their place. Every new
// item is checked first, so on error the order is left untouched. Totals are recomputed once.
// A nil or empty slice leaves the order with no items.
func (o *Order) ReplaceItems(items []*Item) error {
	seen := make(map[*Item]struct{}, len(items))
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", idx, err)
		}
		if _, dup := seen[item]; dup {
			return fmt.Errorf("item %d: %w", idx, ErrItemAlreadyAttached)
		}
		if o.ownedElsewhere(item) {
			return fmt.Errorf("item %d: %w", idx, ErrItemAlreadyAttached)
		}
		seen[item] = struct{}{}
	}

	for _, old := range o.items {
		old.detach()
	}
	o.items = make([]*Item, 0, len(items))
	for _, item := range items {
		o.attach(item)
	}

	o.recomputeTotals()
	return nil
}

func (o *Order) checkAttachable(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if slices.Contains(o.items, item) || o.ownedElsewhere(item) {
		return ErrItemAlreadyAttached
	}
	return nil
}

// ownedElsewhere reports whether item is attached to, or persisted under, another order.
func (o *Order) ownedElsewhere(item *Item) bool {
	if item.attached && !slices.Contains(o.items, item) {
		return true
	}
	return item.orderID != 0 && item.orderID != o.id
}

func (o *Order) attach(item *Item) {
	item.orderID = o.id
	item.attached = true
	o.items = append(o.items, item)
}

func (o *Order) recomputeTotals() {
	total := kernel.ZeroMoney()
	count := 0
	for _, item := range o.items {
		total = total.Add(item.value)
		count += item.quantity
	}

	o.totalValue = total
	o.totalItems = count
}
