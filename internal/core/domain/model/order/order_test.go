package order_test

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"pedidofacil/internal/core/domain/model/kernel"
	"pedidofacil/internal/core/domain/model/order"
	"pedidofacil/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, quantity int, value string) *order.Item {
	t.Helper()
	item, err := order.NewItem(name, quantity, kernel.MustParseMoney(value))
	require.NoError(t, err)
	return item
}

func assertTotalsMatchItems(t *testing.T, o *order.Order) {
	t.Helper()
	sum := decimal.Zero
	count := 0
	for _, item := range o.Items() {
		sum = sum.Add(item.Value().Decimal())
		count += item.Quantity()
	}
	assert.True(t, o.TotalValue().Decimal().Equal(sum), "total %s != sum %s", o.TotalValue(), sum)
	assert.Equal(t, count, o.TotalItems())
}

func TestNewOrder(t *testing.T) {
	t.Run("should create empty order with zero totals", func(t *testing.T) {
		o, err := order.NewOrder("João Silva", "TechStore Ltda")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Zero(t, o.ID())
		assert.Equal(t, "João Silva", o.Buyer())
		assert.Equal(t, "TechStore Ltda", o.Supplier())
		assert.Empty(t, o.Items())
		assert.Equal(t, "0.00", o.TotalValue().String())
		assert.Zero(t, o.TotalItems())
	})

	t.Run("should fail with blank buyer", func(t *testing.T) {
		o, err := order.NewOrder("   ", "TechStore Ltda")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "buyer name")
	})

	t.Run("should report both blank names", func(t *testing.T) {
		o, err := order.NewOrder("", "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "buyer name")
		assert.Contains(t, err.Error(), "supplier name")
	})
}

func TestNewItem(t *testing.T) {
	value := kernel.MustParseMoney("10.00")

	t.Run("should create detached item", func(t *testing.T) {
		item, err := order.NewItem("Mouse Sem Fio", 3, value)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Zero(t, item.ID())
		assert.Zero(t, item.OrderID())
		assert.Equal(t, "Mouse Sem Fio", item.Name())
		assert.Equal(t, 3, item.Quantity())
		assert.True(t, item.Value().Equal(value))
	})

	t.Run("should reject blank name", func(t *testing.T) {
		_, err := order.NewItem(" ", 1, value)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject non positive quantity", func(t *testing.T) {
		_, err := order.NewItem("Mouse", 0, value)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = order.NewItem("Mouse", -3, value)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject zero value", func(t *testing.T) {
		_, err := order.NewItem("Mouse", 1, kernel.ZeroMoney())

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "line value")
	})

	t.Run("should reject literal item", func(t *testing.T) {
		var item order.Item
		require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)

		var nilItem *order.Item
		require.ErrorIs(t, nilItem.Validate(), order.ErrItemIsNotConstructed)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for nil and zero value orders", func(t *testing.T) {
		var nilOrder *order.Order
		require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)

		var zero order.Order
		require.ErrorIs(t, zero.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should fail when total value exceeds the column bound", func(t *testing.T) {
		o, _ := order.NewOrder("Buyer", "Supplier")
		maxValue := kernel.MaxMoney.String()
		require.NoError(t, o.AddItem(mustItem(t, "A", 1, maxValue)))
		require.NoError(t, o.Validate())

		require.NoError(t, o.AddItem(mustItem(t, "B", 1, "0.01")))

		require.ErrorIs(t, o.Validate(), errs.ErrValueIsOutOfRange)
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("should attach item and recompute totals", func(t *testing.T) {
		o, _ := order.NewOrder("João Silva", "TechStore Ltda")

		require.NoError(t, o.AddItem(mustItem(t, "Notebook Dell Inspiron", 2, "3500.00")))
		require.NoError(t, o.AddItem(mustItem(t, "Mouse Sem Fio", 3, "150.00")))

		assert.Len(t, o.Items(), 2)
		assert.Equal(t, "3650.00", o.TotalValue().String())
		assert.Equal(t, 5, o.TotalItems())
		assertTotalsMatchItems(t, o)
	})

	t.Run("should set the owning order id on restored orders", func(t *testing.T) {
		o, err := order.RestoreOrder(9, "Buyer", "Supplier", nil)
		require.NoError(t, err)

		item := mustItem(t, "Cabo HDMI", 1, "25.90")
		require.NoError(t, o.AddItem(item))

		assert.Equal(t, int64(9), item.OrderID())
	})

	t.Run("should reject the same item twice", func(t *testing.T) {
		o, _ := order.NewOrder("Buyer", "Supplier")
		item := mustItem(t, "Cabo HDMI", 1, "25.90")
		require.NoError(t, o.AddItem(item))

		err := o.AddItem(item)

		require.ErrorIs(t, err, order.ErrItemAlreadyAttached)
		assert.Len(t, o.Items(), 1)
		assertTotalsMatchItems(t, o)
	})

	t.Run("should reject item owned by another order", func(t *testing.T) {
		other, _ := order.RestoreOrder(1, "Buyer", "Supplier", nil)
		item := mustItem(t, "Cabo HDMI", 1, "25.90")
		require.NoError(t, other.AddItem(item))

		o, _ := order.RestoreOrder(2, "Buyer", "Supplier", nil)

		require.ErrorIs(t, o.AddItem(item), order.ErrItemAlreadyAttached)
	})

	t.Run("should reject item owned by another unsaved order", func(t *testing.T) {
		a, _ := order.NewOrder("João Silva", "TechStore Ltda")
		b, _ := order.NewOrder("Maria Santos", "OfficeMax")
		item := mustItem(t, "Cabo HDMI", 1, "25.90")
		require.NoError(t, a.AddItem(item))

		err := b.AddItem(item)

		require.ErrorIs(t, err, order.ErrItemAlreadyAttached)
		assert.Empty(t, b.Items())
		assert.True(t, b.TotalValue().IsZero())
		assert.Len(t, a.Items(), 1)
	})

	t.Run("should accept item released by another order", func(t *testing.T) {
		a, _ := order.NewOrder("João Silva", "TechStore Ltda")
		b, _ := order.NewOrder("Maria Santos", "OfficeMax")
		item := mustItem(t, "Cabo HDMI", 1, "25.90")
		require.NoError(t, a.AddItem(item))
		require.True(t, a.RemoveItem(item))

		require.NoError(t, b.AddItem(item))

		assert.Equal(t, "25.90", b.TotalValue().String())
		assert.True(t, a.TotalValue().IsZero())
	})

	t.Run("should reject unconstructed item", func(t *testing.T) {
		o, _ := order.NewOrder("Buyer", "Supplier")

		require.ErrorIs(t, o.AddItem(&order.Item{}), order.ErrItemIsNotConstructed)
		require.ErrorIs(t, o.AddItem(nil), order.ErrItemIsNotConstructed)
		assert.Empty(t, o.Items())
	})
}

func TestOrder_RemoveItem(t *testing.T) {
	o, _ := order.RestoreOrder(4, "Buyer", "Supplier", nil)
	notebook := mustItem(t, "Notebook", 2, "3500.00")
	mouse := mustItem(t, "Mouse", 3, "150.00")
	require.NoError(t, o.AddItem(notebook))
	require.NoError(t, o.AddItem(mouse))

	t.Run("should detach owned item and recompute totals", func(t *testing.T) {
		assert.True(t, o.RemoveItem(notebook))

		assert.Zero(t, notebook.OrderID())
		assert.Len(t, o.Items(), 1)
		assert.Equal(t, "150.00", o.TotalValue().String())
		assert.Equal(t, 3, o.TotalItems())
	})

	t.Run("should ignore item the order does not own", func(t *testing.T) {
		stranger := mustItem(t, "Teclado", 1, "99.00")

		assert.False(t, o.RemoveItem(stranger))
		assert.False(t, o.RemoveItem(notebook))
		assert.Len(t, o.Items(), 1)
	})

	t.Run("should reach zero totals when empty", func(t *testing.T) {
		assert.True(t, o.RemoveItem(mouse))

		assert.Empty(t, o.Items())
		assert.True(t, o.TotalValue().IsZero())
		assert.Zero(t, o.TotalItems())
	})
}

func TestOrder_ReplaceItems(t *testing.T) {
	t.Run("should replace the whole item set", func(t *testing.T) {
		o, _ := order.RestoreOrder(3, "João Silva", "TechStore Ltda", []*order.Item{})
		old := mustItem(t, "Notebook Dell Inspiron", 2, "3500.00")
		require.NoError(t, o.AddItem(old))

		err := o.ReplaceItems([]*order.Item{mustItem(t, "Mouse Sem Fio", 1, "50.00")})

		require.NoError(t, err)
		items := o.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "Mouse Sem Fio", items[0].Name())
		assert.Equal(t, int64(3), items[0].OrderID())
		assert.Zero(t, old.OrderID())
		assert.Equal(t, "50.00", o.TotalValue().String())
		assert.Equal(t, 1, o.TotalItems())
	})

	t.Run("should accept nil as no items", func(t *testing.T) {
		o, _ := order.NewOrder("Buyer", "Supplier")
		require.NoError(t, o.AddItem(mustItem(t, "A", 1, "1.00")))

		require.NoError(t, o.ReplaceItems(nil))

		assert.Empty(t, o.Items())
		assert.True(t, o.TotalValue().IsZero())
	})

	t.Run("should leave the order untouched on invalid input", func(t *testing.T) {
		o, _ := order.NewOrder("Buyer", "Supplier")
		require.NoError(t, o.AddItem(mustItem(t, "A", 2, "10.00")))
		good := mustItem(t, "B", 1, "5.00")

		err := o.ReplaceItems([]*order.Item{good, nil})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "item 1")
		require.Len(t, o.Items(), 1)
		assert.Equal(t, "A", o.Items()[0].Name())
		assert.Equal(t, "10.00", o.TotalValue().String())
	})

	t.Run("should reject duplicates", func(t *testing.T) {
		o, _ := order.NewOrder("Buyer", "Supplier")
		item := mustItem(t, "A", 1, "1.00")

		require.ErrorIs(t, o.ReplaceItems([]*order.Item{item, item}), order.ErrItemAlreadyAttached)
	})

	t.Run("should reject items owned by another unsaved order", func(t *testing.T) {
		a, _ := order.NewOrder("João Silva", "TechStore Ltda")
		b, _ := order.NewOrder("Maria Santos", "OfficeMax")
		shared := mustItem(t, "Mouse Sem Fio", 3, "150.00")
		require.NoError(t, a.AddItem(shared))
		kept := mustItem(t, "Teclado", 1, "99.00")
		require.NoError(t, b.AddItem(kept))

		err := b.ReplaceItems([]*order.Item{mustItem(t, "Monitor", 1, "900.00"), shared})

		require.ErrorIs(t, err, order.ErrItemAlreadyAttached)
		assert.Contains(t, err.Error(), "item 1")
		require.Len(t, b.Items(), 1)
		assert.Same(t, kept, b.Items()[0])
		assert.Equal(t, "99.00", b.TotalValue().String())
	})

	t.Run("should keep items the order already owns", func(t *testing.T) {
		o, _ := order.NewOrder("Buyer", "Supplier")
		item := mustItem(t, "A", 2, "10.00")
		require.NoError(t, o.AddItem(item))

		require.NoError(t, o.ReplaceItems([]*order.Item{item, mustItem(t, "B", 1, "5.00")}))

		assert.Len(t, o.Items(), 2)
		assert.Equal(t, "15.00", o.TotalValue().String())
	})

	t.Run("should release replaced items", func(t *testing.T) {
		a, _ := order.NewOrder("Buyer", "Supplier")
		b, _ := order.NewOrder("Buyer", "Supplier")
		old := mustItem(t, "A", 1, "1.00")
		require.NoError(t, a.AddItem(old))
		require.NoError(t, a.ReplaceItems(nil))

		require.NoError(t, b.AddItem(old))
	})
}

func TestOrder_ItemsReturnsCopy(t *testing.T) {
	o, _ := order.NewOrder("Buyer", "Supplier")
	require.NoError(t, o.AddItem(mustItem(t, "A", 1, "1.00")))

	items := o.Items()
	items[0] = nil
	_ = append(items, mustItem(t, "B", 1, "1.00"))

	require.Len(t, o.Items(), 1)
	assert.NotNil(t, o.Items()[0])
	assertTotalsMatchItems(t, o)
}

func TestOrder_ChangeParties(t *testing.T) {
	o, _ := order.NewOrder("Buyer", "Supplier")

	require.NoError(t, o.ChangeParties("Maria Santos", "OfficeMax"))
	assert.Equal(t, "Maria Santos", o.Buyer())
	assert.Equal(t, "OfficeMax", o.Supplier())

	err := o.ChangeParties("Carlos Oliveira", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, "Maria Santos", o.Buyer())
	assert.Equal(t, "OfficeMax", o.Supplier())
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should recompute totals from items", func(t *testing.T) {
		a, _ := order.RestoreItem(10, 7, "Cadeira Ergonômica", 1, kernel.MustParseMoney("800.00"))
		b, _ := order.RestoreItem(11, 7, "Luminária LED", 2, kernel.MustParseMoney("120.00"))

		o, err := order.RestoreOrder(7, "Maria Santos", "OfficeMax", []*order.Item{a, b})

		require.NoError(t, err)
		assert.Equal(t, int64(7), o.ID())
		assert.Equal(t, "920.00", o.TotalValue().String())
		assert.Equal(t, 3, o.TotalItems())
		assert.Equal(t, int64(10), o.Items()[0].ID())
	})

	t.Run("should reject non positive id", func(t *testing.T) {
		_, err := order.RestoreOrder(0, "Buyer", "Supplier", nil)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject items of another order", func(t *testing.T) {
		a, _ := order.RestoreItem(10, 8, "A", 1, kernel.MustParseMoney("1.00"))

		_, err := order.RestoreOrder(7, "Buyer", "Supplier", []*order.Item{a})

		require.ErrorIs(t, err, order.ErrItemAlreadyAttached)
	})
}

func TestOrder_TotalsInvariantUnderRandomMutations(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	o, _ := order.NewOrder("Buyer", "Supplier")

	for step := range 500 {
		switch items := o.Items(); {
		case len(items) > 0 && rng.IntN(4) == 0:
			o.RemoveItem(items[rng.IntN(len(items))])
		case rng.IntN(20) == 0:
			replacement := make([]*order.Item, rng.IntN(4))
			for i := range replacement {
				replacement[i] = mustItem(t, "R"+strconv.Itoa(i), 1+rng.IntN(5), randomValue(rng))
			}
			require.NoError(t, o.ReplaceItems(replacement))
		default:
			require.NoError(t, o.AddItem(mustItem(t, "P"+strconv.Itoa(step), 1+rng.IntN(10), randomValue(rng))))
		}
		assertTotalsMatchItems(t, o)
	}
}

func randomValue(rng *rand.Rand) string {
	cents := 1 + rng.IntN(1_000_000)
	return decimal.New(int64(cents), -2).String()
}
