// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and the pedido / produto_pedido tables.
package orderrepo

import (
	"pedidofacil/internal/core/domain/model/kernel"
	"pedidofacil/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the pedido table. Totals are stored for reporting queries but
// the aggregate always recomputes them from the items when loaded.
type OrderDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	Buyer      string          `gorm:"column:nome_comprador;type:varchar(255);not null"`
	Supplier   string          `gorm:"column:nome_fornecedor;type:varchar(255);not null"`
	TotalValue decimal.Decimal `gorm:"column:valor_total_comprado;type:decimal(10,2);not null"`
	TotalItems int             `gorm:"column:total_produtos_comprados;type:int;not null"`
	Items      []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "pedido"
}

// ItemDTO represents the produto_pedido table. Rows are removed with their order
// through the ON DELETE CASCADE foreign key.
type ItemDTO struct {
	ID       int64           `gorm:"primaryKey;autoIncrement"`
	Name     string          `gorm:"column:nome_produto;type:varchar(255);not null"`
	Quantity int             `gorm:"column:quantidade_comprada;type:int;not null"`
	Value    decimal.Decimal `gorm:"column:valor_total_produto;type:decimal(10,2);not null"`
	OrderID  int64           `gorm:"column:pedido_id;not null;index"`
}

// TableName specifies the database table name for line item entities.
func (ItemDTO) TableName() string {
	return "produto_pedido"
}

// fromDomain converts an order aggregate to its database representation,
// including every attached item.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	dtos := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, itemFromDomain(aggregate.ID(), item))
	}

	return OrderDTO{
		ID:         aggregate.ID(),
		Buyer:      aggregate.Buyer(),
		Supplier:   aggregate.Supplier(),
		TotalValue: aggregate.TotalValue().Decimal(),
		TotalItems: aggregate.TotalItems(),
		Items:      dtos,
	}
}

func itemFromDomain(orderID int64, item *order.Item) ItemDTO {
	return ItemDTO{
		ID:       item.ID(),
		Name:     item.Name(),
		Quantity: item.Quantity(),
		Value:    item.Value().Decimal(),
		OrderID:  orderID,
	}
}

// toDomain converts a database DTO with preloaded items to an order aggregate
// using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := itemToDomain(itemDTO)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(dto.ID, dto.Buyer, dto.Supplier, items)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	value, err := kernel.NewMoney(dto.Value)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(dto.ID, dto.OrderID, dto.Name, dto.Quantity, value)
}
