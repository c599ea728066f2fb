// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models for specific use cases.
package queries

import (
	"pedidofacil/internal/core/domain/model/kernel"
	"pedidofacil/internal/core/domain/model/order"
)

// OrderResponse is the read model of an order with its items.
type OrderResponse struct {
	ID         int64
	Buyer      string
	Supplier   string
	TotalValue kernel.Money
	TotalItems int
	Items      []ItemResponse
}

// ItemResponse is the read model of one line item.
type ItemResponse struct {
	ID       int64
	Name     string
	Quantity int
	Value    kernel.Money
}

// NewOrderResponse maps an aggregate to its read model. Items is never nil.
func NewOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:         o.ID(),
		Buyer:      o.Buyer(),
		Supplier:   o.Supplier(),
		TotalValue: o.TotalValue(),
		TotalItems: o.TotalItems(),
		Items:      newItemResponses(o.Items()),
	}
}

func newItemResponses(items []*order.Item) []ItemResponse {
	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ItemResponse{
			ID:       item.ID(),
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Value:    item.Value(),
		})
	}
	return responses
}
