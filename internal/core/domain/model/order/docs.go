// Package order provides the purchase order ("pedido") aggregate and its line items
// ("produtos").
//
// The package includes:
//   - Order: the aggregate root owning buyer, supplier, line items and the derived totals
//   - Item: a line item owned by exactly one order
//
// Key business rules:
//   - Buyer and supplier names must not be blank
//   - Item name must not be blank, quantity must be greater than 0, line value must be greater than 0
//   - Total value purchased always equals the sum of the items' line values
//   - Total items purchased always equals the sum of the items' quantities
//   - Totals are recomputed inside every mutation that changes item membership
//   - Items are only reachable through the order; callers get copies of the item list
//
// Items keep the owning order id as a plain value for the store's foreign key. There is
// no pointer from an item back to its order.
package order
