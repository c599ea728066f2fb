package commands

import (
	"errors"
	"fmt"
	"strings"

	"pedidofacil/internal/core/domain/model/kernel"
	"pedidofacil/internal/core/domain/model/order"
	"pedidofacil/internal/pkg/errs"
)

// OrderLine is one requested line item as it arrives from a client.
type OrderLine struct {
	Name     string
	Quantity int
	Value    kernel.Money
}

func validateParties(buyer, supplier string) error {
	var errBuyer, errSupplier error
	if strings.TrimSpace(buyer) == "" {
		errBuyer = errs.NewValueIsRequiredError("nomeComprador")
	}
	if strings.TrimSpace(supplier) == "" {
		errSupplier = errs.NewValueIsRequiredError("nomeFornecedor")
	}
	return errors.Join(errBuyer, errSupplier)
}

func validateLines(lines []OrderLine) error {
	var lineErrs []error
	for idx, line := range lines {
		if strings.TrimSpace(line.Name) == "" {
			lineErrs = append(lineErrs, errs.NewValueIsRequiredError(fmt.Sprintf("produtos[%d].nomeProduto", idx)))
		}
		if line.Quantity < 1 || line.Quantity > order.MaxQuantity {
			lineErrs = append(lineErrs, errs.NewValueIsOutOfRangeError(
				fmt.Sprintf("produtos[%d].quantidadeComprada", idx), line.Quantity, 1, order.MaxQuantity))
		}
		if !line.Value.IsPositive() {
			lineErrs = append(lineErrs, errs.NewValueIsOutOfRangeError(
				fmt.Sprintf("produtos[%d].valorTotalProduto", idx), line.Value.String(), "0.01", kernel.MaxMoney.StringFixed(kernel.MoneyScale)))
		}
	}
	return errors.Join(lineErrs...)
}

// buildItems turns validated lines into detached aggregate items.
func buildItems(lines []OrderLine) ([]*order.Item, error) {
	items := make([]*order.Item, 0, len(lines))
	for idx, line := range lines {
		item, err := order.NewItem(line.Name, line.Quantity, line.Value)
		if err != nil {
			return nil, fmt.Errorf("produtos[%d]: %w", idx, err)
		}
		items = append(items, item)
	}
	return items, nil
}
