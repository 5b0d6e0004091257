// Package view projects cart and currency state into a renderable view model.
package view

import (
	"fmt"

	"github.com/abgdnv/storefront/internal/cart"
	"github.com/abgdnv/storefront/internal/currency"
)

// LineView describes one cart line for the renderer.
type LineView struct {
	Title         string `json:"title"`
	Quantity      int    `json:"quantity"`
	SubtotalLabel string `json:"subtotal"`
}

// ViewModel is the renderer-facing projection of the cart. It is derived
// purely from the current cart and currency state, with no hidden
// accumulator, so the total can never drift from the sum of the lines.
type ViewModel struct {
	Lines      []LineView `json:"lines"`
	TotalLabel string     `json:"total"`
	ItemCount  int        `json:"item_count"`
}

// Project transforms the line sequence and currency table into a ViewModel.
// Subtotals and the grand total are priced in the selected currency.
func Project(lines []cart.Line, table *currency.Table) ViewModel {
	code := table.Selected()

	var total float64
	lineViews := make([]LineView, len(lines))
	var itemCount int
	for i, line := range lines {
		subtotal := table.ConvertSelected(line.Product.Price) * float64(line.Quantity)
		lineViews[i] = LineView{
			Title:         line.Product.Title,
			Quantity:      line.Quantity,
			SubtotalLabel: Label(code, subtotal),
		}
		total += subtotal
		itemCount += line.Quantity
	}

	return ViewModel{
		Lines:      lineViews,
		TotalLabel: Label(code, total),
		ItemCount:  itemCount,
	}
}

// Label formats an amount as a currency-code-prefixed, two-decimal string.
func Label(code string, amount float64) string {
	return fmt.Sprintf("%s %.2f", code, amount)
}
