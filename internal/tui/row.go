package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/shoppingcart/internal/cart"
)

const minRowWidth = 30

// renderCartItemRow lays out one item as name | price | quantity on a single
// line, spread across width with the outer columns pinned to the edges. The
// price column grows to fit the formatted price; cells that still overflow
// are truncated rather than wrapped.
func renderCartItemRow(it cart.Item, currency string, width int) string {
	width = max(width, minRowWidth)
	priceText := cart.FormatMoney(currency, it.Price)
	qtyText := fmt.Sprintf("Qty: %d", it.Quantity)

	side := width / 3
	middle := width - 2*side
	if pw := min(ansi.StringWidth(priceText), width); pw > middle {
		side = (width - pw) / 2
		middle = width - 2*side
	}

	name := rowNameStyle.Width(side).Align(lipgloss.Left).Render(fitCell(it.Name, side))
	price := rowPriceStyle.Width(middle).Align(lipgloss.Center).Render(fitCell(priceText, middle))
	qty := rowQtyStyle.Width(side).Align(lipgloss.Right).Render(fitCell(qtyText, side))
	return lipgloss.JoinHorizontal(lipgloss.Top, name, price, qty)
}

func fitCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
