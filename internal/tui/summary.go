package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/jask/shoppingcart/internal/cart"
)

// marker wraps rendered text in a clickable zone.
type marker func(id, s string) string

// summarySection shows the cart total and the checkout button.
type summarySection struct {
	Total      decimal.Decimal
	Currency   string
	OnCheckout tea.Cmd
}

func (s summarySection) View(width int, mark marker) string {
	width = max(width, minRowWidth)
	// border takes two columns, horizontal padding another two
	inner := width - 4

	total := totalStyle.Render("Total: " + cart.FormatMoney(s.Currency, s.Total))
	button := mark(zoneCheckout, buttonStyle.Width(inner).Align(lipgloss.Center).Render("Checkout"))
	gap := lipgloss.NewStyle().Background(colorCard).Width(inner).Render("")

	body := lipgloss.JoinVertical(lipgloss.Left, total, gap, button)
	return summaryCardStyle.Width(width - 2).Render(body)
}

// Activate returns the checkout callback for the event loop to run once.
func (s summarySection) Activate() tea.Cmd {
	return s.OnCheckout
}
