package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText).Padding(1, 2)

	titleStyle     = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	titleIconStyle = lipgloss.NewStyle().Foreground(colorAccent)

	rowNameStyle  = lipgloss.NewStyle().Foreground(colorText)
	rowPriceStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	rowQtyStyle   = lipgloss.NewStyle().Foreground(colorSubtext0)

	summaryCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder).
				Background(colorCard).
				Padding(0, 1)
	totalStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorCard).
			Bold(true)
	buttonStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorButton).
			Bold(true)

	bannerStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorToast).
			Padding(0, 1)
	bannerTextStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorToast)
	bannerActionStyle = lipgloss.NewStyle().
				Foreground(colorFocus).
				Background(colorToast).
				Bold(true)
)
