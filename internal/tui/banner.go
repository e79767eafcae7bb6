package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	bannerMessage = "Ordered"
	dismissLabel  = "Dismiss"
)

// confirmationBanner is the dismissible notice shown after checkout.
type confirmationBanner struct {
	OnDismiss tea.Cmd
}

func (b confirmationBanner) View(width int, mark marker) string {
	width = max(width, minRowWidth)
	inner := width - 2

	action := mark(zoneDismiss, bannerActionStyle.Render(dismissLabel))
	textWidth := max(inner-ansi.StringWidth(dismissLabel), 0)
	text := bannerTextStyle.Width(textWidth).Render(bannerMessage)
	return bannerStyle.Width(width).Render(lipgloss.JoinHorizontal(lipgloss.Top, text, action))
}

func (b confirmationBanner) Activate() tea.Cmd {
	return b.OnDismiss
}
