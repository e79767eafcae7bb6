package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette (subset)
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorAccent  = colorPink
	colorButton  = colorMauve
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorMuted   = colorOverlay1
	colorCard    = colorSurface0
	colorBorder  = colorSurface2
	colorToast   = colorSurface1
)
