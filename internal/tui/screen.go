package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"github.com/jask/shoppingcart/internal/cart"
	"github.com/jask/shoppingcart/internal/config"
)

const (
	zoneCheckout = "checkout"
	zoneDismiss  = "dismiss"

	cartGlyph = "🛒"
)

type checkoutMsg struct{}

type dismissMsg struct{}

// Screen is the shopping cart view. It owns the fixed cart and the banner flag.
type Screen struct {
	cart          cart.Cart
	currency      string
	width         int
	bannerVisible bool

	keys   keyMap
	help   help.Model
	zones  *zone.Manager
	prefix string
	logger *zap.Logger
}

// New builds the screen with the default cart. A nil logger is replaced by a no-op.
func New(cfg config.Config, logger *zap.Logger) *Screen {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(colorMuted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(colorMuted)

	zones := zone.New()
	zones.SetEnabled(cfg.UI.Mouse)

	currency := cfg.UI.CurrencySymbol
	if currency == "" {
		currency = "$"
	}
	s := &Screen{
		cart:     cart.Default(),
		currency: currency,
		width:    max(cfg.UI.Width, minRowWidth),
		keys:     newKeyMap(cfg.Keys),
		help:     h,
		zones:    zones,
		prefix:   zones.NewPrefix(),
		logger:   logger,
	}
	s.syncKeys()
	return s
}

// Close stops the zone manager's background worker.
func (s *Screen) Close() {
	s.zones.Close()
}

// BannerVisible reports whether the confirmation banner is shown.
func (s *Screen) BannerVisible() bool {
	return s.bannerVisible
}

func (s *Screen) Init() tea.Cmd {
	s.logger.Info("screen started",
		zap.Int("items", s.cart.Len()),
		zap.String("total", s.cart.Total().StringFixed(2)),
	)
	return nil
}

func (s *Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = max(m.Width-appStyle.GetHorizontalFrameSize(), minRowWidth)
		s.help.Width = s.width
	case tea.KeyMsg:
		switch {
		case key.Matches(m, s.keys.Quit):
			return s, tea.Quit
		case key.Matches(m, s.keys.Checkout):
			return s, s.checkout("key")
		case key.Matches(m, s.keys.Dismiss):
			return s, s.dismiss("key")
		}
	case tea.MouseMsg:
		if m.Action != tea.MouseActionRelease || m.Button != tea.MouseButtonLeft {
			return s, nil
		}
		if s.zones.Get(s.prefix + zoneCheckout).InBounds(m) {
			return s, s.checkout("mouse")
		}
		if s.bannerVisible && s.zones.Get(s.prefix+zoneDismiss).InBounds(m) {
			return s, s.dismiss("mouse")
		}
	case checkoutMsg:
		s.bannerVisible = true
		s.syncKeys()
	case dismissMsg:
		s.bannerVisible = false
		s.syncKeys()
	}
	return s, nil
}

func (s *Screen) checkout(source string) tea.Cmd {
	s.logger.Info("checkout activated",
		zap.String("source", source),
		zap.String("total", s.cart.Total().StringFixed(2)),
		zap.Int("items", s.cart.Len()),
	)
	return s.summary().Activate()
}

func (s *Screen) dismiss(source string) tea.Cmd {
	s.logger.Info("banner dismissed", zap.String("source", source))
	return s.banner().Activate()
}

// syncKeys enables the dismiss binding only while there is a banner to dismiss.
func (s *Screen) syncKeys() {
	s.keys.Dismiss.SetEnabled(s.bannerVisible)
}

func (s *Screen) summary() summarySection {
	return summarySection{
		Total:      s.cart.Total(),
		Currency:   s.currency,
		OnCheckout: func() tea.Msg { return checkoutMsg{} },
	}
}

func (s *Screen) banner() confirmationBanner {
	return confirmationBanner{
		OnDismiss: func() tea.Msg { return dismissMsg{} },
	}
}

func (s *Screen) mark(id, v string) string {
	return s.zones.Mark(s.prefix+id, v)
}

func (s *Screen) View() string {
	var b strings.Builder

	b.WriteString(titleIconStyle.Render(cartGlyph) + " " + titleStyle.Render("Shopping Cart"))
	b.WriteString("\n\n")

	for _, it := range s.cart.Items() {
		b.WriteString(renderCartItemRow(it, s.currency, s.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(s.summary().View(s.width, s.mark))

	if s.bannerVisible {
		b.WriteString("\n\n")
		b.WriteString(s.banner().View(s.width, s.mark))
	}

	b.WriteString("\n\n")
	b.WriteString(s.help.View(s.keys))

	return s.zones.Scan(appStyle.Render(b.String()))
}
