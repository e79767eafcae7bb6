package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/jask/shoppingcart/internal/config"
)

type keyMap struct {
	Checkout key.Binding
	Dismiss  key.Binding
	Quit     key.Binding
}

func newKeyMap(cfg config.KeysConfig) keyMap {
	return keyMap{
		Checkout: binding(cfg.Checkout, []string{"enter", "c"}, "checkout"),
		Dismiss:  binding(cfg.Dismiss, []string{"esc", "d"}, "dismiss"),
		Quit:     binding(cfg.Quit, []string{"q", "ctrl+c"}, "quit"),
	}
}

func binding(keys, fallback []string, desc string) key.Binding {
	if len(keys) == 0 {
		keys = fallback
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], desc))
}

// ShortHelp implements help.KeyMap. Disabled bindings are hidden by the help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Checkout, k.Dismiss, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
