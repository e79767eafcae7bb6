package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SHOPPINGCART_CONFIG", "")
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "$", cfg.UI.CurrencySymbol)
	require.Equal(t, 60, cfg.UI.Width)
	require.True(t, cfg.UI.AltScreen)
	require.True(t, cfg.UI.Mouse)
	require.Equal(t, []string{"enter", "c"}, cfg.Keys.Checkout)
	require.Equal(t, []string{"esc", "d"}, cfg.Keys.Dismiss)
	require.Equal(t, []string{"q", "ctrl+c"}, cfg.Keys.Quit)
	require.Empty(t, cfg.Log.Path)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "cart.toml")
	data := `
[ui]
currency_symbol = "€"
width = 80
mouse = false

[keys]
checkout = ["o"]

[log]
path = "/tmp/cart.log"
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "€", cfg.UI.CurrencySymbol)
	require.Equal(t, 80, cfg.UI.Width)
	require.False(t, cfg.UI.Mouse)
	require.True(t, cfg.UI.AltScreen)
	require.Equal(t, []string{"o"}, cfg.Keys.Checkout)
	require.Equal(t, []string{"esc", "d"}, cfg.Keys.Dismiss)
	require.Equal(t, "/tmp/cart.log", cfg.Log.Path)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("SHOPPINGCART_UI_CURRENCY_SYMBOL", "£")
	t.Setenv("SHOPPINGCART_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "£", cfg.UI.CurrencySymbol)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfigEnvPath(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "env.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nwidth = 100\n"), 0o644))
	t.Setenv("SHOPPINGCART_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 100, cfg.UI.Width)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadNonPositiveWidthFallsBack(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "w.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nwidth = 0\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 60, cfg.UI.Width)
}
