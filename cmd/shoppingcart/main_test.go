package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestPreviewRendersScreen(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SHOPPINGCART_CONFIG", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--preview"})
	require.NoError(t, cmd.Execute())

	plain := ansi.Strip(out.String())
	require.Contains(t, plain, "Shopping Cart")
	require.Contains(t, plain, "Total: $2999.96")
	require.NotContains(t, plain, "Ordered")
}

func TestPreviewUsesConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SHOPPINGCART_CONFIG", "")

	path := filepath.Join(t.TempDir(), "cart.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ncurrency_symbol = \"€\"\n"), 0o644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--preview", "--config", path})
	require.NoError(t, cmd.Execute())
	require.Contains(t, ansi.Strip(out.String()), "Total: €2999.96")
}

func TestMissingConfigFileFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--preview", "--config", filepath.Join(t.TempDir(), "missing.toml")})
	require.Error(t, cmd.Execute())
}

func TestRejectsPositionalArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	require.Error(t, cmd.Execute())
}
