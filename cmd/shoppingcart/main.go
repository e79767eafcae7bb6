package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/shoppingcart/internal/config"
	"github.com/jask/shoppingcart/internal/logging"
	"github.com/jask/shoppingcart/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		preview bool
	)
	cmd := &cobra.Command{
		Use:           "shoppingcart",
		Short:         "Shopping cart screen for the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if preview {
				return runPreview(cmd, cfg)
			}
			return run(cfg)
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "", "path to a TOML config file")
	cmd.Flags().BoolVar(&preview, "preview", false, "render the screen once to stdout and exit")
	return cmd
}

func runPreview(cmd *cobra.Command, cfg config.Config) error {
	screen := tui.New(cfg, nil)
	defer screen.Close()
	_, err := fmt.Fprintln(cmd.OutOrStdout(), screen.View())
	return err
}

func run(cfg config.Config) error {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	screen := tui.New(cfg, logger)
	defer screen.Close()

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(screen, opts...).Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
