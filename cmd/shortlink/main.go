package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/csheth/shortlink/internal/config"
	"github.com/csheth/shortlink/internal/logging"
	"github.com/csheth/shortlink/internal/shortener"
	"github.com/csheth/shortlink/internal/tui"
)

// Version is set via ldflags during build.
var Version = "dev"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "shortlink [url]",
		Short:         "Shorten long links from the terminal",
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			var initial string
			if len(args) == 1 {
				initial = args[0]
			}
			return run(cmd, cfg, initial)
		},
	}
	config.RegisterFlags(cmd.Flags())
	cmd.SetVersionTemplate("shortlink {{.Version}}\n")
	return cmd
}

func run(cmd *cobra.Command, cfg config.Config, initialURL string) error {
	logger, err := logging.New(cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	client, err := shortener.New(shortener.Config{BaseURL: cfg.APIURL, Logger: logger})
	if err != nil {
		return err
	}
	logger.Info("starting",
		zap.String("version", Version),
		zap.String("api_url", client.BaseURL()),
		zap.Bool("mouse", cfg.Mouse),
	)

	opts := []tea.ProgramOption{tea.WithContext(cmd.Context())}
	if !cfg.NoAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Client:     client,
			Logger:     logger,
			Context:    cmd.Context(),
			Mouse:      cfg.Mouse,
			InitialURL: initialURL,
		}),
		opts...,
	)
	if _, err := program.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "shortlink:", err)
		os.Exit(1)
	}
}
