package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/justinpbarnett/skillcat/internal/logger"
	"github.com/justinpbarnett/skillcat/internal/source"
	"github.com/justinpbarnett/skillcat/internal/ui"
	"github.com/justinpbarnett/skillcat/internal/ui/panels"
)

func newShowCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Open the detail screen of one skill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd.Context(), flags, args[0])
		},
	}
}

// runBrowse runs the TUI, starting on the listing or, with startID set,
// on the detail screen of that skill.
func runBrowse(ctx context.Context, flags *globalFlags, startID string) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	if err := setupLogging(cfg, flags, true); err != nil {
		return err
	}
	defer logger.Sync()

	src, err := source.New(cfg.Source.Base, source.Options{
		IndexFile: cfg.Source.IndexFile,
		Timeout:   cfg.Source.Timeout(),
	})
	if err != nil {
		return err
	}
	logger.Infow("starting", "version", panels.Version, "source", cfg.Source.Base, "start_id", startID)

	app := ui.NewApp(cfg, ui.Options{Source: src, StartID: startID})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
