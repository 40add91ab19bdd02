package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/justinpbarnett/skillcat/internal/config"
	"github.com/justinpbarnett/skillcat/internal/logger"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configDir string
	source    string
	debug     bool
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "skillcat",
		Short:         "Browse a catalog of agent skills in the terminal",
		SilenceUsage:  true, // don't print usage on operational errors
		SilenceErrors: true,
		Long: `skillcat lists the skills of a catalog (a skills.json index plus one
SKILL.md per skill), lets you search and filter them, read their
documentation and copy an invocation prompt to the clipboard.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd.Context(), flags, "")
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configDir, "config-dir", "", "directory searched for skillcat.yaml or skillcat.toml (default: current directory)")
	pf.StringVar(&flags.source, "source", "", `catalog base: an http(s) URL, a directory, or "builtin:" (overrides source.base)`)
	pf.BoolVar(&flags.debug, "debug", false, "log at debug level")

	root.AddCommand(
		newShowCmd(flags),
		newIndexCmd(flags),
		newServeCmd(flags),
		newVersionCmd(flags),
		newUpdateCmd(flags),
	)
	return root
}

// loadConfig loads the configuration and applies the persistent flags.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.configDir != "" {
		cfg, err = config.LoadFrom(flags.configDir)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if flags.source != "" {
		cfg.Source.Base = flags.source
	}
	return cfg, nil
}

// setupLogging initialises the global logger. Only the TUI owns the
// terminal, so the other commands log to stderr.
func setupLogging(cfg *config.Config, flags *globalFlags, tui bool) error {
	opts := logger.Options{
		Level:  cfg.Log.Level,
		File:   cfg.Log.File,
		Format: cfg.Log.Format,
		Debug:  flags.debug,
	}
	if !tui {
		opts.File = "stderr"
	}
	if err := logger.Initialize(opts); err != nil {
		return fmt.Errorf("initialising logger: %w", err)
	}
	return nil
}
