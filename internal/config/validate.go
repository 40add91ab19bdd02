package config

import (
	"fmt"
	"path"
	"slices"
	"strings"
)

// MarkdownStyles lists the accepted ui.markdown_style values.
var MarkdownStyles = []string{"auto", "dark", "light", "notty", "ascii", "dracula", "tokyo-night", "pink"}

// ValidationError collects multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// validate checks the config for internal consistency. All checks run and
// every failure is reported.
func validate(cfg *Config) error {
	var errs []string

	if strings.TrimSpace(cfg.Source.Base) == "" {
		errs = append(errs, "source.base must not be empty")
	}
	if cfg.Source.IndexFile == "" {
		errs = append(errs, "source.index_file must not be empty")
	} else if clean := path.Clean(cfg.Source.IndexFile); strings.HasPrefix(clean, "..") || path.IsAbs(clean) {
		errs = append(errs, fmt.Sprintf("source.index_file %q must be relative to source.base", cfg.Source.IndexFile))
	}
	if cfg.Source.FetchTimeout < 0 {
		errs = append(errs, "source.fetch_timeout must not be negative")
	}

	if !slices.Contains(MarkdownStyles, cfg.UI.MarkdownStyle) {
		errs = append(errs, fmt.Sprintf("ui.markdown_style %q must be one of %s", cfg.UI.MarkdownStyle, strings.Join(MarkdownStyles, ", ")))
	}
	if cfg.UI.CopiedDuration <= 0 {
		errs = append(errs, "ui.copied_duration must be positive")
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level %q must be \"debug\", \"info\", \"warn\", or \"error\"", cfg.Log.Level))
	}
	switch cfg.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format %q must be \"console\" or \"json\"", cfg.Log.Format))
	}

	if cfg.Server.Addr == "" {
		errs = append(errs, "server.addr must not be empty")
	}
	if cfg.Index.Output == "" {
		errs = append(errs, "index.output must not be empty")
	}
	if cfg.Update.Repo != "" && strings.Count(cfg.Update.Repo, "/") != 1 {
		errs = append(errs, fmt.Sprintf("update.repo %q must be \"owner/name\"", cfg.Update.Repo))
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
