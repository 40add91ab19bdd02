package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/justinpbarnett/skillcat/internal/env"
)

// Load discovers a config file, merges it with defaults, applies environment
// variable overrides, validates the result, and returns the final config.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return LoadFrom(cwd)
}

// LoadFrom loads config using dir as the starting point for file discovery.
func LoadFrom(dir string) (*Config, error) {
	return LoadWithEnv(dir, &env.OSReader{})
}

// LoadWithEnv is LoadFrom with an injected environment.
func LoadWithEnv(dir string, envReader env.Reader) (*Config, error) {
	cfg := DefaultConfig()

	path := discoverConfigPath(dir)
	if path != "" {
		override, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		merge(&cfg, override)
	}

	applyEnvOverrides(&cfg, envReader)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigPath returns the first config file of the discovery chain
// that exists, or "" for defaults-only mode.
func discoverConfigPath(dir string) string {
	candidates := []string{
		filepath.Join(dir, "skillcat.yaml"),
		filepath.Join(dir, "skillcat.toml"),
	}
	if home, err := os.UserHomeDir(); err == nil {
		userDir := filepath.Join(home, ".config", "skillcat")
		candidates = append(candidates,
			filepath.Join(userDir, "config.yaml"),
			filepath.Join(userDir, "config.toml"),
		)
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

// loadFromFile reads a YAML or TOML config file, chosen by extension.
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("parsing TOML: %w", err)
		}
		return &cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	return &cfg, nil
}

// merge overlays override onto base. Scalar fields override when non-zero,
// pointer-to-bool fields when non-nil.
func merge(base *Config, override *Config) {
	// Source
	if override.Source.Base != "" {
		base.Source.Base = override.Source.Base
	}
	if override.Source.IndexFile != "" {
		base.Source.IndexFile = override.Source.IndexFile
	}
	if override.Source.FetchTimeout != 0 {
		base.Source.FetchTimeout = override.Source.FetchTimeout
	}

	// UI
	if override.UI.MarkdownStyle != "" {
		base.UI.MarkdownStyle = override.UI.MarkdownStyle
	}
	if override.UI.CopiedDuration != 0 {
		base.UI.CopiedDuration = override.UI.CopiedDuration
	}
	if override.UI.WordWrap != nil {
		base.UI.WordWrap = override.UI.WordWrap
	}

	// Log
	if override.Log.Level != "" {
		base.Log.Level = override.Log.Level
	}
	if override.Log.File != "" {
		base.Log.File = override.Log.File
	}
	if override.Log.Format != "" {
		base.Log.Format = override.Log.Format
	}

	if override.Server.Addr != "" {
		base.Server.Addr = override.Server.Addr
	}

	if override.Index.Root != "" {
		base.Index.Root = override.Index.Root
	}
	if override.Index.Output != "" {
		base.Index.Output = override.Index.Output
	}

	if override.Update.Repo != "" {
		base.Update.Repo = override.Update.Repo
	}
	if override.Update.Check != nil {
		base.Update.Check = override.Update.Check
	}
}

// applyEnvOverrides applies SKILLCAT_* environment variables on top of the config.
func applyEnvOverrides(cfg *Config, envReader env.Reader) {
	if v := envReader.Getenv("SKILLCAT_SOURCE"); v != "" {
		cfg.Source.Base = v
	}
	if v := envReader.Getenv("SKILLCAT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := envReader.Getenv("SKILLCAT_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := envReader.Getenv("SKILLCAT_FETCH_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Source.FetchTimeout = n
		} else {
			fmt.Fprintf(os.Stderr, "warning: SKILLCAT_FETCH_TIMEOUT=%q is not a valid integer, ignoring\n", v)
		}
	}
	if v := envReader.Getenv("SKILLCAT_SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
}
