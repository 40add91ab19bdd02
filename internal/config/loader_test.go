package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/justinpbarnett/skillcat/internal/env"
	"github.com/justinpbarnett/skillcat/internal/env/mocks"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()
	tmp := t.TempDir()

	cfg, err := LoadWithEnv(tmp, env.MapReader{})
	if err != nil {
		t.Fatalf("LoadWithEnv() error: %v", err)
	}

	if cfg.Source.Base != "builtin:" {
		t.Errorf("expected source base %q, got %q", "builtin:", cfg.Source.Base)
	}
	if cfg.Source.IndexFile != "skills.json" {
		t.Errorf("expected index file %q, got %q", "skills.json", cfg.Source.IndexFile)
	}
	if cfg.Source.Timeout() != 0 {
		t.Errorf("expected no fetch timeout by default, got %v", cfg.Source.Timeout())
	}
	if cfg.UI.CopiedFor() != 2*time.Second {
		t.Errorf("expected copied duration 2s, got %v", cfg.UI.CopiedFor())
	}
	if cfg.UI.WordWrap == nil || !*cfg.UI.WordWrap {
		t.Error("expected WordWrap default to be true")
	}
	if cfg.Log.File == "" {
		t.Error("expected a default log file")
	}
}

func TestLoadFromYAML(t *testing.T) {
	t.Parallel()
	tmp := t.TempDir()

	yaml := `
source:
  base: https://skills.example.com
  fetch_timeout: 15
ui:
  markdown_style: dark
  word_wrap: false
`
	os.WriteFile(filepath.Join(tmp, "skillcat.yaml"), []byte(yaml), 0644)

	cfg, err := LoadWithEnv(tmp, env.MapReader{})
	if err != nil {
		t.Fatalf("LoadWithEnv() error: %v", err)
	}

	if cfg.Source.Base != "https://skills.example.com" {
		t.Errorf("expected base from file, got %q", cfg.Source.Base)
	}
	if cfg.Source.Timeout() != 15*time.Second {
		t.Errorf("expected 15s timeout, got %v", cfg.Source.Timeout())
	}
	if cfg.UI.MarkdownStyle != "dark" {
		t.Errorf("expected markdown style %q, got %q", "dark", cfg.UI.MarkdownStyle)
	}
	if cfg.UI.WordWrap == nil || *cfg.UI.WordWrap {
		t.Error("expected word_wrap: false from YAML to override default true")
	}
	if cfg.Source.IndexFile != "skills.json" {
		t.Errorf("expected index file default preserved, got %q", cfg.Source.IndexFile)
	}
}

func TestLoadFromTOML(t *testing.T) {
	t.Parallel()
	tmp := t.TempDir()

	os.WriteFile(filepath.Join(tmp, "skillcat.toml"), []byte(`
[source]
base = "./catalog"
index_file = "index.json"

[ui]
copied_duration = 500

[log]
level = "debug"
format = "json"
`), 0644)

	cfg, err := LoadWithEnv(tmp, env.MapReader{})
	if err != nil {
		t.Fatalf("LoadWithEnv() error: %v", err)
	}

	if cfg.Source.Base != "./catalog" || cfg.Source.IndexFile != "index.json" {
		t.Errorf("unexpected source %+v", cfg.Source)
	}
	if cfg.UI.CopiedFor() != 500*time.Millisecond {
		t.Errorf("expected 500ms, got %v", cfg.UI.CopiedFor())
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
}

func TestYAMLPreferredOverTOML(t *testing.T) {
	t.Parallel()
	tmp := t.TempDir()
	os.WriteFile(filepath.Join(tmp, "skillcat.yaml"), []byte("server:\n  addr: \":9000\"\n"), 0644)
	os.WriteFile(filepath.Join(tmp, "skillcat.toml"), []byte("[server]\naddr = \":9001\"\n"), 0644)

	cfg, err := LoadWithEnv(tmp, env.MapReader{})
	if err != nil {
		t.Fatalf("LoadWithEnv() error: %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("expected yaml file to win, got %q", cfg.Server.Addr)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	t.Parallel()
	tmp := t.TempDir()
	os.WriteFile(filepath.Join(tmp, "skillcat.toml"), []byte("[source\nbase = "), 0644)

	if _, err := LoadWithEnv(tmp, env.MapReader{}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	t.Parallel()
	tmp := t.TempDir()
	os.WriteFile(filepath.Join(tmp, "skillcat.yaml"), []byte("---\n"), 0644)

	cfg, err := LoadWithEnv(tmp, env.MapReader{})
	if err != nil {
		t.Fatalf("LoadWithEnv() error on empty file: %v", err)
	}
	if cfg.Source.Base != "builtin:" {
		t.Errorf("expected default base, got %q", cfg.Source.Base)
	}
}

func TestLoadInvalidFileFailsValidation(t *testing.T) {
	t.Parallel()
	tmp := t.TempDir()
	os.WriteFile(filepath.Join(tmp, "skillcat.yaml"), []byte("log:\n  level: loud\n"), 0644)

	if _, err := LoadWithEnv(tmp, env.MapReader{}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestMergePreservesDefaults(t *testing.T) {
	t.Parallel()
	base := DefaultConfig()
	override := &Config{
		Source: SourceConfig{Base: "http://localhost:8080"},
	}

	merge(&base, override)

	if base.Source.Base != "http://localhost:8080" {
		t.Errorf("expected base %q, got %q", "http://localhost:8080", base.Source.Base)
	}
	if base.Source.IndexFile != "skills.json" {
		t.Errorf("expected index file preserved, got %q", base.Source.IndexFile)
	}
	if base.UI.CopiedDuration != 2000 {
		t.Errorf("expected copied duration preserved, got %d", base.UI.CopiedDuration)
	}
	if base.Update.Check == nil || !*base.Update.Check {
		t.Error("expected update check preserved as true")
	}
}

func TestMergeBoolPtrOverride(t *testing.T) {
	t.Parallel()
	base := DefaultConfig()
	merge(&base, &Config{
		UI:     UIConfig{WordWrap: boolPtr(false)},
		Update: UpdateConfig{Check: boolPtr(false)},
	})

	if base.UI.WordWrap == nil || *base.UI.WordWrap {
		t.Error("expected WordWrap overridden to false")
	}
	if base.Update.Check == nil || *base.Update.Check {
		t.Error("expected Check overridden to false")
	}
}

func TestDiscoveryChain(t *testing.T) {
	// Uses t.Setenv so cannot be parallel
	tmp := t.TempDir()

	projectDir := filepath.Join(tmp, "project")
	os.MkdirAll(projectDir, 0755)
	os.WriteFile(filepath.Join(projectDir, "skillcat.yaml"), []byte(`
source:
  base: ./project-catalog
`), 0644)

	homeDir := filepath.Join(tmp, "home")
	configDir := filepath.Join(homeDir, ".config", "skillcat")
	os.MkdirAll(configDir, 0755)
	os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(`
[source]
base = "./user-catalog"
`), 0644)

	t.Setenv("HOME", homeDir)

	cfg, err := LoadWithEnv(projectDir, env.MapReader{})
	if err != nil {
		t.Fatalf("LoadWithEnv() error: %v", err)
	}
	if cfg.Source.Base != "./project-catalog" {
		t.Errorf("expected project-level config, got %q", cfg.Source.Base)
	}

	emptyDir := filepath.Join(tmp, "empty")
	os.MkdirAll(emptyDir, 0755)

	cfg, err = LoadWithEnv(emptyDir, env.MapReader{})
	if err != nil {
		t.Fatalf("LoadWithEnv() error: %v", err)
	}
	if cfg.Source.Base != "./user-catalog" {
		t.Errorf("expected user-level config fallback, got %q", cfg.Source.Base)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Parallel()
	tmp := t.TempDir()

	cfg, err := LoadWithEnv(tmp, env.MapReader{
		"SKILLCAT_SOURCE":        "https://cdn.example.com/catalog",
		"SKILLCAT_LOG_LEVEL":     "debug",
		"SKILLCAT_LOG_FILE":      "/tmp/other.log",
		"SKILLCAT_FETCH_TIMEOUT": "30",
		"SKILLCAT_SERVER_ADDR":   ":9999",
	})
	if err != nil {
		t.Fatalf("LoadWithEnv() error: %v", err)
	}

	if cfg.Source.Base != "https://cdn.example.com/catalog" {
		t.Errorf("unexpected base %q", cfg.Source.Base)
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "/tmp/other.log" {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
	if cfg.Source.FetchTimeout != 30 {
		t.Errorf("expected timeout 30, got %d", cfg.Source.FetchTimeout)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("unexpected addr %q", cfg.Server.Addr)
	}
}

func TestEnvOverrideInvalidTimeout(t *testing.T) {
	t.Parallel()
	tmp := t.TempDir()

	cfg, err := LoadWithEnv(tmp, env.MapReader{"SKILLCAT_FETCH_TIMEOUT": "soon"})
	if err != nil {
		t.Fatalf("LoadWithEnv() should succeed with invalid env override, got: %v", err)
	}
	if cfg.Source.FetchTimeout != 0 {
		t.Errorf("expected default timeout (invalid env ignored), got %d", cfg.Source.FetchTimeout)
	}
}

func TestEnvOverridesReadThroughReader(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockReader(ctrl)
	reader.EXPECT().Getenv("SKILLCAT_SOURCE").Return("./local")
	reader.EXPECT().Getenv("SKILLCAT_LOG_LEVEL").Return("")
	reader.EXPECT().Getenv("SKILLCAT_LOG_FILE").Return("")
	reader.EXPECT().Getenv("SKILLCAT_FETCH_TIMEOUT").Return("")
	reader.EXPECT().Getenv("SKILLCAT_SERVER_ADDR").Return("")

	cfg := DefaultConfig()
	applyEnvOverrides(&cfg, reader)

	if cfg.Source.Base != "./local" {
		t.Errorf("expected base from reader, got %q", cfg.Source.Base)
	}
}
