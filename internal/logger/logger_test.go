package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		opts      Options
		wantLevel zapcore.Level
		wantOut   string
		wantJSON  bool
	}{
		{"defaults", Options{}, zapcore.InfoLevel, "stderr", false},
		{"warn to file", Options{Level: "warn", File: "/tmp/x.log"}, zapcore.WarnLevel, "/tmp/x.log", false},
		{"json", Options{Level: "error", Format: "json"}, zapcore.ErrorLevel, "stderr", true},
		{"debug flag wins", Options{Level: "error", Debug: true}, zapcore.DebugLevel, "stderr", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := buildConfig(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, cfg.Level.Level())
			assert.Equal(t, []string{tt.wantOut}, cfg.OutputPaths)
			if tt.wantJSON {
				assert.Equal(t, "json", cfg.Encoding)
			} else {
				assert.Equal(t, "console", cfg.Encoding)
			}
		})
	}
}

func TestBuildConfigRejectsUnknownLevel(t *testing.T) {
	t.Parallel()
	_, err := buildConfig(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestHelpersWriteToGlobal(t *testing.T) { //nolint:paralleltest // replaces the global logger
	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(restore)

	Debugw("debug message", "key", "value")
	Infow("info message", "skills", 3)
	Warnw("index fetch failed", "base", "http://example")
	Errorw("copy failed", "skill", "foo")

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "info message", entries[1].Message)
	assert.Equal(t, int64(3), entries[1].ContextMap()["skills"])
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, "http://example", entries[2].ContextMap()["base"])
	assert.Equal(t, "foo", entries[3].ContextMap()["skill"])
}

func TestInitializeWritesToFile(t *testing.T) { //nolint:paralleltest // replaces the global logger
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	path := filepath.Join(t.TempDir(), "skillcat.log")
	require.NoError(t, Initialize(Options{Level: "info", File: path}))

	Debugw("hidden")
	Warnw("visible", "n", 1)
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible")
	assert.NotContains(t, string(data), "hidden")
}
