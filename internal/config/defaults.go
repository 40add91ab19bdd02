package config

import (
	"os"
	"path/filepath"
)

func boolPtr(b bool) *bool { return &b }

func DefaultConfig() Config {
	return Config{
		Source: SourceConfig{
			Base:      "builtin:",
			IndexFile: "skills.json",
		},
		UI: UIConfig{
			MarkdownStyle:  "auto",
			CopiedDuration: 2000,
			WordWrap:       boolPtr(true),
		},
		Log: LogConfig{
			Level:  "info",
			File:   filepath.Join(os.TempDir(), "skillcat.log"),
			Format: "console",
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8080",
		},
		Index: IndexConfig{
			Root:   ".",
			Output: "skills.json",
		},
		Update: UpdateConfig{
			Repo:  "justinpbarnett/skillcat",
			Check: boolPtr(true),
		},
	}
}
