package config

import "time"

type Config struct {
	Source SourceConfig `yaml:"source" toml:"source"`
	UI     UIConfig     `yaml:"ui" toml:"ui"`
	Log    LogConfig    `yaml:"log" toml:"log"`
	Server ServerConfig `yaml:"server" toml:"server"`
	Index  IndexConfig  `yaml:"index" toml:"index"`
	Update UpdateConfig `yaml:"update" toml:"update"`
}

type SourceConfig struct {
	Base         string `yaml:"base" toml:"base"`
	IndexFile    string `yaml:"index_file" toml:"index_file"`
	FetchTimeout int    `yaml:"fetch_timeout" toml:"fetch_timeout"` // seconds, 0 = none
}

// Timeout returns the per-fetch deadline, zero when fetches may run forever.
func (s SourceConfig) Timeout() time.Duration {
	return time.Duration(s.FetchTimeout) * time.Second
}

type UIConfig struct {
	MarkdownStyle  string `yaml:"markdown_style" toml:"markdown_style"`
	CopiedDuration int    `yaml:"copied_duration" toml:"copied_duration"` // milliseconds
	WordWrap       *bool  `yaml:"word_wrap" toml:"word_wrap"`
}

func (u UIConfig) CopiedFor() time.Duration {
	return time.Duration(u.CopiedDuration) * time.Millisecond
}

type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	File   string `yaml:"file" toml:"file"`
	Format string `yaml:"format" toml:"format"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" toml:"addr"`
}

type IndexConfig struct {
	Root   string `yaml:"root" toml:"root"`
	Output string `yaml:"output" toml:"output"`
}

type UpdateConfig struct {
	Repo  string `yaml:"repo" toml:"repo"`
	Check *bool  `yaml:"check" toml:"check"`
}
