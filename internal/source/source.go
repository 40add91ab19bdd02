// Package source fetches the skill index and skill documents from wherever a
// catalog lives: an HTTP origin, a directory on disk, or the embedded demo.
package source

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/justinpbarnett/skillcat/internal/catalog"
	"github.com/justinpbarnett/skillcat/skills"
)

// Builtin is the base that selects the embedded demo catalog.
const Builtin = "builtin:"

// Source is the Index Loader transport. Implementations perform exactly one
// read per call and never cache.
type Source interface {
	Index(ctx context.Context) (catalog.Index, error)
	Document(ctx context.Context, location string) (string, error)
}

type Options struct {
	IndexFile string        // index location relative to the base
	Timeout   time.Duration // per-request deadline for HTTP bases, 0 = none
}

func (o Options) indexFile() string {
	if o.IndexFile == "" {
		return "skills.json"
	}
	return o.IndexFile
}

// New picks an implementation for base: http(s) URLs are fetched over HTTP,
// "builtin:" serves the embedded catalog, and anything else must be a
// directory (optionally written as a file:// URL).
func New(base string, opts Options) (Source, error) {
	switch {
	case base == Builtin:
		return NewFS(skills.Catalog(), opts.indexFile(), Builtin), nil
	case strings.HasPrefix(base, "http://"), strings.HasPrefix(base, "https://"):
		return NewHTTP(base, opts.indexFile(), opts.Timeout), nil
	}

	dir := strings.TrimPrefix(base, "file://")
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("source %q: %w", base, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source %q is not a directory or URL", base)
	}
	return NewDir(dir, opts.indexFile()), nil
}
