package indexer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/justinpbarnett/skillcat/internal/logger"
)

const lockRetryDelay = 100 * time.Millisecond

// Options configures Run.
type Options struct {
	Root        string        // catalog directory holding skills/
	Output      string        // index file; relative paths are resolved against Root
	LockTimeout time.Duration // how long to wait for a concurrent build, 0 = 10s
}

// OutputPath is where Run writes the index.
func (o Options) OutputPath() string {
	if filepath.IsAbs(o.Output) {
		return o.Output
	}
	out := o.Output
	if out == "" {
		out = "skills.json"
	}
	return filepath.Join(o.Root, out)
}

// Run builds the index for opts.Root and replaces the output file. The
// write holds a lock on "<output>.lock" and goes through a temporary file,
// so readers never see a partial index.
func Run(ctx context.Context, opts Options) (Result, error) {
	info, err := os.Stat(opts.Root)
	if err != nil {
		return Result{}, fmt.Errorf("catalog root: %w", err)
	}
	if !info.IsDir() {
		return Result{}, fmt.Errorf("catalog root %s is not a directory", opts.Root)
	}

	res, err := Build(os.DirFS(opts.Root))
	if err != nil {
		return Result{}, err
	}

	out := opts.OutputPath()
	dir := filepath.Dir(out)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating %s: %w", dir, err)
	}
	unlock, err := acquireLock(ctx, out+".lock", opts.LockTimeout)
	if err != nil {
		return Result{}, err
	}
	defer unlock()

	if err := writeIndex(out, res); err != nil {
		return Result{}, err
	}
	logger.Infow("wrote skill index", "path", out, "skills", len(res.Index))
	return res, nil
}

func acquireLock(ctx context.Context, lockPath string, timeout time.Duration) (func(), error) {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	l := flock.New(lockPath)
	locked, err := l.TryLockContext(ctx, lockRetryDelay)
	switch {
	case errors.Is(err, context.DeadlineExceeded), err == nil && !locked:
		return nil, fmt.Errorf("another index build is in progress (lock: %s)", lockPath)
	case err != nil:
		return nil, fmt.Errorf("locking %s: %w", lockPath, err)
	}
	return func() { _ = l.Unlock() }, nil
}

func writeIndex(out string, res Result) error {
	data, err := json.MarshalIndent(res.Index, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(out), ".skills-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, out); err != nil {
		return fmt.Errorf("replacing %s: %w", out, err)
	}
	return nil
}
