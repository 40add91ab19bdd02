package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/justinpbarnett/skillcat/internal/catalog"
)

// FSSource reads a catalog laid out in a file system: the index at its root
// and documents under skills/.
type FSSource struct {
	fsys      fs.FS
	indexFile string
	name      string
}

func NewFS(fsys fs.FS, indexFile, name string) *FSSource {
	return &FSSource{fsys: fsys, indexFile: indexFile, name: name}
}

// NewDir serves the catalog rooted at dir.
func NewDir(dir, indexFile string) *FSSource {
	return NewFS(os.DirFS(dir), indexFile, dir)
}

func (s *FSSource) String() string { return s.name }

func (s *FSSource) Index(ctx context.Context) (catalog.Index, error) {
	data, err := s.read(ctx, s.indexFile)
	if err != nil {
		return nil, err
	}
	return catalog.DecodeIndex(data)
}

func (s *FSSource) Document(ctx context.Context, location string) (string, error) {
	data, err := s.read(ctx, location)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *FSSource) read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clean := path.Clean(name)
	if !fs.ValidPath(clean) {
		return nil, fmt.Errorf("reading %s: %w", name, fs.ErrInvalid)
	}
	data, err := fs.ReadFile(s.fsys, clean)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}
