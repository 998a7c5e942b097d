package page

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore reads descriptors from `<dir>/<slug>.yaml`, falling back to
// `.yml`.  Nested slugs map to sub-directories.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

var fileExts = []string{".yaml", ".yml"}

func (s *FileStore) Get(ctx context.Context, slug string) (*Page, error) {
	slug, err := NormalizeSlug(slug)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base := filepath.Join(s.dir, filepath.FromSlash(slug))
	for _, ext := range fileExts {
		f, err := os.Open(base + ext)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		p, err := Decode(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		return finish(p, slug)
	}
	return nil, ErrNotFound
}
