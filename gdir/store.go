// SPDX-License-Identifier: MIT

package gdir

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/katalvlaran/glacmb/internal/logging"
)

// Store locates glacier directories under a working directory.
type Store struct {
	root string
	log  *logging.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger attaches a logger; the default discards output.
func WithLogger(l *logging.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// NewStore returns a Store rooted at workingDir. The directory is created
// lazily by Init.
func NewStore(workingDir string, opts ...StoreOption) (*Store, error) {
	if workingDir == "" {
		return nil, ErrEmptyWorkingDir
	}
	s := &Store{root: filepath.Clean(workingDir), log: logging.NopLogger()}
	for _, fn := range opts {
		if fn != nil {
			fn(s)
		}
	}

	return s, nil
}

// Root returns the working directory.
func (s *Store) Root() string { return s.root }

// Path returns the directory path for id without touching the filesystem.
func (s *Store) Path(id string) (string, error) {
	canonical, err := NormalizeRGIID(id)
	if err != nil {
		return "", err
	}

	return filepath.Join(append([]string{s.root}, relDir(canonical)...)...), nil
}

// Init creates the directory for meta.RGIID and writes its metadata.
// With reset, an existing directory is removed first; without it an
// existing directory yields ErrDirectoryExists.
func (s *Store) Init(meta Metadata, reset bool) (*Directory, error) {
	canonical, err := NormalizeRGIID(meta.RGIID)
	if err != nil {
		return nil, err
	}
	meta.RGIID = canonical
	dir, _ := s.Path(canonical)
	log := s.log.WithGlacier(canonical)

	switch _, err = os.Stat(dir); {
	case err == nil && !reset:
		return nil, fmt.Errorf("%w: %s", ErrDirectoryExists, dir)
	case err == nil:
		log.Warn("resetting glacier directory", "path", dir)
		if err = os.RemoveAll(dir); err != nil {
			return nil, fmt.Errorf("reset %s: %w", dir, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}

	if err = os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	d := &Directory{RGIID: canonical, Dir: dir, Meta: meta, log: log}
	if err = d.writeProduct(ProductGlacier, meta); err != nil {
		return nil, err
	}
	log.Debug("initialized glacier directory", "path", dir)

	return d, nil
}

// Open returns the existing directory for id with its metadata loaded.
func (s *Store) Open(id string) (*Directory, error) {
	canonical, err := NormalizeRGIID(id)
	if err != nil {
		return nil, err
	}
	dir, _ := s.Path(canonical)

	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, canonical)
	case err != nil:
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, dir)
	}

	d := &Directory{RGIID: canonical, Dir: dir, log: s.log.WithGlacier(canonical)}
	if err = d.readProduct(ProductGlacier, &d.Meta); err != nil {
		return nil, err
	}
	d.log.Debug("opened glacier directory", "path", dir)

	return d, nil
}
