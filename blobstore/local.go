package blobstore

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hupe1980/shortfile"
)

// LocalStore implements Store using a directory on the local file system.
//
// Names are slash-separated paths relative to the root. Parent directories
// are not created; the root (and any sub-directory a name refers to) must
// exist.
type LocalStore struct {
	root  string
	files *shortfile.Store
}

// NewLocalStore creates a new LocalStore rooted at the given directory.
// opts configure the underlying shortfile.Store.
func NewLocalStore(root string, opts ...shortfile.Option) *LocalStore {
	return &LocalStore{
		root:  root,
		files: shortfile.New(opts...),
	}
}

// Root returns the directory the store is rooted at.
func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) path(name string) (string, error) {
	p := filepath.FromSlash(name)
	if name == "" || !filepath.IsLocal(p) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.root, p), nil
}

// Get reads the full content of name.
func (s *LocalStore) Get(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}
	return s.files.ReadBytes(p)
}

// Put atomically replaces name with data.
func (s *LocalStore) Put(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.path(name)
	if err != nil {
		return err
	}
	return s.files.WriteBytes(p, data)
}

// Delete removes name through the file system the store was configured with.
func (s *LocalStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.path(name)
	if err != nil {
		return err
	}
	if err := s.files.Remove(p); err != nil && shortfile.KindOf(err) != shortfile.KindNotFound {
		return err
	}
	return nil
}
