package shortfile

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/hupe1980/shortfile/internal/fs"
)

const (
	opRead   = "read"
	opWrite  = "write"
	opRemove = "remove"

	// maxTempBase bounds the destination name embedded in the temporary
	// file name, leaving room for the prefix and random suffix within
	// NAME_MAX.
	maxTempBase = 200
)

// Store reads and atomically replaces whole short files.
//
// A Store holds only configuration and is safe for concurrent use.
type Store struct {
	opts options
}

// New creates a Store.
func New(optFns ...Option) *Store {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Store{opts: opts}
}

// Read returns the entire content of the regular file at path, byte for byte.
func (s *Store) Read(path string) (string, error) {
	data, err := s.ReadBytes(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadBytes is like Read but returns the content as a byte slice.
func (s *Store) ReadBytes(path string) ([]byte, error) {
	if path == "" {
		return nil, &Error{Op: opRead, Path: path, Kind: KindInvalidTarget, Err: ErrInvalidTarget}
	}

	// Stat before opening so a FIFO or device never blocks the open.
	info, err := s.opts.fs.Stat(path)
	if err != nil {
		return nil, newError(opRead, path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, invalidTarget(opRead, path, info.Mode())
	}

	f, err := s.opts.fs.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, newError(opRead, path, err)
	}
	defer f.Close()

	// The path may have been replaced between Stat and OpenFile.
	info, err = f.Stat()
	if err != nil {
		return nil, newError(opRead, path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, invalidTarget(opRead, path, info.Mode())
	}

	data, err := readAll(f, info.Size())
	if err != nil {
		return nil, newError(opRead, path, err)
	}

	s.opts.logger.LogRead(path, len(data), nil)
	return data, nil
}

// readAll reads r to EOF into a buffer pre-sized for sizeHint bytes.
func readAll(r io.Reader, sizeHint int64) ([]byte, error) {
	size := int(sizeHint) + 1 // one extra byte so EOF is seen without growing
	if size < 512 {
		size = 512
	}
	data := make([]byte, 0, size)
	for {
		n, err := r.Read(data[len(data):cap(data)])
		data = data[:len(data)+n]
		if err != nil {
			if err == io.EOF {
				return data, nil
			}
			return nil, err
		}
		if len(data) >= cap(data) {
			data = append(data, 0)[:len(data)]
		}
	}
}

// Write atomically replaces the content of path with content.
//
// The content is staged in a temporary file next to path and renamed over
// it, so readers observe either the previous or the new content, never a
// mixture. On failure path is left untouched and the temporary file is
// removed on a best-effort basis.
func (s *Store) Write(path, content string) error {
	return s.write(path, func(w io.Writer) (int, error) {
		return io.WriteString(w, content)
	})
}

// WriteBytes is like Write but takes the content as a byte slice.
func (s *Store) WriteBytes(path string, data []byte) error {
	return s.write(path, func(w io.Writer) (int, error) {
		return w.Write(data)
	})
}

func (s *Store) write(path string, writeTo func(io.Writer) (int, error)) error {
	if path == "" {
		return &Error{Op: opWrite, Path: path, Kind: KindInvalidTarget, Err: ErrInvalidTarget}
	}
	fsys := s.opts.fs

	prior, err := fsys.Stat(path)
	switch {
	case err == nil:
		if !prior.Mode().IsRegular() {
			return invalidTarget(opWrite, path, prior.Mode())
		}
	case errors.Is(err, iofs.ErrNotExist):
		prior = nil
	default:
		return newError(opWrite, path, err)
	}

	dir := filepath.Dir(path)
	f, err := fsys.CreateTemp(dir, tempPattern(path))
	if err != nil {
		return newError(opWrite, path, err)
	}
	tmp := f.Name()

	closed := false
	fail := func(err error) error {
		if !closed {
			_ = f.Close()
		}
		if rerr := fsys.Remove(tmp); rerr != nil && !errors.Is(rerr, iofs.ErrNotExist) {
			s.opts.logger.LogCleanup(tmp, rerr)
		}
		return newError(opWrite, path, err)
	}

	perm := s.opts.perm
	if prior != nil {
		if s.opts.preserveMode {
			perm = prior.Mode().Perm()
		}
		if s.opts.preserveOwner {
			s.chown(f, path, prior)
		}
	}
	if err := f.Chmod(perm); err != nil {
		return fail(err)
	}

	n, err := writeTo(f)
	if err != nil {
		return fail(err)
	}
	if err := f.Sync(); err != nil {
		return fail(err)
	}
	closed = true
	if err := f.Close(); err != nil {
		return fail(err)
	}
	if err := fsys.Rename(tmp, path); err != nil {
		return fail(err)
	}

	if s.opts.syncDir {
		if err := fsys.SyncDir(dir); err != nil {
			s.opts.logger.LogDirSync(dir, err)
		}
	}

	s.opts.logger.LogWrite(path, n, nil)
	return nil
}

// Remove deletes the short file at path. A missing file is reported as
// KindNotFound and a non-regular target as KindInvalidTarget.
func (s *Store) Remove(path string) error {
	if path == "" {
		return &Error{Op: opRemove, Path: path, Kind: KindInvalidTarget, Err: ErrInvalidTarget}
	}
	fsys := s.opts.fs

	info, err := fsys.Stat(path)
	if err != nil {
		return newError(opRemove, path, err)
	}
	if !info.Mode().IsRegular() {
		return invalidTarget(opRemove, path, info.Mode())
	}
	if err := fsys.Remove(path); err != nil {
		return newError(opRemove, path, err)
	}

	if s.opts.syncDir {
		dir := filepath.Dir(path)
		if err := fsys.SyncDir(dir); err != nil {
			s.opts.logger.LogDirSync(dir, err)
		}
	}

	s.opts.logger.LogRemove(path, nil)
	return nil
}

// tempPattern returns the CreateTemp pattern for staging a write to path.
func tempPattern(path string) string {
	base := filepath.Base(path)
	if len(base) > maxTempBase {
		cut := maxTempBase
		for cut > 0 && !utf8.RuneStart(base[cut]) {
			cut--
		}
		base = base[:cut]
	}
	return "." + base + ".tmp-*"
}

// chown hands the temporary file to the owner of the file it replaces.
func (s *Store) chown(f fs.File, path string, prior os.FileInfo) {
	uid, gid, ok := s.opts.fs.Owner(prior)
	if !ok {
		return
	}
	info, err := f.Stat()
	if err != nil {
		return
	}
	if tuid, tgid, ok := s.opts.fs.Owner(info); ok && tuid == uid && tgid == gid {
		return
	}
	if err := f.Chown(uid, gid); err != nil {
		s.opts.logger.LogChown(path, uid, gid, err)
	}
}

var defaultStore = New()

// Read reads path with the default Store.
func Read(path string) (string, error) {
	return defaultStore.Read(path)
}

// Write atomically replaces path with content using the default Store.
func Write(path, content string) error {
	return defaultStore.Write(path, content)
}

// ReadShortFile reads the whole content of path. It reports success as a
// plain flag; the failure is logged with its kind.
func ReadShortFile(path string) (string, bool) {
	content, err := defaultStore.Read(path)
	if err != nil {
		defaultStore.opts.logger.LogRead(path, 0, err)
		return "", false
	}
	return content, true
}

// WriteShortFile atomically replaces the content of path. It reports success
// as a plain flag; the failure is logged with its kind.
func WriteShortFile(path, content string) bool {
	if err := defaultStore.Write(path, content); err != nil {
		defaultStore.opts.logger.LogWrite(path, 0, err)
		return false
	}
	return true
}
