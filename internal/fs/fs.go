package fs

import (
	"io"
	"os"
)

// File represents an open file.
type File interface {
	io.ReadWriteCloser
	Name() string
	Sync() error
	Stat() (os.FileInfo, error)
	Chmod(mode os.FileMode) error
	Chown(uid, gid int) error
}

// FileSystem abstracts the file system operations needed to read and
// atomically replace short files.
type FileSystem interface {
	OpenFile(name string, flag int, perm os.FileMode) (File, error)
	// CreateTemp creates a new file in dir, exclusively, with a name built
	// from pattern as in os.CreateTemp.
	CreateTemp(dir, pattern string) (File, error)
	Remove(name string) error
	Rename(oldpath, newpath string) error
	Stat(name string) (os.FileInfo, error)
	// SyncDir flushes the directory entry table of dir to stable storage.
	SyncDir(dir string) error
	// Owner reports the uid and gid recorded in info. ok is false when the
	// platform does not expose ownership.
	Owner(info os.FileInfo) (uid, gid int, ok bool)
}

// LocalFS implements FileSystem using the local os package.
type LocalFS struct{}

func (LocalFS) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	f, err := os.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (LocalFS) CreateTemp(dir, pattern string) (File, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (LocalFS) Remove(name string) error              { return os.Remove(name) }
func (LocalFS) Rename(oldpath, newpath string) error  { return os.Rename(oldpath, newpath) }
func (LocalFS) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }
func (LocalFS) SyncDir(dir string) error              { return syncDir(dir) }

func (LocalFS) Owner(info os.FileInfo) (uid, gid int, ok bool) {
	return owner(info)
}

// Default is the default local file system.
var Default FileSystem = LocalFS{}
