package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFS(t *testing.T) {
	tmp := t.TempDir()
	lfs := LocalFS{}

	// CreateTemp
	f, err := lfs.CreateTemp(tmp, ".status.tmp-*")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(f.Name()), ".status.tmp-"))

	// Write
	_, err = f.Write([]byte("hello"))
	assert.NoError(t, err)

	// Chmod + Sync
	assert.NoError(t, f.Chmod(0o600))
	assert.NoError(t, f.Sync())

	// Stat via File
	info, err := f.Stat()
	assert.NoError(t, err)
	assert.Equal(t, int64(5), info.Size())

	assert.NoError(t, f.Close())

	// Rename
	dst := filepath.Join(tmp, "status")
	assert.NoError(t, lfs.Rename(f.Name(), dst))
	assert.NoError(t, lfs.SyncDir(tmp))

	// Stat via FS
	info2, err := lfs.Stat(dst)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), info2.Size())

	// OpenFile
	r, err := lfs.OpenFile(dst, os.O_RDONLY, 0)
	require.NoError(t, err)
	buf := make([]byte, 5)
	_, err = r.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, "hello", string(buf))
	assert.NoError(t, r.Close())

	// Remove
	assert.NoError(t, lfs.Remove(dst))
	_, err = lfs.Stat(dst)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalFS_Owner(t *testing.T) {
	tmp := t.TempDir()
	lfs := LocalFS{}

	info, err := lfs.Stat(tmp)
	require.NoError(t, err)

	uid, gid, ok := lfs.Owner(info)
	if !ok {
		t.Skip("ownership not exposed on this platform")
	}
	assert.Equal(t, os.Geteuid(), uid)
	// The group may be inherited from a setgid parent.
	assert.GreaterOrEqual(t, gid, 0)

	_, _, ok = lfs.Owner(nil)
	assert.False(t, ok)
}

func TestLocalFS_SyncDirMissing(t *testing.T) {
	lfs := LocalFS{}
	err := lfs.SyncDir(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Skip("directory sync is a no-op on this platform")
	}
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFaultyFS_WriteLimit(t *testing.T) {
	tmp := t.TempDir()
	ffs := NewFaultyFS(LocalFS{})
	ffs.AddRule("limited", Fault{FailAfterBytes: 5})

	fpath := filepath.Join(tmp, "limited.txt")
	f, err := ffs.OpenFile(fpath, os.O_CREATE|os.O_RDWR, 0o644)
	require.NoError(t, err)

	// Write 5 bytes - OK
	n, err := f.Write([]byte("hello"))
	assert.NoError(t, err)
	assert.Equal(t, 5, n)

	// Write 1 byte - Fail
	n, err = f.Write([]byte("!"))
	assert.ErrorIs(t, err, ErrInjected)
	assert.Equal(t, 0, n)
	require.NoError(t, f.Close())

	data, err := os.ReadFile(fpath)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestFaultyFS_PartialWrite(t *testing.T) {
	tmp := t.TempDir()
	ffs := NewFaultyFS(nil)
	boom := errors.New("disk full")
	ffs.AddRule(".tmp-", Fault{FailAfterBytes: 3, Err: boom})

	f, err := ffs.CreateTemp(tmp, ".x.tmp-*")
	require.NoError(t, err)

	n, err := f.Write([]byte("abcdef"))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, n)
	require.NoError(t, f.Close())

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))
}

func TestFaultyFS_Rules(t *testing.T) {
	tmp := t.TempDir()
	ffs := NewFaultyFS(LocalFS{})

	t.Run("Create", func(t *testing.T) {
		ffs.AddRule("nocreate", Fault{FailAfterBytes: -1, FailOnCreate: true})
		_, err := ffs.CreateTemp(tmp, ".nocreate.tmp-*")
		assert.ErrorIs(t, err, ErrInjected)
		_, err = ffs.OpenFile(filepath.Join(tmp, "nocreate"), os.O_CREATE|os.O_WRONLY, 0o600)
		assert.ErrorIs(t, err, ErrInjected)
	})

	t.Run("SyncCloseChmod", func(t *testing.T) {
		ffs.AddRule("flaky", Fault{FailAfterBytes: -1, FailOnSync: true, FailOnClose: true, FailOnChmod: true})
		f, err := ffs.CreateTemp(tmp, ".flaky.tmp-*")
		require.NoError(t, err)
		assert.ErrorIs(t, f.Chmod(0o600), ErrInjected)
		assert.ErrorIs(t, f.Sync(), ErrInjected)
		assert.ErrorIs(t, f.Close(), ErrInjected)
	})

	t.Run("RenameRemove", func(t *testing.T) {
		src := filepath.Join(tmp, "stuck")
		require.NoError(t, os.WriteFile(src, []byte("x"), 0o600))
		ffs.AddRule("stuck", Fault{FailAfterBytes: -1, FailOnRename: true, FailOnRemove: true})

		err := ffs.Rename(src, filepath.Join(tmp, "moved"))
		var le *os.LinkError
		require.ErrorAs(t, err, &le)
		assert.ErrorIs(t, err, ErrInjected)
		assert.ErrorIs(t, ffs.Remove(src), ErrInjected)
		assert.Equal(t, 0, ffs.Renames())
		assert.Equal(t, 0, ffs.Removes())
	})
}

func TestFaultyFS_Delegation(t *testing.T) {
	tmp := t.TempDir()
	ffs := NewFaultyFS(LocalFS{})

	fpath := filepath.Join(tmp, "test.txt")
	require.NoError(t, os.WriteFile(fpath, []byte("x"), 0o600))

	info, err := ffs.Stat(fpath)
	require.NoError(t, err)
	_, _, _ = ffs.Owner(info)

	assert.NoError(t, ffs.Rename(fpath, fpath+".renamed"))
	assert.Equal(t, 1, ffs.Renames())
	assert.NoError(t, ffs.SyncDir(tmp))
	assert.NoError(t, ffs.Remove(fpath+".renamed"))
	assert.Equal(t, 1, ffs.Removes())
}
