//go:build linux || darwin || freebsd || openbsd || netbsd

package fs

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

func syncDir(dir string) error {
	fd, err := unix.Open(dir, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return &os.PathError{Op: "open", Path: dir, Err: err}
	}
	defer unix.Close(fd)

	if err := unix.Fsync(fd); err != nil {
		// Some file systems refuse fsync on directories; the rename is
		// already visible, so there is nothing more to flush.
		if err == unix.EINVAL || err == unix.ENOTSUP {
			return nil
		}
		return &os.PathError{Op: "fsync", Path: dir, Err: err}
	}
	return nil
}

func owner(info os.FileInfo) (uid, gid int, ok bool) {
	if info == nil {
		return 0, 0, false
	}
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, 0, false
	}
	return int(st.Uid), int(st.Gid), true
}
