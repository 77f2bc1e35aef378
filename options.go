package shortfile

import (
	"os"

	"github.com/hupe1980/shortfile/internal/fs"
)

const (
	// PermFilePrivate is the mode given to newly created short files.
	// These files often carry tokens, so only the owner may read them.
	PermFilePrivate os.FileMode = 0o600
)

type options struct {
	fs            fs.FileSystem
	logger        *Logger
	perm          os.FileMode
	preserveMode  bool
	preserveOwner bool
	syncDir       bool
}

func defaultOptions() options {
	return options{
		fs:            fs.Default,
		logger:        NewLogger(nil),
		perm:          PermFilePrivate,
		preserveMode:  true,
		preserveOwner: true,
		syncDir:       true,
	}
}

// Option configures a Store.
type Option func(*options)

// WithFileSystem configures the file system the store operates on.
//
// If nil is passed, fs.Default is used.
func WithFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		if fsys == nil {
			fsys = fs.Default
		}
		o.fs = fsys
	}
}

// WithLogger configures the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithPerm sets the permission bits of newly created files.
// Only the permission bits of perm are used. Default: 0600.
func WithPerm(perm os.FileMode) Option {
	return func(o *options) {
		o.perm = perm.Perm()
	}
}

// WithPreserveMode controls whether Write keeps the permission bits of a
// file it replaces. Default: true. When false, every write applies the
// configured new-file permission.
func WithPreserveMode(preserve bool) Option {
	return func(o *options) {
		o.preserveMode = preserve
	}
}

// WithPreserveOwner controls whether Write tries to hand the replacement
// file to the uid/gid of the file it replaces. Default: true.
//
// Ownership changes usually need privileges; failures are logged at debug
// level and never fail the write.
func WithPreserveOwner(preserve bool) Option {
	return func(o *options) {
		o.preserveOwner = preserve
	}
}

// WithSyncDir controls whether Write fsyncs the parent directory after the
// rename so the new directory entry survives a crash. Default: true.
func WithSyncDir(sync bool) Option {
	return func(o *options) {
		o.syncDir = sync
	}
}
