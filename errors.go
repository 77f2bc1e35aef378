package shortfile

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"syscall"
)

// Kind classifies why a short-file operation failed.
type Kind uint8

const (
	// KindNone is reported for a nil error.
	KindNone Kind = iota
	// KindNotFound means the read target does not exist, or the directory
	// of a write target does not exist or is not a directory.
	KindNotFound
	// KindPermission means the caller lacks rights to read, write or rename.
	KindPermission
	// KindIO covers disk full, hardware errors and interrupted system calls.
	KindIO
	// KindInvalidTarget means the path names a directory, device, FIFO or
	// other non-regular file.
	KindInvalidTarget
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotFound:
		return "not found"
	case KindPermission:
		return "permission denied"
	case KindIO:
		return "i/o failure"
	case KindInvalidTarget:
		return "invalid target"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

var (
	// ErrNotFound matches failures of KindNotFound. It also matches fs.ErrNotExist.
	ErrNotFound = fmt.Errorf("short file: %w", iofs.ErrNotExist)
	// ErrPermission matches failures of KindPermission. It also matches fs.ErrPermission.
	ErrPermission = fmt.Errorf("short file: %w", iofs.ErrPermission)
	// ErrIO matches failures of KindIO.
	ErrIO = errors.New("short file i/o failure")
	// ErrInvalidTarget matches failures of KindInvalidTarget.
	ErrInvalidTarget = errors.New("short file target is not a regular file")
)

// Error records a failed Read or Write.
//
// The underlying cause (if any) can be accessed via errors.Unwrap.
type Error struct {
	Op   string // "read" or "write"
	Path string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("shortfile: %s %s: %s", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("shortfile: %s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's Kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrPermission:
		return e.Kind == KindPermission
	case ErrIO:
		return e.Kind == KindIO
	case ErrInvalidTarget:
		return e.Kind == KindInvalidTarget
	}
	return false
}

// KindOf returns the Kind of err. A nil error is KindNone; errors that did
// not come from this package are classified from their cause.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return classify(err)
}

func classify(err error) Kind {
	switch {
	case errors.Is(err, ErrInvalidTarget):
		return KindInvalidTarget
	case errors.Is(err, iofs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		// ENOTDIR: a path component is a regular file, so the target
		// cannot exist.
		return KindNotFound
	case errors.Is(err, iofs.ErrPermission):
		return KindPermission
	default:
		return KindIO
	}
}

func newError(op, path string, err error) *Error {
	return &Error{Op: op, Path: path, Kind: classify(err), Err: err}
}

func invalidTarget(op, path string, mode iofs.FileMode) *Error {
	return &Error{
		Op:   op,
		Path: path,
		Kind: KindInvalidTarget,
		Err:  fmt.Errorf("%w (mode %s)", ErrInvalidTarget, mode.Type()),
	}
}
