// Package fs provides filesystem abstractions for testability and fault injection.
//
// The package defines two key interfaces:
//
//   - [File]: an open file with read/write/sync/chmod capabilities
//   - [FileSystem]: the operations a short-file store needs (open, create a
//     temp file, rename, remove, stat, directory sync, ownership lookup)
//
// # Implementations
//
//   - [LocalFS]: Production implementation using the os package and
//     golang.org/x/sys for directory fsync
//   - [FaultyFS]: Test utility for fault injection (simulate I/O errors)
//
// # Usage
//
// Production code should use fs.Default (which is [LocalFS]).
//
// Tests can inject [FaultyFS] to simulate failures at any step of an
// atomic replace:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule(".tmp-", fs.Fault{FailAfterBytes: -1, FailOnRename: true})
//	// inject ffs into component under test
//
// This package intentionally does NOT include context.Context parameters.
// Local filesystem operations are non-interruptible at the syscall level.
package fs
