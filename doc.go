// Package shortfile reads and atomically replaces the entire contents of
// small files.
//
// It is meant for short artifacts a scheduler or daemon persists between
// runs: lock files, address files, PID files, status tokens. Callers never
// stream or seek; they hand over or receive a complete string.
//
// # Quick Start
//
//	if err := shortfile.Write("/var/run/schedd.address", addr); err != nil {
//	    log.Fatal(err)
//	}
//	addr, err := shortfile.Read("/var/run/schedd.address")
//	if shortfile.KindOf(err) == shortfile.KindNotFound {
//	    // daemon not started yet
//	}
//
// Callers that only care about success can use the flag form:
//
//	if !shortfile.WriteShortFile(path, token) {
//	    // treat as "file unavailable"; the failure has been logged
//	}
//
// # Atomicity
//
// Write stages the content in a temporary file in the destination's
// directory (named ".<base>.tmp-<random>"), syncs and closes it, then
// renames it over the destination. Any concurrent or later reader sees
// either the complete old content or the complete new content. If any step
// up to and including the rename fails, the destination is untouched and
// the temporary file is removed.
//
// Two concurrent writers to the same path do not corrupt it; the last rename
// wins. No locking is performed.
//
// # Permissions
//
// A replaced file keeps its permission bits and, when the process is
// allowed to, its owner. New files are created with [PermFilePrivate]
// (0600) unless configured otherwise with [WithPerm].
//
// # Errors
//
// Every failure is an [*Error] carrying a [Kind] (not found, permission
// denied, i/o failure, invalid target). Use [KindOf] or errors.Is with
// [ErrNotFound], [ErrPermission], [ErrIO] and [ErrInvalidTarget].
//
// For named artifacts on other media (object storage, memory, mirrored
// sets), see package blobstore.
package shortfile
