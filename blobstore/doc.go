// Package blobstore stores short artifacts (address files, status tokens,
// leases) by name on different media, with the same whole-object,
// atomic-replace contract as package shortfile.
//
// # Built-in Implementations
//
//   - LocalStore: a directory on the local file system, written through
//     shortfile (temp file + rename)
//   - MemoryStore: in-process map, for tests
//   - minio.Store: MinIO and other S3-compatible storage
//   - s3.Store: Amazon S3
//
// # Composition
//
//   - MirrorStore: writes every artifact to a primary and its replicas in
//     parallel, reads from the first store that has it
//   - ThrottledStore: rate limits calls to a remote store
//
// Example, publishing a daemon address locally and to a shared bucket:
//
//	local := blobstore.NewLocalStore("/var/run/condor")
//	remote := minioblob.NewStore(client, "cluster-state", "schedd-01/")
//	store := blobstore.NewMirrorStore(local,
//	    blobstore.NewThrottledStore(remote, rate.NewLimiter(10, 1)))
//	err := store.Put(ctx, "schedd.address", []byte(addr))
package blobstore
