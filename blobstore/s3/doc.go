// Package s3 provides an S3 implementation of the blobstore.Store interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "cluster-state",
//	    s3.WithPrefix("schedd-01/"),
//	    s3.WithRegion("us-east-1"),
//	)
//	err = store.Put(ctx, "schedd.address", []byte(addr))
//
// Artifacts are short, so every Put is a single PutObject request; S3
// makes the new object visible atomically.
package s3
