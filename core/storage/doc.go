// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the currency source tables can be read from,
// and the emitted registry artifacts uploaded to, AWS S3 or a self-hosted
// MinIO instance.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates the bucket before the first upload.
//   - PutObject: Uploads an emitted artifact.
//   - GetObject: Retrieves a source table as a stream.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "currency-sources")
package storage
