// Package storage provides an abstraction layer for S3-compatible object storage.
//
// It wraps the MinIO Go client behind a narrow Client interface. The service keeps
// its shared API key as a small JSON object in a bucket, so the secret store is just
// another object read (see core/secrets).
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates a new bucket if needed.
//   - PutObject: Uploads content (with size and options).
//   - GetObject: Retrieves content as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	obj, err := client.GetObject(ctx, "todo-sync-secrets", "todo-app-dev-api-key", minio.GetObjectOptions{})
package storage
