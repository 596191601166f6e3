package secrets

import (
	"bytes"
	"context"
	"fmt"

	"todo-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// PutAPIKey stores apiKey as the secret object bucket/name, creating the
// bucket when it does not exist yet.
func PutAPIKey(ctx context.Context, client storage.Client, bucket, name, apiKey string) error {
	if bucket == "" || name == "" {
		return ErrNotConfigured
	}
	if apiKey == "" {
		return ErrMissingAPIKey
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
	}

	data, err := EncodeAPIKey(apiKey)
	if err != nil {
		return fmt.Errorf("failed to encode secret: %w", err)
	}

	_, err = client.PutObject(ctx, bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to write secret %s: %w", name, err)
	}
	return nil
}
