package emit

import (
	"bytes"
	"context"
	"fmt"

	"currency-registry/core/storage"

	"github.com/minio/minio-go/v7"
)

// Upload puts an artifact into the bucket, creating the bucket when missing.
func Upload(ctx context.Context, client storage.Client, bucket, key string, data []byte, contentType string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
	}

	_, err = client.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}
