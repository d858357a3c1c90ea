package sources

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"currency-registry/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// MissingInStorage returns the tables absent from the bucket.
func MissingInStorage(ctx context.Context, client storage.Client, bucket string, cfg Config) ([]string, error) {
	var missing []string

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	for _, name := range cfg.Tables() {
		key := ObjectKey(cfg, name)
		opts := minio.ListObjectsOptions{
			Prefix:    key,
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			if obj.Err == nil && obj.Key == key {
				found = true
			}
			break
		}

		if !found {
			missing = append(missing, name)
		}
	}

	return missing, nil
}

// MissingLocally returns the tables absent from cfg.Dir.
func MissingLocally(cfg Config) ([]string, error) {
	var missing []string
	for _, name := range cfg.Tables() {
		_, err := os.Stat(filepath.Join(cfg.Dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			missing = append(missing, name)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", name, err)
		}
	}
	return missing, nil
}

// SeedStorage uploads the missing tables from cfg.Dir into the bucket.
func SeedStorage(ctx context.Context, client storage.Client, bucket string, cfg Config, logger *zap.Logger, missing []string) error {
	for _, name := range missing {
		data, err := os.ReadFile(filepath.Join(cfg.Dir, name))
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}

		key := ObjectKey(cfg, name)
		_, err = client.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: "text/csv",
		})
		if err != nil {
			logger.Error("Failed to upload source table", zap.String("key", key), zap.Error(err))
			return err
		}
		logger.Info("Uploaded source table", zap.String("key", key))
	}
	return nil
}
