package sources

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"

	"currency-registry/core/reconcile"
	"currency-registry/core/storage"

	"github.com/minio/minio-go/v7"
)

type opener func(ctx context.Context, name string) (io.ReadCloser, error)

// tableSource reads the three tables through an opener and decodes them.
type tableSource struct {
	name string
	open opener
	cfg  Config
}

var _ reconcile.Source = (*tableSource)(nil)

// NewLocal reads the tables from cfg.Dir.
func NewLocal(cfg Config) reconcile.Source {
	return newFSSource(os.DirFS(cfg.Dir), cfg)
}

func newFSSource(fsys fs.FS, cfg Config) *tableSource {
	return &tableSource{
		name: "local",
		cfg:  cfg,
		open: func(_ context.Context, name string) (io.ReadCloser, error) {
			return fsys.Open(name)
		},
	}
}

// NewStorage reads the tables from a bucket under cfg.Prefix.
func NewStorage(client storage.Client, bucket string, cfg Config) reconcile.Source {
	return &tableSource{
		name: "storage",
		cfg:  cfg,
		open: func(ctx context.Context, name string) (io.ReadCloser, error) {
			return client.GetObject(ctx, bucket, ObjectKey(cfg, name), minio.GetObjectOptions{})
		},
	}
}

// New picks the storage source when cfg.FromStorage is set, the local one otherwise.
func New(cfg Config, client storage.Client, bucket string) (reconcile.Source, error) {
	if !cfg.FromStorage {
		return NewLocal(cfg), nil
	}
	if client == nil {
		return nil, fmt.Errorf("sources: from_storage is set but no storage client is configured")
	}
	return NewStorage(client, bucket, cfg), nil
}

// ObjectKey returns the bucket key of a table.
func ObjectKey(cfg Config, name string) string {
	return path.Join(cfg.Prefix, name)
}

func (s *tableSource) Name() string {
	return s.name
}

func (s *tableSource) ActiveRows(ctx context.Context) ([]reconcile.RawRow, error) {
	return readTable(ctx, s.open, s.cfg.Active, DecodeCurrencyRows)
}

func (s *tableSource) HistoricRows(ctx context.Context) ([]reconcile.RawRow, error) {
	return readTable(ctx, s.open, s.cfg.Historic, DecodeCurrencyRows)
}

func (s *tableSource) CrosswalkRows(ctx context.Context) ([]reconcile.CrosswalkRow, error) {
	return readTable(ctx, s.open, s.cfg.Crosswalk, DecodeCrosswalkRows)
}

func readTable[T any](ctx context.Context, open opener, name string, decode func(io.Reader) ([]T, error)) ([]T, error) {
	rc, err := open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer rc.Close()

	rows, err := decode(rc)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return rows, nil
}
