package emit

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"currency-registry/core/reconcile"
	"currency-registry/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Emitter writes a registry to every configured output.
type Emitter struct {
	cfg    Config
	db     *gorm.DB
	client storage.Client
	bucket string
	logger *zap.Logger
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithDatabase sets the connection used when Config.Database is on.
func WithDatabase(db *gorm.DB) Option {
	return func(e *Emitter) { e.db = db }
}

// WithStorage sets the bucket used when Config.Upload is on.
func WithStorage(client storage.Client, bucket string) Option {
	return func(e *Emitter) {
		e.client = client
		e.bucket = bucket
	}
}

// WithLogger sets the emitter logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Emitter) { e.logger = logger }
}

// New creates an Emitter.
func New(cfg Config, opts ...Option) *Emitter {
	e := &Emitter{cfg: cfg, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result summarises one emission.
type Result struct {
	JSONPath string       `json:"json_path,omitempty"`
	GoPath   string       `json:"go_path,omitempty"`
	Tables   *TableCounts `json:"tables,omitempty"`
	Uploaded []string     `json:"uploaded,omitempty"`
}

type artifact struct {
	name        string
	data        []byte
	contentType string
}

// Run emits the registry. The first failing output aborts the run.
func (e *Emitter) Run(ctx context.Context, reg *reconcile.Registry) (*Result, error) {
	if e.cfg.Database && e.db == nil {
		return nil, fmt.Errorf("database emission enabled but no database is configured")
	}
	if e.cfg.Upload && e.client == nil {
		return nil, fmt.Errorf("upload enabled but no storage client is configured")
	}

	result := &Result{}
	var artifacts []artifact

	if e.cfg.JSONPath != "" {
		data, err := EncodeJSON(reg)
		if err != nil {
			return nil, err
		}
		if err := writeFile(e.cfg.JSONPath, data); err != nil {
			return nil, err
		}
		result.JSONPath = e.cfg.JSONPath
		artifacts = append(artifacts, artifact{filepath.Base(e.cfg.JSONPath), data, "application/json"})
		e.logger.Info("Wrote registry document", zap.String("path", e.cfg.JSONPath))
	}

	if e.cfg.GoPath != "" {
		data, err := GenerateGo(reg, e.cfg.GoPackage)
		if err != nil {
			return nil, err
		}
		if err := writeFile(e.cfg.GoPath, data); err != nil {
			return nil, err
		}
		result.GoPath = e.cfg.GoPath
		artifacts = append(artifacts, artifact{filepath.Base(e.cfg.GoPath), data, "text/x-go"})
		e.logger.Info("Wrote generated source", zap.String("path", e.cfg.GoPath))
	}

	if e.cfg.Database {
		if err := Migrate(e.db); err != nil {
			return nil, err
		}
		counts, err := Replace(ctx, e.db, reg)
		if err != nil {
			return nil, err
		}
		report, err := CheckSchema(e.db)
		if err != nil {
			return nil, err
		}
		if !report.Matched {
			return nil, fmt.Errorf("registry tables do not match the expected schema")
		}
		result.Tables = &counts
		e.logger.Info("Replaced registry tables",
			zap.Int("records", counts.Records),
			zap.Int("links", counts.Links),
		)
	}

	if e.cfg.Upload {
		for _, a := range artifacts {
			key := path.Join(e.cfg.Prefix, a.name)
			if err := Upload(ctx, e.client, e.bucket, key, a.data, a.contentType); err != nil {
				return nil, err
			}
			result.Uploaded = append(result.Uploaded, key)
			e.logger.Info("Uploaded artifact", zap.String("bucket", e.bucket), zap.String("key", key))
		}
	}

	return result, nil
}

func writeFile(name string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", name, err)
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
