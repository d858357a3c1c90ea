package cmd

import (
	"context"
	"fmt"

	"currency-registry/core/config"
	"currency-registry/core/reconcile"
	"currency-registry/core/storage"
	"currency-registry/feature/sources"

	"go.uber.org/zap"
)

// storageClient connects to object storage only when the configuration needs it.
func storageClient(cfg *config.Config) (storage.Client, error) {
	if !cfg.Sources.FromStorage && !cfg.Emit.Upload {
		return nil, nil
	}
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return client, nil
}

// registryLoader returns a LoadFunc building the registry from the configured sources.
func registryLoader(cfg *config.Config, client storage.Client, logg *zap.Logger) (reconcile.LoadFunc, error) {
	src, err := sources.New(cfg.Sources, client, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context) (*reconcile.Registry, error) {
		return reconcile.BuildFrom(ctx, src, reconcile.WithLogger(logg.With(zap.String("source", src.Name()))))
	}, nil
}
