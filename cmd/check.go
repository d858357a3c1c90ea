package cmd

import (
	"fmt"

	"currency-registry/core/config"
	"currency-registry/core/database"
	"currency-registry/core/logger"
	"currency-registry/core/storage"
	"currency-registry/feature/emit"
	"currency-registry/feature/sources"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// checkCmd verifies that the source tables are available.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the source tables are present",
	Long: `Checks that the active, historic and crosswalk tables exist, in the bucket
when sources.from_storage is set and in the local directory otherwise.
With --fix, tables missing from the bucket are uploaded from the local directory.`,
	RunE: runSourceCheck,
}

// schemaCmd verifies the emitted database tables.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the registry tables against the expected schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}

		report, err := emit.CheckSchema(db)
		if err != nil {
			return err
		}
		if err := printJSON(cmd.OutOrStdout(), report); err != nil {
			return err
		}
		if !report.Matched {
			return fmt.Errorf("registry tables do not match the expected schema")
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&fixFlag, "fix", false, "Upload tables missing from the bucket")
	checkCmd.AddCommand(schemaCmd)
	RootCmd.AddCommand(checkCmd)
}

func runSourceCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	if !cfg.Sources.FromStorage {
		logg.Info("Checking local source tables...", zap.String("dir", cfg.Sources.Dir))
		missing, err := sources.MissingLocally(cfg.Sources)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			logg.Warn("Missing source tables detected", zap.Strings("missing", missing))
			return fmt.Errorf("%d source tables missing", len(missing))
		}
		logg.Info("Source tables are present.")
		return nil
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	logg.Info("Checking source tables in bucket...", zap.String("bucket", cfg.Storage.Bucket))
	missing, err := sources.MissingInStorage(ctx, client, cfg.Storage.Bucket, cfg.Sources)
	if err != nil {
		return fmt.Errorf("source check failed: %w", err)
	}
	if len(missing) == 0 {
		logg.Info("Source tables are present.")
		return nil
	}

	logg.Warn("Missing source tables detected", zap.Strings("missing", missing))
	if !fixFlag {
		logg.Info("Run with --fix to upload the missing tables from the local directory.")
		return fmt.Errorf("%d source tables missing", len(missing))
	}

	logg.Info("Uploading missing source tables...")
	if err := sources.SeedStorage(ctx, client, cfg.Storage.Bucket, cfg.Sources, logg, missing); err != nil {
		return fmt.Errorf("failed to upload source tables: %w", err)
	}
	logg.Info("Source tables uploaded successfully.")
	return nil
}
