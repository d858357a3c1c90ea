package cmd

import (
	"fmt"
	"time"

	"currency-registry/core/config"
	"currency-registry/core/database"
	"currency-registry/core/logger"
	"currency-registry/feature/emit"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	buildDatabase bool
	buildUpload   bool
)

// buildCmd builds the registry and runs the configured emitters.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the registry and emit it",
	Long: `Reads the three currency tables, reconciles them into the registry and
writes the configured outputs (JSON document, generated Go source, database
tables, bucket upload).

Examples:
  # Emit JSON and Go source only
  build

  # Also replace the database tables and upload the artifacts
  build --db --upload`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().BoolVar(&buildDatabase, "db", false, "Replace the registry tables in the configured database")
	buildCmd.Flags().BoolVar(&buildUpload, "upload", false, "Upload the emitted artifacts to the storage bucket")
	RootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	startTime := time.Now()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("db") {
		cfg.Emit.Database = buildDatabase
	}
	if cmd.Flags().Changed("upload") {
		cfg.Emit.Upload = buildUpload
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	client, err := storageClient(cfg)
	if err != nil {
		return err
	}

	load, err := registryLoader(cfg, client, logg)
	if err != nil {
		return err
	}
	reg, err := load(ctx)
	if err != nil {
		return fmt.Errorf("failed to build registry: %w", err)
	}

	opts := []emit.Option{emit.WithLogger(logg)}
	if cfg.Emit.Database {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}
		opts = append(opts, emit.WithDatabase(db))
	}
	if client != nil {
		opts = append(opts, emit.WithStorage(client, cfg.Storage.Bucket))
	}

	result, err := emit.New(cfg.Emit, opts...).Run(ctx, reg)
	if err != nil {
		return fmt.Errorf("failed to emit registry: %w", err)
	}

	stats := reg.Stats()
	fmt.Println("\n=== Currency Registry ===")
	fmt.Printf("Records: %d (active %d, funds %d, historic %d)\n",
		reg.Len(), len(reg.ActiveCodes()), len(reg.FundsCodes()), len(reg.HistoricCodes()))
	fmt.Printf("Numeric Keys: %d (excluded %d)\n", len(reg.NumericStrings()), stats.NumericExcluded)
	fmt.Printf("Countries: %d (unresolved codes %d)\n", len(reg.Countries()), stats.UnresolvedCodes)
	fmt.Printf("Skipped Rows: %d, Duplicates: %d\n", stats.Skipped, stats.Duplicates)
	if result.JSONPath != "" {
		fmt.Printf("JSON: %s\n", result.JSONPath)
	}
	if result.GoPath != "" {
		fmt.Printf("Go Source: %s\n", result.GoPath)
	}
	if result.Tables != nil {
		fmt.Printf("Database: %d records, %d country links\n", result.Tables.Records, result.Tables.Links)
	}
	for _, key := range result.Uploaded {
		fmt.Printf("Uploaded: %s/%s\n", cfg.Storage.Bucket, key)
	}
	fmt.Printf("Execution Time: %s\n", time.Since(startTime).String())

	logg.Info("Registry build completed",
		zap.Int("records", reg.Len()),
		zap.Duration("execution_time", time.Since(startTime)),
	)
	return nil
}
