package cmd

import (
	"fmt"
	"os"

	"currency-registry/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "currency-registry",
	Short: "ISO 4217 Currency Registry",
	Long: `Currency Registry reconciles the ISO 4217 current and historic currency
tables with the country-codes crosswalk into one indexed registry.
It emits the registry as JSON, generated Go source or database tables,
and serves lookups over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Errors are reported through a console logger with ISO8601 timestamps (DevConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
