package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"currency-registry/core/config"
	"currency-registry/core/logger"
	"currency-registry/core/reconcile"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var lookupAmount string

// lookupCmd is the parent command for registry lookups.
var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Look up currencies in a freshly built registry",
	Long: `Builds the registry from the configured sources and prints matching records as JSON.

Examples:
  lookup code eur
  lookup numeric 978 --amount 12.345
  lookup country CHE`,
}

var lookupCodeCmd = &cobra.Command{
	Use:   "code <alpha-code>",
	Short: "Look up a currency by alphabetic code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookup(cmd, func(reg *reconcile.Registry) (any, error) {
			rec, err := reg.ByCode(args[0])
			if err != nil {
				return nil, err
			}
			return withAmount(rec, lookupAmount)
		})
	},
}

var lookupNumericCmd = &cobra.Command{
	Use:   "numeric <numeric-code>",
	Short: "Look up a currency by numeric code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookup(cmd, func(reg *reconcile.Registry) (any, error) {
			rec, err := reg.ByNumericString(args[0])
			if err != nil {
				return nil, err
			}
			return withAmount(rec, lookupAmount)
		})
	},
}

var lookupCountryCmd = &cobra.Command{
	Use:   "country <alpha3>",
	Short: "List the currencies of a country",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookup(cmd, func(reg *reconcile.Registry) (any, error) {
			return reg.ByCountry(args[0])
		})
	},
}

func init() {
	lookupCodeCmd.Flags().StringVar(&lookupAmount, "amount", "", "Round an amount to the currency's minor unit")
	lookupNumericCmd.Flags().StringVar(&lookupAmount, "amount", "", "Round an amount to the currency's minor unit")
	lookupCmd.AddCommand(lookupCodeCmd, lookupNumericCmd, lookupCountryCmd)
	RootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, find func(*reconcile.Registry) (any, error)) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
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
	reg, err := load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to build registry: %w", err)
	}

	result, err := find(reg)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), result)
}

// AmountResult is a record with an amount rounded to its minor unit.
type AmountResult struct {
	reconcile.Record
	Amount     string `json:"amount"`
	Rounded    string `json:"rounded"`
	MinorUnits *int64 `json:"minor_units,omitempty"`
}

func withAmount(rec reconcile.Record, amount string) (any, error) {
	if amount == "" {
		return rec, nil
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	rounded := rec.Round(d)
	result := AmountResult{Record: rec, Amount: d.String(), Rounded: rounded.String()}
	if units, err := rec.ToMinorUnits(rounded); err == nil {
		result.MinorUnits = &units
	}
	return result, nil
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
