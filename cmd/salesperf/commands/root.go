package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "salesperf",
	Short: "Seller performance report",
	Long: `salesperf builds a per-seller sales performance report.

Revenue and profit are accrued per seller from purchase records, sellers are
ranked by profit and paid a rank-dependent bonus, and each seller's ten best
selling products are listed.

Examples:
  salesperf analyze --dataset data.json
  salesperf analyze --dataset data.json --policy config/policy/default.yaml --output json
  salesperf policy validate config/policy/default.yaml`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}
