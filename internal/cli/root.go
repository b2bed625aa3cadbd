// Package cli wires the engine's cobra command tree: a root command with
// persistent flags shared across subcommands, and a "run" subcommand that
// performs the actual ingest-dispatch-report pipeline.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	debug      bool
)

// rootCmd is the base command when called without any subcommands; "run"
// is also wired as its default action so `txengine file.csv` works.
var rootCmd = &cobra.Command{
	Use:   "txengine",
	Short: "txengine - concurrent batch transaction processor",
	Long: `txengine reads a CSV stream of deposit/withdrawal/dispute/resolve/
chargeback transactions, applies them in strict per-client order across a
sharded worker pool, and prints the final per-client account state as CSV.`,
	Version: "0.1.0-dev",
}

// Execute adds all child commands to the root command and runs it. It is
// called once by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path (TOML)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "prefix diagnostic lines with a batch id")
}
