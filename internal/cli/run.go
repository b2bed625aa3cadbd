package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gwierzchowski/toy-trx-engine/internal/config"
	"github.com/gwierzchowski/toy-trx-engine/internal/diagnostics"
	"github.com/gwierzchowski/toy-trx-engine/internal/dispatch"
	"github.com/gwierzchowski/toy-trx-engine/internal/ingest"
	"github.com/gwierzchowski/toy-trx-engine/internal/report"
)

var (
	noHeader   bool
	comments   bool
	workers    int
	queueScale int
)

// runCmd is the default command: process one CSV transaction file.
var runCmd = &cobra.Command{
	Use:   "run [input_path]",
	Short: "Process a transactions CSV file and print the account-state report",
	Args:  cobra.ExactArgs(1),
	Run:   runEngine,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			_ = cmd.Usage()
			os.Exit(1)
		}
		runEngine(cmd, args)
	}
	rootCmd.Args = cobra.MaximumNArgs(1)

	runCmd.Flags().BoolVar(&noHeader, "no-header", false, "treat the first row as data, not a header")
	runCmd.Flags().BoolVar(&comments, "comments", false, "treat lines starting with '#' as comments")
	runCmd.Flags().IntVar(&workers, "workers", 0, "shard worker count, at least 1 (when not given, the config/default, which is the CPU count)")
	runCmd.Flags().IntVar(&queueScale, "queue-scale", 0, "per-shard queue capacity in units of 1000, at least 1 (when not given, the config/default)")
}

func runEngine(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(configFile, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	applyFlagOverrides(cmd, cfg)
	if debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Open(cfg.InputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open input: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	src := ingest.NewCSVSource(f, ingest.Options{NoHeader: cfg.NoHeader, Comments: cfg.Comments})
	log := diagnostics.New(os.Stderr, cfg.Debug)

	result, err := dispatch.Run(dispatch.Config{Workers: cfg.Workers, QueueScale: cfg.QueueScale}, src, log)
	log.FlushRollup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}

	if err := report.Write(os.Stdout, result.Ledger); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write report: %v\n", err)
		os.Exit(1)
	}
}

// applyFlagOverrides layers explicitly-set CLI flags over the loaded
// config, last per spec §6's priority order (flags beat file/env).
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("no-header") {
		cfg.NoHeader = noHeader
	}
	if cmd.Flags().Changed("comments") {
		cfg.Comments = comments
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	if cmd.Flags().Changed("queue-scale") {
		cfg.QueueScale = queueScale
	}
}
