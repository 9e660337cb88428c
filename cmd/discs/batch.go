package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/discs/internal/batch"
	"github.com/vovakirdan/discs/internal/scenario"
)

var (
	flagBatchWorkers int
	flagBatchSave    bool
)

var batchCmd = &cobra.Command{
	Use:   "batch [dir]",
	Short: "Evaluate many scenarios concurrently",
	Long: `Evaluate every scenario file under dir, or the built-in scenarios when no
directory is given, and check each against its expectations.

Exits with status 1 when any scenario is invalid or misses an expectation.

Examples:
  discs batch
  discs batch ./scenarios --workers 8 --save`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBatch,
}

func init() {
	batchCmd.Flags().IntVarP(&flagBatchWorkers, "workers", "w", 0, "Concurrent workers (0 = from config)")
	batchCmd.Flags().BoolVar(&flagBatchSave, "save", false, "Record every run in the history database")
}

func runBatch(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger("batch")

	var (
		scenarios []scenario.Scenario
		err       error
	)
	if len(args) == 1 {
		scenarios, err = scenario.NewLoader(args[0]).LoadAll()
	} else {
		scenarios, err = scenario.Builtin()
	}
	if err != nil {
		fatalf("%v", err)
	}
	if len(scenarios) == 0 {
		fmt.Println("No scenarios found.")
		return
	}

	opts := batch.Options{
		Workers: cfg.Batch.Workers,
		Epsilon: cfg.Search.Epsilon,
		Logger:  logger,
	}
	if flagBatchWorkers > 0 {
		opts.Workers = flagBatchWorkers
	}
	if flagBatchSave {
		store := openStore(cfg)
		defer store.Close()
		opts.Recorder = store
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := batch.Run(ctx, scenarios, opts)
	if err != nil {
		fatalf("%v", err)
	}

	printResults(results)

	sum := batch.Summarize(results)
	fmt.Println()
	fmt.Printf("%d scenarios, %d with a common point, %d failed, %d invalid\n",
		sum.Total, sum.Found, sum.Failed, sum.Invalid)
	if sum.SlowestID != "" {
		fmt.Printf("total search time %s, slowest %s (%s)\n", sum.TotalTime, sum.SlowestID, sum.MaxTime)
	}

	if sum.Failed > 0 || sum.Invalid > 0 {
		os.Exit(1)
	}
}

func printResults(results []batch.Result) {
	maxIDLen := 2 // "ID" header
	for _, r := range results {
		maxIDLen = max(maxIDLen, len(r.Scenario.ID))
	}

	fmt.Printf("  %-*s  %-4s  %5s  %-24s  %s\n", maxIDLen, "ID", "OK", "Disks", "Common point", "Time")
	fmt.Printf("  %-*s  %-4s  %5s  %-24s  %s\n", maxIDLen, "--", "--", "-----", "------------", "----")

	for _, r := range results {
		status := "ok"
		if !r.OK() {
			status = "FAIL"
		}

		outcome := "none"
		switch {
		case r.Err != nil:
			outcome = "invalid"
		case r.Report.Found:
			outcome = r.Report.Witness.String()
		}

		fmt.Printf("  %-*s  %-4s  %5d  %-24s  %s\n",
			maxIDLen, r.Scenario.ID, status, len(r.Scenario.Disks), outcome, r.Duration)

		if r.Err != nil {
			fmt.Printf("      %v\n", r.Err)
		}
		if len(r.Mismatches) > 0 {
			fmt.Printf("      %s\n", strings.Join(r.Mismatches, "\n      "))
		}
	}
}
