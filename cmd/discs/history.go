package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/discs/internal/platform/tui"
	"github.com/vovakirdan/discs/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryPlain bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [scenario]",
	Short: "Show recorded runs",
	Long: `Show the runs recorded with --save or from the viewer, newest first.

On a terminal an interactive table is shown; --plain prints text instead.
With --clear the runs of the given scenario are deleted.

Examples:
  discs history
  discs history triple --plain
  discs history triple --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Maximum runs to print with --plain")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print text instead of the interactive table")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the runs of the given scenario")
}

func runHistory(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	store := openStore(cfg)
	defer store.Close()

	scenarioID := ""
	if len(args) == 1 {
		scenarioID = args[0]
	}

	if flagHistoryClear {
		if scenarioID == "" {
			fatalf("--clear needs a scenario ID")
		}
		if err := store.ClearRuns(scenarioID); err != nil {
			fatalf("%v", err)
		}
		fmt.Printf("Cleared runs of %s\n", scenarioID)
		return
	}

	if !flagHistoryPlain && isTerminal() {
		width, height := terminalSize(100, 30)
		if err := tui.RunHistory(store, scenarioID, width, height); err != nil {
			fatalf("%v", err)
		}
		return
	}

	if scenarioID == "" {
		runs, err := store.RecentRuns(flagHistoryLimit)
		if err != nil {
			fatalf("%v", err)
		}
		printRuns("Recent runs", runs)
		return
	}

	runs, err := store.RunsForScenario(scenarioID, flagHistoryLimit)
	if err != nil {
		fatalf("%v", err)
	}
	printRuns("Runs of "+scenarioID, runs)

	stats, err := store.ScenarioStats(scenarioID)
	if err != nil {
		fatalf("%v", err)
	}
	if stats.Runs > 0 {
		fmt.Printf("%d runs, %d with a common point, average search %s, last %s\n",
			stats.Runs, stats.Found, stats.AvgDuration, stats.LastRun.Format("2006-01-02 15:04"))
	}
}

func printRuns(title string, runs []storage.Run) {
	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Use 'discs find <scenario> --save' or press s in the viewer.")
		return
	}

	columns := []string{"Run", "Scenario", "Disks", "Common point", "Eps", "Time", "Date"}
	fmt.Printf("  %-8s  %-16s  %5s  %-22s  %-7s  %-9s  %s\n", toAny(columns)...)
	for _, r := range runs {
		row := tui.HistoryRow(r)
		fmt.Printf("  %-8s  %-16s  %5s  %-22s  %-7s  %-9s  %s\n", toAny(row)...)
	}
	fmt.Println()
}

func toAny(xs []string) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}
