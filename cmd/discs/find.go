package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/discs/internal/geom"
	"github.com/vovakirdan/discs/internal/scenario"
	"github.com/vovakirdan/discs/internal/storage"
)

var (
	flagFindDisks   []string
	flagFindExplain bool
	flagFindSave    bool
)

var findCmd = &cobra.Command{
	Use:   "find [scenario]",
	Short: "Search for a point common to every disk",
	Long: `Search a scenario for a point that lies in every disk.

The scenario is a YAML file or a built-in scenario ID. Extra disks can be
given with --disk x,y,r; with no scenario the --disk values are the input.

The search is a heuristic: a reported point is always common to all disks,
but "no common point" can be wrong for some inputs.

Examples:
  discs find triple
  discs find ./scenarios/lens.yaml --explain
  discs find --disk 0,0,2 --disk 3,0,2 --disk 1.5,1,1
  discs find square --save`,
	Args: cobra.MaximumNArgs(1),
	Run:  runFind,
}

func init() {
	findCmd.Flags().StringArrayVarP(&flagFindDisks, "disk", "d", nil, "Disk as x,y,r (repeatable)")
	findCmd.Flags().BoolVar(&flagFindExplain, "explain", false, "Print pair classifications and candidates")
	findCmd.Flags().BoolVar(&flagFindSave, "save", false, "Record the run in the history database")
}

func runFind(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger("find")

	sc := scenario.Scenario{ID: "adhoc"}
	if len(args) == 1 {
		sc = resolveScenario(args[0])
	}
	for _, s := range flagFindDisks {
		d, err := parseDisk(s)
		if err != nil {
			fatalf("%v", err)
		}
		sc.Disks = append(sc.Disks, d)
	}

	finder := geom.NewFinder(cfg.Search.Epsilon)
	start := time.Now()
	report, err := finder.Explain(sc.Disks)
	elapsed := time.Since(start)
	if err != nil {
		fatalf("%v", err)
	}
	logger.Debug("search finished", "scenario", sc.ID, "disks", len(sc.Disks), "epsilon", finder.Epsilon, "duration", elapsed)

	if flagFindExplain {
		printReport(report)
	}

	if report.Found {
		fmt.Printf("common point %s\n", report.Witness)
	} else {
		fmt.Println("no common point")
	}

	for _, m := range sc.Check(report) {
		logger.Warn("expectation mismatch", "detail", m)
	}

	if flagFindSave {
		store := openStore(cfg)
		defer store.Close()
		id, err := store.SaveRun(storage.Run{
			ScenarioID: sc.ID,
			DiskCount:  len(sc.Disks),
			Found:      report.Found,
			X:          report.Witness.X,
			Y:          report.Witness.Y,
			Epsilon:    finder.Epsilon,
			Duration:   elapsed,
		})
		if err != nil {
			fatalf("%v", err)
		}
		logger.Info("run saved", "id", id)
	}
}

// printReport prints the search trace.
func printReport(r geom.Report) {
	fmt.Println("pairs:")
	for _, p := range r.Pairs {
		fmt.Printf("  %d-%d  %-12s", p.I, p.J, p.Type)
		if p.Type != geom.Disjoint {
			fmt.Printf(" candidate %s", p.Candidate)
		}
		for _, c := range p.Crossings {
			fmt.Printf("  x %s", c)
		}
		fmt.Println()
	}
	if len(r.Candidates) > 0 {
		fmt.Println("candidates:")
		for _, c := range r.Candidates {
			fmt.Printf("  %s\n", c)
		}
	}
	if len(r.Rejected) > 0 {
		fmt.Printf("first candidate rejected by disks %v\n", r.Rejected)
	}
}
