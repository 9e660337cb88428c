// discs classifies pairs of disks and searches for a point common to a set
// of disks in the plane.
//
// Usage:
//
//	discs classify x1 y1 r1 x2 y2 r2  - Classify how two disks intersect
//	discs find [scenario]             - Search for a common point
//	discs list                        - List scenarios and generators
//	discs gen <generator>             - Generate a random scenario
//	discs batch [dir]                 - Evaluate many scenarios concurrently
//	discs plot <scenario>             - Print a plot of a scenario
//	discs view [scenario]             - Interactive viewer
//	discs serve                       - Start SSH server for remote viewing
//	discs history [scenario]          - Show recorded runs
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.discs/configs, ./configs)
//	--db <path>         - Run history database (default: ~/.discs/runs.db)
//	--epsilon <value>   - Containment tolerance (default from config)
//	--precision <name>  - Tolerance preset: strict, normal or loose
//	--verbose           - Debug logging
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/discs/internal/config"
	"github.com/vovakirdan/discs/internal/geom"
	"github.com/vovakirdan/discs/internal/scenario"
	"github.com/vovakirdan/discs/internal/storage"
)

var (
	// Global flags
	flagConfig    string
	flagDBPath    string
	flagEpsilon   float64
	flagPrecision string
	flagVerbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "discs",
	Short: "Disk intersection toolkit",
	Long: `discs classifies how pairs of disks intersect and looks for a point
shared by every disk of a set.

Available commands:
  classify - Classify a pair of disks
  find     - Search a scenario for a common point
  list     - Show built-in scenarios and generators
  gen      - Generate a random scenario
  batch    - Evaluate a directory of scenarios
  plot     - Print a scenario as a text plot
  view     - Interactive viewer
  serve    - Start SSH server for remote viewing
  history  - Show recorded runs

Examples:
  discs classify 0 0 2 3 0 2
  discs find triple
  discs find --disk 0,0,1 --disk 1,0,1
  discs gen cluster -n 6 --seed 42 --out cluster.yaml
  discs view cluster.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (default from config)")
	rootCmd.PersistentFlags().Float64Var(&flagEpsilon, "epsilon", -1, "Containment tolerance (negative = from config)")
	rootCmd.PersistentFlags().StringVar(&flagPrecision, "precision", "", "Tolerance preset: strict, normal or loose")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// fatalf prints an error and exits.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the config file and applies the global flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatalf("%v", err)
	}
	if err := config.ApplyPrecisionPreset(&cfg, config.PrecisionPreset(flagPrecision)); err != nil {
		fatalf("%v", err)
	}
	if flagEpsilon >= 0 {
		cfg.Search.Epsilon = flagEpsilon
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	return cfg
}

// newLogger creates the command-line logger.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openStore opens the run history, exiting on failure.
func openStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fatalf("opening run history: %v", err)
	}
	return store
}

// resolveScenario loads a scenario file or a built-in scenario by ID.
func resolveScenario(ref string) scenario.Scenario {
	sc, err := scenario.Resolve(ref)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'discs list' to see built-in scenarios.")
		os.Exit(1)
	}
	return sc
}

// terminalSize returns the size of stdout, or the fallback when stdout is
// not a terminal.
func terminalSize(fallbackW, fallbackH int) (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return fallbackW, fallbackH
}

// isTerminal reports whether stdout is a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// parseFloats parses every argument as a float64.
func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		out[i] = v
	}
	return out, nil
}

// parseDisk parses a disk written as "x,y,r".
func parseDisk(s string) (geom.Disk, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geom.Disk{}, fmt.Errorf("disk %q: expected x,y,r", s)
	}
	v, err := parseFloats(parts)
	if err != nil {
		return geom.Disk{}, fmt.Errorf("disk %q: %w", s, err)
	}
	d := geom.NewDisk(geom.NewPoint(v[0], v[1]), v[2])
	if err := d.Validate(); err != nil {
		return geom.Disk{}, fmt.Errorf("disk %q: %w", s, err)
	}
	return d, nil
}
