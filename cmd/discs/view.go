package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/discs/internal/platform/tui"
	"github.com/vovakirdan/discs/internal/scenario"
	"github.com/vovakirdan/discs/internal/storage"
)

var (
	flagViewDir    string
	flagViewExport string
)

var viewCmd = &cobra.Command{
	Use:   "view [scenario]",
	Short: "Open the interactive viewer",
	Long: `Plot a scenario and edit it interactively: select a disk with tab, move
it with the arrow keys or hjkl, resize it with + and -. The common-point
search reruns after every change. Press s to save the run to the history
database, e to export the edited disks as YAML, ? for help.

Without a scenario a picker lists the built-in scenarios and those in --dir.

Examples:
  discs view
  discs view triple
  discs view ./scenarios/lens.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runView,
}

func init() {
	viewCmd.Flags().StringVar(&flagViewDir, "dir", "", "Also offer scenario files in this directory")
	viewCmd.Flags().StringVar(&flagViewExport, "export-dir", "", "Where edited scenarios are written (default ~/.discs/scenarios)")
}

func runView(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	width, height := terminalSize(80, 24)
	opts := tui.ViewerOptions{
		Epsilon:   cfg.Search.Epsilon,
		Margin:    cfg.Plot.Margin,
		ExportDir: exportDir(),
		Width:     width,
		Height:    height,
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
	} else {
		defer store.Close()
		opts.Recorder = store
	}

	if len(args) == 1 {
		if err := tui.RunViewer(resolveScenario(args[0]), opts); err != nil {
			fatalf("%v", err)
		}
		return
	}

	scenarios, err := scenario.Builtin()
	if err != nil {
		fatalf("%v", err)
	}
	if flagViewDir != "" {
		extra, err := scenario.NewLoader(flagViewDir).LoadAll()
		if err != nil {
			fatalf("%v", err)
		}
		scenarios = append(scenarios, extra...)
	}

	if err := tui.RunSession(scenarios, opts); err != nil {
		fatalf("%v", err)
	}
}

func exportDir() string {
	if flagViewExport != "" {
		return flagViewExport
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".discs", "scenarios")
}
