package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/discs/internal/geom"
	"github.com/vovakirdan/discs/internal/plot"
	"github.com/vovakirdan/discs/internal/platform/tui"
)

var (
	flagPlotWidth  int
	flagPlotHeight int
	flagPlotColor  string
)

var plotCmd = &cobra.Command{
	Use:   "plot <scenario>",
	Short: "Print a scenario as a text plot",
	Long: `Render the disks of a scenario, their crossing points (x) and the common
point (@) as text.

Colors are used when stdout is a terminal; --color always|never overrides.

Examples:
  discs plot triple
  discs plot lens.yaml --width 100 --height 40 --color never > lens.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runPlot,
}

func init() {
	plotCmd.Flags().IntVar(&flagPlotWidth, "width", 0, "Plot width in columns (0 = from config)")
	plotCmd.Flags().IntVar(&flagPlotHeight, "height", 0, "Plot height in rows (0 = from config)")
	plotCmd.Flags().StringVar(&flagPlotColor, "color", "auto", "Color output: auto, always or never")
}

func runPlot(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	sc := resolveScenario(args[0])

	width, height := cfg.Plot.Width, cfg.Plot.Height
	if flagPlotWidth > 0 {
		width = flagPlotWidth
	}
	if flagPlotHeight > 0 {
		height = flagPlotHeight
	}

	report, err := geom.NewFinder(cfg.Search.Epsilon).Explain(sc.Disks)
	if err != nil {
		fatalf("%v", err)
	}

	opts := plot.DefaultOptions()
	opts.Margin = cfg.Plot.Margin
	opts.Report = &report
	screen := plot.Render(width, height, sc.Disks, opts)

	var color bool
	switch flagPlotColor {
	case "always":
		color = true
	case "never":
		color = false
	case "auto":
		color = isTerminal()
	default:
		fatalf("invalid --color %q: expected auto, always or never", flagPlotColor)
	}

	fmt.Println(sc.Title())
	if color {
		fmt.Println(tui.RenderScreen(screen))
	} else {
		fmt.Println(screen.String())
	}
	if report.Found {
		fmt.Printf("common point %s\n", report.Witness)
	} else {
		fmt.Println("no common point")
	}
}
