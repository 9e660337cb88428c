package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/discs/internal/registry"
	"github.com/vovakirdan/discs/internal/scenario"
)

var flagListDir string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List scenarios and generators",
	Long: `Shows the built-in scenarios, the scenarios found in --dir, and the
registered random generators.`,
	Run: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListDir, "dir", "", "Also list scenario files in this directory")
}

func runList(_ *cobra.Command, _ []string) {
	scenarios, err := scenario.Builtin()
	if err != nil {
		fatalf("%v", err)
	}
	printScenarios("Built-in scenarios:", scenarios)

	if flagListDir != "" {
		extra, err := scenario.NewLoader(flagListDir).LoadAll()
		if err != nil {
			fatalf("%v", err)
		}
		printScenarios(fmt.Sprintf("Scenarios in %s:", flagListDir), extra)
	}

	generators := registry.List()
	fmt.Println("Generators:")
	fmt.Println()
	maxIDLen := 2 // "ID" header
	for _, g := range generators {
		maxIDLen = max(maxIDLen, len(g.ID))
	}
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range generators {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'discs view <id>' to open a scenario, 'discs gen <generator>' to make one.")
}

func printScenarios(title string, scenarios []scenario.Scenario) {
	fmt.Println(title)
	fmt.Println()

	if len(scenarios) == 0 {
		fmt.Println("  (none)")
		fmt.Println()
		return
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range scenarios {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Printf("  %-*s  %5s  %s\n", maxIDLen, "ID", "Disks", "Title")
	fmt.Printf("  %-*s  %5s  %s\n", maxIDLen, "--", "-----", "-----")
	for _, s := range scenarios {
		fmt.Printf("  %-*s  %5d  %s\n", maxIDLen, s.ID, len(s.Disks), s.Title())
	}
	fmt.Println()
}
