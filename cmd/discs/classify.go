package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/discs/internal/geom"
)

var classifyCmd = &cobra.Command{
	Use:   "classify x1 y1 r1 x2 y2 r2",
	Short: "Classify how two disks intersect",
	Long: `Classify the intersection of two disks and print their crossing points.

Possible results: disjoint, contains, is_contained, identical, touches, crosses.
The result is reported from the first disk's point of view.

Examples:
  discs classify 0 0 2 3 0 2     # crosses
  discs classify 0 0 5 1 0 1     # contains
  discs classify -- -1 0 1 1 0 1 # touches`,
	Args: cobra.ExactArgs(6),
	Run:  runClassify,
}

func runClassify(_ *cobra.Command, args []string) {
	v, err := parseFloats(args)
	if err != nil {
		fatalf("%v", err)
	}

	a := geom.NewDisk(geom.NewPoint(v[0], v[1]), v[2])
	b := geom.NewDisk(geom.NewPoint(v[3], v[4]), v[5])
	if err := geom.Validate([]geom.Disk{a, b}); err != nil {
		fatalf("%v", err)
	}

	typ, points := a.Classify(b)
	fmt.Println(typ)
	for _, p := range points {
		fmt.Printf("  %s\n", p)
	}
}
