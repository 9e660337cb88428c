package generators

import (
	"math/rand"

	"github.com/vovakirdan/discs/internal/geom"
	"github.com/vovakirdan/discs/internal/registry"
)

// Scatter places disks uniformly in a 10x10 square.
type Scatter struct{}

func init() {
	registry.Register("scatter", func() registry.Generator { return Scatter{} })
}

// ID returns the generator identifier.
func (Scatter) ID() string { return "scatter" }

// Title returns the display name.
func (Scatter) Title() string { return "Uniformly scattered disks" }

// Generate returns n disks with random centers and radii.
func (Scatter) Generate(rng *rand.Rand, n int) []geom.Disk {
	disks := make([]geom.Disk, n)
	for i := range disks {
		disks[i] = geom.NewDisk(
			geom.NewPoint(between(rng, 0, 10), between(rng, 0, 10)),
			between(rng, 0.5, 3),
		)
	}
	return disks
}
