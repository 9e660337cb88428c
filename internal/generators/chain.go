package generators

import (
	"math/rand"

	"github.com/vovakirdan/discs/internal/geom"
	"github.com/vovakirdan/discs/internal/registry"
)

// chainSpacing is the distance between consecutive centers.
const chainSpacing = 2.0

// Chain lines disks up so each overlaps only its neighbours.
type Chain struct{}

func init() {
	registry.Register("chain", func() registry.Generator { return Chain{} })
}

// ID returns the generator identifier.
func (Chain) ID() string { return "chain" }

// Title returns the display name.
func (Chain) Title() string { return "Chain of neighbouring disks" }

// Generate returns n disks along the x axis. Radii stay between 0.55 and 0.95
// of the spacing, so neighbours always overlap and disks two apart never do.
func (Chain) Generate(rng *rand.Rand, n int) []geom.Disk {
	disks := make([]geom.Disk, n)
	for i := range disks {
		y := between(rng, -0.2, 0.2)
		r := chainSpacing * between(rng, 0.55, 0.95)
		disks[i] = geom.NewDisk(geom.NewPoint(float64(i)*chainSpacing, y), r)
	}
	return disks
}
