package generators

import (
	"math/rand"

	"github.com/vovakirdan/discs/internal/geom"
	"github.com/vovakirdan/discs/internal/registry"
)

// Cluster places every disk so that it covers one hidden anchor point.
type Cluster struct{}

func init() {
	registry.Register("cluster", func() registry.Generator { return Cluster{} })
}

// ID returns the generator identifier.
func (Cluster) ID() string { return "cluster" }

// Title returns the display name.
func (Cluster) Title() string { return "Disks around a shared anchor" }

// Generate returns n disks that all contain the same point.
func (Cluster) Generate(rng *rand.Rand, n int) []geom.Disk {
	ax := between(rng, 0, 10)
	ay := between(rng, 0, 10)

	disks := make([]geom.Disk, n)
	for i := range disks {
		r := between(rng, 1, 3)
		dx, dy := offset(rng, 0.9*r)
		disks[i] = geom.NewDisk(geom.NewPoint(ax+dx, ay+dy), r)
	}
	return disks
}
