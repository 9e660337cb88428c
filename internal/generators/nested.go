package generators

import (
	"math/rand"

	"github.com/vovakirdan/discs/internal/geom"
	"github.com/vovakirdan/discs/internal/registry"
)

// Nested produces a chain of disks, each strictly inside the previous one.
type Nested struct{}

func init() {
	registry.Register("nested", func() registry.Generator { return Nested{} })
}

// ID returns the generator identifier.
func (Nested) ID() string { return "nested" }

// Title returns the display name.
func (Nested) Title() string { return "Disks nested inside each other" }

// Generate returns n disks with decreasing radii, each contained in its
// predecessor.
func (Nested) Generate(rng *rand.Rand, n int) []geom.Disk {
	if n == 0 {
		return nil
	}
	disks := make([]geom.Disk, n)
	disks[0] = geom.NewDisk(geom.NewPoint(5, 5), 5)
	for i := 1; i < n; i++ {
		prev := disks[i-1]
		r := prev.Radius * between(rng, 0.6, 0.9)
		dx, dy := offset(rng, 0.9*(prev.Radius-r))
		disks[i] = geom.NewDisk(geom.NewPoint(prev.Center.X+dx, prev.Center.Y+dy), r)
	}
	return disks
}
