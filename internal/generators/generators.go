// Package generators provides random disk-set generators. Each generator
// registers itself with the registry in init().
package generators

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/discs/internal/registry"
	"github.com/vovakirdan/discs/internal/scenario"
)

// Scenario generates n disks with the named generator and wraps them in a
// scenario whose ID records the generator and seed.
func Scenario(generatorID string, seed int64, n int) (scenario.Scenario, error) {
	if n < 1 {
		return scenario.Scenario{}, fmt.Errorf("generators: need at least one disk, got %d", n)
	}
	g, err := registry.Create(generatorID)
	if err != nil {
		return scenario.Scenario{}, err
	}

	rng := rand.New(rand.NewSource(seed))
	return scenario.Scenario{
		ID:    fmt.Sprintf("%s-%d-%d", g.ID(), n, seed),
		Name:  g.Title(),
		Disks: g.Generate(rng, n),
		Metadata: map[string]string{
			"generator": g.ID(),
			"seed":      fmt.Sprint(seed),
		},
	}, nil
}

// between returns a uniform value in [lo, hi).
func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// offset returns a vector with a uniform direction and a length in [0, maxLen).
func offset(rng *rand.Rand, maxLen float64) (float64, float64) {
	angle := rng.Float64() * 2 * math.Pi
	length := rng.Float64() * maxLen
	return length * math.Cos(angle), length * math.Sin(angle)
}
