package registry

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/discs/internal/geom"
)

type fixedGenerator struct{}

func (fixedGenerator) ID() string    { return "test-fixed" }
func (fixedGenerator) Title() string { return "Fixed test disks" }
func (fixedGenerator) Generate(_ *rand.Rand, n int) []geom.Disk {
	disks := make([]geom.Disk, n)
	for i := range disks {
		disks[i] = geom.NewDisk(geom.NewPoint(float64(i), 0), 1)
	}
	return disks
}

func TestRegisterCreate(t *testing.T) {
	Register("test-fixed", func() Generator { return fixedGenerator{} })

	if !Exists("test-fixed") {
		t.Fatal("Exists() should report the registered generator")
	}

	g, err := Create("test-fixed")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if got := len(g.Generate(rand.New(rand.NewSource(1)), 3)); got != 3 {
		t.Errorf("Generate() returned %d disks, expected 3", got)
	}

	found := false
	for _, info := range List() {
		if info.ID == "test-fixed" {
			found = true
			if info.Title != "Fixed test disks" {
				t.Errorf("Title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include the registered generator")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() should fail for unknown IDs")
	}

	defer func() {
		if recover() == nil {
			t.Error("Register() should panic on duplicate IDs")
		}
	}()
	Register("test-fixed", func() Generator { return fixedGenerator{} })
}
