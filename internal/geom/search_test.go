package geom

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFindCommonPoint(t *testing.T) {
	tests := []struct {
		name     string
		disks    []Disk
		found    bool
		expected Point
	}{
		{
			name:     "single disk returns center",
			disks:    []Disk{NewDisk(NewPoint(3, -2), 4)},
			found:    true,
			expected: NewPoint(3, -2),
		},
		{
			name: "disjoint pair",
			disks: []Disk{
				NewDisk(NewPoint(0, 0), 1),
				NewDisk(NewPoint(10, 0), 1),
			},
			found: false,
		},
		{
			name: "nested pair uses rightmost point of inner disk",
			disks: []Disk{
				NewDisk(NewPoint(0, 0), 5),
				NewDisk(NewPoint(1, 0), 1),
			},
			found:    true,
			expected: NewPoint(2, 0),
		},
		{
			name: "identical pair",
			disks: []Disk{
				NewDisk(NewPoint(0, 0), 3),
				NewDisk(NewPoint(0, 0), 3),
			},
			found:    true,
			expected: NewPoint(3, 0),
		},
		{
			name: "touching pair",
			disks: []Disk{
				NewDisk(NewPoint(0, 0), 1),
				NewDisk(NewPoint(2, 0), 1),
			},
			found:    true,
			expected: NewPoint(1, 0),
		},
		{
			name: "crossing pair prefers rightmost point of left disk",
			disks: []Disk{
				NewDisk(NewPoint(0, 0), 2),
				NewDisk(NewPoint(3, 0), 2),
			},
			found:    true,
			expected: NewPoint(2, 0),
		},
		{
			name: "three mutually overlapping disks",
			disks: []Disk{
				NewDisk(NewPoint(0, 0), 1.2),
				NewDisk(NewPoint(1, 0), 1.2),
				NewDisk(NewPoint(0.5, 0.8), 1.2),
			},
			found:    true,
			expected: NewPoint(1.2, 0),
		},
		{
			name: "tangent pair with small disk at the touch point",
			disks: []Disk{
				NewDisk(NewPoint(0, 0), 1),
				NewDisk(NewPoint(2, 0), 1),
				NewDisk(NewPoint(1, 0), 0.5),
			},
			found:    true,
			expected: NewPoint(1, 0),
		},
		{
			name: "disjoint pair among overlapping disks",
			disks: []Disk{
				NewDisk(NewPoint(0, 0), 1),
				NewDisk(NewPoint(10, 0), 1),
				NewDisk(NewPoint(5, 0), 100),
			},
			found: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, found, err := FindCommonPoint(tc.disks)
			if err != nil {
				t.Fatalf("FindCommonPoint() failed: %v", err)
			}
			if found != tc.found {
				t.Fatalf("FindCommonPoint() found = %v, expected %v", found, tc.found)
			}
			if !found {
				return
			}
			if diff := cmp.Diff(tc.expected, p, approx); diff != "" {
				t.Errorf("witness mismatch (-want +got):\n%s", diff)
			}
			for i, d := range tc.disks {
				if !d.Contains(p) {
					t.Errorf("witness %v is not inside disk %d (%v)", p, i, d)
				}
			}
		})
	}
}

func TestFindCommonPointErrors(t *testing.T) {
	if _, _, err := FindCommonPoint(nil); !errors.Is(err, ErrNoDisks) {
		t.Errorf("FindCommonPoint(nil) error = %v, expected ErrNoDisks", err)
	}

	disks := []Disk{NewDisk(NewPoint(0, 0), 1), NewDisk(NewPoint(0, math.NaN()), 1)}
	if _, _, err := FindCommonPoint(disks); !errors.Is(err, ErrNonFinite) {
		t.Errorf("FindCommonPoint() error = %v, expected ErrNonFinite", err)
	}
}

func TestExplainHeuristicMiss(t *testing.T) {
	// (1, 3.5) lies in all three disks, but the smallest pair candidate falls
	// outside the first one.
	disks := []Disk{
		NewDisk(NewPoint(2, 3), 3),
		NewDisk(NewPoint(3, 3.5), 2),
		NewDisk(NewPoint(3, 2), 3),
	}
	shared := NewPoint(1, 3.5)
	for i, d := range disks {
		if !d.Contains(shared) {
			t.Fatalf("test setup: %v not in disk %d", shared, i)
		}
	}

	r, err := DefaultFinder().Explain(disks)
	if err != nil {
		t.Fatalf("Explain() failed: %v", err)
	}
	if r.Found {
		t.Fatalf("expected the heuristic to miss, got witness %v", r.Witness)
	}
	if diff := cmp.Diff([]int{0}, r.Rejected); diff != "" {
		t.Errorf("rejected mismatch (-want +got):\n%s", diff)
	}
	if len(r.Pairs) != 3 || len(r.Candidates) != 3 {
		t.Errorf("expected 3 pairs and candidates, got %d and %d", len(r.Pairs), len(r.Candidates))
	}
}

func TestExplainDisjointStopsEarly(t *testing.T) {
	disks := []Disk{
		NewDisk(NewPoint(0, 0), 1),
		NewDisk(NewPoint(10, 0), 1),
		NewDisk(NewPoint(0.5, 0), 1),
	}

	r, err := DefaultFinder().Explain(disks)
	if err != nil {
		t.Fatalf("Explain() failed: %v", err)
	}
	if r.Found {
		t.Fatal("expected no common point")
	}
	if len(r.Pairs) != 1 {
		t.Fatalf("expected search to stop after first pair, got %d pairs", len(r.Pairs))
	}
	last := r.Pairs[len(r.Pairs)-1]
	if last.Type != Disjoint || last.I != 0 || last.J != 1 {
		t.Errorf("last pair = %+v, expected disjoint (0, 1)", last)
	}
	if len(r.Candidates) != 0 || len(r.Rejected) != 0 {
		t.Errorf("expected no candidates or rejections, got %v and %v", r.Candidates, r.Rejected)
	}
}

func TestExplainCandidatesSorted(t *testing.T) {
	disks := []Disk{
		NewDisk(NewPoint(0, 0), 1),
		NewDisk(NewPoint(1, 0), 1),
		NewDisk(NewPoint(0, 1), 1),
		NewDisk(NewPoint(1, 1), 1),
	}

	r, err := DefaultFinder().Explain(disks)
	if err != nil {
		t.Fatalf("Explain() failed: %v", err)
	}
	if len(r.Candidates) != 6 {
		t.Fatalf("expected 6 candidates, got %d", len(r.Candidates))
	}
	for i := 1; i < len(r.Candidates); i++ {
		if r.Candidates[i].Less(r.Candidates[i-1]) {
			t.Errorf("candidates not sorted at %d: %v", i, r.Candidates)
		}
	}
	if !r.Found || r.Witness != r.Candidates[0] {
		t.Errorf("expected the first candidate as witness, got found=%v witness=%v", r.Found, r.Witness)
	}
}

func TestFindCommonPointNeverFalsePositive(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	finder := DefaultFinder()

	for iter := 0; iter < 2000; iter++ {
		n := 2 + rng.Intn(5)
		disks := make([]Disk, n)
		for i := range disks {
			disks[i] = NewDisk(
				NewPoint(rng.Float64()*10, rng.Float64()*10),
				0.5+rng.Float64()*6,
			)
		}

		p, found, err := finder.FindCommonPoint(disks)
		if err != nil {
			t.Fatalf("FindCommonPoint() failed: %v", err)
		}
		if !found {
			continue
		}
		for i, d := range disks {
			if !d.ContainsWithin(p, finder.Epsilon) {
				t.Fatalf("iteration %d: witness %v outside disk %d (%v)", iter, p, i, d)
			}
		}
	}
}

func TestFinderEpsilon(t *testing.T) {
	// The nested pair's candidate (2, 0) sits outside the third disk by
	// roughly 6e-8 in squared distance.
	disks := []Disk{
		NewDisk(NewPoint(0, 0), 5),
		NewDisk(NewPoint(1, 0), 1),
		NewDisk(NewPoint(2, 3), 3-1e-8),
	}

	if _, found, _ := NewFinder(DefaultEpsilon).FindCommonPoint(disks); found {
		t.Error("expected no common point with the default tolerance")
	}

	p, found, err := NewFinder(1e-6).FindCommonPoint(disks)
	if err != nil {
		t.Fatalf("FindCommonPoint() failed: %v", err)
	}
	if !found || p != NewPoint(2, 0) {
		t.Errorf("FindCommonPoint() = %v, %v; expected [2;0], true", p, found)
	}
}
