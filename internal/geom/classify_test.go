package geom

import (
	"math"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestClassify(t *testing.T) {
	h := math.Sqrt(4 - 1.5*1.5)

	tests := []struct {
		name      string
		a, b      Disk
		expected  IntersectionType
		crossings []Point
	}{
		{
			name:     "identical",
			a:        NewDisk(NewPoint(0, 0), 5),
			b:        NewDisk(NewPoint(0, 0), 5),
			expected: Identical,
		},
		{
			name:     "disjoint",
			a:        NewDisk(NewPoint(0, 0), 1),
			b:        NewDisk(NewPoint(10, 0), 1),
			expected: Disjoint,
		},
		{
			name:     "contains",
			a:        NewDisk(NewPoint(0, 0), 5),
			b:        NewDisk(NewPoint(1, 0), 1),
			expected: Contains,
		},
		{
			name:     "is contained",
			a:        NewDisk(NewPoint(1, 0), 1),
			b:        NewDisk(NewPoint(0, 0), 5),
			expected: IsContained,
		},
		{
			name:     "concentric different radii",
			a:        NewDisk(NewPoint(0, 0), 1),
			b:        NewDisk(NewPoint(0, 0), 2),
			expected: IsContained,
		},
		{
			name:     "internal tangency counts as nested",
			a:        NewDisk(NewPoint(0, 0), 3),
			b:        NewDisk(NewPoint(1, 0), 2),
			expected: Contains,
		},
		{
			name:      "external tangency",
			a:         NewDisk(NewPoint(0, 0), 1),
			b:         NewDisk(NewPoint(2, 0), 1),
			expected:  Touches,
			crossings: []Point{{1, 0}},
		},
		{
			name:      "crossing",
			a:         NewDisk(NewPoint(0, 0), 2),
			b:         NewDisk(NewPoint(3, 0), 2),
			expected:  Crosses,
			crossings: []Point{{1.5, h}, {1.5, -h}},
		},
		{
			name:      "crossing vertical",
			a:         NewDisk(NewPoint(0, 0), 2),
			b:         NewDisk(NewPoint(0, 3), 2),
			expected:  Crosses,
			crossings: []Point{{-h, 1.5}, {h, 1.5}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			typ, crossings := tc.a.Classify(tc.b)
			if typ != tc.expected {
				t.Errorf("Classify() = %v, expected %v", typ, tc.expected)
			}
			if diff := cmp.Diff(tc.crossings, crossings, approx, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("crossings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassifySymmetry(t *testing.T) {
	disks := []Disk{
		NewDisk(NewPoint(0, 0), 5),
		NewDisk(NewPoint(1, 0), 1),
		NewDisk(NewPoint(10, 0), 1),
		NewDisk(NewPoint(2, 0), 1),
		NewDisk(NewPoint(3, 0), 2),
		NewDisk(NewPoint(0.5, 0.8), 1.2),
		NewDisk(NewPoint(-1, 4), 3),
	}

	byXY := cmpopts.SortSlices(func(a, b Point) bool { return a.Less(b) })

	for i, a := range disks {
		for j, b := range disks {
			if i == j {
				continue
			}
			ab, pab := a.Classify(b)
			ba, pba := b.Classify(a)
			if ab != ba.Flip() {
				t.Errorf("disks %d,%d: Classify() = %v one way and %v the other", i, j, ab, ba)
			}
			if len(pab) != len(pba) {
				t.Errorf("disks %d,%d: %d crossings one way, %d the other", i, j, len(pab), len(pba))
				continue
			}
			if diff := cmp.Diff(pab, pba, approx, byXY, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("disks %d,%d: crossing sets differ (-ab +ba):\n%s", i, j, diff)
			}
		}
	}
}

func TestCrossingsLieOnBothDisks(t *testing.T) {
	pairs := [][2]Disk{
		{NewDisk(NewPoint(0, 0), 1), NewDisk(NewPoint(2, 0), 1)},
		{NewDisk(NewPoint(0, 0), 2), NewDisk(NewPoint(3, 0), 2)},
		{NewDisk(NewPoint(0, 0), 1.2), NewDisk(NewPoint(0.5, 0.8), 1.2)},
		{NewDisk(NewPoint(-3, 7), 4.5), NewDisk(NewPoint(1, 5), 2.25)},
		{NewDisk(NewPoint(100, 100), 0.5), NewDisk(NewPoint(100.7, 99.6), 0.6)},
	}

	for _, p := range pairs {
		typ, crossings := p[0].Classify(p[1])
		if typ != Touches && typ != Crosses {
			t.Fatalf("%v vs %v: expected Touches or Crosses, got %v", p[0], p[1], typ)
		}
		for _, c := range crossings {
			if !p[0].Contains(c) || !p[1].Contains(c) {
				t.Errorf("crossing %v of %v and %v is not inside both", c, p[0], p[1])
			}
		}
	}
}

func TestNestedDistance(t *testing.T) {
	pairs := [][2]Disk{
		{NewDisk(NewPoint(0, 0), 5), NewDisk(NewPoint(1, 0), 1)},
		{NewDisk(NewPoint(2, 2), 1), NewDisk(NewPoint(2, 3), 4)},
		{NewDisk(NewPoint(0, 0), 3), NewDisk(NewPoint(0, 0), 0)},
	}
	for _, p := range pairs {
		typ, _ := p[0].Classify(p[1])
		if typ != Contains && typ != IsContained {
			t.Errorf("%v vs %v: expected nested, got %v", p[0], p[1], typ)
			continue
		}
		d := p[0].Center.Distance(p[1].Center)
		if d > math.Abs(p[0].Radius-p[1].Radius) {
			t.Errorf("%v vs %v: nested with d=%v > |r1-r2|", p[0], p[1], d)
		}
		if (typ == Contains) != (p[0].Radius > p[1].Radius) {
			t.Errorf("%v vs %v: %v disagrees with radii", p[0], p[1], typ)
		}
	}
}

func TestIntersectionTypeNames(t *testing.T) {
	all := []IntersectionType{Disjoint, Contains, IsContained, Identical, Touches, Crosses}
	names := make([]string, 0, len(all))
	for _, typ := range all {
		parsed, err := ParseIntersectionType(typ.String())
		if err != nil {
			t.Fatalf("ParseIntersectionType(%q) failed: %v", typ.String(), err)
		}
		if parsed != typ {
			t.Errorf("ParseIntersectionType(%q) = %v", typ.String(), parsed)
		}
		names = append(names, typ.String())
	}

	sort.Strings(names)
	for i := 1; i < len(names); i++ {
		if names[i] == names[i-1] {
			t.Errorf("duplicate name %q", names[i])
		}
	}

	if _, err := ParseIntersectionType("overlaps"); err == nil {
		t.Error("ParseIntersectionType should reject unknown names")
	}
	if got := IntersectionType(42).String(); got != "IntersectionType(42)" {
		t.Errorf("String() for out-of-range value = %q", got)
	}
}
