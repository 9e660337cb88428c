package geom

import "sort"

// Finder searches for a point shared by every disk in a collection.
// The zero value uses an epsilon of 0; use NewFinder or DefaultFinder.
type Finder struct {
	// Epsilon is the tolerance used for the final containment check.
	Epsilon float64
}

// NewFinder creates a finder with the given containment tolerance.
func NewFinder(eps float64) Finder {
	return Finder{Epsilon: eps}
}

// DefaultFinder returns a finder using DefaultEpsilon.
func DefaultFinder() Finder {
	return NewFinder(DefaultEpsilon)
}

// PairResult records how one pair of disks was classified and which candidate
// point it contributed to the search.
type PairResult struct {
	I, J      int
	Type      IntersectionType
	Crossings []Point
	Candidate Point
}

// Report is the full trace of a search.
type Report struct {
	// Pairs holds one entry per classified pair, in (i, j) order. When a
	// disjoint pair ends the search early it is the last entry.
	Pairs []PairResult

	// Candidates are the pair candidates sorted ascending by X, then Y.
	Candidates []Point

	// Witness is the point common to all disks when Found is true.
	Witness Point
	Found   bool

	// Rejected lists the indexes of disks that did not contain the first
	// candidate. It is empty when Found is true or when a disjoint pair
	// stopped the search.
	Rejected []int
}

// FindCommonPoint looks for a point inside every disk using DefaultEpsilon.
// It returns the point and true when one is found, false when none is found,
// and an error if the input is empty or contains a malformed disk.
func FindCommonPoint(disks []Disk) (Point, bool, error) {
	return DefaultFinder().FindCommonPoint(disks)
}

// FindCommonPoint looks for a point inside every disk.
//
// Each pair of disks contributes one candidate point and the smallest
// candidate (by X, then Y) is checked against every disk. A returned point is
// always inside all disks, but the search is a heuristic: it can miss a
// common point that exists when three or more disks overlap.
func (f Finder) FindCommonPoint(disks []Disk) (Point, bool, error) {
	r, err := f.Explain(disks)
	if err != nil {
		return Point{}, false, err
	}
	return r.Witness, r.Found, nil
}

// Explain runs the search and returns the full trace.
func (f Finder) Explain(disks []Disk) (Report, error) {
	if err := Validate(disks); err != nil {
		return Report{}, err
	}

	if len(disks) == 1 {
		return Report{Witness: disks[0].Center, Found: true}, nil
	}

	var r Report
	r.Pairs = make([]PairResult, 0, len(disks)*(len(disks)-1)/2)
	for i := 0; i < len(disks); i++ {
		for j := i + 1; j < len(disks); j++ {
			typ, crossings := disks[i].Classify(disks[j])
			pr := PairResult{I: i, J: j, Type: typ, Crossings: crossings}
			if typ == Disjoint {
				r.Pairs = append(r.Pairs, pr)
				return r, nil
			}
			pr.Candidate = f.candidate(disks[i], disks[j], typ, crossings)
			r.Pairs = append(r.Pairs, pr)
		}
	}

	r.Candidates = make([]Point, len(r.Pairs))
	for k, pr := range r.Pairs {
		r.Candidates[k] = pr.Candidate
	}
	sort.SliceStable(r.Candidates, func(a, b int) bool {
		return r.Candidates[a].Less(r.Candidates[b])
	})

	first := r.Candidates[0]
	for k, d := range disks {
		if !d.ContainsWithin(first, f.Epsilon) {
			r.Rejected = append(r.Rejected, k)
		}
	}
	if len(r.Rejected) == 0 {
		r.Witness = first
		r.Found = true
	}
	return r, nil
}

// candidate picks the representative point for a non-disjoint pair.
func (f Finder) candidate(a, b Disk, typ IntersectionType, crossings []Point) Point {
	switch typ {
	case Contains:
		return b.RightmostPoint()
	case IsContained, Identical:
		return a.RightmostPoint()
	case Touches:
		return crossings[0]
	default:
		return f.crossingCandidate(a, b, crossings)
	}
}

// crossingCandidate takes the rightmost crossing point, then prefers the
// rightmost point of the left disk when the right disk still contains it and
// it lies further right.
func (f Finder) crossingCandidate(a, b Disk, crossings []Point) Point {
	left, right := a, b
	if a.Center.IsRightOf(b.Center) {
		left, right = b, a
	}

	p := crossings[0]
	if crossings[1].IsRightOf(p) {
		p = crossings[1]
	}

	tmp := left.RightmostPoint()
	if right.ContainsWithin(tmp, f.Epsilon) && tmp.IsRightOf(p) {
		return tmp
	}
	return p
}
