package geom

import (
	"fmt"
	"math"
)

// IntersectionType describes how two disks are positioned relative to each
// other.
type IntersectionType int

const (
	// Disjoint disks share no point.
	Disjoint IntersectionType = iota
	// Contains means the first disk holds the second entirely.
	Contains
	// IsContained means the first disk lies entirely inside the second.
	IsContained
	// Identical disks have the same center and radius.
	Identical
	// Touches means the boundaries meet in exactly one point.
	Touches
	// Crosses means the boundaries meet in exactly two points.
	Crosses
)

var intersectionNames = [...]string{
	Disjoint:    "disjoint",
	Contains:    "contains",
	IsContained: "is_contained",
	Identical:   "identical",
	Touches:     "touches",
	Crosses:     "crosses",
}

// String returns the lower-case name used in scenario files and CLI output.
func (t IntersectionType) String() string {
	if t < 0 || int(t) >= len(intersectionNames) {
		return fmt.Sprintf("IntersectionType(%d)", int(t))
	}
	return intersectionNames[t]
}

// ParseIntersectionType is the inverse of String.
func ParseIntersectionType(s string) (IntersectionType, error) {
	for i, name := range intersectionNames {
		if name == s {
			return IntersectionType(i), nil
		}
	}
	return 0, fmt.Errorf("geom: unknown intersection type %q", s)
}

// Flip returns the type seen from the other disk's side: Contains and
// IsContained swap, everything else is symmetric.
func (t IntersectionType) Flip() IntersectionType {
	switch t {
	case Contains:
		return IsContained
	case IsContained:
		return Contains
	default:
		return t
	}
}

// Classify determines how d and other are positioned. For Touches it also
// returns the single boundary point they share; for Crosses it returns the
// two boundary crossings, the first offset to the left of the line from d's
// center to other's center and the second to the right. Every other result
// comes with no points.
//
// Comparisons are exact. Identical and Touches therefore only trigger when
// the floating-point values line up perfectly; near-tangent disks are
// reported as Crosses with two nearly coincident points.
func (d Disk) Classify(other Disk) (IntersectionType, []Point) {
	if d.Center == other.Center && d.Radius == other.Radius {
		return Identical, nil
	}

	dx := other.Center.X - d.Center.X
	dy := other.Center.Y - d.Center.Y
	dist2 := dx*dx + dy*dy
	dist := math.Sqrt(dist2)

	if dist > d.Radius+other.Radius {
		return Disjoint, nil
	}
	if dist <= math.Abs(d.Radius-other.Radius) {
		if d.Radius > other.Radius {
			return Contains, nil
		}
		return IsContained, nil
	}

	// a: distance from d's center to the chord midpoint along the center line.
	// h: half the chord length, clamped so rounding near tangency cannot
	// produce NaN crossings.
	a := (d.Radius*d.Radius - other.Radius*other.Radius + dist2) / (2 * dist)
	h := math.Sqrt(math.Max(0, d.Radius*d.Radius-a*a))

	px := d.Center.X + dx*a/dist
	py := d.Center.Y + dy*a/dist

	if a == d.Radius {
		return Touches, []Point{{X: px, Y: py}}
	}

	rx := -dy * h / dist
	ry := dx * h / dist
	return Crosses, []Point{
		{X: px + rx, Y: py + ry},
		{X: px - rx, Y: py - ry},
	}
}
