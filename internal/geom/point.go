// Package geom classifies pairs of disks in the plane and searches for a point
// shared by a whole collection of disks.
//
// Every type is a small immutable value and every operation is a pure function
// of its arguments, so the package is safe for concurrent use without locking.
// It has no dependencies outside the standard library so that the CLI, the
// batch runner and the terminal viewer can all share it.
package geom

import (
	"fmt"
	"math"
	"strconv"
)

// Point is a coordinate in the plane. Two points are equal only when both
// coordinates are exactly equal; no tolerance is applied.
type Point struct {
	X, Y float64
}

// NewPoint creates a point at (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance between p and other.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// distanceSquared avoids the sqrt when only comparisons are needed.
func (p Point) distanceSquared(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// IsRightOf reports whether p sorts after other: a larger X wins, and on equal
// X the larger Y wins. A point is never right of itself.
func (p Point) IsRightOf(other Point) bool {
	return p.X > other.X || (p.X == other.X && p.Y > other.Y)
}

// Less orders points ascending by X, then by Y.
func (p Point) Less(other Point) bool {
	return other.IsRightOf(p)
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// String formats the point as [x;y].
func (p Point) String() string {
	return fmt.Sprintf("[%s;%s]", formatFloat(p.X), formatFloat(p.Y))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
