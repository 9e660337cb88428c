package geom

import (
	"errors"
	"fmt"
	"math"
)

// DefaultEpsilon is the containment tolerance used by Contains and by the
// package-level FindCommonPoint. It absorbs rounding in boundary points that
// come out of the intersection arithmetic.
const DefaultEpsilon = 1e-9

var (
	// ErrNoDisks is returned when a search is asked to run on no disks.
	ErrNoDisks = errors.New("geom: no disks")

	// ErrNegativeRadius is returned for a disk with radius below zero.
	ErrNegativeRadius = errors.New("geom: negative radius")

	// ErrNonFinite is returned for a disk with a NaN or infinite component.
	ErrNonFinite = errors.New("geom: non-finite value")
)

// Disk is a filled circle.
type Disk struct {
	Center Point
	Radius float64
}

// NewDisk creates a disk. The values are not checked; call Validate when the
// input comes from outside the program.
func NewDisk(center Point, radius float64) Disk {
	return Disk{Center: center, Radius: radius}
}

// Validate reports ErrNonFinite or ErrNegativeRadius for malformed disks.
func (d Disk) Validate() error {
	if !d.Center.IsFinite() || math.IsNaN(d.Radius) || math.IsInf(d.Radius, 0) {
		return ErrNonFinite
	}
	if d.Radius < 0 {
		return ErrNegativeRadius
	}
	return nil
}

// Validate checks every disk in the slice. The returned error names the index
// of the first bad disk and wraps one of the package sentinels.
func Validate(disks []Disk) error {
	if len(disks) == 0 {
		return ErrNoDisks
	}
	for i, d := range disks {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("geom: disk %d: %w", i, err)
		}
	}
	return nil
}

// Contains reports whether p lies inside the disk or on its boundary,
// using DefaultEpsilon as the tolerance.
func (d Disk) Contains(p Point) bool {
	return d.ContainsWithin(p, DefaultEpsilon)
}

// ContainsWithin reports whether the squared distance from the center to p
// is at most Radius^2 + eps.
func (d Disk) ContainsWithin(p Point, eps float64) bool {
	return d.Center.distanceSquared(p) <= d.Radius*d.Radius+eps
}

// RightmostPoint returns the boundary point with the largest X.
func (d Disk) RightmostPoint() Point {
	return Point{X: d.Center.X + d.Radius, Y: d.Center.Y}
}

// Bounds returns the lower-left and upper-right corners of the disk's
// axis-aligned bounding box.
func (d Disk) Bounds() (Point, Point) {
	return Point{X: d.Center.X - d.Radius, Y: d.Center.Y - d.Radius},
		Point{X: d.Center.X + d.Radius, Y: d.Center.Y + d.Radius}
}

// String formats the disk as [x;y] r=radius.
func (d Disk) String() string {
	return fmt.Sprintf("%s r=%s", d.Center, formatFloat(d.Radius))
}
