// Package plot renders disk sets onto a core.Screen.
package plot

import (
	"math"

	"github.com/vovakirdan/discs/internal/core"
	"github.com/vovakirdan/discs/internal/geom"
)

// CellAspect is the height of a terminal cell divided by its width.
const CellAspect = 2.0

// Viewport maps world coordinates onto the cells of a screen area.
// World Y grows upwards, screen rows grow downwards.
type Viewport struct {
	Area   core.Rect
	Center geom.Point
	Scale  float64 // columns per world unit; rows per unit is Scale/CellAspect
}

// Fit returns a viewport that shows every disk inside area, padded by
// margin times the larger side of the disks' bounding box.
func Fit(area core.Rect, disks []geom.Disk, margin float64) Viewport {
	lo, hi := geom.NewPoint(-1, -1), geom.NewPoint(1, 1)
	for i, d := range disks {
		dlo, dhi := d.Bounds()
		if i == 0 {
			lo, hi = dlo, dhi
			continue
		}
		lo.X, lo.Y = math.Min(lo.X, dlo.X), math.Min(lo.Y, dlo.Y)
		hi.X, hi.Y = math.Max(hi.X, dhi.X), math.Max(hi.Y, dhi.Y)
	}

	spanX, spanY := hi.X-lo.X, hi.Y-lo.Y
	pad := math.Max(margin, 0) * math.Max(spanX, spanY)
	spanX += 2 * pad
	spanY += 2 * pad
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}

	cols := float64(core.Max(area.W-1, 1))
	rows := float64(core.Max(area.H-1, 1))
	scale := math.Min(cols/spanX, CellAspect*rows/spanY)

	return Viewport{
		Area:   area,
		Center: geom.NewPoint((lo.X+hi.X)/2, (lo.Y+hi.Y)/2),
		Scale:  scale,
	}
}

// ToCell returns the screen cell that shows world point p.
// The cell may lie outside the viewport area.
func (v Viewport) ToCell(p geom.Point) (int, int) {
	cx, cy := v.origin()
	col := cx + (p.X-v.Center.X)*v.Scale
	row := cy - (p.Y-v.Center.Y)*v.Scale/CellAspect
	return int(math.Round(col)), int(math.Round(row))
}

// ToWorld returns the world point at the center of a screen cell.
func (v Viewport) ToWorld(col, row int) geom.Point {
	cx, cy := v.origin()
	return geom.NewPoint(
		v.Center.X+(float64(col)-cx)/v.Scale,
		v.Center.Y-(float64(row)-cy)*CellAspect/v.Scale,
	)
}

// Visible reports whether world point p falls inside the viewport area.
func (v Viewport) Visible(p geom.Point) bool {
	col, row := v.ToCell(p)
	return v.Area.Contains(col, row)
}

// UnitsPerColumn is the world width of one screen column.
func (v Viewport) UnitsPerColumn() float64 {
	return 1 / v.Scale
}

func (v Viewport) origin() (float64, float64) {
	return float64(v.Area.X) + float64(v.Area.W-1)/2,
		float64(v.Area.Y) + float64(v.Area.H-1)/2
}
