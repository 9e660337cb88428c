package plot

import (
	"math"

	"github.com/vovakirdan/discs/internal/core"
	"github.com/vovakirdan/discs/internal/geom"
)

// Markers used on the plot.
const (
	OutlineRune  = '·'
	SelectedRune = '•'
	CrossingRune = 'x'
	WitnessRune  = '@'
	CenterRune   = '+'
)

// Options controls what Draw puts on the screen.
type Options struct {
	// Area is the part of the screen to draw into.
	// The zero value means the whole screen.
	Area core.Rect

	// Margin pads the fitted bounds, as a fraction of their larger side.
	Margin float64

	// Frame draws a box around the area and plots inside it.
	Frame bool

	// Selected is the index of a highlighted disk, or -1 for none.
	Selected int

	// Report, when set, adds crossing points and the witness.
	Report *geom.Report
}

// DefaultOptions returns options for a framed full-screen plot.
func DefaultOptions() Options {
	return Options{Margin: 0.1, Frame: true, Selected: -1}
}

// Draw renders disks onto s and returns the viewport it used.
// Later layers win: outlines, then centers, then crossings, then the witness.
func Draw(s *core.Screen, disks []geom.Disk, opts Options) Viewport {
	area := opts.Area
	if area.W == 0 && area.H == 0 {
		area = core.NewRect(0, 0, s.Width(), s.Height())
	}
	if opts.Frame {
		s.DrawBox(area, core.ColorGray)
		area = area.Inset(1)
	}

	v := Fit(area, disks, opts.Margin)

	for i, d := range disks {
		r, c := OutlineRune, core.DiskColor(i)
		if i == opts.Selected {
			r, c = SelectedRune, core.ColorBrightYellow
		}
		drawOutline(s, v, d, r, c)
	}

	for i, d := range disks {
		c := core.DiskColor(i)
		if i == opts.Selected {
			c = core.ColorBrightYellow
		}
		plotPoint(s, v, d.Center, centerLabel(i), c)
	}

	if opts.Report == nil {
		return v
	}

	for _, pair := range opts.Report.Pairs {
		for _, p := range pair.Crossings {
			plotPoint(s, v, p, CrossingRune, core.ColorRed)
		}
	}
	if opts.Report.Found {
		plotPoint(s, v, opts.Report.Witness, WitnessRune, core.ColorBrightWhite)
	}
	return v
}

// Render draws disks into a fresh width x height screen.
func Render(width, height int, disks []geom.Disk, opts Options) *core.Screen {
	s := core.NewScreen(width, height)
	Draw(s, disks, opts)
	return s
}

const maxOutlineSteps = 1 << 14

// drawOutline samples the circle densely enough to leave no gaps between
// neighbouring cells.
func drawOutline(s *core.Screen, v Viewport, d geom.Disk, r rune, c core.Color) {
	circumference := 2 * math.Pi * d.Radius * v.Scale
	steps := int(math.Ceil(circumference * 2))
	if steps < 16 {
		steps = 16
	}
	if steps > maxOutlineSteps {
		steps = maxOutlineSteps
	}
	for k := 0; k < steps; k++ {
		a := 2 * math.Pi * float64(k) / float64(steps)
		p := geom.NewPoint(d.Center.X+d.Radius*math.Cos(a), d.Center.Y+d.Radius*math.Sin(a))
		plotPoint(s, v, p, r, c)
	}
}

func plotPoint(s *core.Screen, v Viewport, p geom.Point, r rune, c core.Color) {
	col, row := v.ToCell(p)
	if !v.Area.Contains(col, row) {
		return
	}
	s.SetColored(col, row, r, c)
}

func centerLabel(i int) rune {
	if i >= 0 && i < 10 {
		return rune('0' + i)
	}
	return CenterRune
}
