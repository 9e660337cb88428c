package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for plot elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// diskPalette is the rotation of outline colors for consecutive disks.
// Red and white are left out: they mark crossings and the witness.
var diskPalette = []Color{
	ColorCyan,
	ColorYellow,
	ColorGreen,
	ColorMagenta,
	ColorBlue,
	ColorOrange,
	ColorBrightCyan,
	ColorBrightGreen,
	ColorBrightMagenta,
	ColorBrightBlue,
}

// DiskColor returns the outline color of the i-th disk.
func DiskColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return diskPalette[i%len(diskPalette)]
}
