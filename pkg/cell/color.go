package cell

import "fmt"

// Color identifies one of the eight classic terminal colors a cell can show.
type Color uint8

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var colorNames = [...]string{
	Black:   "black",
	Red:     "red",
	Green:   "green",
	Yellow:  "yellow",
	Blue:    "blue",
	Magenta: "magenta",
	Cyan:    "cyan",
	White:   "white",
}

// String returns the lowercase color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// ParseColor resolves a lowercase color name to its Color value.
func ParseColor(name string) (Color, error) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return Black, fmt.Errorf("unknown color %q", name)
}

// StateColors maps cell liveness tiers to display colors. A grid injects one
// of these at construction time; there is no process-wide color table.
type StateColors struct {
	Living Color
	Dead   Color
	Old    Color
	Elder  Color
}

// DefaultStateColors returns the standard palette.
func DefaultStateColors() StateColors {
	return StateColors{Living: White, Dead: Black, Old: Cyan, Elder: Magenta}
}

// AgeTiers holds the age thresholds that split alive cells into presentation
// tiers. A cell older than Old is "old", older than Elder is "elder".
type AgeTiers struct {
	Old   int
	Elder int
}

// DefaultAgeTiers returns the standard tier thresholds.
func DefaultAgeTiers() AgeTiers {
	return AgeTiers{Old: 5, Elder: 10}
}

// ForAge picks the display color for a cell of the given age. Age zero or
// below maps to the dead color; the tiers refine the alive range.
func (s StateColors) ForAge(age int, t AgeTiers) Color {
	switch {
	case age <= 0:
		return s.Dead
	case t.Elder > 0 && age > t.Elder:
		return s.Elder
	case t.Old > 0 && age > t.Old:
		return s.Old
	default:
		return s.Living
	}
}
