package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cellculture/internal/core"
	"cellculture/pkg/cell"
)

// ANSI sequences used by the terminal run loop between frames.
const (
	ClearScreen = "\x1b[2J"
	CursorHome  = "\x1b[H"
)

// CellGrid is the read-only view the terminal renderer needs: committed
// state only, queried per cell.
type CellGrid interface {
	Size() core.Size
	CellAt(x, y int) *cell.Cell
}

// Terminal renders a committed grid as colored glyphs, one styled rune per
// cell. Dead interior cells render blank so the world stays readable.
type Terminal struct {
	styles [8]lipgloss.Style
	rim    lipgloss.Style
}

// NewTerminal builds a renderer with one style per terminal color.
func NewTerminal() *Terminal {
	t := &Terminal{}
	for c := cell.Black; c <= cell.White; c++ {
		t.styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiCode(c)))
	}
	t.rim = lipgloss.NewStyle().Faint(true)
	return t
}

// Frame renders the whole grid into a newline-terminated string.
func (t *Terminal) Frame(g CellGrid) string {
	var b strings.Builder
	size := g.Size()
	b.Grow(size.W*size.H + size.H)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := g.CellAt(x, y)
			switch {
			case c.IsRim():
				b.WriteString(t.rim.Render(string(c.Value())))
			case !c.IsAlive():
				b.WriteByte(' ')
			default:
				b.WriteString(t.styles[c.Color()%8].Render(string(c.Value())))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ansiCode maps a cell color onto its base ANSI palette index.
func ansiCode(c cell.Color) string {
	switch c {
	case cell.Black:
		return "0"
	case cell.Red:
		return "1"
	case cell.Green:
		return "2"
	case cell.Yellow:
		return "3"
	case cell.Blue:
		return "4"
	case cell.Magenta:
		return "5"
	case cell.Cyan:
		return "6"
	default:
		return "7"
	}
}
