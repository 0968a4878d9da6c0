package render

import (
	"strings"
	"testing"

	"cellculture/internal/sims/culture"
	"cellculture/pkg/cell"
)

func TestFrameDimensions(t *testing.T) {
	p := culture.New(7, 5)
	frame := NewTerminal().Frame(p)

	lines := strings.Split(strings.TrimRight(frame, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("frame has %d rows, expected 5", len(lines))
	}
}

func TestFrameShowsAliveGlyphsAndBlanksDead(t *testing.T) {
	p := culture.New(7, 5)
	c := p.CellAt(3, 2)
	c.SetNextAction(cell.GiveLife)
	c.SetAliveNext(true)
	c.SetNextColor(cell.White)
	c.SetNextValue('#')
	p.CommitPhase()

	frame := NewTerminal().Frame(p)
	lines := strings.Split(strings.TrimRight(frame, "\n"), "\n")

	if !strings.Contains(lines[2], "#") {
		t.Fatalf("alive cell glyph missing from row %q", lines[2])
	}
	// Row 1 is interior-only between the rim columns and fully dead.
	inner := lines[1]
	if !strings.Contains(inner, " ") {
		t.Fatalf("dead interior cells not blanked in row %q", inner)
	}
}

func TestFrameRendersRimRing(t *testing.T) {
	p := culture.New(5, 4)
	frame := NewTerminal().Frame(p)
	lines := strings.Split(strings.TrimRight(frame, "\n"), "\n")

	if !strings.Contains(lines[0], string(cell.DefaultValue)) {
		t.Fatalf("top rim row missing glyphs: %q", lines[0])
	}
	if !strings.Contains(lines[len(lines)-1], string(cell.DefaultValue)) {
		t.Fatalf("bottom rim row missing glyphs: %q", lines[len(lines)-1])
	}
}
