package culture

import (
	"image/color"

	"cellculture/pkg/cell"
)

// Display tier indices written into the population's byte grid.
const (
	TierDead uint8 = iota
	TierLiving
	TierOld
	TierElder
	TierRim
)

// termRGBA maps the eight terminal colors onto RGBA for the windowed frontend.
var termRGBA = [...]color.RGBA{
	cell.Black:   {R: 20, G: 20, B: 24, A: 255},
	cell.Red:     {R: 205, G: 60, B: 60, A: 255},
	cell.Green:   {R: 60, G: 180, B: 75, A: 255},
	cell.Yellow:  {R: 220, G: 190, B: 60, A: 255},
	cell.Blue:    {R: 65, G: 105, B: 225, A: 255},
	cell.Magenta: {R: 200, G: 70, B: 200, A: 255},
	cell.Cyan:    {R: 70, G: 190, B: 200, A: 255},
	cell.White:   {R: 235, G: 235, B: 235, A: 255},
}

// Palette returns one RGBA entry per display tier, derived from the injected
// state colors. Index it with the values in Cells().
func (p *Population) Palette() []color.RGBA {
	rim := color.RGBA{R: 60, G: 62, B: 70, A: 255}
	return []color.RGBA{
		TierDead:   rgbaFor(p.cfg.Colors.Dead),
		TierLiving: rgbaFor(p.cfg.Colors.Living),
		TierOld:    rgbaFor(p.cfg.Colors.Old),
		TierElder:  rgbaFor(p.cfg.Colors.Elder),
		TierRim:    rim,
	}
}

func rgbaFor(c cell.Color) color.RGBA {
	if int(c) < len(termRGBA) {
		return termRGBA[c]
	}
	return color.RGBA{A: 255}
}

func tierFor(c *cell.Cell, tiers cell.AgeTiers) uint8 {
	switch {
	case c.IsRim():
		return TierRim
	case !c.IsAlive():
		return TierDead
	case tiers.Elder > 0 && c.Age() > tiers.Elder:
		return TierElder
	case tiers.Old > 0 && c.Age() > tiers.Old:
		return TierOld
	default:
		return TierLiving
	}
}

func (p *Population) rebuildDisplay() {
	buf := p.display.Cells()
	for i := range p.cells {
		buf[i] = tierFor(&p.cells[i], p.cfg.Tiers)
	}
}

// AgeMask returns each cell's age normalized against the elder threshold,
// used by the windowed age overlay. Rim and dead cells read as zero.
func (p *Population) AgeMask() []float32 {
	if len(p.ageMask) != len(p.cells) {
		p.ageMask = make([]float32, len(p.cells))
	}
	limit := float32(p.cfg.Tiers.Elder)
	if limit <= 0 {
		limit = 1
	}
	for i := range p.cells {
		c := &p.cells[i]
		if !c.IsAlive() {
			p.ageMask[i] = 0
			continue
		}
		v := float32(c.Age()) / limit
		if v > 1 {
			v = 1
		}
		p.ageMask[i] = v
	}
	return p.ageMask
}
