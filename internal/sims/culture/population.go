// Package culture simulates a population of two-phase cells: a rule engine
// stages every interior cell, then the whole grid commits at once. The rim
// ring is built from immutable rim cells so rules never index out of bounds
// and never need to special-case the world edge.
package culture

import (
	"strconv"

	"golang.org/x/sync/errgroup"

	"cellculture/internal/core"
	"cellculture/pkg/cell"
	pcore "cellculture/pkg/core"
)

// Population owns the full 2D arrangement of cells including the rim ring and
// drives the two-phase generation protocol.
type Population struct {
	cfg  Config
	w, h int

	cells []cell.Cell
	rule  Rule

	generation int
	display    *core.ByteGrid
	ageMask    []float32

	rng *pcore.RNG
}

// New returns a population with the provided dimensions using defaults.
func New(w, h int) *Population {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a population configured from the provided options.
func NewWithConfig(cfg Config) *Population {
	// Anything smaller than 3x3 has no interior.
	if cfg.Width < 3 {
		cfg.Width = 3
	}
	if cfg.Height < 3 {
		cfg.Height = 3
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	rule, err := RuleByName(cfg.Rule)
	if err != nil {
		rule = Conway()
		cfg.Rule = rule.Name()
	}
	p := &Population{
		cfg:     cfg,
		w:       cfg.Width,
		h:       cfg.Height,
		cells:   make([]cell.Cell, cfg.Width*cfg.Height),
		rule:    rule,
		display: core.NewByteGrid(cfg.Width, cfg.Height),
		rng:     pcore.NewRNG(cfg.Seed),
	}
	p.initCells(nil)
	p.rebuildDisplay()
	return p
}

// Name returns the simulation identifier.
func (p *Population) Name() string { return "culture" }

// Size reports the grid dimensions including the rim ring.
func (p *Population) Size() core.Size { return core.Size{W: p.w, H: p.h} }

// Cells exposes the display buffer of tier indices for the committed state.
func (p *Population) Cells() []uint8 { return p.display.Cells() }

// CellAt returns the cell at (x, y). Coordinates must be in range.
func (p *Population) CellAt(x, y int) *cell.Cell {
	return &p.cells[y*p.w+x]
}

// Colors returns the palette injected at construction.
func (p *Population) Colors() cell.StateColors { return p.cfg.Colors }

// Tiers returns the age thresholds used for presentation.
func (p *Population) Tiers() cell.AgeTiers { return p.cfg.Tiers }

// Rule returns the name of the active rule.
func (p *Population) Rule() string { return p.rule.Name() }

// Generation reports how many commits have completed since the last reset.
func (p *Population) Generation() int { return p.generation }

// Reset rebuilds the world, seeding interior cells alive with the configured
// spawn chance using deterministic randomness.
func (p *Population) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = p.cfg.Seed
	}
	rng := pcore.NewRNG(effective)
	p.rng = rng
	p.initCells(func() bool { return rng.Chance(p.cfg.SpawnChance) })
	p.generation = 0
	p.rebuildDisplay()
}

// initCells constructs every cell, rim ring included. spawn decides whether
// an interior cell starts alive; nil means all interior cells start dead.
func (p *Population) initCells(spawn func() bool) {
	for y := 0; y < p.h; y++ {
		for x := 0; x < p.w; x++ {
			rim := x == 0 || y == 0 || x == p.w-1 || y == p.h-1
			action := cell.DoNothing
			if !rim && spawn != nil && spawn() {
				action = cell.GiveLife
			}
			p.cells[y*p.w+x] = cell.NewWithColors(rim, action, p.cfg.Colors)
		}
	}
}

// Step advances the population by one generation: a full staging pass, then a
// full commit. StagePhase always completes for every cell before CommitPhase
// touches any of them.
func (p *Population) Step() {
	p.StagePhase()
	p.CommitPhase()
}

// StagePhase runs phase one: the rule stages a pending update on every
// interior cell. It reads only committed state, so visiting order is
// irrelevant and rows can be staged in parallel.
func (p *Population) StagePhase() {
	p.forEachRow(1, p.h-2, func(y int) {
		p.rule.StageRow(p, y)
	})
}

// CommitPhase runs phase two: every cell applies its staged update, then the
// generation counter and display buffer advance.
func (p *Population) CommitPhase() {
	p.forEachRow(0, p.h-1, func(y int) {
		base := y * p.w
		for x := 0; x < p.w; x++ {
			p.cells[base+x].UpdateState()
		}
	})
	p.generation++
	p.rebuildDisplay()
}

// forEachRow applies fn to rows [first, last], fanning out across an errgroup
// when more than one worker is configured. Wait doubles as the phase barrier;
// the row functions never return errors.
func (p *Population) forEachRow(first, last int, fn func(y int)) {
	if p.cfg.Workers <= 1 {
		for y := first; y <= last; y++ {
			fn(y)
		}
		return
	}
	g := new(errgroup.Group)
	g.SetLimit(p.cfg.Workers)
	for y := first; y <= last; y++ {
		y := y
		g.Go(func() error {
			fn(y)
			return nil
		})
	}
	_ = g.Wait()
}

// Alive counts committed live cells.
func (p *Population) Alive() int {
	n := 0
	for i := range p.cells {
		if p.cells[i].IsAlive() {
			n++
		}
	}
	return n
}

// PendingAlive counts cells staged to be alive next generation. Between
// StagePhase and CommitPhase this is the engine-side lookahead some
// convergence checks need.
func (p *Population) PendingAlive() int {
	n := 0
	for i := range p.cells {
		if !p.cells[i].IsRim() && p.cells[i].AliveNext() {
			n++
		}
	}
	return n
}

// Parameters exposes the current tunables for the HUD panel.
func (p *Population) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Seeding",
			Params: []core.Parameter{
				{
					Key:         "spawn_chance",
					Label:       "Spawn chance",
					Type:        core.ParamTypeFloat,
					Value:       strconv.FormatFloat(p.cfg.SpawnChance, 'f', 2, 64),
					Description: "probability an interior cell starts alive",
				},
			},
		},
		{
			Name: "Age tiers",
			Params: []core.Parameter{
				{
					Key:   "old_age",
					Label: "Old after",
					Type:  core.ParamTypeInt,
					Value: strconv.Itoa(p.cfg.Tiers.Old),
				},
				{
					Key:   "elder_age",
					Label: "Elder after",
					Type:  core.ParamTypeInt,
					Value: strconv.Itoa(p.cfg.Tiers.Elder),
				},
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable tunables.
func (p *Population) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key: "spawn_chance", Label: "Spawn chance", Type: core.ParamTypeFloat,
			Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true,
		},
		{
			Key: "old_age", Label: "Old after", Type: core.ParamTypeInt,
			Step: 1, Min: 1, HasMin: true,
		},
		{
			Key: "elder_age", Label: "Elder after", Type: core.ParamTypeInt,
			Step: 1, Min: 1, HasMin: true,
		},
	}
}

// SetIntParameter updates an integer tunable by key.
func (p *Population) SetIntParameter(key string, value int) bool {
	if value < 0 {
		return false
	}
	switch key {
	case "old_age":
		p.cfg.Tiers.Old = value
		if p.cfg.Tiers.Elder < value {
			p.cfg.Tiers.Elder = value
		}
	case "elder_age":
		if value < p.cfg.Tiers.Old {
			return false
		}
		p.cfg.Tiers.Elder = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point tunable by key.
func (p *Population) SetFloatParameter(key string, value float64) bool {
	if key != "spawn_chance" || value < 0 || value > 1 {
		return false
	}
	p.cfg.SpawnChance = value
	return true
}

func init() {
	core.Register("culture", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
