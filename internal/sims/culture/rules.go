package culture

import (
	"fmt"

	"cellculture/pkg/cell"
)

// Rule stages the pending update for cells in one grid row. Row granularity
// lets the population drive staging either serially or across workers.
type Rule interface {
	Name() string
	StageRow(p *Population, y int)
}

type offset struct{ dx, dy int }

var mooreNeighborhood = []offset{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

var vonNeumannNeighborhood = []offset{
	{0, -1}, {-1, 0}, {1, 0}, {0, 1},
}

// existence applies B3/S23 over a configurable neighborhood, optionally
// recoloring cells by age tier the way the original aging rule did.
type existence struct {
	name  string
	dirs  []offset
	aging bool
}

// Conway returns the classic B3/S23 rule over the Moore neighborhood.
func Conway() Rule {
	return &existence{name: "conway", dirs: mooreNeighborhood}
}

// VonNeumann returns B3/S23 over the four cardinal neighbors.
func VonNeumann() Rule {
	return &existence{name: "vonneumann", dirs: vonNeumannNeighborhood}
}

// Aging returns the conway rule with age-tier presentation: old cells are
// recolored and elders additionally show the 'E' glyph.
func Aging() Rule {
	return &existence{name: "aging", dirs: mooreNeighborhood, aging: true}
}

// RuleByName resolves a rule identifier.
func RuleByName(name string) (Rule, error) {
	switch name {
	case "conway":
		return Conway(), nil
	case "vonneumann":
		return VonNeumann(), nil
	case "aging":
		return Aging(), nil
	default:
		return nil, fmt.Errorf("unknown rule %q", name)
	}
}

// RuleNames lists the available rule identifiers.
func RuleNames() []string {
	return []string{"conway", "vonneumann", "aging"}
}

func (r *existence) Name() string { return r.name }

// StageRow reads only committed state and writes only each cell's own pending
// fields, so rows may be staged concurrently.
func (r *existence) StageRow(p *Population, y int) {
	colors := p.Colors()
	tiers := p.Tiers()
	for x := 1; x < p.w-1; x++ {
		c := p.CellAt(x, y)
		alive := c.IsAlive()
		action := actionFor(r.countAlive(p, x, y), alive)

		c.SetNextAction(action)
		liveNext := willLive(action, alive)
		c.SetAliveNext(liveNext)

		if !liveNext {
			c.SetNextColor(colors.Dead)
			c.SetNextValue(cell.DefaultValue)
			continue
		}

		nextAge := c.Age() + 1
		if !r.aging {
			c.SetNextColor(colors.Living)
			c.SetNextValue(cell.DefaultValue)
			continue
		}
		c.SetNextColor(colors.ForAge(nextAge, tiers))
		if tiers.Elder > 0 && nextAge > tiers.Elder {
			c.SetNextValue('E')
		} else {
			c.SetNextValue(cell.DefaultValue)
		}
	}
}

func (r *existence) countAlive(p *Population, x, y int) int {
	n := 0
	for _, d := range r.dirs {
		if p.CellAt(x+d.dx, y+d.dy).IsAlive() {
			n++
		}
	}
	return n
}

// actionFor maps a neighbor count onto the cell's staged action per B3/S23.
func actionFor(aliveNeighbors int, alive bool) cell.Action {
	switch {
	case alive && (aliveNeighbors < 2 || aliveNeighbors > 3):
		return cell.Kill
	case alive:
		return cell.Ignore
	case aliveNeighbors == 3:
		return cell.GiveLife
	default:
		return cell.DoNothing
	}
}

// willLive precomputes next-generation liveness from the staged action.
func willLive(action cell.Action, alive bool) bool {
	switch action {
	case cell.GiveLife:
		return true
	case cell.Kill:
		return false
	default:
		return alive
	}
}
