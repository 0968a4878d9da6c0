// Package cell implements the two-phase state machine of a single grid cell.
//
// A cell holds its current observable state and a staged pending update. Rule
// engines read current state and record a pending transition; the owning grid
// commits every cell's pending update exactly once per generation. Because
// staging never touches current state, rule evaluation is independent of the
// order in which cells are visited.
package cell

// DefaultValue is the glyph a cell shows until a rule stages another one.
const DefaultValue byte = '#'

// details is the current, committed state of a cell.
type details struct {
	age   int
	color Color
	rim   bool
	value byte
}

// nextUpdate is the staged transition applied at the next commit.
type nextUpdate struct {
	action      Action
	color       Color
	value       byte
	willBeAlive bool
}

// Cell is one addressable unit of the simulated world. Rim cells form the
// immutable edge of the world: every mutation on them is silently inert.
type Cell struct {
	details details
	next    nextUpdate
}

// New constructs a cell using the default palette. Interior cells start dead
// unless the seed action immediately implies life.
func New(rim bool, action Action) Cell {
	return NewWithColors(rim, action, DefaultStateColors())
}

// NewWithColors constructs a cell with the palette injected by its grid.
func NewWithColors(rim bool, action Action, colors StateColors) Cell {
	c := Cell{details: details{color: colors.Dead, rim: rim, value: DefaultValue}}
	if action == GiveLife && !rim {
		c.details.age = 1
		c.details.color = colors.Living
	}
	// Pending mirrors current so an immediate commit is the identity.
	c.next = nextUpdate{
		color:       c.details.color,
		value:       c.details.value,
		willBeAlive: c.details.age > 0,
	}
	return c
}

// IsAlive reports whether the cell is a non-rim cell with age above zero.
func (c *Cell) IsAlive() bool {
	return !c.details.rim && c.details.age > 0
}

// Age returns the number of consecutive generations the cell has been alive;
// zero means dead.
func (c *Cell) Age() int { return c.details.age }

// Color returns the current display color.
func (c *Cell) Color() Color { return c.details.color }

// Value returns the current display glyph.
func (c *Cell) Value() byte { return c.details.value }

// IsRim reports whether the cell belongs to the immutable world edge.
func (c *Cell) IsRim() bool { return c.details.rim }

// SetNextAction stages the transition for the next commit. Rim cells ignore
// it so callers may stage uniformly across a whole grid including its border.
func (c *Cell) SetNextAction(action Action) {
	if c.details.rim {
		return
	}
	c.next.action = action
}

// NextAction returns the currently staged action.
func (c *Cell) NextAction() Action { return c.next.action }

// SetNextColor stages the display color applied at the next commit.
func (c *Cell) SetNextColor(color Color) { c.next.color = color }

// SetNextValue stages the display glyph applied at the next commit.
func (c *Cell) SetNextValue(value byte) { c.next.value = value }

// SetAliveNext records the precomputed liveness of the next generation. Rules
// that depend on neighbor lookahead read it back before any cell commits.
func (c *Cell) SetAliveNext(alive bool) { c.next.willBeAlive = alive }

// AliveNext reports the staged liveness flag. This is a read of intention,
// not of committed state.
func (c *Cell) AliveNext() bool { return c.next.willBeAlive }

// UpdateState commits the staged update: the action drives the age, then the
// staged color and glyph replace the current ones and the action resets to
// DoNothing. Rim cells are left untouched regardless of what was staged.
func (c *Cell) UpdateState() {
	if c.details.rim {
		return
	}
	switch c.next.action {
	case Kill:
		c.details.age = 0
	case Ignore:
		if c.details.age > 0 {
			c.details.age++
		}
	case GiveLife:
		c.details.age++
	}
	c.details.color = c.next.color
	c.details.value = c.next.value
	c.next.action = DoNothing
}
