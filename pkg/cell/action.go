package cell

// Action enumerates the staged transitions a rule may record on a cell.
// The zero value is DoNothing so an unstaged cell commits as identity.
type Action uint8

const (
	// DoNothing leaves the age untouched at commit.
	DoNothing Action = iota
	// Kill sets the age to zero at commit.
	Kill
	// Ignore keeps an alive cell alive and ages it; dead cells stay dead.
	Ignore
	// GiveLife ages a non-rim cell, establishing liveness from age zero.
	GiveLife
)

// String returns the action name for logs and test output.
func (a Action) String() string {
	switch a {
	case DoNothing:
		return "do-nothing"
	case Kill:
		return "kill"
	case Ignore:
		return "ignore"
	case GiveLife:
		return "give-life"
	default:
		return "unknown"
	}
}
