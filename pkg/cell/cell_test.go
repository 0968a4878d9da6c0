package cell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInteriorStartsDead(t *testing.T) {
	c := New(false, DoNothing)
	assert.False(t, c.IsAlive())
	assert.Equal(t, 0, c.Age())
	assert.Equal(t, Black, c.Color())
	assert.Equal(t, DefaultValue, c.Value())
	assert.False(t, c.IsRim())
}

func TestNewWithGiveLifeSeedsAliveCell(t *testing.T) {
	c := New(false, GiveLife)
	require.True(t, c.IsAlive())
	assert.Equal(t, 1, c.Age())
	assert.Equal(t, White, c.Color())
}

func TestNewRimCellNeverAlive(t *testing.T) {
	c := New(true, GiveLife)
	assert.False(t, c.IsAlive())
	assert.Equal(t, 0, c.Age())
	assert.True(t, c.IsRim())
}

func TestKillDrivesAgeToZero(t *testing.T) {
	c := New(false, GiveLife)
	for i := 0; i < 4; i++ {
		c.SetNextAction(Ignore)
		c.UpdateState()
	}
	require.Equal(t, 5, c.Age())

	c.SetNextAction(Kill)
	c.UpdateState()
	assert.Equal(t, 0, c.Age())
	assert.False(t, c.IsAlive())
}

func TestIgnoreAgesAliveCellByOne(t *testing.T) {
	c := New(false, GiveLife)
	c.SetNextAction(Ignore)
	c.UpdateState()
	c.SetNextAction(Ignore)
	c.UpdateState()
	require.Equal(t, 3, c.Age())

	c.SetNextAction(Ignore)
	c.UpdateState()
	assert.Equal(t, 4, c.Age())
}

func TestIgnoreDoesNotResurrectDeadCell(t *testing.T) {
	c := New(false, DoNothing)
	c.SetNextAction(Ignore)
	c.UpdateState()
	assert.Equal(t, 0, c.Age())
	assert.False(t, c.IsAlive())
}

func TestGiveLifeEstablishesLiveness(t *testing.T) {
	c := New(false, DoNothing)
	c.SetNextAction(GiveLife)
	c.UpdateState()
	assert.Equal(t, 1, c.Age())
	assert.True(t, c.IsAlive())
}

func TestGiveLifeOnRimCellIsInert(t *testing.T) {
	c := New(true, DoNothing)
	c.SetNextAction(GiveLife)
	c.UpdateState()
	assert.Equal(t, 0, c.Age())
	assert.False(t, c.IsAlive())
}

func TestRimCellInvariantUnderAnyStaging(t *testing.T) {
	c := New(true, DoNothing)
	age, col, val := c.Age(), c.Color(), c.Value()

	for _, action := range []Action{Kill, Ignore, GiveLife, DoNothing} {
		c.SetNextAction(action)
		c.SetNextColor(Red)
		c.SetNextValue('X')
		c.SetAliveNext(true)
		c.UpdateState()

		assert.Equal(t, age, c.Age(), "action %v", action)
		assert.Equal(t, col, c.Color(), "action %v", action)
		assert.Equal(t, val, c.Value(), "action %v", action)
		assert.True(t, c.IsRim())
	}
}

func TestStagingDoesNotLeakIntoCurrentState(t *testing.T) {
	c := New(false, GiveLife)
	c.SetNextColor(Cyan)
	c.SetNextValue('E')

	assert.Equal(t, White, c.Color())
	assert.Equal(t, DefaultValue, c.Value())

	c.SetNextAction(Ignore)
	c.UpdateState()

	assert.Equal(t, Cyan, c.Color())
	assert.Equal(t, byte('E'), c.Value())
}

func TestImmediateCommitIsIdentity(t *testing.T) {
	c := New(false, DoNothing)
	c.UpdateState()
	assert.Equal(t, 0, c.Age())
	assert.Equal(t, Black, c.Color())
	assert.Equal(t, DefaultValue, c.Value())
}

func TestCommitResetsStagedAction(t *testing.T) {
	c := New(false, DoNothing)
	c.SetNextAction(GiveLife)
	c.UpdateState()
	assert.Equal(t, DoNothing, c.NextAction())

	// A second commit with the reset action must not age the cell again.
	c.UpdateState()
	assert.Equal(t, 1, c.Age())
}

func TestAliveNextReadsStagedIntention(t *testing.T) {
	c := New(false, DoNothing)
	assert.False(t, c.AliveNext())

	c.SetAliveNext(true)
	assert.True(t, c.AliveNext())
	assert.False(t, c.IsAlive(), "lookahead must not affect current state")
}

func TestAliveAgreesWithAgeAcrossCommits(t *testing.T) {
	c := New(false, DoNothing)
	actions := []Action{GiveLife, Ignore, Ignore, Kill, DoNothing, GiveLife}
	for _, action := range actions {
		assert.Equal(t, c.Age() > 0, c.IsAlive())
		c.SetNextAction(action)
		c.UpdateState()
		assert.Equal(t, c.Age() > 0, c.IsAlive())
	}
}

func TestSingleCellLifecycleScenario(t *testing.T) {
	// One interior cell surrounded by rim cells; the rim never changes.
	rim := make([]Cell, 8)
	for i := range rim {
		rim[i] = New(true, DoNothing)
	}
	c := New(false, DoNothing)

	commitAll := func() {
		c.UpdateState()
		for i := range rim {
			rim[i].UpdateState()
		}
	}

	c.SetNextAction(GiveLife)
	commitAll()
	require.True(t, c.IsAlive())
	require.Equal(t, 1, c.Age())

	c.SetNextAction(Ignore)
	commitAll()
	require.True(t, c.IsAlive())
	require.Equal(t, 2, c.Age())

	c.SetNextAction(Kill)
	commitAll()
	require.False(t, c.IsAlive())
	require.Equal(t, 0, c.Age())

	for i := range rim {
		assert.Equal(t, 0, rim[i].Age())
	}
}
