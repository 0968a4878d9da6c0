package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gernest/wow"
	"github.com/gernest/wow/spin"

	"cellculture/internal/core"
	"cellculture/internal/render"
)

// twoPhase is implemented by sims that expose the generation barrier, letting
// the runner read staged lookahead counts between the phases.
type twoPhase interface {
	core.Sim
	StagePhase()
	CommitPhase()
	Alive() int
	PendingAlive() int
	Generation() int
}

// RunTerminal drives the interactive terminal frontend until the configured
// turn limit is reached or the user interrupts.
func RunTerminal(sim core.Sim, cfg *Config, out io.Writer) error {
	grid, ok := sim.(render.CellGrid)
	if !ok {
		return fmt.Errorf("sim %q exposes no cell-level view", sim.Name())
	}
	term := render.NewTerminal()
	stepper := core.NewFixedStep(cfg.TPS)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	defer signal.Stop(stop)

	tp, hasStats := sim.(twoPhase)

	fmt.Fprint(out, render.ClearScreen)
	turns := 0
	for {
		select {
		case <-stop:
			return nil
		default:
		}
		if !stepper.ShouldStep() {
			idle := stepper.Interval() / 4
			if idle < time.Millisecond {
				idle = time.Millisecond
			}
			time.Sleep(idle)
			continue
		}
		sim.Step()
		turns++
		fmt.Fprint(out, render.CursorHome)
		fmt.Fprint(out, term.Frame(grid))
		if hasStats {
			fmt.Fprintf(out, "generation %-6d alive %-6d\n", tp.Generation(), tp.Alive())
		}
		if cfg.Turns > 0 && turns >= cfg.Turns {
			return nil
		}
	}
}

// RunHeadless advances the simulation without drawing frames. With a turn
// limit it shows a progress bar; without one it spins until the population
// settles or the user interrupts.
func RunHeadless(sim core.Sim, cfg *Config, logger *slog.Logger) error {
	tp, ok := sim.(twoPhase)
	if cfg.Turns <= 0 && !ok {
		return fmt.Errorf("sim %q needs -turns to run headless", sim.Name())
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	defer signal.Stop(stop)

	start := time.Now()
	generations := 0
	tracker := settleTracker{}

	if cfg.Turns > 0 {
		bar := pb.StartNew(cfg.Turns)
		for i := 0; i < cfg.Turns; i++ {
			select {
			case <-stop:
				bar.Finish()
				return nil
			default:
			}
			settled := false
			if ok {
				settled = tracker.stepAndCheck(tp)
			} else {
				sim.Step()
			}
			generations++
			bar.Increment()
			if settled {
				break
			}
		}
		bar.Finish()
	} else {
		spinner := wow.New(os.Stderr, spin.Get(spin.Dots), " waiting for the culture to settle")
		spinner.Start()
		for {
			interrupted := false
			select {
			case <-stop:
				interrupted = true
			default:
			}
			if interrupted {
				spinner.PersistWith(spin.Spinner{Frames: []string{"!"}}, " interrupted")
				break
			}
			generations++
			if tracker.stepAndCheck(tp) {
				spinner.PersistWith(spin.Spinner{Frames: []string{"*"}}, " settled")
				break
			}
		}
	}

	if logger != nil {
		attrs := []any{
			slog.Int("generations", generations),
			slog.Duration("elapsed", time.Since(start)),
		}
		if ok {
			attrs = append(attrs, slog.Int("alive", tp.Alive()))
		}
		logger.Info("run complete", attrs...)
	}
	return nil
}

// settleStreak is how many consecutive unchanged generations count as settled.
const settleStreak = 10

// settleTracker runs one two-phase generation at a time and watches for the
// population to stop changing. The staged lookahead count, the committed
// count, and the previous generation's count must all agree for a full streak.
type settleTracker struct {
	lastAlive int
	streak    int
	primed    bool
}

func (t *settleTracker) stepAndCheck(tp twoPhase) bool {
	tp.StagePhase()
	pending := tp.PendingAlive()
	tp.CommitPhase()
	alive := tp.Alive()

	if t.primed && pending == alive && alive == t.lastAlive {
		t.streak++
	} else {
		t.streak = 0
	}
	t.lastAlive = alive
	t.primed = true
	return alive == 0 || t.streak >= settleStreak
}
