package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim  string
	Rule string

	Width  int
	Height int

	Scale int
	TPS   int
	Seed  int64
	Turns int

	Workers     int
	SpawnChance float64

	AliveColor string
	DeadColor  string
	OldColor   string
	ElderColor string

	OldAge   int
	ElderAge int

	Headless   bool
	ConfigFile string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:         "culture",
		Rule:        "conway",
		Width:       80,
		Height:      24,
		Scale:       8,
		TPS:         10,
		Seed:        42,
		Workers:     1,
		SpawnChance: 0.3,
		AliveColor:  "white",
		DeadColor:   "black",
		OldColor:    "cyan",
		ElderColor:  "magenta",
		OldAge:      5,
		ElderAge:    10,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule of existence (conway, vonneumann, aging)")
	fs.IntVar(&c.Width, "w", c.Width, "world width including the rim")
	fs.IntVar(&c.Height, "h", c.Height, "world height including the rim")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (windowed build)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for population reset")
	fs.IntVar(&c.Turns, "turns", c.Turns, "stop after this many generations (0 = unlimited)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "workers per simulation phase")
	fs.Float64Var(&c.SpawnChance, "spawn", c.SpawnChance, "chance an interior cell starts alive")
	fs.StringVar(&c.AliveColor, "alive-color", c.AliveColor, "color of living cells")
	fs.StringVar(&c.DeadColor, "dead-color", c.DeadColor, "color of dead cells")
	fs.StringVar(&c.OldColor, "old-color", c.OldColor, "color of old cells")
	fs.StringVar(&c.ElderColor, "elder-color", c.ElderColor, "color of elder cells")
	fs.IntVar(&c.OldAge, "old-age", c.OldAge, "age after which a cell counts as old")
	fs.IntVar(&c.ElderAge, "elder-age", c.ElderAge, "age after which a cell counts as elder")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "run without drawing frames")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "path to a YAML config file")
}

// ExplicitFlags collects the names of flags the user set on the command line.
func ExplicitFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// ToMap flattens the configuration into the factory key/value form.
func (c *Config) ToMap() map[string]string {
	return map[string]string{
		"w":            strconv.Itoa(c.Width),
		"h":            strconv.Itoa(c.Height),
		"seed":         strconv.FormatInt(c.Seed, 10),
		"spawn_chance": strconv.FormatFloat(c.SpawnChance, 'f', -1, 64),
		"workers":      strconv.Itoa(c.Workers),
		"rule":         c.Rule,
		"alive_color":  c.AliveColor,
		"dead_color":   c.DeadColor,
		"old_color":    c.OldColor,
		"elder_color":  c.ElderColor,
		"old_age":      strconv.Itoa(c.OldAge),
		"elder_age":    strconv.Itoa(c.ElderAge),
	}
}
