package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileOptions mirrors Config in YAML form. Pointer fields distinguish absent
// keys from zero values.
type fileOptions struct {
	Sim         *string  `yaml:"sim"`
	Rule        *string  `yaml:"rule"`
	Width       *int     `yaml:"width"`
	Height      *int     `yaml:"height"`
	Scale       *int     `yaml:"scale"`
	TPS         *int     `yaml:"tps"`
	Seed        *int64   `yaml:"seed"`
	Turns       *int     `yaml:"turns"`
	Workers     *int     `yaml:"workers"`
	SpawnChance *float64 `yaml:"spawn-chance"`
	AliveColor  *string  `yaml:"alive-color"`
	DeadColor   *string  `yaml:"dead-color"`
	OldColor    *string  `yaml:"old-color"`
	ElderColor  *string  `yaml:"elder-color"`
	OldAge      *int     `yaml:"old-age"`
	ElderAge    *int     `yaml:"elder-age"`
}

// ApplyFile overlays YAML options onto the config. Options whose flag was set
// explicitly on the command line are skipped, so flags win over the file.
func (c *Config) ApplyFile(path string, explicit map[string]bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var opts fileOptions
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if explicit == nil {
		explicit = map[string]bool{}
	}

	setString := func(name string, dst *string, src *string) {
		if src != nil && !explicit[name] {
			*dst = *src
		}
	}
	setInt := func(name string, dst *int, src *int) {
		if src != nil && !explicit[name] {
			*dst = *src
		}
	}

	setString("sim", &c.Sim, opts.Sim)
	setString("rule", &c.Rule, opts.Rule)
	setInt("w", &c.Width, opts.Width)
	setInt("h", &c.Height, opts.Height)
	setInt("scale", &c.Scale, opts.Scale)
	setInt("tps", &c.TPS, opts.TPS)
	if opts.Seed != nil && !explicit["seed"] {
		c.Seed = *opts.Seed
	}
	setInt("turns", &c.Turns, opts.Turns)
	setInt("workers", &c.Workers, opts.Workers)
	if opts.SpawnChance != nil && !explicit["spawn"] {
		c.SpawnChance = *opts.SpawnChance
	}
	setString("alive-color", &c.AliveColor, opts.AliveColor)
	setString("dead-color", &c.DeadColor, opts.DeadColor)
	setString("old-color", &c.OldColor, opts.OldColor)
	setString("elder-color", &c.ElderColor, opts.ElderColor)
	setInt("old-age", &c.OldAge, opts.OldAge)
	setInt("elder-age", &c.ElderAge, opts.ElderAge)
	return nil
}
