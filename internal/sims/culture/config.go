package culture

import (
	"strconv"

	"cellculture/pkg/cell"
)

// Config controls the culture simulation dimensions, seeding and palette.
// Width and Height include the rim ring.
type Config struct {
	Width  int
	Height int

	Seed int64

	// SpawnChance is the probability that an interior cell starts alive.
	SpawnChance float64

	// Workers bounds the goroutines used per phase; 1 means serial.
	Workers int

	Rule string

	Colors cell.StateColors
	Tiers  cell.AgeTiers
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       80,
		Height:      24,
		Seed:        1337,
		SpawnChance: 0.3,
		Workers:     1,
		Rule:        "conway",
		Colors:      cell.DefaultStateColors(),
		Tiers:       cell.DefaultAgeTiers(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["spawn_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.SpawnChance = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		if _, err := RuleByName(v); err == nil {
			c.Rule = v
		}
	}
	if v, ok := cfg["alive_color"]; ok {
		if parsed, err := cell.ParseColor(v); err == nil {
			c.Colors.Living = parsed
		}
	}
	if v, ok := cfg["dead_color"]; ok {
		if parsed, err := cell.ParseColor(v); err == nil {
			c.Colors.Dead = parsed
		}
	}
	if v, ok := cfg["old_color"]; ok {
		if parsed, err := cell.ParseColor(v); err == nil {
			c.Colors.Old = parsed
		}
	}
	if v, ok := cfg["elder_color"]; ok {
		if parsed, err := cell.ParseColor(v); err == nil {
			c.Colors.Elder = parsed
		}
	}
	if v, ok := cfg["old_age"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Tiers.Old = parsed
		}
	}
	if v, ok := cfg["elder_age"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Tiers.Elder = parsed
		}
	}
	if c.Tiers.Elder < c.Tiers.Old {
		c.Tiers.Elder = c.Tiers.Old
	}
	return c
}
