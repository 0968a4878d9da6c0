//go:build !ebiten

package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"cellculture/internal/app"
	"cellculture/internal/core"
	_ "cellculture/internal/sims/culture"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.ConfigFile != "" {
		if err := cfg.ApplyFile(cfg.ConfigFile, app.ExplicitFlags(flag.CommandLine)); err != nil {
			log.Fatal(err)
		}
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.ToMap())
	sim.Reset(cfg.Seed)

	if cfg.Headless {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		if err := app.RunHeadless(sim, cfg, logger); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := app.RunTerminal(sim, cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
