//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"toruslife/internal/app"
	"toruslife/internal/lifefile"
	"toruslife/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	settings, err := cfg.Settings(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}

	logger := log.Default()
	store := lifefile.NewStore(settings.DataDir)
	display := app.NewDisplay()
	session := life.NewWithConfig(settings,
		life.WithDisplay(display),
		life.WithStore(store),
		life.WithLogger(logger),
	)
	if n, err := session.ImportAll(); err != nil {
		log.Printf("importing patterns: %v", err)
	} else {
		log.Printf("imported %d patterns from %s", n, store.Dir(lifefile.KindConfigs))
	}

	watcher, err := store.WatchConfigs()
	if err != nil {
		log.Printf("pattern watcher disabled: %v", err)
	}

	game := app.New(session, display, watcher, cfg.HUDWidth, settings.Seed, logger)
	defer game.Close()

	size := session.Size()
	ebiten.SetWindowTitle("toruslife")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, max(size.H*cfg.Scale, 480))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
