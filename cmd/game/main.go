package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/thaumafunge/internal/game"
	"github.com/Garsondee/thaumafunge/internal/tuning"
)

func main() {
	var tuningPath string
	flag.StringVar(&tuningPath, "tuning", "", "tuning YAML (default: built-in world)")
	flag.Parse()

	cfg := tuning.Default()
	if tuningPath != "" {
		var err error
		if cfg, err = tuning.Load(tuningPath); err != nil {
			log.Fatal(err)
		}
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
