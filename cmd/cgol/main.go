//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"cgol/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	configPath := flag.String("config", "", "optional JSON config file")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	game, err := app.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowSize(
		cfg.Cols()*cfg.CellSize*cfg.WindowScale,
		cfg.Rows()*cfg.CellSize*cfg.WindowScale,
	)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
