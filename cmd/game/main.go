package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Clarence1208/Hunter-AI-ssassin/internal/game"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "YAML tuning file (watched for live reload)")
	flag.Parse()

	cfg := game.DefaultConfig()
	if configPath != "" {
		loaded, err := game.LoadConfig(configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	ebiten.SetWindowTitle("Hunter AI Assassin")
	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	if err := ebiten.RunGame(game.NewGame(cfg, configPath)); err != nil {
		log.Fatal(err)
	}
}
