package main

import (
	"flag"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/Clarence1208/Hunter-AI-ssassin/internal/game"
)

// sim-server runs a continuous headless simulation and streams per-tick
// world snapshots over a websocket at /ws. Intended for external viewers
// and behaviour debugging.
func main() {
	var addr string
	var tps int
	var seed int64
	var configPath string

	flag.StringVar(&addr, "addr", ":8080", "listen address")
	flag.IntVar(&tps, "tps", 60, "simulation ticks per second")
	flag.Int64Var(&seed, "seed", 1, "player wander seed")
	flag.StringVar(&configPath, "config", "", "YAML tuning file")
	flag.Parse()

	cfg := game.DefaultConfig()
	if configPath != "" {
		loaded, err := game.LoadConfig(configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	hub := game.NewTelemetryHub(nil)
	http.HandleFunc("/ws", hub.Handle)

	go func() {
		log.Printf("telemetry on ws://%s/ws", addr)
		if err := http.ListenAndServe(addr, nil); err != nil {
			log.Fatal(err)
		}
	}()

	rng := rand.New(rand.NewSource(seed))
	world := game.NewApartmentWorld(cfg)
	sim := game.WrapWorld(world)

	var dx, dy float64
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()
	for range ticker.C {
		if rng.Float64() < 0.03 || (dx == 0 && dy == 0) {
			dx = float64(rng.Intn(3) - 1)
			dy = float64(rng.Intn(3) - 1)
		}
		world.Step(dx, dy, false)
		hub.Broadcast(sim.Snapshot(true))

		if world.Outcome != game.OutcomeRunning {
			log.Printf("episode %s finished after %d ticks: %s",
				world.EpisodeID, world.Tick, world.Outcome)
			world.Reset()
		}
	}
}
