package game

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/fsnotify/fsnotify"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game is the interactive ebiten front end over a World. The player moves
// with WASD/arrows, takes guards down with Space, and restarts with Enter
// after an episode ends.
type Game struct {
	world *World
	cfg   *Config

	// Don't run the simulation until the player's first input.
	started bool

	showPaths bool
	showRays  bool
	prevKeys  map[ebiten.Key]bool

	// Live config reload.
	configPath string
	watcher    *fsnotify.Watcher
	reload     chan string
}

// NewGame builds the interactive game on the apartment map. configPath may
// be empty; when set, the file is watched and tuning changes are applied
// without restarting.
func NewGame(cfg *Config, configPath string) *Game {
	g := &Game{
		world:      NewApartmentWorld(cfg),
		cfg:        cfg,
		configPath: configPath,
		prevKeys:   make(map[ebiten.Key]bool),
		reload:     make(chan string, 1),
	}
	if configPath != "" {
		g.startConfigWatch()
	}
	return g
}

// startConfigWatch watches the config file's directory and queues a reload
// on every write to the file. Watching the directory survives editors that
// replace the file on save.
func (g *Game) startConfigWatch() {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("config watch unavailable: %v", err)
		return
	}
	dir := filepath.Dir(g.configPath)
	if err := w.Add(dir); err != nil {
		log.Printf("config watch on %s failed: %v", dir, err)
		w.Close()
		return
	}
	g.watcher = w

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Name != g.configPath {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					select {
					case g.reload <- ev.Name:
					default:
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("config watch error: %v", err)
			}
		}
	}()
}

// applyPendingReload swaps in a freshly parsed config, if one is queued.
// Values the agents copied at spawn (vision cone, detection threshold) take
// effect on the next episode; everything read through the shared pointer
// applies immediately.
func (g *Game) applyPendingReload() {
	select {
	case path := <-g.reload:
		cfg, err := LoadConfig(path)
		if err != nil {
			log.Printf("config reload rejected: %v", err)
			return
		}
		*g.cfg = *cfg
		log.Printf("config reloaded from %s", path)
	default:
	}
}

func (g *Game) keyPressed(k ebiten.Key) bool {
	now := ebiten.IsKeyPressed(k)
	was := g.prevKeys[k]
	g.prevKeys[k] = now
	return now && !was
}

// Update advances the game one tick.
func (g *Game) Update() error {
	g.applyPendingReload()

	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx = -1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx = 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy = -1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy = 1
	}
	attack := g.keyPressed(ebiten.KeySpace)

	if g.keyPressed(ebiten.KeyP) {
		g.showPaths = !g.showPaths
	}
	if g.keyPressed(ebiten.KeyO) {
		g.showRays = !g.showRays
	}
	if g.keyPressed(ebiten.KeyC) {
		g.copyDebugReport()
	}
	if g.keyPressed(ebiten.KeyEnter) && g.world.Outcome != OutcomeRunning {
		g.world.Reset()
		g.started = false
		return nil
	}

	if !g.started {
		if dx == 0 && dy == 0 && !attack {
			return nil
		}
		g.started = true
	}
	g.world.Step(dx, dy, attack)
	return nil
}

// copyDebugReport puts a text summary of the current episode on the system
// clipboard.
func (g *Game) copyDebugReport() {
	w := g.world
	report := fmt.Sprintf("--- episode %s @ T=%d ---\n", w.EpisodeID, w.Tick)
	report += fmt.Sprintf("player (%.0f,%.0f) alive=%v kills=%d\n",
		w.Player.X, w.Player.Y, w.Player.Alive, w.Player.Kills)
	for _, gd := range w.Guards {
		report += fmt.Sprintf("%s (%.0f,%.0f) %s detection=%.2f alive=%v\n",
			gd.Label, gd.X, gd.Y, gd.Awareness.State, gd.Awareness.Detection.Value, gd.Alive)
	}
	report += w.Log.Format()
	if err := clipboard.WriteAll(report); err != nil {
		log.Printf("clipboard copy failed: %v", err)
	}
}

// Layout reports the fixed window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.WorldWidth), int(g.cfg.WorldHeight)
}
