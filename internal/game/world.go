package game

import (
	"github.com/google/uuid"
)

// playerAttackRange is how close the player must be for a takedown.
const playerAttackRange = 30.0

// Outcome is the terminal status of an episode.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomePlayerCaught
	OutcomeGuardsEliminated
	OutcomeStepLimit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomePlayerCaught:
		return "player_caught"
	case OutcomeGuardsEliminated:
		return "guards_eliminated"
	case OutcomeStepLimit:
		return "step_limit"
	default:
		return "unknown"
	}
}

// World owns one episode: the obstacle set, the path grid derived from it,
// all guards, the player, and in-flight bullets. Ticks are single-threaded
// and deterministic; obstacles never change inside an episode.
type World struct {
	Cfg       *Config
	EpisodeID string
	Obstacles []Obstacle
	Grid      *PathGrid
	Guards    []*Guard
	Player    *Player
	Bullets   []*Bullet

	Tick    int
	Outcome Outcome

	Log *SimLog

	// Previous-tick states, kept so the log can report transitions.
	prevStates []GuardState
}

// NewApartmentWorld builds a world on the built-in apartment map.
func NewApartmentWorld(cfg *Config) *World {
	w := &World{Cfg: cfg, Log: NewSimLog(false)}
	w.Reset()
	return w
}

// NewWorldFromMap builds a world from a parsed map file. Guards get the map's
// per-guard vision tuning where present, the config defaults otherwise.
func NewWorldFromMap(cfg *Config, m *MapFile) *World {
	worldCfg := *cfg
	worldCfg.WorldWidth = m.Width
	worldCfg.WorldHeight = m.Height

	w := &World{
		Cfg:       &worldCfg,
		EpisodeID: uuid.NewString(),
		Obstacles: m.Obstacles(),
		Log:       NewSimLog(false),
	}
	w.Grid = NewPathGrid(worldCfg.TileSize, worldCfg.GridCols(), worldCfg.GridRows(),
		w.Obstacles, worldCfg.AgentRadius, worldCfg.WalkBuffer)

	px, py := m.PlayerStart[0], m.PlayerStart[1]
	w.Player = NewPlayer(px, py, &worldCfg)

	for i, mg := range m.Guards {
		g := NewGuard(i, mg.Pos[0], mg.Pos[1], mg.Patrol, &worldCfg, w.Grid)
		if mg.FOVDeg > 0 {
			g.Vision.FOVDeg = mg.FOVDeg
		}
		if mg.Range > 0 {
			g.Vision.Range = mg.Range
		}
		if mg.DetectionTime > 0 {
			g.Awareness.Detection.Threshold = mg.DetectionTime
		}
		w.Guards = append(w.Guards, g)
	}
	w.prevStates = make([]GuardState, len(w.Guards))
	return w
}

// Reset starts a fresh episode on the apartment layout. This is the only
// point where the obstacle set may change.
func (w *World) Reset() {
	cfg := w.Cfg
	w.EpisodeID = uuid.NewString()
	w.Tick = 0
	w.Outcome = OutcomeRunning
	w.Bullets = nil

	w.Obstacles = ApartmentWalls(cfg.WorldWidth, cfg.WorldHeight)
	w.Grid = NewPathGrid(cfg.TileSize, cfg.GridCols(), cfg.GridRows(),
		w.Obstacles, cfg.AgentRadius, cfg.WalkBuffer)

	px, py := ApartmentPlayerSpawn(cfg.WorldWidth, cfg.WorldHeight)
	w.Player = NewPlayer(px, py, cfg)

	w.Guards = nil
	for i, spawn := range ApartmentGuardSpawns(cfg.WorldWidth, cfg.WorldHeight, cfg.NumGuards) {
		route := ApartmentPatrolRoute(cfg.WorldWidth, cfg.WorldHeight, i)
		w.Guards = append(w.Guards, NewGuard(i, spawn[0], spawn[1], route, cfg, w.Grid))
	}
	w.prevStates = make([]GuardState, len(w.Guards))
}

// Step advances the world one tick. (dx,dy) in {-1,0,1} is the player's move
// intent; attack requests a takedown of the nearest in-range guard. The
// player's position is snapshotted before any guard updates, so every guard
// perceives the same target this tick.
func (w *World) Step(dx, dy float64, attack bool) Outcome {
	if w.Outcome != OutcomeRunning {
		return w.Outcome
	}
	w.Tick++
	dt := 1.0 / 60.0

	w.Player.Move(dx, dy, w.Obstacles, w.Cfg.WorldWidth, w.Cfg.WorldHeight)

	if attack {
		w.tryTakedown()
	}

	// Snapshot once; guards must not observe mid-tick movement.
	px, py := w.Player.X, w.Player.Y
	alive := w.Player.Alive

	for i, g := range w.Guards {
		w.prevStates[i] = g.Awareness.State
		if b := g.Update(dt, px, py, alive, w.Obstacles); b != nil {
			w.Bullets = append(w.Bullets, b)
			w.Log.Add(w.Tick, g.Label, "combat", "shot_fired", "", 0)
		}
		if g.Awareness.State != w.prevStates[i] {
			w.Log.Add(w.Tick, g.Label, "awareness", "state_change",
				w.prevStates[i].String()+" → "+g.Awareness.State.String(),
				g.Awareness.Detection.Value)
		}
		w.Log.AddVerbose(w.Tick, g.Label, "detection", "level", "", g.Awareness.Detection.Value)
	}

	w.updateBullets()
	w.resolveOutcome()
	return w.Outcome
}

// tryTakedown kills the closest living guard within attack range.
func (w *World) tryTakedown() {
	var best *Guard
	bestDist := playerAttackRange
	for _, g := range w.Guards {
		if !g.Alive {
			continue
		}
		d := Dist(w.Player.X, w.Player.Y, g.X, g.Y)
		if d < bestDist {
			bestDist = d
			best = g
		}
	}
	if best != nil {
		best.Kill()
		w.Player.Kills++
		w.Log.Add(w.Tick, best.Label, "combat", "guard_down", "", 0)
	}
}

func (w *World) updateBullets() {
	kept := w.Bullets[:0]
	for _, b := range w.Bullets {
		spent := b.Update(w.Obstacles, w.Cfg.WorldWidth, w.Cfg.WorldHeight)
		if !spent && b.Hits(w.Player.X, w.Player.Y, w.Player.Radius) {
			w.Player.Kill()
			w.Log.Add(w.Tick, "--", "combat", "player_hit", "", 0)
			continue
		}
		if !spent {
			kept = append(kept, b)
		}
	}
	w.Bullets = kept
}

func (w *World) resolveOutcome() {
	if !w.Player.Alive {
		w.Outcome = OutcomePlayerCaught
		return
	}
	anyAlive := len(w.Guards) == 0
	for _, g := range w.Guards {
		if g.Alive {
			anyAlive = true
			break
		}
	}
	if !anyAlive {
		w.Outcome = OutcomeGuardsEliminated
		return
	}
	if w.Tick >= w.Cfg.MaxStepsPerEpisode {
		w.Outcome = OutcomeStepLimit
	}
}

// AlertedCount returns how many guards are currently alerted.
func (w *World) AlertedCount() int {
	n := 0
	for _, g := range w.Guards {
		if g.Alive && g.Awareness.State == StateAlerted {
			n++
		}
	}
	return n
}
