package game

import "github.com/google/uuid"

// Sim is a headless simulation harness used by tests, the batch runner, and
// the telemetry server. It mirrors World's tick loop but is built from
// options so scenarios stay readable.
type Sim struct {
	World *World
	Log   *SimLog

	// Scripted player intent, applied every tick until changed.
	moveX, moveY float64
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // world size, obstacles, config — applied first
	simOptAgent                      // guards and player — applied after the grid exists
)

// SimOption is a builder function applied to a Sim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*Sim)
}

// WithConfig replaces the default config.
func WithConfig(cfg *Config) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.World.Cfg = cfg
	}}
}

// WithWorldSize sets the playfield dimensions.
func WithWorldSize(w, h float64) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.World.Cfg.WorldWidth = w
		s.World.Cfg.WorldHeight = h
	}}
}

// WithObstacle adds a wall rectangle given by center and size.
func WithObstacle(x, y, w, h float64) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.World.Obstacles = append(s.World.Obstacles, Obstacle{X: x, Y: y, W: w, H: h})
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.World.Log = NewSimLog(v)
	}}
}

// WithGuard places a guard at (x,y) with an optional patrol route.
func WithGuard(x, y float64, route ...[2]float64) SimOption {
	return SimOption{simOptAgent, func(s *Sim) {
		id := len(s.World.Guards)
		g := NewGuard(id, x, y, route, s.World.Cfg, s.World.Grid)
		s.World.Guards = append(s.World.Guards, g)
	}}
}

// WithPlayerAt places the player.
func WithPlayerAt(x, y float64) SimOption {
	return SimOption{simOptAgent, func(s *Sim) {
		s.World.Player = NewPlayer(x, y, s.World.Cfg)
	}}
}

// NewSim constructs a harness in two ordered passes: infrastructure first,
// then the path grid, then agents.
func NewSim(opts ...SimOption) *Sim {
	s := &Sim{
		World: &World{
			Cfg:       DefaultConfig(),
			EpisodeID: uuid.NewString(),
			Log:       NewSimLog(false),
		},
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(s)
		}
	}
	cfg := s.World.Cfg
	s.World.Grid = NewPathGrid(cfg.TileSize, cfg.GridCols(), cfg.GridRows(),
		s.World.Obstacles, cfg.AgentRadius, cfg.WalkBuffer)
	for _, o := range opts {
		if o.kind == simOptAgent {
			o.fn(s)
		}
	}
	if s.World.Player == nil {
		s.World.Player = NewPlayer(cfg.WorldWidth/2, cfg.WorldHeight/2, cfg)
	}
	s.World.prevStates = make([]GuardState, len(s.World.Guards))
	s.Log = s.World.Log
	return s
}

// WrapWorld adapts an existing World to the Sim snapshot and run API.
func WrapWorld(w *World) *Sim {
	return &Sim{World: w, Log: w.Log}
}

// SetPlayerIntent scripts the player's per-tick movement direction.
func (s *Sim) SetPlayerIntent(dx, dy float64) {
	s.moveX, s.moveY = dx, dy
}

// MovePlayerTo teleports the player, bypassing collision. Test setup only.
func (s *Sim) MovePlayerTo(x, y float64) {
	s.World.Player.X = x
	s.World.Player.Y = y
}

// RunTicks advances the simulation n ticks.
func (s *Sim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		s.World.Step(s.moveX, s.moveY, false)
	}
}

// RunUntil advances the simulation up to maxTicks, stopping early when the
// predicate holds. Returns the tick at which it was satisfied, or -1.
func (s *Sim) RunUntil(predicate func(*Sim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		s.World.Step(s.moveX, s.moveY, false)
		if predicate(s) {
			return s.World.Tick
		}
	}
	return -1
}

// Guard returns guard i.
func (s *Sim) Guard(i int) *Guard {
	return s.World.Guards[i]
}

// GuardSnapshot is a lightweight copy of one guard's state at a tick.
type GuardSnapshot struct {
	ID        int        `json:"id"`
	Label     string     `json:"label"`
	X         float64    `json:"x"`
	Y         float64    `json:"y"`
	FacingDeg float64    `json:"facing_deg"`
	State     string     `json:"state"`
	Detection float64    `json:"detection"`
	Alive     bool       `json:"alive"`
	Path      [][2]float64 `json:"path,omitempty"`
}

// WorldSnapshot captures the full world state at one tick, in the shape the
// telemetry feed broadcasts.
type WorldSnapshot struct {
	EpisodeID string          `json:"episode_id"`
	Tick      int             `json:"tick"`
	Outcome   string          `json:"outcome"`
	PlayerX   float64         `json:"player_x"`
	PlayerY   float64         `json:"player_y"`
	PlayerOK  bool            `json:"player_alive"`
	Guards    []GuardSnapshot `json:"guards"`
	RayScan   []float64       `json:"ray_scan,omitempty"`
}

// Snapshot returns the current world state. includeRays adds the player's
// ray sensor sweep.
func (s *Sim) Snapshot(includeRays bool) WorldSnapshot {
	w := s.World
	snap := WorldSnapshot{
		EpisodeID: w.EpisodeID,
		Tick:      w.Tick,
		Outcome:   w.Outcome.String(),
		PlayerX:   w.Player.X,
		PlayerY:   w.Player.Y,
		PlayerOK:  w.Player.Alive,
	}
	for _, g := range w.Guards {
		snap.Guards = append(snap.Guards, GuardSnapshot{
			ID:        g.ID,
			Label:     g.Label,
			X:         g.X,
			Y:         g.Y,
			FacingDeg: g.Vision.FacingDeg,
			State:     g.Awareness.State.String(),
			Detection: g.Awareness.Detection.Value,
			Alive:     g.Alive,
			Path:      g.Path(),
		})
	}
	if includeRays {
		snap.RayScan = RayScan(w.Player.X, w.Player.Y, w.Cfg.NumRays, w.Cfg.RayMaxDistance, w.Obstacles)
	}
	return snap
}
