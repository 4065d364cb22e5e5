package game

import (
	"fmt"
	"math"
)

// Guard is an autonomous patrol agent. All mutable per-tick state (timers,
// detection, current path, waypoint cursor) lives on this one aggregate.
type Guard struct {
	ID    int
	Label string // e.g. "G0"

	X, Y   float64
	Radius float64
	Alive  bool

	Vision    VisionState
	Awareness Awareness

	// Patrol route: cyclic waypoint list with a pause on arrival.
	PatrolRoute  [][2]float64
	patrolIndex  int
	patrolPause  int

	// Current path and its cursor. Replaced wholesale on each replan; the
	// cursor resets with it.
	path        [][2]float64
	pathIndex   int
	pathGoalX   float64
	pathGoalY   float64
	hasPathGoal bool
	replanTicks int

	// Weapon timers.
	shootCooldown int
	shootDelay    int

	cfg  *Config
	grid *PathGrid
}

// NewGuard creates a guard at (x,y) with the given patrol route. A nil or
// empty route produces a stationary sentry.
func NewGuard(id int, x, y float64, route [][2]float64, cfg *Config, grid *PathGrid) *Guard {
	facing := 0.0
	if len(route) > 0 {
		facing = AngleTo(x, y, route[0][0], route[0][1])
	}
	return &Guard{
		ID:          id,
		Label:       fmt.Sprintf("G%d", id),
		X:           x,
		Y:           y,
		Radius:      cfg.AgentRadius,
		Alive:       true,
		Vision:      NewVisionState(facing, cfg.VisionFOV, cfg.VisionRange),
		Awareness:   NewAwareness(cfg),
		PatrolRoute: route,
		cfg:         cfg,
		grid:        grid,
	}
}

// CanSeePlayer runs this guard's visibility query against the target point.
func (g *Guard) CanSeePlayer(px, py float64, obstacles []Obstacle) bool {
	if !g.Alive {
		return false
	}
	return g.Vision.CanSee(g.X, g.Y, px, py, obstacles)
}

// Update runs one tick of the guard's sense-think-act loop against a player
// position snapshotted at the start of the tick. Returns a bullet when the
// guard fires this tick, else nil.
func (g *Guard) Update(dt float64, playerX, playerY float64, playerAlive bool, obstacles []Obstacle) *Bullet {
	if !g.Alive {
		return nil
	}
	if g.shootCooldown > 0 {
		g.shootCooldown--
	}

	canSee := playerAlive && g.CanSeePlayer(playerX, playerY, obstacles)
	state := g.Awareness.Update(dt, canSee, playerX, playerY, g.X, g.Y)

	var bullet *Bullet
	if state == StateAlerted && canSee {
		bullet = g.updateWeapon(playerX, playerY)
	} else {
		g.shootDelay = 0
	}

	switch state {
	case StatePatrol:
		g.patrol(obstacles)
	case StateSuspicious, StateSearching:
		if tx, ty, ok := g.Awareness.TargetPosition(); ok {
			g.pursue(tx, ty, g.cfg.GuardSpeed, obstacles)
		} else {
			g.holdAndScan()
		}
	case StateAlerted:
		// Live position every tick, never the cached sighting.
		g.pursue(playerX, playerY, g.cfg.GuardChaseSpeed, obstacles)
	}
	return bullet
}

// updateWeapon handles the sight-delay and cooldown gates; fires when both
// have elapsed.
func (g *Guard) updateWeapon(playerX, playerY float64) *Bullet {
	if g.shootDelay < g.cfg.ShootDelay {
		g.shootDelay++
		return nil
	}
	if g.shootCooldown > 0 {
		return nil
	}
	g.shootCooldown = g.cfg.ShootCooldown
	angle := AngleTo(g.X, g.Y, playerX, playerY)
	return NewBullet(g.X, g.Y, angle, g.ID, g.cfg)
}

// patrol walks the cyclic waypoint route, pausing on arrival.
func (g *Guard) patrol(obstacles []Obstacle) {
	if len(g.PatrolRoute) == 0 {
		g.holdAndScan()
		return
	}
	if g.patrolPause > 0 {
		g.patrolPause--
		return
	}

	wp := g.PatrolRoute[g.patrolIndex]
	if Dist(g.X, g.Y, wp[0], wp[1]) < g.cfg.ArriveThreshold {
		g.patrolIndex = (g.patrolIndex + 1) % len(g.PatrolRoute)
		g.patrolPause = g.cfg.PatrolPauseTicks
		g.clearPath()
		return
	}
	g.pursue(wp[0], wp[1], g.cfg.GuardSpeed, obstacles)
}

// holdAndScan keeps the guard in place, sweeping its facing slowly so the
// cone still covers the surroundings.
func (g *Guard) holdAndScan() {
	g.Vision.FacingDeg = NormalizeAngle(g.Vision.FacingDeg + g.cfg.TurnRate/4)
}

// pursue navigates toward (tx,ty), replanning when there is no path, the
// goal has drifted beyond ReplanDistance, or ReplanInterval ticks have
// passed. A failed plan leaves the guard holding position until the next
// replan window.
func (g *Guard) pursue(tx, ty, speed float64, obstacles []Obstacle) {
	// Paths end at cell centers; inside the final tile walk straight at the
	// target instead of replanning forever.
	if Dist(g.X, g.Y, tx, ty) <= float64(g.cfg.TileSize) {
		g.clearPath()
		g.directApproach(tx, ty, speed, obstacles)
		return
	}

	g.replanTicks++

	needsPlan := g.path == nil || g.pathIndex >= len(g.path)
	if !needsPlan && g.hasPathGoal && Dist(tx, ty, g.pathGoalX, g.pathGoalY) > g.cfg.ReplanDistance {
		needsPlan = true
	}
	if g.replanTicks >= g.cfg.ReplanInterval {
		needsPlan = true
	}

	if needsPlan {
		g.replanTicks = 0
		g.path = g.grid.FindPath(g.X, g.Y, tx, ty, g.cfg.SnapSearchRadius)
		g.pathIndex = 0
		if g.path == nil {
			g.hasPathGoal = false
			return
		}
		g.pathGoalX, g.pathGoalY = tx, ty
		g.hasPathGoal = true
	}

	g.AdvanceAlongPath(speed)
}

// directApproach steps straight toward (tx,ty), stopping at walls rather
// than entering them.
func (g *Guard) directApproach(tx, ty, speed float64, obstacles []Obstacle) {
	dist := Dist(g.X, g.Y, tx, ty)
	if dist < g.cfg.ArriveThreshold {
		return
	}
	g.Vision.TurnToward(AngleTo(g.X, g.Y, tx, ty), g.cfg.TurnRate)

	step := speed
	if dist < step {
		step = dist
	}
	nx := g.X + (tx-g.X)/dist*step
	ny := g.Y + (ty-g.Y)/dist*step
	if !circleHitsAny(nx, ny, g.Radius, obstacles) {
		g.X, g.Y = nx, ny
	}
}

// AdvanceAlongPath moves the guard along its current path by speed units,
// advancing the waypoint cursor inside the arrival threshold and turning the
// facing along the direction of travel. Returns true once the final waypoint
// is reached.
func (g *Guard) AdvanceAlongPath(speed float64) bool {
	if g.path == nil || g.pathIndex >= len(g.path) {
		return g.path != nil && g.pathIndex >= len(g.path)
	}

	wp := g.path[g.pathIndex]
	dx := wp[0] - g.X
	dy := wp[1] - g.Y
	dist := math.Sqrt(dx*dx + dy*dy)

	if dist < g.cfg.ArriveThreshold {
		g.pathIndex++
		return g.pathIndex >= len(g.path)
	}

	g.Vision.TurnToward(AngleTo(g.X, g.Y, wp[0], wp[1]), g.cfg.TurnRate)

	if dist <= speed {
		g.X, g.Y = wp[0], wp[1]
		g.pathIndex++
	} else {
		g.X += dx / dist * speed
		g.Y += dy / dist * speed
	}
	return g.pathIndex >= len(g.path)
}

// Path returns the current waypoint list (shared slice, do not mutate).
func (g *Guard) Path() [][2]float64 { return g.path }

// PathCursor returns the index of the waypoint currently steered toward.
func (g *Guard) PathCursor() int { return g.pathIndex }

func (g *Guard) clearPath() {
	g.path = nil
	g.pathIndex = 0
	g.hasPathGoal = false
}

// Kill marks the guard dead; dead guards neither see nor move.
func (g *Guard) Kill() {
	g.Alive = false
}
