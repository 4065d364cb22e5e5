package game

import "math"

// Player is the circle agent the guards hunt. Movement is 8-directional with
// wall sliding: a blocked diagonal falls back to its free axis.
type Player struct {
	X, Y   float64
	Radius float64
	Speed  float64
	Alive  bool
	Kills  int
}

// NewPlayer creates a live player at (x,y).
func NewPlayer(x, y float64, cfg *Config) *Player {
	return &Player{
		X:      x,
		Y:      y,
		Radius: cfg.AgentRadius,
		Speed:  cfg.PlayerSpeed,
		Alive:  true,
	}
}

// Move attempts a step of (dx,dy) in {-1,0,1} scaled by the player's speed.
// Returns true when any movement happened.
func (p *Player) Move(dx, dy float64, obstacles []Obstacle, worldW, worldH float64) bool {
	if !p.Alive || (dx == 0 && dy == 0) {
		return false
	}

	nx := clamp(p.X+dx*p.Speed, p.Radius, worldW-p.Radius)
	ny := clamp(p.Y+dy*p.Speed, p.Radius, worldH-p.Radius)

	if !circleHitsAny(nx, ny, p.Radius, obstacles) {
		p.X, p.Y = nx, ny
		return true
	}

	// Slide: try each axis alone.
	if dx != 0 && !circleHitsAny(nx, p.Y, p.Radius, obstacles) {
		p.X = nx
		return true
	}
	if dy != 0 && !circleHitsAny(p.X, ny, p.Radius, obstacles) {
		p.Y = ny
		return true
	}
	return false
}

// InAttackRange reports whether the guard is close enough for a takedown.
func (p *Player) InAttackRange(g *Guard, attackRange float64) bool {
	if !p.Alive || !g.Alive {
		return false
	}
	return Dist(p.X, p.Y, g.X, g.Y) < attackRange
}

// Kill marks the player dead.
func (p *Player) Kill() {
	p.Alive = false
}

// circleHitsAny reports whether a circle at (x,y) overlaps any obstacle,
// using the closest-point-on-rect test.
func circleHitsAny(x, y, radius float64, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		cx := math.Max(o.MinX(), math.Min(x, o.MaxX()))
		cy := math.Max(o.MinY(), math.Min(y, o.MaxY()))
		if Dist(x, y, cx, cy) < radius {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
