package game

import "math"

// Bullet is a projectile fired by an alerted guard. It dies on obstacle
// contact, world exit, or lifetime expiry.
type Bullet struct {
	X, Y     float64
	vx, vy   float64
	Radius   float64
	Active   bool
	ShooterID int

	age      int
	lifetime int
}

// NewBullet creates a bullet at (x,y) travelling along angleDeg.
func NewBullet(x, y, angleDeg float64, shooterID int, cfg *Config) *Bullet {
	rad := angleDeg * math.Pi / 180
	return &Bullet{
		X:         x,
		Y:         y,
		vx:        math.Cos(rad) * cfg.BulletSpeed,
		vy:        math.Sin(rad) * cfg.BulletSpeed,
		Radius:    cfg.BulletRadius,
		Active:    true,
		ShooterID: shooterID,
		lifetime:  cfg.BulletLifetime,
	}
}

// Update advances the bullet one tick. Returns true when the bullet is spent
// and should be removed.
func (b *Bullet) Update(obstacles []Obstacle, worldW, worldH float64) bool {
	if !b.Active {
		return true
	}
	b.age++
	if b.age >= b.lifetime {
		b.Active = false
		return true
	}

	nx := b.X + b.vx
	ny := b.Y + b.vy

	if nx < 0 || nx > worldW || ny < 0 || ny > worldH {
		b.Active = false
		return true
	}
	for _, o := range obstacles {
		// Closest point on the rect to the bullet center.
		cx := math.Max(o.MinX(), math.Min(nx, o.MaxX()))
		cy := math.Max(o.MinY(), math.Min(ny, o.MaxY()))
		if Dist(nx, ny, cx, cy) < b.Radius {
			b.Active = false
			return true
		}
	}

	b.X, b.Y = nx, ny
	return false
}

// Hits reports whether the bullet overlaps a circle target.
func (b *Bullet) Hits(tx, ty, tRadius float64) bool {
	if !b.Active {
		return false
	}
	return Dist(b.X, b.Y, tx, ty) < b.Radius+tRadius
}
