package game

import (
	"testing"
)

const testDt = 1.0 / 60.0

func newTestGuard(x, y float64, route [][2]float64, obstacles []Obstacle) (*Guard, *Config) {
	cfg := DefaultConfig()
	grid := NewPathGrid(cfg.TileSize, cfg.GridCols(), cfg.GridRows(),
		obstacles, cfg.AgentRadius, cfg.WalkBuffer)
	return NewGuard(0, x, y, route, cfg, grid), cfg
}

func TestNewGuard_FacesFirstWaypoint(t *testing.T) {
	g, _ := newTestGuard(100, 100, [][2]float64{{100, 300}}, nil)
	if g.Vision.FacingDeg != 90 {
		t.Fatalf("guard should face its first waypoint (90°), got %.1f", g.Vision.FacingDeg)
	}
}

func TestGuard_PatrolReachesWaypoint(t *testing.T) {
	route := [][2]float64{{300, 100}, {300, 300}}
	g, cfg := newTestGuard(100, 100, route, nil)

	// No player in play: guard stays in Patrol and walks the route.
	for i := 0; i < 400; i++ {
		g.Update(testDt, 0, 0, false, nil)
	}
	if Dist(g.X, g.Y, 300, 100) >= cfg.ArriveThreshold+float64(cfg.TileSize) {
		t.Fatalf("guard should have reached the first waypoint area, at (%.0f,%.0f)", g.X, g.Y)
	}

	// After the arrival pause it heads for the second waypoint.
	for i := 0; i < 400; i++ {
		g.Update(testDt, 0, 0, false, nil)
	}
	if g.Y < 150 {
		t.Fatalf("guard should be en route to the second waypoint, at (%.0f,%.0f)", g.X, g.Y)
	}
}

func TestGuard_EmptyRouteScansInPlace(t *testing.T) {
	g, _ := newTestGuard(200, 200, nil, nil)
	startFacing := g.Vision.FacingDeg
	x, y := g.X, g.Y

	for i := 0; i < 30; i++ {
		g.Update(testDt, 0, 0, false, nil)
	}
	if g.X != x || g.Y != y {
		t.Fatal("sentry with no route must not move")
	}
	if g.Vision.FacingDeg == startFacing {
		t.Fatal("sentry should sweep its facing while idle")
	}
}

func TestGuard_BecomesAlertedAndCloses(t *testing.T) {
	g, _ := newTestGuard(100, 100, nil, nil)
	g.Vision.FacingDeg = 0
	px, py := 250.0, 100.0

	for i := 0; i < 30; i++ {
		g.Update(testDt, px, py, true, nil)
	}
	if g.Awareness.State != StateAlerted {
		t.Fatalf("30 ticks of clear sight should alert the guard, state %v", g.Awareness.State)
	}

	before := Dist(g.X, g.Y, px, py)
	for i := 0; i < 60; i++ {
		g.Update(testDt, px, py, true, nil)
	}
	after := Dist(g.X, g.Y, px, py)
	if after >= before {
		t.Fatalf("alerted guard should close on the target: %.1f -> %.1f", before, after)
	}
}

func TestGuard_FiresAfterSightDelay(t *testing.T) {
	g, cfg := newTestGuard(100, 100, nil, nil)
	g.Vision.FacingDeg = 0
	px, py := 250.0, 100.0

	firstShot := -1
	shots := 0
	for i := 1; i <= 180; i++ {
		if b := g.Update(testDt, px, py, true, nil); b != nil {
			shots++
			if firstShot < 0 {
				firstShot = i
			}
			if b.ShooterID != g.ID {
				t.Fatalf("bullet shooter id %d, want %d", b.ShooterID, g.ID)
			}
		}
	}
	if shots == 0 {
		t.Fatal("guard with sustained sight should have fired")
	}
	if firstShot <= cfg.ShootDelay {
		t.Fatalf("first shot at tick %d, before the %d-tick sight delay elapsed", firstShot, cfg.ShootDelay)
	}
	// 180 ticks minus detection ramp and sight delay leaves room for at most
	// a few cooldown windows.
	if shots > 1+(180/cfg.ShootCooldown) {
		t.Fatalf("cooldown not enforced: %d shots in 180 ticks", shots)
	}
}

func TestGuard_SuspiciousInvestigates(t *testing.T) {
	g, _ := newTestGuard(100, 100, nil, nil)
	g.Vision.FacingDeg = 0
	px, py := 250.0, 100.0

	// A glimpse: long enough for suspicion, not for full detection.
	for i := 0; i < 5; i++ {
		g.Update(testDt, px, py, true, nil)
	}
	if g.Awareness.State != StateSuspicious {
		t.Fatalf("glimpse should raise suspicion, state %v", g.Awareness.State)
	}

	// Target gone; the guard walks to where it saw something.
	for i := 0; i < 90; i++ {
		g.Update(testDt, 0, 0, false, nil)
	}
	if g.X <= 120 {
		t.Fatalf("suspicious guard should advance toward the sighting, x=%.1f", g.X)
	}
}

func TestGuard_DeadGuardInert(t *testing.T) {
	g, _ := newTestGuard(100, 100, nil, nil)
	g.Kill()

	if g.CanSeePlayer(120, 100, nil) {
		t.Fatal("dead guard must not see")
	}
	x, y := g.X, g.Y
	if b := g.Update(testDt, 120, 100, true, nil); b != nil {
		t.Fatal("dead guard must not fire")
	}
	if g.X != x || g.Y != y {
		t.Fatal("dead guard must not move")
	}
}

func TestGuard_WallBlocksDirectApproach(t *testing.T) {
	// Wall between guard and a close target: the direct step is refused
	// rather than clipping into the wall.
	wall := Obstacle{X: 130, Y: 100, W: 10, H: 200}
	g, _ := newTestGuard(100, 100, nil, []Obstacle{wall})
	g.Awareness.State = StateAlerted
	g.Awareness.Detection.Value = 1.0

	for i := 0; i < 30; i++ {
		g.Update(testDt, 135, 100, false, []Obstacle{wall})
	}
	if g.X+g.Radius > wall.MinX()+1 {
		t.Fatalf("guard clipped into the wall, x=%.1f", g.X)
	}
}

func TestGuard_AdvanceAlongPathArrives(t *testing.T) {
	g, cfg := newTestGuard(60, 60, nil, nil)
	path := g.grid.FindPath(60, 60, 460, 60, cfg.SnapSearchRadius)
	if path == nil {
		t.Fatal("expected a path on an open grid")
	}
	g.path = path
	g.pathIndex = 0

	arrived := false
	for i := 0; i < 1000; i++ {
		if g.AdvanceAlongPath(2.0) {
			arrived = true
			break
		}
	}
	if !arrived {
		t.Fatal("guard never finished its path")
	}
	last := path[len(path)-1]
	if Dist(g.X, g.Y, last[0], last[1]) > cfg.ArriveThreshold {
		t.Fatalf("arrival reported %.1f units from the final waypoint", Dist(g.X, g.Y, last[0], last[1]))
	}
}
