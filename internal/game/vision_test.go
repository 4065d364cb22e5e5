package game

import (
	"math"
	"testing"
)

func TestCanSee_InConeNoObstacles(t *testing.T) {
	v := NewVisionState(0, 60, 100)
	if !v.CanSee(0, 0, 50, 10, nil) {
		t.Fatal("target at (50,10) should be visible to observer facing 0 with 60 degree fov")
	}
}

func TestCanSee_OutsideFOV(t *testing.T) {
	v := NewVisionState(0, 60, 100)
	obstacles := []Obstacle{{X: 25, Y: 40, W: 10, H: 10}}
	// Outside the cone: obstacles must not matter.
	if v.CanSee(0, 0, 50, 80, nil) {
		t.Fatal("target at (50,80) is outside a 60 degree cone")
	}
	if v.CanSee(0, 0, 50, 80, obstacles) {
		t.Fatal("cone verdict should not depend on obstacles")
	}
}

func TestCanSee_InConeButOccluded(t *testing.T) {
	v := NewVisionState(0, 60, 100)
	obstacles := []Obstacle{{X: 25, Y: 5, W: 10, H: 30}}
	if v.CanSee(0, 0, 50, 10, obstacles) {
		t.Fatal("wall between observer and target should block sight")
	}
}

func TestCanSee_BeyondRange(t *testing.T) {
	v := NewVisionState(0, 60, 100)
	if v.CanSee(0, 0, 150, 0, nil) {
		t.Fatal("target beyond range should not be visible")
	}
}

func TestTurnToward_SnapsWhenClose(t *testing.T) {
	v := NewVisionState(10, 60, 100)
	v.TurnToward(12, 6)
	if v.FacingDeg != 12 {
		t.Fatalf("expected facing to snap to 12, got %.4f", v.FacingDeg)
	}
}

func TestTurnToward_RateLimited(t *testing.T) {
	v := NewVisionState(0, 60, 100)
	v.TurnToward(90, 6)
	if v.FacingDeg != 6 {
		t.Fatalf("expected facing 6 after one rate-limited turn, got %.4f", v.FacingDeg)
	}
}

func TestTurnToward_TakesShortestArc(t *testing.T) {
	v := NewVisionState(350, 60, 100)
	v.TurnToward(10, 6)
	// +20 is shorter than -340, so the facing should move up through 356.
	if math.Abs(v.FacingDeg-356) > 1e-9 {
		t.Fatalf("expected facing 356, got %.4f", v.FacingDeg)
	}
}

func TestRayScan_LengthAndBounds(t *testing.T) {
	obstacles := []Obstacle{{X: 100, Y: 0, W: 20, H: 20}}
	dists := RayScan(0, 0, 16, 300, obstacles)
	if len(dists) != 16 {
		t.Fatalf("expected 16 rays, got %d", len(dists))
	}
	for i, d := range dists {
		if d < 0 || d > 300 {
			t.Fatalf("ray %d distance %.2f out of [0,300]", i, d)
		}
	}
	// Ray 0 points along +X straight at the obstacle.
	if math.Abs(dists[0]-90) > 1e-6 {
		t.Fatalf("ray 0 should stop at the obstacle edge (90), got %.4f", dists[0])
	}
	// Ray 8 points along -X into open space.
	if dists[8] != 300 {
		t.Fatalf("ray 8 should reach max distance, got %.4f", dists[8])
	}
}
