package game

import "testing"

func TestApartment_SpawnsClearWalls(t *testing.T) {
	cfg := DefaultConfig()
	walls := ApartmentWalls(cfg.WorldWidth, cfg.WorldHeight)

	px, py := ApartmentPlayerSpawn(cfg.WorldWidth, cfg.WorldHeight)
	if circleHitsAny(px, py, cfg.AgentRadius, walls) {
		t.Fatal("player spawn overlaps a wall")
	}
	for i, s := range ApartmentGuardSpawns(cfg.WorldWidth, cfg.WorldHeight, 7) {
		if circleHitsAny(s[0], s[1], cfg.AgentRadius, walls) {
			t.Fatalf("guard spawn %d at (%.0f,%.0f) overlaps a wall", i, s[0], s[1])
		}
	}
}

func TestApartment_PatrolWaypointsStandable(t *testing.T) {
	// A guard must be able to stand on every waypoint, or the route stalls
	// one arrival short forever.
	cfg := DefaultConfig()
	walls := ApartmentWalls(cfg.WorldWidth, cfg.WorldHeight)

	for i := 0; i < 7; i++ {
		for j, wp := range ApartmentPatrolRoute(cfg.WorldWidth, cfg.WorldHeight, i) {
			if circleHitsAny(wp[0], wp[1], cfg.AgentRadius, walls) {
				t.Fatalf("route %d waypoint %d at (%.0f,%.0f) overlaps a wall", i, j, wp[0], wp[1])
			}
		}
	}
}

func TestApartment_SpawnCountClamped(t *testing.T) {
	spawns := ApartmentGuardSpawns(1280, 720, 100)
	if len(spawns) != 7 {
		t.Fatalf("spawn list should clamp to 7, got %d", len(spawns))
	}
	if n := len(ApartmentGuardSpawns(1280, 720, 3)); n != 3 {
		t.Fatalf("want 3 spawns, got %d", n)
	}
}

func TestApartment_FallbackRouteIsSquare(t *testing.T) {
	route := ApartmentPatrolRoute(1280, 720, 20)
	if len(route) != 4 {
		t.Fatalf("fallback route should be a 4-corner square, got %d waypoints", len(route))
	}
}
