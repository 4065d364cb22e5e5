package game

import "testing"

func TestWorld_ResetFreshEpisode(t *testing.T) {
	cfg := DefaultConfig()
	w := NewApartmentWorld(cfg)

	firstID := w.EpisodeID
	if firstID == "" {
		t.Fatal("episode id should be assigned")
	}
	if len(w.Guards) != cfg.NumGuards {
		t.Fatalf("want %d guards, got %d", cfg.NumGuards, len(w.Guards))
	}
	if w.Outcome != OutcomeRunning {
		t.Fatalf("fresh episode should be running, got %v", w.Outcome)
	}

	w.Step(1, 0, false)
	w.Reset()
	if w.EpisodeID == firstID {
		t.Fatal("reset should mint a new episode id")
	}
	if w.Tick != 0 {
		t.Fatalf("reset should zero the tick counter, got %d", w.Tick)
	}
}

func TestWorld_SpawnsAreWalkable(t *testing.T) {
	cfg := DefaultConfig()
	w := NewApartmentWorld(cfg)

	if circleHitsAny(w.Player.X, w.Player.Y, w.Player.Radius, w.Obstacles) {
		t.Fatal("player spawn overlaps a wall")
	}
	for _, g := range w.Guards {
		if circleHitsAny(g.X, g.Y, g.Radius, w.Obstacles) {
			t.Fatalf("guard %s spawn overlaps a wall at (%.0f,%.0f)", g.Label, g.X, g.Y)
		}
		cx, cy := w.Grid.WorldToCell(g.X, g.Y)
		if !w.Grid.IsWalkable(cx, cy) {
			t.Fatalf("guard %s spawn cell is unwalkable", g.Label)
		}
	}
}

func TestWorld_TakedownKillsNearestGuard(t *testing.T) {
	s := NewSim(
		WithWorldSize(800, 600),
		WithGuard(120, 100),
		WithGuard(400, 400),
		WithPlayerAt(100, 100),
	)
	w := s.World

	w.Step(0, 0, true)
	if w.Guards[0].Alive {
		t.Fatal("in-range guard should be down")
	}
	if !w.Guards[1].Alive {
		t.Fatal("distant guard should be untouched")
	}
	if w.Player.Kills != 1 {
		t.Fatalf("player kills = %d, want 1", w.Player.Kills)
	}
	if !w.Log.HasEntry("combat", "guard_down", "") {
		t.Fatal("takedown should be logged")
	}
}

func TestWorld_AllGuardsDownEndsEpisode(t *testing.T) {
	s := NewSim(
		WithWorldSize(800, 600),
		WithGuard(120, 100),
		WithPlayerAt(100, 100),
	)
	out := s.World.Step(0, 0, true)
	if out != OutcomeGuardsEliminated {
		t.Fatalf("outcome = %v, want guards_eliminated", out)
	}

	// A finished world refuses further steps.
	tick := s.World.Tick
	s.World.Step(1, 0, false)
	if s.World.Tick != tick {
		t.Fatal("finished episode must not advance")
	}
}

func TestWorld_StepLimitEndsEpisode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxStepsPerEpisode = 10
	s := NewSim(
		WithConfig(cfg),
		WithWorldSize(800, 600),
		WithGuard(700, 500),
		WithPlayerAt(100, 100),
	)
	s.RunTicks(20)
	if s.World.Outcome != OutcomeStepLimit {
		t.Fatalf("outcome = %v, want step_limit", s.World.Outcome)
	}
	if s.World.Tick != 10 {
		t.Fatalf("world ran past the step limit: tick %d", s.World.Tick)
	}
}

func TestWorld_BulletHitEndsEpisode(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSim(
		WithConfig(cfg),
		WithWorldSize(800, 600),
		WithGuard(100, 100),
		WithPlayerAt(250, 100),
	)
	s.Guard(0).Vision.FacingDeg = 0

	done := s.RunUntil(func(s *Sim) bool {
		return s.World.Outcome == OutcomePlayerCaught
	}, 600)
	if done < 0 {
		t.Fatalf("guard never brought the player down; log:\n%s", s.Log.Format())
	}
	if s.World.Player.Alive {
		t.Fatal("caught player should be dead")
	}
	if !s.Log.HasEntry("combat", "player_hit", "") {
		t.Fatal("hit should be logged")
	}
}

func TestWorld_StateChangesLogged(t *testing.T) {
	s := NewSim(
		WithWorldSize(800, 600),
		WithGuard(100, 100),
		WithPlayerAt(200, 100),
	)
	s.Guard(0).Vision.FacingDeg = 0

	s.RunUntil(func(s *Sim) bool {
		return s.Guard(0).Awareness.State == StateAlerted
	}, 120)
	if !s.Log.HasEntry("awareness", "state_change", "suspicious") {
		t.Fatalf("missing suspicious transition; log:\n%s", s.Log.Format())
	}
	if !s.Log.HasEntry("awareness", "state_change", "alerted") {
		t.Fatalf("missing alerted transition; log:\n%s", s.Log.Format())
	}
}
