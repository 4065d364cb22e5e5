package game

import (
	"strings"
	"testing"
)

func TestSummarizeRuns(t *testing.T) {
	reports := []EpisodeReport{
		{Seed: 1, Ticks: 400, Outcome: OutcomePlayerCaught, FirstSpotTick: 40},
		{Seed: 2, Ticks: 2000, Outcome: OutcomeStepLimit, FirstSpotTick: -1},
		{Seed: 3, Ticks: 600, Outcome: OutcomePlayerCaught, FirstSpotTick: 80},
	}
	out := SummarizeRuns(reports)

	if !strings.Contains(out, "3 runs") {
		t.Fatalf("missing run count:\n%s", out)
	}
	if !strings.Contains(out, "player_caught:") || !strings.Contains(out, "2") {
		t.Fatalf("missing outcome tally:\n%s", out)
	}
	if !strings.Contains(out, "avg ticks: 1000") {
		t.Fatalf("wrong average:\n%s", out)
	}
	if !strings.Contains(out, "spotted in 2/3 runs, avg first-spot tick 60") {
		t.Fatalf("wrong spot summary:\n%s", out)
	}
}

func TestSummarizeRuns_Empty(t *testing.T) {
	if out := SummarizeRuns(nil); out != "(no runs)\n" {
		t.Fatalf("empty batch summary wrong: %q", out)
	}
}

func TestEpisodeReport_String(t *testing.T) {
	r := EpisodeReport{Seed: 9, Ticks: 123, Outcome: OutcomeStepLimit,
		FirstSpotTick: -1, FirstAlertedTick: -1}
	s := r.String()
	for _, want := range []string{"seed=9", "ticks=123", "step_limit", "firstSpot=-1"} {
		if !strings.Contains(s, want) {
			t.Fatalf("report line missing %q: %s", want, s)
		}
	}
}
