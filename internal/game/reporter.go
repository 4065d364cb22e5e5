package game

import (
	"fmt"
	"strings"
)

// EpisodeReport summarises one headless episode for the batch runner and the
// episode store.
type EpisodeReport struct {
	EpisodeID string
	Seed      int64
	Ticks     int
	Outcome   Outcome

	FirstSpotTick    int // first tick any guard left Patrol, -1 if never
	FirstAlertedTick int // first tick any guard reached Alerted, -1 if never
	StateChanges     int
	ShotsFired       int
	PlayerKills      int
	GuardsLost       int
}

// BuildEpisodeReport derives a report from a finished world and its log.
func BuildEpisodeReport(w *World, seed int64) EpisodeReport {
	r := EpisodeReport{
		EpisodeID:        w.EpisodeID,
		Seed:             seed,
		Ticks:            w.Tick,
		Outcome:          w.Outcome,
		FirstSpotTick:    -1,
		FirstAlertedTick: -1,
		PlayerKills:      w.Player.Kills,
	}
	for _, e := range w.Log.Filter("awareness", "state_change") {
		r.StateChanges++
		if r.FirstSpotTick < 0 {
			r.FirstSpotTick = e.Tick
		}
		if r.FirstAlertedTick < 0 && strings.HasSuffix(e.Value, "alerted") {
			r.FirstAlertedTick = e.Tick
		}
	}
	r.ShotsFired = w.Log.CountCategory("combat", "shot_fired")
	r.GuardsLost = w.Log.CountCategory("combat", "guard_down")
	return r
}

// String formats the report as one fixed-width summary line.
func (r EpisodeReport) String() string {
	return fmt.Sprintf("seed=%-6d ticks=%-5d outcome=%-18s firstSpot=%-5d firstAlert=%-5d transitions=%-3d shots=%-3d kills=%d",
		r.Seed, r.Ticks, r.Outcome, r.FirstSpotTick, r.FirstAlertedTick,
		r.StateChanges, r.ShotsFired, r.PlayerKills)
}

// SummarizeRuns aggregates a batch of episode reports into a text block.
func SummarizeRuns(reports []EpisodeReport) string {
	if len(reports) == 0 {
		return "(no runs)\n"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %d runs ---\n", len(reports))

	outcomes := map[Outcome]int{}
	totalTicks := 0
	spotted := 0
	sumFirstSpot := 0
	for _, r := range reports {
		outcomes[r.Outcome]++
		totalTicks += r.Ticks
		if r.FirstSpotTick >= 0 {
			spotted++
			sumFirstSpot += r.FirstSpotTick
		}
	}

	for _, o := range []Outcome{OutcomePlayerCaught, OutcomeGuardsEliminated, OutcomeStepLimit, OutcomeRunning} {
		if n := outcomes[o]; n > 0 {
			fmt.Fprintf(&sb, "%-18s %d\n", o.String()+":", n)
		}
	}
	fmt.Fprintf(&sb, "avg ticks: %.0f\n", float64(totalTicks)/float64(len(reports)))
	if spotted > 0 {
		fmt.Fprintf(&sb, "spotted in %d/%d runs, avg first-spot tick %.0f\n",
			spotted, len(reports), float64(sumFirstSpot)/float64(spotted))
	} else {
		sb.WriteString("player never spotted\n")
	}
	return sb.String()
}
