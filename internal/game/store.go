package game

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const episodeSchema = `
CREATE TABLE IF NOT EXISTS episodes (
	episode_id    TEXT PRIMARY KEY,
	seed          INTEGER NOT NULL,
	ticks         INTEGER NOT NULL,
	outcome       TEXT NOT NULL,
	first_spot    INTEGER NOT NULL,
	first_alerted INTEGER NOT NULL,
	state_changes INTEGER NOT NULL,
	shots_fired   INTEGER NOT NULL,
	player_kills  INTEGER NOT NULL,
	guards_lost   INTEGER NOT NULL,
	created_at    TEXT NOT NULL
);
`

// EpisodeStore persists finished episode reports to SQLite so batch runs can
// be compared across tuning changes.
type EpisodeStore struct {
	db *sql.DB
}

// OpenEpisodeStore opens (or creates) the database and runs migrations.
func OpenEpisodeStore(dbPath string) (*EpisodeStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(episodeSchema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &EpisodeStore{db: db}, nil
}

// Close closes the underlying database connection.
func (s *EpisodeStore) Close() error {
	return s.db.Close()
}

// Save inserts one episode report.
func (s *EpisodeStore) Save(r EpisodeReport) error {
	_, err := s.db.Exec(`
		INSERT INTO episodes
		(episode_id, seed, ticks, outcome, first_spot, first_alerted,
		 state_changes, shots_fired, player_kills, guards_lost, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.EpisodeID, r.Seed, r.Ticks, r.Outcome.String(),
		r.FirstSpotTick, r.FirstAlertedTick, r.StateChanges,
		r.ShotsFired, r.PlayerKills, r.GuardsLost,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save episode %s: %w", r.EpisodeID, err)
	}
	return nil
}

// Recent returns up to n most recent episode reports, newest first.
func (s *EpisodeStore) Recent(n int) ([]EpisodeReport, error) {
	rows, err := s.db.Query(`
		SELECT episode_id, seed, ticks, outcome, first_spot, first_alerted,
		       state_changes, shots_fired, player_kills, guards_lost
		FROM episodes ORDER BY created_at DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query episodes: %w", err)
	}
	defer rows.Close()

	var out []EpisodeReport
	for rows.Next() {
		var r EpisodeReport
		var outcome string
		if err := rows.Scan(&r.EpisodeID, &r.Seed, &r.Ticks, &outcome,
			&r.FirstSpotTick, &r.FirstAlertedTick, &r.StateChanges,
			&r.ShotsFired, &r.PlayerKills, &r.GuardsLost); err != nil {
			return nil, fmt.Errorf("scan episode: %w", err)
		}
		r.Outcome = parseOutcome(outcome)
		out = append(out, r)
	}
	return out, rows.Err()
}

func parseOutcome(s string) Outcome {
	switch s {
	case "player_caught":
		return OutcomePlayerCaught
	case "guards_eliminated":
		return OutcomeGuardsEliminated
	case "step_limit":
		return OutcomeStepLimit
	default:
		return OutcomeRunning
	}
}
