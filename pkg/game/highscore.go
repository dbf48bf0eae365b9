package game

import (
	"database/sql"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// HighScoreTable keeps the best score per mode, backed by a small sqlite
// file. Storage failures never reach the player: a table that failed to open
// simply serves zeros and skips writes.
type HighScoreTable struct {
	db   *sql.DB
	best map[string]int
}

var modeKeys = []string{"classic", "time_attack", "survival"}

// OpenHighScores loads the table from path, degrading to all-zero scores on
// any failure. The returned table is always usable.
func OpenHighScores(path string) *HighScoreTable {
	t := &HighScoreTable{best: make(map[string]int, len(modeKeys))}
	for _, k := range modeKeys {
		t.best[k] = 0
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.WithError(err).Warn("high scores: cannot create data directory")
			return t
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.WithError(err).Warn("high scores: cannot open database")
		return t
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS high_scores (
		mode TEXT PRIMARY KEY,
		best INTEGER NOT NULL DEFAULT 0
	)`); err != nil {
		log.WithError(err).Warn("high scores: cannot create table")
		db.Close()
		return t
	}

	t.db = db
	t.load()
	return t
}

func (t *HighScoreTable) load() {
	rows, err := t.db.Query(`SELECT mode, best FROM high_scores`)
	if err != nil {
		log.WithError(err).Warn("high scores: read failed, using defaults")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var mode string
		var best int
		if err := rows.Scan(&mode, &best); err != nil {
			log.WithError(err).Warn("high scores: bad row skipped")
			continue
		}
		if _, known := t.best[mode]; known {
			t.best[mode] = best
		}
	}
	if err := rows.Err(); err != nil {
		log.WithError(err).Warn("high scores: read interrupted, partial defaults")
	}
}

// Best returns the stored best score for a playable mode
func (t *HighScoreTable) Best(mode Mode) int {
	return t.best[mode.Key()]
}

// All returns a copy of the whole table for display
func (t *HighScoreTable) All() map[string]int {
	out := make(map[string]int, len(t.best))
	for k, v := range t.best {
		out[k] = v
	}
	return out
}

// Submit records a finished session's score. The table is updated and
// persisted only when the score strictly exceeds the stored best.
// Returns true for a new best.
func (t *HighScoreTable) Submit(mode Mode, score int) bool {
	key := mode.Key()
	if key == "" || score <= t.best[key] {
		return false
	}
	t.best[key] = score

	if t.db != nil {
		if _, err := t.db.Exec(`INSERT INTO high_scores (mode, best) VALUES (?, ?)
			ON CONFLICT(mode) DO UPDATE SET best = excluded.best`, key, score); err != nil {
			log.WithError(err).Warn("high scores: write skipped")
		}
	}
	return true
}

// Close releases the underlying database, if any
func (t *HighScoreTable) Close() {
	if t.db != nil {
		t.db.Close()
	}
}
