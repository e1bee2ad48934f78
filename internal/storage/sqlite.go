// Package storage keeps recorded runs in SQLite so they can be listed and
// played back. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/samber/lo"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrReplayNotFound is returned when a replay ID does not exist.
var ErrReplayNotFound = errors.New("storage: replay not found")

// Store manages the SQLite database connection for replays.
type Store struct {
	db *sql.DB
}

// Replay is one recorded run: enough to rebuild it tick by tick from the
// seed and the ticks on which gravity was flipped.
type Replay struct {
	ID        int64
	Pilot     string
	GameID    string
	Seed      int64
	Ticks     int   // Ticks survived
	Score     int   // Displayed score at death
	Flips     []int // Tick numbers (1-based) that carried a flip
	CreatedAt time.Time
}

// DefaultPath returns the replay database location under the XDG data dir.
func DefaultPath() (string, error) {
	p, err := xdg.DataFile("gravflip/replays.db")
	if err != nil {
		return "", fmt.Errorf("storage: cannot resolve data dir: %w", err)
	}
	return p, nil
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pilot TEXT NOT NULL,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			score INTEGER NOT NULL,
			flips TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_created ON replays(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveReplay stores a run and returns its ID.
func (s *Store) SaveReplay(r Replay) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO replays (pilot, game_id, seed, ticks, score, flips)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Pilot, r.GameID, r.Seed, r.Ticks, r.Score, encodeFlips(r.Flips),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Replays lists stored runs, newest first. A non-positive limit means 20.
func (s *Store) Replays(limit int) ([]Replay, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, pilot, game_id, seed, ticks, score, flips, created_at
		 FROM replays
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var out []Replay
	for rows.Next() {
		r, err := scanReplay(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// Replay loads one run by ID.
func (s *Store) Replay(id int64) (Replay, error) {
	row := s.db.QueryRow(
		`SELECT id, pilot, game_id, seed, ticks, score, flips, created_at
		 FROM replays WHERE id = ?`,
		id,
	)
	r, err := scanReplay(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Replay{}, fmt.Errorf("%w: %d", ErrReplayNotFound, id)
	}
	return r, err
}

// DeleteReplay removes a run. Deleting a missing ID returns ErrReplayNotFound.
func (s *Store) DeleteReplay(id int64) error {
	res, err := s.db.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrReplayNotFound, id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReplay(sc scanner) (Replay, error) {
	var (
		r         Replay
		flips     string
		createdAt any
	)
	err := sc.Scan(&r.ID, &r.Pilot, &r.GameID, &r.Seed, &r.Ticks, &r.Score, &flips, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Replay{}, err
	}
	if err != nil {
		return Replay{}, fmt.Errorf("storage: cannot scan replay: %w", err)
	}

	r.Flips, err = decodeFlips(flips)
	if err != nil {
		return Replay{}, fmt.Errorf("storage: replay %d: %w", r.ID, err)
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both driver-decoded times and raw SQLite datetime text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.DateTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func encodeFlips(flips []int) string {
	return strings.Join(lo.Map(flips, func(t int, _ int) string {
		return strconv.Itoa(t)
	}), ",")
}

func decodeFlips(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		t, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("bad flip tick %q: %w", p, err)
		}
		out = append(out, t)
	}
	return out, nil
}
