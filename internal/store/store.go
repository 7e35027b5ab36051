// Package store handles SQLite persistence of spin history.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/tuispin/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for spin results.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS spins (
			id INTEGER PRIMARY KEY,
			spun_at INTEGER NOT NULL,
			winner TEXT NOT NULL,
			winner_index INTEGER NOT NULL,
			entrants INTEGER NOT NULL,
			rotation REAL NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_spins_spun_at ON spins(spun_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertSpin stores a completed spin. Times are kept as unix nanoseconds so
// ordering by spun_at is chronological whatever the recording zone.
func (s *Store) InsertSpin(ctx context.Context, res model.SpinResult) (int64, error) {
	out, err := s.db.ExecContext(ctx,
		`INSERT INTO spins (spun_at, winner, winner_index, entrants, rotation, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		res.EndedAt.UnixNano(),
		res.Winner,
		res.Index,
		res.Entrants,
		res.Rotation,
		res.EndedAt.Sub(res.StartedAt).Milliseconds(),
	)
	if err != nil {
		return 0, err
	}
	return out.LastInsertId()
}

// ListSpins returns stored spins oldest first, filtered by cfg.Since.
func (s *Store) ListSpins(ctx context.Context, cfg model.HistoryConfig) ([]model.SpinRecord, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Since != nil {
		clauses = append(clauses, "spun_at >= ?")
		args = append(args, cfg.Since.UnixNano())
	}
	query := fmt.Sprintf(`SELECT id, spun_at, winner, winner_index, entrants, rotation, duration_ms
		FROM spins
		WHERE %s
		ORDER BY spun_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var spins []model.SpinRecord
	for rows.Next() {
		var rec model.SpinRecord
		var spunAt int64
		if err := rows.Scan(&rec.ID, &spunAt, &rec.Winner, &rec.WinnerIndex, &rec.Entrants, &rec.Rotation, &rec.DurationMs); err != nil {
			return nil, err
		}
		rec.SpunAt = time.Unix(0, spunAt)
		spins = append(spins, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return spins, nil
}

// Summary returns the spin count and the most recent winner.
func (s *Store) Summary(ctx context.Context) (model.HistorySummary, error) {
	var summary model.HistorySummary
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM spins`).Scan(&summary.Spins); err != nil {
		return model.HistorySummary{}, err
	}
	if summary.Spins == 0 {
		return summary, nil
	}
	err := s.db.QueryRowContext(ctx,
		`SELECT winner FROM spins ORDER BY spun_at DESC, id DESC LIMIT 1`).Scan(&summary.LastWinner)
	if err != nil {
		return model.HistorySummary{}, err
	}
	summary.HasLast = true
	return summary, nil
}
