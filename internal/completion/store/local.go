package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const localSchema = `
CREATE TABLE IF NOT EXISTS completion (
	task_id    TEXT PRIMARY KEY,
	completed  INTEGER NOT NULL,
	updated_at TEXT NOT NULL
)`

// LocalStore caches completion flags in a SQLite database so toggles
// survive restarts even when the durable record store is unreachable.
type LocalStore struct {
	db *sql.DB
}

func NewLocalStore(db *sql.DB) (*LocalStore, error) {
	if db == nil {
		return nil, errors.New("store: nil db")
	}
	if _, err := db.Exec(localSchema); err != nil {
		return nil, fmt.Errorf("create completion table: %w", err)
	}
	return &LocalStore{db: db}, nil
}

func OpenLocalStore(path string) (*LocalStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	s, err := NewLocalStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *LocalStore) Close() error {
	return s.db.Close()
}

// Set records the flag for a task, last writer wins.
func (s *LocalStore) Set(ctx context.Context, taskID string, completed bool) error {
	flag := 0
	if completed {
		flag = 1
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO completion (task_id, completed, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(task_id) DO UPDATE SET completed = excluded.completed, updated_at = excluded.updated_at`,
		taskID, flag, time.Now().UTC().Format(time.RFC3339Nano),
	)
	return err
}

// Get returns the cached flag for a task. The second return reports
// whether the task has an entry at all.
func (s *LocalStore) Get(ctx context.Context, taskID string) (bool, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT completed FROM completion WHERE task_id = ?`, taskID)
	var flag int
	if err := row.Scan(&flag); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, false, nil
		}
		return false, false, err
	}
	return flag == 1, true, nil
}

// Snapshot returns every cached flag keyed by task ID.
func (s *LocalStore) Snapshot(ctx context.Context) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT task_id, completed FROM completion`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var id string
		var flag int
		if err := rows.Scan(&id, &flag); err != nil {
			return nil, err
		}
		out[id] = flag == 1
	}
	return out, rows.Err()
}
