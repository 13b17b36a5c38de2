// Package registry keeps a SQLite ledger of solver runs so past
// workspaces and outcomes stay discoverable.
package registry

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    scenario TEXT NOT NULL,
    workspace TEXT NOT NULL,
    executable TEXT NOT NULL,
    success INTEGER NOT NULL,
    message TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_runs_scenario ON runs(scenario);
`

// Run is one recorded solver invocation.
type Run struct {
	ID         string
	Scenario   string
	Workspace  string
	Executable string
	Success    bool
	Message    string
	CreatedAt  time.Time
}

// DB wraps the ledger database.
type DB struct {
	db *sql.DB
}

// Open opens (and if needed initializes) the ledger at fp.
func Open(fp string) (*DB, error) {
	db, err := sql.Open("sqlite", fp)
	if err != nil {
		return nil, fmt.Errorf("registry: open: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("registry: init schema: %w", err)
	}
	return &DB{db: db}, nil
}

func (d *DB) Close() error { return d.db.Close() }

// Record inserts a run and returns its generated id.
func (d *DB) Record(r Run) (string, error) {
	id := uuid.NewString()
	_, err := d.db.Exec(
		`INSERT INTO runs (id, scenario, workspace, executable, success, message) VALUES (?, ?, ?, ?, ?, ?)`,
		id, r.Scenario, r.Workspace, r.Executable, boolInt(r.Success), r.Message,
	)
	if err != nil {
		return "", fmt.Errorf("registry: record run: %w", err)
	}
	return id, nil
}

// List returns runs newest first, optionally filtered by scenario.
func (d *DB) List(scenario string) ([]Run, error) {
	q := `SELECT id, scenario, workspace, executable, success, message, created_at FROM runs`
	var args []any
	if scenario != "" {
		q += ` WHERE scenario = ?`
		args = append(args, scenario)
	}
	q += ` ORDER BY created_at DESC, id`

	rows, err := d.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("registry: list runs: %w", err)
	}
	defer rows.Close()

	var o []Run
	for rows.Next() {
		var r Run
		var success int
		var created string
		if err := rows.Scan(&r.ID, &r.Scenario, &r.Workspace, &r.Executable, &success, &r.Message, &created); err != nil {
			return nil, fmt.Errorf("registry: scan run: %w", err)
		}
		r.Success = success != 0
		r.CreatedAt = parseTimestamp(created)
		o = append(o, r)
	}
	return o, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func parseTimestamp(s string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t
		}
	}
	return time.Time{}
}
