// Package trace implements an optional, SQLite-backed execution trace
// journal for fibers (spec §4.6 "tracing"). Tracing is off by default;
// a Fiber with TraceEnabled set has each step it takes recorded here so
// a later session can replay what happened without re-running the
// program. The schema is intentionally tiny: one append-only table,
// ordered by an autoincrement sequence number.
package trace

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Journal is a handle to a trace database. Safe for concurrent use by
// multiple fibers; each write is a single independent INSERT.
type Journal struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS steps (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	fiber_name TEXT NOT NULL,
	pc         INTEGER NOT NULL,
	opcode     TEXT NOT NULL,
	detail     TEXT NOT NULL DEFAULT ''
);
`

// Open creates or attaches to the trace database at path. Pass ":memory:"
// for an ephemeral, process-local journal.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("trace: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("trace: migrate schema: %w", err)
	}
	return &Journal{db: db}, nil
}

func (j *Journal) Close() error { return j.db.Close() }

// Record appends one step to the journal.
func (j *Journal) Record(fiberName string, pc int, opcode, detail string) error {
	_, err := j.db.Exec(
		`INSERT INTO steps (fiber_name, pc, opcode, detail) VALUES (?, ?, ?, ?)`,
		fiberName, pc, opcode, detail,
	)
	if err != nil {
		return fmt.Errorf("trace: record step: %w", err)
	}
	return nil
}

// Step is one recorded execution step, returned in recording order.
type Step struct {
	Seq       int64
	FiberName string
	PC        int
	Opcode    string
	Detail    string
}

// StepsFor returns every recorded step for the named fiber, oldest first.
func (j *Journal) StepsFor(fiberName string) ([]Step, error) {
	rows, err := j.db.Query(
		`SELECT seq, fiber_name, pc, opcode, detail FROM steps WHERE fiber_name = ? ORDER BY seq ASC`,
		fiberName,
	)
	if err != nil {
		return nil, fmt.Errorf("trace: query steps: %w", err)
	}
	defer rows.Close()

	var out []Step
	for rows.Next() {
		var s Step
		if err := rows.Scan(&s.Seq, &s.FiberName, &s.PC, &s.Opcode, &s.Detail); err != nil {
			return nil, fmt.Errorf("trace: scan step: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Clear removes every recorded step, e.g. between test runs.
func (j *Journal) Clear() error {
	if _, err := j.db.Exec(`DELETE FROM steps`); err != nil {
		return fmt.Errorf("trace: clear: %w", err)
	}
	return nil
}
