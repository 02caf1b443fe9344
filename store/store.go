// SPDX-License-Identifier: MIT
// Package: symgraph/store
//
// store.go — SQLite-backed run history (modernc.org/sqlite, pure Go).

package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/symgraph/core"
	"github.com/katalvlaran/symgraph/verify"
)

// ErrNotFound is returned by Get for an unknown run ID.
var ErrNotFound = errors.New("store: run not found")

// Run is one recorded verification.
type Run struct {
	ID         string
	Profile    string
	CreatedAt  time.Time
	Passed     bool
	EdgeDigest string
	Report     *verify.Report
}

// Drift summarises the edge digests recorded for one profile.
type Drift struct {
	Profile string
	Runs    int
	// Digests lists distinct digests, oldest first.
	Digests []string
}

// Drifted reports whether runs of the profile produced different graphs.
func (d Drift) Drifted() bool { return len(d.Digests) > 1 }

// Store wraps the database handle.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path and migrates it.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	s := &Store{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migrate: %w", err)
	}

	return s, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		profile TEXT NOT NULL,
		passed INTEGER NOT NULL,
		vertex_count INTEGER NOT NULL,
		edge_count INTEGER NOT NULL,
		edge_digest TEXT NOT NULL,
		report JSON NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_profile ON runs(profile);
	`
	_, err := s.db.Exec(schema)

	return err
}

// EdgeDigest hashes the vertex list and edge list of g in their stable order.
func EdgeDigest(g *core.Graph) string {
	h := sha256.New()
	for _, id := range g.Vertices() {
		fmt.Fprintf(h, "v %s\n", id)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(h, "e %s %s\n", e.From, e.To)
	}

	return hex.EncodeToString(h.Sum(nil))
}

// Record stores a report with the digest of the graph it was computed on
// and returns the new run ID.
func (s *Store) Record(ctx context.Context, rep *verify.Report, digest string) (string, error) {
	if rep == nil {
		return "", fmt.Errorf("store: Record: nil report")
	}
	data, err := json.Marshal(rep)
	if err != nil {
		return "", fmt.Errorf("store: marshal report: %w", err)
	}
	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, profile, passed, vertex_count, edge_count, edge_digest, report, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, rep.Profile, rep.Passed(), rep.VertexCount, rep.EdgeCount, digest, data, s.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return "", fmt.Errorf("store: insert run: %w", err)
	}

	return id, nil
}

const selectRun = `SELECT id, profile, passed, edge_digest, report, created_at FROM runs`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*Run, error) {
	var (
		r       Run
		data    []byte
		created string
	)
	if err := row.Scan(&r.ID, &r.Profile, &r.Passed, &r.EdgeDigest, &data, &created); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return nil, fmt.Errorf("store: run %s: created_at: %w", r.ID, err)
	}
	r.CreatedAt = t
	r.Report = &verify.Report{}
	if err := json.Unmarshal(data, r.Report); err != nil {
		return nil, fmt.Errorf("store: run %s: unmarshal report: %w", r.ID, err)
	}

	return &r, nil
}

// Get loads one run by ID.
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	r, err := scanRun(s.db.QueryRowContext(ctx, selectRun+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("store: get %s: %w", id, err)
	}

	return r, nil
}

// List returns up to limit runs, newest first. limit <= 0 means all.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, selectRun+` ORDER BY seq DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("store: list: %w", err)
		}
		out = append(out, *r)
	}

	return out, rows.Err()
}

// Drift collects the distinct edge digests recorded for profile.
func (s *Store) Drift(ctx context.Context, profile string) (Drift, error) {
	d := Drift{Profile: profile}
	rows, err := s.db.QueryContext(ctx, `SELECT edge_digest FROM runs WHERE profile = ? ORDER BY seq`, profile)
	if err != nil {
		return d, fmt.Errorf("store: drift: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	for rows.Next() {
		var digest string
		if err := rows.Scan(&digest); err != nil {
			return d, fmt.Errorf("store: drift: %w", err)
		}
		d.Runs++
		if _, ok := seen[digest]; !ok {
			seen[digest] = struct{}{}
			d.Digests = append(d.Digests, digest)
		}
	}

	return d, rows.Err()
}
