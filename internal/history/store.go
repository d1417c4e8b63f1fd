// Package history records the outcome of `aoc run` invocations in a SQLite
// database so earlier runs can be listed and compared.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/harrison/aoc/internal/harness"
)

//go:embed schema.sql
var schemaSQL string

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

const defaultListLimit = 20

var (
	// ErrRunNotFound is returned by GetRun when no run matches the id.
	ErrRunNotFound = errors.New("run not found")
	// ErrAmbiguousRun is returned by GetRun when an id prefix matches several runs.
	ErrAmbiguousRun = errors.New("run id prefix is ambiguous")
)

// CaseRecord is the stored form of one reported case.
type CaseRecord struct {
	Index    int
	Part     harness.Part
	Example  bool
	Expected string // empty for unchecked cases
	Actual   string
	Status   string
	Duration time.Duration
}

// Run is one day run by the driver.
type Run struct {
	ID        string
	Year      int
	Day       int
	StartedAt time.Time
	Duration  time.Duration
	Filter    harness.Filter
	Selected  int
	Passed    int
	Failed    int
	Info      int
	OK        bool
	// Aborted is set when the entrypoint returned false without reporting a
	// summary: the solution panicked or the input was rejected.
	Aborted bool
	Cases   []CaseRecord
}

// Name returns "<year>-<dd>".
func (r *Run) Name() string {
	return fmt.Sprintf("%d-%02d", r.Year, r.Day)
}

// NewRun starts a run record with a fresh id.
func NewRun(year, day int, filter harness.Filter, startedAt time.Time) *Run {
	return &Run{
		ID:        uuid.NewString(),
		Year:      year,
		Day:       day,
		StartedAt: startedAt,
		Filter:    filter,
	}
}

// Finish fills in the outcome from the results an entrypoint reported.
// summarized tells whether the runner reached its summary line.
func (r *Run) Finish(results []harness.CaseResult, ok, summarized bool, duration time.Duration) {
	r.Duration = duration
	r.OK = ok
	r.Aborted = !ok && !summarized
	r.Selected, r.Passed, r.Failed, r.Info = 0, 0, 0, 0
	r.Cases = r.Cases[:0]

	for _, res := range results {
		r.Selected++
		switch res.Status {
		case harness.StatusPass:
			r.Passed++
		case harness.StatusFail:
			r.Failed++
		default:
			r.Info++
		}

		rec := CaseRecord{
			Index:    res.Index,
			Part:     res.Case.Part,
			Example:  res.Case.Input.IsExample(),
			Actual:   res.Actual.String(),
			Status:   res.Status.String(),
			Duration: res.Duration,
		}
		if res.Case.Expected != nil {
			rec.Expected = res.Case.Expected.String()
		}
		r.Cases = append(r.Cases, rec)
	}
}

// Store persists runs in SQLite.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (creating if needed) the database at dbPath. ":memory:" gives
// a private in-memory database.
func NewStore(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if dbPath == ":memory:" {
		// every pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if err := execWithRetry(db, pragma, 5, 10*time.Millisecond); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if err := execWithRetry(db, schemaSQL, 5, 10*time.Millisecond); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// execWithRetry retries stmt with exponential backoff while the database is locked.
func execWithRetry(db *sql.DB, stmt string, maxRetries int, baseDelay time.Duration) error {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		_, err := db.Exec(stmt)
		if err == nil {
			return nil
		}
		if !strings.Contains(err.Error(), "database is locked") {
			return err
		}
		lastErr = err
		time.Sleep(baseDelay * time.Duration(1<<attempt))
	}
	return lastErr
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun stores run and its cases in a single transaction.
func (s *Store) RecordRun(ctx context.Context, run *Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `INSERT INTO runs
		(id, year, day, started_at, duration_ns, part_filter, case_filter, solutions_only, selected, passed, failed, info, ok, aborted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Year,
		run.Day,
		run.StartedAt.UTC().Format(timeLayout),
		int64(run.Duration),
		int(run.Filter.Part),
		int64(run.Filter.Case),
		run.Filter.SolutionsOnly,
		run.Selected,
		run.Passed,
		run.Failed,
		run.Info,
		run.OK,
		run.Aborted,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO case_results
		(run_id, case_index, part, example, expected, actual, status, duration_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare case insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range run.Cases {
		var expected sql.NullString
		if c.Status != harness.StatusInfo.String() {
			expected = sql.NullString{String: c.Expected, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, run.ID, c.Index, int(c.Part), c.Example, expected, c.Actual, c.Status, int64(c.Duration)); err != nil {
			return fmt.Errorf("insert case #%d: %w", c.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

const runColumns = `id, year, day, started_at, duration_ns, part_filter, case_filter, solutions_only, selected, passed, failed, info, ok, aborted`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*Run, error) {
	run := &Run{}
	var startedAt string
	var duration, caseFilter int64
	var part int
	err := row.Scan(
		&run.ID,
		&run.Year,
		&run.Day,
		&startedAt,
		&duration,
		&part,
		&caseFilter,
		&run.Filter.SolutionsOnly,
		&run.Selected,
		&run.Passed,
		&run.Failed,
		&run.Info,
		&run.OK,
		&run.Aborted,
	)
	if err != nil {
		return nil, err
	}

	run.StartedAt, err = time.Parse(timeLayout, startedAt)
	if err != nil {
		return nil, fmt.Errorf("parse started_at %q: %w", startedAt, err)
	}
	run.Duration = time.Duration(duration)
	run.Filter.Part = harness.Part(part)
	run.Filter.Case = uint32(caseFilter)
	return run, nil
}

// ListRuns returns the most recent runs first, without their cases. year 0
// lists every year; a non-positive limit uses a default of 20.
func (s *Store) ListRuns(ctx context.Context, year, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := `SELECT ` + runColumns + ` FROM runs`
	args := []any{}
	if year != 0 {
		query += ` WHERE year = ?`
		args = append(args, year)
	}
	query += ` ORDER BY started_at DESC, rowid DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run rows: %w", err)
	}
	return runs, nil
}

// GetRun returns the run whose id equals or starts with id, with its cases.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	if id == "" {
		return nil, ErrRunNotFound
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs WHERE id = ? OR id LIKE ? ESCAPE '\' ORDER BY id LIMIT 2`,
		id, escapeLike(id)+"%")
	if err != nil {
		return nil, fmt.Errorf("query run: %w", err)
	}

	var matches []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		matches = append(matches, run)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run rows: %w", err)
	}

	var run *Run
	switch {
	case len(matches) == 0:
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	case len(matches) == 1:
		run = matches[0]
	case matches[0].ID == id:
		run = matches[0]
	default:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguousRun, id)
	}

	cases, err := s.getCases(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	run.Cases = cases
	return run, nil
}

func (s *Store) getCases(ctx context.Context, runID string) ([]CaseRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT case_index, part, example, expected, actual, status, duration_ns
		FROM case_results WHERE run_id = ? ORDER BY case_index`, runID)
	if err != nil {
		return nil, fmt.Errorf("query cases: %w", err)
	}
	defer rows.Close()

	var cases []CaseRecord
	for rows.Next() {
		var c CaseRecord
		var part int
		var expected sql.NullString
		var duration int64
		if err := rows.Scan(&c.Index, &part, &c.Example, &expected, &c.Actual, &c.Status, &duration); err != nil {
			return nil, fmt.Errorf("scan case row: %w", err)
		}
		c.Part = harness.Part(part)
		if expected.Valid {
			c.Expected = expected.String
		}
		c.Duration = time.Duration(duration)
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate case rows: %w", err)
	}
	return cases, nil
}

// escapeLike makes s safe for use as a literal LIKE prefix.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
