package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/katalvlaran/ssassign/report"
	"github.com/pkg/errors"
)

const (
	insertRunSQL = `INSERT INTO run (created_at, method, streets_file, drivers_file, size, total, gap)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	insertPairSQL = `INSERT INTO run_pair (run_id, street_idx, street, driver, score)
		VALUES (?, ?, ?, ?, ?)`

	selectRunsSQL = `SELECT id, created_at, method, streets_file, drivers_file, size, total, gap
		FROM run
		ORDER BY id DESC
		LIMIT ?`

	selectRunSQL = `SELECT id, created_at, method, streets_file, drivers_file, size, total, gap
		FROM run
		WHERE id = ?`

	selectPairsSQL = `SELECT street, driver, score
		FROM run_pair
		WHERE run_id = ?
		ORDER BY street_idx`

	// DefaultListLimit caps ListRuns when limit <= 0.
	DefaultListLimit = 20
)

// Run is one recorded assignment.
type Run struct {
	ID          int64        `json:"id" yaml:"id"`
	CreatedAt   time.Time    `json:"created_at" yaml:"created_at"`
	Method      string       `json:"method" yaml:"method"`
	StreetsFile string       `json:"streets_file" yaml:"streets_file"`
	DriversFile string       `json:"drivers_file" yaml:"drivers_file"`
	Size        int          `json:"size" yaml:"size"`
	Total       float64      `json:"total" yaml:"total"`
	Gap         *float64     `json:"gap,omitempty" yaml:"gap,omitempty"`
	Rows        []report.Row `json:"rows,omitempty" yaml:"rows,omitempty"`
}

// NewRun builds a Run from a resolved assignment.
func NewRun(a report.Assignment, streetsFile, driversFile string) *Run {
	return &Run{
		CreatedAt:   time.Now().UTC(),
		Method:      a.Method,
		StreetsFile: streetsFile,
		DriversFile: driversFile,
		Size:        len(a.Rows),
		Total:       a.Total,
		Rows:        a.Rows,
	}
}

// SaveRun inserts r and its rows in one transaction and sets r.ID.
func SaveRun(ctx context.Context, db *sql.DB, r *Run) (int64, error) {
	if db == nil {
		return 0, errDBNotInitialized
	}
	if r == nil {
		return 0, errors.New("run required")
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	var gap sql.NullFloat64
	if r.Gap != nil {
		gap = sql.NullFloat64{Float64: *r.Gap, Valid: true}
	}

	res, err := tx.ExecContext(ctx, insertRunSQL,
		r.CreatedAt.Format(time.RFC3339Nano), r.Method, r.StreetsFile, r.DriversFile, r.Size, r.Total, gap)
	if err != nil {
		return 0, errors.Wrap(err, "failed to insert run")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "failed to get run id")
	}

	stmt, err := tx.PrepareContext(ctx, insertPairSQL)
	if err != nil {
		return 0, errors.Wrap(err, "failed to prepare pair insert statement")
	}
	defer stmt.Close()

	for i, row := range r.Rows {
		if _, err := stmt.ExecContext(ctx, id, i, row.Street, row.Driver, row.Score); err != nil {
			return 0, errors.Wrapf(err, "failed to insert pair %d of run %d", i, id)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "failed to commit run")
	}
	r.ID = id

	return id, nil
}

// ListRuns returns the newest runs first, without rows.
func ListRuns(ctx context.Context, db *sql.DB, limit int) ([]*Run, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := db.QueryContext(ctx, selectRunsSQL, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute run select statement")
	}
	defer rows.Close()

	list := make([]*Run, 0)
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate runs")
	}

	return list, nil
}

// GetRun returns run id with its rows, or ErrNotFound.
func GetRun(ctx context.Context, db *sql.DB, id int64) (*Run, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}

	r, err := scanRun(db.QueryRowContext(ctx, selectRunSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrapf(ErrNotFound, "id %d", id)
		}
		return nil, err
	}

	rows, err := db.QueryContext(ctx, selectPairsSQL, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to select pairs of run %d", id)
	}
	defer rows.Close()

	r.Rows = make([]report.Row, 0, r.Size)
	for rows.Next() {
		var row report.Row
		if err := rows.Scan(&row.Street, &row.Driver, &row.Score); err != nil {
			return nil, errors.Wrap(err, "failed to scan pair")
		}
		r.Rows = append(r.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate pairs")
	}

	return r, nil
}

// Assignment converts r back into a report.Assignment.
func (r *Run) Assignment() report.Assignment {
	return report.Assignment{Method: r.Method, Rows: r.Rows, Total: r.Total}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*Run, error) {
	var (
		r       Run
		created string
		gap     sql.NullFloat64
	)
	if err := s.Scan(&r.ID, &created, &r.Method, &r.StreetsFile, &r.DriversFile, &r.Size, &r.Total, &gap); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to scan run")
	}

	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid created_at %q", created)
	}
	r.CreatedAt = t
	if gap.Valid {
		g := gap.Float64
		r.Gap = &g
	}

	return &r, nil
}
