package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/rydeebs/product-browser/pkg/domain"
)

// RunRepository handles detection run audit records and per-source scrape state
type RunRepository struct {
	db *sqlx.DB
}

// runSQL represents a detection run for SQL operations
type runSQL struct {
	ID            string     `db:"id"`
	StartedAt     time.Time  `db:"started_at"`
	FinishedAt    *time.Time `db:"finished_at"`
	PostsScanned  int        `db:"posts_scanned"`
	ClustersFound int        `db:"clusters_found"`
	CreatedCount  int        `db:"created_count"`
	Status        string     `db:"status"`
	Error         string     `db:"error"`
}

// sourceStateSQL represents per-source scrape bookkeeping for SQL operations
type sourceStateSQL struct {
	Name       string     `db:"name"`
	LastRunAt  *time.Time `db:"last_run_at"`
	LastFetch  int        `db:"last_fetch"`
	ErrorCount int        `db:"error_count"`
	LastError  string     `db:"last_error"`
}

// NewRunRepository creates a new run repository
func NewRunRepository(database *sqlx.DB) *RunRepository {
	return &RunRepository{db: database}
}

// StartRun records a new detection run in running state
func (r *RunRepository) StartRun(ctx context.Context, run *domain.DetectionRun) error {
	query := `INSERT INTO detection_runs (id, started_at, status) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, run.ID, run.StartedAt, run.Status); err != nil {
		return fmt.Errorf("start run %s: %w", run.ID, err)
	}
	return nil
}

// FinishRun records the final state and counters of a detection run
func (r *RunRepository) FinishRun(ctx context.Context, run *domain.DetectionRun) error {
	query := `
		UPDATE detection_runs
		SET finished_at = ?, posts_scanned = ?, clusters_found = ?,
		    created_count = ?, status = ?, error = ?
		WHERE id = ?
	`
	_, err := r.db.ExecContext(ctx, query, run.FinishedAt, run.PostsScanned, run.ClustersFound,
		run.Created, run.Status, run.Error, run.ID)
	if err != nil {
		return fmt.Errorf("finish run %s: %w", run.ID, err)
	}
	return nil
}

// GetLatestRun returns the most recently started run, nil when none exist
func (r *RunRepository) GetLatestRun(ctx context.Context) (*domain.DetectionRun, error) {
	var sqlRun runSQL
	err := r.db.GetContext(ctx, &sqlRun, "SELECT * FROM detection_runs ORDER BY started_at DESC LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get latest run: %w", err)
	}

	run := &domain.DetectionRun{
		ID:            sqlRun.ID,
		StartedAt:     sqlRun.StartedAt,
		FinishedAt:    sqlRun.FinishedAt,
		PostsScanned:  sqlRun.PostsScanned,
		ClustersFound: sqlRun.ClustersFound,
		Created:       sqlRun.CreatedCount,
		Status:        sqlRun.Status,
		Error:         sqlRun.Error,
	}
	return run, nil
}

// SaveSourceSuccess records a successful scrape pass for a source and
// resets its consecutive error counter
func (r *RunRepository) SaveSourceSuccess(ctx context.Context, name string, fetched int) error {
	query := `
		INSERT INTO source_state (name, last_run_at, last_fetch, error_count, last_error)
		VALUES (?, ?, ?, 0, '')
		ON CONFLICT(name) DO UPDATE SET
			last_run_at = excluded.last_run_at,
			last_fetch = excluded.last_fetch,
			error_count = 0,
			last_error = ''
	`
	if _, err := r.db.ExecContext(ctx, query, name, time.Now().UTC(), fetched); err != nil {
		return fmt.Errorf("save source state %s: %w", name, err)
	}
	return nil
}

// SaveSourceError records a failed scrape pass and increments the
// consecutive error counter, the last fetch count stays as it was
func (r *RunRepository) SaveSourceError(ctx context.Context, name, errMsg string) error {
	query := `
		INSERT INTO source_state (name, last_run_at, last_fetch, error_count, last_error)
		VALUES (?, ?, 0, 1, ?)
		ON CONFLICT(name) DO UPDATE SET
			last_run_at = excluded.last_run_at,
			error_count = source_state.error_count + 1,
			last_error = excluded.last_error
	`
	if _, err := r.db.ExecContext(ctx, query, name, time.Now().UTC(), errMsg); err != nil {
		return fmt.Errorf("save source error %s: %w", name, err)
	}
	return nil
}

// GetSourceStates lists scrape state for all known sources
func (r *RunRepository) GetSourceStates(ctx context.Context) ([]domain.SourceState, error) {
	var sqlStates []sourceStateSQL
	if err := r.db.SelectContext(ctx, &sqlStates, "SELECT * FROM source_state ORDER BY name"); err != nil {
		return nil, fmt.Errorf("get source states: %w", err)
	}

	states := make([]domain.SourceState, len(sqlStates))
	for i := range sqlStates {
		states[i] = domain.SourceState{
			Name:       sqlStates[i].Name,
			LastRunAt:  sqlStates[i].LastRunAt,
			LastFetch:  sqlStates[i].LastFetch,
			ErrorCount: sqlStates[i].ErrorCount,
			LastError:  sqlStates[i].LastError,
		}
	}
	return states, nil
}
