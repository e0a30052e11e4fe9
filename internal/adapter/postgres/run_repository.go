package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
)

const runColumns = `id, spec_id, status, last_error, created_at, updated_at, deployed_at`

// RunRepository implements port.RunRepository using pgxpool. External
// resources live in their own table so each one can be recorded the moment
// it is created.
type RunRepository struct {
	pool *pgxpool.Pool
}

func NewRunRepository(pool *pgxpool.Pool) *RunRepository {
	return &RunRepository{pool: pool}
}

func (r *RunRepository) CreateRun(ctx context.Context, run *domain.CampaignRun) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO campaign_runs (id, spec_id, status, last_error, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6)`, run.ID, run.SpecID, run.Status, run.LastError, run.CreatedAt, run.UpdatedAt)
	return mapErr(err, "campaign run")
}

func (r *RunRepository) GetRun(ctx context.Context, id string) (*domain.CampaignRun, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+runColumns+` FROM campaign_runs WHERE id = $1`, id)
	if err != nil {
		return nil, mapErr(err, "campaign run")
	}
	run, err := pgx.CollectExactlyOneRow(rows, scanRun)
	if err != nil {
		return nil, mapErr(err, "campaign run "+id)
	}
	runs := []domain.CampaignRun{run}
	if err = r.loadResources(ctx, runs); err != nil {
		return nil, err
	}
	return &runs[0], nil
}

func (r *RunRepository) ListRuns(ctx context.Context, specID string) ([]domain.CampaignRun, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+runColumns+` FROM campaign_runs WHERE spec_id = $1 ORDER BY created_at DESC`, specID)
	if err != nil {
		return nil, mapErr(err, "campaign runs")
	}
	runs, err := pgx.CollectRows(rows, scanRun)
	if err != nil {
		return nil, mapErr(err, "campaign runs")
	}
	if err = r.loadResources(ctx, runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// loadResources fills in the external resources of runs with one query.
func (r *RunRepository) loadResources(ctx context.Context, runs []domain.CampaignRun) error {
	if len(runs) == 0 {
		return nil
	}
	ids := make([]string, len(runs))
	index := make(map[string]int, len(runs))
	for i, run := range runs {
		ids[i] = run.ID
		index[run.ID] = i
	}

	rows, err := r.pool.Query(ctx, `SELECT run_id, kind, ref FROM external_resources WHERE run_id = ANY($1::uuid[])`, ids)
	if err != nil {
		return mapErr(err, "external resources")
	}
	defer rows.Close()
	for rows.Next() {
		var (
			runID, ref string
			kind       domain.ResourceKind
		)
		if err = rows.Scan(&runID, &kind, &ref); err != nil {
			return mapErr(err, "external resources")
		}
		if i, ok := index[runID]; ok {
			runs[i].Resources.Set(kind, ref)
		}
	}
	return mapErr(rows.Err(), "external resources")
}

func (r *RunRepository) TransitionStatus(ctx context.Context, id string, from, to domain.RunStatus, lastError string) error {
	if !from.CanTransition(to) {
		return fmt.Errorf("%s -> %s: %w", from, to, domain.ErrInvalidTransition)
	}
	tag, err := r.pool.Exec(ctx, `UPDATE campaign_runs
SET status = $3,
    last_error = $4,
    updated_at = now(),
    deployed_at = CASE WHEN $3 = 'DEPLOYED' THEN now() ELSE deployed_at END
WHERE id = $1 AND status = $2`, id, from, to, lastError)
	if err != nil {
		return mapErr(err, "campaign run "+id)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var current domain.RunStatus
	if err = r.pool.QueryRow(ctx, `SELECT status FROM campaign_runs WHERE id = $1`, id).Scan(&current); err != nil {
		return mapErr(err, "campaign run "+id)
	}
	return fmt.Errorf("run is %s, not %s: %w", current, from, domain.ErrInvalidTransition)
}

func (r *RunRepository) SetLastError(ctx context.Context, id, msg string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaign_runs SET last_error = $2, updated_at = now() WHERE id = $1`, id, msg)
	if err != nil {
		return mapErr(err, "campaign run "+id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign run %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SaveExternalResource is write-once per (run, kind). The no-op update
// makes RETURNING yield the ref already stored when the row exists.
func (r *RunRepository) SaveExternalResource(ctx context.Context, runID string, kind domain.ResourceKind, ref string) error {
	var stored string
	err := r.pool.QueryRow(ctx, `INSERT INTO external_resources (run_id, kind, ref, created_at)
VALUES ($1,$2,$3,now())
ON CONFLICT (run_id, kind) DO UPDATE SET ref = external_resources.ref
RETURNING ref`, runID, kind, ref).Scan(&stored)
	if err != nil {
		return mapErr(err, "external resource")
	}
	if stored != ref {
		return fmt.Errorf("%s already recorded as %s: %w", kind, stored, domain.ErrSyncInProgress)
	}
	return nil
}

// ClaimSync sets the lease only when none is held or the previous one ran
// out, so a crashed sync does not lock the run forever.
func (r *RunRepository) ClaimSync(ctx context.Context, id string, lease time.Duration) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaign_runs
SET sync_lease_until = now() + make_interval(secs => $2)
WHERE id = $1 AND (sync_lease_until IS NULL OR sync_lease_until < now())`, id, lease.Seconds())
	if err != nil {
		return mapErr(err, "campaign run "+id)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err = r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaign_runs WHERE id = $1)`, id).Scan(&exists); err != nil {
		return mapErr(err, "campaign run "+id)
	}
	if !exists {
		return fmt.Errorf("campaign run %s: %w", id, domain.ErrNotFound)
	}
	return fmt.Errorf("campaign run %s: %w", id, domain.ErrSyncInProgress)
}

func (r *RunRepository) ReleaseSync(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE campaign_runs SET sync_lease_until = NULL WHERE id = $1`, id)
	return mapErr(err, "campaign run "+id)
}

// DeleteRun relies on ON DELETE CASCADE for artifacts, resources, metrics
// and leads.
func (r *RunRepository) DeleteRun(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaign_runs WHERE id = $1`, id)
	if err != nil {
		return mapErr(err, "campaign run "+id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign run %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanRun(row pgx.CollectableRow) (domain.CampaignRun, error) {
	var run domain.CampaignRun
	err := row.Scan(&run.ID, &run.SpecID, &run.Status, &run.LastError, &run.CreatedAt, &run.UpdatedAt, &run.DeployedAt)
	return run, err
}
