package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
)

// ArtifactRepository implements port.ArtifactRepository using pgxpool.
type ArtifactRepository struct {
	pool *pgxpool.Pool
}

func NewArtifactRepository(pool *pgxpool.Pool) *ArtifactRepository {
	return &ArtifactRepository{pool: pool}
}

// UpsertArtifact writes the stage output in one statement, so concurrent
// writers never lose a version bump.
func (r *ArtifactRepository) UpsertArtifact(ctx context.Context, runID string, stage domain.Stage, data json.RawMessage) (*domain.PipelineArtifact, error) {
	rows, err := r.pool.Query(ctx, `INSERT INTO pipeline_artifacts (run_id, stage, data, version, updated_at)
VALUES ($1,$2,$3,1,now())
ON CONFLICT (run_id, stage) DO UPDATE
SET data = EXCLUDED.data,
    version = pipeline_artifacts.version + 1,
    updated_at = EXCLUDED.updated_at
RETURNING run_id, stage, data, version, updated_at`, runID, stage, []byte(data))
	if err != nil {
		return nil, mapErr(err, "artifact "+string(stage))
	}
	a, err := pgx.CollectExactlyOneRow(rows, scanArtifact)
	if err != nil {
		return nil, mapErr(err, "artifact "+string(stage))
	}
	return &a, nil
}

func (r *ArtifactRepository) GetArtifact(ctx context.Context, runID string, stage domain.Stage) (*domain.PipelineArtifact, error) {
	rows, err := r.pool.Query(ctx, `SELECT run_id, stage, data, version, updated_at
FROM pipeline_artifacts WHERE run_id = $1 AND stage = $2`, runID, stage)
	if err != nil {
		return nil, mapErr(err, "artifact "+string(stage))
	}
	a, err := pgx.CollectExactlyOneRow(rows, scanArtifact)
	if err != nil {
		return nil, mapErr(err, "artifact "+string(stage))
	}
	return &a, nil
}

func (r *ArtifactRepository) ListArtifacts(ctx context.Context, runID string) ([]domain.PipelineArtifact, error) {
	rows, err := r.pool.Query(ctx, `SELECT run_id, stage, data, version, updated_at
FROM pipeline_artifacts WHERE run_id = $1 ORDER BY updated_at`, runID)
	if err != nil {
		return nil, mapErr(err, "artifacts")
	}
	out, err := pgx.CollectRows(rows, scanArtifact)
	return out, mapErr(err, "artifacts")
}

func scanArtifact(row pgx.CollectableRow) (domain.PipelineArtifact, error) {
	var (
		a    domain.PipelineArtifact
		data []byte
	)
	err := row.Scan(&a.RunID, &a.Stage, &data, &a.Version, &a.Timestamp)
	a.Data = data
	return a, err
}
