package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
)

// MetricsRepository implements port.MetricsRepository using pgxpool.
type MetricsRepository struct {
	pool *pgxpool.Pool
}

func NewMetricsRepository(pool *pgxpool.Pool) *MetricsRepository {
	return &MetricsRepository{pool: pool}
}

// UpsertSnapshots writes all rows in one batch inside a transaction.
func (r *MetricsRepository) UpsertSnapshots(ctx context.Context, rows []domain.MetricSnapshot) error {
	if len(rows) == 0 {
		return nil
	}
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, s := range rows {
			batch.Queue(`INSERT INTO metric_snapshots (run_id, day, impressions, clicks, conversions, cost, source)
VALUES ($1,$2,$3,$4,$5,$6,$7)
ON CONFLICT (run_id, day) DO UPDATE
SET impressions = EXCLUDED.impressions,
    clicks = EXCLUDED.clicks,
    conversions = EXCLUDED.conversions,
    cost = EXCLUDED.cost,
    source = EXCLUDED.source`,
				s.RunID, domain.Day(s.Day), s.Impressions, s.Clicks, s.Conversions, s.Cost, s.Source)
		}
		return mapErr(tx.SendBatch(ctx, batch).Close(), "metric snapshots")
	})
}

func (r *MetricsRepository) ListSnapshots(ctx context.Context, runID string) ([]domain.MetricSnapshot, error) {
	rows, err := r.pool.Query(ctx, `SELECT run_id, day, impressions, clicks, conversions, cost, source
FROM metric_snapshots WHERE run_id = $1 ORDER BY day`, runID)
	if err != nil {
		return nil, mapErr(err, "metric snapshots")
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MetricSnapshot, error) {
		var s domain.MetricSnapshot
		err := row.Scan(&s.RunID, &s.Day, &s.Impressions, &s.Clicks, &s.Conversions, &s.Cost, &s.Source)
		return s, err
	})
	return out, mapErr(err, "metric snapshots")
}

func (r *MetricsRepository) SaveAggregate(ctx context.Context, a domain.MetricAggregate) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO metric_aggregates
    (run_id, days, impressions, clicks, conversions, cost, ctr, cvr, cpa, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
ON CONFLICT (run_id) DO UPDATE
SET days = EXCLUDED.days,
    impressions = EXCLUDED.impressions,
    clicks = EXCLUDED.clicks,
    conversions = EXCLUDED.conversions,
    cost = EXCLUDED.cost,
    ctr = EXCLUDED.ctr,
    cvr = EXCLUDED.cvr,
    cpa = EXCLUDED.cpa,
    updated_at = EXCLUDED.updated_at`,
		a.RunID, a.Days, a.Impressions, a.Clicks, a.Conversions, a.Cost, a.CTR, a.CVR, a.CPA, a.UpdatedAt)
	return mapErr(err, "metric aggregate")
}

func (r *MetricsRepository) GetAggregate(ctx context.Context, runID string) (*domain.MetricAggregate, error) {
	var a domain.MetricAggregate
	err := r.pool.QueryRow(ctx, `SELECT run_id, days, impressions, clicks, conversions, cost, ctr, cvr, cpa, updated_at
FROM metric_aggregates WHERE run_id = $1`, runID).
		Scan(&a.RunID, &a.Days, &a.Impressions, &a.Clicks, &a.Conversions, &a.Cost, &a.CTR, &a.CVR, &a.CPA, &a.UpdatedAt)
	if err != nil {
		return nil, mapErr(err, "metric aggregate "+runID)
	}
	return &a, nil
}
