package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
)

const specColumns = `id, slug, persona, intent, seed_keywords, strategy, benefits, proof_points,
       disclaimers, budget_daily, target_cpa, geo, tone, created_at`

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func (r *CampaignRepository) CreateSpec(ctx context.Context, s *domain.CampaignSpec) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO campaign_specs
    (id, slug, persona, intent, seed_keywords, strategy, benefits, proof_points,
     disclaimers, budget_daily, target_cpa, geo, tone, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		s.ID, s.Slug, s.Persona, s.Intent, nonNil(s.SeedKeywords), s.Strategy, nonNil(s.Benefits),
		nonNil(s.ProofPoints), nonNil(s.Disclaimers), s.BudgetDaily, s.TargetCPA, s.Geo, s.Tone, s.CreatedAt)
	return mapErr(err, "campaign spec "+s.Slug)
}

func (r *CampaignRepository) GetSpec(ctx context.Context, id string) (*domain.CampaignSpec, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+specColumns+` FROM campaign_specs WHERE id = $1`, id)
	if err != nil {
		return nil, mapErr(err, "campaign spec")
	}
	spec, err := pgx.CollectExactlyOneRow(rows, scanSpec)
	if err != nil {
		return nil, mapErr(err, "campaign spec "+id)
	}
	return &spec, nil
}

func (r *CampaignRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaign_specs WHERE slug = $1)`, slug).Scan(&exists)
	return exists, mapErr(err, "campaign slug")
}

func (r *CampaignRepository) RecentSpecs(ctx context.Context, limit int) ([]domain.CampaignSpec, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+specColumns+` FROM campaign_specs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, mapErr(err, "recent specs")
	}
	specs, err := pgx.CollectRows(rows, scanSpec)
	return specs, mapErr(err, "recent specs")
}

func scanSpec(row pgx.CollectableRow) (domain.CampaignSpec, error) {
	var s domain.CampaignSpec
	err := row.Scan(
		&s.ID,
		&s.Slug,
		&s.Persona,
		&s.Intent,
		&s.SeedKeywords,
		&s.Strategy,
		&s.Benefits,
		&s.ProofPoints,
		&s.Disclaimers,
		&s.BudgetDaily,
		&s.TargetCPA,
		&s.Geo,
		&s.Tone,
		&s.CreatedAt,
	)
	return s, err
}

// nonNil keeps NOT NULL array columns from receiving NULL.
func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
