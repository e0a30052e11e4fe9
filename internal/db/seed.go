package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
)

// Demo records inserted by Seed. The ids are fixed so seeding twice is a
// no-op.
const (
	DemoSpecID = "7f1c9a52-3d4e-4b8a-9c61-0a2b3c4d5e6f"
	DemoRunID  = "0b6e2f1a-8c7d-4e5f-a1b2-c3d4e5f60718"
)

// DemoSpec is the campaign created by Seed.
func DemoSpec(now time.Time) domain.CampaignSpec {
	return domain.CampaignSpec{
		ID:           DemoSpecID,
		Slug:         "busy-parents-family-doctor",
		Persona:      "Busy parents with young kids",
		Intent:       "Family doctor membership",
		SeedKeywords: []string{"family doctor", "pediatric primary care", "direct primary care"},
		Strategy:     domain.StrategyTransactional,
		Benefits:     []string{"Unhurried visits", "Text your doctor", "Simple monthly pricing"},
		ProofPoints:  []string{"Board-certified physicians", "Transparent membership pricing"},
		Disclaimers:  []string{"Membership is not insurance. Direct primary care does not bill insurance."},
		BudgetDaily:  50,
		TargetCPA:    75,
		Geo:          "US",
		Tone:         "warm",
		CreatedAt:    now.UTC(),
	}
}

// Seed inserts the demo campaign with a DRAFT run in a single transaction.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	now := time.Now().UTC()
	s := DemoSpec(now)
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `INSERT INTO campaign_specs
    (id, slug, persona, intent, seed_keywords, strategy, benefits, proof_points,
     disclaimers, budget_daily, target_cpa, geo, tone, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14) ON CONFLICT DO NOTHING`,
			s.ID, s.Slug, s.Persona, s.Intent, s.SeedKeywords, s.Strategy, s.Benefits,
			s.ProofPoints, s.Disclaimers, s.BudgetDaily, s.TargetCPA, s.Geo, s.Tone, s.CreatedAt)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `INSERT INTO campaign_runs (id, spec_id, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$4) ON CONFLICT DO NOTHING`, DemoRunID, DemoSpecID, domain.RunDraft, now)
		return err
	})
}
