package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
)

const leadColumns = `id, run_id, gclid, name, email, phone, status, created_at, booked_at`

// LeadRepository implements port.LeadRepository using pgxpool.
type LeadRepository struct {
	pool *pgxpool.Pool
}

func NewLeadRepository(pool *pgxpool.Pool) *LeadRepository {
	return &LeadRepository{pool: pool}
}

func (r *LeadRepository) CreateLead(ctx context.Context, l *domain.Lead) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO leads (id, run_id, gclid, name, email, phone, status, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`, l.ID, l.RunID, l.GCLID, l.Name, l.Email, l.Phone, l.Status, l.CreatedAt)
	return mapErr(err, "lead")
}

func (r *LeadRepository) GetLead(ctx context.Context, id string) (*domain.Lead, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)
	if err != nil {
		return nil, mapErr(err, "lead")
	}
	l, err := pgx.CollectExactlyOneRow(rows, scanLead)
	if err != nil {
		return nil, mapErr(err, "lead "+id)
	}
	return &l, nil
}

// MarkBooked only updates PENDING rows. A second call finds nothing to
// update and reports false, unless the lead does not exist at all.
func (r *LeadRepository) MarkBooked(ctx context.Context, id string, at time.Time) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE leads SET status = 'BOOKED', booked_at = $2 WHERE id = $1 AND status = 'PENDING'`, id, at)
	if err != nil {
		return false, mapErr(err, "lead "+id)
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}
	var exists bool
	if err = r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM leads WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, mapErr(err, "lead "+id)
	}
	if !exists {
		return false, mapErr(pgx.ErrNoRows, "lead "+id)
	}
	return false, nil
}

func (r *LeadRepository) ListLeads(ctx context.Context, runID string) ([]domain.Lead, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+leadColumns+` FROM leads WHERE run_id = $1 ORDER BY created_at DESC`, runID)
	if err != nil {
		return nil, mapErr(err, "leads")
	}
	out, err := pgx.CollectRows(rows, scanLead)
	return out, mapErr(err, "leads")
}

func scanLead(row pgx.CollectableRow) (domain.Lead, error) {
	var l domain.Lead
	err := row.Scan(&l.ID, &l.RunID, &l.GCLID, &l.Name, &l.Email, &l.Phone, &l.Status, &l.CreatedAt, &l.BookedAt)
	return l, err
}
