package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// LeadUseCase records landing page visitors and reports their bookings.
type LeadUseCase struct {
	leads    port.LeadRepository
	runs     port.RunRepository
	uploader port.ConversionUploader
	logger   *slog.Logger
	now      func() time.Time
}

func NewLeadUseCase(leads port.LeadRepository, runs port.RunRepository, uploader port.ConversionUploader, logger *slog.Logger) *LeadUseCase {
	return &LeadUseCase{leads: leads, runs: runs, uploader: uploader, logger: logger, now: time.Now}
}

// Track creates a PENDING lead for an existing run.
func (l *LeadUseCase) Track(ctx context.Context, ev domain.LeadEvent) (*domain.Lead, error) {
	if strings.TrimSpace(ev.RunID) == "" {
		return nil, fmt.Errorf("run id is required: %w", domain.ErrInvalidInput)
	}
	if _, err := l.runs.GetRun(ctx, ev.RunID); err != nil {
		return nil, err
	}

	lead := &domain.Lead{
		ID:        uuid.NewString(),
		RunID:     ev.RunID,
		GCLID:     strings.TrimSpace(ev.GCLID),
		Name:      strings.TrimSpace(ev.Name),
		Email:     strings.TrimSpace(ev.Email),
		Phone:     strings.TrimSpace(ev.Phone),
		Status:    domain.LeadPending,
		CreatedAt: l.now().UTC(),
	}
	if err := l.leads.CreateLead(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// Book marks the lead BOOKED. Only the call that makes the transition
// uploads a conversion, and only when the lead came from an ad click.
func (l *LeadUseCase) Book(ctx context.Context, leadID string) (*domain.Lead, error) {
	at := l.now().UTC()
	booked, err := l.leads.MarkBooked(ctx, leadID, at)
	if err != nil {
		return nil, err
	}
	lead, err := l.leads.GetLead(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if booked && lead.GCLID != "" {
		l.uploader.Upload(lead.GCLID, at)
	}
	l.logger.Info("lead booked",
		slog.String("lead_id", lead.ID),
		slog.String("run_id", lead.RunID),
		slog.Bool("transitioned", booked),
	)
	return lead, nil
}
