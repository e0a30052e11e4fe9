package port

import (
	"context"
	"encoding/json"
	"time"

	"adpilot/internal/core/domain"
)

// CampaignRepository stores campaign specs. Specs are written once and never
// updated.
type CampaignRepository interface {
	// CreateSpec inserts spec. The slug must be unique.
	CreateSpec(ctx context.Context, spec *domain.CampaignSpec) error
	// GetSpec returns domain.ErrNotFound when no spec has the id.
	GetSpec(ctx context.Context, id string) (*domain.CampaignSpec, error)
	// SlugExists reports whether any spec already uses slug.
	SlugExists(ctx context.Context, slug string) (bool, error)
	// RecentSpecs returns up to limit specs, newest first.
	RecentSpecs(ctx context.Context, limit int) ([]domain.CampaignSpec, error)
}

// RunRepository stores campaign runs and the external resources created for
// them. Status changes are compare-and-set so two callers can never both
// move a run out of the same state.
type RunRepository interface {
	CreateRun(ctx context.Context, run *domain.CampaignRun) error
	// GetRun returns the run with its external resources, or
	// domain.ErrNotFound.
	GetRun(ctx context.Context, id string) (*domain.CampaignRun, error)
	// ListRuns returns the runs of a spec, newest first.
	ListRuns(ctx context.Context, specID string) ([]domain.CampaignRun, error)
	// TransitionStatus moves the run from one status to another and records
	// lastError. It returns domain.ErrInvalidTransition when the run is no
	// longer in from. Moving to DEPLOYED also stamps deployed_at.
	TransitionStatus(ctx context.Context, id string, from, to domain.RunStatus, lastError string) error
	// SetLastError records msg without touching the status.
	SetLastError(ctx context.Context, id, msg string) error
	// SaveExternalResource records a created platform resource right away,
	// so a failed sync still leaves a trail of what exists remotely. A kind
	// is written once; recording a different ref for it returns
	// domain.ErrSyncInProgress.
	SaveExternalResource(ctx context.Context, runID string, kind domain.ResourceKind, ref string) error
	// ClaimSync takes a lease on the run for a live sync. It returns
	// domain.ErrSyncInProgress while another unexpired lease is held.
	ClaimSync(ctx context.Context, id string, lease time.Duration) error
	// ReleaseSync drops the lease taken by ClaimSync.
	ReleaseSync(ctx context.Context, id string) error
	// DeleteRun removes the run and everything recorded for it.
	DeleteRun(ctx context.Context, id string) error
}

// ArtifactRepository stores one artifact per (run, stage).
type ArtifactRepository interface {
	// UpsertArtifact atomically inserts the artifact at version 1 or
	// overwrites it and bumps the version.
	UpsertArtifact(ctx context.Context, runID string, stage domain.Stage, data json.RawMessage) (*domain.PipelineArtifact, error)
	// GetArtifact returns domain.ErrNotFound when the stage has not run.
	GetArtifact(ctx context.Context, runID string, stage domain.Stage) (*domain.PipelineArtifact, error)
	ListArtifacts(ctx context.Context, runID string) ([]domain.PipelineArtifact, error)
}

// MetricsRepository stores daily snapshots and the per-run aggregate.
type MetricsRepository interface {
	// UpsertSnapshots overwrites the row for each (run, day).
	UpsertSnapshots(ctx context.Context, rows []domain.MetricSnapshot) error
	ListSnapshots(ctx context.Context, runID string) ([]domain.MetricSnapshot, error)
	SaveAggregate(ctx context.Context, agg domain.MetricAggregate) error
	// GetAggregate returns domain.ErrNotFound before the first pull.
	GetAggregate(ctx context.Context, runID string) (*domain.MetricAggregate, error)
}

// LeadRepository stores leads.
type LeadRepository interface {
	CreateLead(ctx context.Context, lead *domain.Lead) error
	GetLead(ctx context.Context, id string) (*domain.Lead, error)
	// MarkBooked moves a PENDING lead to BOOKED and reports whether this
	// call made the transition.
	MarkBooked(ctx context.Context, id string, at time.Time) (bool, error)
	ListLeads(ctx context.Context, runID string) ([]domain.Lead, error)
}
