package port

import (
	"context"
	"time"

	"adpilot/internal/core/domain"
)

// CampaignUseCase is the inbound port for campaign intake and artifact
// generation.
type CampaignUseCase interface {
	// CreateCampaign persists an operator-written spec with a DRAFT run. Text
	// failing compliance is rejected with *domain.ComplianceError and nothing
	// is stored.
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*CampaignResp, error)
	// GenerateCampaign asks the text generator for a new spec.
	GenerateCampaign(ctx context.Context, strategy domain.Strategy, inlet *domain.Inlet) (*CampaignResp, error)
	// StartRun opens a new DRAFT run for an existing spec.
	StartRun(ctx context.Context, specID string) (*domain.CampaignRun, error)
	// BuildArtifacts generates the ad plan and the landing page and moves the
	// run to VALIDATED.
	BuildArtifacts(ctx context.Context, runID string, opts BuildOptions) (*domain.CampaignRun, error)

	GetSpec(ctx context.Context, id string) (*domain.CampaignSpec, error)
	GetRun(ctx context.Context, id string) (*domain.CampaignRun, error)
	ListRuns(ctx context.Context, specID string) ([]domain.CampaignRun, error)
	GetArtifact(ctx context.Context, runID string, stage domain.Stage) (*domain.PipelineArtifact, error)
	DeleteRun(ctx context.Context, id string) error
}

// SyncUseCase pushes a run's assets to the ad platform.
type SyncUseCase interface {
	Sync(ctx context.Context, runID string, dryRun bool) (*SyncResult, error)
}

// MetricsUseCase returns the performance of a run, refreshing it from the
// platform when possible.
type MetricsUseCase interface {
	Refresh(ctx context.Context, runID string) (*domain.MetricAggregate, error)
}

// LeadUseCase records visitors and their bookings.
type LeadUseCase interface {
	Track(ctx context.Context, ev domain.LeadEvent) (*domain.Lead, error)
	// Book converts a lead. Booking twice is not an error.
	Book(ctx context.Context, leadID string) (*domain.Lead, error)
}

// ConversionUploader reports a converted click to the ad platform without
// blocking the caller.
type ConversionUploader interface {
	Upload(clickID string, at time.Time)
}

// CreateCampaignReq is the operator-written content of a new spec.
type CreateCampaignReq struct {
	Slug         string          `json:"slug"`
	Persona      string          `json:"persona"`
	Intent       string          `json:"intent"`
	SeedKeywords []string        `json:"seedKeywords"`
	Strategy     domain.Strategy `json:"strategy"`
	Benefits     []string        `json:"benefits"`
	ProofPoints  []string        `json:"proofPoints"`
	Disclaimers  []string        `json:"disclaimers"`
	BudgetDaily  float64         `json:"budgetDaily"`
	TargetCPA    float64         `json:"targetCpa"`
	Geo          string          `json:"geo"`
	Tone         string          `json:"tone"`
}

// CampaignResp pairs a new spec with its first run.
type CampaignResp struct {
	Spec domain.CampaignSpec `json:"spec"`
	Run  domain.CampaignRun  `json:"run"`
}

// BuildOptions control artifact generation. Force regenerates stages that
// are already cached.
type BuildOptions struct {
	Force  bool `json:"force"`
	AIHero bool `json:"aiHero"`
}

// SyncResult reports the outcome of a sync. DryRun results carry
// placeholder references.
type SyncResult struct {
	RunID     string                   `json:"runId"`
	DryRun    bool                     `json:"dryRun"`
	Status    domain.RunStatus         `json:"status"`
	Resources domain.ExternalResources `json:"resources"`
	Keywords  int                      `json:"keywords"`
	Negatives int                      `json:"negativeKeywords"`
	Warnings  []string                 `json:"warnings,omitempty"`
}
