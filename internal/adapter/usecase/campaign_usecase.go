package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"adpilot/internal/core/compliance"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/planner"
	"adpilot/internal/core/port"
)

// CampaignUseCase owns campaign intake and the run lifecycle up to
// VALIDATED. It implements port.CampaignUseCase.
type CampaignUseCase struct {
	campaigns port.CampaignRepository
	runs      port.RunRepository
	pipeline  *ArtifactPipeline
	validator *compliance.Validator
	specs     *CampaignSpecGenerator
	plans     *planner.AdPlanBuilder
	landing   *LandingPageGenerator
	logger    *slog.Logger
	now       func() time.Time
}

func NewCampaignUseCase(
	campaigns port.CampaignRepository,
	runs port.RunRepository,
	pipeline *ArtifactPipeline,
	validator *compliance.Validator,
	specs *CampaignSpecGenerator,
	plans *planner.AdPlanBuilder,
	landing *LandingPageGenerator,
	logger *slog.Logger,
) *CampaignUseCase {
	return &CampaignUseCase{
		campaigns: campaigns,
		runs:      runs,
		pipeline:  pipeline,
		validator: validator,
		specs:     specs,
		plans:     plans,
		landing:   landing,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateCampaign validates operator input and stores it as a new spec with
// a DRAFT run. Nothing is stored when any field fails compliance.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*port.CampaignResp, error) {
	if req.Strategy == "" {
		req.Strategy = domain.StrategyTransactional
	}
	switch {
	case !req.Strategy.Valid():
		return nil, fmt.Errorf("strategy %q: %w", req.Strategy, domain.ErrInvalidInput)
	case strings.TrimSpace(req.Intent) == "":
		return nil, fmt.Errorf("intent is required: %w", domain.ErrInvalidInput)
	case req.BudgetDaily <= 0 || req.TargetCPA <= 0:
		return nil, fmt.Errorf("budgetDaily and targetCpa must be positive: %w", domain.ErrInvalidInput)
	}

	if reasons := u.check(req); len(reasons) > 0 {
		return nil, &domain.ComplianceError{Context: compliance.ContextCampaignSpec, Reasons: reasons}
	}

	slug, err := uniqueSlug(ctx, u.campaigns, firstNonEmpty(Slugify(req.Slug), Slugify(req.Intent), "campaign"))
	if err != nil {
		return nil, err
	}
	spec := domain.CampaignSpec{
		ID:           uuid.NewString(),
		Slug:         slug,
		Persona:      strings.TrimSpace(req.Persona),
		Intent:       strings.TrimSpace(req.Intent),
		SeedKeywords: trimAll(req.SeedKeywords),
		Strategy:     req.Strategy,
		Benefits:     trimAll(req.Benefits),
		ProofPoints:  trimAll(req.ProofPoints),
		Disclaimers:  trimAll(req.Disclaimers),
		BudgetDaily:  req.BudgetDaily,
		TargetCPA:    req.TargetCPA,
		Geo:          firstNonEmpty(req.Geo, "US"),
		Tone:         strings.TrimSpace(req.Tone),
		CreatedAt:    u.now().UTC(),
	}
	if len(spec.Disclaimers) == 0 {
		spec.Disclaimers = append([]string(nil), u.validator.Policy().SafeDefaults.Disclaimers...)
	}
	if len(spec.SeedKeywords) == 0 {
		spec.SeedKeywords = []string{strings.ToLower(spec.Intent)}
	}
	return u.persist(ctx, spec)
}

// check validates each field on its own so the reasons point at the
// offending text.
func (u *CampaignUseCase) check(req port.CreateCampaignReq) []string {
	fields := map[string][]string{
		"slug":         {req.Slug},
		"persona":      {req.Persona},
		"intent":       {req.Intent},
		"seedKeywords": req.SeedKeywords,
		"benefits":     req.Benefits,
		"proofPoints":  req.ProofPoints,
		"disclaimers":  req.Disclaimers,
		"tone":         {req.Tone},
	}
	order := []string{"slug", "persona", "intent", "seedKeywords", "benefits", "proofPoints", "disclaimers", "tone"}

	var reasons []string
	for _, name := range order {
		for _, text := range fields[name] {
			if strings.TrimSpace(text) == "" {
				continue
			}
			res := u.validator.Validate(text, compliance.ContextCampaignSpec)
			for _, r := range res.Reasons {
				reasons = append(reasons, fmt.Sprintf("%s %q: %s", name, text, r))
			}
		}
	}
	return reasons
}

// GenerateCampaign drafts a spec with the text generator and stores it.
func (u *CampaignUseCase) GenerateCampaign(ctx context.Context, strategy domain.Strategy, inlet *domain.Inlet) (*port.CampaignResp, error) {
	spec, err := u.specs.Generate(ctx, strategy, inlet)
	if err != nil {
		return nil, err
	}
	return u.persist(ctx, spec)
}

func (u *CampaignUseCase) persist(ctx context.Context, spec domain.CampaignSpec) (*port.CampaignResp, error) {
	if err := u.campaigns.CreateSpec(ctx, &spec); err != nil {
		return nil, fmt.Errorf("store spec: %w", err)
	}
	run, err := u.newRun(ctx, spec)
	if err != nil {
		return nil, err
	}
	u.logger.Info("campaign created", slog.String("slug", spec.Slug), slog.String("run_id", run.ID))
	return &port.CampaignResp{Spec: spec, Run: *run}, nil
}

// StartRun opens a new DRAFT run for an existing spec. Earlier runs are kept
// but no longer current.
func (u *CampaignUseCase) StartRun(ctx context.Context, specID string) (*domain.CampaignRun, error) {
	spec, err := u.campaigns.GetSpec(ctx, specID)
	if err != nil {
		return nil, err
	}
	return u.newRun(ctx, *spec)
}

func (u *CampaignUseCase) newRun(ctx context.Context, spec domain.CampaignSpec) (*domain.CampaignRun, error) {
	now := u.now().UTC()
	run := &domain.CampaignRun{
		ID:        uuid.NewString(),
		SpecID:    spec.ID,
		Status:    domain.RunDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.runs.CreateRun(ctx, run); err != nil {
		return nil, fmt.Errorf("store run: %w", err)
	}
	if _, err := u.pipeline.SaveArtifact(ctx, run.ID, domain.StageCampaignSpec, spec); err != nil {
		return nil, err
	}
	return run, nil
}

// BuildArtifacts generates the ad plan and landing page of a run. A DRAFT
// run becomes VALIDATED. A landing page that fails compliance moves the run
// to ERROR. Errored runs are reset to DRAFT and rebuilt.
func (u *CampaignUseCase) BuildArtifacts(ctx context.Context, runID string, opts port.BuildOptions) (*domain.CampaignRun, error) {
	run, err := u.runs.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.Status.Deployed() {
		return nil, fmt.Errorf("rebuild run in status %s: %w", run.Status, domain.ErrInvalidTransition)
	}
	if run.Status == domain.RunError {
		if err = u.runs.TransitionStatus(ctx, run.ID, domain.RunError, domain.RunDraft, ""); err != nil {
			return nil, err
		}
		run.Status = domain.RunDraft
	}

	spec, err := u.spec(ctx, run)
	if err != nil {
		return nil, err
	}

	_, err = RunStepAs(ctx, u.pipeline, run.ID, domain.StageAdPlan, func(context.Context) (domain.AdPlan, error) {
		return u.plans.Build(spec), nil
	}, opts.Force)
	if err != nil {
		return nil, err
	}

	_, err = RunStepAs(ctx, u.pipeline, run.ID, domain.StageLandingPage, func(ctx context.Context) (domain.LandingPageSpec, error) {
		return u.landing.Generate(ctx, spec, LandingOptions{AIHero: opts.AIHero})
	}, opts.Force)
	if err != nil {
		var ce *domain.ComplianceError
		if errors.As(err, &ce) {
			if e := u.runs.TransitionStatus(context.WithoutCancel(ctx), run.ID, run.Status, domain.RunError, err.Error()); e != nil {
				u.logger.Error("mark run errored", slog.String("run_id", run.ID), slog.Any("error", e))
			}
		}
		return nil, err
	}

	if run.Status == domain.RunDraft {
		if err = u.runs.TransitionStatus(ctx, run.ID, domain.RunDraft, domain.RunValidated, ""); err != nil {
			return nil, err
		}
	}
	return u.runs.GetRun(ctx, run.ID)
}

// spec returns the spec snapshot stored with the run, falling back to the
// campaign record for runs created before the snapshot existed.
func (u *CampaignUseCase) spec(ctx context.Context, run *domain.CampaignRun) (domain.CampaignSpec, error) {
	spec, err := LoadArtifact[domain.CampaignSpec](ctx, u.pipeline, run.ID, domain.StageCampaignSpec)
	if err == nil {
		return spec, nil
	}
	if !errors.Is(err, domain.ErrArtifactMissing) {
		return domain.CampaignSpec{}, err
	}
	stored, err := u.campaigns.GetSpec(ctx, run.SpecID)
	if err != nil {
		return domain.CampaignSpec{}, err
	}
	if _, err = u.pipeline.SaveArtifact(ctx, run.ID, domain.StageCampaignSpec, stored); err != nil {
		return domain.CampaignSpec{}, err
	}
	return *stored, nil
}

func (u *CampaignUseCase) GetSpec(ctx context.Context, id string) (*domain.CampaignSpec, error) {
	return u.campaigns.GetSpec(ctx, id)
}

func (u *CampaignUseCase) GetRun(ctx context.Context, id string) (*domain.CampaignRun, error) {
	return u.runs.GetRun(ctx, id)
}

func (u *CampaignUseCase) ListRuns(ctx context.Context, specID string) ([]domain.CampaignRun, error) {
	return u.runs.ListRuns(ctx, specID)
}

func (u *CampaignUseCase) GetArtifact(ctx context.Context, runID string, stage domain.Stage) (*domain.PipelineArtifact, error) {
	return u.pipeline.GetArtifact(ctx, runID, stage)
}

// DeleteRun removes a run with its artifacts, resources and metrics. Remote
// resources are not touched.
func (u *CampaignUseCase) DeleteRun(ctx context.Context, id string) error {
	return u.runs.DeleteRun(ctx, id)
}

func trimAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}
