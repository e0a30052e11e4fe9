package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/telemetry"
)

const (
	stepBudget       = "create budget"
	stepCampaign     = "create campaign"
	stepGeo          = "create geo criterion"
	stepAdGroup      = "create ad group"
	stepKeywords     = "create keywords"
	stepNegatives    = "create negative keywords"
	stepResponsiveAd = "create responsive ad"

	mockPrefix = "mock-"

	// syncSteps is the number of platform calls a live sync can make. The
	// sync lease covers one step timeout per call plus one spare.
	syncSteps = 7
)

// SyncConfig tunes the platform sync.
type SyncConfig struct {
	// StepTimeout bounds every platform call. A timeout aborts the sync.
	StepTimeout time.Duration
	// CPCBid is the ad group max CPC in account currency.
	CPCBid float64
}

// AdPlatformSync pushes a validated run to the ad platform. The platform
// cannot roll back, so every created resource is recorded on the run as
// soon as it exists and a failed sync leaves those records for the
// operator. Campaigns are always created paused.
//
// A live sync holds a lease on the run for its whole duration, so two
// processes never push the same run at once. Concurrent live syncs of one
// run within a process share a single execution.
type AdPlatformSync struct {
	platform port.AdPlatform
	runs     port.RunRepository
	pipeline *ArtifactPipeline
	cfg      SyncConfig
	logger   *slog.Logger
	metrics  *telemetry.Metrics
	inflight singleflight.Group
}

func NewAdPlatformSync(platform port.AdPlatform, runs port.RunRepository, pipeline *ArtifactPipeline, cfg SyncConfig, logger *slog.Logger, m *telemetry.Metrics) *AdPlatformSync {
	if cfg.StepTimeout <= 0 {
		cfg.StepTimeout = 20 * time.Second
	}
	if cfg.CPCBid <= 0 {
		cfg.CPCBid = 2.5
	}
	return &AdPlatformSync{platform: platform, runs: runs, pipeline: pipeline, cfg: cfg, logger: logger, metrics: m}
}

// Sync pushes the run's cached ad plan. A dry run calls nothing and returns
// placeholder references. Syncing a run that is already deployed returns
// the recorded references without calling the platform.
func (s *AdPlatformSync) Sync(ctx context.Context, runID string, dryRun bool) (*port.SyncResult, error) {
	if dryRun {
		return s.sync(ctx, runID, true)
	}
	v, err, _ := s.inflight.Do(runID, func() (any, error) {
		return s.sync(ctx, runID, false)
	})
	if err != nil {
		return nil, err
	}
	return v.(*port.SyncResult), nil
}

func (s *AdPlatformSync) sync(ctx context.Context, runID string, dryRun bool) (*port.SyncResult, error) {
	run, err := s.runs.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if res, done, err := deployed(run, dryRun); done {
		return res, err
	}
	if dryRun {
		_, plan, err := s.load(ctx, run)
		if err != nil {
			return nil, err
		}
		return s.dryRun(ctx, run, plan)
	}

	if !s.platform.IsConfigured() {
		return nil, &domain.ConfigurationError{Component: "ad platform", Missing: s.platform.MissingSettings()}
	}
	if err = s.runs.ClaimSync(ctx, runID, s.cfg.StepTimeout*(syncSteps+1)); err != nil {
		return nil, err
	}
	defer func() {
		if e := s.runs.ReleaseSync(context.WithoutCancel(ctx), runID); e != nil {
			s.logger.Error("release sync lease", slog.String("run_id", runID), slog.Any("error", e))
		}
	}()

	// Another sync may have finished or recorded resources between the first
	// read and the claim.
	if run, err = s.runs.GetRun(ctx, runID); err != nil {
		return nil, err
	}
	if res, done, err := deployed(run, false); done {
		return res, err
	}
	spec, plan, err := s.load(ctx, run)
	if err != nil {
		return nil, err
	}
	return s.live(ctx, run, spec, plan)
}

// deployed handles runs that already reached the platform. done is false
// when the caller should go on syncing.
func deployed(run *domain.CampaignRun, dryRun bool) (res *port.SyncResult, done bool, err error) {
	if !run.Status.Deployed() {
		return nil, false, nil
	}
	if dryRun {
		return nil, true, fmt.Errorf("dry run of run in status %s: %w", run.Status, domain.ErrInvalidTransition)
	}
	if run.Resources.Complete() {
		return &port.SyncResult{RunID: run.ID, Status: run.Status, Resources: run.Resources}, true, nil
	}
	return nil, false, nil
}

// load checks the run can be synced and returns its spec and ad plan.
func (s *AdPlatformSync) load(ctx context.Context, run *domain.CampaignRun) (domain.CampaignSpec, domain.AdPlan, error) {
	if run.Status != domain.RunValidated && run.Status != domain.RunReady {
		return domain.CampaignSpec{}, domain.AdPlan{}, fmt.Errorf("sync run in status %s: %w", run.Status, domain.ErrInvalidTransition)
	}
	spec, err := LoadArtifact[domain.CampaignSpec](ctx, s.pipeline, run.ID, domain.StageCampaignSpec)
	if err != nil {
		return domain.CampaignSpec{}, domain.AdPlan{}, err
	}
	plan, err := LoadArtifact[domain.AdPlan](ctx, s.pipeline, run.ID, domain.StageAdPlan)
	if err != nil {
		return domain.CampaignSpec{}, domain.AdPlan{}, err
	}
	if _, err = s.pipeline.GetArtifact(ctx, run.ID, domain.StageLandingPage); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.CampaignSpec{}, domain.AdPlan{}, fmt.Errorf("%s: %w", domain.StageLandingPage, domain.ErrArtifactMissing)
		}
		return domain.CampaignSpec{}, domain.AdPlan{}, err
	}
	return spec, plan, nil
}

func (s *AdPlatformSync) dryRun(ctx context.Context, run *domain.CampaignRun, plan domain.AdPlan) (*port.SyncResult, error) {
	short := shortID(run.ID)
	res := domain.ExternalResources{
		BudgetID:       mockPrefix + "budget-" + short,
		CampaignID:     mockPrefix + "campaign-" + short,
		GeoCriterionID: mockPrefix + "geo-" + short,
		AdGroupID:      mockPrefix + "adgroup-" + short,
		AdID:           mockPrefix + "ad-" + short,
	}
	if err := s.runs.TransitionStatus(ctx, run.ID, run.Status, domain.RunReady, ""); err != nil {
		return nil, err
	}
	s.metrics.Sync(true, "ok")
	s.logger.Info("dry run sync complete", slog.String("run_id", run.ID), slog.Int("keywords", len(plan.Keywords)))
	return &port.SyncResult{
		RunID:     run.ID,
		DryRun:    true,
		Status:    domain.RunReady,
		Resources: res,
		Keywords:  len(plan.Keywords),
		Negatives: len(plan.NegativeKeywords),
	}, nil
}

func (s *AdPlatformSync) live(ctx context.Context, run *domain.CampaignRun, spec domain.CampaignSpec, plan domain.AdPlan) (*port.SyncResult, error) {
	// References left by an earlier failed sync are reused rather than
	// created twice.
	res := run.Resources
	result := &port.SyncResult{RunID: run.ID}
	name := fmt.Sprintf("%s %s", spec.Slug, shortID(run.ID))

	if res.BudgetID == "" {
		id, err := s.create(ctx, run, domain.ResourceBudget, stepBudget, func(ctx context.Context) (string, error) {
			return s.platform.CreateBudget(ctx, port.BudgetInput{Name: name, AmountMicros: micros(spec.BudgetDaily)})
		})
		if err != nil {
			return nil, err
		}
		res.BudgetID = id
	}

	if res.CampaignID == "" {
		id, err := s.create(ctx, run, domain.ResourceCampaign, stepCampaign, func(ctx context.Context) (string, error) {
			return s.platform.CreateCampaign(ctx, port.CampaignInput{
				Name:            name,
				BudgetID:        res.BudgetID,
				Status:          port.CampaignPaused,
				TargetCPAMicros: micros(spec.TargetCPA),
			})
		})
		if err != nil {
			return nil, err
		}
		res.CampaignID = id
	}

	if res.GeoCriterionID == "" && spec.Geo != "" {
		id, err := s.create(ctx, run, domain.ResourceGeoCriterion, stepGeo, func(ctx context.Context) (string, error) {
			return s.platform.CreateGeoCriterion(ctx, res.CampaignID, spec.Geo)
		})
		if err != nil {
			s.logger.Warn("geo targeting skipped", slog.String("run_id", run.ID), slog.Any("error", err))
			result.Warnings = append(result.Warnings, err.Error())
		} else {
			res.GeoCriterionID = id
		}
	}

	if res.AdGroupID == "" {
		id, err := s.create(ctx, run, domain.ResourceAdGroup, stepAdGroup, func(ctx context.Context) (string, error) {
			return s.platform.CreateAdGroup(ctx, port.AdGroupInput{Name: name, CampaignID: res.CampaignID, CPCBidMicros: micros(s.cfg.CPCBid)})
		})
		if err != nil {
			return nil, err
		}
		res.AdGroupID = id
	}

	// Bulk steps record their first criterion, so a resync after a later
	// failure does not send the same criteria twice.
	result.Keywords = len(plan.Keywords)
	result.Negatives = len(plan.NegativeKeywords)
	g, gctx := errgroup.WithContext(ctx)
	if res.KeywordsRef == "" && len(plan.Keywords) > 0 {
		g.Go(func() error {
			ref, err := s.bulk(gctx, run, domain.ResourceKeywords, stepKeywords, func(ctx context.Context) ([]string, error) {
				return s.platform.CreateKeywords(ctx, res.AdGroupID, plan.Keywords)
			})
			res.KeywordsRef = ref
			return err
		})
	}
	if res.NegativesRef == "" && len(plan.NegativeKeywords) > 0 {
		g.Go(func() error {
			ref, err := s.bulk(gctx, run, domain.ResourceNegativeKeywords, stepNegatives, func(ctx context.Context) ([]string, error) {
				return s.platform.CreateNegativeKeywords(ctx, res.CampaignID, plan.NegativeKeywords)
			})
			res.NegativesRef = ref
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, s.fail(ctx, run, err)
	}

	id, err := s.create(ctx, run, domain.ResourceAd, stepResponsiveAd, func(ctx context.Context) (string, error) {
		return s.platform.CreateResponsiveAd(ctx, port.ResponsiveAdInput{
			AdGroupID:    res.AdGroupID,
			Headlines:    truncateAll(plan.Headlines, domain.MaxHeadlineLen),
			Descriptions: truncateAll(plan.Descriptions, domain.MaxDescriptionLen),
			FinalURL:     plan.FinalURL,
		})
	})
	if err != nil {
		return nil, err
	}
	res.AdID = id

	if err = s.runs.TransitionStatus(ctx, run.ID, run.Status, domain.RunDeployed, ""); err != nil {
		return nil, err
	}
	s.metrics.Sync(false, "ok")
	s.logger.Info("campaign deployed paused",
		slog.String("run_id", run.ID),
		slog.String("campaign_id", res.CampaignID),
		slog.Int("keywords", result.Keywords),
	)

	result.Status = domain.RunDeployed
	result.Resources = res
	return result, nil
}

// create runs one platform call under the step timeout and records the
// returned reference on the run. Geo failures are left to the caller.
func (s *AdPlatformSync) create(ctx context.Context, run *domain.CampaignRun, kind domain.ResourceKind, step string, call func(context.Context) (string, error)) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, s.cfg.StepTimeout)
	id, err := call(cctx)
	cancel()
	if err != nil {
		if kind == domain.ResourceGeoCriterion {
			return "", err
		}
		return "", s.fail(ctx, run, syncError(step, err))
	}
	if err = s.record(ctx, run, kind, step, id); err != nil {
		return "", s.fail(ctx, run, err)
	}
	return id, nil
}

// bulk creates a batch of criteria and records the first returned ref. The
// error is left for the errgroup caller to report.
func (s *AdPlatformSync) bulk(ctx context.Context, run *domain.CampaignRun, kind domain.ResourceKind, step string, call func(context.Context) ([]string, error)) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, s.cfg.StepTimeout)
	ids, err := call(cctx)
	cancel()
	if err != nil {
		return "", syncError(step, err)
	}
	if len(ids) == 0 {
		return "", nil
	}
	if err = s.record(ctx, run, kind, step, ids[0]); err != nil {
		return "", err
	}
	return ids[0], nil
}

func (s *AdPlatformSync) record(ctx context.Context, run *domain.CampaignRun, kind domain.ResourceKind, step, ref string) error {
	if err := s.runs.SaveExternalResource(ctx, run.ID, kind, ref); err != nil {
		// The resource exists remotely but we lost track of it.
		s.logger.Error("record external resource",
			slog.String("run_id", run.ID),
			slog.String("kind", string(kind)),
			slog.String("ref", ref),
			slog.Any("error", err),
		)
		return syncError(step, err)
	}
	return nil
}

// fail records err as the run's last error. The status is left alone.
func (s *AdPlatformSync) fail(ctx context.Context, run *domain.CampaignRun, err error) error {
	s.metrics.Sync(false, "failed")
	if e := s.runs.SetLastError(context.WithoutCancel(ctx), run.ID, err.Error()); e != nil {
		s.logger.Error("record sync error", slog.String("run_id", run.ID), slog.Any("error", e))
	}
	s.logger.Warn("sync aborted", slog.String("run_id", run.ID), slog.Any("error", err))
	return err
}

func syncError(step string, err error) *domain.SyncError {
	se := &domain.SyncError{Step: step, Err: err}
	var pe *port.PlatformError
	switch {
	case errors.As(err, &pe):
		se.Messages = pe.Messages
	case errors.Is(err, context.DeadlineExceeded):
		se.Messages = []string{"timed out"}
	default:
		se.Messages = []string{err.Error()}
	}
	return se
}

func truncateAll(items []string, limit int) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = truncate(it, limit)
	}
	return out
}

// truncate cuts s to at most limit runes.
func truncate(s string, limit int) string {
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}

func micros(v float64) int64 {
	return int64(math.Round(v * 1e6))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
