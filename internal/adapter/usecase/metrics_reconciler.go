package usecase

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

const defaultMetricsWindow = 30

// MetricsReconciler copies campaign performance from the ad platform into
// local storage. Each day is stored once and overwritten on every pull, so
// pulling twice never double counts.
type MetricsReconciler struct {
	platform port.AdPlatform
	runs     port.RunRepository
	store    port.MetricsRepository
	window   int
	logger   *slog.Logger
	now      func() time.Time
}

func NewMetricsReconciler(platform port.AdPlatform, runs port.RunRepository, store port.MetricsRepository, windowDays int, logger *slog.Logger) *MetricsReconciler {
	if windowDays <= 0 {
		windowDays = defaultMetricsWindow
	}
	return &MetricsReconciler{
		platform: platform,
		runs:     runs,
		store:    store,
		window:   windowDays,
		logger:   logger,
		now:      time.Now,
	}
}

// Pull fetches the trailing window for a deployed run, stores it and
// returns the recomputed aggregate.
func (r *MetricsReconciler) Pull(ctx context.Context, runID string) (domain.MetricAggregate, error) {
	run, err := r.runs.GetRun(ctx, runID)
	if err != nil {
		return domain.MetricAggregate{}, err
	}
	return r.pull(ctx, run)
}

func (r *MetricsReconciler) pull(ctx context.Context, run *domain.CampaignRun) (domain.MetricAggregate, error) {
	if !run.Status.Deployed() || run.Resources.CampaignID == "" {
		return domain.MetricAggregate{}, fmt.Errorf("pull metrics for run in status %s: %w", run.Status, domain.ErrInvalidTransition)
	}

	rows, err := r.platform.QueryMetrics(ctx, run.Resources.CampaignID, domain.TrailingDays(r.now(), r.window))
	if err != nil {
		return domain.MetricAggregate{}, fmt.Errorf("query metrics: %w", err)
	}
	snaps := make([]domain.MetricSnapshot, 0, len(rows))
	for _, row := range rows {
		snaps = append(snaps, domain.MetricSnapshot{
			RunID:       run.ID,
			Day:         domain.Day(row.Day),
			Impressions: row.Impressions,
			Clicks:      row.Clicks,
			Conversions: row.Conversions,
			Cost:        row.Cost,
			Source:      domain.SourcePlatform,
		})
	}

	agg, err := r.save(ctx, run.ID, snaps)
	if err != nil {
		return domain.MetricAggregate{}, err
	}

	// The campaign is created paused; impressions mean someone enabled it.
	if run.Status == domain.RunDeployed && agg.Impressions > 0 {
		if err = r.runs.TransitionStatus(ctx, run.ID, domain.RunDeployed, domain.RunActive, ""); err != nil {
			r.logger.Warn("mark run active", slog.String("run_id", run.ID), slog.Any("error", err))
		}
	}
	return agg, nil
}

// Synthesize stores plausible metrics for the last days days. Values depend
// only on the run and the day, so regenerating a day yields the same row.
func (r *MetricsReconciler) Synthesize(ctx context.Context, runID string, days int) (domain.MetricAggregate, error) {
	if days <= 0 {
		days = r.window
	}
	rng := domain.TrailingDays(r.now(), days)
	snaps := make([]domain.MetricSnapshot, 0, days)
	for d := rng.From; !d.After(rng.To); d = d.AddDate(0, 0, 1) {
		snaps = append(snaps, syntheticDay(runID, d))
	}
	return r.save(ctx, runID, snaps)
}

// Refresh returns current metrics for a run. Without a configured platform
// the metrics are synthesized. A failed pull is logged and the last stored
// aggregate is returned instead.
func (r *MetricsReconciler) Refresh(ctx context.Context, runID string) (*domain.MetricAggregate, error) {
	run, err := r.runs.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}

	if !r.platform.IsConfigured() {
		agg, err := r.Synthesize(ctx, runID, r.window)
		if err != nil {
			return nil, err
		}
		return &agg, nil
	}

	if run.Status.Deployed() && run.Resources.CampaignID != "" {
		agg, err := r.pull(ctx, run)
		if err == nil {
			return &agg, nil
		}
		r.logger.Warn("metrics pull failed, serving cached aggregate", slog.String("run_id", runID), slog.Any("error", err))
	}
	return r.cached(ctx, runID)
}

func (r *MetricsReconciler) cached(ctx context.Context, runID string) (*domain.MetricAggregate, error) {
	agg, err := r.store.GetAggregate(ctx, runID)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.MetricAggregate{RunID: runID}, nil
	}
	return agg, err
}

func (r *MetricsReconciler) save(ctx context.Context, runID string, snaps []domain.MetricSnapshot) (domain.MetricAggregate, error) {
	if len(snaps) > 0 {
		if err := r.store.UpsertSnapshots(ctx, snaps); err != nil {
			return domain.MetricAggregate{}, fmt.Errorf("store snapshots: %w", err)
		}
	}
	all, err := r.store.ListSnapshots(ctx, runID)
	if err != nil {
		return domain.MetricAggregate{}, fmt.Errorf("load snapshots: %w", err)
	}
	agg := domain.Aggregate(runID, all)
	agg.UpdatedAt = r.now().UTC()
	if err = r.store.SaveAggregate(ctx, agg); err != nil {
		return domain.MetricAggregate{}, fmt.Errorf("store aggregate: %w", err)
	}
	return agg, nil
}

// syntheticDay draws CTR from 1-6%, CVR from 0-10% and CPC from $0.50-$2.50.
func syntheticDay(runID string, day time.Time) domain.MetricSnapshot {
	h := fnv.New64a()
	h.Write([]byte(runID))
	h.Write([]byte(day.Format(time.DateOnly)))
	seed := h.Sum64()
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	impressions := int64(200 + rng.IntN(1800))
	ctr := 0.01 + rng.Float64()*0.05
	clicks := int64(math.Round(float64(impressions) * ctr))
	cvr := rng.Float64() * 0.10
	cpc := 0.50 + rng.Float64()*2.00

	return domain.MetricSnapshot{
		RunID:       runID,
		Day:         day,
		Impressions: impressions,
		Clicks:      clicks,
		Conversions: math.Round(float64(clicks) * cvr),
		Cost:        math.Round(float64(clicks)*cpc*100) / 100,
		Source:      domain.SourceSynthetic,
	}
}
