package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/telemetry"
)

// StepFunc produces the output of one pipeline stage. The value is stored as
// JSON.
type StepFunc func(ctx context.Context) (any, error)

// ArtifactPipeline caches the output of every stage of a run. A cached stage
// is returned as is unless the caller forces regeneration.
type ArtifactPipeline struct {
	repo    port.ArtifactRepository
	logger  *slog.Logger
	metrics *telemetry.Metrics
	group   singleflight.Group
}

func NewArtifactPipeline(repo port.ArtifactRepository, logger *slog.Logger, m *telemetry.Metrics) *ArtifactPipeline {
	return &ArtifactPipeline{repo: repo, logger: logger, metrics: m}
}

// SaveArtifact stores data as the output of stage, bumping its version when
// the stage already has one.
func (p *ArtifactPipeline) SaveArtifact(ctx context.Context, runID string, stage domain.Stage, data any) (*domain.PipelineArtifact, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode %s artifact: %w", stage, err)
	}
	a, err := p.repo.UpsertArtifact(ctx, runID, stage, raw)
	if err != nil {
		return nil, fmt.Errorf("save %s artifact: %w", stage, err)
	}
	return a, nil
}

// GetArtifact returns the cached output of stage or domain.ErrNotFound.
func (p *ArtifactPipeline) GetArtifact(ctx context.Context, runID string, stage domain.Stage) (*domain.PipelineArtifact, error) {
	return p.repo.GetArtifact(ctx, runID, stage)
}

// RunStep returns the cached artifact for stage, or runs gen and stores its
// result when nothing is cached or force is set. Concurrent calls for the
// same run and stage share one execution of gen.
func (p *ArtifactPipeline) RunStep(ctx context.Context, runID string, stage domain.Stage, gen StepFunc, force bool) (*domain.PipelineArtifact, error) {
	if !force {
		a, err := p.repo.GetArtifact(ctx, runID, stage)
		switch {
		case err == nil:
			p.metrics.Step(string(stage), "hit")
			return a, nil
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("load %s artifact: %w", stage, err)
		}
	}

	v, err, shared := p.group.Do(runID+"/"+string(stage), func() (any, error) {
		// A caller that missed the cache may get here after another call
		// already stored the stage.
		if !force {
			a, err := p.repo.GetArtifact(ctx, runID, stage)
			switch {
			case err == nil:
				return a, nil
			case !errors.Is(err, domain.ErrNotFound):
				return nil, fmt.Errorf("load %s artifact: %w", stage, err)
			}
		}
		out, err := gen(ctx)
		if err != nil {
			return nil, err
		}
		return p.SaveArtifact(ctx, runID, stage, out)
	})
	if err != nil {
		p.metrics.Step(string(stage), "failed")
		return nil, err
	}
	p.metrics.Step(string(stage), "generated")

	a := v.(*domain.PipelineArtifact)
	p.logger.Debug("pipeline step complete",
		slog.String("run_id", runID),
		slog.String("stage", string(stage)),
		slog.Int("version", a.Version),
		slog.Bool("shared", shared),
	)
	return a, nil
}

// RunStepAs is RunStep for a stage whose output has type T. The value is
// decoded from the stored artifact, so a cache hit and a fresh run return
// the same thing.
func RunStepAs[T any](ctx context.Context, p *ArtifactPipeline, runID string, stage domain.Stage, gen func(context.Context) (T, error), force bool) (T, error) {
	var out T
	a, err := p.RunStep(ctx, runID, stage, func(ctx context.Context) (any, error) {
		return gen(ctx)
	}, force)
	if err != nil {
		return out, err
	}
	if err = json.Unmarshal(a.Data, &out); err != nil {
		return out, fmt.Errorf("decode %s artifact: %w", stage, err)
	}
	return out, nil
}

// LoadArtifact decodes the cached output of stage. It returns
// domain.ErrArtifactMissing when the stage has not run.
func LoadArtifact[T any](ctx context.Context, p *ArtifactPipeline, runID string, stage domain.Stage) (T, error) {
	var out T
	a, err := p.GetArtifact(ctx, runID, stage)
	if errors.Is(err, domain.ErrNotFound) {
		return out, fmt.Errorf("%s: %w", stage, domain.ErrArtifactMissing)
	}
	if err != nil {
		return out, err
	}
	if err = json.Unmarshal(a.Data, &out); err != nil {
		return out, fmt.Errorf("decode %s artifact: %w", stage, err)
	}
	return out, nil
}
