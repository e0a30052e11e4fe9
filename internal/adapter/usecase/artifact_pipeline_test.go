package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port/mocks"
)

// TestRunStepCacheHit ensures a cached stage is returned without running
// the generator.
func TestRunStepCacheHit(t *testing.T) {
	repo := mocks.NewMockArtifactRepository(t)
	cached := &domain.PipelineArtifact{RunID: "r1", Stage: domain.StageAdPlan, Data: []byte(`{"finalUrl":"x"}`), Version: 3}
	repo.EXPECT().GetArtifact(mock.Anything, "r1", domain.StageAdPlan).Return(cached, nil)

	p := NewArtifactPipeline(repo, discardLogger(), nil)
	got, err := p.RunStep(context.Background(), "r1", domain.StageAdPlan, func(context.Context) (any, error) {
		t.Fatal("generator must not run on a cache hit")
		return nil, nil
	}, false)

	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

// TestRunStepRechecksCacheBeforeGenerating covers a caller that missed the
// cache while another call was storing the stage.
func TestRunStepRechecksCacheBeforeGenerating(t *testing.T) {
	repo := mocks.NewMockArtifactRepository(t)
	stored := &domain.PipelineArtifact{RunID: "r1", Stage: domain.StageAdPlan, Data: []byte(`{"n":1}`), Version: 1}
	repo.EXPECT().GetArtifact(mock.Anything, "r1", domain.StageAdPlan).Return(nil, domain.ErrNotFound).Once()
	repo.EXPECT().GetArtifact(mock.Anything, "r1", domain.StageAdPlan).Return(stored, nil).Once()

	p := NewArtifactPipeline(repo, discardLogger(), nil)
	got, err := p.RunStep(context.Background(), "r1", domain.StageAdPlan, func(context.Context) (any, error) {
		t.Fatal("generator must not run once the stage is stored")
		return nil, nil
	}, false)

	require.NoError(t, err)
	assert.Equal(t, 1, got.Version)
	repo.AssertNotCalled(t, "UpsertArtifact", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRunStepMissAndForce(t *testing.T) {
	p := NewArtifactPipeline(newMemArtifacts(), discardLogger(), nil)
	ctx := context.Background()
	calls := 0
	gen := func(context.Context) (any, error) {
		calls++
		return map[string]int{"n": calls}, nil
	}

	a, err := p.RunStep(ctx, "r1", domain.StageAdPlan, gen, false)
	require.NoError(t, err)
	assert.Equal(t, 1, a.Version)
	assert.JSONEq(t, `{"n":1}`, string(a.Data))

	a, err = p.RunStep(ctx, "r1", domain.StageAdPlan, gen, false)
	require.NoError(t, err)
	assert.Equal(t, 1, a.Version)
	assert.Equal(t, 1, calls)

	a, err = p.RunStep(ctx, "r1", domain.StageAdPlan, gen, true)
	require.NoError(t, err)
	assert.Equal(t, 2, a.Version)
	assert.JSONEq(t, `{"n":2}`, string(a.Data))
	assert.Equal(t, 2, calls)
}

func TestRunStepGeneratorErrorIsNotCached(t *testing.T) {
	p := NewArtifactPipeline(newMemArtifacts(), discardLogger(), nil)
	boom := errors.New("boom")

	_, err := p.RunStep(context.Background(), "r1", domain.StageLandingPage, func(context.Context) (any, error) {
		return nil, boom
	}, false)
	require.ErrorIs(t, err, boom)

	_, err = p.GetArtifact(context.Background(), "r1", domain.StageLandingPage)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestRunStepCollapsesConcurrentCalls ensures concurrent requests for the
// same stage run the generator once.
func TestRunStepCollapsesConcurrentCalls(t *testing.T) {
	p := NewArtifactPipeline(newMemArtifacts(), discardLogger(), nil)

	var calls atomic.Int32
	release := make(chan struct{})
	gen := func(context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "done", nil
	}

	const n = 8
	var wg sync.WaitGroup
	versions := make([]int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a, err := p.RunStep(context.Background(), "r1", domain.StageAdPlan, gen, true)
			if err == nil {
				versions[i] = a.Version
			}
		}(i)
	}
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, v := range versions {
		assert.Equal(t, 1, v)
	}
}

func TestRunStepAsDecodes(t *testing.T) {
	p := NewArtifactPipeline(newMemArtifacts(), discardLogger(), nil)
	ctx := context.Background()

	plan, err := RunStepAs(ctx, p, "r1", domain.StageAdPlan, func(context.Context) (domain.AdPlan, error) {
		return domain.AdPlan{FinalURL: "https://example.com/lp/a", Headlines: []string{"A", "B", "C"}}, nil
	}, false)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/lp/a", plan.FinalURL)

	loaded, err := LoadArtifact[domain.AdPlan](ctx, p, "r1", domain.StageAdPlan)
	require.NoError(t, err)
	assert.Equal(t, plan, loaded)

	_, err = LoadArtifact[domain.LandingPageSpec](ctx, p, "r1", domain.StageLandingPage)
	assert.ErrorIs(t, err, domain.ErrArtifactMissing)
}
