package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
)

type syncFixture struct {
	runs     *mocks.MockRunRepository
	platform *mocks.MockAdPlatform
	sync     *AdPlatformSync
	run      *domain.CampaignRun
	plan     domain.AdPlan

	mu    sync.Mutex
	calls []string
}

func newSyncFixture(t *testing.T, status domain.RunStatus) *syncFixture {
	f := &syncFixture{
		runs:     mocks.NewMockRunRepository(t),
		platform: mocks.NewMockAdPlatform(t),
		run:      &domain.CampaignRun{ID: "0123456789abcdef", SpecID: "spec-1", Status: status},
		plan: domain.AdPlan{
			Headlines:        []string{"Direct Primary Care", strings.Repeat("h", 35), "Book a Visit Today"},
			Descriptions:     []string{strings.Repeat("d", 95), "Membership is not insurance."},
			Keywords:         []domain.Keyword{{Text: "family doctor", MatchType: domain.MatchPhrase}},
			NegativeKeywords: []string{"free", "jobs"},
			FinalURL:         "https://example.com/lp/busy-parents",
		},
	}

	arts := newMemArtifacts()
	ctx := context.Background()
	spec := domain.CampaignSpec{ID: "spec-1", Slug: "busy-parents", BudgetDaily: 50, TargetCPA: 75, Geo: "US"}
	_, _ = arts.UpsertArtifact(ctx, f.run.ID, domain.StageCampaignSpec, mustJSON(t, spec))
	_, _ = arts.UpsertArtifact(ctx, f.run.ID, domain.StageAdPlan, mustJSON(t, f.plan))
	_, _ = arts.UpsertArtifact(ctx, f.run.ID, domain.StageLandingPage, mustJSON(t, domain.LandingPageSpec{}))

	f.sync = NewAdPlatformSync(f.platform, f.runs, NewArtifactPipeline(arts, discardLogger(), nil), SyncConfig{}, discardLogger(), nil)
	f.runs.EXPECT().GetRun(mock.Anything, f.run.ID).Return(f.run, nil)
	return f
}

func (f *syncFixture) record(step string) {
	f.mu.Lock()
	f.calls = append(f.calls, step)
	f.mu.Unlock()
}

func (f *syncFixture) expectCreated(kinds ...domain.ResourceKind) {
	for _, k := range kinds {
		f.runs.EXPECT().SaveExternalResource(mock.Anything, f.run.ID, k, mock.AnythingOfType("string")).Return(nil).Once()
	}
}

// expectLease expects one live sync to take and drop the run lease.
func (f *syncFixture) expectLease() {
	f.runs.EXPECT().ClaimSync(mock.Anything, f.run.ID, time.Duration(syncSteps+1)*20*time.Second).Return(nil).Once()
	f.runs.EXPECT().ReleaseSync(mock.Anything, f.run.ID).Return(nil).Once()
}

// TestDryRunSyncMakesNoPlatformCalls ensures a dry run only moves the run
// to READY and returns placeholders.
func TestDryRunSyncMakesNoPlatformCalls(t *testing.T) {
	f := newSyncFixture(t, domain.RunValidated)
	f.runs.EXPECT().TransitionStatus(mock.Anything, f.run.ID, domain.RunValidated, domain.RunReady, "").Return(nil)

	res, err := f.sync.Sync(context.Background(), f.run.ID, true)
	require.NoError(t, err)

	assert.True(t, res.DryRun)
	assert.Equal(t, domain.RunReady, res.Status)
	for _, ref := range []string{res.Resources.BudgetID, res.Resources.CampaignID, res.Resources.AdGroupID, res.Resources.AdID} {
		assert.True(t, strings.HasPrefix(ref, "mock-"), ref)
	}
	assert.Equal(t, 1, res.Keywords)
	assert.Equal(t, 2, res.Negatives)
}

func TestLiveSyncCreatesResourcesInOrder(t *testing.T) {
	f := newSyncFixture(t, domain.RunReady)
	f.platform.EXPECT().IsConfigured().Return(true)
	f.expectLease()
	f.expectCreated(domain.ResourceBudget, domain.ResourceCampaign, domain.ResourceGeoCriterion, domain.ResourceAdGroup,
		domain.ResourceKeywords, domain.ResourceNegativeKeywords, domain.ResourceAd)

	f.platform.EXPECT().CreateBudget(mock.Anything, port.BudgetInput{Name: "busy-parents 01234567", AmountMicros: 50_000_000}).
		RunAndReturn(func(context.Context, port.BudgetInput) (string, error) { f.record("budget"); return "b/1", nil })
	f.platform.EXPECT().CreateCampaign(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, in port.CampaignInput) (string, error) {
			f.record("campaign")
			assert.Equal(t, port.CampaignPaused, in.Status)
			assert.Equal(t, "b/1", in.BudgetID)
			assert.Equal(t, int64(75_000_000), in.TargetCPAMicros)
			return "c/1", nil
		})
	f.platform.EXPECT().CreateGeoCriterion(mock.Anything, "c/1", "US").
		RunAndReturn(func(context.Context, string, string) (string, error) { f.record("geo"); return "g/1", nil })
	f.platform.EXPECT().CreateAdGroup(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, in port.AdGroupInput) (string, error) {
			f.record("ad_group")
			assert.Equal(t, "c/1", in.CampaignID)
			return "ag/1", nil
		})
	f.platform.EXPECT().CreateKeywords(mock.Anything, "ag/1", f.plan.Keywords).
		RunAndReturn(func(context.Context, string, []domain.Keyword) ([]string, error) { f.record("keywords"); return []string{"k/1"}, nil })
	f.platform.EXPECT().CreateNegativeKeywords(mock.Anything, "c/1", f.plan.NegativeKeywords).
		RunAndReturn(func(context.Context, string, []string) ([]string, error) {
			f.record("negatives")
			return []string{"n/1", "n/2"}, nil
		})
	f.platform.EXPECT().CreateResponsiveAd(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, in port.ResponsiveAdInput) (string, error) {
			f.record("ad")
			for _, h := range in.Headlines {
				assert.LessOrEqual(t, len([]rune(h)), domain.MaxHeadlineLen)
			}
			for _, d := range in.Descriptions {
				assert.LessOrEqual(t, len([]rune(d)), domain.MaxDescriptionLen)
			}
			assert.Equal(t, f.plan.FinalURL, in.FinalURL)
			return "ad/1", nil
		})
	f.runs.EXPECT().TransitionStatus(mock.Anything, f.run.ID, domain.RunReady, domain.RunDeployed, "").Return(nil)

	res, err := f.sync.Sync(context.Background(), f.run.ID, false)
	require.NoError(t, err)

	assert.Equal(t, domain.RunDeployed, res.Status)
	assert.Equal(t, domain.ExternalResources{
		BudgetID: "b/1", CampaignID: "c/1", GeoCriterionID: "g/1", AdGroupID: "ag/1", AdID: "ad/1",
		KeywordsRef: "k/1", NegativesRef: "n/1",
	}, res.Resources)
	assert.Equal(t, 1, res.Keywords)
	assert.Equal(t, 2, res.Negatives)

	require.Len(t, f.calls, 7)
	assert.Equal(t, []string{"budget", "campaign", "geo", "ad_group"}, f.calls[:4])
	assert.ElementsMatch(t, []string{"keywords", "negatives"}, f.calls[4:6])
	assert.Equal(t, "ad", f.calls[6])
}

func TestLiveSyncGeoFailureIsNotFatal(t *testing.T) {
	f := newSyncFixture(t, domain.RunValidated)
	f.platform.EXPECT().IsConfigured().Return(true)
	f.expectLease()
	f.expectCreated(domain.ResourceBudget, domain.ResourceCampaign, domain.ResourceAdGroup,
		domain.ResourceKeywords, domain.ResourceNegativeKeywords, domain.ResourceAd)

	f.platform.EXPECT().CreateBudget(mock.Anything, mock.Anything).Return("b/1", nil)
	f.platform.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return("c/1", nil)
	f.platform.EXPECT().CreateGeoCriterion(mock.Anything, "c/1", "US").
		Return("", &port.PlatformError{StatusCode: 400, Messages: []string{"unknown location"}})
	f.platform.EXPECT().CreateAdGroup(mock.Anything, mock.Anything).Return("ag/1", nil)
	f.platform.EXPECT().CreateKeywords(mock.Anything, "ag/1", mock.Anything).Return([]string{"k/1"}, nil)
	f.platform.EXPECT().CreateNegativeKeywords(mock.Anything, "c/1", mock.Anything).Return([]string{"n/1"}, nil)
	f.platform.EXPECT().CreateResponsiveAd(mock.Anything, mock.Anything).Return("ad/1", nil)
	f.runs.EXPECT().TransitionStatus(mock.Anything, f.run.ID, domain.RunValidated, domain.RunDeployed, "").Return(nil)

	res, err := f.sync.Sync(context.Background(), f.run.ID, false)
	require.NoError(t, err)
	assert.Empty(t, res.Resources.GeoCriterionID)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "unknown location")
}

// TestLiveSyncFailureKeepsCreatedResources ensures a mid-sync failure
// records what was created, reports the platform messages and leaves the
// status alone.
func TestLiveSyncFailureKeepsCreatedResources(t *testing.T) {
	f := newSyncFixture(t, domain.RunReady)
	f.platform.EXPECT().IsConfigured().Return(true)
	f.expectLease()
	f.expectCreated(domain.ResourceBudget, domain.ResourceCampaign, domain.ResourceGeoCriterion)

	f.platform.EXPECT().CreateBudget(mock.Anything, mock.Anything).Return("b/1", nil)
	f.platform.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return("c/1", nil)
	f.platform.EXPECT().CreateGeoCriterion(mock.Anything, "c/1", "US").Return("g/1", nil)
	f.platform.EXPECT().CreateAdGroup(mock.Anything, mock.Anything).
		Return("", &port.PlatformError{StatusCode: 400, Messages: []string{"bid too low", "name too long"}})
	f.runs.EXPECT().SetLastError(mock.Anything, f.run.ID, mock.MatchedBy(func(msg string) bool {
		return strings.Contains(msg, "create ad group") && strings.Contains(msg, "bid too low")
	})).Return(nil)

	_, err := f.sync.Sync(context.Background(), f.run.ID, false)

	var se *domain.SyncError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "create ad group", se.Step)
	assert.Equal(t, []string{"bid too low", "name too long"}, se.Messages)
	f.runs.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLiveSyncKeywordFailureAborts(t *testing.T) {
	f := newSyncFixture(t, domain.RunReady)
	f.run.Resources = domain.ExternalResources{BudgetID: "b/1", CampaignID: "c/1", GeoCriterionID: "g/1", AdGroupID: "ag/1"}
	f.platform.EXPECT().IsConfigured().Return(true)
	f.expectLease()

	f.platform.EXPECT().CreateKeywords(mock.Anything, "ag/1", mock.Anything).Return(nil, errors.New("quota exceeded"))
	f.platform.EXPECT().CreateNegativeKeywords(mock.Anything, "c/1", mock.Anything).Return([]string{"n/1"}, nil).Maybe()
	f.runs.EXPECT().SaveExternalResource(mock.Anything, f.run.ID, domain.ResourceNegativeKeywords, "n/1").Return(nil).Maybe()
	f.runs.EXPECT().SetLastError(mock.Anything, f.run.ID, mock.Anything).Return(nil)

	_, err := f.sync.Sync(context.Background(), f.run.ID, false)

	var se *domain.SyncError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "create keywords", se.Step)
	assert.Equal(t, []string{"quota exceeded"}, se.Messages)
}

func TestSyncAlreadyDeployedIsIdempotent(t *testing.T) {
	f := newSyncFixture(t, domain.RunDeployed)
	f.run.Resources = domain.ExternalResources{BudgetID: "b/1", CampaignID: "c/1", AdGroupID: "ag/1", AdID: "ad/1"}

	res, err := f.sync.Sync(context.Background(), f.run.ID, false)
	require.NoError(t, err)
	assert.Equal(t, f.run.Resources, res.Resources)
	assert.Equal(t, domain.RunDeployed, res.Status)
}

// TestResyncAfterAdFailureSkipsCreatedSteps ensures a second sync after a
// failed ad step sends neither the keywords nor the negatives again.
func TestResyncAfterAdFailureSkipsCreatedSteps(t *testing.T) {
	f := newSyncFixture(t, domain.RunReady)
	f.platform.EXPECT().IsConfigured().Return(true)
	f.runs.EXPECT().ClaimSync(mock.Anything, f.run.ID, mock.Anything).Return(nil).Twice()
	f.runs.EXPECT().ReleaseSync(mock.Anything, f.run.ID).Return(nil).Twice()

	var (
		mu       sync.Mutex
		recorded domain.ExternalResources
	)
	f.runs.EXPECT().SaveExternalResource(mock.Anything, f.run.ID, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, kind domain.ResourceKind, ref string) error {
			mu.Lock()
			defer mu.Unlock()
			recorded.Set(kind, ref)
			return nil
		})

	f.platform.EXPECT().CreateBudget(mock.Anything, mock.Anything).Return("b/1", nil).Once()
	f.platform.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return("c/1", nil).Once()
	f.platform.EXPECT().CreateGeoCriterion(mock.Anything, "c/1", "US").Return("g/1", nil).Once()
	f.platform.EXPECT().CreateAdGroup(mock.Anything, mock.Anything).Return("ag/1", nil).Once()
	f.platform.EXPECT().CreateKeywords(mock.Anything, "ag/1", mock.Anything).Return([]string{"k/1"}, nil).Once()
	f.platform.EXPECT().CreateNegativeKeywords(mock.Anything, "c/1", mock.Anything).Return([]string{"n/1", "n/2"}, nil).Once()
	f.platform.EXPECT().CreateResponsiveAd(mock.Anything, mock.Anything).
		Return("", &port.PlatformError{StatusCode: 400, Messages: []string{"ad disapproved"}}).Once()
	f.platform.EXPECT().CreateResponsiveAd(mock.Anything, mock.Anything).Return("ad/1", nil).Once()
	f.runs.EXPECT().SetLastError(mock.Anything, f.run.ID, mock.Anything).Return(nil).Once()
	f.runs.EXPECT().TransitionStatus(mock.Anything, f.run.ID, domain.RunReady, domain.RunDeployed, "").Return(nil).Once()

	_, err := f.sync.Sync(context.Background(), f.run.ID, false)
	var se *domain.SyncError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "create responsive ad", se.Step)

	f.run.Resources = recorded
	res, err := f.sync.Sync(context.Background(), f.run.ID, false)
	require.NoError(t, err)
	assert.Equal(t, domain.ExternalResources{
		BudgetID: "b/1", CampaignID: "c/1", GeoCriterionID: "g/1", AdGroupID: "ag/1", AdID: "ad/1",
		KeywordsRef: "k/1", NegativesRef: "n/1",
	}, res.Resources)
	assert.Equal(t, 1, res.Keywords)
	assert.Equal(t, 2, res.Negatives)
}

// TestConcurrentLiveSyncsCreateResourcesOnce ensures two live syncs of one
// run never both reach the platform.
func TestConcurrentLiveSyncsCreateResourcesOnce(t *testing.T) {
	f := newSyncFixture(t, domain.RunReady)
	f.platform.EXPECT().IsConfigured().Return(true)

	var claimed atomic.Bool
	f.runs.EXPECT().ClaimSync(mock.Anything, f.run.ID, mock.Anything).
		RunAndReturn(func(context.Context, string, time.Duration) error {
			if claimed.CompareAndSwap(false, true) {
				return nil
			}
			return domain.ErrSyncInProgress
		})
	f.runs.EXPECT().ReleaseSync(mock.Anything, f.run.ID).Return(nil)
	f.expectCreated(domain.ResourceBudget, domain.ResourceCampaign, domain.ResourceGeoCriterion, domain.ResourceAdGroup,
		domain.ResourceKeywords, domain.ResourceNegativeKeywords, domain.ResourceAd)

	var budgets atomic.Int32
	f.platform.EXPECT().CreateBudget(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, port.BudgetInput) (string, error) {
			time.Sleep(20 * time.Millisecond)
			budgets.Add(1)
			return "b/1", nil
		})
	f.platform.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return("c/1", nil)
	f.platform.EXPECT().CreateGeoCriterion(mock.Anything, "c/1", "US").Return("g/1", nil)
	f.platform.EXPECT().CreateAdGroup(mock.Anything, mock.Anything).Return("ag/1", nil)
	f.platform.EXPECT().CreateKeywords(mock.Anything, "ag/1", mock.Anything).Return([]string{"k/1"}, nil)
	f.platform.EXPECT().CreateNegativeKeywords(mock.Anything, "c/1", mock.Anything).Return([]string{"n/1"}, nil)
	f.platform.EXPECT().CreateResponsiveAd(mock.Anything, mock.Anything).Return("ad/1", nil)
	f.runs.EXPECT().TransitionStatus(mock.Anything, f.run.ID, domain.RunReady, domain.RunDeployed, "").Return(nil).Once()

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = f.sync.Sync(context.Background(), f.run.ID, false)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), budgets.Load())
	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrSyncInProgress)
	}
	assert.GreaterOrEqual(t, succeeded, 1)
}

func TestLiveSyncRejectedWhileLeaseHeld(t *testing.T) {
	f := newSyncFixture(t, domain.RunReady)
	f.platform.EXPECT().IsConfigured().Return(true)
	f.runs.EXPECT().ClaimSync(mock.Anything, f.run.ID, mock.Anything).Return(domain.ErrSyncInProgress)

	_, err := f.sync.Sync(context.Background(), f.run.ID, false)
	assert.ErrorIs(t, err, domain.ErrSyncInProgress)
}

// TestDryRunOfDeployedRunIsRejected ensures a dry run never hands back the
// live platform references.
func TestDryRunOfDeployedRunIsRejected(t *testing.T) {
	f := newSyncFixture(t, domain.RunDeployed)
	f.run.Resources = domain.ExternalResources{BudgetID: "b/1", CampaignID: "c/1", AdGroupID: "ag/1", AdID: "ad/1"}

	res, err := f.sync.Sync(context.Background(), f.run.ID, true)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Nil(t, res)
}

func TestLiveSyncRequiresConfiguredPlatform(t *testing.T) {
	f := newSyncFixture(t, domain.RunValidated)
	f.platform.EXPECT().IsConfigured().Return(false)
	f.platform.EXPECT().MissingSettings().Return([]string{"ADS_DEVELOPER_TOKEN"})

	_, err := f.sync.Sync(context.Background(), f.run.ID, false)

	var ce *domain.ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []string{"ADS_DEVELOPER_TOKEN"}, ce.Missing)
}

func TestSyncRejectsDraftRun(t *testing.T) {
	f := newSyncFixture(t, domain.RunDraft)

	_, err := f.sync.Sync(context.Background(), f.run.ID, true)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestTruncateCountsRunes(t *testing.T) {
	assert.Equal(t, "héllo", truncate("héllo wörld", 5))
	assert.Equal(t, "short", truncate("short", 30))
}
