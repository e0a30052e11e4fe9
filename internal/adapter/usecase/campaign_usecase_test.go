package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/planner"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
)

type campaignFixture struct {
	campaigns *mocks.MockCampaignRepository
	runs      *mocks.MockRunRepository
	gen       *mocks.MockTextGenerator
	artifacts *memArtifacts
	uc        *CampaignUseCase
}

func newCampaignFixture(t *testing.T) *campaignFixture {
	v := testValidator(t)
	f := &campaignFixture{
		campaigns: mocks.NewMockCampaignRepository(t),
		runs:      mocks.NewMockRunRepository(t),
		gen:       mocks.NewMockTextGenerator(t),
		artifacts: newMemArtifacts(),
	}
	plans, err := planner.NewAdPlanBuilder(v, planner.NewKeywordExpander(v, nil),
		planner.DefaultPlanConfig("https://example.com/", v.Policy().NegativeKeywords))
	require.NoError(t, err)

	pipeline := NewArtifactPipeline(f.artifacts, discardLogger(), nil)
	specs := NewCampaignSpecGenerator(f.gen, v, f.campaigns, SpecDefaults{BudgetDaily: 50, TargetCPA: 75}, discardLogger(), nil)
	landing := NewLandingPageGenerator(f.gen, v, time.Second, discardLogger(), nil)
	f.uc = NewCampaignUseCase(f.campaigns, f.runs, pipeline, v, specs, plans, landing, discardLogger())
	return f
}

func validCampaignReq() port.CreateCampaignReq {
	return port.CreateCampaignReq{
		Slug:         "Busy Parents",
		Persona:      "Busy parents",
		Intent:       "Family doctor membership",
		SeedKeywords: []string{"family doctor", " "},
		Benefits:     []string{"Unhurried visits"},
		ProofPoints:  []string{"Board-certified physicians"},
		BudgetDaily:  40,
		TargetCPA:    90,
	}
}

func TestCreateCampaignRejectsNonCompliantText(t *testing.T) {
	f := newCampaignFixture(t)
	req := validCampaignReq()
	req.Intent = "Best doctor in town"
	req.Benefits = append(req.Benefits, "Ozempic refills")

	_, err := f.uc.CreateCampaign(context.Background(), req)

	var ce *domain.ComplianceError
	require.ErrorAs(t, err, &ce)
	require.Len(t, ce.Reasons, 2)
	assert.Contains(t, ce.Reasons[0], `intent "Best doctor in town"`)
	assert.Contains(t, ce.Reasons[1], `benefits "Ozempic refills"`)
	f.campaigns.AssertNotCalled(t, "CreateSpec", mock.Anything, mock.Anything)
}

func TestCreateCampaignValidatesInput(t *testing.T) {
	cases := map[string]func(*port.CreateCampaignReq){
		"unknown strategy": func(r *port.CreateCampaignReq) { r.Strategy = "VIRAL" },
		"missing intent":   func(r *port.CreateCampaignReq) { r.Intent = "  " },
		"zero budget":      func(r *port.CreateCampaignReq) { r.BudgetDaily = 0 },
		"negative cpa":     func(r *port.CreateCampaignReq) { r.TargetCPA = -5 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			f := newCampaignFixture(t)
			req := validCampaignReq()
			mutate(&req)
			_, err := f.uc.CreateCampaign(context.Background(), req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCreateCampaignStoresSpecAndDraftRun(t *testing.T) {
	f := newCampaignFixture(t)
	f.campaigns.EXPECT().SlugExists(mock.Anything, "busy-parents").Return(false, nil)
	f.campaigns.EXPECT().CreateSpec(mock.Anything, mock.Anything).Return(nil)
	f.runs.EXPECT().CreateRun(mock.Anything, mock.MatchedBy(func(r *domain.CampaignRun) bool {
		return r.Status == domain.RunDraft
	})).Return(nil)

	resp, err := f.uc.CreateCampaign(context.Background(), validCampaignReq())
	require.NoError(t, err)

	assert.Equal(t, "busy-parents", resp.Spec.Slug)
	assert.Equal(t, domain.StrategyTransactional, resp.Spec.Strategy)
	assert.Equal(t, []string{"family doctor"}, resp.Spec.SeedKeywords)
	assert.Equal(t, "US", resp.Spec.Geo)
	assert.NotEmpty(t, resp.Spec.Disclaimers)
	assert.Equal(t, resp.Spec.ID, resp.Run.SpecID)

	stored, err := LoadArtifact[domain.CampaignSpec](context.Background(), f.uc.pipeline, resp.Run.ID, domain.StageCampaignSpec)
	require.NoError(t, err)
	assert.Equal(t, resp.Spec.Slug, stored.Slug)
}

func TestGenerateCampaignWithoutGenerator(t *testing.T) {
	f := newCampaignFixture(t)
	f.gen.EXPECT().IsConfigured().Return(false)

	_, err := f.uc.GenerateCampaign(context.Background(), domain.StrategyEducational, nil)
	assert.ErrorIs(t, err, domain.ErrGenerationUnavailable)
}

func (f *campaignFixture) seedRun(t *testing.T, run *domain.CampaignRun, spec domain.CampaignSpec) {
	t.Helper()
	_, err := f.artifacts.UpsertArtifact(context.Background(), run.ID, domain.StageCampaignSpec, mustJSON(t, spec))
	require.NoError(t, err)
}

func TestBuildArtifactsValidatesDraftRun(t *testing.T) {
	f := newCampaignFixture(t)
	run := &domain.CampaignRun{ID: "run-1", SpecID: "spec-1", Status: domain.RunDraft}
	f.seedRun(t, run, landingSpec())
	f.gen.EXPECT().IsConfigured().Return(false)
	f.runs.EXPECT().GetRun(mock.Anything, "run-1").Return(run, nil).Once()
	f.runs.EXPECT().TransitionStatus(mock.Anything, "run-1", domain.RunDraft, domain.RunValidated, "").Return(nil)
	f.runs.EXPECT().GetRun(mock.Anything, "run-1").Return(&domain.CampaignRun{ID: "run-1", Status: domain.RunValidated}, nil).Once()

	got, err := f.uc.BuildArtifacts(context.Background(), "run-1", port.BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, domain.RunValidated, got.Status)

	plan, err := LoadArtifact[domain.AdPlan](context.Background(), f.uc.pipeline, "run-1", domain.StageAdPlan)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/lp/busy-parents", plan.FinalURL)
	assert.NotEmpty(t, plan.Keywords)

	page, err := LoadArtifact[domain.LandingPageSpec](context.Background(), f.uc.pipeline, "run-1", domain.StageLandingPage)
	require.NoError(t, err)
	assert.Equal(t, "Family doctor membership", page.Hero.Headline)
}

func TestBuildArtifactsLandingFailureMarksRunErrored(t *testing.T) {
	f := newCampaignFixture(t)
	run := &domain.CampaignRun{ID: "run-1", SpecID: "spec-1", Status: domain.RunDraft}
	spec := landingSpec()
	spec.ProofPoints = []string{"Thousands of patients served"}
	f.seedRun(t, run, spec)
	f.gen.EXPECT().IsConfigured().Return(false)
	f.runs.EXPECT().GetRun(mock.Anything, "run-1").Return(run, nil)
	f.runs.EXPECT().TransitionStatus(mock.Anything, "run-1", domain.RunDraft, domain.RunError, mock.AnythingOfType("string")).Return(nil)

	_, err := f.uc.BuildArtifacts(context.Background(), "run-1", port.BuildOptions{})

	var ce *domain.ComplianceError
	require.ErrorAs(t, err, &ce)
	_, err = f.artifacts.GetArtifact(context.Background(), "run-1", domain.StageLandingPage)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBuildArtifactsResetsErroredRun(t *testing.T) {
	f := newCampaignFixture(t)
	run := &domain.CampaignRun{ID: "run-1", SpecID: "spec-1", Status: domain.RunError}
	f.campaigns.EXPECT().GetSpec(mock.Anything, "spec-1").Return(func() *domain.CampaignSpec { s := landingSpec(); return &s }(), nil)
	f.gen.EXPECT().IsConfigured().Return(false)
	f.runs.EXPECT().GetRun(mock.Anything, "run-1").Return(run, nil)
	f.runs.EXPECT().TransitionStatus(mock.Anything, "run-1", domain.RunError, domain.RunDraft, "").Return(nil)
	f.runs.EXPECT().TransitionStatus(mock.Anything, "run-1", domain.RunDraft, domain.RunValidated, "").Return(nil)

	_, err := f.uc.BuildArtifacts(context.Background(), "run-1", port.BuildOptions{Force: true})
	require.NoError(t, err)

	_, err = f.artifacts.GetArtifact(context.Background(), "run-1", domain.StageCampaignSpec)
	assert.NoError(t, err)
}

func TestBuildArtifactsRejectsDeployedRun(t *testing.T) {
	f := newCampaignFixture(t)
	f.runs.EXPECT().GetRun(mock.Anything, "run-1").Return(&domain.CampaignRun{ID: "run-1", Status: domain.RunDeployed}, nil)

	_, err := f.uc.BuildArtifacts(context.Background(), "run-1", port.BuildOptions{Force: true})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
