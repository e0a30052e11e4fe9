package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/compliance"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port/mocks"
)

func landingSpec() domain.CampaignSpec {
	return domain.CampaignSpec{
		Slug:        "busy-parents",
		Persona:     "Busy parents",
		Intent:      "Family doctor membership",
		Strategy:    domain.StrategyTransactional,
		Benefits:    []string{"Unhurried visits", "Text your doctor"},
		ProofPoints: []string{"Board-certified physicians"},
		Disclaimers: []string{"Direct primary care does not bill insurance."},
	}
}

func TestLandingTemplateWithoutGenerator(t *testing.T) {
	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().IsConfigured().Return(false)
	v := testValidator(t)

	page, err := NewLandingPageGenerator(gen, v, 0, discardLogger(), nil).
		Generate(context.Background(), landingSpec(), LandingOptions{AIHero: true})
	require.NoError(t, err)

	assert.Equal(t, "Family doctor membership", page.Hero.Headline)
	assert.Contains(t, page.Hero.Subheadline, "busy parents")
	assert.Equal(t, "Book a Visit", page.Hero.CTA)
	assert.Len(t, page.HowItWorks, 3)
	assert.NotEmpty(t, page.PricingTiers)
	assert.NotEmpty(t, page.FAQs)
	assert.Contains(t, page.Disclaimer, "Membership is not insurance.")
	assert.Empty(t, page.Briefing)
	assert.True(t, v.Validate(page.Text(), compliance.ContextLandingPage).Passed())
}

func TestLandingAdoptsCompleteAIHero(t *testing.T) {
	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().IsConfigured().Return(true)
	gen.EXPECT().GenerateJSON(mock.Anything, mock.Anything, heroSchema).
		Return(json.RawMessage(`{"headline":"Your Family Doctor","subheadline":"Unhurried care for the whole family."}`), nil)

	page, err := NewLandingPageGenerator(gen, testValidator(t), 0, discardLogger(), nil).
		Generate(context.Background(), landingSpec(), LandingOptions{AIHero: true})
	require.NoError(t, err)
	assert.Equal(t, "Your Family Doctor", page.Hero.Headline)
	assert.Equal(t, "Unhurried care for the whole family.", page.Hero.Subheadline)
}

func TestLandingFallsBackToTemplateHero(t *testing.T) {
	cases := map[string]struct {
		raw json.RawMessage
		err error
	}{
		"incomplete":     {raw: json.RawMessage(`{"headline":"Only a headline","subheadline":""}`)},
		"non-compliant":  {raw: json.RawMessage(`{"headline":"Best Doctor in Town","subheadline":"Guaranteed results."}`)},
		"generator down": {err: errors.New("unavailable")},
		"garbage":        {raw: json.RawMessage(`{{{`)},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			gen := mocks.NewMockTextGenerator(t)
			gen.EXPECT().IsConfigured().Return(true)
			gen.EXPECT().GenerateJSON(mock.Anything, mock.Anything, heroSchema).Return(tc.raw, tc.err)

			page, err := NewLandingPageGenerator(gen, testValidator(t), 0, discardLogger(), nil).
				Generate(context.Background(), landingSpec(), LandingOptions{AIHero: true})
			require.NoError(t, err)
			assert.Equal(t, "Family doctor membership", page.Hero.Headline)
		})
	}
}

func TestLandingEducationalBriefing(t *testing.T) {
	spec := landingSpec()
	spec.Strategy = domain.StrategyEducational

	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().IsConfigured().Return(true)
	gen.EXPECT().GenerateJSON(mock.Anything, mock.Anything, briefingSchema).
		Return(json.RawMessage(`{"markdown":"## How membership works\n\nMembership is not insurance.\n\n- Same doctor\n- Simple pricing\n"}`), nil)

	page, err := NewLandingPageGenerator(gen, testValidator(t), 0, discardLogger(), nil).
		Generate(context.Background(), spec, LandingOptions{})
	require.NoError(t, err)

	assert.Equal(t, "Learn How It Works", page.Hero.CTA)
	assert.Contains(t, page.Briefing, "## How membership works")
	assert.Contains(t, page.BriefingHTML, "<h2>How membership works</h2>")
	assert.Contains(t, page.BriefingHTML, "<li>Same doctor</li>")
}

func TestLandingEducationalTemplateBriefing(t *testing.T) {
	spec := landingSpec()
	spec.Strategy = domain.StrategyEducational

	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().IsConfigured().Return(false)

	page, err := NewLandingPageGenerator(gen, testValidator(t), 0, discardLogger(), nil).
		Generate(context.Background(), spec, LandingOptions{})
	require.NoError(t, err)
	assert.Contains(t, page.BriefingHTML, "<h2>What is direct primary care?</h2>")
	assert.Contains(t, page.BriefingHTML, "<li>Unhurried visits</li>")
}

// TestLandingComplianceFailureIsHard ensures a failing page is rejected and
// not silently fixed.
func TestLandingComplianceFailureIsHard(t *testing.T) {
	spec := landingSpec()
	spec.ProofPoints = []string{"Thousands of patients served"}

	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().IsConfigured().Return(false)

	_, err := NewLandingPageGenerator(gen, testValidator(t), 0, discardLogger(), nil).
		Generate(context.Background(), spec, LandingOptions{})

	var ce *domain.ComplianceError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, compliance.ContextLandingPage, ce.Context)
	assert.NotEmpty(t, ce.Reasons)
}
