package planner

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/compliance"
	"adpilot/internal/core/domain"
)

func newValidator(t *testing.T) *compliance.Validator {
	t.Helper()
	p, err := compliance.DefaultPolicy()
	require.NoError(t, err)
	v, err := compliance.New(p)
	require.NoError(t, err)
	return v
}

func newBuilder(t *testing.T) (*AdPlanBuilder, PlanConfig) {
	t.Helper()
	v := newValidator(t)
	cfg := DefaultPlanConfig("https://example.com/", v.Policy().NegativeKeywords)
	b, err := NewAdPlanBuilder(v, NewKeywordExpander(v, nil), cfg)
	require.NoError(t, err)
	return b, cfg
}

func TestExpandIsDeterministic(t *testing.T) {
	e := NewKeywordExpander(newValidator(t), nil)

	first := e.Expand([]string{"urgent care"})
	second := e.Expand([]string{"urgent care"})
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("expansion not deterministic (-first +second):\n%s", diff)
	}

	// seed + 5 modifiers on both sides = 11 strings, two match types each
	require.Len(t, first, 22)
	assert.Equal(t, domain.Keyword{Text: "clinic urgent care", MatchType: domain.MatchPhrase}, first[0])
	assert.Equal(t, domain.Keyword{Text: "clinic urgent care", MatchType: domain.MatchExact}, first[1])
	for i := 2; i < len(first); i += 2 {
		assert.LessOrEqual(t, first[i-2].Text, first[i].Text)
	}
}

func TestExpandNormalizesAndDeduplicates(t *testing.T) {
	e := NewKeywordExpander(newValidator(t), []string{"doctor"})

	got := e.Expand([]string{"  Urgent   Care ", "urgent care", ""})
	want := []domain.Keyword{
		{Text: "doctor urgent care", MatchType: domain.MatchPhrase},
		{Text: "doctor urgent care", MatchType: domain.MatchExact},
		{Text: "urgent care", MatchType: domain.MatchPhrase},
		{Text: "urgent care", MatchType: domain.MatchExact},
		{Text: "urgent care doctor", MatchType: domain.MatchPhrase},
		{Text: "urgent care doctor", MatchType: domain.MatchExact},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected keywords (-want +got):\n%s", diff)
	}
}

func TestExpandDropsNonCompliantSeeds(t *testing.T) {
	e := NewKeywordExpander(newValidator(t), nil)
	assert.Empty(t, e.Expand([]string{"ozempic"}))
}

func TestBuildCountsWithinLimits(t *testing.T) {
	b, _ := newBuilder(t)

	specs := map[string]domain.CampaignSpec{
		"empty": {Slug: "empty"},
		"typical": {
			Slug:         "family-care",
			Persona:      "Busy parents",
			Intent:       "Family doctor membership",
			SeedKeywords: []string{"family doctor"},
			Benefits:     []string{"Unhurried visits", "Text your doctor", "Simple pricing"},
			ProofPoints:  []string{"Board-certified physicians", "Local clinic"},
		},
		"all non-compliant": {
			Slug:        "bad",
			Intent:      "Best Ozempic clinic",
			Persona:     "Patients who want #1 care",
			Benefits:    []string{"Free Ozempic", "Guaranteed results", "99% satisfaction"},
			ProofPoints: []string{"99% satisfaction", "Thousands of patients served", "Insurance accepted"},
		},
		"many benefits": {
			Slug:     "many",
			Benefits: strings.Split("One,Two,Three,Four,Five,Six,Seven,Eight,Nine,Ten,Eleven,Twelve,Thirteen,Fourteen", ","),
			ProofPoints: []string{
				"Proof one", "Proof two", "Proof three", "Proof four", "Proof five",
			},
		},
	}

	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			plan := b.Build(spec)
			assert.GreaterOrEqual(t, len(plan.Headlines), domain.MinHeadlines)
			assert.LessOrEqual(t, len(plan.Headlines), domain.MaxHeadlines)
			assert.GreaterOrEqual(t, len(plan.Descriptions), domain.MinDescriptions)
			assert.LessOrEqual(t, len(plan.Descriptions), domain.MaxDescriptions)
			for _, h := range plan.Headlines {
				assert.LessOrEqual(t, utf8.RuneCountInString(h), domain.MaxHeadlineLen, h)
			}
			for _, d := range plan.Descriptions {
				assert.LessOrEqual(t, utf8.RuneCountInString(d), domain.MaxDescriptionLen, d)
			}
		})
	}
}

func TestBuildFiltersNonCompliantScenario(t *testing.T) {
	b, cfg := newBuilder(t)

	plan := b.Build(domain.CampaignSpec{
		Slug:         "busy-exec",
		SeedKeywords: []string{"urgent care"},
		Benefits:     []string{"Free Ozempic"},
		ProofPoints:  []string{"99% satisfaction"},
	})

	allowed := append(append([]string{}, cfg.ValueProps...), cfg.FallbackDescriptions...)
	require.Len(t, plan.Descriptions, domain.MinDescriptions)
	for _, d := range plan.Descriptions {
		assert.NotContains(t, d, "Ozempic")
		assert.NotContains(t, d, "99%")
		assert.Contains(t, allowed, d)
	}
	for _, h := range plan.Headlines {
		assert.NotContains(t, h, "Ozempic")
	}
	assert.Equal(t, "https://example.com/lp/busy-exec", plan.FinalURL)
	assert.NotEmpty(t, plan.Keywords)
	assert.Equal(t, cfg.NegativeKeywords, plan.NegativeKeywords)
}

func TestBuildPadsFromFallbackPool(t *testing.T) {
	v := newValidator(t)
	cfg := DefaultPlanConfig("https://example.com", nil)
	cfg.BrandHeadlines = nil
	cfg.CTAHeadlines = nil
	cfg.ValueProps = nil
	b, err := NewAdPlanBuilder(v, NewKeywordExpander(v, nil), cfg)
	require.NoError(t, err)

	plan := b.Build(domain.CampaignSpec{Slug: "x", Benefits: []string{"Free Ozempic"}})
	assert.Equal(t, cfg.FallbackHeadlines[:3], plan.Headlines)
	assert.Equal(t, cfg.FallbackDescriptions[:2], plan.Descriptions)
}

func TestBuildDeduplicatesCaseInsensitively(t *testing.T) {
	b, _ := newBuilder(t)
	plan := b.Build(domain.CampaignSpec{
		Slug:     "dup",
		Intent:   "direct primary care",
		Benefits: []string{"DIRECT PRIMARY CARE"},
	})
	count := 0
	for _, h := range plan.Headlines {
		if strings.EqualFold(h, "Direct Primary Care") {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestNewAdPlanBuilderRejectsThinFallbacks(t *testing.T) {
	v := newValidator(t)
	cfg := DefaultPlanConfig("https://example.com", nil)
	cfg.FallbackHeadlines = []string{"Only One", "Best Doctor Ever"}
	_, err := NewAdPlanBuilder(v, NewKeywordExpander(v, nil), cfg)
	assert.Error(t, err)
}
