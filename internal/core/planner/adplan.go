package planner

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"adpilot/internal/core/compliance"
	"adpilot/internal/core/domain"
)

// PlanConfig holds the fixed copy the builder mixes with spec content.
// Fallback pools are consumed front to back when too few candidates
// survive compliance.
type PlanConfig struct {
	LandingBaseURL       string
	BrandHeadlines       []string
	CTAHeadlines         []string
	ValueProps           []string
	FallbackHeadlines    []string
	FallbackDescriptions []string
	NegativeKeywords     []string
}

// DefaultPlanConfig returns the stock copy for the given landing page base
// URL and global negative keyword list.
func DefaultPlanConfig(landingBaseURL string, negatives []string) PlanConfig {
	return PlanConfig{
		LandingBaseURL: landingBaseURL,
		BrandHeadlines: []string{
			"Direct Primary Care",
			"Your Doctor, Your Membership",
			"Membership Medicine",
		},
		CTAHeadlines: []string{
			"Book a Visit Today",
			"Join the Membership",
			"Meet Your Doctor",
		},
		ValueProps: []string{
			"One flat monthly membership for unhurried visits with your own doctor.",
			"Text your doctor and book visits without the usual wait. Membership is not insurance.",
		},
		FallbackHeadlines: []string{
			"Primary Care Membership",
			"See a Doctor Near You",
			"Transparent Monthly Pricing",
			"Same Doctor Every Visit",
		},
		FallbackDescriptions: []string{
			"Simple membership pricing and real time with a doctor who knows you.",
			"Direct primary care membership. No surprise bills. Not insurance.",
		},
		NegativeKeywords: negatives,
	}
}

// AdPlanBuilder assembles a platform-ready AdPlan from a CampaignSpec.
type AdPlanBuilder struct {
	validator Validator
	expander  *KeywordExpander
	cfg       PlanConfig
}

// NewAdPlanBuilder checks that the fallback pools alone can satisfy the
// platform minimums, so Build never returns an unsubmittable plan.
func NewAdPlanBuilder(v Validator, e *KeywordExpander, cfg PlanConfig) (*AdPlanBuilder, error) {
	b := &AdPlanBuilder{validator: v, expander: e, cfg: cfg}
	if n := len(b.filter(cfg.FallbackHeadlines, domain.MaxHeadlineLen, compliance.ContextHeadline)); n < domain.MinHeadlines {
		return nil, fmt.Errorf("ad plan config: %d usable fallback headlines, need %d", n, domain.MinHeadlines)
	}
	if n := len(b.filter(cfg.FallbackDescriptions, domain.MaxDescriptionLen, compliance.ContextDescription)); n < domain.MinDescriptions {
		return nil, fmt.Errorf("ad plan config: %d usable fallback descriptions, need %d", n, domain.MinDescriptions)
	}
	return b, nil
}

// Build derives the ad plan for spec. It is deterministic.
func (b *AdPlanBuilder) Build(spec domain.CampaignSpec) domain.AdPlan {
	var headlines []string
	headlines = append(headlines, b.cfg.BrandHeadlines...)
	headlines = append(headlines, spec.Intent, spec.Persona)
	headlines = append(headlines, spec.Benefits...)
	headlines = append(headlines, b.cfg.CTAHeadlines...)

	var descriptions []string
	descriptions = append(descriptions, spec.ProofPoints...)
	if len(spec.Benefits) >= 2 {
		descriptions = append(descriptions, sentence(spec.Benefits[0])+" "+sentence(spec.Benefits[1]))
	}
	descriptions = append(descriptions, b.cfg.ValueProps...)

	headlines = b.filter(headlines, domain.MaxHeadlineLen, compliance.ContextHeadline)
	headlines = pad(headlines, b.filter(b.cfg.FallbackHeadlines, domain.MaxHeadlineLen, compliance.ContextHeadline), domain.MinHeadlines)
	descriptions = b.filter(descriptions, domain.MaxDescriptionLen, compliance.ContextDescription)
	descriptions = pad(descriptions, b.filter(b.cfg.FallbackDescriptions, domain.MaxDescriptionLen, compliance.ContextDescription), domain.MinDescriptions)

	if len(headlines) > domain.MaxHeadlines {
		headlines = headlines[:domain.MaxHeadlines]
	}
	if len(descriptions) > domain.MaxDescriptions {
		descriptions = descriptions[:domain.MaxDescriptions]
	}

	return domain.AdPlan{
		Headlines:        headlines,
		Descriptions:     descriptions,
		Keywords:         b.expander.Expand(spec.SeedKeywords),
		NegativeKeywords: append([]string(nil), b.cfg.NegativeKeywords...),
		FinalURL:         FinalURL(b.cfg.LandingBaseURL, spec.Slug),
	}
}

// FinalURL is the landing page address for slug.
func FinalURL(base, slug string) string {
	return strings.TrimRight(base, "/") + "/lp/" + url.PathEscape(slug)
}

// filter trims candidates and keeps those that fit limit, pass compliance and
// are not case-insensitive duplicates of an earlier candidate.
func (b *AdPlanBuilder) filter(candidates []string, limit int, context string) []string {
	out := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" || utf8.RuneCountInString(c) > limit {
			continue
		}
		key := strings.ToLower(c)
		if _, ok := seen[key]; ok {
			continue
		}
		if !b.validator.Validate(c, context).Passed() {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

// pad appends entries of pool, in order, until items has want entries.
func pad(items, pool []string, want int) []string {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		seen[strings.ToLower(it)] = struct{}{}
	}
	for _, p := range pool {
		if len(items) >= want {
			break
		}
		if _, ok := seen[strings.ToLower(p)]; ok {
			continue
		}
		seen[strings.ToLower(p)] = struct{}{}
		items = append(items, p)
	}
	return items
}

func sentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") {
		return s
	}
	return s + "."
}
