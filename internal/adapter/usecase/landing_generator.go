package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"adpilot/internal/core/compliance"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/telemetry"
)

// LandingOptions select optional generated content.
type LandingOptions struct {
	// AIHero asks the text generator for the hero copy.
	AIHero bool
}

// LandingPageGenerator builds landing page content for a spec. The page is
// always assembled from a template first; generated copy only replaces
// parts of it, and any generator failure leaves the template in place.
type LandingPageGenerator struct {
	gen       port.TextGenerator
	validator *compliance.Validator
	timeout   time.Duration
	md        goldmark.Markdown
	logger    *slog.Logger
	metrics   *telemetry.Metrics
}

func NewLandingPageGenerator(gen port.TextGenerator, v *compliance.Validator, timeout time.Duration, logger *slog.Logger, m *telemetry.Metrics) *LandingPageGenerator {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &LandingPageGenerator{
		gen:       gen,
		validator: v,
		timeout:   timeout,
		md:        goldmark.New(),
		logger:    logger,
		metrics:   m,
	}
}

var heroSchema = &port.Schema{
	Type: "object",
	Properties: map[string]*port.Schema{
		"headline":    {Type: "string", Description: "at most 8 words"},
		"subheadline": {Type: "string", Description: "one sentence"},
	},
	Required: []string{"headline", "subheadline"},
}

var briefingSchema = &port.Schema{
	Type: "object",
	Properties: map[string]*port.Schema{
		"markdown": {Type: "string", Description: "the briefing in markdown, 150 to 300 words"},
	},
	Required: []string{"markdown"},
}

// Generate returns the landing page for spec. The only error is a
// *domain.ComplianceError when the finished page fails the landing page
// rules.
func (g *LandingPageGenerator) Generate(ctx context.Context, spec domain.CampaignSpec, opts LandingOptions) (domain.LandingPageSpec, error) {
	page := g.template(spec)

	if g.gen.IsConfigured() {
		if opts.AIHero {
			if hero, err := g.hero(ctx, spec); err != nil {
				g.logger.Warn("generated hero discarded", slog.String("slug", spec.Slug), slog.Any("error", err))
			} else {
				page.Hero.Headline = hero.Headline
				page.Hero.Subheadline = hero.Subheadline
			}
		}
		if spec.Strategy == domain.StrategyEducational {
			if md, err := g.briefing(ctx, spec); err != nil {
				g.logger.Warn("generated briefing discarded", slog.String("slug", spec.Slug), slog.Any("error", err))
			} else {
				page.Briefing = md
			}
		}
	}

	if page.Briefing != "" {
		var buf bytes.Buffer
		if err := g.md.Convert([]byte(page.Briefing), &buf); err != nil {
			g.logger.Warn("render briefing", slog.Any("error", err))
		} else {
			page.BriefingHTML = buf.String()
		}
	}

	res := g.validator.Validate(page.Text(), compliance.ContextLandingPage)
	g.metrics.Compliance(compliance.ContextLandingPage, res.Passed())
	if !res.Passed() {
		return domain.LandingPageSpec{}, &domain.ComplianceError{Context: compliance.ContextLandingPage, Reasons: res.Reasons}
	}
	return page, nil
}

func (g *LandingPageGenerator) hero(ctx context.Context, spec domain.CampaignSpec) (domain.Hero, error) {
	prompt := fmt.Sprintf(
		"Write the hero section of a landing page for a direct primary care membership.\n"+
			"Audience: %s\nThey are looking for: %s\nTone: %s\n"+
			"Do not mention drugs, insurance billing, statistics or superlatives.",
		spec.Persona, spec.Intent, spec.Tone,
	)
	var hero domain.Hero
	if err := g.generate(ctx, "hero", prompt, heroSchema, &hero); err != nil {
		return domain.Hero{}, err
	}
	hero.Headline = strings.TrimSpace(hero.Headline)
	hero.Subheadline = strings.TrimSpace(hero.Subheadline)
	if hero.Headline == "" || hero.Subheadline == "" {
		return domain.Hero{}, errors.New("incomplete hero")
	}
	if res := g.validator.ValidateAll(compliance.ContextHeadline, hero.Headline, hero.Subheadline); !res.Passed() {
		return domain.Hero{}, &domain.ComplianceError{Context: compliance.ContextHeadline, Reasons: res.Reasons}
	}
	return hero, nil
}

func (g *LandingPageGenerator) briefing(ctx context.Context, spec domain.CampaignSpec) (string, error) {
	prompt := fmt.Sprintf(
		"Write a short educational briefing in markdown explaining direct primary care to %s "+
			"who are searching for %q. Use two or three level-two headings and a bullet list. "+
			"State that membership is not insurance. Do not mention drugs, insurance billing, "+
			"statistics or superlatives.",
		strings.ToLower(spec.Persona), spec.Intent,
	)
	var out struct {
		Markdown string `json:"markdown"`
	}
	if err := g.generate(ctx, "briefing", prompt, briefingSchema, &out); err != nil {
		return "", err
	}
	md := strings.TrimSpace(out.Markdown)
	if md == "" {
		return "", errors.New("empty briefing")
	}
	if res := g.validator.Validate(md, compliance.ContextLandingPage); !res.Passed() {
		return "", &domain.ComplianceError{Context: compliance.ContextLandingPage, Reasons: res.Reasons}
	}
	return md, nil
}

func (g *LandingPageGenerator) generate(ctx context.Context, kind, prompt string, schema *port.Schema, out any) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.gen.GenerateJSON(ctx, prompt, schema)
	if err != nil {
		g.metrics.Generation(kind, "error")
		return err
	}
	if err = json.Unmarshal(raw, out); err != nil {
		g.metrics.Generation(kind, "error")
		return fmt.Errorf("parse generated %s: %w", kind, err)
	}
	g.metrics.Generation(kind, "ok")
	return nil
}

// template builds the complete page from the spec alone.
func (g *LandingPageGenerator) template(spec domain.CampaignSpec) domain.LandingPageSpec {
	page := domain.LandingPageSpec{
		Hero: domain.Hero{
			Headline:    firstNonEmpty(spec.Intent, "Direct Primary Care Membership"),
			Subheadline: "A membership that gives you your own doctor, unhurried visits and simple monthly pricing.",
			CTA:         "Book a Visit",
		},
		Benefits:    append([]string(nil), spec.Benefits...),
		ProofPoints: append([]string(nil), spec.ProofPoints...),
		HowItWorks: []domain.Step{
			{Title: "Join", Body: "Pick a monthly membership. There are no claim forms."},
			{Title: "Meet your doctor", Body: "Book an unhurried first visit with the physician who will know you."},
			{Title: "Stay in touch", Body: "Text, call or visit whenever a question comes up."},
		},
		PricingTiers: []domain.PricingTier{
			{Name: "Individual", Price: "$89/month", Features: []string{"Unlimited office visits", "Text and phone access", "Annual wellness visit"}},
			{Name: "Family", Price: "$199/month", Features: []string{"Covers two adults and their children", "Pediatric and adult care", "Text and phone access"}},
		},
		FAQs: []domain.FAQ{
			{Question: "Is this insurance?", Answer: "No. Membership is not insurance. Keep a plan for emergencies and hospital care."},
			{Question: "How does payment work?", Answer: "One flat monthly fee covers your visits. We do not bill insurance."},
			{Question: "Can I cancel?", Answer: "Yes. Memberships are month to month."},
		},
		Disclaimer: strings.Join(spec.Disclaimers, " "),
	}
	if p := strings.TrimSpace(spec.Persona); p != "" {
		page.Hero.Subheadline = fmt.Sprintf("Membership medicine for %s: your own doctor, unhurried visits and simple monthly pricing.", lowerFirst(p))
	}
	if !strings.Contains(strings.ToLower(page.Disclaimer), "not insurance") {
		page.Disclaimer = strings.TrimSpace("Membership is not insurance. " + page.Disclaimer)
	}
	if spec.Strategy == domain.StrategyEducational {
		page.Hero.CTA = "Learn How It Works"
		page.Briefing = templateBriefing(spec)
	}
	return page
}

func templateBriefing(spec domain.CampaignSpec) string {
	var b strings.Builder
	b.WriteString("## What is direct primary care?\n\n")
	b.WriteString("Direct primary care is a membership between you and your doctor. ")
	b.WriteString("You pay a flat monthly fee and get unhurried visits with the same physician. ")
	b.WriteString("Membership is not insurance, so most people keep a plan for emergencies and hospital care.\n\n")
	if len(spec.Benefits) > 0 {
		b.WriteString("## What you get\n\n")
		for _, it := range spec.Benefits {
			fmt.Fprintf(&b, "- %s\n", it)
		}
		b.WriteString("\n")
	}
	b.WriteString("## How to start\n\nBook a first visit and meet your doctor before you commit.\n")
	return b.String()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
