package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"adpilot/internal/core/compliance"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/telemetry"
)

const (
	specAttempts     = 2
	specHistoryLimit = 50
	maxSlugLen       = 48
)

// SpecDefaults fill in values the generator left out or got wrong.
type SpecDefaults struct {
	Timeout     time.Duration
	BudgetDaily float64
	TargetCPA   float64
	Geo         string
}

// CampaignSpecGenerator drafts new campaign specs with a text generator.
// Generated content is validated, retried once and then sanitized, so an
// accepted spec never carries denylisted terms.
type CampaignSpecGenerator struct {
	gen       port.TextGenerator
	validator *compliance.Validator
	campaigns port.CampaignRepository
	defaults  SpecDefaults
	logger    *slog.Logger
	metrics   *telemetry.Metrics
	now       func() time.Time
}

func NewCampaignSpecGenerator(
	gen port.TextGenerator,
	v *compliance.Validator,
	campaigns port.CampaignRepository,
	defaults SpecDefaults,
	logger *slog.Logger,
	m *telemetry.Metrics,
) *CampaignSpecGenerator {
	if defaults.Timeout <= 0 {
		defaults.Timeout = 30 * time.Second
	}
	if defaults.Geo == "" {
		defaults.Geo = "US"
	}
	return &CampaignSpecGenerator{
		gen:       gen,
		validator: v,
		campaigns: campaigns,
		defaults:  defaults,
		logger:    logger,
		metrics:   m,
		now:       time.Now,
	}
}

// generatedSpec is the JSON document requested from the text generator.
type generatedSpec struct {
	Slug         string   `json:"slug"`
	Persona      string   `json:"persona"`
	Intent       string   `json:"intent"`
	SeedKeywords []string `json:"seedKeywords"`
	Benefits     []string `json:"benefits"`
	ProofPoints  []string `json:"proofPoints"`
	Disclaimers  []string `json:"disclaimers"`
	BudgetDaily  float64  `json:"budgetDaily"`
	TargetCPA    float64  `json:"targetCpa"`
	Geo          string   `json:"geo"`
	Tone         string   `json:"tone"`
}

func (g generatedSpec) texts() []string {
	out := []string{g.Persona, g.Intent, g.Tone}
	out = append(out, g.SeedKeywords...)
	out = append(out, g.Benefits...)
	out = append(out, g.ProofPoints...)
	return append(out, g.Disclaimers...)
}

var specSchema = &port.Schema{
	Type: "object",
	Properties: map[string]*port.Schema{
		"slug":         {Type: "string", Description: "short kebab-case identifier"},
		"persona":      {Type: "string", Description: "who the campaign speaks to"},
		"intent":       {Type: "string", Description: "the problem the visitor is searching to solve"},
		"seedKeywords": {Type: "array", Items: &port.Schema{Type: "string"}},
		"benefits":     {Type: "array", Items: &port.Schema{Type: "string"}},
		"proofPoints":  {Type: "array", Items: &port.Schema{Type: "string"}},
		"disclaimers":  {Type: "array", Items: &port.Schema{Type: "string"}},
		"budgetDaily":  {Type: "number"},
		"targetCpa":    {Type: "number"},
		"geo":          {Type: "string"},
		"tone":         {Type: "string"},
	},
	Required: []string{"slug", "persona", "intent", "seedKeywords", "benefits", "proofPoints", "disclaimers"},
}

// Generate drafts a spec for strategy. inlet may be nil.
func (g *CampaignSpecGenerator) Generate(ctx context.Context, strategy domain.Strategy, inlet *domain.Inlet) (domain.CampaignSpec, error) {
	if !g.gen.IsConfigured() {
		return domain.CampaignSpec{}, domain.ErrGenerationUnavailable
	}
	if strategy == "" {
		strategy = domain.StrategyTransactional
	}
	if !strategy.Valid() {
		return domain.CampaignSpec{}, fmt.Errorf("strategy %q: %w", strategy, domain.ErrInvalidInput)
	}
	if inlet == nil {
		inlet = &domain.Inlet{}
	}

	recent, err := g.campaigns.RecentSpecs(ctx, specHistoryLimit)
	if err != nil {
		g.logger.Warn("load recent specs", slog.Any("error", err))
		recent = nil
	}
	prompt := g.prompt(strategy, inlet, recent)

	var last *generatedSpec
	for attempt := 1; attempt <= specAttempts; attempt++ {
		cand, err := g.attempt(ctx, prompt)
		if err != nil {
			if ctx.Err() != nil {
				return domain.CampaignSpec{}, ctx.Err()
			}
			g.metrics.Generation("campaign_spec", "error")
			g.logger.Warn("campaign spec attempt failed", slog.Int("attempt", attempt), slog.Any("error", err))
			continue
		}
		last = cand
		res := g.validator.ValidateAll(compliance.ContextCampaignSpec, cand.texts()...)
		g.metrics.Compliance(compliance.ContextCampaignSpec, res.Passed())
		if res.Passed() {
			g.metrics.Generation("campaign_spec", "ok")
			break
		}
		g.metrics.Generation("campaign_spec", "rejected")
		g.logger.Info("campaign spec rejected by compliance",
			slog.Int("attempt", attempt),
			slog.Any("reasons", res.Reasons),
		)
	}
	if last == nil {
		return domain.CampaignSpec{}, domain.ErrGenerationFailed
	}

	return g.finalize(ctx, strategy, inlet, *last)
}

func (g *CampaignSpecGenerator) attempt(ctx context.Context, prompt string) (*generatedSpec, error) {
	ctx, cancel := context.WithTimeout(ctx, g.defaults.Timeout)
	defer cancel()

	raw, err := g.gen.GenerateJSON(ctx, prompt, specSchema)
	if err != nil {
		return nil, err
	}
	var out generatedSpec
	if err = json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse generated spec: %w", err)
	}
	if strings.TrimSpace(out.Intent) == "" {
		return nil, errors.New("generated spec has no intent")
	}
	return &out, nil
}

// finalize sanitizes the accepted output and fills in defaults. It never
// rejects.
func (g *CampaignSpecGenerator) finalize(ctx context.Context, strategy domain.Strategy, inlet *domain.Inlet, in generatedSpec) (domain.CampaignSpec, error) {
	safe := g.validator.Policy().SafeDefaults

	spec := domain.CampaignSpec{
		ID:          uuid.NewString(),
		Strategy:    strategy,
		Persona:     firstNonEmpty(g.validator.Sanitize(in.Persona), g.validator.Sanitize(inlet.Persona), "Adults looking for a primary care doctor"),
		Intent:      firstNonEmpty(g.validator.Sanitize(in.Intent), g.validator.Sanitize(inlet.Intent), "Direct primary care membership"),
		Benefits:    g.validator.SanitizeList(in.Benefits, safe.Benefits),
		ProofPoints: g.validator.SanitizeList(in.ProofPoints, safe.ProofPoints),
		Disclaimers: g.validator.SanitizeList(in.Disclaimers, safe.Disclaimers),
		BudgetDaily: in.BudgetDaily,
		TargetCPA:   in.TargetCPA,
		Geo:         firstNonEmpty(strings.TrimSpace(inlet.Geo), strings.TrimSpace(in.Geo), g.defaults.Geo),
		Tone:        firstNonEmpty(g.validator.Sanitize(in.Tone), g.validator.Sanitize(inlet.Tone), "warm"),
		CreatedAt:   g.now().UTC(),
	}
	if spec.BudgetDaily <= 0 {
		spec.BudgetDaily = g.defaults.BudgetDaily
	}
	if spec.TargetCPA <= 0 {
		spec.TargetCPA = g.defaults.TargetCPA
	}

	seeds := append(append([]string{}, inlet.SeedKeywords...), in.SeedKeywords...)
	for _, s := range seeds {
		if s = g.validator.Sanitize(s); s != "" && !containsFold(spec.SeedKeywords, s) {
			spec.SeedKeywords = append(spec.SeedKeywords, s)
		}
	}
	if len(spec.SeedKeywords) == 0 {
		spec.SeedKeywords = []string{strings.ToLower(spec.Intent)}
	}

	slug, err := uniqueSlug(ctx, g.campaigns, firstNonEmpty(Slugify(g.validator.Sanitize(in.Slug)), Slugify(spec.Intent), "campaign"))
	if err != nil {
		return domain.CampaignSpec{}, err
	}
	spec.Slug = slug
	return spec, nil
}

// uniqueSlug suffixes slug with a short random fragment when it is taken.
func uniqueSlug(ctx context.Context, campaigns port.CampaignRepository, slug string) (string, error) {
	exists, err := campaigns.SlugExists(ctx, slug)
	if err != nil {
		return "", fmt.Errorf("check slug: %w", err)
	}
	if !exists {
		return slug, nil
	}
	return slug + "-" + uuid.NewString()[:8], nil
}

func (g *CampaignSpecGenerator) prompt(strategy domain.Strategy, inlet *domain.Inlet, recent []domain.CampaignSpec) string {
	var b strings.Builder
	b.WriteString("You write search advertising campaign briefs for a direct primary care membership practice.\n")
	b.WriteString("Membership is not insurance and the practice does not bill insurance.\n")
	b.WriteString("Never mention drugs, prescriptions, insurance billing, statistics, percentages or superlatives.\n\n")

	switch strategy {
	case domain.StrategyEducational:
		b.WriteString("Strategy: EDUCATIONAL. Target searchers still learning how membership medicine works.\n")
	default:
		b.WriteString("Strategy: TRANSACTIONAL. Target searchers ready to book a doctor.\n")
	}
	if inlet.Persona != "" {
		fmt.Fprintf(&b, "Persona: %s\n", inlet.Persona)
	}
	if inlet.Intent != "" {
		fmt.Fprintf(&b, "Intent: %s\n", inlet.Intent)
	}
	if len(inlet.SeedKeywords) > 0 {
		fmt.Fprintf(&b, "Seed keywords: %s\n", strings.Join(inlet.SeedKeywords, ", "))
	}
	if inlet.Geo != "" {
		fmt.Fprintf(&b, "Geo: %s\n", inlet.Geo)
	}
	if inlet.Tone != "" {
		fmt.Fprintf(&b, "Tone: %s\n", inlet.Tone)
	}

	if len(recent) > 0 {
		b.WriteString("\nExisting campaigns. Propose something different:\n")
		for _, s := range recent {
			fmt.Fprintf(&b, "- %s\n", s.Summary())
		}
	}

	b.WriteString("\nReturn 3 to 6 benefits, 2 to 4 proof points and at least one disclaimer. ")
	b.WriteString("Keep benefits under 30 characters and proof points under 90.\n")
	return b.String()
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns s into a lowercase kebab-case identifier safe for URLs.
func Slugify(s string) string {
	s = slugInvalid.ReplaceAllString(strings.ToLower(s), "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugLen {
		s = strings.TrimRight(s[:maxSlugLen], "-")
	}
	return s
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func containsFold(list []string, s string) bool {
	for _, it := range list {
		if strings.EqualFold(it, s) {
			return true
		}
	}
	return false
}
