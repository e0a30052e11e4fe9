package domain

import "strings"

// Hero is the above-the-fold copy of a landing page.
type Hero struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	CTA         string `json:"cta"`
}

// Step is one entry of the "how it works" section.
type Step struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PricingTier describes one membership option.
type PricingTier struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
}

// FAQ is a question and answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// LandingPageSpec is the content of the landing page an ad points to.
type LandingPageSpec struct {
	Hero         Hero          `json:"hero"`
	Benefits     []string      `json:"benefits"`
	ProofPoints  []string      `json:"proofPoints"`
	HowItWorks   []Step        `json:"howItWorks"`
	Briefing     string        `json:"briefing,omitempty"`     // markdown
	BriefingHTML string        `json:"briefingHtml,omitempty"` // rendered Briefing
	PricingTiers []PricingTier `json:"pricingTiers"`
	FAQs         []FAQ         `json:"faqs"`
	Disclaimer   string        `json:"disclaimer"`
}

// Text flattens every human-readable field into a single string, the form
// compliance checks run against.
func (l LandingPageSpec) Text() string {
	parts := []string{l.Hero.Headline, l.Hero.Subheadline, l.Hero.CTA}
	parts = append(parts, l.Benefits...)
	parts = append(parts, l.ProofPoints...)
	for _, s := range l.HowItWorks {
		parts = append(parts, s.Title, s.Body)
	}
	parts = append(parts, l.Briefing)
	for _, t := range l.PricingTiers {
		parts = append(parts, t.Name, t.Price)
		parts = append(parts, t.Features...)
	}
	for _, f := range l.FAQs {
		parts = append(parts, f.Question, f.Answer)
	}
	parts = append(parts, l.Disclaimer)

	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n")
}
