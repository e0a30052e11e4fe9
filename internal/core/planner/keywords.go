package planner

import (
	"sort"
	"strings"

	"adpilot/internal/core/compliance"
	"adpilot/internal/core/domain"
)

// Validator is the compliance check the planner filters every asset
// through.
type Validator interface {
	Validate(text, context string) compliance.Result
}

// DefaultModifiers are the intent modifiers combined with every seed.
var DefaultModifiers = []string{"near me", "doctor", "membership", "clinic", "cost"}

// KeywordExpander turns seed keywords into match-type variants.
type KeywordExpander struct {
	validator Validator
	modifiers []string
}

// NewKeywordExpander returns an expander using modifiers, or
// DefaultModifiers when modifiers is empty.
func NewKeywordExpander(v Validator, modifiers []string) *KeywordExpander {
	if len(modifiers) == 0 {
		modifiers = DefaultModifiers
	}
	norm := make([]string, 0, len(modifiers))
	for _, m := range modifiers {
		if m = normalizeKeyword(m); m != "" {
			norm = append(norm, m)
		}
	}
	return &KeywordExpander{validator: v, modifiers: norm}
}

// Expand returns a PHRASE and an EXACT keyword for every compliant
// expansion of seeds. Output is sorted so the same seeds always produce the
// same plan.
func (e *KeywordExpander) Expand(seeds []string) []domain.Keyword {
	set := make(map[string]struct{})
	for _, s := range seeds {
		s = normalizeKeyword(s)
		if s == "" {
			continue
		}
		set[s] = struct{}{}
		for _, m := range e.modifiers {
			set[s+" "+m] = struct{}{}
			set[m+" "+s] = struct{}{}
		}
	}

	texts := make([]string, 0, len(set))
	for t := range set {
		texts = append(texts, t)
	}
	sort.Strings(texts)

	out := make([]domain.Keyword, 0, 2*len(texts))
	for _, t := range texts {
		if !e.validator.Validate(t, compliance.ContextKeyword).Passed() {
			continue
		}
		out = append(out,
			domain.Keyword{Text: t, MatchType: domain.MatchPhrase},
			domain.Keyword{Text: t, MatchType: domain.MatchExact},
		)
	}
	return out
}

func normalizeKeyword(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
