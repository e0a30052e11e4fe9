package compliance

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Contexts name where a piece of text will be published. Only the landing
// page context carries extra rules.
const (
	ContextCampaignSpec = "Campaign Spec"
	ContextHeadline     = "Ad Headline"
	ContextDescription  = "Ad Description"
	ContextKeyword      = "Keyword"
	ContextLandingPage  = "Landing Page"
)

// Status is the outcome of a validation.
type Status string

const (
	Pass Status = "PASS"
	Fail Status = "FAIL"
)

// Result is the verdict for one text. Reasons are empty on PASS.
type Result struct {
	Status  Status   `json:"status"`
	Reasons []string `json:"reasons"`
}

// Passed reports whether the text passed.
func (r Result) Passed() bool { return r.Status == Pass }

// Validator checks text against a Policy. It holds no mutable state and is
// safe for concurrent use.
type Validator struct {
	policy *Policy
	strip  []*regexp.Regexp
}

// New returns a validator enforcing p.
func New(p *Policy) (*Validator, error) {
	if err := p.compile(); err != nil {
		return nil, err
	}
	v := &Validator{policy: p}
	for _, c := range p.Denylist {
		for _, t := range c.Terms {
			if t == "" {
				continue
			}
			// Whole words go, so "guaranteed" does not leave "d" behind.
			v.strip = append(v.strip, regexp.MustCompile(`(?i)\w*`+regexp.QuoteMeta(t)+`\w*`))
		}
	}
	return v, nil
}

// Policy returns the policy the validator enforces.
func (v *Validator) Policy() *Policy { return v.policy }

// Validate checks text published under context.
func (v *Validator) Validate(text, context string) Result {
	lower := normalize(text)
	var reasons []string
	seen := make(map[string]struct{})
	add := func(r string) {
		if _, ok := seen[r]; ok {
			return
		}
		seen[r] = struct{}{}
		reasons = append(reasons, r)
	}

	for _, c := range v.policy.Denylist {
		for _, t := range c.Terms {
			if t != "" && strings.Contains(lower, t) {
				add(fmt.Sprintf("contains prohibited term %q (%s); remove or rephrase it", t, c.Description))
			}
		}
	}

	for _, rule := range v.policy.ContextSensitive {
		if v.unnegated(lower, rule.Phrase) >= 0 {
			add(fmt.Sprintf("mentions %q without a negation; %s", rule.Phrase, rule.Hint))
		}
	}

	if req := v.policy.Required; req.Context != "" && strings.EqualFold(context, req.Context) && len(req.Phrases) > 0 {
		found := false
		for _, p := range req.Phrases {
			if strings.Contains(lower, p) {
				found = true
				break
			}
		}
		if !found {
			quoted := make([]string, len(req.Phrases))
			for i, p := range req.Phrases {
				quoted[i] = fmt.Sprintf("%q", p)
			}
			add(fmt.Sprintf("missing required disclaimer; include one of %s", strings.Join(quoted, ", ")))
		}
	}

	if len(reasons) == 0 {
		return Result{Status: Pass, Reasons: []string{}}
	}
	return Result{Status: Fail, Reasons: reasons}
}

// ValidateAll validates each text and merges the reasons.
func (v *Validator) ValidateAll(context string, texts ...string) Result {
	return v.Validate(strings.Join(texts, "\n"), context)
}

// unnegated returns the byte offset of the first occurrence of phrase in
// lower that is not preceded by a negation token, or -1.
func (v *Validator) unnegated(lower, phrase string) int {
	if phrase == "" {
		return -1
	}
	offset := 0
	for {
		i := strings.Index(lower[offset:], phrase)
		if i < 0 {
			return -1
		}
		at := offset + i
		if !v.negated(lower, at) {
			return at
		}
		offset = at + len(phrase)
	}
}

func (v *Validator) negated(lower string, at int) bool {
	start := at - v.policy.NegationLookback
	if start < 0 {
		start = 0
	}
	// Widen to the start of the word the window cut into, so the tail of
	// "cannot" is not read as "not".
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(lower[:start])
		if !unicode.IsLetter(r) && r != '\'' {
			break
		}
		start -= size
	}
	window := strings.FieldsFunc(lower[start:at], func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	for _, w := range window {
		for _, n := range v.policy.Negations {
			if w == n {
				return true
			}
		}
	}
	return false
}

var spaces = regexp.MustCompile(`\s+`)

// Sanitize rewrites risky phrasing and strips every denylisted term and
// every un-negated context-sensitive phrase. The result always passes the
// denylist checks of Validate, though it may be empty.
func (v *Validator) Sanitize(text string) string {
	out := text
	for _, r := range v.policy.Replacements {
		out = r.re.ReplaceAllString(out, r.Replacement)
	}
	// Stripping can splice two fragments into a new term, so repeat until
	// nothing changes.
	for range 3 {
		before := out
		for _, re := range v.strip {
			out = re.ReplaceAllString(out, "")
		}
		if out == before {
			break
		}
	}
	for _, rule := range v.policy.ContextSensitive {
		for {
			lower, idx := fold(out)
			at := v.unnegated(lower, rule.Phrase)
			if at < 0 {
				break
			}
			out = out[:idx[at]] + out[idx[at+len(rule.Phrase)]:]
		}
	}
	out = spaces.ReplaceAllString(out, " ")
	return strings.Trim(out, " ,;:-")
}

// SanitizeList sanitizes every item, drops items left empty and falls back
// to defaults when nothing survives.
func (v *Validator) SanitizeList(items, defaults []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s := v.Sanitize(it); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), defaults...)
	}
	return out
}

// normalize lowercases text and folds typographic apostrophes so negations
// like "don’t" match.
func normalize(text string) string {
	lower, _ := fold(text)
	return lower
}

// fold is normalize that also maps every byte offset of the result, plus
// its length, back to the offset in text of the rune it came from.
func fold(text string) (string, []int) {
	var b strings.Builder
	b.Grow(len(text))
	idx := make([]int, 0, len(text)+1)
	for i, r := range text {
		if r == '’' {
			r = '\''
		} else {
			r = unicode.ToLower(r)
		}
		n, _ := b.WriteRune(r)
		for range n {
			idx = append(idx, i)
		}
	}
	return b.String(), append(idx, len(text))
}
