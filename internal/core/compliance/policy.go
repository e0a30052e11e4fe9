package compliance

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed policy.yaml
var defaultPolicyYAML []byte

// Policy is the versioned rule set the validator enforces. It is loaded at
// startup and never mutated afterwards.
type Policy struct {
	Version          string             `yaml:"version"`
	NegationLookback int                `yaml:"negation_lookback"`
	Negations        []string           `yaml:"negations"`
	Denylist         []Category         `yaml:"denylist"`
	ContextSensitive []ContextRule      `yaml:"context_sensitive"`
	Required         RequiredDisclaimer `yaml:"required_disclaimers"`
	Replacements     []Replacement      `yaml:"replacements"`
	NegativeKeywords []string           `yaml:"negative_keywords"`
	SafeDefaults     SafeDefaults       `yaml:"safe_defaults"`
}

// Category groups denylisted terms under an operator-facing description.
type Category struct {
	Name        string   `yaml:"category"`
	Description string   `yaml:"description"`
	Terms       []string `yaml:"terms"`
}

// ContextRule flags Phrase only when it is not preceded by a negation.
type ContextRule struct {
	Phrase   string `yaml:"phrase"`
	Category string `yaml:"category"`
	Hint     string `yaml:"hint"`
}

// RequiredDisclaimer lists phrases of which at least one must appear in
// text validated under Context.
type RequiredDisclaimer struct {
	Context string   `yaml:"context"`
	Phrases []string `yaml:"phrases"`
}

// Replacement rewrites risky phrasing during sanitization.
type Replacement struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`

	re *regexp.Regexp
}

// SafeDefaults replace spec lists that sanitization leaves empty.
type SafeDefaults struct {
	Benefits    []string `yaml:"benefits"`
	ProofPoints []string `yaml:"proof_points"`
	Disclaimers []string `yaml:"disclaimers"`
}

// DefaultPolicy returns the policy embedded in the binary.
func DefaultPolicy() (*Policy, error) {
	return ParsePolicy(defaultPolicyYAML)
}

// LoadPolicy reads a policy from path. An empty path loads the embedded
// default.
func LoadPolicy(path string) (*Policy, error) {
	if path == "" {
		return DefaultPolicy()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading compliance policy: %w", err)
	}
	return ParsePolicy(data)
}

// ParsePolicy decodes and validates a YAML policy.
func ParsePolicy(data []byte) (*Policy, error) {
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing compliance policy: %w", err)
	}
	if err := p.compile(); err != nil {
		return nil, err
	}
	return &p, nil
}

// compile normalises terms and compiles replacement patterns. It is also
// called by New so hand-built policies in tests behave like loaded ones.
func (p *Policy) compile() error {
	if p.Version == "" {
		return errors.New("compliance policy: version is required")
	}
	if p.NegationLookback <= 0 {
		p.NegationLookback = 20
	}
	for i := range p.Negations {
		p.Negations[i] = strings.ToLower(strings.TrimSpace(p.Negations[i]))
	}
	for i := range p.Denylist {
		for j, t := range p.Denylist[i].Terms {
			p.Denylist[i].Terms[j] = strings.ToLower(strings.TrimSpace(t))
		}
	}
	for i := range p.ContextSensitive {
		p.ContextSensitive[i].Phrase = strings.ToLower(strings.TrimSpace(p.ContextSensitive[i].Phrase))
	}
	for i := range p.Required.Phrases {
		p.Required.Phrases[i] = strings.ToLower(strings.TrimSpace(p.Required.Phrases[i]))
	}
	for i := range p.Replacements {
		if p.Replacements[i].re != nil {
			continue
		}
		re, err := regexp.Compile(p.Replacements[i].Pattern)
		if err != nil {
			return fmt.Errorf("compliance policy: replacement %q: %w", p.Replacements[i].Pattern, err)
		}
		p.Replacements[i].re = re
	}
	return nil
}
