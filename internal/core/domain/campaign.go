package domain

import "time"

// Strategy selects how a campaign speaks to its audience. Transactional
// campaigns push for a booking, educational campaigns lead with a briefing.
type Strategy string

const (
	StrategyTransactional Strategy = "TRANSACTIONAL"
	StrategyEducational   Strategy = "EDUCATIONAL"
)

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	return s == StrategyTransactional || s == StrategyEducational
}

// CampaignSpec is the immutable intent blueprint a run is generated from.
// Once persisted it is never mutated; a changed intent creates a new spec
// and a new run.
type CampaignSpec struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Persona      string    `json:"persona"`
	Intent       string    `json:"intent"`
	SeedKeywords []string  `json:"seedKeywords"`
	Strategy     Strategy  `json:"strategy"`
	Benefits     []string  `json:"benefits"`
	ProofPoints  []string  `json:"proofPoints"`
	Disclaimers  []string  `json:"disclaimers"`
	BudgetDaily  float64   `json:"budgetDaily"` // account currency units per day
	TargetCPA    float64   `json:"targetCpa"`
	Geo          string    `json:"geo"`
	Tone         string    `json:"tone"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Summary is the one-line description used when prompting for new specs so
// the generator can avoid repeating an existing campaign.
func (s CampaignSpec) Summary() string {
	return s.Slug + ": " + s.Intent
}

// Inlet carries optional operator hints for a generated campaign spec.
type Inlet struct {
	Persona      string   `json:"persona,omitempty"`
	Intent       string   `json:"intent,omitempty"`
	SeedKeywords []string `json:"seedKeywords,omitempty"`
	Geo          string   `json:"geo,omitempty"`
	Tone         string   `json:"tone,omitempty"`
}
