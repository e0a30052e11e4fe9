package domain

// Platform limits for a responsive search ad.
const (
	MaxHeadlineLen    = 30
	MaxDescriptionLen = 90
	MinHeadlines      = 3
	MaxHeadlines      = 15
	MinDescriptions   = 2
	MaxDescriptions   = 4
)

// MatchType controls how loosely a keyword matches a search query.
type MatchType string

const (
	MatchBroad  MatchType = "BROAD"
	MatchPhrase MatchType = "PHRASE"
	MatchExact  MatchType = "EXACT"
)

// Keyword is a positive keyword with its match type.
type Keyword struct {
	Text      string    `json:"text"`
	MatchType MatchType `json:"matchType"`
}

// AdPlan is the platform-ready set of assets derived from a CampaignSpec.
// Every element has passed compliance and the counts always satisfy the
// platform minimums.
type AdPlan struct {
	Headlines        []string  `json:"headlines"`
	Descriptions     []string  `json:"descriptions"`
	Keywords         []Keyword `json:"keywords"`
	NegativeKeywords []string  `json:"negativeKeywords"`
	FinalURL         string    `json:"finalUrl"`
}
