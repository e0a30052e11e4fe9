package domain

import "time"

// MetricSource records where a snapshot came from.
type MetricSource string

const (
	SourcePlatform  MetricSource = "platform"
	SourceSynthetic MetricSource = "synthetic"
)

// MetricSnapshot is the performance of a run on one calendar day. There is
// at most one snapshot per (run, day).
type MetricSnapshot struct {
	RunID       string       `json:"runId"`
	Day         time.Time    `json:"day"`
	Impressions int64        `json:"impressions"`
	Clicks      int64        `json:"clicks"`
	Conversions float64      `json:"conversions"`
	Cost        float64      `json:"cost"`
	Source      MetricSource `json:"source"`
}

// MetricAggregate is the total performance of a run with derived ratios.
type MetricAggregate struct {
	RunID       string    `json:"runId"`
	Days        int       `json:"days"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Conversions float64   `json:"conversions"`
	Cost        float64   `json:"cost"`
	CTR         float64   `json:"ctr"`
	CVR         float64   `json:"cvr"`
	CPA         float64   `json:"cpa"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Aggregate sums snapshots and derives CTR, CVR and CPA. Ratios with a zero
// denominator are 0.
func Aggregate(runID string, rows []MetricSnapshot) MetricAggregate {
	agg := MetricAggregate{RunID: runID, Days: len(rows)}
	for _, r := range rows {
		agg.Impressions += r.Impressions
		agg.Clicks += r.Clicks
		agg.Conversions += r.Conversions
		agg.Cost += r.Cost
	}
	if agg.Impressions > 0 {
		agg.CTR = float64(agg.Clicks) / float64(agg.Impressions)
	}
	if agg.Clicks > 0 {
		agg.CVR = agg.Conversions / float64(agg.Clicks)
	}
	if agg.Conversions > 0 {
		agg.CPA = agg.Cost / agg.Conversions
	}
	return agg
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	From time.Time
	To   time.Time
}

// TrailingDays returns the range of n days ending on the day of now.
func TrailingDays(now time.Time, n int) DateRange {
	to := Day(now)
	return DateRange{From: to.AddDate(0, 0, -(n - 1)), To: to}
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
