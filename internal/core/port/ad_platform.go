package port

import (
	"context"
	"fmt"
	"strings"
	"time"

	"adpilot/internal/core/domain"
)

// CampaignStatus is the serving status requested for a platform campaign.
type CampaignStatus string

const (
	CampaignPaused  CampaignStatus = "PAUSED"
	CampaignEnabled CampaignStatus = "ENABLED"
)

// BudgetInput describes a shared daily budget. Amounts are in micros of the
// account currency.
type BudgetInput struct {
	Name         string
	AmountMicros int64
}

type CampaignInput struct {
	Name            string
	BudgetID        string
	Status          CampaignStatus
	TargetCPAMicros int64
}

type AdGroupInput struct {
	Name         string
	CampaignID   string
	CPCBidMicros int64
}

type ResponsiveAdInput struct {
	AdGroupID    string
	Headlines    []string
	Descriptions []string
	FinalURL     string
}

// MetricRow is one day of campaign performance as reported by the platform.
type MetricRow struct {
	Day         time.Time
	Impressions int64
	Clicks      int64
	Conversions float64
	Cost        float64
}

// ClickConversion attributes a conversion to an ad click.
type ClickConversion struct {
	ConversionAction string
	GCLID            string
	At               time.Time
	Value            float64
	Currency         string
}

// AdPlatform is the outbound port to the advertising platform. Every Create
// call returns the platform's resource reference. The platform has no
// transactions; a resource created before a later failure stays created.
type AdPlatform interface {
	IsConfigured() bool
	// MissingSettings names the settings that keep the platform unconfigured.
	MissingSettings() []string

	CreateBudget(ctx context.Context, in BudgetInput) (string, error)
	CreateCampaign(ctx context.Context, in CampaignInput) (string, error)
	CreateGeoCriterion(ctx context.Context, campaignID, geo string) (string, error)
	CreateAdGroup(ctx context.Context, in AdGroupInput) (string, error)
	CreateKeywords(ctx context.Context, adGroupID string, keywords []domain.Keyword) ([]string, error)
	CreateNegativeKeywords(ctx context.Context, campaignID string, terms []string) ([]string, error)
	CreateResponsiveAd(ctx context.Context, in ResponsiveAdInput) (string, error)

	// QueryMetrics returns one row per day in r for the campaign.
	QueryMetrics(ctx context.Context, campaignID string, r domain.DateRange) ([]MetricRow, error)

	FindOrCreateConversionAction(ctx context.Context, name string) (string, error)
	UploadClickConversion(ctx context.Context, c ClickConversion) error
}

// PlatformError is a request the platform rejected. Messages are the
// platform's own error messages.
type PlatformError struct {
	StatusCode int
	Messages   []string
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("ad platform returned %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
}
