package adplatform

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// geoTargets maps country codes to geo target constants.
var geoTargets = map[string]int{
	"US": 2840,
	"CA": 2124,
	"GB": 2826,
	"AU": 2036,
	"NZ": 2554,
	"IE": 2372,
}

// GeoTargetConstant resolves a country code or a numeric constant id.
func GeoTargetConstant(geo string) (string, error) {
	geo = strings.ToUpper(strings.TrimSpace(geo))
	if id, ok := geoTargets[geo]; ok {
		return "geoTargetConstants/" + strconv.Itoa(id), nil
	}
	if _, err := strconv.Atoi(geo); err == nil {
		return "geoTargetConstants/" + geo, nil
	}
	return "", fmt.Errorf("unknown geo target %q", geo)
}

func (c *Client) CreateBudget(ctx context.Context, in port.BudgetInput) (string, error) {
	return c.mutateOne(ctx, "create_budget", "campaignBudgets", map[string]any{
		"name":             in.Name,
		"amountMicros":     strconv.FormatInt(in.AmountMicros, 10),
		"deliveryMethod":   "STANDARD",
		"explicitlyShared": false,
	})
}

func (c *Client) CreateCampaign(ctx context.Context, in port.CampaignInput) (string, error) {
	create := map[string]any{
		"name":                   in.Name,
		"status":                 string(in.Status),
		"advertisingChannelType": "SEARCH",
		"campaignBudget":         in.BudgetID,
		"networkSettings": map[string]bool{
			"targetGoogleSearch":         true,
			"targetSearchNetwork":        true,
			"targetContentNetwork":       false,
			"targetPartnerSearchNetwork": false,
		},
	}
	if in.TargetCPAMicros > 0 {
		create["targetCpa"] = map[string]string{"targetCpaMicros": strconv.FormatInt(in.TargetCPAMicros, 10)}
	} else {
		create["manualCpc"] = map[string]any{}
	}
	return c.mutateOne(ctx, "create_campaign", "campaigns", create)
}

func (c *Client) CreateGeoCriterion(ctx context.Context, campaignID, geo string) (string, error) {
	constant, err := GeoTargetConstant(geo)
	if err != nil {
		return "", err
	}
	return c.mutateOne(ctx, "create_geo_criterion", "campaignCriteria", map[string]any{
		"campaign": campaignID,
		"location": map[string]string{"geoTargetConstant": constant},
	})
}

func (c *Client) CreateAdGroup(ctx context.Context, in port.AdGroupInput) (string, error) {
	return c.mutateOne(ctx, "create_ad_group", "adGroups", map[string]any{
		"name":         in.Name,
		"campaign":     in.CampaignID,
		"status":       "ENABLED",
		"type":         "SEARCH_STANDARD",
		"cpcBidMicros": strconv.FormatInt(in.CPCBidMicros, 10),
	})
}

func (c *Client) CreateKeywords(ctx context.Context, adGroupID string, keywords []domain.Keyword) ([]string, error) {
	if len(keywords) == 0 {
		return nil, nil
	}
	creates := make([]any, len(keywords))
	for i, k := range keywords {
		creates[i] = map[string]any{
			"adGroup": adGroupID,
			"status":  "ENABLED",
			"keyword": map[string]string{"text": k.Text, "matchType": string(k.MatchType)},
		}
	}
	return c.mutate(ctx, "create_keywords", "adGroupCriteria", creates...)
}

func (c *Client) CreateNegativeKeywords(ctx context.Context, campaignID string, terms []string) ([]string, error) {
	if len(terms) == 0 {
		return nil, nil
	}
	creates := make([]any, len(terms))
	for i, t := range terms {
		creates[i] = map[string]any{
			"campaign": campaignID,
			"negative": true,
			"keyword":  map[string]string{"text": t, "matchType": string(domain.MatchBroad)},
		}
	}
	return c.mutate(ctx, "create_negative_keywords", "campaignCriteria", creates...)
}

type adText struct {
	Text string `json:"text"`
}

func (c *Client) CreateResponsiveAd(ctx context.Context, in port.ResponsiveAdInput) (string, error) {
	headlines := make([]adText, len(in.Headlines))
	for i, h := range in.Headlines {
		headlines[i] = adText{Text: h}
	}
	descriptions := make([]adText, len(in.Descriptions))
	for i, d := range in.Descriptions {
		descriptions[i] = adText{Text: d}
	}
	return c.mutateOne(ctx, "create_responsive_ad", "adGroupAds", map[string]any{
		"adGroup": in.AdGroupID,
		"status":  "ENABLED",
		"ad": map[string]any{
			"finalUrls": []string{in.FinalURL},
			"responsiveSearchAd": map[string]any{
				"headlines":    headlines,
				"descriptions": descriptions,
			},
		},
	})
}
