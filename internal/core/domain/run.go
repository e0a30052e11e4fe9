package domain

import (
	"encoding/json"
	"time"
)

// RunStatus is the lifecycle state of a CampaignRun.
type RunStatus string

const (
	RunDraft     RunStatus = "DRAFT"
	RunValidated RunStatus = "VALIDATED"
	RunReady     RunStatus = "READY"
	RunDeployed  RunStatus = "DEPLOYED"
	RunActive    RunStatus = "ACTIVE"
	RunError     RunStatus = "ERROR"
)

var runTransitions = map[RunStatus][]RunStatus{
	RunDraft:     {RunValidated},
	RunValidated: {RunValidated, RunReady, RunDeployed},
	RunReady:     {RunReady, RunDeployed},
	RunDeployed:  {RunActive},
	RunActive:    {},
	RunError:     {RunDraft},
}

// CanTransition reports whether a run in status s may move to next. ERROR
// is reachable from every state; an errored run may only be reset to DRAFT
// for a forced rebuild.
func (s RunStatus) CanTransition(next RunStatus) bool {
	if next == RunError {
		return true
	}
	for _, allowed := range runTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Deployed reports whether external resources exist for the run.
func (s RunStatus) Deployed() bool {
	return s == RunDeployed || s == RunActive
}

// Stage names a cached step of the artifact pipeline.
type Stage string

const (
	StageCampaignSpec Stage = "campaign_spec"
	StageAdPlan       Stage = "ad_plan"
	StageLandingPage  Stage = "landing_page"
)

// Valid reports whether s names a known stage.
func (s Stage) Valid() bool {
	switch s {
	case StageCampaignSpec, StageAdPlan, StageLandingPage:
		return true
	}
	return false
}

// PipelineArtifact is the stored output of one stage for one run. Version
// starts at 1 and increments every time the stage is regenerated.
type PipelineArtifact struct {
	RunID     string          `json:"runId"`
	Stage     Stage           `json:"stage"`
	Data      json.RawMessage `json:"data"`
	Version   int             `json:"version"`
	Timestamp time.Time       `json:"timestamp"`
}

// ResourceKind names an external resource created during sync.
type ResourceKind string

const (
	ResourceBudget       ResourceKind = "budget"
	ResourceCampaign     ResourceKind = "campaign"
	ResourceGeoCriterion ResourceKind = "geo_criterion"
	ResourceAdGroup      ResourceKind = "ad_group"
	ResourceAd           ResourceKind = "ad"
	// Bulk steps record the first criterion they created so a resync can
	// tell the step already ran.
	ResourceKeywords         ResourceKind = "keywords"
	ResourceNegativeKeywords ResourceKind = "negative_keywords"
)

// ExternalResources holds platform-assigned references for a deployed run.
// Fields are filled in as each sync step succeeds.
type ExternalResources struct {
	BudgetID       string `json:"budgetId,omitempty"`
	CampaignID     string `json:"campaignId,omitempty"`
	GeoCriterionID string `json:"geoCriterionId,omitempty"`
	AdGroupID      string `json:"adGroupId,omitempty"`
	AdID           string `json:"adId,omitempty"`
	KeywordsRef    string `json:"keywordsRef,omitempty"`
	NegativesRef   string `json:"negativeKeywordsRef,omitempty"`
}

// Set stores ref under kind.
func (r *ExternalResources) Set(kind ResourceKind, ref string) {
	switch kind {
	case ResourceBudget:
		r.BudgetID = ref
	case ResourceCampaign:
		r.CampaignID = ref
	case ResourceGeoCriterion:
		r.GeoCriterionID = ref
	case ResourceAdGroup:
		r.AdGroupID = ref
	case ResourceAd:
		r.AdID = ref
	case ResourceKeywords:
		r.KeywordsRef = ref
	case ResourceNegativeKeywords:
		r.NegativesRef = ref
	}
}

// Complete reports whether every mandatory resource has been created. The
// geo criterion is optional.
func (r ExternalResources) Complete() bool {
	return r.BudgetID != "" && r.CampaignID != "" && r.AdGroupID != "" && r.AdID != ""
}

// CampaignRun is one attempt at generating and deploying assets for a spec.
type CampaignRun struct {
	ID         string            `json:"id"`
	SpecID     string            `json:"specId"`
	Status     RunStatus         `json:"status"`
	LastError  string            `json:"lastError,omitempty"`
	Resources  ExternalResources `json:"resources"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
	DeployedAt *time.Time        `json:"deployedAt,omitempty"`
}
