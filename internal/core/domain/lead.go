package domain

import "time"

// LeadStatus tracks whether a lead has converted.
type LeadStatus string

const (
	LeadPending LeadStatus = "PENDING"
	LeadBooked  LeadStatus = "BOOKED"
)

// Lead is a visitor who arrived through a run's ad. GCLID is the platform
// click identifier used to attribute the conversion back to the ad click.
type Lead struct {
	ID        string     `json:"id"`
	RunID     string     `json:"runId"`
	GCLID     string     `json:"gclid,omitempty"`
	Name      string     `json:"name,omitempty"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Status    LeadStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	BookedAt  *time.Time `json:"bookedAt,omitempty"`
}

// LeadEvent is the tracking event that creates a lead.
type LeadEvent struct {
	RunID string `json:"runId"`
	GCLID string `json:"gclid"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
