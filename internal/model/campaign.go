// internal/model/campaign.go
package model

import "time"

const (
    StatusPending   = "Pending"
    StatusApproved  = "Approved"
    StatusRejected  = "Rejected"
    StatusCompleted = "Completed"
)

// Campaign.InfluencerID is a weak reference: it may point at an influencer
// that no longer exists, in which case the campaign renders as unassigned.
// StatusCompleted is terminal; a completed campaign never leaves that state.
type Campaign struct {
    ID                string     `json:"id"`
    Name              string     `json:"name"`
    InfluencerID      string     `json:"influencerId"`
    Department        string     `json:"department"`
    Status            string     `json:"status"`
    Budget            float64    `json:"budget"`
    StartDate         string     `json:"startDate"`
    EndDate           string     `json:"endDate"`
    CompletionDate    string     `json:"completionDate,omitempty"`
    CompletionSummary string     `json:"completionSummary,omitempty"`
    Deliverables      string     `json:"deliverables,omitempty"`
    Rating            int        `json:"rating,omitempty"`
    LastUpdated       *time.Time `json:"lastUpdated,omitempty"`
}
