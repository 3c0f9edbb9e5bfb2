// internal/model/activity.go
package model

import "time"

const (
    ActivityCampaignCreated    = "campaign_created"
    ActivityCampaignStatus     = "campaign_status_changed"
    ActivityCampaignCompleted  = "campaign_completed"
    ActivityInfluencerCreated  = "influencer_created"
    ActivityInfluencerUpdated  = "influencer_updated"
    ActivityInfluencerDeleted  = "influencer_deleted"
)

// ActivityEvent backs the dashboard's recent-activity feed. Events are
// appended newest-first and the log is capped, so the feed never grows
// without bound.
type ActivityEvent struct {
    ID         string    `json:"id"`
    Type       string    `json:"type"`
    Actor      string    `json:"actor"`
    EntityID   string    `json:"entityId"`
    EntityName string    `json:"entityName,omitempty"`
    Detail     string    `json:"detail,omitempty"`
    OccurredAt time.Time `json:"occurredAt"`
}
