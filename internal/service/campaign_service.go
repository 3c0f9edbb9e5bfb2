// internal/service/campaign_service.go
package service

import (
    "fmt"
    "log"
    "time"

    "github.com/google/uuid"

    "github.com/nxthub/influencer-hub-backend/internal/auth"
    appErrors "github.com/nxthub/influencer-hub-backend/internal/errors"
    "github.com/nxthub/influencer-hub-backend/internal/model"
    "github.com/nxthub/influencer-hub-backend/internal/queue"
    "github.com/nxthub/influencer-hub-backend/internal/repository"
)

// CampaignService enforces the campaign status lifecycle. Pending, Approved
// and Rejected move freely among each other; Completed is terminal and only
// reachable through Complete. Authorization is checked on every call against
// the session passed in, never cached on the record.
type CampaignService struct {
    CampaignRepo repository.CampaignRepositoryInterface
    Queue        queue.Queue
}

func (s *CampaignService) ListCampaigns() ([]model.Campaign, error) {
    return s.CampaignRepo.List()
}

// CreateCampaign assigns a fresh id, forces status to Pending and stamps
// lastUpdated. The new campaign is prepended and the updated collection
// snapshot returned.
func (s *CampaignService) CreateCampaign(draft model.Campaign, sess auth.Session) (*model.Campaign, []model.Campaign, error) {
    if !auth.CanCreateCampaign(sess) {
        return nil, nil, appErrors.NewUnauthorized("create campaign", "executives and guests cannot create campaigns")
    }

    if draft.Name == "" {
        return nil, nil, appErrors.NewValidation("name")
    }
    if draft.Department == "" {
        return nil, nil, appErrors.NewValidation("department")
    }
    if draft.Budget <= 0 {
        return nil, nil, appErrors.NewValidation("budget")
    }
    if draft.StartDate == "" {
        return nil, nil, appErrors.NewValidation("startDate")
    }

    now := time.Now().UTC()
    campaign := draft
    campaign.ID = uuid.NewString()
    campaign.Status = model.StatusPending
    campaign.CompletionDate = ""
    campaign.CompletionSummary = ""
    campaign.LastUpdated = &now

    campaigns, err := s.CampaignRepo.List()
    if err != nil {
        return nil, nil, err
    }

    updated := append([]model.Campaign{campaign}, campaigns...)
    if err := s.CampaignRepo.ReplaceAll(updated); err != nil {
        return nil, nil, err
    }

    s.publishActivity(model.ActivityCampaignCreated, campaign.ID, campaign.Name, sess.Email,
        fmt.Sprintf("campaign created for department %s", campaign.Department))

    return &campaign, updated, nil
}

// SetStatus moves a campaign among the non-terminal statuses. Completed is
// not reachable here; only Complete can produce it.
func (s *CampaignService) SetStatus(id, status string, sess auth.Session) ([]model.Campaign, error) {
    switch status {
    case model.StatusPending, model.StatusApproved, model.StatusRejected:
    case model.StatusCompleted:
        return nil, appErrors.NewValidationMessage("status", "Completed can only be reached through the completion operation")
    default:
        return nil, appErrors.NewValidationMessage("status", fmt.Sprintf("unknown status %q", status))
    }

    campaigns, err := s.CampaignRepo.List()
    if err != nil {
        return nil, err
    }

    idx := findCampaign(campaigns, id)
    if idx < 0 {
        return nil, appErrors.NewCampaignNotFound(id)
    }

    if !auth.CanEditCampaign(sess, campaigns[idx]) {
        return nil, appErrors.NewUnauthorized("set campaign status", "campaign belongs to another department")
    }
    if campaigns[idx].Status == model.StatusCompleted {
        return nil, appErrors.NewAlreadyCompleted(id)
    }

    now := time.Now().UTC()
    campaigns[idx].Status = status
    campaigns[idx].LastUpdated = &now

    if err := s.CampaignRepo.ReplaceAll(campaigns); err != nil {
        return nil, err
    }

    s.publishActivity(model.ActivityCampaignStatus, id, campaigns[idx].Name, sess.Email,
        fmt.Sprintf("status changed to %s", status))

    return campaigns, nil
}

// Complete is the only way into the terminal state. A second call on the
// same campaign fails with ErrAlreadyCompleted and leaves the record
// untouched.
func (s *CampaignService) Complete(id, completionDate, summary string, sess auth.Session) ([]model.Campaign, error) {
    if completionDate == "" {
        return nil, appErrors.NewValidation("completionDate")
    }
    if summary == "" {
        return nil, appErrors.NewValidation("completionSummary")
    }

    campaigns, err := s.CampaignRepo.List()
    if err != nil {
        return nil, err
    }

    idx := findCampaign(campaigns, id)
    if idx < 0 {
        return nil, appErrors.NewCampaignNotFound(id)
    }

    if !auth.CanEditCampaign(sess, campaigns[idx]) {
        return nil, appErrors.NewUnauthorized("complete campaign", "campaign belongs to another department")
    }
    if campaigns[idx].Status == model.StatusCompleted {
        return nil, appErrors.NewAlreadyCompleted(id)
    }

    now := time.Now().UTC()
    campaigns[idx].Status = model.StatusCompleted
    campaigns[idx].CompletionDate = completionDate
    campaigns[idx].CompletionSummary = summary
    campaigns[idx].LastUpdated = &now

    if err := s.CampaignRepo.ReplaceAll(campaigns); err != nil {
        return nil, err
    }

    s.publishActivity(model.ActivityCampaignCompleted, id, campaigns[idx].Name, sess.Email, summary)

    return campaigns, nil
}

func (s *CampaignService) publishActivity(eventType, entityID, entityName, actor, detail string) {
    if s.Queue == nil {
        return
    }
    event := model.ActivityEvent{
        ID:         uuid.NewString(),
        Type:       eventType,
        Actor:      actor,
        EntityID:   entityID,
        EntityName: entityName,
        Detail:     detail,
        OccurredAt: time.Now().UTC(),
    }
    if err := s.Queue.Publish(queue.ActivityTopic, event); err != nil {
        log.Println("⚠️ failed to enqueue activity event:", err)
    }
}

func findCampaign(campaigns []model.Campaign, id string) int {
    for i := range campaigns {
        if campaigns[i].ID == id {
            return i
        }
    }
    return -1
}
