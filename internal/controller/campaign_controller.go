// internal/controller/campaign_controller.go
package controller

import (
    "encoding/json"
    "net/http"
    "strings"

    "github.com/go-chi/chi/v5"

    "github.com/nxthub/influencer-hub-backend/internal/model"
    "github.com/nxthub/influencer-hub-backend/internal/service"
)

type CampaignController struct {
    CampaignService *service.CampaignService
}

// ListCampaigns returns the full collection, optionally filtered by
// department and status query parameters.
func (c *CampaignController) ListCampaigns(w http.ResponseWriter, r *http.Request) {
    campaigns, err := c.CampaignService.ListCampaigns()
    if err != nil {
        writeError(w, err)
        return
    }

    department := r.URL.Query().Get("department")
    status := r.URL.Query().Get("status")

    filtered := campaigns[:0:0]
    for _, campaign := range campaigns {
        if department != "" && !strings.EqualFold(campaign.Department, department) {
            continue
        }
        if status != "" && campaign.Status != status {
            continue
        }
        filtered = append(filtered, campaign)
    }
    if filtered == nil {
        filtered = []model.Campaign{}
    }

    writeJSON(w, http.StatusOK, map[string]interface{}{
        "data": filtered,
    })
}

func (c *CampaignController) CreateCampaign(w http.ResponseWriter, r *http.Request) {
    var body model.Campaign
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    campaign, _, err := c.CampaignService.CreateCampaign(body, sessionFromRequest(r))
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusCreated, campaign)
}

// SetStatus moves a campaign among Pending, Approved and Rejected.
func (c *CampaignController) SetStatus(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")

    var body struct {
        Status string `json:"status"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    campaigns, err := c.CampaignService.SetStatus(id, body.Status, sessionFromRequest(r))
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, map[string]interface{}{
        "data": campaigns,
    })
}

// Complete marks a campaign Completed with its report fields.
func (c *CampaignController) Complete(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")

    var body struct {
        CompletionDate    string `json:"completionDate"`
        CompletionSummary string `json:"completionSummary"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    campaigns, err := c.CampaignService.Complete(id, body.CompletionDate, body.CompletionSummary, sessionFromRequest(r))
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, map[string]interface{}{
        "data": campaigns,
    })
}
