// internal/handler/dashboard_handler.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nxthub/influencer-hub-backend/internal/model"
	"github.com/nxthub/influencer-hub-backend/internal/repository"
)

// DashboardHandler holds the dependencies for the read-only dashboard endpoints
type DashboardHandler struct {
	CampaignRepo repository.CampaignRepositoryInterface
	ActivityRepo repository.ActivityRepositoryInterface
}

type dashboardSummary struct {
	Stats          map[string]int        `json:"stats"`
	TotalBudget    float64               `json:"total_budget"`
	RecentActivity []model.ActivityEvent `json:"recent_activity"`
}

// GetSummaryHandler returns campaign counts by status, the aggregate budget
// and the most recent activity entries.
func (h *DashboardHandler) GetSummaryHandler(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.CampaignRepo.List()
	if err != nil {
		http.Error(w, "failed to fetch campaigns: "+err.Error(), http.StatusInternalServerError)
		return
	}

	stats := map[string]int{
		"total":               0,
		model.StatusPending:   0,
		model.StatusApproved:  0,
		model.StatusRejected:  0,
		model.StatusCompleted: 0,
	}
	var totalBudget float64
	for _, c := range campaigns {
		if _, ok := stats[c.Status]; ok {
			stats[c.Status]++
		}
		stats["total"]++
		totalBudget += c.Budget
	}

	events, err := h.ActivityRepo.List()
	if err != nil {
		http.Error(w, "failed to fetch activity: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if len(events) > 5 {
		events = events[:5]
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dashboardSummary{
		Stats:          stats,
		TotalBudget:    totalBudget,
		RecentActivity: events,
	})
}

// ListActivityHandler returns the full recent-activity log, newest first.
func (h *DashboardHandler) ListActivityHandler(w http.ResponseWriter, r *http.Request) {
	events, err := h.ActivityRepo.List()
	if err != nil {
		http.Error(w, "failed to fetch activity: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data": events,
	})
}
