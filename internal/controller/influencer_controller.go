// internal/controller/influencer_controller.go
package controller

import (
    "encoding/json"
    "net/http"

    "github.com/go-chi/chi/v5"

    "github.com/nxthub/influencer-hub-backend/internal/model"
    "github.com/nxthub/influencer-hub-backend/internal/service"
)

type InfluencerController struct {
    InfluencerService *service.InfluencerService
}

func (c *InfluencerController) ListInfluencers(w http.ResponseWriter, r *http.Request) {
    influencers, err := c.InfluencerService.ListInfluencers()
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, map[string]interface{}{
        "data": influencers,
    })
}

func (c *InfluencerController) CreateInfluencer(w http.ResponseWriter, r *http.Request) {
    var body model.Influencer
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    influencer, _, err := c.InfluencerService.CreateInfluencer(body, sessionFromRequest(r))
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusCreated, influencer)
}

// UpdateInfluencer replaces the full record; the id comes from the path.
func (c *InfluencerController) UpdateInfluencer(w http.ResponseWriter, r *http.Request) {
    var body model.Influencer
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }
    body.ID = chi.URLParam(r, "id")

    influencers, err := c.InfluencerService.UpdateInfluencer(body, sessionFromRequest(r))
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, map[string]interface{}{
        "data": influencers,
    })
}

func (c *InfluencerController) DeleteInfluencer(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")

    influencers, err := c.InfluencerService.DeleteInfluencer(id, sessionFromRequest(r))
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, map[string]interface{}{
        "data": influencers,
    })
}
