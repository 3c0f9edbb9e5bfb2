// internal/repository/campaign_repository.go
package repository

import (
    "encoding/json"
    "log"

    "github.com/nxthub/influencer-hub-backend/internal/model"
    "github.com/nxthub/influencer-hub-backend/internal/seed"
    "github.com/nxthub/influencer-hub-backend/internal/store"
)

const campaignsKey = "nxthub_campaigns_data"

type CampaignRepositoryInterface interface {
    List() ([]model.Campaign, error)
    GetByID(id string) (*model.Campaign, error)
    ReplaceAll(campaigns []model.Campaign) error
}

// CampaignRepository persists the campaign collection as one blob. Every
// mutation goes through ReplaceAll; there are no row-level updates.
type CampaignRepository struct {
    Store store.KV
}

// List returns the persisted collection, seeding the store on first access.
// A blob that fails to parse is treated as absent and reseeded; availability
// wins over strict durability here.
func (r *CampaignRepository) List() ([]model.Campaign, error) {
    blob, ok, err := r.Store.Get(campaignsKey)
    if err != nil {
        return nil, err
    }
    if ok {
        var campaigns []model.Campaign
        if err := json.Unmarshal(blob, &campaigns); err == nil {
            return campaigns, nil
        }
        log.Println("⚠️ corrupt campaigns blob, reseeding")
    }

    campaigns := seed.Campaigns()
    if err := r.ReplaceAll(campaigns); err != nil {
        return nil, err
    }
    return campaigns, nil
}

// GetByID returns nil, nil when the id is absent. Callers decide whether a
// miss is an error; campaign references from other records are weak.
func (r *CampaignRepository) GetByID(id string) (*model.Campaign, error) {
    campaigns, err := r.List()
    if err != nil {
        return nil, err
    }
    for i := range campaigns {
        if campaigns[i].ID == id {
            c := campaigns[i]
            return &c, nil
        }
    }
    return nil, nil
}

func (r *CampaignRepository) ReplaceAll(campaigns []model.Campaign) error {
    data, err := json.Marshal(campaigns)
    if err != nil {
        return err
    }
    return r.Store.Set(campaignsKey, data)
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
