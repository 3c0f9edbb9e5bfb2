// internal/repository/influencer_repository.go
package repository

import (
    "encoding/json"
    "log"

    "github.com/nxthub/influencer-hub-backend/internal/model"
    "github.com/nxthub/influencer-hub-backend/internal/seed"
    "github.com/nxthub/influencer-hub-backend/internal/store"
)

const influencersKey = "nxthub_influencers_data"

type InfluencerRepositoryInterface interface {
    List() ([]model.Influencer, error)
    GetByID(id string) (*model.Influencer, error)
    ReplaceAll(influencers []model.Influencer) error
}

type InfluencerRepository struct {
    Store store.KV
}

func (r *InfluencerRepository) List() ([]model.Influencer, error) {
    blob, ok, err := r.Store.Get(influencersKey)
    if err != nil {
        return nil, err
    }
    if ok {
        var influencers []model.Influencer
        if err := json.Unmarshal(blob, &influencers); err == nil {
            return influencers, nil
        }
        log.Println("⚠️ corrupt influencers blob, reseeding")
    }

    influencers := seed.Influencers()
    if err := r.ReplaceAll(influencers); err != nil {
        return nil, err
    }
    return influencers, nil
}

// GetByID returns nil, nil when the id is absent.
func (r *InfluencerRepository) GetByID(id string) (*model.Influencer, error) {
    influencers, err := r.List()
    if err != nil {
        return nil, err
    }
    for i := range influencers {
        if influencers[i].ID == id {
            inf := influencers[i]
            return &inf, nil
        }
    }
    return nil, nil
}

func (r *InfluencerRepository) ReplaceAll(influencers []model.Influencer) error {
    data, err := json.Marshal(influencers)
    if err != nil {
        return err
    }
    return r.Store.Set(influencersKey, data)
}

var _ InfluencerRepositoryInterface = (*InfluencerRepository)(nil)
