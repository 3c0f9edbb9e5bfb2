// internal/repository/activity_repository.go
package repository

import (
    "encoding/json"
    "log"

    "github.com/nxthub/influencer-hub-backend/internal/model"
    "github.com/nxthub/influencer-hub-backend/internal/store"
)

const activityKey = "nxthub_activity_data"

// maxActivityEntries caps the recent-activity log.
const maxActivityEntries = 100

type ActivityRepositoryInterface interface {
    List() ([]model.ActivityEvent, error)
    Append(event model.ActivityEvent) error
}

// ActivityRepository stores the recent-activity feed, newest first. Unlike
// the entity collections there is no seed; an empty feed is valid.
type ActivityRepository struct {
    Store store.KV
}

func (r *ActivityRepository) List() ([]model.ActivityEvent, error) {
    blob, ok, err := r.Store.Get(activityKey)
    if err != nil {
        return nil, err
    }
    if !ok {
        return []model.ActivityEvent{}, nil
    }

    var events []model.ActivityEvent
    if err := json.Unmarshal(blob, &events); err != nil {
        log.Println("⚠️ corrupt activity blob, starting empty")
        return []model.ActivityEvent{}, nil
    }
    return events, nil
}

// Append prepends the event and trims the log to maxActivityEntries.
func (r *ActivityRepository) Append(event model.ActivityEvent) error {
    events, err := r.List()
    if err != nil {
        return err
    }

    updated := append([]model.ActivityEvent{event}, events...)
    if len(updated) > maxActivityEntries {
        updated = updated[:maxActivityEntries]
    }

    data, err := json.Marshal(updated)
    if err != nil {
        return err
    }
    return r.Store.Set(activityKey, data)
}

var _ ActivityRepositoryInterface = (*ActivityRepository)(nil)
