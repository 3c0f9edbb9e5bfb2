// internal/service/influencer_service.go
package service

import (
    "log"
    "time"

    "github.com/google/uuid"

    "github.com/nxthub/influencer-hub-backend/internal/auth"
    appErrors "github.com/nxthub/influencer-hub-backend/internal/errors"
    "github.com/nxthub/influencer-hub-backend/internal/model"
    "github.com/nxthub/influencer-hub-backend/internal/queue"
    "github.com/nxthub/influencer-hub-backend/internal/repository"
)

// InfluencerService enforces the creator-only ownership rule. The service,
// not the caller, stamps createdBy at creation; on update the ownership
// check runs against the stored record so a caller cannot re-stamp
// ownership by sending a different createdBy.
type InfluencerService struct {
    InfluencerRepo repository.InfluencerRepositoryInterface
    Queue          queue.Queue
}

func (s *InfluencerService) ListInfluencers() ([]model.Influencer, error) {
    return s.InfluencerRepo.List()
}

// CreateInfluencer forces createdBy to the session email regardless of any
// value in the draft.
func (s *InfluencerService) CreateInfluencer(draft model.Influencer, sess auth.Session) (*model.Influencer, []model.Influencer, error) {
    if sess.IsGuest() {
        return nil, nil, appErrors.NewUnauthorized("create influencer", "guests cannot create influencers")
    }

    if draft.Name == "" {
        return nil, nil, appErrors.NewValidation("name")
    }
    if draft.Handle == "" {
        return nil, nil, appErrors.NewValidation("handle")
    }
    if draft.Email == "" {
        return nil, nil, appErrors.NewValidation("email")
    }
    if draft.Mobile == "" {
        return nil, nil, appErrors.NewValidation("mobile")
    }
    if draft.Category == "" {
        return nil, nil, appErrors.NewValidation("category")
    }
    if draft.Language == "" {
        return nil, nil, appErrors.NewValidation("language")
    }

    influencer := draft
    influencer.ID = uuid.NewString()
    influencer.CreatedBy = sess.Email

    influencers, err := s.InfluencerRepo.List()
    if err != nil {
        return nil, nil, err
    }

    updated := append([]model.Influencer{influencer}, influencers...)
    if err := s.InfluencerRepo.ReplaceAll(updated); err != nil {
        return nil, nil, err
    }

    s.publishActivity(model.ActivityInfluencerCreated, influencer.ID, influencer.Name, sess.Email)

    return &influencer, updated, nil
}

// UpdateInfluencer replaces the full record matched by id. Ownership is
// looked up from the stored record and createdBy stays immutable.
func (s *InfluencerService) UpdateInfluencer(updated model.Influencer, sess auth.Session) ([]model.Influencer, error) {
    influencers, err := s.InfluencerRepo.List()
    if err != nil {
        return nil, err
    }

    idx := -1
    for i := range influencers {
        if influencers[i].ID == updated.ID {
            idx = i
            break
        }
    }
    if idx < 0 {
        return nil, appErrors.NewInfluencerNotFound(updated.ID)
    }

    if !auth.CanEditInfluencer(sess, influencers[idx]) {
        return nil, appErrors.NewUnauthorized("update influencer", "only the creator can edit this record")
    }

    updated.CreatedBy = influencers[idx].CreatedBy
    influencers[idx] = updated

    if err := s.InfluencerRepo.ReplaceAll(influencers); err != nil {
        return nil, err
    }

    s.publishActivity(model.ActivityInfluencerUpdated, updated.ID, updated.Name, sess.Email)

    return influencers, nil
}

// DeleteInfluencer removes the record if the caller owns it. Deleting an
// absent id is a no-op returning the unchanged collection, so a double
// delete behaves like a single one.
func (s *InfluencerService) DeleteInfluencer(id string, sess auth.Session) ([]model.Influencer, error) {
    influencers, err := s.InfluencerRepo.List()
    if err != nil {
        return nil, err
    }

    idx := -1
    for i := range influencers {
        if influencers[i].ID == id {
            idx = i
            break
        }
    }
    if idx < 0 {
        return influencers, nil
    }

    if !auth.CanDeleteInfluencer(sess, influencers[idx]) {
        return nil, appErrors.NewUnauthorized("delete influencer", "only the creator can delete this record")
    }

    name := influencers[idx].Name
    updated := append(influencers[:idx:idx], influencers[idx+1:]...)
    if err := s.InfluencerRepo.ReplaceAll(updated); err != nil {
        return nil, err
    }

    s.publishActivity(model.ActivityInfluencerDeleted, id, name, sess.Email)

    return updated, nil
}

func (s *InfluencerService) publishActivity(eventType, entityID, entityName, actor string) {
    if s.Queue == nil {
        return
    }
    event := model.ActivityEvent{
        ID:         uuid.NewString(),
        Type:       eventType,
        Actor:      actor,
        EntityID:   entityID,
        EntityName: entityName,
        OccurredAt: time.Now().UTC(),
    }
    if err := s.Queue.Publish(queue.ActivityTopic, event); err != nil {
        log.Println("⚠️ failed to enqueue activity event:", err)
    }
}
