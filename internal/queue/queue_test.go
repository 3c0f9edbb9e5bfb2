package queue_test

import (
	"sync"
	"testing"
	"time"

	"github.com/nxthub/influencer-hub-backend/internal/model"
	"github.com/nxthub/influencer-hub-backend/internal/queue"
)

// recordingRepo captures appended events
type recordingRepo struct {
	mu     sync.Mutex
	events []model.ActivityEvent
	done   chan struct{}
}

func (r *recordingRepo) List() ([]model.ActivityEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events, nil
}

func (r *recordingRepo) Append(event model.ActivityEvent) error {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
	r.done <- struct{}{}
	return nil
}

func TestActivitySubscriberRecordsEvents(t *testing.T) {
	q := queue.NewInMemoryQueue()
	repo := &recordingRepo{done: make(chan struct{}, 1)}
	queue.StartActivitySubscriber(q, repo)

	event := model.ActivityEvent{
		ID:       "e1",
		Type:     model.ActivityCampaignCompleted,
		Actor:    "sales@nxthub.com",
		EntityID: "c2",
	}
	if err := q.Publish(queue.ActivityTopic, event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case <-repo.done:
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber did not record the event in time")
	}

	events, _ := repo.List()
	if len(events) != 1 || events[0].ID != "e1" {
		t.Fatalf("unexpected events: %+v", events)
	}
}

func TestPublishWithoutSubscribersFails(t *testing.T) {
	q := queue.NewInMemoryQueue()

	if err := q.Publish("nobody_home", 1); err == nil {
		t.Error("expected an error when no subscribers exist")
	}
}
