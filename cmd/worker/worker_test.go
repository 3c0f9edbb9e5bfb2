package main

import (
	"sync"
	"testing"
	"time"

	"github.com/nxthub/influencer-hub-backend/internal/model"
	"github.com/nxthub/influencer-hub-backend/internal/service"
)

// MockActivityRepo stores events in memory
type MockActivityRepo struct {
	events []model.ActivityEvent
	mu     sync.Mutex
	done   chan struct{}
}

func (m *MockActivityRepo) List() ([]model.ActivityEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.events, nil
}

func (m *MockActivityRepo) Append(event model.ActivityEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append([]model.ActivityEvent{event}, m.events...)
	m.done <- struct{}{}
	return nil
}

func TestWorker(t *testing.T) {
	repo := &MockActivityRepo{done: make(chan struct{}, 1)}

	jobChan := make(chan model.ActivityEvent, 1)
	jobChan <- model.ActivityEvent{
		ID:         "e1",
		Type:       model.ActivityCampaignStatus,
		Actor:      "marketing@nxthub.com",
		EntityID:   "c1",
		Detail:     "status changed to Approved",
		OccurredAt: time.Now(),
	}

	worker := service.NewWorker(repo, jobChan)
	go worker.Start()

	select {
	case <-repo.done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not process the event in time")
	}

	events, _ := repo.List()
	if len(events) != 1 {
		t.Fatalf("expected 1 recorded event, got %d", len(events))
	}
	if events[0].EntityID != "c1" {
		t.Errorf("expected event for c1, got %s", events[0].EntityID)
	}
}
