// internal/service/worker.go
package service

import (
    "log"

    "github.com/nxthub/influencer-hub-backend/internal/model"
    "github.com/nxthub/influencer-hub-backend/internal/repository"
)

// Worker drains activity events from a channel into the activity log. The
// AMQP consumer feeds the channel; tests feed it directly.
type Worker struct {
    ActivityRepo repository.ActivityRepositoryInterface
    JobChan      <-chan model.ActivityEvent
}

// Constructor
func NewWorker(repo repository.ActivityRepositoryInterface, jobChan <-chan model.ActivityEvent) *Worker {
    return &Worker{
        ActivityRepo: repo,
        JobChan:      jobChan,
    }
}

// Start begins processing jobs until the channel closes.
func (w *Worker) Start() {
    for event := range w.JobChan {
        if err := w.ActivityRepo.Append(event); err != nil {
            log.Println("Failed to record activity event:", err)
            continue
        }
    }
}
