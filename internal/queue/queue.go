// internal/queue/queue.go
package queue

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/nxthub/influencer-hub-backend/internal/model"
	"github.com/nxthub/influencer-hub-backend/internal/repository"
)

// Topic the services publish activity events on.
const ActivityTopic = "activity_events"

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue is an in-process queue with retry, used when no broker is
// configured.
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers: make(map[string][]func(payload any) error),
	}
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Payload    any
	RetryCount int
	MaxRetries int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	job := JobPayload{
		Payload:    payload,
		RetryCount: 0,
		MaxRetries: 3,
	}

	for _, handler := range handlers {
		go q.processJob(handler, job)
	}

	return nil
}

// processJob handles retries and errors
func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
	for job.RetryCount <= job.MaxRetries {
		err := handler(job.Payload)
		if err == nil {
			return // ACK
		}

		job.RetryCount++
		log.Printf("Job failed (attempt %d/%d): %+v, error: %v\n", job.RetryCount, job.MaxRetries, job.Payload, err)

		if job.RetryCount > job.MaxRetries {
			log.Printf("Job permanently failed after %d attempts: %+v\n", job.MaxRetries, job.Payload)
			return // No requeue
		}

		// Backoff before retry
		time.Sleep(time.Duration(job.RetryCount*500) * time.Millisecond)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

var _ Queue = (*InMemoryQueue)(nil)

// StartActivitySubscriber records published activity events through the
// repository. Used with the in-memory queue; with RabbitMQ the cmd/worker
// process consumes instead.
func StartActivitySubscriber(q Queue, activityRepo repository.ActivityRepositoryInterface) {
	err := q.Subscribe(ActivityTopic, func(payload any) error {
		event, ok := payload.(model.ActivityEvent)
		if !ok {
			log.Println("⚠️ Invalid payload type, expected ActivityEvent")
			return nil // drop, no retry
		}

		if err := activityRepo.Append(event); err != nil {
			log.Println("⚠️ Failed to record activity event:", err)
			return err // triggers retry in queue
		}
		return nil
	})

	if err != nil {
		log.Println("⚠️ Failed to start subscriber for", ActivityTopic, ":", err)
	}
}
