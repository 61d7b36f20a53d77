package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"inventory/internal/dto"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueStockAlert = "jobs:stock_alert"

	JobStockAlert = "stock_alert"

	// MaxAttempts is how many times a job is tried before it is dead-lettered.
	MaxAttempts = 3
)

// Job is the envelope pushed onto a queue.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// Handler processes one job payload. A returned error schedules a retry.
type Handler func(ctx context.Context, payload json.RawMessage) error

// Dispatcher enqueues jobs into Redis lists; the pool dequeues them with BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// NotifyLowStock queues a low-stock alert for the mail worker.
func (d *Dispatcher) NotifyLowStock(ctx context.Context, alert dto.StockAlert) error {
	return d.enqueue(ctx, QueueStockAlert, JobStockAlert, alert)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return push(ctx, d.rdb, queue, Job{Type: jobType, Payload: data})
}

func push(ctx context.Context, rdb *redis.Client, queue string, job Job) error {
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return rdb.LPush(ctx, queue, encoded).Err()
}

// StartWorkerPool launches numWorkers goroutines consuming QueueStockAlert.
// The returned WaitGroup is done once every worker has seen ctx cancelled.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, handlers map[string]Handler, numWorkers int) *sync.WaitGroup {
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			runWorker(ctx, rdb, handlers, id)
		}(i)
	}
	log.Info().Int("workers", numWorkers).Msg("worker pool started")
	return &wg
}

func runWorker(ctx context.Context, rdb *redis.Client, handlers map[string]Handler, id int) {
	for {
		if ctx.Err() != nil {
			log.Info().Int("worker", id).Msg("worker shutting down")
			return
		}
		// BRPOP waits up to 5s so cancellation is noticed promptly.
		result, err := rdb.BRPop(ctx, 5*time.Second, QueueStockAlert).Result()
		if err != nil {
			if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
				log.Warn().Err(err).Int("worker", id).Msg("worker: pop failed")
				time.Sleep(time.Second)
			}
			continue
		}
		if len(result) < 2 {
			continue
		}
		processJob(ctx, rdb, handlers, result[0], result[1])
	}
}

// processJob runs one raw job. Failures are re-queued with an incremented
// attempt count; the MaxAttempts-th failure goes to the dead letter queue.
func processJob(ctx context.Context, rdb *redis.Client, handlers map[string]Handler, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		deadLetter(ctx, rdb, queue, Job{Payload: json.RawMessage(fmt.Sprintf("%q", raw))}, "malformed job: "+err.Error())
		return
	}

	handler, ok := handlers[job.Type]
	if !ok {
		deadLetter(ctx, rdb, queue, job, "no handler for job type")
		return
	}

	job.Attempts++
	err := handler(ctx, job.Payload)
	if err == nil {
		log.Debug().Str("type", job.Type).Int("attempt", job.Attempts).Msg("job done")
		return
	}

	if job.Attempts >= MaxAttempts {
		deadLetter(ctx, rdb, queue, job, err.Error())
		return
	}
	log.Warn().Err(err).Str("type", job.Type).Int("attempt", job.Attempts).Msg("job failed, retrying")
	if pushErr := push(ctx, rdb, queue, job); pushErr != nil {
		log.Error().Err(pushErr).Str("queue", queue).Msg("failed to re-queue job")
	}
}
