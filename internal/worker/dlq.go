package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const DLQPrefix = "dlq:"

// DeadLetter is a job that will not be retried, kept for inspection.
type DeadLetter struct {
	Queue    string          `json:"queue"`
	JobType  string          `json:"job_type"`
	Payload  json.RawMessage `json:"payload"`
	Reason   string          `json:"reason"`
	Attempts int             `json:"attempts"`
	FailedAt time.Time       `json:"failed_at"`
}

// deadLetter parks job on dlq:<queue>. Nothing consumes that list; an
// operator reads it with DeadLetters.
func deadLetter(ctx context.Context, rdb *redis.Client, queue string, job Job, reason string) {
	data, err := json.Marshal(DeadLetter{
		Queue:    queue,
		JobType:  job.Type,
		Payload:  job.Payload,
		Reason:   reason,
		Attempts: job.Attempts,
		FailedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: marshal failed")
		return
	}
	if err := rdb.LPush(ctx, DLQPrefix+queue, data).Err(); err != nil {
		log.Error().Err(err).Str("queue", queue).Str("job_type", job.Type).Msg("dlq: push failed, job lost")
		return
	}
	log.Warn().
		Str("queue", queue).
		Str("job_type", job.Type).
		Str("reason", reason).
		Int("attempts", job.Attempts).
		Msg("dlq: job dead-lettered")
}

// DeadLetterCount returns how many stock alerts were given up on.
func DeadLetterCount(ctx context.Context, rdb *redis.Client) (int64, error) {
	return rdb.LLen(ctx, DLQPrefix+QueueStockAlert).Result()
}

// DeadLetters returns the newest limit entries of dlq:<queue>.
func DeadLetters(ctx context.Context, rdb *redis.Client, queue string, limit int64) ([]DeadLetter, error) {
	raw, err := rdb.LRange(ctx, DLQPrefix+queue, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]DeadLetter, 0, len(raw))
	for i, r := range raw {
		var dl DeadLetter
		if err := json.Unmarshal([]byte(r), &dl); err != nil {
			return nil, fmt.Errorf("dlq entry %d: %w", i, err)
		}
		out = append(out, dl)
	}
	return out, nil
}
