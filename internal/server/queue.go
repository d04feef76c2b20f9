// Priority queue over a Redis sorted set
// Higher priority pops first; within a priority, earlier submissions win

package server

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const queueKey = "qs:queue:jobs"

type Queue struct {
	rdb *redis.Client
}

func NewQueue(rdb *redis.Client) *Queue {
	return &Queue{rdb: rdb}
}

// Score composes priority and submission time into one sortable value.
// Subtracting the timestamp makes older jobs score higher within a priority
// band, so ZPopMax drains in FIFO order per band.
func Score(priority int32, submittedAt time.Time) float64 {
	return float64(int64(priority)*1000000 - submittedAt.Unix())
}

// Push enqueues a job ID.
func (q *Queue) Push(ctx context.Context, jobID string, priority int32, submittedAt time.Time) error {
	return q.rdb.ZAdd(ctx, queueKey, &redis.Z{
		Score:  Score(priority, submittedAt),
		Member: jobID,
	}).Err()
}

// Pop removes and returns the highest-scoring job ID, or "" when the queue
// is empty.
func (q *Queue) Pop(ctx context.Context) (string, error) {
	result, err := q.rdb.ZPopMax(ctx, queueKey, 1).Result()
	if err != nil {
		return "", err
	}
	if len(result) == 0 {
		return "", nil
	}
	return result[0].Member.(string), nil
}

// Remove takes a job out of the queue. Returns true if it was still queued.
func (q *Queue) Remove(ctx context.Context, jobID string) (bool, error) {
	removed, err := q.rdb.ZRem(ctx, queueKey, jobID).Result()
	return removed > 0, err
}

// Position reports the 1-based pop order of a queued job, 0 if not queued.
// ZRevRank counts from the top of the score range, which is the pop end.
func (q *Queue) Position(ctx context.Context, jobID string) (int, error) {
	rank, err := q.rdb.ZRevRank(ctx, queueKey, jobID).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return int(rank) + 1, nil
}

// Len returns the number of queued jobs.
func (q *Queue) Len(ctx context.Context) (int64, error) {
	return q.rdb.ZCard(ctx, queueKey).Result()
}
