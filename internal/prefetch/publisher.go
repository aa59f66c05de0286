package prefetch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	queueKey = "weather_prefetch"
)

// Job - задача на прогрев кеша погоды для одной записи
type Job struct {
	ID         uuid.UUID `json:"id"`
	RecordID   int       `json:"record_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// RedisPublisher кладет задачи в очередь Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует пачку задач одной командой LPUSH
func (p *RedisPublisher) Publish(ctx context.Context, jobs []Job) error {
	if len(jobs) == 0 {
		return nil
	}

	payloads := make([]any, 0, len(jobs))
	for _, job := range jobs {
		payload, err := json.Marshal(job)
		if err != nil {
			return fmt.Errorf("failed to marshal prefetch job: %w", err)
		}
		payloads = append(payloads, payload)
	}

	if err := p.redisClient.LPush(ctx, queueKey, payloads...).Err(); err != nil {
		return fmt.Errorf("failed to publish prefetch jobs to Redis: %w", err)
	}
	return nil
}
