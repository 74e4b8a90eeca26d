// Package export реализует фоновую выгрузку аналитики: задачи ставятся в
// очередь Redis, воркер строит CSV и складывает результат обратно в Redis.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks

const (
	exportQueueKey  = "export_jobs"
	resultKeyPrefix = "export_result:"
)

// Статусы экспортной задачи
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Job - задача на выгрузку сигналов
type Job struct {
	ID          uuid.UUID  `json:"id"`
	Format      string     `json:"format"`
	City        string     `json:"city,omitempty"`
	DateFrom    *time.Time `json:"date_from,omitempty"`
	DateTo      *time.Time `json:"date_to,omitempty"`
	RequestedBy string     `json:"requested_by"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Result - результат выполнения экспортной задачи
type Result struct {
	ID          uuid.UUID `json:"id"`
	Status      string    `json:"status"`
	Format      string    `json:"format"`
	RowCount    int       `json:"row_count"`
	Data        string    `json:"data,omitempty"`
	Error       string    `json:"error,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
}

// Publisher - интерфейс для постановки экспортных задач в очередь
type Publisher interface {
	Publish(ctx context.Context, job Job) error
}

// RedisPublisher - реализация Publisher, использующая очередь-список Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует экспортную задачу в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, job Job) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal export job: %w", err)
	}

	// LPUSH добавляет задачу в левую часть списка, воркер снимает справа
	if err := p.redisClient.LPush(ctx, exportQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish export job to Redis: %w", err)
	}
	return nil
}

// ResultStore хранит результаты экспортных задач в Redis с ограниченным TTL
type ResultStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

// NewResultStore создает новое хранилище результатов
func NewResultStore(client *redis.Client, ttl time.Duration) *ResultStore {
	return &ResultStore{
		redisClient: client,
		ttl:         ttl,
	}
}

// Save сохраняет результат экспорта
func (s *ResultStore) Save(ctx context.Context, result *Result) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal export result: %w", err)
	}
	key := resultKeyPrefix + result.ID.String()
	if err := s.redisClient.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save export result: %w", err)
	}
	return nil
}

// Get возвращает результат экспорта. Если задача еще не завершена или
// результат истек, возвращается (nil, nil).
func (s *ResultStore) Get(ctx context.Context, id uuid.UUID) (*Result, error) {
	key := resultKeyPrefix + id.String()
	val, err := s.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get export result: %w", err)
	}

	result := &Result{}
	if err := json.Unmarshal(val, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal export result: %w", err)
	}
	return result, nil
}
