package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/rescue_pulse/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	webhookQueueKey = "webhook_events"
)

// BroadcastEvent - уведомление о новой экстренной трансляции
type BroadcastEvent struct {
	AlertID     uuid.UUID       `json:"alert_id"`
	UserID      string          `json:"user_id"`
	DisplayName string          `json:"display_name"`
	Category    models.Category `json:"category"`
	Severity    models.Severity `json:"severity"`
	Description string          `json:"description"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	Timestamp   time.Time       `json:"timestamp"`
}

// NewBroadcastEvent собирает событие из подтвержденного хранилищем запроса.
// Для анонимных запросов владелец не раскрывается.
func NewBroadcastEvent(a models.Alert) BroadcastEvent {
	ev := BroadcastEvent{
		AlertID:     a.ID,
		UserID:      a.OwnerID,
		DisplayName: a.DisplayName,
		Category:    a.Category,
		Severity:    a.Severity,
		Description: a.Description,
		Latitude:    a.Location.Lat,
		Longitude:   a.Location.Lng,
		Timestamp:   a.CreatedAt,
	}
	if a.IsAnonymous {
		ev.UserID = ""
	}
	return ev
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event BroadcastEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event BroadcastEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH + BRPOP в воркере дают FIFO
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
