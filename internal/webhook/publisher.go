package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/gaia_guard/internal/models"
)

const (
	webhookQueueKey = "webhook_events"

	// EventAlertWorthyAnalysis - анализ точки превысил пороги оповещения
	EventAlertWorthyAnalysis = "land.alert_worthy"
)

// WebhookEvent - структура для данных вебхука
type WebhookEvent struct {
	EventType        string           `json:"event_type"`
	EntryID          uuid.UUID        `json:"entry_id"`
	UserID           string           `json:"user_id"`
	LocationName     string           `json:"location_name"`
	Latitude         float64          `json:"latitude"`
	Longitude        float64          `json:"longitude"`
	DegradationLevel models.RiskLevel `json:"degradation_level"`
	FloodRisk        models.RiskLevel `json:"flood_risk"`
	DroughtRisk      models.RiskLevel `json:"drought_risk"`
	Rainfall         float64          `json:"rainfall"`
	Timestamp        time.Time        `json:"timestamp"`
}

// NewAnalysisEvent собирает событие по сохранённой записи
func NewAnalysisEvent(entry *models.LandDataEntry) WebhookEvent {
	ts := entry.CreatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	return WebhookEvent{
		EventType:        EventAlertWorthyAnalysis,
		EntryID:          entry.ID,
		UserID:           entry.UserID,
		LocationName:     entry.LocationName,
		Latitude:         entry.Latitude,
		Longitude:        entry.Longitude,
		DegradationLevel: entry.DegradationLevel,
		FloodRisk:        entry.FloodRisk,
		DroughtRisk:      entry.DroughtRisk,
		Rainfall:         entry.Rainfall,
		Timestamp:        ts,
	}
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
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

// Publish кладёт событие в левую часть очереди Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
