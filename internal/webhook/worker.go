package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/gaia_guard/internal/config"
	"github.com/shenikar/gaia_guard/internal/metrics"
	"github.com/sirupsen/logrus"
)

const (
	signatureHeader = "X-Webhook-Signature"
	popTimeout      = time.Second
)

// WebhookWorker - структура для обработки и отправки вебхуков
type WebhookWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWebhookWorker создает новый WebhookWorker
func NewWebhookWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *WebhookWorker {
	return &WebhookWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди вебхуков
func (w *WebhookWorker) Start(ctx context.Context) {
	w.logger.Info("Starting webhook worker...")
	go w.Run(ctx)
}

// Run обрабатывает очередь, пока не отменён контекст
func (w *WebhookWorker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stopping webhook worker.")
			return
		default:
		}

		// Ограниченное ожидание BRPOP, чтобы цикл замечал отмену контекста
		result, err := w.redisClient.BRPop(ctx, popTimeout, webhookQueueKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || ctx.Err() != nil {
				continue
			}
			w.logger.WithError(err).Error("Failed to pop webhook event from Redis")
			select {
			case <-ctx.Done():
			case <-time.After(w.cfg.WebhookTimeout):
			}
			continue
		}

		// result[0] - ключ, result[1] - значение
		payload := result[1]
		var event WebhookEvent
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			w.logger.WithError(err).Error("Failed to unmarshal webhook event from Redis")
			continue
		}

		w.processWebhookEvent(ctx, event, payload)
	}
}

func (w *WebhookWorker) processWebhookEvent(ctx context.Context, event WebhookEvent, rawPayload string) {
	log := w.logger.WithFields(logrus.Fields{
		"event_type":     event.EventType,
		"event_entry_id": event.EntryID,
	})
	log.Debug("Processing webhook event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		metrics.WebhookDeliveries.WithLabelValues("skipped").Inc()
		return
	}

	if err := w.Deliver(ctx, rawPayload); err != nil {
		log.WithError(err).Errorf("Failed to deliver webhook for event after %d attempts.", w.maxAttempts())
		metrics.WebhookDeliveries.WithLabelValues("failed").Inc()
		return
	}
	log.Info("Webhook delivered successfully.")
	metrics.WebhookDeliveries.WithLabelValues("delivered").Inc()
}

// Deliver отправляет подписанный payload с экспоненциальной задержкой между попытками
func (w *WebhookWorker) Deliver(ctx context.Context, rawPayload string) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = w.cfg.WebhookBaseDelay
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := w.send(ctx, rawPayload)
		if err != nil {
			w.logger.WithError(err).WithField("attempt", attempt).Warn("Webhook attempt failed")
		}
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(bo, uint64(w.maxAttempts()-1)), ctx))
}

func (w *WebhookWorker) maxAttempts() int {
	if w.cfg.WebhookMaxRetries < 1 {
		return 1
	}
	return w.cfg.WebhookMaxRetries
}

func (w *WebhookWorker) send(ctx context.Context, rawPayload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return backoff.Permanent(fmt.Errorf("failed to create webhook request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(signatureHeader, generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return backoff.Permanent(err)
		}
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook delivery failed with status code %d", resp.StatusCode)
	}
	return nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
