package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/gaia_guard/internal/config"
	"github.com/shenikar/gaia_guard/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func newTestWorker(client *redis.Client, url string) *WebhookWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	return NewWebhookWorker(client, logger, cfg)
}

func sampleEntry() *models.LandDataEntry {
	return &models.LandDataEntry{
		ID:               uuid.New(),
		UserID:           "user-1",
		LocationName:     "Delta Basin",
		Latitude:         9.05,
		Longitude:        38.74,
		DegradationLevel: models.RiskHigh,
		FloodRisk:        models.RiskLow,
		DroughtRisk:      models.RiskModerate,
		Rainfall:         12,
		CreatedAt:        time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewAnalysisEvent(t *testing.T) {
	entry := sampleEntry()

	event := NewAnalysisEvent(entry)

	assert.Equal(t, EventAlertWorthyAnalysis, event.EventType)
	assert.Equal(t, entry.ID, event.EntryID)
	assert.Equal(t, models.RiskHigh, event.DegradationLevel)
	assert.Equal(t, entry.CreatedAt, event.Timestamp)
}

func TestRedisWebhookPublisher_Publish(t *testing.T) {
	// Подготовка
	_, client := newTestRedis(t)
	publisher := NewRedisWebhookPublisher(client)
	event := NewAnalysisEvent(sampleEntry())

	// Действие
	err := publisher.Publish(context.Background(), event)

	// Проверки
	require.NoError(t, err)
	raw, err := client.RPop(context.Background(), webhookQueueKey).Result()
	require.NoError(t, err)
	var got WebhookEvent
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	assert.Equal(t, event.EntryID, got.EntryID)
	assert.Equal(t, "Delta Basin", got.LocationName)
}

func TestWebhookWorker_DeliverRetriesUntilSuccess(t *testing.T) {
	// Подготовка
	var calls atomic.Int32
	payload := `{"event_type":"land.alert_worthy"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, payload, string(body))
		assert.Equal(t, generateHMACSHA256(payload, "s3cret"), r.Header.Get(signatureHeader))
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, client := newTestRedis(t)
	worker := newTestWorker(client, srv.URL)

	// Действие
	err := worker.Deliver(context.Background(), payload)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestWebhookWorker_DeliverGivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, client := newTestRedis(t)
	worker := newTestWorker(client, srv.URL)

	err := worker.Deliver(context.Background(), `{}`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Equal(t, int32(3), calls.Load())
}

func TestWebhookWorker_RunDeliversQueuedEvent(t *testing.T) {
	// Подготовка
	received := make(chan WebhookEvent, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var event WebhookEvent
		_ = json.NewDecoder(r.Body).Decode(&event)
		received <- event
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	_, client := newTestRedis(t)
	worker := newTestWorker(client, srv.URL)
	event := NewAnalysisEvent(sampleEntry())
	require.NoError(t, NewRedisWebhookPublisher(client).Publish(context.Background(), event))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Run(ctx)
		close(done)
	}()

	// Проверки
	select {
	case got := <-received:
		assert.Equal(t, event.EntryID, got.EntryID)
	case <-time.After(5 * time.Second):
		t.Fatal("webhook was not delivered")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestGenerateHMACSHA256(t *testing.T) {
	assert.Equal(t, "5d98b45c90a207fa998ce639fea6f02ecc8cc3f36fef81d694fb856b4d0a28ca", generateHMACSHA256("payload", "key"))
	assert.Len(t, generateHMACSHA256("payload", "key"), 64)
	assert.NotEqual(t, generateHMACSHA256("payload", "key"), generateHMACSHA256("payload", "other"))
}
