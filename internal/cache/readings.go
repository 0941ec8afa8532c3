package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/shenikar/gaia_guard/internal/metrics"
	"github.com/shenikar/gaia_guard/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	// KeyPrefix отделяет записи кэша от остального содержимого хранилища
	KeyPrefix = "gaiaGuard_"
	// DefaultTTL - срок жизни записи
	DefaultTTL = time.Hour

	keyPrecision = 4
	keySeparator = "_"
)

// record - формат записи в хранилище
type record struct {
	VegetationIndex *float64 `json:"vegetation_index"`
	SoilMoisture    *float64 `json:"soil_moisture"`
	Temperature     *float64 `json:"temperature"`
	Rainfall        *float64 `json:"rainfall"`
	// Время записи в миллисекундах Unix
	Timestamp int64 `json:"timestamp"`
}

// ReadingsCache - кэш показаний по округлённым координатам с ленивым истечением срока
type ReadingsCache struct {
	store  Store
	ttl    time.Duration
	now    func() time.Time
	logger *logrus.Logger
}

// Option настраивает ReadingsCache
type Option func(*ReadingsCache)

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(c *ReadingsCache) { c.now = now }
}

func NewReadingsCache(store Store, ttl time.Duration, logger *logrus.Logger, opts ...Option) *ReadingsCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &ReadingsCache{
		store:  store,
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key строит ключ из координат, округлённых до 4 знаков (~11 м)
func Key(lat, lon float64) string {
	return roundCoord(lat) + keySeparator + roundCoord(lon)
}

func roundCoord(v float64) string {
	scale := math.Pow10(keyPrecision)
	r := math.Round(v*scale) / scale
	if r == 0 {
		// -0 и 0 дают один ключ
		r = 0
	}
	return strconv.FormatFloat(r, 'f', keyPrecision, 64)
}

// Get возвращает показания по ключу. Просроченная запись удаляется,
// повреждённая или недоступная считается отсутствующей.
func (c *ReadingsCache) Get(ctx context.Context, key string) (models.Readings, bool) {
	log := c.logger.WithFields(logrus.Fields{"component": "cache", "key": key})
	storageKey := KeyPrefix + key

	raw, ok, err := c.store.Get(ctx, storageKey)
	if err != nil {
		log.WithError(err).Warn("Cache read failed, treating as miss")
		metrics.CacheLookups.WithLabelValues("error").Inc()
		return models.Readings{}, false
	}
	if !ok {
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return models.Readings{}, false
	}

	rec, err := decodeRecord(raw)
	if err != nil {
		log.WithError(err).Warn("Malformed cache record, treating as miss")
		metrics.CacheLookups.WithLabelValues("malformed").Inc()
		return models.Readings{}, false
	}

	written := time.UnixMilli(rec.Timestamp)
	if c.now().Sub(written) > c.ttl {
		if err := c.store.Delete(ctx, storageKey); err != nil {
			log.WithError(err).Warn("Failed to remove expired cache record")
		}
		metrics.CacheLookups.WithLabelValues("expired").Inc()
		return models.Readings{}, false
	}

	metrics.CacheLookups.WithLabelValues("hit").Inc()
	return models.Readings{
		VegetationIndex: *rec.VegetationIndex,
		SoilMoisture:    *rec.SoilMoisture,
		Temperature:     *rec.Temperature,
		Rainfall:        *rec.Rainfall,
	}, true
}

// Put перезаписывает запись, проставляя текущее время
func (c *ReadingsCache) Put(ctx context.Context, key string, r models.Readings) error {
	rec := record{
		VegetationIndex: &r.VegetationIndex,
		SoilMoisture:    &r.SoilMoisture,
		Temperature:     &r.Temperature,
		Rainfall:        &r.Rainfall,
		Timestamp:       c.now().UnixMilli(),
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal cache record: %w", err)
	}
	if err := c.store.Set(ctx, KeyPrefix+key, payload); err != nil {
		return fmt.Errorf("failed to write cache record: %w", err)
	}
	return nil
}

// Clear удаляет все записи с префиксом кэша и возвращает их число
func (c *ReadingsCache) Clear(ctx context.Context) (int, error) {
	keys, err := c.store.Keys(ctx, KeyPrefix)
	if err != nil {
		return 0, fmt.Errorf("failed to list cache keys: %w", err)
	}
	if err := c.store.Delete(ctx, keys...); err != nil {
		return 0, fmt.Errorf("failed to clear cache: %w", err)
	}
	c.logger.WithField("removed", len(keys)).Info("Readings cache cleared")
	return len(keys), nil
}

func decodeRecord(raw []byte) (*record, error) {
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	if rec.VegetationIndex == nil || rec.SoilMoisture == nil || rec.Temperature == nil || rec.Rainfall == nil || rec.Timestamp <= 0 {
		return nil, fmt.Errorf("cache record is missing fields")
	}
	return &rec, nil
}
