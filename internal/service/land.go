package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/gaia_guard/internal/auth"
	"github.com/shenikar/gaia_guard/internal/cache"
	"github.com/shenikar/gaia_guard/internal/config"
	"github.com/shenikar/gaia_guard/internal/environment"
	"github.com/shenikar/gaia_guard/internal/metrics"
	"github.com/shenikar/gaia_guard/internal/models"
	"github.com/shenikar/gaia_guard/internal/webhook"
	"github.com/sirupsen/logrus"
)

// LandRepository определяет контракт для хранения результатов анализа
type LandRepository interface {
	Create(ctx context.Context, entry *models.LandDataEntry) error
	GetByID(ctx context.Context, userID string, id uuid.UUID) (*models.LandDataEntry, error)
	ListByUser(ctx context.Context, userID string) ([]*models.LandDataEntry, error)
	MarkAlertSent(ctx context.Context, userID string, id uuid.UUID) error
}

// ReadingsCache - кэш показаний по ключу округлённых координат
type ReadingsCache interface {
	Get(ctx context.Context, key string) (models.Readings, bool)
	Put(ctx context.Context, key string, r models.Readings) error
	Clear(ctx context.Context) (int, error)
}

// EnvironmentFetcher получает показания от провайдеров с резервными значениями
type EnvironmentFetcher interface {
	Fetch(ctx context.Context, lat, lon float64) environment.Result
}

// RecommendationGenerator строит оценку деградации по показаниям
type RecommendationGenerator interface {
	Generate(ctx context.Context, locationName string, lat, lon float64, r models.Readings) models.Recommendation
}

// AlertDispatcher отправляет оповещение по записи
type AlertDispatcher interface {
	Send(ctx context.Context, entry *models.LandDataEntry, phone string) (string, error)
}

// LandService определяет контракт бизнес-логики анализа земель
type LandService interface {
	FetchLandData(ctx context.Context) ([]*models.LandDataEntry, error)
	GetEntry(ctx context.Context, id uuid.UUID) (*models.LandDataEntry, error)
	Summary(ctx context.Context) (models.LandSummary, error)
	AnalyzeLocation(ctx context.Context, name string, lat, lon float64) (*models.AnalysisResult, error)
	SendAlert(ctx context.Context, id uuid.UUID, phone string) (string, error)
	ClearCache(ctx context.Context) (int, error)
}

type landService struct {
	repo       LandRepository
	cache      ReadingsCache
	fetcher    EnvironmentFetcher
	generator  RecommendationGenerator
	dispatcher AlertDispatcher
	publisher  webhook.WebhookPublisher
	logger     *logrus.Logger
	cfg        *config.Config
}

func NewLandService(
	repo LandRepository,
	readingsCache ReadingsCache,
	fetcher EnvironmentFetcher,
	generator RecommendationGenerator,
	dispatcher AlertDispatcher,
	publisher webhook.WebhookPublisher,
	logger *logrus.Logger,
	cfg *config.Config,
) LandService {
	return &landService{
		repo:       repo,
		cache:      readingsCache,
		fetcher:    fetcher,
		generator:  generator,
		dispatcher: dispatcher,
		publisher:  publisher,
		logger:     logger,
		cfg:        cfg,
	}
}

// ShouldAlert - высокий уровень деградации, высокий риск наводнения или осадки выше порога
func ShouldAlert(rec models.Recommendation, rainfall, rainfallThreshold float64) bool {
	return rec.DegradationLevel == models.RiskHigh ||
		rec.FloodRisk == models.RiskHigh ||
		rainfall > rainfallThreshold
}

// FetchLandData возвращает записи текущего пользователя, новые первыми
func (s *landService) FetchLandData(ctx context.Context) ([]*models.LandDataEntry, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, ErrAuthRequired
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "land",
		"method":  "FetchLandData",
		"user_id": userID,
	})

	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to list land data in repository")
		return nil, fmt.Errorf("service: could not list land data: %w", err)
	}
	log.WithField("count", len(entries)).Debug("Land data fetched")
	return entries, nil
}

// GetEntry возвращает запись пользователя по ID
func (s *landService) GetEntry(ctx context.Context, id uuid.UUID) (*models.LandDataEntry, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, ErrAuthRequired
	}

	entry, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":  "land",
			"method":   "GetEntry",
			"entry_id": id,
		}).WithError(err).Warn("Failed to get land data entry")
		return nil, fmt.Errorf("service: could not get land data entry: %w", err)
	}
	return entry, nil
}

// Summary считает сводку по записям пользователя
func (s *landService) Summary(ctx context.Context) (models.LandSummary, error) {
	entries, err := s.FetchLandData(ctx)
	if err != nil {
		return models.LandSummary{}, err
	}
	return models.Summarize(entries), nil
}

// AnalyzeLocation последовательно проходит этапы: проверка пользователя, кэш,
// показания провайдеров, рекомендация, сохранение. Решение об оповещении
// возвращается вызывающему, само оповещение не отправляется.
func (s *landService) AnalyzeLocation(ctx context.Context, name string, lat, lon float64) (*models.AnalysisResult, error) {
	started := time.Now()
	name = strings.TrimSpace(name)
	log := s.logger.WithFields(logrus.Fields{
		"service":   "land",
		"method":    "AnalyzeLocation",
		"location":  name,
		"latitude":  lat,
		"longitude": lon,
	})

	result, stage, err := s.analyze(ctx, log, name, lat, lon)
	metrics.AnalysisDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		metrics.Analyses.WithLabelValues("failed").Inc()
		log.WithError(err).WithField("stage", stage).Error("Location analysis failed")
		if stage == StageIdle {
			return nil, err
		}
		return nil, &AnalysisError{Stage: stage, Err: err}
	}

	metrics.Analyses.WithLabelValues("completed").Inc()
	log.WithFields(logrus.Fields{
		"entry_id":     result.Entry.ID,
		"should_alert": result.ShouldAlert,
		"from_cache":   result.FromCache,
		"source":       result.Recommendation.Source,
	}).Info("Location analysis completed")
	return result, nil
}

func (s *landService) analyze(ctx context.Context, log *logrus.Entry, name string, lat, lon float64) (*models.AnalysisResult, Stage, error) {
	if err := validateLocation(name, lat, lon); err != nil {
		return nil, StageIdle, err
	}

	// authenticating
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, StageAuthenticating, ErrAuthRequired
	}

	// cache-check
	key := cache.Key(lat, lon)
	readings, fromCache := s.cache.Get(ctx, key)
	degraded := false

	// fetching-environmental
	if !fromCache {
		res := s.fetcher.Fetch(ctx, lat, lon)
		if err := ctx.Err(); err != nil {
			return nil, StageFetching, err
		}
		readings = res.Readings
		degraded = res.Degraded()
		if !degraded {
			if err := s.cache.Put(ctx, key, readings); err != nil {
				log.WithError(err).Warn("Failed to write readings to cache")
			}
		}
	}

	// generating-recommendation
	rec := s.generator.Generate(ctx, name, lat, lon, readings)
	if err := ctx.Err(); err != nil {
		return nil, StageGenerating, err
	}

	// persisting
	entry := models.NewLandDataEntry(userID, name, lat, lon, readings, rec)
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, StagePersisting, fmt.Errorf("could not save land data entry: %w", err)
	}

	result := &models.AnalysisResult{
		ShouldAlert:    ShouldAlert(rec, readings.Rainfall, s.cfg.Fallback.AlertRainfallThreshold),
		Recommendation: rec,
		Entry:          entry,
		FromCache:      fromCache,
		Degraded:       degraded,
	}
	if result.ShouldAlert {
		s.publishAlertWorthy(ctx, log, entry)
	}
	return result, StageDone, nil
}

func (s *landService) publishAlertWorthy(ctx context.Context, log *logrus.Entry, entry *models.LandDataEntry) {
	if s.publisher == nil {
		return
	}
	event := webhook.NewAnalysisEvent(entry)
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish alert-worthy analysis event")
	}
}

// SendAlert отправляет оповещение по записи пользователя
func (s *landService) SendAlert(ctx context.Context, id uuid.UUID, phone string) (string, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return "", ErrAuthRequired
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":  "land",
		"method":   "SendAlert",
		"entry_id": id,
	})

	entry, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		log.WithError(err).Warn("Failed to load entry for alert")
		return "", fmt.Errorf("service: could not get land data entry: %w", err)
	}

	messageID, err := s.dispatcher.Send(ctx, entry, phone)
	if err != nil {
		return "", fmt.Errorf("service: could not send alert: %w", err)
	}
	log.WithField("message_id", messageID).Info("Alert sent")
	return messageID, nil
}

// ClearCache очищает кэш показаний
func (s *landService) ClearCache(ctx context.Context) (int, error) {
	if _, ok := auth.UserID(ctx); !ok {
		return 0, ErrAuthRequired
	}
	removed, err := s.cache.Clear(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "land",
			"method":  "ClearCache",
		}).WithError(err).Error("Failed to clear readings cache")
		return 0, fmt.Errorf("service: could not clear cache: %w", err)
	}
	return removed, nil
}

func validateLocation(name string, lat, lon float64) error {
	if name == "" {
		return fmt.Errorf("%w: location name is required", ErrInvalidInput)
	}
	return validateCoordinates(lat, lon)
}

func validateCoordinates(lat, lon float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude must be within [-90, 90]", ErrInvalidInput)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return fmt.Errorf("%w: longitude must be within [-180, 180]", ErrInvalidInput)
	}
	return nil
}
