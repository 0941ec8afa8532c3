package recommendation

import (
	"context"

	"github.com/shenikar/gaia_guard/internal/metrics"
	"github.com/shenikar/gaia_guard/internal/models"
	"github.com/sirupsen/logrus"
)

// Completer отправляет промпт модели и возвращает текст ответа
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Generator запрашивает оценку у модели и при любом сбое переходит на правила
type Generator struct {
	completer Completer
	logger    *logrus.Logger
}

func NewGenerator(completer Completer, logger *logrus.Logger) *Generator {
	return &Generator{
		completer: completer,
		logger:    logger,
	}
}

// Generate всегда возвращает рекомендацию; источник указан в поле Source
func (g *Generator) Generate(ctx context.Context, locationName string, lat, lon float64, r models.Readings) models.Recommendation {
	log := g.logger.WithFields(logrus.Fields{
		"component": "recommendation",
		"location":  locationName,
	})

	if g.completer == nil {
		return Fallback(r)
	}

	content, err := g.completer.Complete(ctx, BuildPrompt(locationName, lat, lon, r))
	if err != nil {
		log.WithError(err).Warn("Model request failed, using rule-based recommendation")
		metrics.ProviderFallbacks.WithLabelValues("llm").Inc()
		return Fallback(r)
	}

	rec, err := Parse(content)
	if err != nil {
		log.WithError(err).Warn("Model reply could not be parsed, using rule-based recommendation")
		metrics.ProviderFallbacks.WithLabelValues("llm_parse").Inc()
		return Fallback(r)
	}
	return rec
}
