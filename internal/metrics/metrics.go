package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gaia_guard"

var (
	// ProviderFallbacks - число подстановок резервных значений по провайдеру
	ProviderFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provider_fallbacks_total",
		Help:      "Number of provider calls answered with fallback values.",
	}, []string{"provider"})

	// CacheLookups - результаты обращений к кэшу показаний (hit, miss, expired, malformed)
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Readings cache lookups by outcome.",
	}, []string{"result"})

	// Analyses - завершённые анализы точек
	Analyses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analyses_total",
		Help:      "Location analyses by outcome.",
	}, []string{"result"})

	// AnalysisDuration - длительность анализа точки
	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "analysis_duration_seconds",
		Help:      "Location analysis latency.",
		Buckets:   prometheus.DefBuckets,
	})

	// Alerts - отправленные оповещения
	Alerts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_total",
		Help:      "Alert deliveries by outcome.",
	}, []string{"result"})

	// WebhookDeliveries - доставки вебхуков
	WebhookDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_deliveries_total",
		Help:      "Webhook deliveries by outcome.",
	}, []string{"result"})
)
