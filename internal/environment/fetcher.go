package environment

import (
	"context"

	"github.com/shenikar/gaia_guard/internal/config"
	"github.com/shenikar/gaia_guard/internal/metrics"
	"github.com/shenikar/gaia_guard/internal/models"
	"github.com/shenikar/gaia_guard/internal/provider"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// VegetationSource - источник индекса вегетации и влажности почвы
type VegetationSource interface {
	Name() string
	VegetationSoil(ctx context.Context, lat, lon float64) (provider.VegetationReading, error)
}

// WeatherSource - источник температуры и осадков
type WeatherSource interface {
	Name() string
	Weather(ctx context.Context, lat, lon float64) (provider.WeatherReading, error)
}

// Result - показания и признак того, какие половины получены от провайдеров
type Result struct {
	Readings       models.Readings
	VegetationLive bool
	WeatherLive    bool
}

// Degraded сообщает, что хотя бы одна половина заменена резервными значениями
func (r Result) Degraded() bool {
	return !r.VegetationLive || !r.WeatherLive
}

// Fetcher запрашивает обе половины показаний параллельно.
// Ошибка одной половины заменяет резервными значениями только её.
type Fetcher struct {
	vegetation VegetationSource
	weather    WeatherSource
	defaults   config.FallbackConfig
	logger     *logrus.Logger
}

func NewFetcher(vegetation VegetationSource, weather WeatherSource, defaults config.FallbackConfig, logger *logrus.Logger) *Fetcher {
	return &Fetcher{
		vegetation: vegetation,
		weather:    weather,
		defaults:   defaults,
		logger:     logger,
	}
}

// Fetch никогда не возвращает ошибку: сбой провайдера поглощается резервными значениями
func (f *Fetcher) Fetch(ctx context.Context, lat, lon float64) Result {
	log := f.logger.WithFields(logrus.Fields{
		"component": "environment",
		"latitude":  lat,
		"longitude": lon,
	})

	res := Result{
		Readings: models.Readings{
			VegetationIndex: f.defaults.VegetationIndex,
			SoilMoisture:    f.defaults.SoilMoisture,
			Temperature:     f.defaults.Temperature,
			Rainfall:        f.defaults.Rainfall,
		},
	}

	// Каждая горутина пишет только свои поля res
	var g errgroup.Group
	g.Go(func() error {
		reading, err := f.vegetation.VegetationSoil(ctx, lat, lon)
		if err != nil {
			log.WithError(err).WithField("provider", f.vegetation.Name()).Warn("Vegetation provider failed, using fallback values")
			metrics.ProviderFallbacks.WithLabelValues(f.vegetation.Name()).Inc()
			return nil
		}
		res.Readings.VegetationIndex = reading.VegetationIndex
		if reading.SoilMoisture != nil {
			res.Readings.SoilMoisture = *reading.SoilMoisture
		}
		res.VegetationLive = true
		return nil
	})
	g.Go(func() error {
		reading, err := f.weather.Weather(ctx, lat, lon)
		if err != nil {
			log.WithError(err).WithField("provider", f.weather.Name()).Warn("Weather provider failed, using fallback values")
			metrics.ProviderFallbacks.WithLabelValues(f.weather.Name()).Inc()
			return nil
		}
		res.Readings.Temperature = reading.Temperature
		res.Readings.Rainfall = reading.Rainfall
		res.WeatherLive = true
		return nil
	})
	_ = g.Wait()

	log.WithFields(logrus.Fields{
		"vegetation_live": res.VegetationLive,
		"weather_live":    res.WeatherLive,
	}).Debug("Environmental readings fetched")
	return res
}
