package recommendation

import "github.com/shenikar/gaia_guard/internal/models"

// FallbackText - рекомендация, когда модель недоступна
const FallbackText = "Implement sustainable land management practices. Monitor vegetation health regularly using satellite data. " +
	"Consider reforestation efforts in degraded areas and implement soil conservation techniques."

// Fallback оценивает показания по фиксированным порогам. Результат зависит только от показаний.
func Fallback(r models.Readings) models.Recommendation {
	return models.Recommendation{
		DegradationLevel: degradationLevel(r.VegetationIndex),
		Text:             FallbackText,
		FloodRisk:        floodRisk(r.Rainfall),
		DroughtRisk:      droughtRisk(r.SoilMoisture, r.Temperature),
		Source:           models.SourceFallback,
	}
}

func degradationLevel(ndvi float64) models.RiskLevel {
	switch {
	case ndvi < 0.3:
		return models.RiskHigh
	case ndvi < 0.6:
		return models.RiskModerate
	default:
		return models.RiskLow
	}
}

func floodRisk(rainfall float64) models.RiskLevel {
	switch {
	case rainfall > 100:
		return models.RiskHigh
	case rainfall > 50:
		return models.RiskModerate
	default:
		return models.RiskLow
	}
}

func droughtRisk(soilMoisture, temperature float64) models.RiskLevel {
	switch {
	case soilMoisture < 20 || temperature > 30:
		return models.RiskHigh
	case soilMoisture < 40:
		return models.RiskModerate
	default:
		return models.RiskLow
	}
}
