package recommendation

import (
	"fmt"
	"strconv"

	"github.com/shenikar/gaia_guard/internal/models"
)

const promptTemplate = `You are an environmental AI assistant specialized in land restoration and climate risk assessment.

Analyze the following location data and provide a comprehensive assessment:

Location: %s
Coordinates: %s, %s
NDVI Score: %s (range: -1 to 1, where >0.6 is healthy vegetation)
Soil Moisture: %s%% (optimal: 30-60%%)
Temperature: %s°C
Rainfall: %smm

Based on this data, provide a JSON response with:
1. degradation_level: "low", "moderate", or "high"
2. ai_recommendation: Detailed restoration recommendations (2-3 sentences)
3. flood_risk: "low", "moderate", or "high"
4. drought_risk: "low", "moderate", or "high"

Consider:
- NDVI < 0.3 indicates severe degradation
- NDVI 0.3-0.6 indicates moderate vegetation health
- NDVI > 0.6 indicates healthy vegetation
- Soil moisture < 20%% or > 80%% indicates poor conditions
- Rainfall > 100mm increases flood risk
- Low rainfall + high temperature increases drought risk

Provide actionable, specific recommendations for this location.`

// BuildPrompt подставляет место и показания в шаблон запроса к модели
func BuildPrompt(locationName string, lat, lon float64, r models.Readings) string {
	return fmt.Sprintf(promptTemplate,
		locationName,
		num(lat), num(lon),
		num(r.VegetationIndex),
		num(r.SoilMoisture),
		num(r.Temperature),
		num(r.Rainfall),
	)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
