package v1

import "github.com/shenikar/gaia_guard/internal/models"

// ModelToLandDataResponse преобразует запись анализа в DTO для ответа
func ModelToLandDataResponse(model *models.LandDataEntry) *LandDataResponse {
	if model == nil {
		return nil
	}
	return &LandDataResponse{
		ID:               model.ID,
		LocationName:     model.LocationName,
		Latitude:         model.Latitude,
		Longitude:        model.Longitude,
		VegetationIndex:  model.VegetationIndex,
		SoilMoisture:     model.SoilMoisture,
		Temperature:      model.Temperature,
		Rainfall:         model.Rainfall,
		DegradationLevel: model.DegradationLevel,
		Recommendation:   model.Recommendation,
		FloodRisk:        model.FloodRisk,
		DroughtRisk:      model.DroughtRisk,
		AlertSent:        model.AlertSent,
		CreatedAt:        model.CreatedAt,
	}
}

// ModelsToLandDataResponses преобразует слайс записей в слайс DTO
func ModelsToLandDataResponses(entries []*models.LandDataEntry) []*LandDataResponse {
	responses := make([]*LandDataResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ModelToLandDataResponse(entry)
	}
	return responses
}

// ModelToAnalyzeResponse преобразует результат анализа в DTO
func ModelToAnalyzeResponse(result *models.AnalysisResult) *AnalyzeLocationResponse {
	rec := result.Recommendation
	return &AnalyzeLocationResponse{
		ShouldAlert: result.ShouldAlert,
		Data: RecommendationResponse{
			DegradationLevel: rec.DegradationLevel,
			Recommendation:   rec.Text,
			FloodRisk:        rec.FloodRisk,
			DroughtRisk:      rec.DroughtRisk,
			Source:           string(rec.Source),
		},
		Entry:     ModelToLandDataResponse(result.Entry),
		FromCache: result.FromCache,
		Degraded:  result.Degraded,
	}
}

// ModelToSummaryResponse преобразует сводку в DTO
func ModelToSummaryResponse(s models.LandSummary) *SummaryResponse {
	counts := make(map[string]int, len(s.DegradationCounts))
	for level, n := range s.DegradationCounts {
		counts[string(level)] = n
	}
	return &SummaryResponse{
		TotalEntries:         s.TotalEntries,
		AlertsSent:           s.AlertsSent,
		AvgVegetationIndex:   s.AvgVegetationIndex,
		AvgSoilMoisture:      s.AvgSoilMoisture,
		AvgTemperature:       s.AvgTemperature,
		AvgRainfall:          s.AvgRainfall,
		DegradationCounts:    counts,
		HighFloodRiskCount:   s.HighFloodRiskCount,
		HighDroughtRiskCount: s.HighDroughtRiskCount,
	}
}

// ModelToFavoriteResponse преобразует избранную точку в DTO
func ModelToFavoriteResponse(model *models.FavoriteLocation) *FavoriteResponse {
	return &FavoriteResponse{
		ID:        model.ID,
		Name:      model.Name,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		CreatedAt: model.CreatedAt,
	}
}

// ModelsToFavoriteResponses преобразует слайс избранных точек в слайс DTO
func ModelsToFavoriteResponses(favorites []*models.FavoriteLocation) []*FavoriteResponse {
	responses := make([]*FavoriteResponse, len(favorites))
	for i, fav := range favorites {
		responses[i] = ModelToFavoriteResponse(fav)
	}
	return responses
}
