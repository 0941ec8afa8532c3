package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/gaia_guard/internal/models"
)

// AnalyzeLocationRequest DTO для анализа точки
// @Description DTO для анализа точки. Координаты - указатели, чтобы 0 был допустимым значением
type AnalyzeLocationRequest struct {
	LocationName string   `json:"location_name" validate:"required,max=255"`
	Latitude     *float64 `json:"latitude" validate:"required,latitude"`
	Longitude    *float64 `json:"longitude" validate:"required,longitude"`
}

// AddFavoriteRequest DTO для добавления избранной точки
// @Description DTO для добавления избранной точки
type AddFavoriteRequest struct {
	Name      string   `json:"name" validate:"required,max=255"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// SendAlertRequest DTO для отправки оповещения
// @Description DTO для отправки оповещения
type SendAlertRequest struct {
	Phone string `json:"phone" validate:"required,max=32"`
}

// LandDataResponse DTO записи анализа
// @Description DTO записи анализа
type LandDataResponse struct {
	ID               uuid.UUID        `json:"id"`
	LocationName     string           `json:"location_name"`
	Latitude         float64          `json:"latitude"`
	Longitude        float64          `json:"longitude"`
	VegetationIndex  float64          `json:"vegetation_index"`
	SoilMoisture     float64          `json:"soil_moisture"`
	Temperature      float64          `json:"temperature"`
	Rainfall         float64          `json:"rainfall"`
	DegradationLevel models.RiskLevel `json:"degradation_level"`
	Recommendation   string           `json:"ai_recommendation"`
	FloodRisk        models.RiskLevel `json:"flood_risk"`
	DroughtRisk      models.RiskLevel `json:"drought_risk"`
	AlertSent        bool             `json:"alert_sent"`
	CreatedAt        time.Time        `json:"created_at"`
}

// RecommendationResponse DTO оценки деградации
// @Description DTO оценки деградации
type RecommendationResponse struct {
	DegradationLevel models.RiskLevel `json:"degradation_level"`
	Recommendation   string           `json:"recommendation"`
	FloodRisk        models.RiskLevel `json:"flood_risk"`
	DroughtRisk      models.RiskLevel `json:"drought_risk"`
	Source           string           `json:"source"`
}

// AnalyzeLocationResponse DTO результата анализа
// @Description DTO результата анализа
type AnalyzeLocationResponse struct {
	ShouldAlert bool                   `json:"should_alert"`
	Data        RecommendationResponse `json:"data"`
	Entry       *LandDataResponse      `json:"entry"`
	FromCache   bool                   `json:"from_cache"`
	Degraded    bool                   `json:"degraded"`
}

// SummaryResponse DTO сводки для дашборда
// @Description DTO сводки для дашборда
type SummaryResponse struct {
	TotalEntries         int            `json:"total_entries"`
	AlertsSent           int            `json:"alerts_sent"`
	AvgVegetationIndex   float64        `json:"avg_vegetation_index"`
	AvgSoilMoisture      float64        `json:"avg_soil_moisture"`
	AvgTemperature       float64        `json:"avg_temperature"`
	AvgRainfall          float64        `json:"avg_rainfall"`
	DegradationCounts    map[string]int `json:"degradation_counts"`
	HighFloodRiskCount   int            `json:"high_flood_risk_count"`
	HighDroughtRiskCount int            `json:"high_drought_risk_count"`
}

// FavoriteResponse DTO избранной точки
// @Description DTO избранной точки
type FavoriteResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

// SendAlertResponse DTO ответа на отправку оповещения
// @Description DTO ответа на отправку оповещения
type SendAlertResponse struct {
	MessageID string `json:"message_id"`
}

// ClearCacheResponse DTO ответа на очистку кэша
// @Description DTO ответа на очистку кэша
type ClearCacheResponse struct {
	Removed int `json:"removed"`
}
