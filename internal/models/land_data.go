package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RiskLevel - категориальная оценка: низкий, умеренный или высокий уровень
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// ParseRiskLevel приводит строку к RiskLevel; неизвестные значения отклоняются
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch level := RiskLevel(strings.ToLower(strings.TrimSpace(s))); level {
	case RiskLow, RiskModerate, RiskHigh:
		return level, nil
	default:
		return "", fmt.Errorf("unknown risk level %q", s)
	}
}

// Valid сообщает, входит ли значение в допустимый набор
func (r RiskLevel) Valid() bool {
	_, err := ParseRiskLevel(string(r))
	return err == nil
}

// Readings - нормализованные показания окружающей среды для точки
type Readings struct {
	VegetationIndex float64 `json:"vegetation_index"`
	SoilMoisture    float64 `json:"soil_moisture"`
	Temperature     float64 `json:"temperature"`
	Rainfall        float64 `json:"rainfall"`
}

const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

// Recommendation - оценка деградации земель и рекомендация по ней
type Recommendation struct {
	DegradationLevel RiskLevel `json:"degradation_level"`
	Text             string    `json:"recommendation"`
	FloodRisk        RiskLevel `json:"flood_risk"`
	DroughtRisk      RiskLevel `json:"drought_risk"`
	// Source - "model" или "fallback"
	Source string `json:"source"`
}

// LandDataEntry - результат анализа одной точки
type LandDataEntry struct {
	ID               uuid.UUID `json:"id"`
	UserID           string    `json:"user_id"`
	LocationName     string    `json:"location_name"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	VegetationIndex  float64   `json:"vegetation_index"`
	SoilMoisture     float64   `json:"soil_moisture"`
	Temperature      float64   `json:"temperature"`
	Rainfall         float64   `json:"rainfall"`
	DegradationLevel RiskLevel `json:"degradation_level"`
	Recommendation   string    `json:"recommendation"`
	FloodRisk        RiskLevel `json:"flood_risk"`
	DroughtRisk      RiskLevel `json:"drought_risk"`
	AlertSent        bool      `json:"alert_sent"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewLandDataEntry собирает запись из показаний и рекомендации
func NewLandDataEntry(userID, name string, lat, lon float64, r Readings, rec Recommendation) *LandDataEntry {
	return &LandDataEntry{
		UserID:           userID,
		LocationName:     name,
		Latitude:         lat,
		Longitude:        lon,
		VegetationIndex:  r.VegetationIndex,
		SoilMoisture:     r.SoilMoisture,
		Temperature:      r.Temperature,
		Rainfall:         r.Rainfall,
		DegradationLevel: rec.DegradationLevel,
		Recommendation:   rec.Text,
		FloodRisk:        rec.FloodRisk,
		DroughtRisk:      rec.DroughtRisk,
	}
}

// Readings возвращает показания, сохранённые в записи
func (e *LandDataEntry) Readings() Readings {
	return Readings{
		VegetationIndex: e.VegetationIndex,
		SoilMoisture:    e.SoilMoisture,
		Temperature:     e.Temperature,
		Rainfall:        e.Rainfall,
	}
}

// AnalysisResult - итог анализа точки
type AnalysisResult struct {
	ShouldAlert    bool           `json:"should_alert"`
	Recommendation Recommendation `json:"data"`
	Entry          *LandDataEntry `json:"entry"`
	FromCache      bool           `json:"from_cache"`
	// Degraded - хотя бы одна половина показаний взята из резервных значений
	Degraded bool `json:"degraded"`
}

// LandSummary - сводка по записям пользователя для дашборда
type LandSummary struct {
	TotalEntries         int               `json:"total_entries"`
	AlertsSent           int               `json:"alerts_sent"`
	AvgVegetationIndex   float64           `json:"avg_vegetation_index"`
	AvgSoilMoisture      float64           `json:"avg_soil_moisture"`
	AvgTemperature       float64           `json:"avg_temperature"`
	AvgRainfall          float64           `json:"avg_rainfall"`
	DegradationCounts    map[RiskLevel]int `json:"degradation_counts"`
	HighFloodRiskCount   int               `json:"high_flood_risk_count"`
	HighDroughtRiskCount int               `json:"high_drought_risk_count"`
}

// Summarize считает сводку по списку записей
func Summarize(entries []*LandDataEntry) LandSummary {
	s := LandSummary{
		DegradationCounts: map[RiskLevel]int{RiskLow: 0, RiskModerate: 0, RiskHigh: 0},
	}
	if len(entries) == 0 {
		return s
	}
	for _, e := range entries {
		s.TotalEntries++
		if e.AlertSent {
			s.AlertsSent++
		}
		s.AvgVegetationIndex += e.VegetationIndex
		s.AvgSoilMoisture += e.SoilMoisture
		s.AvgTemperature += e.Temperature
		s.AvgRainfall += e.Rainfall
		if e.DegradationLevel.Valid() {
			s.DegradationCounts[e.DegradationLevel]++
		}
		if e.FloodRisk == RiskHigh {
			s.HighFloodRiskCount++
		}
		if e.DroughtRisk == RiskHigh {
			s.HighDroughtRiskCount++
		}
	}
	n := float64(s.TotalEntries)
	s.AvgVegetationIndex /= n
	s.AvgSoilMoisture /= n
	s.AvgTemperature /= n
	s.AvgRainfall /= n
	return s
}
