package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRiskLevel(t *testing.T) {
	level, err := ParseRiskLevel(" High ")
	require.NoError(t, err)
	assert.Equal(t, RiskHigh, level)

	_, err = ParseRiskLevel("severe")
	assert.Error(t, err)
	assert.False(t, RiskLevel("").Valid())
}

func TestSummarize(t *testing.T) {
	entries := []*LandDataEntry{
		{VegetationIndex: 0.2, SoilMoisture: 10, Temperature: 30, Rainfall: 0, DegradationLevel: RiskHigh, DroughtRisk: RiskHigh, FloodRisk: RiskLow, AlertSent: true},
		{VegetationIndex: 0.8, SoilMoisture: 50, Temperature: 20, Rainfall: 120, DegradationLevel: RiskLow, DroughtRisk: RiskLow, FloodRisk: RiskHigh},
	}

	s := Summarize(entries)

	assert.Equal(t, 2, s.TotalEntries)
	assert.Equal(t, 1, s.AlertsSent)
	assert.InDelta(t, 0.5, s.AvgVegetationIndex, 1e-9)
	assert.InDelta(t, 30, s.AvgSoilMoisture, 1e-9)
	assert.InDelta(t, 25, s.AvgTemperature, 1e-9)
	assert.InDelta(t, 60, s.AvgRainfall, 1e-9)
	assert.Equal(t, 1, s.DegradationCounts[RiskHigh])
	assert.Equal(t, 0, s.DegradationCounts[RiskModerate])
	assert.Equal(t, 1, s.HighFloodRiskCount)
	assert.Equal(t, 1, s.HighDroughtRiskCount)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.TotalEntries)
	assert.Zero(t, s.AvgRainfall)
	assert.Len(t, s.DegradationCounts, 3)
}
