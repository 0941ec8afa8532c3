package recommendation

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shenikar/gaia_guard/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validReply = `{"degradation_level":"moderate","ai_recommendation":"Plant cover crops.","flood_risk":"low","drought_risk":"high"}`

func TestDecodeStrict(t *testing.T) {
	rec, err := DecodeStrict(validReply)

	require.NoError(t, err)
	assert.Equal(t, models.Recommendation{
		DegradationLevel: models.RiskModerate,
		Text:             "Plant cover crops.",
		FloodRisk:        models.RiskLow,
		DroughtRisk:      models.RiskHigh,
		Source:           models.SourceModel,
	}, rec)
}

func TestDecodeStrict_RejectsFencedText(t *testing.T) {
	_, err := DecodeStrict("```json\n" + validReply + "\n```")
	assert.Error(t, err)
}

func TestDecodeStrict_RejectsUnknownLevel(t *testing.T) {
	_, err := DecodeStrict(`{"degradation_level":"severe","ai_recommendation":"x","flood_risk":"low","drought_risk":"low"}`)
	assert.ErrorContains(t, err, "degradation_level")
}

func TestDecodeStrict_RejectsEmptyText(t *testing.T) {
	_, err := DecodeStrict(`{"degradation_level":"low","ai_recommendation":"  ","flood_risk":"low","drought_risk":"low"}`)
	assert.Error(t, err)
}

func TestUnwrap(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "fenced json block",
			content: "Here you go:\n```json\n" + validReply + "\n```\nThanks",
			want:    validReply,
		},
		{
			name:    "fenced block without language",
			content: "```\n{\"a\":{\"b\":1}}\n```",
			want:    `{"a":{"b":1}}`,
		},
		{
			name:    "bare object in prose",
			content: "Assessment: " + validReply + " end.",
			want:    validReply,
		},
		{
			name:    "braces inside strings",
			content: `noise {"ai_recommendation":"use } carefully { here","x":{"y":2}} trailing }`,
			want:    `{"ai_recommendation":"use } carefully { here","x":{"y":2}}`,
		},
		{
			name:    "escaped quote inside string",
			content: `{"a":"say \"hi\" }"}`,
			want:    `{"a":"say \"hi\" }"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unwrap(tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnwrap_NoObject(t *testing.T) {
	_, err := Unwrap("I cannot help with that {")
	assert.ErrorIs(t, err, ErrNoJSON)
}

func TestParse_RecoversFencedReply(t *testing.T) {
	rec, err := Parse("```json\n" + validReply + "\n```")

	require.NoError(t, err)
	assert.Equal(t, models.RiskHigh, rec.DroughtRisk)
}

func TestParse_AcceptsRecommendationKeyAndCase(t *testing.T) {
	rec, err := Parse(`{"degradation_level":"HIGH","recommendation":"Terracing.","flood_risk":"Moderate","drought_risk":"low"}`)

	require.NoError(t, err)
	assert.Equal(t, models.RiskHigh, rec.DegradationLevel)
	assert.Equal(t, models.RiskModerate, rec.FloodRisk)
	assert.Equal(t, "Terracing.", rec.Text)
}

func TestParse_Garbage(t *testing.T) {
	_, err := Parse("not json at all")
	assert.Error(t, err)
}

func TestFallback_Rules(t *testing.T) {
	tests := []struct {
		name     string
		readings models.Readings
		want     [3]models.RiskLevel // degradation, flood, drought
	}{
		{"low ndvi is high degradation", models.Readings{VegetationIndex: 0.25, SoilMoisture: 50, Temperature: 20, Rainfall: 0}, [3]models.RiskLevel{"high", "low", "low"}},
		{"heavy rain healthy land", models.Readings{VegetationIndex: 0.8, SoilMoisture: 50, Temperature: 20, Rainfall: 120}, [3]models.RiskLevel{"low", "high", "low"}},
		{"defaults", models.Readings{VegetationIndex: 0.5, SoilMoisture: 50, Temperature: 20, Rainfall: 0}, [3]models.RiskLevel{"moderate", "low", "low"}},
		{"moderate rain", models.Readings{VegetationIndex: 0.6, SoilMoisture: 50, Temperature: 20, Rainfall: 51}, [3]models.RiskLevel{"low", "moderate", "low"}},
		{"boundary rain 50", models.Readings{VegetationIndex: 0.6, SoilMoisture: 50, Temperature: 20, Rainfall: 50}, [3]models.RiskLevel{"low", "low", "low"}},
		{"hot", models.Readings{VegetationIndex: 0.3, SoilMoisture: 50, Temperature: 31, Rainfall: 0}, [3]models.RiskLevel{"moderate", "low", "high"}},
		{"dry soil", models.Readings{VegetationIndex: 0.3, SoilMoisture: 19, Temperature: 10, Rainfall: 0}, [3]models.RiskLevel{"moderate", "low", "high"}},
		{"semi dry soil", models.Readings{VegetationIndex: 0.3, SoilMoisture: 39, Temperature: 10, Rainfall: 0}, [3]models.RiskLevel{"moderate", "low", "moderate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Fallback(tt.readings)
			assert.Equal(t, tt.want[0], rec.DegradationLevel)
			assert.Equal(t, tt.want[1], rec.FloodRisk)
			assert.Equal(t, tt.want[2], rec.DroughtRisk)
			assert.Equal(t, FallbackText, rec.Text)
			assert.Equal(t, models.SourceFallback, rec.Source)
		})
	}
}

type stubCompleter struct {
	content string
	err     error
	prompt  string
}

func (s *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.content, s.err
}

func newTestGenerator(c Completer) *Generator {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewGenerator(c, logger)
}

func TestGenerate_UsesModelReply(t *testing.T) {
	c := &stubCompleter{content: validReply}
	readings := models.Readings{VegetationIndex: 0.42, SoilMoisture: 33, Temperature: 21.5, Rainfall: 7}

	rec := newTestGenerator(c).Generate(context.Background(), "Delta Basin", 9.05, 38.74, readings)

	assert.Equal(t, models.SourceModel, rec.Source)
	assert.Equal(t, "Plant cover crops.", rec.Text)
	assert.Contains(t, c.prompt, "Location: Delta Basin")
	assert.Contains(t, c.prompt, "Coordinates: 9.05, 38.74")
	assert.Contains(t, c.prompt, "NDVI Score: 0.42")
	assert.Contains(t, c.prompt, "Soil Moisture: 33%")
}

func TestGenerate_FallsBackOnError(t *testing.T) {
	c := &stubCompleter{err: errors.New("503")}
	readings := models.Readings{VegetationIndex: 0.25, Rainfall: 120, SoilMoisture: 50, Temperature: 20}

	rec := newTestGenerator(c).Generate(context.Background(), "x", 1, 1, readings)

	assert.Equal(t, Fallback(readings), rec)
}

func TestGenerate_FallsBackOnUnparsableReply(t *testing.T) {
	c := &stubCompleter{content: `{"degradation_level":"catastrophic"}`}
	readings := models.Readings{VegetationIndex: 0.9, SoilMoisture: 50, Temperature: 20}

	rec := newTestGenerator(c).Generate(context.Background(), "x", 1, 1, readings)

	assert.Equal(t, models.SourceFallback, rec.Source)
	assert.Equal(t, models.RiskLow, rec.DegradationLevel)
}

func TestGenerate_NoCompleter(t *testing.T) {
	rec := newTestGenerator(nil).Generate(context.Background(), "x", 1, 1, models.Readings{VegetationIndex: 0.5})
	assert.Equal(t, models.SourceFallback, rec.Source)
}
