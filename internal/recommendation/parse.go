package recommendation

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shenikar/gaia_guard/internal/models"
)

var (
	// ErrNoJSON - в ответе не найден JSON-объект
	ErrNoJSON = errors.New("no JSON object found in reply")

	fencedBlock = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(\\{.*?\\})\\s*```")
)

type reply struct {
	DegradationLevel string `json:"degradation_level"`
	AIRecommendation string `json:"ai_recommendation"`
	Recommendation   string `json:"recommendation"`
	FloodRisk        string `json:"flood_risk"`
	DroughtRisk      string `json:"drought_risk"`
}

// Parse разбирает ответ модели: сначала строгое декодирование, затем
// извлечение JSON из блока кода или первой сбалансированной пары фигурных скобок.
func Parse(content string) (models.Recommendation, error) {
	rec, err := DecodeStrict(content)
	if err == nil {
		return rec, nil
	}

	unwrapped, unwrapErr := Unwrap(content)
	if unwrapErr != nil {
		return models.Recommendation{}, fmt.Errorf("strict decode failed (%v): %w", err, unwrapErr)
	}
	return DecodeStrict(unwrapped)
}

// DecodeStrict декодирует ответ целиком как JSON-объект и проверяет значения
func DecodeStrict(content string) (models.Recommendation, error) {
	var r reply
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &r); err != nil {
		return models.Recommendation{}, fmt.Errorf("failed to decode reply: %w", err)
	}
	return r.validate()
}

// Unwrap находит JSON-объект внутри текста
func Unwrap(content string) (string, error) {
	if m := fencedBlock.FindStringSubmatch(content); m != nil {
		return m[1], nil
	}
	if obj, ok := firstBalancedObject(content); ok {
		return obj, nil
	}
	return "", ErrNoJSON
}

// firstBalancedObject возвращает первый участок {...} со сбалансированными скобками,
// не считая скобки внутри строковых литералов
func firstBalancedObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	for start >= 0 {
		depth := 0
		inString := false
		escaped := false
		for i := start; i < len(s); i++ {
			c := s[i]
			if inString {
				switch {
				case escaped:
					escaped = false
				case c == '\\':
					escaped = true
				case c == '"':
					inString = false
				}
				continue
			}
			switch c {
			case '"':
				inString = true
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return s[start : i+1], true
				}
			}
		}
		next := strings.IndexByte(s[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return "", false
}

func (r reply) validate() (models.Recommendation, error) {
	degradation, err := models.ParseRiskLevel(r.DegradationLevel)
	if err != nil {
		return models.Recommendation{}, fmt.Errorf("degradation_level: %w", err)
	}
	flood, err := models.ParseRiskLevel(r.FloodRisk)
	if err != nil {
		return models.Recommendation{}, fmt.Errorf("flood_risk: %w", err)
	}
	drought, err := models.ParseRiskLevel(r.DroughtRisk)
	if err != nil {
		return models.Recommendation{}, fmt.Errorf("drought_risk: %w", err)
	}

	text := strings.TrimSpace(r.AIRecommendation)
	if text == "" {
		text = strings.TrimSpace(r.Recommendation)
	}
	if text == "" {
		return models.Recommendation{}, errors.New("recommendation text is empty")
	}

	return models.Recommendation{
		DegradationLevel: degradation,
		Text:             text,
		FloodRisk:        flood,
		DroughtRisk:      drought,
		Source:           models.SourceModel,
	}, nil
}
