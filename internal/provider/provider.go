package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shenikar/gaia_guard/internal/config"
	"github.com/sony/gobreaker"
)

// ErrNotConfigured - у провайдера нет учётных данных
var ErrNotConfigured = errors.New("provider is not configured")

// VegetationReading - показания вегетации и влажности почвы.
// SoilMoisture равен nil, если источник не даёт влажность почвы.
type VegetationReading struct {
	VegetationIndex float64
	SoilMoisture    *float64
}

// WeatherReading - температура (°C) и осадки (мм)
type WeatherReading struct {
	Temperature float64
	Rainfall    float64
}

// StatusError - провайдер ответил кодом вне 2xx
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// NewBreaker создает предохранитель, размыкающийся после серии неудачных вызовов
func NewBreaker(name string, cfg config.ProvidersConfig) *gobreaker.CircuitBreaker {
	maxFailures := cfg.BreakerMaxFailures
	if maxFailures <= 0 {
		maxFailures = 5
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    name,
		Timeout: cfg.BreakerOpenTimeout,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= uint32(maxFailures)
		},
	})
}

// execute выполняет вызов через предохранитель; разомкнутый предохранитель возвращает ошибку сразу
func execute[T any](cb *gobreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	var zero T
	res, err := cb.Execute(func() (interface{}, error) {
		v, err := fn()
		if err != nil {
			return nil, err
		}
		return v, nil
	})
	if err != nil {
		return zero, err
	}
	return res.(T), nil
}

// newHTTPClient - нулевой таймаут оставляет поведение транспорта по умолчанию
func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// doJSON выполняет запрос и декодирует JSON-ответ в out
func doJSON(client *http.Client, req *http.Request, name string, out any) error {
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to %s: %w", name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response body: %w", name, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Provider: name, StatusCode: resp.StatusCode, Body: truncate(string(body), 512)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", name, err)
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// newJSONRequest создает запрос, привязанный к контексту вызывающего
func newJSONRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}
