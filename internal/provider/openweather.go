package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shenikar/gaia_guard/internal/config"
	"github.com/sony/gobreaker"
)

const openWeatherName = "openweathermap"

// OpenWeatherClient получает текущую погоду из OpenWeatherMap
type OpenWeatherClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	cb      *gobreaker.CircuitBreaker
}

func NewOpenWeatherClient(cfg config.ProvidersConfig) *OpenWeatherClient {
	return &OpenWeatherClient{
		baseURL: strings.TrimRight(cfg.OpenWeatherURL, "/"),
		apiKey:  cfg.OpenWeatherAPIKey,
		client:  newHTTPClient(cfg.Timeout),
		cb:      NewBreaker(openWeatherName, cfg),
	}
}

func (o *OpenWeatherClient) Name() string { return openWeatherName }

type openWeatherResponse struct {
	Main *struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Rain *struct {
		OneHour float64 `json:"1h"`
	} `json:"rain"`
}

// Weather возвращает температуру и осадки за последний час
func (o *OpenWeatherClient) Weather(ctx context.Context, lat, lon float64) (WeatherReading, error) {
	if o.apiKey == "" {
		return WeatherReading{}, fmt.Errorf("%s: %w", openWeatherName, ErrNotConfigured)
	}
	return execute(o.cb, func() (WeatherReading, error) {
		return o.fetch(ctx, lat, lon)
	})
}

func (o *OpenWeatherClient) fetch(ctx context.Context, lat, lon float64) (WeatherReading, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("appid", o.apiKey)
	q.Set("units", "metric")

	req, err := newJSONRequest(ctx, http.MethodGet, o.baseURL+"/weather?"+q.Encode(), nil)
	if err != nil {
		return WeatherReading{}, err
	}

	var resp openWeatherResponse
	if err := doJSON(o.client, req, openWeatherName, &resp); err != nil {
		return WeatherReading{}, err
	}
	if resp.Main == nil {
		return WeatherReading{}, fmt.Errorf("openweathermap response has no main block")
	}

	reading := WeatherReading{Temperature: resp.Main.Temp}
	if resp.Rain != nil {
		reading.Rainfall = resp.Rain.OneHour
	}
	return reading, nil
}
