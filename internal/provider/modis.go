package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shenikar/gaia_guard/internal/config"
	"github.com/sony/gobreaker"
)

const (
	modisName = "modis"
	// MOD13Q1 хранит NDVI в целых с масштабом 0.0001
	modisNDVIScale = 10000.0
)

// MODISClient получает NDVI из продукта NASA MOD13Q1. Влажность почвы он не даёт.
type MODISClient struct {
	baseURL  string
	token    string
	lookback time.Duration
	client   *http.Client
	cb       *gobreaker.CircuitBreaker
	now      func() time.Time
}

func NewMODISClient(cfg config.ProvidersConfig) *MODISClient {
	lookback := cfg.ImageryLookback
	if lookback <= 0 {
		lookback = 30 * 24 * time.Hour
	}
	return &MODISClient{
		baseURL:  cfg.MODISURL,
		token:    cfg.MODISToken,
		lookback: lookback,
		client:   newHTTPClient(cfg.Timeout),
		cb:       NewBreaker(modisName, cfg),
		now:      time.Now,
	}
}

func (m *MODISClient) Name() string { return modisName }

type modisResponse struct {
	Subset []struct {
		CalendarDate string    `json:"calendar_date"`
		Data         []float64 `json:"data"`
	} `json:"subset"`
}

// VegetationSoil возвращает NDVI последнего доступного снимка
func (m *MODISClient) VegetationSoil(ctx context.Context, lat, lon float64) (VegetationReading, error) {
	if m.token == "" {
		return VegetationReading{}, fmt.Errorf("%s: %w", modisName, ErrNotConfigured)
	}
	return execute(m.cb, func() (VegetationReading, error) {
		return m.fetch(ctx, lat, lon)
	})
}

func (m *MODISClient) fetch(ctx context.Context, lat, lon float64) (VegetationReading, error) {
	end := m.now().UTC()
	start := end.Add(-m.lookback)

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("startDate", start.Format("2006-01-02"))
	q.Set("endDate", end.Format("2006-01-02"))
	q.Set("kmAboveBelow", "0")
	q.Set("kmLeftRight", "0")

	req, err := newJSONRequest(ctx, http.MethodGet, m.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return VegetationReading{}, err
	}
	req.Header.Set("Authorization", "Bearer "+m.token)

	var resp modisResponse
	if err := doJSON(m.client, req, modisName, &resp); err != nil {
		return VegetationReading{}, err
	}
	if len(resp.Subset) == 0 {
		return VegetationReading{}, fmt.Errorf("modis returned an empty subset")
	}
	latest := resp.Subset[len(resp.Subset)-1]
	if len(latest.Data) == 0 {
		return VegetationReading{}, fmt.Errorf("modis subset %s has no data", latest.CalendarDate)
	}

	return VegetationReading{
		VegetationIndex: clamp(latest.Data[0]/modisNDVIScale, -1, 1),
	}, nil
}
