package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/shenikar/gaia_guard/internal/config"
	"github.com/sony/gobreaker"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	sentinelName      = "sentinel"
	sentinelBBoxDelta = 0.01
	sentinelCRS       = "http://www.opengis.net/def/crs/EPSG/0/4326"
	sentinelGridSize  = 10
)

// sentinelEvalscript считает NDVI и влажность почвы по NDMI, приведённую к 0..100
const sentinelEvalscript = `//VERSION=3
function setup() {
  return {
    input: [{ bands: ["B04", "B08", "B11", "B12"], units: "REFLECTANCE" }],
    output: { bands: 3, sampleType: "FLOAT32" }
  };
}

function evaluatePixel(sample) {
  let ndvi = (sample.B08 - sample.B04) / (sample.B08 + sample.B04);
  let ndmi = (sample.B08 - sample.B11) / (sample.B08 + sample.B11);
  let soilMoisture = ((ndmi + 1) / 2) * 100;
  return [ndvi, soilMoisture, 0];
}`

// SentinelClient получает NDVI и влажность почвы через Sentinel Hub Process API
type SentinelClient struct {
	processURL string
	lookback   time.Duration
	client     *http.Client
	cb         *gobreaker.CircuitBreaker
	configured bool
	now        func() time.Time
}

// NewSentinelClient создает клиента с авторизацией client credentials
func NewSentinelClient(cfg config.ProvidersConfig) *SentinelClient {
	cc := &clientcredentials.Config{
		ClientID:     cfg.SentinelClientID,
		ClientSecret: cfg.SentinelClientSecret,
		TokenURL:     cfg.SentinelTokenURL,
	}
	base := newHTTPClient(cfg.Timeout)
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	client := cc.Client(tokenCtx)
	client.Timeout = cfg.Timeout

	lookback := cfg.ImageryLookback
	if lookback <= 0 {
		lookback = 30 * 24 * time.Hour
	}

	return &SentinelClient{
		processURL: cfg.SentinelProcessURL,
		lookback:   lookback,
		client:     client,
		cb:         NewBreaker(sentinelName, cfg),
		configured: cfg.SentinelClientID != "" && cfg.SentinelClientSecret != "",
		now:        time.Now,
	}
}

func (s *SentinelClient) Name() string { return sentinelName }

type sentinelBounds struct {
	BBox       [4]float64        `json:"bbox"`
	Properties map[string]string `json:"properties"`
}

type sentinelTimeRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type sentinelData struct {
	Type       string `json:"type"`
	DataFilter struct {
		TimeRange sentinelTimeRange `json:"timeRange"`
	} `json:"dataFilter"`
}

type sentinelResponseSpec struct {
	Identifier string            `json:"identifier"`
	Format     map[string]string `json:"format"`
}

type sentinelProcessRequest struct {
	Input struct {
		Bounds sentinelBounds `json:"bounds"`
		Data   []sentinelData `json:"data"`
	} `json:"input"`
	Output struct {
		Width     int                    `json:"width"`
		Height    int                    `json:"height"`
		Responses []sentinelResponseSpec `json:"responses"`
	} `json:"output"`
	Evalscript string `json:"evalscript"`
}

func (s *SentinelClient) buildRequest(lat, lon float64) sentinelProcessRequest {
	end := s.now().UTC()
	start := end.Add(-s.lookback)

	var pr sentinelProcessRequest
	pr.Input.Bounds = sentinelBounds{
		BBox:       [4]float64{lon - sentinelBBoxDelta, lat - sentinelBBoxDelta, lon + sentinelBBoxDelta, lat + sentinelBBoxDelta},
		Properties: map[string]string{"crs": sentinelCRS},
	}
	data := sentinelData{Type: "sentinel-2-l2a"}
	data.DataFilter.TimeRange = sentinelTimeRange{
		From: start.Format("2006-01-02") + "T00:00:00Z",
		To:   end.Format("2006-01-02") + "T23:59:59Z",
	}
	pr.Input.Data = []sentinelData{data}
	pr.Output.Width = sentinelGridSize
	pr.Output.Height = sentinelGridSize
	pr.Output.Responses = []sentinelResponseSpec{{
		Identifier: "default",
		Format:     map[string]string{"type": "application/json"},
	}}
	pr.Evalscript = sentinelEvalscript
	return pr
}

// VegetationSoil возвращает средние по сетке NDVI и влажность почвы
func (s *SentinelClient) VegetationSoil(ctx context.Context, lat, lon float64) (VegetationReading, error) {
	if !s.configured {
		return VegetationReading{}, fmt.Errorf("%s: %w", sentinelName, ErrNotConfigured)
	}
	return execute(s.cb, func() (VegetationReading, error) {
		return s.fetch(ctx, lat, lon)
	})
}

func (s *SentinelClient) fetch(ctx context.Context, lat, lon float64) (VegetationReading, error) {
	payload, err := json.Marshal(s.buildRequest(lat, lon))
	if err != nil {
		return VegetationReading{}, fmt.Errorf("failed to marshal sentinel request: %w", err)
	}
	req, err := newJSONRequest(ctx, http.MethodPost, s.processURL, bytes.NewReader(payload))
	if err != nil {
		return VegetationReading{}, err
	}

	var pixels [][]float64
	if err := doJSON(s.client, req, sentinelName, &pixels); err != nil {
		return VegetationReading{}, err
	}

	var ndviSum, soilSum float64
	count := 0
	for _, px := range pixels {
		if len(px) < 2 || math.IsNaN(px[0]) || math.IsNaN(px[1]) {
			continue
		}
		ndviSum += px[0]
		soilSum += px[1]
		count++
	}
	if count == 0 {
		return VegetationReading{}, fmt.Errorf("sentinel returned no usable pixels")
	}

	soil := clamp(soilSum/float64(count), 0, 100)
	return VegetationReading{
		VegetationIndex: clamp(ndviSum/float64(count), -1, 1),
		SoilMoisture:    &soil,
	}, nil
}
