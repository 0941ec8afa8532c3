package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/gaia_guard/internal/alert"
	"github.com/shenikar/gaia_guard/internal/config"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProvidersConfig() config.ProvidersConfig {
	return config.ProvidersConfig{
		BreakerMaxFailures: 2,
		BreakerOpenTimeout: time.Minute,
	}
}

func TestSentinelClient_AveragesPixels(t *testing.T) {
	// Подготовка
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.Form.Get("grant_type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok","token_type":"bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/process", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		var body sentinelProcessRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.InDelta(t, 38.73, body.Input.Bounds.BBox[0], 1e-9)
		assert.InDelta(t, 9.04, body.Input.Bounds.BBox[1], 1e-9)
		assert.Equal(t, "sentinel-2-l2a", body.Input.Data[0].Type)
		assert.Equal(t, "2025-03-01T23:59:59Z", body.Input.Data[0].DataFilter.TimeRange.To)
		_, _ = w.Write([]byte(`[[0.2, 40, 0], [0.6, 60, 0], [0.9]]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg := testProvidersConfig()
	cfg.SentinelClientID = "id"
	cfg.SentinelClientSecret = "secret"
	cfg.SentinelTokenURL = srv.URL + "/token"
	cfg.SentinelProcessURL = srv.URL + "/process"
	client := NewSentinelClient(cfg)
	client.now = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }

	// Действие
	reading, err := client.VegetationSoil(context.Background(), 9.05, 38.74)

	// Проверки
	require.NoError(t, err)
	assert.InDelta(t, 0.4, reading.VegetationIndex, 1e-9)
	require.NotNil(t, reading.SoilMoisture)
	assert.InDelta(t, 50, *reading.SoilMoisture, 1e-9)
}

func TestSentinelClient_ClampsValues(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok","token_type":"bearer"}`))
	})
	mux.HandleFunc("/process", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[[1.7, 140, 0]]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg := testProvidersConfig()
	cfg.SentinelClientID = "id"
	cfg.SentinelClientSecret = "secret"
	cfg.SentinelTokenURL = srv.URL + "/token"
	cfg.SentinelProcessURL = srv.URL + "/process"

	reading, err := NewSentinelClient(cfg).VegetationSoil(context.Background(), 1, 1)

	require.NoError(t, err)
	assert.Equal(t, 1.0, reading.VegetationIndex)
	assert.Equal(t, 100.0, *reading.SoilMoisture)
}

func TestSentinelClient_NotConfigured(t *testing.T) {
	_, err := NewSentinelClient(testProvidersConfig()).VegetationSoil(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestMODISClient_UsesLatestSample(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer nasa", r.Header.Get("Authorization"))
		assert.Equal(t, "9.05", r.URL.Query().Get("latitude"))
		assert.Equal(t, "0", r.URL.Query().Get("kmAboveBelow"))
		_, _ = w.Write([]byte(`{"subset":[{"calendar_date":"2025-01-01","data":[2000]},{"calendar_date":"2025-01-17","data":[6500]}]}`))
	}))
	defer srv.Close()

	cfg := testProvidersConfig()
	cfg.MODISURL = srv.URL
	cfg.MODISToken = "nasa"

	reading, err := NewMODISClient(cfg).VegetationSoil(context.Background(), 9.05, 38.74)

	require.NoError(t, err)
	assert.InDelta(t, 0.65, reading.VegetationIndex, 1e-9)
	assert.Nil(t, reading.SoilMoisture)
}

func TestMODISClient_EmptySubset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"subset":[]}`))
	}))
	defer srv.Close()

	cfg := testProvidersConfig()
	cfg.MODISURL = srv.URL
	cfg.MODISToken = "nasa"

	_, err := NewMODISClient(cfg).VegetationSoil(context.Background(), 1, 1)
	assert.Error(t, err)
}

func TestOpenWeatherClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "key", r.URL.Query().Get("appid"))
		_, _ = w.Write([]byte(`{"main":{"temp":27.5},"rain":{"1h":12.4}}`))
	}))
	defer srv.Close()

	cfg := testProvidersConfig()
	cfg.OpenWeatherURL = srv.URL + "/"
	cfg.OpenWeatherAPIKey = "key"

	reading, err := NewOpenWeatherClient(cfg).Weather(context.Background(), 9.05, 38.74)

	require.NoError(t, err)
	assert.Equal(t, WeatherReading{Temperature: 27.5, Rainfall: 12.4}, reading)
}

func TestOpenWeatherClient_NoRainMeansZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"main":{"temp":18}}`))
	}))
	defer srv.Close()

	cfg := testProvidersConfig()
	cfg.OpenWeatherURL = srv.URL
	cfg.OpenWeatherAPIKey = "key"

	reading, err := NewOpenWeatherClient(cfg).Weather(context.Background(), 1, 1)

	require.NoError(t, err)
	assert.Equal(t, 0.0, reading.Rainfall)
}

func TestOpenWeatherClient_BreakerOpensAfterFailures(t *testing.T) {
	// Подготовка
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := testProvidersConfig()
	cfg.OpenWeatherURL = srv.URL
	cfg.OpenWeatherAPIKey = "key"
	client := NewOpenWeatherClient(cfg)
	ctx := context.Background()

	// Действие
	_, err1 := client.Weather(ctx, 1, 1)
	_, err2 := client.Weather(ctx, 1, 1)
	_, err3 := client.Weather(ctx, 1, 1)

	// Проверки
	var statusErr *StatusError
	require.ErrorAs(t, err1, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Error(t, err2)
	assert.ErrorIs(t, err3, gobreaker.ErrOpenState)
	assert.Equal(t, int32(2), calls.Load())
}

func TestLLMClient_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer llm-key", r.Header.Get("Authorization"))
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.Equal(t, "json_object", req.ResponseFormat["type"])
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "prompt", req.Messages[0].Content)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"degradation_level\":\"low\"}"}}]}`))
	}))
	defer srv.Close()

	cfg := testProvidersConfig()
	cfg.LLMURL = srv.URL
	cfg.LLMAPIKey = "llm-key"
	cfg.LLMModel = "test-model"

	content, err := NewLLMClient(cfg).Complete(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, `{"degradation_level":"low"}`, content)
}

func TestLLMClient_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	cfg := testProvidersConfig()
	cfg.LLMURL = srv.URL
	cfg.LLMAPIKey = "llm-key"

	_, err := NewLLMClient(cfg).Complete(context.Background(), "prompt")
	assert.Error(t, err)
}

func TestTwilioClient_Send(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Accounts/AC123/Messages.json", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "AC123", user)
		assert.Equal(t, "token", pass)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "whatsapp:+14155238886", r.PostForm.Get("From"))
		assert.Equal(t, "whatsapp:+251911000000", r.PostForm.Get("To"))
		assert.Equal(t, "hello", r.PostForm.Get("Body"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"SM42"}`))
	}))
	defer srv.Close()

	cfg := testProvidersConfig()
	cfg.TwilioAPIURL = srv.URL
	cfg.TwilioAccountSID = "AC123"
	cfg.TwilioAuthToken = "token"
	cfg.TwilioFrom = "+14155238886"

	sid, err := NewTwilioClient(cfg).Send(context.Background(), "+251911000000", "hello")

	require.NoError(t, err)
	assert.Equal(t, "SM42", sid)
}

func TestTwilioClient_SenderNotConfiguredCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":63007,"message":"Twilio could not find a Channel with the specified From address","status":400}`))
	}))
	defer srv.Close()

	cfg := testProvidersConfig()
	cfg.TwilioAPIURL = srv.URL
	cfg.TwilioAccountSID = "AC123"
	cfg.TwilioAuthToken = "token"
	cfg.TwilioFrom = "whatsapp:+1000"

	_, err := NewTwilioClient(cfg).Send(context.Background(), "+1", "hello")

	var deliveryErr *alert.DeliveryError
	require.True(t, errors.As(err, &deliveryErr))
	assert.Equal(t, 63007, deliveryErr.Code)
	assert.Equal(t, http.StatusBadRequest, deliveryErr.StatusCode)
	assert.ErrorIs(t, err, alert.ErrSenderNotConfigured)
	assert.Contains(t, deliveryErr.Reason(), "Channel")
}

func TestTwilioClient_OtherErrorIsNotSenderConfig(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":21211,"message":"Invalid 'To' Phone Number"}`))
	}))
	defer srv.Close()

	cfg := testProvidersConfig()
	cfg.TwilioAPIURL = srv.URL
	cfg.TwilioAccountSID = "AC123"
	cfg.TwilioAuthToken = "token"
	cfg.TwilioFrom = "+1000"

	_, err := NewTwilioClient(cfg).Send(context.Background(), "bad", "hello")

	assert.NotErrorIs(t, err, alert.ErrSenderNotConfigured)
	var deliveryErr *alert.DeliveryError
	require.ErrorAs(t, err, &deliveryErr)
	assert.Equal(t, "Invalid 'To' Phone Number (code 21211)", deliveryErr.Reason())
}

func TestTwilioClient_MissingCredentials(t *testing.T) {
	_, err := NewTwilioClient(testProvidersConfig()).Send(context.Background(), "+1", "hello")
	assert.ErrorIs(t, err, alert.ErrSenderNotConfigured)
}
