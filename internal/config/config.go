package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"

	CacheBackendRedis  = "redis"
	CacheBackendMemory = "memory"

	VegetationProviderSentinel = "sentinel"
	VegetationProviderMODIS    = "modis"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Storage Config
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"postgres"`
	DatabaseURL   string `env:"DATABASE_URL"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"./data/gaia_guard.db"`

	// Redis Config
	CacheBackend string `env:"CACHE_BACKEND" envDefault:"redis"`
	RedisAddr    string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass    string `env:"REDIS_PASSWORD"`
	RedisDB      int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Ограничение частоты запросов на анализ (запросов в секунду)
	AnalyzeRateLimit int `env:"ANALYZE_RATE_LIMIT" envDefault:"2"`

	// API ключи: ключ -> идентификатор пользователя
	APIKeys map[string]string `env:"API_KEYS"`

	Providers ProvidersConfig
	Fallback  FallbackConfig
}

// ProvidersConfig - настройки внешних провайдеров
type ProvidersConfig struct {
	// 0 означает таймаут транспорта по умолчанию
	Timeout            time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"0"`
	BreakerMaxFailures int           `env:"BREAKER_MAX_FAILURES" envDefault:"5"`
	BreakerOpenTimeout time.Duration `env:"BREAKER_OPEN_TIMEOUT" envDefault:"30s"`
	ImageryLookback    time.Duration `env:"IMAGERY_LOOKBACK" envDefault:"720h"`

	VegetationProvider string `env:"VEGETATION_PROVIDER" envDefault:"sentinel"`

	SentinelClientID     string `env:"SENTINEL_CLIENT_ID"`
	SentinelClientSecret string `env:"SENTINEL_CLIENT_SECRET"`
	SentinelTokenURL     string `env:"SENTINEL_TOKEN_URL"`
	SentinelProcessURL   string `env:"SENTINEL_PROCESS_URL"`

	MODISURL   string `env:"MODIS_URL"`
	MODISToken string `env:"MODIS_TOKEN"`

	OpenWeatherURL    string `env:"OPENWEATHER_URL"`
	OpenWeatherAPIKey string `env:"OPENWEATHER_API_KEY"`

	LLMURL    string `env:"LLM_URL"`
	LLMAPIKey string `env:"LLM_API_KEY"`
	LLMModel  string `env:"LLM_MODEL"`

	TwilioAPIURL     string `env:"TWILIO_API_URL"`
	TwilioAccountSID string `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `env:"TWILIO_AUTH_TOKEN"`
	TwilioFrom       string `env:"TWILIO_WHATSAPP_NUMBER"`
}

// FallbackConfig - значения, подставляемые при недоступности провайдеров, и пороги
type FallbackConfig struct {
	VegetationIndex        float64       `env:"FALLBACK_VEGETATION_INDEX" envDefault:"0.5"`
	SoilMoisture           float64       `env:"FALLBACK_SOIL_MOISTURE" envDefault:"50"`
	Temperature            float64       `env:"FALLBACK_TEMPERATURE" envDefault:"20"`
	Rainfall               float64       `env:"FALLBACK_RAINFALL" envDefault:"0"`
	CacheTTL               time.Duration `env:"CACHE_TTL" envDefault:"1h"`
	AlertRainfallThreshold float64       `env:"ALERT_RAINFALL_THRESHOLD" envDefault:"150"`
}

// DefaultFallback возвращает значения по умолчанию для резервных данных
func DefaultFallback() FallbackConfig {
	return FallbackConfig{
		VegetationIndex:        0.5,
		SoilMoisture:           50,
		Temperature:            20,
		Rainfall:               0,
		CacheTTL:               time.Hour,
		AlertRainfallThreshold: 150,
	}
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	def := DefaultFallback()
	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		StorageDriver:     strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverPostgres)),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		SQLitePath:        getEnv("SQLITE_PATH", "./data/gaia_guard.db"),
		CacheBackend:      strings.ToLower(getEnv("CACHE_BACKEND", CacheBackendRedis)),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		AnalyzeRateLimit:  getEnvAsInt("ANALYZE_RATE_LIMIT", 2),
		APIKeys:           ParseAPIKeys(os.Getenv("API_KEYS")),
		Providers: ProvidersConfig{
			Timeout:              getEnvAsDuration("PROVIDER_TIMEOUT", 0),
			BreakerMaxFailures:   getEnvAsInt("BREAKER_MAX_FAILURES", 5),
			BreakerOpenTimeout:   getEnvAsDuration("BREAKER_OPEN_TIMEOUT", 30*time.Second),
			ImageryLookback:      getEnvAsDuration("IMAGERY_LOOKBACK", 30*24*time.Hour),
			VegetationProvider:   strings.ToLower(getEnv("VEGETATION_PROVIDER", VegetationProviderSentinel)),
			SentinelClientID:     os.Getenv("SENTINEL_CLIENT_ID"),
			SentinelClientSecret: os.Getenv("SENTINEL_CLIENT_SECRET"),
			SentinelTokenURL:     getEnv("SENTINEL_TOKEN_URL", "https://services.sentinel-hub.com/oauth/token"),
			SentinelProcessURL:   getEnv("SENTINEL_PROCESS_URL", "https://sh.dataspace.copernicus.eu/api/v1/process"),
			MODISURL:             getEnv("MODIS_URL", "https://modis.ornl.gov/rst/api/v1/MOD13Q1/subset"),
			MODISToken:           os.Getenv("MODIS_TOKEN"),
			OpenWeatherURL:       getEnv("OPENWEATHER_URL", "https://api.openweathermap.org/data/2.5"),
			OpenWeatherAPIKey:    os.Getenv("OPENWEATHER_API_KEY"),
			LLMURL:               getEnv("LLM_URL", "https://ai.gateway.lovable.dev/v1/chat/completions"),
			LLMAPIKey:            os.Getenv("LLM_API_KEY"),
			LLMModel:             getEnv("LLM_MODEL", "google/gemini-2.5-flash"),
			TwilioAPIURL:         getEnv("TWILIO_API_URL", "https://api.twilio.com/2010-04-01"),
			TwilioAccountSID:     os.Getenv("TWILIO_ACCOUNT_SID"),
			TwilioAuthToken:      os.Getenv("TWILIO_AUTH_TOKEN"),
			TwilioFrom:           os.Getenv("TWILIO_WHATSAPP_NUMBER"),
		},
		Fallback: FallbackConfig{
			VegetationIndex:        getEnvAsFloat("FALLBACK_VEGETATION_INDEX", def.VegetationIndex),
			SoilMoisture:           getEnvAsFloat("FALLBACK_SOIL_MOISTURE", def.SoilMoisture),
			Temperature:            getEnvAsFloat("FALLBACK_TEMPERATURE", def.Temperature),
			Rainfall:               getEnvAsFloat("FALLBACK_RAINFALL", def.Rainfall),
			CacheTTL:               getEnvAsDuration("CACHE_TTL", def.CacheTTL),
			AlertRainfallThreshold: getEnvAsFloat("ALERT_RAINFALL_THRESHOLD", def.AlertRainfallThreshold),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageDriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required")
		}
	case StorageDriverSQLite:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER: %s", c.StorageDriver)
	}

	if c.CacheBackend != CacheBackendRedis && c.CacheBackend != CacheBackendMemory {
		return fmt.Errorf("unsupported CACHE_BACKEND: %s", c.CacheBackend)
	}

	switch c.Providers.VegetationProvider {
	case VegetationProviderSentinel, VegetationProviderMODIS:
	default:
		return fmt.Errorf("unsupported VEGETATION_PROVIDER: %s", c.Providers.VegetationProvider)
	}

	if c.Fallback.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	return nil
}

// ParseAPIKeys разбирает список вида "user_id:key,key2".
// Ключ без идентификатора получает стабильный идентификатор, выведенный из самого ключа.
func ParseAPIKeys(raw string) map[string]string {
	keys := make(map[string]string)
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		userID, key, found := strings.Cut(item, ":")
		if !found {
			key = item
			userID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(item)).String()
		}
		userID, key = strings.TrimSpace(userID), strings.TrimSpace(key)
		if key == "" || userID == "" {
			continue
		}
		keys[key] = userID
	}
	return keys
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
