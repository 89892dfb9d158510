package config

import (
	"time"
)

type Config struct {
	Server  ServerConfig  `json:"server"`
	Redis   RedisConfig   `json:"redis"`
	Store   StoreConfig   `json:"store"`
	HTTP    HTTPConfig    `json:"http"`
	Digest  DigestConfig  `json:"digest"`
	GitHub  GitHubConfig  `json:"github"`
	Feed    FeedConfig    `json:"feed"`
	Logging LoggingConfig `json:"logging"`
	OTel    OTelConfig    `json:"otel"`
}

type ServerConfig struct {
	Port            int           `json:"port" env:"SERVER_PORT" default:"3000"`
	ReadTimeout     time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout    time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout     time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	AllowOrigins    []string      `json:"allow_origins" env:"SERVER_ALLOW_ORIGINS" default:"*"`
}

type RedisConfig struct {
	URL string `json:"url" env:"REDIS_URL" default:"redis://localhost:6379"`
}

type StoreConfig struct {
	// Backend is "redis" or "memory". The memory store does not survive restarts.
	Backend string `json:"backend" env:"STORE_BACKEND" default:"redis"`
}

type HTTPConfig struct {
	ClientTimeout time.Duration `json:"client_timeout" env:"HTTP_CLIENT_TIMEOUT" default:"10s"`
	UserAgent     string        `json:"user_agent" env:"HTTP_USER_AGENT" default:"unrot/1.0"`
}

type DigestConfig struct {
	BaseURL string `json:"base_url" env:"DIGEST_BASE_URL" default:"https://tldr.tech"`
}

type GitHubConfig struct {
	APIURL          string        `json:"api_url" env:"GITHUB_API_URL" default:"https://api.github.com"`
	Token           string        `json:"-" env:"GITHUB_TOKEN"`
	PageSize        int           `json:"page_size" env:"GITHUB_PAGE_SIZE" default:"20"`
	CacheTTL        time.Duration `json:"cache_ttl" env:"GITHUB_CACHE_TTL" default:"5m"`
	CacheSize       int           `json:"cache_size" env:"GITHUB_CACHE_SIZE" default:"256"`
	RequestInterval time.Duration `json:"request_interval" env:"GITHUB_REQUEST_INTERVAL" default:"100ms"`
}

type FeedConfig struct {
	DefaultTopic    string        `json:"default_topic" env:"FEED_DEFAULT_TOPIC" default:"tech"`
	MaxItems        int           `json:"max_items" env:"FEED_MAX_ITEMS" default:"40"`
	Users           []string      `json:"users" env:"FEED_USERS" default:"aman,another"`
	SeedTimeout     time.Duration `json:"seed_timeout" env:"FEED_SEED_TIMEOUT" default:"30s"`
	// RefreshInterval enables a background refresh when positive.
	RefreshInterval time.Duration `json:"refresh_interval" env:"FEED_REFRESH_INTERVAL" default:"0s"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

type OTelConfig struct {
	Enabled        bool    `json:"enabled" env:"OTEL_ENABLED" default:"false"`
	ServiceName    string  `json:"service_name" env:"OTEL_SERVICE_NAME" default:"unrot"`
	ServiceVersion string  `json:"service_version" env:"SERVICE_VERSION" default:"0.0.0"`
	Environment    string  `json:"environment" env:"DEPLOYMENT_ENV" default:"development"`
	OTLPEndpoint   string  `json:"otlp_endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"http://localhost:4318"`
	SampleRatio    float64 `json:"sample_ratio" env:"OTEL_TRACE_SAMPLE_RATIO" default:"1.0"`
}

// NewConfig creates a new configuration by loading from environment variables
// with fallback to default values
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}
