package config

import (
	"fmt"
	"net/url"

	"unrot/domain"
)

func validateConfig(config *Config) error {
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", config.Server.Port)
	}

	switch config.Store.Backend {
	case "redis":
		if config.Redis.URL == "" {
			return fmt.Errorf("redis url is required when store backend is redis")
		}
	case "memory":
	default:
		return fmt.Errorf("store backend must be redis or memory, got %q", config.Store.Backend)
	}

	if config.HTTP.ClientTimeout <= 0 {
		return fmt.Errorf("http client timeout must be positive")
	}

	if err := validateBaseURL("digest base url", config.Digest.BaseURL); err != nil {
		return err
	}
	if err := validateBaseURL("github api url", config.GitHub.APIURL); err != nil {
		return err
	}

	if config.GitHub.PageSize < 1 || config.GitHub.PageSize > 100 {
		return fmt.Errorf("github page size must be between 1 and 100, got %d", config.GitHub.PageSize)
	}
	if config.GitHub.CacheTTL <= 0 {
		return fmt.Errorf("github cache ttl must be positive")
	}
	if config.GitHub.CacheSize < 1 {
		return fmt.Errorf("github cache size must be positive")
	}

	if !domain.IsDigestCategory(config.Feed.DefaultTopic) {
		return fmt.Errorf("feed default topic must be one of %v, got %q", domain.DigestCategories, config.Feed.DefaultTopic)
	}
	if config.Feed.MaxItems < 1 {
		return fmt.Errorf("feed max items must be positive, got %d", config.Feed.MaxItems)
	}
	if config.Feed.RefreshInterval < 0 {
		return fmt.Errorf("feed refresh interval must not be negative")
	}
	if len(config.Feed.Users) == 0 {
		return fmt.Errorf("at least one feed user profile is required")
	}

	if config.OTel.SampleRatio < 0 || config.OTel.SampleRatio > 1 {
		return fmt.Errorf("otel sample ratio must be within [0, 1], got %v", config.OTel.SampleRatio)
	}

	return nil
}

func validateBaseURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL, got %q", name, raw)
	}
	return nil
}
