package di

import (
	"fmt"

	"unrot/config"
	"unrot/domain"
	"unrot/driver/catalog_driver"
	"unrot/driver/github_driver"
	"unrot/driver/redis_driver"
	"unrot/driver/tldr_driver"
	"unrot/gateway/digest_gateway"
	"unrot/gateway/feed_store_gateway"
	"unrot/gateway/pull_request_gateway"
	"unrot/port/feed_store_port"
	"unrot/usecase/catalog_usecase"
	"unrot/usecase/feed_usecase"
	"unrot/usecase/news_usecase"
	"unrot/usecase/pull_request_usecase"
	"unrot/utils/rate_limiter"
)

type ApplicationComponents struct {
	FeedStore          feed_store_port.FeedStorePort
	FeedUsecase        *feed_usecase.FeedUsecase
	NewsUsecase        *news_usecase.NewsUsecase
	PullRequestUsecase *pull_request_usecase.PullRequestUsecase
	CatalogUsecase     *catalog_usecase.CatalogUsecase

	redisDriver *redis_driver.RedisDriver
}

func NewApplicationComponents(cfg *config.Config) (*ApplicationComponents, error) {
	store, redisDriver, err := newFeedStore(cfg)
	if err != nil {
		return nil, err
	}

	catalog, err := catalog_driver.LoadCatalog()
	if err != nil {
		return nil, err
	}

	digestGateway := digest_gateway.NewDigestGateway(
		tldr_driver.NewTLDRDriver(cfg.Digest.BaseURL, cfg.HTTP.ClientTimeout, cfg.HTTP.UserAgent),
	)

	pullRequestGateway := pull_request_gateway.NewPullRequestGateway(
		github_driver.NewGitHubDriver(cfg.GitHub.APIURL, cfg.GitHub.Token, cfg.HTTP.ClientTimeout, cfg.HTTP.UserAgent),
		rate_limiter.NewHostRateLimiter(cfg.GitHub.RequestInterval, 1),
		pull_request_gateway.Options{
			PageSize:  cfg.GitHub.PageSize,
			CacheTTL:  cfg.GitHub.CacheTTL,
			CacheSize: cfg.GitHub.CacheSize,
		},
	)

	feedUsecase := feed_usecase.NewFeedUsecase(digestGateway, pullRequestGateway, store, feed_usecase.Options{
		DefaultTopic: cfg.Feed.DefaultTopic,
		MaxItems:     cfg.Feed.MaxItems,
		Users:        domain.UserProfiles(cfg.Feed.Users),
		FetchTimeout: cfg.HTTP.ClientTimeout,
	})

	return &ApplicationComponents{
		FeedStore:          store,
		FeedUsecase:        feedUsecase,
		NewsUsecase:        news_usecase.NewNewsUsecase(digestGateway, cfg.Feed.DefaultTopic),
		PullRequestUsecase: pull_request_usecase.NewPullRequestUsecase(pullRequestGateway),
		CatalogUsecase:     catalog_usecase.NewCatalogUsecase(catalog),
		redisDriver:        redisDriver,
	}, nil
}

func newFeedStore(cfg *config.Config) (feed_store_port.FeedStorePort, *redis_driver.RedisDriver, error) {
	switch cfg.Store.Backend {
	case "memory":
		return feed_store_gateway.NewMemoryFeedStoreGateway(), nil, nil
	case "redis", "":
		driver, err := redis_driver.NewRedisDriverWithURL(cfg.Redis.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis driver: %w", err)
		}
		return feed_store_gateway.NewRedisFeedStoreGateway(driver), driver, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

// Close releases connections held by the components.
func (c *ApplicationComponents) Close() error {
	if c.redisDriver != nil {
		return c.redisDriver.Close()
	}
	return nil
}
