package di

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unrot/config"
	"unrot/gateway/feed_store_gateway"
)

func testConfig(backend, redisURL string) *config.Config {
	return &config.Config{
		Redis:  config.RedisConfig{URL: redisURL},
		Store:  config.StoreConfig{Backend: backend},
		HTTP:   config.HTTPConfig{ClientTimeout: time.Second},
		Digest: config.DigestConfig{BaseURL: "http://127.0.0.1:1"},
		GitHub: config.GitHubConfig{APIURL: "http://127.0.0.1:1", PageSize: 20, CacheTTL: time.Minute, CacheSize: 8},
		Feed:   config.FeedConfig{DefaultTopic: "tech", MaxItems: 40, Users: []string{"aman"}},
	}
}

func TestNewApplicationComponents_Memory(t *testing.T) {
	components, err := NewApplicationComponents(testConfig("memory", ""))
	require.NoError(t, err)
	defer components.Close()

	assert.IsType(t, &feed_store_gateway.MemoryFeedStoreGateway{}, components.FeedStore)
	assert.NotNil(t, components.FeedUsecase)
	assert.NotNil(t, components.NewsUsecase)
	assert.NotNil(t, components.PullRequestUsecase)
	assert.NotNil(t, components.CatalogUsecase)
}

func TestNewApplicationComponents_Redis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	components, err := NewApplicationComponents(testConfig("redis", "redis://"+mr.Addr()))
	require.NoError(t, err)
	defer components.Close()

	assert.IsType(t, &feed_store_gateway.RedisFeedStoreGateway{}, components.FeedStore)
	assert.NoError(t, components.FeedStore.Ping(context.Background()))
}

func TestNewApplicationComponents_Errors(t *testing.T) {
	_, err := NewApplicationComponents(testConfig("etcd", ""))
	assert.Error(t, err)

	_, err = NewApplicationComponents(testConfig("redis", "not a url"))
	assert.Error(t, err)
}
