package feed_store_gateway

import (
	"context"
	"encoding/json"
	"sort"

	"unrot/domain"
	"unrot/driver/redis_driver"
	"unrot/port/feed_store_port"
	"unrot/utils/errors"
	"unrot/utils/logger"
	"unrot/utils/metrics"
)

const (
	feedItemsKey   = "feed:items"
	trackedRepoKey = "feed:repos"
	viewedPrefix   = "viewed:"
)

var _ feed_store_port.FeedStorePort = (*RedisFeedStoreGateway)(nil)

// RedisFeedStoreGateway keeps the feed list, tracked repos and viewed sets in Redis.
type RedisFeedStoreGateway struct {
	driver *redis_driver.RedisDriver
}

func NewRedisFeedStoreGateway(driver *redis_driver.RedisDriver) *RedisFeedStoreGateway {
	return &RedisFeedStoreGateway{driver: driver}
}

func viewedKey(userID string) string {
	return viewedPrefix + userID
}

func storeError(ctx context.Context, operation string, err error, errCtx map[string]interface{}) error {
	metrics.RecordStoreError(operation)
	appErr := errors.StoreError("feed store "+operation+" failed", err, errCtx)
	errors.LogError(logger.FromContext(ctx), appErr, operation)
	return appErr
}

func (g *RedisFeedStoreGateway) Ping(ctx context.Context) error {
	if err := g.driver.Ping(ctx); err != nil {
		return errors.StoreError("redis ping failed", err, nil)
	}
	return nil
}

func (g *RedisFeedStoreGateway) FeedLength(ctx context.Context) (int, error) {
	n, err := g.driver.ListLength(ctx, feedItemsKey)
	if err != nil {
		return 0, storeError(ctx, "feed_length", err, nil)
	}
	return int(n), nil
}

func (g *RedisFeedStoreGateway) ListFeedItems(ctx context.Context) ([]domain.FeedItem, error) {
	values, err := g.driver.ListRange(ctx, feedItemsKey)
	if err != nil {
		return nil, storeError(ctx, "list_feed_items", err, nil)
	}
	return decodeFeedItems(ctx, values), nil
}

func (g *RedisFeedStoreGateway) AppendFeedItems(ctx context.Context, items []domain.FeedItem) error {
	values, err := encodeFeedItems(items)
	if err != nil {
		return storeError(ctx, "append_feed_items", err, nil)
	}
	if err := g.driver.AppendAll(ctx, feedItemsKey, values); err != nil {
		return storeError(ctx, "append_feed_items", err, map[string]interface{}{"count": len(values)})
	}
	return nil
}

func (g *RedisFeedStoreGateway) PrependFeedItems(ctx context.Context, items []domain.FeedItem, max int) (int, error) {
	if max <= 0 || len(items) == 0 {
		return 0, nil
	}

	pushed, err := g.driver.PrependAndTrim(ctx, feedItemsKey, int64(max), func(current []string) ([]string, error) {
		existing := domain.FeedItemIDs(decodeFeedItems(ctx, current))
		fresh := domain.FilterNewFeedItems(existing, items)
		if len(fresh) > max {
			fresh = fresh[:max]
		}
		return encodeFeedItems(fresh)
	})
	if err != nil {
		return 0, storeError(ctx, "prepend_feed_items", err, map[string]interface{}{"count": len(items)})
	}
	return len(pushed), nil
}

func (g *RedisFeedStoreGateway) AddTrackedRepo(ctx context.Context, repo domain.RepoRef) error {
	if err := g.driver.SetAdd(ctx, trackedRepoKey, repo.FullName()); err != nil {
		return storeError(ctx, "add_tracked_repo", err, map[string]interface{}{"repo": repo.FullName()})
	}
	return nil
}

func (g *RedisFeedStoreGateway) RemoveTrackedRepo(ctx context.Context, repo domain.RepoRef) error {
	if err := g.driver.SetRemove(ctx, trackedRepoKey, repo.FullName()); err != nil {
		return storeError(ctx, "remove_tracked_repo", err, map[string]interface{}{"repo": repo.FullName()})
	}
	return nil
}

func (g *RedisFeedStoreGateway) ListTrackedRepos(ctx context.Context) ([]domain.RepoRef, error) {
	members, err := g.driver.SetMembers(ctx, trackedRepoKey)
	if err != nil {
		return nil, storeError(ctx, "list_tracked_repos", err, nil)
	}

	repos := make([]domain.RepoRef, 0, len(members))
	for _, m := range members {
		repo, err := domain.ParseRepoRef(m)
		if err != nil {
			logger.FromContext(ctx).WarnContext(ctx, "ignoring malformed tracked repo", "value", m)
			continue
		}
		repos = append(repos, repo)
	}
	sortRepos(repos)
	return repos, nil
}

func (g *RedisFeedStoreGateway) MarkViewed(ctx context.Context, userID, itemID string) error {
	if err := g.driver.SetAdd(ctx, viewedKey(userID), itemID); err != nil {
		return storeError(ctx, "mark_viewed", err, map[string]interface{}{"user_id": userID})
	}
	return nil
}

func (g *RedisFeedStoreGateway) ViewedItemIDs(ctx context.Context, userID string) (map[string]struct{}, error) {
	members, err := g.driver.SetMembers(ctx, viewedKey(userID))
	if err != nil {
		return nil, storeError(ctx, "viewed_item_ids", err, map[string]interface{}{"user_id": userID})
	}
	ids := make(map[string]struct{}, len(members))
	for _, m := range members {
		ids[m] = struct{}{}
	}
	return ids, nil
}

func encodeFeedItems(items []domain.FeedItem) ([]string, error) {
	values := make([]string, 0, len(items))
	for _, item := range items {
		b, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		values = append(values, string(b))
	}
	return values, nil
}

// decodeFeedItems skips records that no longer decode rather than failing the whole read.
func decodeFeedItems(ctx context.Context, values []string) []domain.FeedItem {
	items := make([]domain.FeedItem, 0, len(values))
	for _, v := range values {
		var item domain.FeedItem
		if err := json.Unmarshal([]byte(v), &item); err != nil {
			logger.FromContext(ctx).WarnContext(ctx, "skipping undecodable feed record", "error", err)
			continue
		}
		items = append(items, item)
	}
	return items
}

func sortRepos(repos []domain.RepoRef) {
	sort.Slice(repos, func(i, j int) bool {
		return repos[i].FullName() < repos[j].FullName()
	})
}
