package feed_store_gateway

import (
	"context"
	"sync"

	"unrot/domain"
	"unrot/port/feed_store_port"
)

var _ feed_store_port.FeedStorePort = (*MemoryFeedStoreGateway)(nil)

// MemoryFeedStoreGateway implements the feed store ports in process memory.
// Nothing survives a restart.
type MemoryFeedStoreGateway struct {
	mu     sync.Mutex
	items  []domain.FeedItem
	repos  map[string]domain.RepoRef
	viewed map[string]map[string]struct{}
}

func NewMemoryFeedStoreGateway() *MemoryFeedStoreGateway {
	return &MemoryFeedStoreGateway{
		repos:  make(map[string]domain.RepoRef),
		viewed: make(map[string]map[string]struct{}),
	}
}

func (g *MemoryFeedStoreGateway) Ping(context.Context) error {
	return nil
}

func (g *MemoryFeedStoreGateway) FeedLength(context.Context) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.items), nil
}

func (g *MemoryFeedStoreGateway) ListFeedItems(context.Context) ([]domain.FeedItem, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]domain.FeedItem, len(g.items))
	copy(out, g.items)
	return out, nil
}

func (g *MemoryFeedStoreGateway) AppendFeedItems(_ context.Context, items []domain.FeedItem) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.items = append(g.items, items...)
	return nil
}

func (g *MemoryFeedStoreGateway) PrependFeedItems(_ context.Context, items []domain.FeedItem, max int) (int, error) {
	if max <= 0 {
		return 0, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	fresh := domain.FilterNewFeedItems(domain.FeedItemIDs(g.items), items)
	if len(fresh) > max {
		fresh = fresh[:max]
	}

	merged := make([]domain.FeedItem, 0, len(fresh)+len(g.items))
	merged = append(merged, fresh...)
	merged = append(merged, g.items...)
	if len(merged) > max {
		merged = merged[:max]
	}
	g.items = merged
	return len(fresh), nil
}

func (g *MemoryFeedStoreGateway) AddTrackedRepo(_ context.Context, repo domain.RepoRef) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.repos[repo.FullName()] = repo
	return nil
}

func (g *MemoryFeedStoreGateway) RemoveTrackedRepo(_ context.Context, repo domain.RepoRef) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.repos, repo.FullName())
	return nil
}

func (g *MemoryFeedStoreGateway) ListTrackedRepos(context.Context) ([]domain.RepoRef, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	repos := make([]domain.RepoRef, 0, len(g.repos))
	for _, r := range g.repos {
		repos = append(repos, r)
	}
	sortRepos(repos)
	return repos, nil
}

func (g *MemoryFeedStoreGateway) MarkViewed(_ context.Context, userID, itemID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	set, ok := g.viewed[userID]
	if !ok {
		set = make(map[string]struct{})
		g.viewed[userID] = set
	}
	set[itemID] = struct{}{}
	return nil
}

func (g *MemoryFeedStoreGateway) ViewedItemIDs(_ context.Context, userID string) (map[string]struct{}, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	ids := make(map[string]struct{}, len(g.viewed[userID]))
	for id := range g.viewed[userID] {
		ids[id] = struct{}{}
	}
	return ids, nil
}
