package feed_store_port

import (
	"context"

	"unrot/domain"
)

// FeedListPort manages the single ordered feed list, newest first.
type FeedListPort interface {
	FeedLength(ctx context.Context) (int, error)
	ListFeedItems(ctx context.Context) ([]domain.FeedItem, error)
	// AppendFeedItems adds items to the tail in the given order.
	AppendFeedItems(ctx context.Context, items []domain.FeedItem) error
	// PrependFeedItems adds items whose ids are not yet stored to the head, keeping their
	// relative order, and trims the list to max. It returns how many items were persisted.
	PrependFeedItems(ctx context.Context, items []domain.FeedItem, max int) (int, error)
}

type TrackedRepoPort interface {
	AddTrackedRepo(ctx context.Context, repo domain.RepoRef) error
	RemoveTrackedRepo(ctx context.Context, repo domain.RepoRef) error
	// ListTrackedRepos returns repos sorted by full name.
	ListTrackedRepos(ctx context.Context) ([]domain.RepoRef, error)
}

type ViewedPort interface {
	MarkViewed(ctx context.Context, userID, itemID string) error
	ViewedItemIDs(ctx context.Context, userID string) (map[string]struct{}, error)
}

type FeedStorePort interface {
	FeedListPort
	TrackedRepoPort
	ViewedPort
	Ping(ctx context.Context) error
}
