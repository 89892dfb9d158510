package feed_usecase

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"unrot/domain"
	"unrot/port/digest_port"
	"unrot/port/feed_store_port"
	"unrot/port/pull_request_port"
	"unrot/utils/errors"
	"unrot/utils/logger"
	"unrot/utils/metrics"
)

var tracer = otel.Tracer("unrot/usecase/feed_usecase")

type Options struct {
	DefaultTopic string
	MaxItems     int
	Users        domain.UserProfiles
	// FetchTimeout bounds each upstream fetch made during seed and refresh.
	FetchTimeout time.Duration
}

// FeedUsecase assembles the shared feed from the digest and tracked repositories.
// It holds no feed state of its own.
type FeedUsecase struct {
	digest digest_port.DigestPort
	pulls  pull_request_port.PullRequestPort
	store  feed_store_port.FeedStorePort
	opts   Options
	now    func() time.Time
}

func NewFeedUsecase(
	digest digest_port.DigestPort,
	pulls pull_request_port.PullRequestPort,
	store feed_store_port.FeedStorePort,
	opts Options,
) *FeedUsecase {
	if opts.DefaultTopic == "" {
		opts.DefaultTopic = "tech"
	}
	if opts.MaxItems <= 0 {
		opts.MaxItems = 40
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = 10 * time.Second
	}
	return &FeedUsecase{
		digest: digest,
		pulls:  pulls,
		store:  store,
		opts:   opts,
		now:    time.Now,
	}
}

// Seed fills an empty feed with today's digest for the default topic. A source failure
// leaves the feed empty and is not returned.
func (u *FeedUsecase) Seed(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "FeedUsecase.Seed")
	defer span.End()

	length, err := u.store.FeedLength(ctx)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if length > 0 {
		logger.FromContext(ctx).InfoContext(ctx, "feed already populated, skipping seed", "length", length)
		return nil
	}

	articles, err := u.fetchDigest(ctx)
	if err != nil {
		logger.FromContext(ctx).WarnContext(ctx, "seed digest unavailable", "error", err)
		return nil
	}

	items := newsFeedItems(articles)
	if len(items) > u.opts.MaxItems {
		items = items[:u.opts.MaxItems]
	}
	if len(items) == 0 {
		return nil
	}

	if err := u.store.AppendFeedItems(ctx, items); err != nil {
		span.RecordError(err)
		return err
	}

	span.SetAttributes(attribute.Int("feed.seeded", len(items)))
	logger.FromContext(ctx).InfoContext(ctx, "feed seeded", "count", len(items))
	return nil
}

// Refresh pulls the digest and every tracked repository, prepends unseen items and trims
// the feed. It returns how many items were persisted. The work is not cancelled when the
// caller goes away.
func (u *FeedUsecase) Refresh(ctx context.Context) (int, error) {
	ctx = context.WithoutCancel(ctx)
	ctx, span := tracer.Start(ctx, "FeedUsecase.Refresh")
	defer span.End()

	existing, err := u.store.ListFeedItems(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "snapshot failed")
		return 0, err
	}
	existingIDs := domain.FeedItemIDs(existing)

	repos, err := u.store.ListTrackedRepos(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list repos failed")
		return 0, err
	}

	var newsItems []domain.FeedItem
	repoItems := make([][]domain.FeedItem, len(repos))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		articles, err := u.fetchDigest(gctx)
		if err != nil {
			logger.FromContext(gctx).WarnContext(gctx, "refresh continuing without digest", "error", err)
			return nil
		}
		newsItems = newsFeedItems(articles)
		return nil
	})
	for i, repo := range repos {
		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(gctx, u.opts.FetchTimeout)
			defer cancel()
			repoItems[i] = u.pulls.FetchFeedItems(fetchCtx, repo)
			return nil
		})
	}
	_ = g.Wait()

	batch := make([]domain.FeedItem, 0, len(newsItems))
	batch = append(batch, newsItems...)
	for _, items := range repoItems {
		batch = append(batch, items...)
	}

	fresh := domain.FilterNewFeedItems(existingIDs, batch)
	span.SetAttributes(
		attribute.Int("feed.candidates", len(batch)),
		attribute.Int("feed.fresh", len(fresh)),
		attribute.Int("feed.repos", len(repos)),
	)
	if len(fresh) == 0 {
		metrics.RecordRefresh(0, len(existing))
		return 0, nil
	}

	added, err := u.store.PrependFeedItems(ctx, fresh, u.opts.MaxItems)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "prepend failed")
		return 0, err
	}

	metrics.RecordRefresh(added, min(len(existing)+added, u.opts.MaxItems))
	logger.FromContext(ctx).InfoContext(ctx, "feed refreshed", "added", added, "candidates", len(batch))
	return added, nil
}

// ReadFeed returns the whole feed annotated with userID's viewed flags.
func (u *FeedUsecase) ReadFeed(ctx context.Context, userID string) ([]domain.ViewedFeedItem, error) {
	if err := u.validateUser(userID); err != nil {
		return nil, err
	}

	items, err := u.store.ListFeedItems(ctx)
	if err != nil {
		return nil, err
	}
	viewed, err := u.store.ViewedItemIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ViewedFeedItem, 0, len(items))
	for _, item := range items {
		_, seen := viewed[item.ID]
		out = append(out, domain.ViewedFeedItem{Item: item, Viewed: seen})
	}
	return out, nil
}

func (u *FeedUsecase) MarkViewed(ctx context.Context, userID, itemID string) error {
	if err := u.validateUser(userID); err != nil {
		return err
	}
	if itemID == "" {
		return errors.InvalidInputError("itemId is required", nil, nil)
	}
	return u.store.MarkViewed(ctx, userID, itemID)
}

func (u *FeedUsecase) TrackRepo(ctx context.Context, owner, repo string) error {
	ref, err := repoRef(owner, repo)
	if err != nil {
		return err
	}
	if err := u.store.AddTrackedRepo(ctx, ref); err != nil {
		return err
	}
	logger.FromContext(ctx).InfoContext(ctx, "repository tracked", "repo", ref.FullName())
	return nil
}

func (u *FeedUsecase) UntrackRepo(ctx context.Context, owner, repo string) error {
	ref, err := repoRef(owner, repo)
	if err != nil {
		return err
	}
	return u.store.RemoveTrackedRepo(ctx, ref)
}

func (u *FeedUsecase) ListTrackedRepos(ctx context.Context) ([]string, error) {
	repos, err := u.store.ListTrackedRepos(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(repos))
	for _, r := range repos {
		names = append(names, r.FullName())
	}
	return names, nil
}

func (u *FeedUsecase) fetchDigest(ctx context.Context) ([]domain.Article, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, u.opts.FetchTimeout)
	defer cancel()
	return u.digest.FetchDigest(fetchCtx, u.opts.DefaultTopic, domain.DigestDate(u.now()))
}

func (u *FeedUsecase) validateUser(userID string) error {
	if !u.opts.Users.Contains(userID) {
		return errors.InvalidInputError("invalid userId", domain.ErrUnknownUser, map[string]interface{}{"user_id": userID})
	}
	return nil
}

func repoRef(owner, repo string) (domain.RepoRef, error) {
	ref, err := domain.NewRepoRef(owner, repo)
	if err != nil {
		return domain.RepoRef{}, errors.InvalidInputError("owner and repo are required", err, map[string]interface{}{
			"owner": owner,
			"repo":  repo,
		})
	}
	return ref, nil
}

func newsFeedItems(articles []domain.Article) []domain.FeedItem {
	items := make([]domain.FeedItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, domain.NewNewsFeedItem(a))
	}
	return items
}

