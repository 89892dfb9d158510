package pull_request_gateway

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"unrot/domain"
	"unrot/driver/github_driver"
	"unrot/utils/errors"
	"unrot/utils/logger"
	"unrot/utils/metrics"
	"unrot/utils/rate_limiter"
)

type Options struct {
	PageSize  int
	CacheTTL  time.Duration
	CacheSize int
}

// PullRequestGateway lists recent pull requests of a repository with a short TTL cache.
type PullRequestGateway struct {
	driver   *github_driver.GitHubDriver
	limiter  *rate_limiter.HostRateLimiter
	cache    *expirable.LRU[string, []domain.PullRequest]
	pageSize int
}

func NewPullRequestGateway(driver *github_driver.GitHubDriver, limiter *rate_limiter.HostRateLimiter, opts Options) *PullRequestGateway {
	if opts.PageSize <= 0 {
		opts.PageSize = 20
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = 256
	}
	return &PullRequestGateway{
		driver:   driver,
		limiter:  limiter,
		cache:    expirable.NewLRU[string, []domain.PullRequest](opts.CacheSize, nil, opts.CacheTTL),
		pageSize: opts.PageSize,
	}
}

func (g *PullRequestGateway) FetchPullRequests(ctx context.Context, repo domain.RepoRef) ([]domain.PullRequest, error) {
	key := repo.FullName()
	if cached, ok := g.cache.Get(key); ok {
		metrics.RecordCacheHit(metrics.SourceGitHub)
		return clonePullRequests(cached), nil
	}

	errCtx := map[string]interface{}{"repo": key}

	if g.limiter != nil {
		if err := g.limiter.Wait(ctx, g.driver.BaseURL()); err != nil {
			return nil, errors.SourceUnavailableError("request pacing interrupted", err, errCtx)
		}
	}

	start := time.Now()
	payload, err := g.driver.ListPullRequests(ctx, repo.Owner, repo.Repo, g.pageSize)
	if err != nil {
		var httpErr *domain.ExternalHTTPError
		if stderrors.As(err, &httpErr) {
			errCtx["status_code"] = httpErr.StatusCode
			if httpErr.StatusCode == http.StatusForbidden {
				metrics.RecordSourceFetch(metrics.SourceGitHub, metrics.StatusRateLimited, time.Since(start).Seconds())
				return nil, errors.RateLimitedError("github rate limit exceeded", err, errCtx)
			}
		}
		metrics.RecordSourceFetch(metrics.SourceGitHub, metrics.StatusError, time.Since(start).Seconds())
		return nil, errors.SourceUnavailableError("failed to fetch pull requests", err, errCtx)
	}
	metrics.RecordSourceFetch(metrics.SourceGitHub, metrics.StatusSuccess, time.Since(start).Seconds())

	prs := make([]domain.PullRequest, 0, len(payload))
	for _, p := range payload {
		prs = append(prs, normalize(repo, p))
	}
	g.cache.Add(key, prs)

	return clonePullRequests(prs), nil
}

// FetchFeedItems maps the repository's pull requests to feed items. Failures are logged
// and yield no items.
func (g *PullRequestGateway) FetchFeedItems(ctx context.Context, repo domain.RepoRef) []domain.FeedItem {
	prs, err := g.FetchPullRequests(ctx, repo)
	if err != nil {
		logger.FromContext(ctx).WarnContext(ctx, "skipping repository in feed",
			"repo", repo.FullName(),
			"error", err)
		return []domain.FeedItem{}
	}

	items := make([]domain.FeedItem, 0, len(prs))
	for _, pr := range prs {
		items = append(items, domain.NewPullRequestFeedItem(repo, pr))
	}
	return items
}

func normalize(repo domain.RepoRef, p github_driver.PullRequestPayload) domain.PullRequest {
	author := domain.UnknownAuthor
	if p.User != nil && p.User.Login != "" {
		author = p.User.Login
	}

	description := ""
	if p.Body != nil {
		description = *p.Body
	}

	return domain.PullRequest{
		ID:           p.ID,
		Number:       p.Number,
		Title:        p.Title,
		Author:       author,
		Description:  description,
		State:        p.State,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		HTMLURL:      p.HTMLURL,
		RepoFullName: repo.FullName(),
	}
}

func clonePullRequests(prs []domain.PullRequest) []domain.PullRequest {
	out := make([]domain.PullRequest, len(prs))
	copy(out, prs)
	return out
}
