package digest_gateway

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"unrot/domain"
	"unrot/driver/tldr_driver"
	"unrot/utils/errors"
	"unrot/utils/html_parser"
	"unrot/utils/logger"
	"unrot/utils/metrics"
)

type digestKey struct {
	category string
	date     string
}

// DigestGateway fetches and parses digest pages. Successful results are memoized for the
// lifetime of the process; failures are not.
type DigestGateway struct {
	driver *tldr_driver.TLDRDriver

	mu    sync.RWMutex
	memo  map[digestKey][]domain.Article
	group singleflight.Group
}

func NewDigestGateway(driver *tldr_driver.TLDRDriver) *DigestGateway {
	return &DigestGateway{
		driver: driver,
		memo:   make(map[digestKey][]domain.Article),
	}
}

func (g *DigestGateway) FetchDigest(ctx context.Context, category, date string) ([]domain.Article, error) {
	key := digestKey{category: category, date: date}

	g.mu.RLock()
	cached, ok := g.memo[key]
	g.mu.RUnlock()
	if ok {
		metrics.RecordCacheHit(metrics.SourceDigest)
		return cloneArticles(cached), nil
	}

	// The shared fetch outlives any single caller; the driver timeout bounds it.
	ch := g.group.DoChan(category+"/"+date, func() (interface{}, error) {
		return g.fetch(context.WithoutCancel(ctx), key)
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return cloneArticles(res.Val.([]domain.Article)), nil
	case <-ctx.Done():
		return nil, errors.SourceUnavailableError("digest fetch abandoned", ctx.Err(), map[string]interface{}{
			"category": category,
			"date":     date,
		})
	}
}

func (g *DigestGateway) fetch(ctx context.Context, key digestKey) ([]domain.Article, error) {
	start := time.Now()
	markup, err := g.driver.FetchPage(ctx, key.category, key.date)
	if err != nil {
		metrics.RecordSourceFetch(metrics.SourceDigest, metrics.StatusError, time.Since(start).Seconds())

		errCtx := map[string]interface{}{
			"category": key.category,
			"date":     key.date,
			"url":      g.driver.PageURL(key.category, key.date),
		}
		var httpErr *domain.ExternalHTTPError
		if stderrors.As(err, &httpErr) {
			errCtx["status_code"] = httpErr.StatusCode
		}
		appErr := errors.SourceUnavailableError("failed to fetch digest", err, errCtx)
		errors.LogError(logger.FromContext(ctx), appErr, "fetch_digest")
		return nil, appErr
	}
	metrics.RecordSourceFetch(metrics.SourceDigest, metrics.StatusSuccess, time.Since(start).Seconds())

	articles := html_parser.ParseDigest(markup)

	g.mu.Lock()
	g.memo[key] = articles
	g.mu.Unlock()

	logger.FromContext(ctx).InfoContext(ctx, "digest fetched",
		"category", key.category,
		"date", key.date,
		"articles", len(articles))

	return articles, nil
}

func cloneArticles(articles []domain.Article) []domain.Article {
	out := make([]domain.Article, len(articles))
	copy(out, articles)
	return out
}
