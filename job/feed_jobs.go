package job

import (
	"context"
	"time"
)

// FeedRunner is the part of the feed usecase the background jobs drive.
type FeedRunner interface {
	Seed(ctx context.Context) error
	Refresh(ctx context.Context) (int, error)
}

// SeedFeedJob fills an empty feed once at startup. Failures are logged by the scheduler
// and never stop the server.
func SeedFeedJob(feed FeedRunner, timeout time.Duration) Job {
	return Job{
		Name:    "seed-feed",
		Timeout: timeout,
		Fn:      feed.Seed,
	}
}

// RefreshFeedJob refreshes the feed every interval.
func RefreshFeedJob(feed FeedRunner, interval, timeout time.Duration) Job {
	return Job{
		Name:     "refresh-feed",
		Interval: interval,
		Timeout:  timeout,
		Fn: func(ctx context.Context) error {
			_, err := feed.Refresh(ctx)
			return err
		},
	}
}
