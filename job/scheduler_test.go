package job

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJobScheduler_RunsOnceWithoutInterval(t *testing.T) {
	var count atomic.Int32

	scheduler := NewJobScheduler()
	scheduler.Add(Job{
		Name:    "once",
		Timeout: time.Second,
		Fn: func(ctx context.Context) error {
			count.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	scheduler.Start(ctx)
	scheduler.Shutdown()

	assert.Equal(t, int32(1), count.Load())
}

func TestJobScheduler_RepeatsAndStopsOnCancel(t *testing.T) {
	var count atomic.Int32

	scheduler := NewJobScheduler()
	scheduler.Add(Job{
		Name:     "repeat",
		Interval: 10 * time.Millisecond,
		Timeout:  time.Second,
		Fn: func(ctx context.Context) error {
			count.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)
	time.Sleep(55 * time.Millisecond)
	cancel()
	scheduler.Shutdown()

	afterShutdown := count.Load()
	assert.GreaterOrEqual(t, afterShutdown, int32(2))
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, afterShutdown, count.Load())
}

func TestJobScheduler_TimeoutRespected(t *testing.T) {
	var timedOut atomic.Bool

	scheduler := NewJobScheduler()
	scheduler.Add(Job{
		Name:    "timeout",
		Timeout: 20 * time.Millisecond,
		Fn: func(ctx context.Context) error {
			select {
			case <-ctx.Done():
				timedOut.Store(true)
				return ctx.Err()
			case <-time.After(time.Second):
				return nil
			}
		},
	})

	scheduler.Start(context.Background())
	scheduler.Shutdown()

	assert.True(t, timedOut.Load())
}

func TestJobScheduler_FailureDoesNotStopOtherJobs(t *testing.T) {
	var ran atomic.Bool

	scheduler := NewJobScheduler()
	scheduler.Add(Job{Name: "fails", Fn: func(context.Context) error { return errors.New("boom") }})
	scheduler.Add(Job{Name: "works", Fn: func(context.Context) error {
		ran.Store(true)
		return nil
	}})

	scheduler.Start(context.Background())
	scheduler.Shutdown()

	assert.True(t, ran.Load())
}

type fakeFeed struct {
	seeds     atomic.Int32
	refreshes atomic.Int32
}

func (f *fakeFeed) Seed(context.Context) error {
	f.seeds.Add(1)
	return nil
}

func (f *fakeFeed) Refresh(context.Context) (int, error) {
	f.refreshes.Add(1)
	return 0, nil
}

func TestFeedJobs(t *testing.T) {
	feed := &fakeFeed{}

	seed := SeedFeedJob(feed, time.Second)
	refresh := RefreshFeedJob(feed, time.Minute, time.Second)

	assert.Equal(t, time.Duration(0), seed.Interval)
	assert.Equal(t, time.Minute, refresh.Interval)

	assert.NoError(t, seed.Fn(context.Background()))
	assert.NoError(t, refresh.Fn(context.Background()))
	assert.Equal(t, int32(1), feed.seeds.Load())
	assert.Equal(t, int32(1), feed.refreshes.Load())
}
