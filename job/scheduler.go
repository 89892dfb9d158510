package job

import (
	"context"
	"sync"
	"time"

	"unrot/utils/logger"
)

// Job is a background task. A non-positive Interval runs it once.
type Job struct {
	Name     string
	Interval time.Duration
	Timeout  time.Duration
	Fn       func(ctx context.Context) error
}

// JobScheduler runs jobs until its context is cancelled.
type JobScheduler struct {
	jobs []Job
	wg   sync.WaitGroup
}

func NewJobScheduler() *JobScheduler {
	return &JobScheduler{}
}

func (s *JobScheduler) Add(j Job) {
	s.jobs = append(s.jobs, j)
}

// Start launches every job in its own goroutine. Each runs immediately, then repeats
// at its interval.
func (s *JobScheduler) Start(ctx context.Context) {
	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.runJob(ctx, j)
	}
}

func (s *JobScheduler) runJob(ctx context.Context, j Job) {
	defer s.wg.Done()

	s.executeJob(ctx, j)
	if j.Interval <= 0 {
		return
	}

	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.FromContext(ctx).InfoContext(ctx, "job stopping", "job", j.Name)
			return
		case <-ticker.C:
			s.executeJob(ctx, j)
		}
	}
}

func (s *JobScheduler) executeJob(ctx context.Context, j Job) {
	if ctx.Err() != nil {
		return
	}

	jobCtx := ctx
	if j.Timeout > 0 {
		var cancel context.CancelFunc
		jobCtx, cancel = context.WithTimeout(ctx, j.Timeout)
		defer cancel()
	}

	start := time.Now()
	if err := j.Fn(jobCtx); err != nil {
		logger.FromContext(ctx).ErrorContext(ctx, "job failed", "job", j.Name, "error", err)
		return
	}
	logger.FromContext(ctx).InfoContext(ctx, "job completed",
		"job", j.Name,
		"duration_ms", time.Since(start).Milliseconds())
}

// Shutdown blocks until all running jobs return.
func (s *JobScheduler) Shutdown() {
	s.wg.Wait()
}
