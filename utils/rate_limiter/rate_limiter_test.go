package rate_limiter

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostRateLimiter_Wait(t *testing.T) {
	tests := []struct {
		name    string
		rawURL  string
		wantErr bool
	}{
		{name: "api url", rawURL: "https://api.github.com/repos/o/r/pulls", wantErr: false},
		{name: "digest url", rawURL: "https://tldr.tech/tech/2026-10-16", wantErr: false},
		{name: "no host", rawURL: "not-a-url", wantErr: true},
		{name: "empty", rawURL: "", wantErr: true},
	}

	limiter := NewHostRateLimiter(10*time.Millisecond, 1)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := limiter.Wait(context.Background(), tt.rawURL)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHostRateLimiter_PacesSameHost(t *testing.T) {
	limiter := NewHostRateLimiter(100*time.Millisecond, 1)
	ctx := context.Background()

	require.NoError(t, limiter.Wait(ctx, "https://api.github.com/a"))
	start := time.Now()
	require.NoError(t, limiter.Wait(ctx, "https://api.github.com/b"))

	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
}

func TestHostRateLimiter_HostsAreIndependent(t *testing.T) {
	limiter := NewHostRateLimiter(time.Second, 1)
	ctx := context.Background()

	require.NoError(t, limiter.Wait(ctx, "https://api.github.com/a"))
	start := time.Now()
	require.NoError(t, limiter.Wait(ctx, "https://tldr.tech/tech"))

	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestHostRateLimiter_ZeroIntervalDisablesPacing(t *testing.T) {
	limiter := NewHostRateLimiter(0, 1)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 20; i++ {
		require.NoError(t, limiter.Wait(ctx, "https://api.github.com/x"))
	}
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestHostRateLimiter_ContextCancellation(t *testing.T) {
	limiter := NewHostRateLimiter(time.Hour, 1)
	require.NoError(t, limiter.Wait(context.Background(), "https://api.github.com/a"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := limiter.Wait(ctx, "https://api.github.com/b")
	require.Error(t, err)
}

func TestHostRateLimiter_ConcurrentAccess(t *testing.T) {
	limiter := NewHostRateLimiter(time.Millisecond, 4)
	var wg sync.WaitGroup
	errs := make(chan error, 16)

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- limiter.Wait(context.Background(), "https://api.github.com/x")
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.False(t, errors.Is(err, ErrMissingHost))
		assert.NoError(t, err)
	}
	assert.Len(t, limiter.limiters, 1)
}
