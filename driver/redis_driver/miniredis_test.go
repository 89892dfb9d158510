package redis_driver

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

// Miniredis wraps miniredis for testing.
type Miniredis struct {
	*miniredis.Miniredis
}

func NewMiniredis(t *testing.T) *Miniredis {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	return &Miniredis{Miniredis: mr}
}

func setupTestDriver(t *testing.T) (*RedisDriver, *Miniredis, func()) {
	t.Helper()

	mr := NewMiniredis(t)
	driver, err := NewRedisDriver(mr.Addr())
	require.NoError(t, err)

	cleanup := func() {
		driver.Close()
		mr.Close()
	}

	return driver, mr, cleanup
}
