// Package redis_driver provides list and set primitives backed by Redis.
package redis_driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// maxTxRetries bounds optimistic transaction retries on WATCH conflicts.
const maxTxRetries = 5

var ErrTxConflict = errors.New("redis transaction kept conflicting")

type RedisDriver struct {
	client *redis.Client
}

func NewRedisDriver(addr string) (*RedisDriver, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	return &RedisDriver{client: client}, nil
}

func NewRedisDriverWithURL(url string) (*RedisDriver, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	return &RedisDriver{client: redis.NewClient(opts)}, nil
}

func (d *RedisDriver) Close() error {
	return d.client.Close()
}

func (d *RedisDriver) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}

func (d *RedisDriver) ListLength(ctx context.Context, key string) (int64, error) {
	return d.client.LLen(ctx, key).Result()
}

func (d *RedisDriver) ListRange(ctx context.Context, key string) ([]string, error) {
	return d.client.LRange(ctx, key, 0, -1).Result()
}

// AppendAll pushes values to the tail of key in order, in a single round trip.
func (d *RedisDriver) AppendAll(ctx context.Context, key string, values []string) error {
	if len(values) == 0 {
		return nil
	}

	_, err := d.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, v := range values {
			pipe.RPush(ctx, key, v)
		}
		return nil
	})
	return err
}

// PrependFunc decides, from the current list contents, which values to push to the head.
// The returned values keep their order at the head of the list.
type PrependFunc func(current []string) ([]string, error)

// PrependAndTrim reads key, asks decide for the values to prepend, then pushes them and
// trims the list to maxLen inside one MULTI/EXEC guarded by WATCH. When another client
// modifies key in between, the whole step is retried against the fresh contents.
// It returns the values that were pushed.
func (d *RedisDriver) PrependAndTrim(ctx context.Context, key string, maxLen int64, decide PrependFunc) ([]string, error) {
	var pushed []string

	txf := func(tx *redis.Tx) error {
		current, err := tx.LRange(ctx, key, 0, -1).Result()
		if err != nil {
			return err
		}

		values, err := decide(current)
		if err != nil {
			return err
		}
		pushed = values
		if len(values) == 0 {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for i := len(values) - 1; i >= 0; i-- {
				pipe.LPush(ctx, key, values[i])
			}
			pipe.LTrim(ctx, key, 0, maxLen-1)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err := d.client.Watch(ctx, txf, key)
		if err == nil {
			return pushed, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("%w: key %s", ErrTxConflict, key)
}

func (d *RedisDriver) SetAdd(ctx context.Context, key, member string) error {
	return d.client.SAdd(ctx, key, member).Err()
}

func (d *RedisDriver) SetRemove(ctx context.Context, key, member string) error {
	return d.client.SRem(ctx, key, member).Err()
}

func (d *RedisDriver) SetMembers(ctx context.Context, key string) ([]string, error) {
	return d.client.SMembers(ctx, key).Result()
}
