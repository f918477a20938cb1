package otp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sethvargo/go-retry"

	"github.com/yabeye/edu_verify_backend/pkg/clock"
)

const (
	redisKeyPrefix      = "otp:challenge:"
	redisTxMaxRetries   = 5
	redisTxRetryBackoff = 5 * time.Millisecond
)

// RedisStore keeps challenges in Redis so several API instances share one
// view per identity. Updates are optimistic WATCH/MULTI transactions.
//
// Keys expire retention after the challenge itself, which keeps the "expired"
// outcome observable for a while and bounds memory afterwards.
type RedisStore struct {
	client    *redis.Client
	clock     clock.Clocker
	retention time.Duration
}

func NewRedisStore(client *redis.Client, clk clock.Clocker, retention time.Duration) *RedisStore {
	return &RedisStore{client: client, clock: clk, retention: retention}
}

func (s *RedisStore) key(identity string) string {
	return redisKeyPrefix + identity
}

// ttl is never below one second; go-redis treats zero as "no expiry".
func (s *RedisStore) ttl(ch Challenge) time.Duration {
	return max(ch.ExpiresAt.Sub(s.clock.Now())+s.retention, time.Second)
}

func (s *RedisStore) Set(ctx context.Context, identity string, ch Challenge) error {
	data, err := json.Marshal(ch)
	if err != nil {
		return fmt.Errorf("encode challenge: %w", err)
	}
	return s.client.Set(ctx, s.key(identity), data, s.ttl(ch)).Err()
}

func (s *RedisStore) Get(ctx context.Context, identity string) (Challenge, bool, error) {
	ch, err := s.load(ctx, s.client, s.key(identity))
	if err != nil || ch == nil {
		return Challenge{}, false, err
	}
	return *ch, true, nil
}

func (s *RedisStore) Delete(ctx context.Context, identity string) error {
	return s.client.Del(ctx, s.key(identity)).Err()
}

func (s *RedisStore) Update(ctx context.Context, identity string, fn UpdateFunc) error {
	key := s.key(identity)
	backoff := retry.WithMaxRetries(redisTxMaxRetries, retry.NewExponential(redisTxRetryBackoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := s.client.Watch(ctx, func(tx *redis.Tx) error {
			current, err := s.load(ctx, tx, key)
			if err != nil {
				return err
			}

			next := fn(current)
			if next == current {
				return nil
			}

			var data []byte
			if next != nil {
				if data, err = json.Marshal(next); err != nil {
					return fmt.Errorf("encode challenge: %w", err)
				}
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				if next == nil {
					pipe.Del(ctx, key)
				} else {
					pipe.Set(ctx, key, data, s.ttl(*next))
				}
				return nil
			})
			return err
		}, key)

		if errors.Is(err, redis.TxFailedErr) {
			return retry.RetryableError(err)
		}
		return err
	})
}

// getter is satisfied by both *redis.Client and *redis.Tx.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (s *RedisStore) load(ctx context.Context, c getter, key string) (*Challenge, error) {
	raw, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var ch Challenge
	if err := json.Unmarshal(raw, &ch); err != nil {
		return nil, fmt.Errorf("decode challenge %s: %w", key, err)
	}
	return &ch, nil
}
