// Package redisstore provides a Redis-backed UserStore, durable across
// process restarts. Single-key GET/SET/DEL keeps writes atomic, so
// concurrent logins resolve to last-writer-wins without extra locking.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const defaultKey = "woocommerce:current_user_id"

// Store persists the current user id in Redis.
type Store struct {
	rdb redis.UniversalClient
	key string
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the Redis key the user id lives under.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// New builds a store on top of an existing Redis client.
func New(rdb redis.UniversalClient, opts ...Option) *Store {
	s := &Store{rdb: rdb, key: defaultKey}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) UserID(ctx context.Context) (int64, bool, error) {
	id, err := s.rdb.Get(ctx, s.key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get user id: %w", err)
	}
	return id, true, nil
}

func (s *Store) SetUserID(ctx context.Context, id int64) error {
	if err := s.rdb.Set(ctx, s.key, id, 0).Err(); err != nil {
		return fmt.Errorf("set user id: %w", err)
	}
	return nil
}

func (s *Store) ClearUserID(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("clear user id: %w", err)
	}
	return nil
}
