// internal/infrastructure/storage/redis.go
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// DefaultRedisChannel is the pub/sub channel change events are published on.
const DefaultRedisChannel = "storefront:storage:events"

// RedisOptions configures a Redis-backed storage.
type RedisOptions struct {
	Addr         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int

	// Channel overrides DefaultRedisChannel when non-empty.
	Channel string
}

// redisEvent is the wire form of a change notification.
type redisEvent struct {
	Origin string  `json:"origin"`
	Key    string  `json:"key"`
	Value  *string `json:"value"`
}

// RedisStorage stores values as plain Redis keys and broadcasts every change
// on a pub/sub channel so other processes sharing the same Redis observe it.
// Each instance has its own origin identity and ignores its own broadcasts.
type RedisStorage struct {
	client  *redis.Client
	channel string
	origin  string
	log     logrus.FieldLogger
}

// NewRedis wraps an existing Redis client.
func NewRedis(client *redis.Client, channel string, log logrus.FieldLogger) *RedisStorage {
	if channel == "" {
		channel = DefaultRedisChannel
	}

	return &RedisStorage{
		client:  client,
		channel: channel,
		origin:  uuid.NewString(),
		log:     log,
	}
}

// DialRedis connects to Redis, verifies the connection and returns a storage
// backed by it.
func DialRedis(opts RedisOptions, log logrus.FieldLogger) (*RedisStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		PoolSize:     opts.PoolSize,
		MinIdleConns: opts.MinIdleConns,

		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolTimeout:  4 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedis(client, opts.Channel, log), nil
}

// Close closes the underlying Redis client.
func (s *RedisStorage) Close() error {
	return s.client.Close()
}

func (s *RedisStorage) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *RedisStorage) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return err
	}

	s.publish(ctx, redisEvent{Origin: s.origin, Key: key, Value: &value})
	return nil
}

func (s *RedisStorage) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return err
	}

	s.publish(ctx, redisEvent{Origin: s.origin, Key: key, Value: nil})
	return nil
}

// publish broadcasts a change event. The write itself already succeeded, so a
// publish failure only degrades cross-context sync and is logged.
func (s *RedisStorage) publish(ctx context.Context, ev redisEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		s.log.WithError(err).Warn("failed to encode storage event")
		return
	}

	if err := s.client.Publish(ctx, s.channel, payload).Err(); err != nil {
		s.log.WithError(err).Warn("failed to publish storage event")
	}
}

// Watch subscribes to the event channel and forwards changes to key made by
// other origins. The returned stop function closes the subscription.
func (s *RedisStorage) Watch(ctx context.Context, key string, fn func(Event)) (func(), error) {
	pubsub := s.client.Subscribe(ctx, s.channel)

	// Force the subscription to be established before returning so callers
	// do not miss events published right after Watch.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, err
	}

	go func() {
		for msg := range pubsub.Channel() {
			var ev redisEvent
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				s.log.WithError(err).Warn("ignoring malformed storage event")
				continue
			}

			if ev.Origin == s.origin || ev.Key != key {
				continue
			}

			fn(Event{Key: ev.Key, Value: ev.Value, Origin: ev.Origin})
		}
	}()

	return func() {
		if err := pubsub.Close(); err != nil {
			s.log.WithError(err).Warn("failed to close storage event subscription")
		}
	}, nil
}
