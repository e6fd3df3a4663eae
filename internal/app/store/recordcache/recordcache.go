// internal/app/store/recordcache/recordcache.go

// Package recordcache caches raw collections from a data source in Redis.
// Only whole collections are cached; derived figures are always recomputed.
package recordcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/kursmanager/internal/app/system/datasource"
	"github.com/dalemusser/kursmanager/internal/app/system/metrics"
	"github.com/dalemusser/kursmanager/internal/domain/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrCacheMiss is returned when a collection is not cached.
var ErrCacheMiss = errors.New("cache miss")

// KeyPrefix is prepended to every cache key.
const KeyPrefix = "kursmanager:records:"

// Source wraps a datasource.Source and serves reads from Redis when cached.
// Redis failures are logged and fall through to the wrapped source.
type Source struct {
	next    datasource.Source
	client  *redis.Client
	ttl     time.Duration
	log     *zap.Logger
	metrics *metrics.Metrics
}

// New wraps next. A nil client disables caching entirely.
func New(next datasource.Source, client *redis.Client, ttl time.Duration, logger *zap.Logger, m *metrics.Metrics) *Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{next: next, client: client, ttl: ttl, log: logger, metrics: m}
}

// Key returns the Redis key for a collection.
func Key(c datasource.Collection) string {
	return KeyPrefix + string(c)
}

func (s *Source) Courses(ctx context.Context) ([]models.Course, error) {
	return read(ctx, s, datasource.Courses, s.next.Courses)
}

func (s *Source) Enrollments(ctx context.Context) ([]models.Enrollment, error) {
	return read(ctx, s, datasource.Enrollments, s.next.Enrollments)
}

func (s *Source) Instructors(ctx context.Context) ([]models.Instructor, error) {
	return read(ctx, s, datasource.Instructors, s.next.Instructors)
}

func (s *Source) Participants(ctx context.Context) ([]models.Participant, error) {
	return read(ctx, s, datasource.Participants, s.next.Participants)
}

func (s *Source) Rooms(ctx context.Context) ([]models.Room, error) {
	return read(ctx, s, datasource.Rooms, s.next.Rooms)
}

// Ping checks the wrapped source. Redis health does not affect it since
// reads fall through when Redis is down.
func (s *Source) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}

// Refresh reloads every collection from the wrapped source into the cache.
// It stops at the first failure.
func (s *Source) Refresh(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	if err := refresh(ctx, s, datasource.Courses, s.next.Courses); err != nil {
		return err
	}
	if err := refresh(ctx, s, datasource.Enrollments, s.next.Enrollments); err != nil {
		return err
	}
	if err := refresh(ctx, s, datasource.Instructors, s.next.Instructors); err != nil {
		return err
	}
	if err := refresh(ctx, s, datasource.Participants, s.next.Participants); err != nil {
		return err
	}
	return refresh(ctx, s, datasource.Rooms, s.next.Rooms)
}

// Invalidate removes every cached collection.
func (s *Source) Invalidate(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	keys := make([]string, 0, len(datasource.All))
	for _, c := range datasource.All {
		keys = append(keys, Key(c))
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Close releases the Redis connection if present.
func (s *Source) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

func read[T any](ctx context.Context, s *Source, c datasource.Collection, load func(context.Context) ([]T, error)) ([]T, error) {
	if s.client == nil {
		return load(ctx)
	}

	var out []T
	err := s.get(ctx, Key(c), &out)
	switch {
	case err == nil:
		s.metrics.CacheLookup(string(c), true)
		return out, nil
	case errors.Is(err, ErrCacheMiss):
		s.metrics.CacheLookup(string(c), false)
	default:
		s.metrics.CacheLookup(string(c), false)
		s.log.Warn("record cache read failed", zap.String("collection", string(c)), zap.Error(err))
	}

	out, err = load(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.set(ctx, Key(c), out); err != nil {
		s.log.Warn("record cache write failed", zap.String("collection", string(c)), zap.Error(err))
	}
	return out, nil
}

func refresh[T any](ctx context.Context, s *Source, c datasource.Collection, load func(context.Context) ([]T, error)) error {
	out, err := load(ctx)
	if err != nil {
		return fmt.Errorf("refresh %s: %w", c, err)
	}
	if err := s.set(ctx, Key(c), out); err != nil {
		return fmt.Errorf("refresh %s: %w", c, err)
	}
	return nil
}

func (s *Source) get(ctx context.Context, key string, dest any) error {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("unmarshal cache value for %s: %w", key, err)
	}
	return nil
}

func (s *Source) set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value for %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
