// backend-go/internal/cache/snapshot.go
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/venperf/backend-go/internal/config"
	"github.com/venperf/backend-go/internal/domain"
)

const (
	snapshotKeyPrefix  = "dashboard:snapshot"
	scanBatchSize      = 100
	defaultSnapshotTTL = time.Minute
)

// SnapshotCache memoizes filtered dashboard snapshots. The aggregation core
// stays pure; this layer sits on top of it in the presentation shell.
type SnapshotCache interface {
	Get(ctx context.Context, filter *domain.ItemFilter) (*domain.DashboardSnapshot, bool, error)
	Set(ctx context.Context, filter *domain.ItemFilter, snapshot *domain.DashboardSnapshot) error
	InvalidateAll(ctx context.Context) error
}

type redisSnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopSnapshotCache struct{}

// NewSnapshotCache builds a redis-backed cache, or a noop cache when caching
// is disabled in config.
func NewSnapshotCache(cfg config.CacheConfig) (SnapshotCache, error) {
	if !cfg.Enabled {
		return &noopSnapshotCache{}, nil
	}

	opts, err := buildRedisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	ttl := time.Duration(cfg.SnapshotTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultSnapshotTTL
	}

	return &redisSnapshotCache{client: client, ttl: ttl}, nil
}

// NewNoopSnapshotCache returns a cache that never hits.
func NewNoopSnapshotCache() SnapshotCache {
	return &noopSnapshotCache{}
}

func (c *redisSnapshotCache) Get(ctx context.Context, filter *domain.ItemFilter) (*domain.DashboardSnapshot, bool, error) {
	key := buildSnapshotKey(filter)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var snapshot domain.DashboardSnapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, false, fmt.Errorf("decode snapshot cache: %w", err)
	}

	return &snapshot, true, nil
}

func (c *redisSnapshotCache) Set(ctx context.Context, filter *domain.ItemFilter, snapshot *domain.DashboardSnapshot) error {
	key := buildSnapshotKey(filter)
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot cache: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

// InvalidateAll drops every cached snapshot. Called when a fresh feed
// snapshot replaces the record list.
func (c *redisSnapshotCache) InvalidateAll(ctx context.Context) error {
	var cursor uint64
	for {
		keys, nextCursor, err := c.client.Scan(ctx, cursor, snapshotKeyPrefix+"*", scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("redis scan failed: %w", err)
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis delete failed: %w", err)
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	return nil
}

func (n *noopSnapshotCache) Get(ctx context.Context, filter *domain.ItemFilter) (*domain.DashboardSnapshot, bool, error) {
	return nil, false, nil
}

func (n *noopSnapshotCache) Set(ctx context.Context, filter *domain.ItemFilter, snapshot *domain.DashboardSnapshot) error {
	return nil
}

func (n *noopSnapshotCache) InvalidateAll(ctx context.Context) error {
	return nil
}

func buildRedisOptions(cfg config.CacheConfig) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return opt, nil
	}

	host := cfg.RedisHost
	if host == "" {
		host = "127.0.0.1"
	}

	port := cfg.RedisPort
	if port == "" {
		port = "6379"
	}

	return &redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, nil
}

func buildSnapshotKey(filter *domain.ItemFilter) string {
	if filter == nil {
		return snapshotKeyPrefix + ":default"
	}

	var parts []string
	if filter.Search != "" {
		parts = append(parts, "search="+strings.ToLower(filter.Search))
	}
	if filter.MaterialGroup != "" {
		parts = append(parts, "group="+filter.MaterialGroup)
	}
	if filter.MaterialType != "" {
		parts = append(parts, "type="+filter.MaterialType)
	}
	if filter.DateFrom != "" {
		parts = append(parts, "from="+filter.DateFrom)
	}
	if filter.DateTo != "" {
		parts = append(parts, "to="+filter.DateTo)
	}

	if len(parts) == 0 {
		return snapshotKeyPrefix + ":default"
	}

	raw := strings.Join(parts, "|")
	hash := sha1.Sum([]byte(raw))
	return fmt.Sprintf("%s:%s", snapshotKeyPrefix, hex.EncodeToString(hash[:]))
}
