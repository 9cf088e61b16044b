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

	"github.com/gudangops/whmonitor/internal/config"
)

const (
	reportKeyPrefix  = "report"
	scanBatchSize    = 100
	defaultReportTTL = time.Minute
)

// Filter narrows a report to a date range. Empty fields mean unbounded.
type Filter struct {
	From string
	To   string
}

// ReportCache memoizes computed report payloads per view and filter. Reports
// are rebuilt from scratch on a miss; the cache only shortcuts identical
// repeat requests within the TTL.
type ReportCache interface {
	Get(ctx context.Context, view string, filter Filter, dest any) (bool, error)
	Set(ctx context.Context, view string, filter Filter, payload any) error
	InvalidateAll(ctx context.Context) error
}

type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopReportCache struct{}

func NewReportCache(cfg config.CacheConfig) (ReportCache, error) {
	if !cfg.Enabled {
		return &noopReportCache{}, nil
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

	ttl := time.Duration(cfg.ReportTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultReportTTL
	}

	return &redisReportCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopReportCache() ReportCache {
	return &noopReportCache{}
}

func (c *redisReportCache) Get(ctx context.Context, view string, filter Filter, dest any) (bool, error) {
	payload, err := c.client.Get(ctx, buildReportKey(view, filter)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get failed: %w", err)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("decode report cache: %w", err)
	}

	return true, nil
}

func (c *redisReportCache) Set(ctx context.Context, view string, filter Filter, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode report cache: %w", err)
	}

	if err := c.client.Set(ctx, buildReportKey(view, filter), body, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (c *redisReportCache) InvalidateAll(ctx context.Context) error {
	var cursor uint64
	for {
		keys, nextCursor, err := c.client.Scan(ctx, cursor, reportKeyPrefix+":*", scanBatchSize).Result()
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

func (n *noopReportCache) Get(ctx context.Context, view string, filter Filter, dest any) (bool, error) {
	return false, nil
}

func (n *noopReportCache) Set(ctx context.Context, view string, filter Filter, payload any) error {
	return nil
}

func (n *noopReportCache) InvalidateAll(ctx context.Context) error {
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

func buildReportKey(view string, filter Filter) string {
	if filter.From == "" && filter.To == "" {
		return fmt.Sprintf("%s:%s:default", reportKeyPrefix, view)
	}

	raw := strings.Join([]string{"from=" + filter.From, "to=" + filter.To}, "|")
	hash := sha1.Sum([]byte(raw))

	return fmt.Sprintf("%s:%s:%s", reportKeyPrefix, view, hex.EncodeToString(hash[:]))
}
