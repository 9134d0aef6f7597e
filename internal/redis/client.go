package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

var ErrCacheMiss = fmt.Errorf("cache miss")

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Dashboard metrics cache

func (c *Client) SetMetrics(userID uint, metrics interface{}, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(metrics)
	if err != nil {
		return fmt.Errorf("failed to marshal metrics: %w", err)
	}

	return c.rdb.Set(ctx, metricsKey(userID), jsonData, ttl).Err()
}

func (c *Client) GetMetrics(userID uint, dest interface{}) error {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, metricsKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to get metrics: %w", err)
	}

	return json.Unmarshal([]byte(val), dest)
}

func (c *Client) InvalidateMetrics(userID uint) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, metricsKey(userID)).Err()
}

// Notification count cache

func (c *Client) SetNotificationCount(userID uint, unread, total int64, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(map[string]int64{"unread": unread, "total": total})
	if err != nil {
		return fmt.Errorf("failed to marshal notification count: %w", err)
	}

	return c.rdb.Set(ctx, notifCountKey(userID), jsonData, ttl).Err()
}

func (c *Client) GetNotificationCount(userID uint) (unread, total int64, err error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, notifCountKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, 0, ErrCacheMiss
		}
		return 0, 0, fmt.Errorf("failed to get notification count: %w", err)
	}

	var counts map[string]int64
	if err := json.Unmarshal([]byte(val), &counts); err != nil {
		return 0, 0, fmt.Errorf("failed to unmarshal notification count: %w", err)
	}
	return counts["unread"], counts["total"], nil
}

func (c *Client) InvalidateNotificationCount(userID uint) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, notifCountKey(userID)).Err()
}

// Token denylist for logout

func (c *Client) DenyToken(tokenID string, ttl time.Duration) error {
	ctx := context.Background()
	return c.rdb.Set(ctx, "denied_token:"+tokenID, 1, ttl).Err()
}

func (c *Client) IsTokenDenied(tokenID string) (bool, error) {
	ctx := context.Background()
	_, err := c.rdb.Get(ctx, "denied_token:"+tokenID).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to check token: %w", err)
	}
	return true, nil
}

func metricsKey(userID uint) string {
	return fmt.Sprintf("dashboard_metrics:%d", userID)
}

func notifCountKey(userID uint) string {
	return fmt.Sprintf("notification_count:%d", userID)
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
