package session

import (
	"context"
	"fmt"
	"net"

	"volunteer-board/config"
	"volunteer-board/internal/global/sentry/tracing"

	"github.com/redis/go-redis/v9"
)

// New 配置了 redis.host 时使用 redis，否则退回进程内存
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	if cfg.Redis.Host == "" {
		return NewMemoryStore(cfg.Session.TTL), nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if tracing.IsEnabled() {
		client.AddHook(tracing.NewRedisSentryHook())
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("连接 redis 失败: %w", err)
	}
	return NewRedisStore(client, cfg.Session.TTL), nil
}
