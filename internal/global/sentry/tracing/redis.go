package tracing

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"volunteer-board/config"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
)

// RedisSentryHook 会话读写的 span，只记录命令名，不记录 key 和值
type RedisSentryHook struct {
	slowThreshold time.Duration
}

func NewRedisSentryHook() *RedisSentryHook {
	ms := config.Get().Sentry.Tracing.RedisSlowThresholdMs
	return &RedisSentryHook{slowThreshold: time.Duration(ms) * time.Millisecond}
}

func (h *RedisSentryHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return next(ctx, network, addr)
	}
}

func (h *RedisSentryHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		span := StartSpan(ctx, "cache.session", strings.ToUpper(cmd.Name()))
		if span != nil {
			span.SetData("db.system", "redis")
			ctx = span.Context()
		}

		err := next(ctx, cmd)

		if span != nil {
			if h.slowThreshold > 0 && time.Since(start) < h.slowThreshold {
				span.Sampled = sentry.SampledFalse
			}
			// 会话不存在不算错误
			if errors.Is(err, redis.Nil) {
				Finish(span, nil)
			} else {
				Finish(span, err)
			}
		}
		return err
	}
}

func (h *RedisSentryHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		span := StartSpan(ctx, "cache.session.pipeline", "PIPELINE")
		if span != nil {
			span.SetData("redis.pipeline_length", len(cmds))
			ctx = span.Context()
		}
		err := next(ctx, cmds)
		Finish(span, err)
		return err
	}
}
