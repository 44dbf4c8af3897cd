// Package tracing Sentry 性能追踪：数据后端 HTTP 请求、SQL 后端和 redis 会话存储
package tracing

import (
	"context"

	"volunteer-board/config"

	"github.com/getsentry/sentry-go"
)

func IsEnabled() bool {
	return config.Get().Sentry.Dsn != ""
}

// StartSpan 在 ctx 当前的 transaction 下开一个子 span；没有父 span 时返回 nil
func StartSpan(ctx context.Context, operation, description string) *sentry.Span {
	parent := sentry.SpanFromContext(ctx)
	if parent == nil {
		return nil
	}
	span := parent.StartChild(operation)
	span.Description = description
	return span
}

// Finish 按 err 设置状态后结束 span，span 为 nil 时什么都不做
func Finish(span *sentry.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.Status = sentry.SpanStatusInternalError
		span.SetData("error", err.Error())
	} else {
		span.Status = sentry.SpanStatusOK
	}
	span.Finish()
}
