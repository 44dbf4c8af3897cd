package httpclient

import (
	"time"

	"volunteer-board/internal/global/sentry/tracing"

	"github.com/go-resty/resty/v2"
)

var Client *resty.Client

// Init 数据后端共用的 HTTP 客户端。超时只在传输层生效，不重试
func Init(timeout time.Duration) *resty.Client {
	Client = New(timeout)
	return Client
}

func New(timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", "volunteer-board/1.0")
	if tracing.IsEnabled() {
		tracing.SetupRestyTracing(client)
	}
	return client
}
