package middleware

import (
	"log/slog"
	"time"

	"volunteer-board/internal/global/jwt"

	sentrylib "github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
)

// Logger release 模式下的请求日志。不记录请求体和响应体，其中可能有密码
func Logger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"route", c.FullPath(),
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		}
		if payload, ok := jwt.GetPayload(c); ok {
			attrs = append(attrs, "session_id", payload.SessionID)
		}
		switch {
		case c.Writer.Status() >= 500:
			log.Error("HTTP Request", append(attrs, "errors", c.Errors.String())...)
		case c.Writer.Status() >= 400:
			log.Warn("HTTP Request", attrs...)
		default:
			log.Info("HTTP Request", attrs...)
		}
	}
}

// SentryEnrichIP 放在 sentry.Middleware() 之后，之后的上报都带上访问者 IP
func SentryEnrichIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.ConfigureScope(func(scope *sentrylib.Scope) {
				ip := c.ClientIP()
				scope.SetUser(sentrylib.User{IPAddress: ip})
				scope.SetTag("client_ip", ip)
			})
		}
		c.Next()
	}
}
