package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"volunteer-board/config"

	sentryslog "github.com/getsentry/sentry-go/slog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	instance *slog.Logger
	once     sync.Once
)

// Get 全局 Logger，第一次调用时按当前配置构建
func Get() *slog.Logger {
	once.Do(func() {
		cfg := config.Get()
		instance = slog.New(newHandler(cfg, nil)).With(
			"app_name", "volunteer-board",
			"env", string(cfg.Mode),
		)
	})
	return instance
}

// New 带 module 字段的 Logger
func New(module string) *slog.Logger {
	return Get().With("module", module)
}

// newHandler release 模式且配置了文件路径时写 JSON 到轮转文件，否则文本输出到 out（默认 stdout）。
// 配置了 Sentry DSN 时 Error 作为事件上报，Warn 以上作为日志上报。
func newHandler(cfg *config.Config, out io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource:   cfg.Mode == config.ModeRelease,
		Level:       getLogLevel(cfg.Log.Level),
		ReplaceAttr: redact,
	}

	var base slog.Handler
	switch {
	case out != nil:
		base = slog.NewTextHandler(out, opts)
	case cfg.Mode == config.ModeRelease && cfg.Log.FilePath != "":
		base = slog.NewJSONHandler(&lumberjack.Logger{
			Filename:   cfg.Log.FilePath,
			MaxSize:    cfg.Log.MaxSize,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAge,
			Compress:   cfg.Log.Compress,
		}, opts)
	default:
		base = slog.NewTextHandler(os.Stdout, opts)
	}

	if cfg.Sentry.Dsn == "" {
		return base
	}
	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
		AddSource:  cfg.Mode == config.ModeRelease,
	}.NewSentryHandler(context.Background())
	return fanout{base, sentryHandler}
}

// WithContext 在业务日志中带上请求方 IP
func WithContext(base *slog.Logger, c interface {
	ClientIP() string
	GetHeader(string) string
}) *slog.Logger {
	l := base.With("client_ip", c.ClientIP())
	if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
		l = l.With("x_forwarded_for", forwardedFor)
	}
	return l
}

func getLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
