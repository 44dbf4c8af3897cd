package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"volunteer-board/config"
	"volunteer-board/internal/global/logger"
	"volunteer-board/internal/global/middleware"
	internalOtel "volunteer-board/internal/global/otel"
	"volunteer-board/internal/global/sentry"
	"volunteer-board/internal/module"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

// Init 配置需已加载
func Init() {
	log = logger.New("Server")
	cfg := config.Get()

	if err := sentry.Init(); err != nil {
		log.Error("Sentry 初始化失败", "error", err)
	}

	if cfg.OTel.Enable {
		log.Info("OTel Enabled")
		if err := internalOtel.Init(context.Background(), cfg.OTel); err != nil {
			log.Error("OTel 初始化失败", "error", err)
		}
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

func NewEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(string(cfg.Mode))
	r := gin.New()

	switch cfg.Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(sentry.Middleware(), middleware.SentryEnrichIP())
	r.Use(middleware.Cors())
	r.Use(middleware.Recovery(), middleware.ReportErrors())
	if cfg.OTel.Enable {
		r.Use(middleware.Trace())
	}

	if cfg.Photos.Mode == config.PhotoLocal {
		r.Static(cfg.Storage.BaseURL, cfg.Storage.Home)
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + cfg.Prefix))
	}
	return r
}

// Run 收到 SIGINT/SIGTERM 后等待进行中的请求结束再退出
func Run() error {
	cfg := config.Get()
	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           NewEngine(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP 服务启动", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	log.Info("正在关闭服务")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := srv.Shutdown(ctx)
	if otelErr := internalOtel.Shutdown(ctx); otelErr != nil {
		log.Error("Failed to shutdown TracerProvider", "error", otelErr)
	}
	sentry.Flush(2 * time.Second)
	return err
}
