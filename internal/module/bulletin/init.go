package bulletin

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"volunteer-board/config"
	"volunteer-board/internal/board"
	"volunteer-board/internal/global/database"
	"volunteer-board/internal/global/httpclient"
	"volunteer-board/internal/global/logger"
	"volunteer-board/internal/global/pictureBed"
	"volunteer-board/internal/global/session"
	"volunteer-board/internal/store"
	"volunteer-board/tools"
)

var (
	log     *slog.Logger
	handler *Handler
)

type ModuleBulletin struct{}

func (m *ModuleBulletin) GetName() string {
	return "Bulletin"
}

// Init 配置不完整时不创建任何数据后端连接，路由层统一返回 setup_required
func (m *ModuleBulletin) Init() {
	log = logger.New("Bulletin")
	cfg := config.Get()
	if err := cfg.Validate(); err != nil {
		log.Warn("配置不完整，公告板接口暂不可用", "error", err)
		return
	}

	gw, err := NewGateway(cfg)
	tools.PanicOnErr(err)
	sessions, err := session.New(context.Background(), cfg)
	tools.PanicOnErr(err)
	ctrl, err := NewController(cfg, gw)
	tools.PanicOnErr(err)

	handler = NewHandler(ctrl, sessions, log)
	if err := ctrl.Store().Reload(context.Background()); err != nil {
		// 首次加载失败不影响启动，访问 /state 时会再次尝试
		log.Error("启动时加载记录失败", "error", err)
	}
}

// NewGateway 按 store.driver 选择托管 REST 接口或 SQL 数据库
func NewGateway(cfg *config.Config) (store.Gateway, error) {
	switch cfg.Store.Driver {
	case config.DriverRest, "":
		client := httpclient.Init(cfg.Store.Timeout)
		return store.NewRestGateway(client, cfg.Store.URL, cfg.Store.APIKey), nil
	case config.DriverMysql, config.DriverSqlite:
		db, err := database.Open(cfg)
		if err != nil {
			return nil, fmt.Errorf("连接数据库失败: %w", err)
		}
		return store.NewSQLGateway(db), nil
	default:
		return nil, fmt.Errorf("未知的 store.driver: %s", cfg.Store.Driver)
	}
}

func NewController(cfg *config.Config, gw store.Gateway) (*board.Controller, error) {
	loc, err := time.LoadLocation(cfg.Board.Timezone)
	if err != nil {
		return nil, fmt.Errorf("无效的 board.timezone: %w", err)
	}
	enc, err := pictureBed.New(cfg)
	if err != nil {
		return nil, err
	}
	return board.NewController(gw, board.NewRecordStore(gw), board.Options{
		AdminSecret: cfg.Admin.Secret,
		Encoder:     enc,
		Location:    loc,
		Logger:      logger.New("Board"),
	}), nil
}
