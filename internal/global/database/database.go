package database

import (
	"fmt"
	"net"

	"volunteer-board/config"
	"volunteer-board/internal/global/sentry/tracing"
	"volunteer-board/internal/model"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var autoMigrateModels = []any{
	&model.Record{},
	&model.Comment{},
}

// DSN 由配置拼出 MySQL 连接串
func DSN(cfg config.Mysql) string {
	c := mysqldriver.NewConfig()
	c.User = cfg.Username
	c.Passwd = cfg.Password
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
	c.DBName = cfg.DBName
	c.ParseTime = true
	c.Params = map[string]string{"charset": "utf8mb4"}
	return c.FormatDSN()
}

func dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.Store.Driver {
	case config.DriverMysql:
		return mysql.Open(DSN(cfg.Mysql)), nil
	case config.DriverSqlite:
		return sqlite.Open(cfg.Store.SqlitePath), nil
	default:
		return nil, fmt.Errorf("store.driver=%s 不是 SQL 后端", cfg.Store.Driver)
	}
}

// Open 连接 SQL 后端并迁移 records / comments 两张表
func Open(cfg *config.Config) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{}
	switch cfg.Mode {
	case config.ModeDebug:
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	case config.ModeRelease:
		gormConfig.Logger = logger.Discard
	}

	db, err := gorm.Open(d, gormConfig)
	if err != nil {
		return nil, err
	}
	if tracing.IsEnabled() {
		if err := db.Use(tracing.NewGormTracingPlugin()); err != nil {
			return nil, err
		}
	}
	if err := db.AutoMigrate(autoMigrateModels...); err != nil {
		return nil, err
	}
	return db, nil
}
