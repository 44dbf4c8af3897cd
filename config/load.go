package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "BOARD"
	configEnv      = "BOARD_CONFIG"
	configFilename = "config.yaml"
)

var current atomic.Pointer[Config]

// Init 读取配置文件和环境变量，进程启动时调用一次
func Init() {
	InitFrom(os.Getenv(configEnv))
}

// InitFrom 与 Init 相同，但使用指定的配置文件
func InitFrom(path string) {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	Set(cfg)
}

// Get 返回当前配置；未 Init 时返回默认值
func Get() *Config {
	if cfg := current.Load(); cfg != nil {
		return cfg
	}
	d := Default()
	current.CompareAndSwap(nil, &d)
	return current.Load()
}

// Set 替换全局配置，测试中使用
func Set(cfg Config) {
	current.Store(&cfg)
}

// Load 先读配置文件（path 为空时从工作目录向上查找 config.yaml），再用 BOARD_* 环境变量覆盖
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		found, err := findConfig(configFilename)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, err
		}
		path = found
	}

	if path != "" {
		v := viper.New()
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("读取配置文件 %s 失败: %w", path, err)
		}
		if err := v.Unmarshal(&cfg); err != nil {
			return cfg, fmt.Errorf("解析配置文件 %s 失败: %w", path, err)
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("读取环境变量失败: %w", err)
	}
	return cfg, nil
}

func findConfig(filename string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, filename)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", os.ErrNotExist
}
