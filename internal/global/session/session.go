// Package session 保存每个访问者的界面状态。状态以 JSON 整体存取，过期时间每次写入时刷新。
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Store interface {
	// Load 读取会话并解码进 v；会话不存在或已过期时返回 false
	Load(ctx context.Context, id string, v any) (bool, error)
	Save(ctx context.Context, id string, v any) error
	Delete(ctx context.Context, id string) error
}

func NewID() string {
	return uuid.NewString()
}

const defaultTTL = 24 * time.Hour

func ttlOrDefault(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return defaultTTL
	}
	return ttl
}
