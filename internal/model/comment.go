package model

import (
	"strings"

	"github.com/google/uuid"
)

// Comment 挂在某条记录下的留言
type Comment struct {
	Model
	RecordID  int64  `gorm:"not null;index" json:"record_id"` // 创建后不再改变
	Nickname  string `gorm:"type:varchar(100);not null" json:"nickname"`
	Password  string `gorm:"type:varchar(100);not null" json:"password"`
	Content   string `gorm:"type:text;not null" json:"content"`
	Timestamp string `gorm:"type:varchar(50)" json:"timestamp"` // 创建时生成的显示用时间

	// Pending 仅存在于客户端的临时标识，下次重新加载后整体替换
	Pending PendingID `gorm:"-" json:"pending_id,omitempty"`
}

func (Comment) TableName() string {
	return ResourceComments
}

// CommentInsert 新增留言时的载荷
type CommentInsert struct {
	RecordID  int64  `json:"record_id"`
	Nickname  string `json:"nickname"`
	Password  string `json:"password"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// PendingID 已提交但尚未在重新加载结果中出现的留言标识，与服务端 ID 不同类型
type PendingID string

const pendingPrefix = "pending-"

func NewPendingID() PendingID {
	return PendingID(pendingPrefix + uuid.NewString())
}

func (p PendingID) Valid() bool {
	return strings.HasPrefix(string(p), pendingPrefix)
}

// IsPending 是否为乐观追加、尚未确认的留言
func (c *Comment) IsPending() bool {
	return c.Pending.Valid()
}
