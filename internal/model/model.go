package model

import "time"

// 远端资源名，与托管数据库中的表名一致
const (
	ResourceRecords  = "records"
	ResourceComments = "comments"
)

// Model 记录和留言共有的服务端字段，创建后不可修改
type Model struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

