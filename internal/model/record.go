package model

// MaxPhotos 单条记录最多挂载的照片数
const MaxPhotos = 10

// Photos 照片列表，每项是一段文本（data URI 或访问 URL），SQL 后端以 JSON 存储
type Photos []string

// RecordFields 记录中可编辑的字段，创建和修改都以它为载荷
type RecordFields struct {
	Date         string  `gorm:"type:varchar(10);not null;index" json:"date"` // 活动日期 YYYY-MM-DD
	Name         string  `gorm:"type:varchar(200);not null" json:"name"`      // 活动名称
	Organization string  `gorm:"type:varchar(200);not null" json:"organization"`
	Hours        float64 `gorm:"not null" json:"hours"`
	Location     string  `gorm:"type:varchar(255)" json:"location"`
	Participants string  `gorm:"type:text" json:"participants"`
	Description  string  `gorm:"type:text" json:"description"`
	Photos       Photos  `gorm:"type:text;serializer:json" json:"photos"`
}

// Record 一次志愿活动记录
type Record struct {
	Model
	RecordFields
	AuthorName     string `gorm:"type:varchar(100);not null" json:"author_name"`
	AuthorPassword string `gorm:"type:varchar(100);not null" json:"author_password"`

	// Comments 每次重新加载时按外键拼接得到，不落库
	Comments []Comment `gorm:"-" json:"comments"`
}

func (Record) TableName() string {
	return ResourceRecords
}

// RecordInsert 创建记录时的载荷，作者信息只在创建时写入
type RecordInsert struct {
	RecordFields
	AuthorName     string `json:"author_name"`
	AuthorPassword string `json:"author_password"`
}

// Clone 复制记录，照片和留言切片不与原记录共享
func (r Record) Clone() Record {
	out := r
	if r.Photos != nil {
		out.Photos = make(Photos, len(r.Photos))
		copy(out.Photos, r.Photos)
	}
	if r.Comments != nil {
		out.Comments = make([]Comment, len(r.Comments))
		copy(out.Comments, r.Comments)
	}
	return out
}
