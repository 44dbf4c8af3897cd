package pictureBed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"volunteer-board/tools"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// PictureBed 图片上传工具类
// 用于将图片保存到本地指定目录，并返回图片访问路径
type PictureBed struct {
	SaveDir  string // 图片保存目录
	BaseURL  string // 图片访问基础URL
	MaxBytes int64
}

// NewPictureBed 创建图片床实例
func NewPictureBed(saveDir, baseURL string, maxBytes int64) *PictureBed {
	return &PictureBed{
		SaveDir:  saveDir,
		BaseURL:  strings.TrimRight(baseURL, "/"),
		MaxBytes: maxBytes,
	}
}

// Encode 保存图片到本地并返回图片URL
func (pb *PictureBed) Encode(_ context.Context, f PhotoFile) (string, error) {
	mime, err := detectImage(f, pb.MaxBytes)
	if err != nil {
		return "", err
	}

	// 确保保存目录存在
	if !tools.FileExist(pb.SaveDir) {
		if err := os.MkdirAll(pb.SaveDir, os.ModePerm); err != nil {
			return "", err
		}
	}

	// 同一批图片并发保存，用 uuid 而不是时间戳避免重名
	filename := uuid.NewString() + extension(f.Name, mime)
	if err := os.WriteFile(filepath.Join(pb.SaveDir, filename), f.Data, 0o644); err != nil {
		return "", fmt.Errorf("保存图片失败: %w", err)
	}

	return pb.BaseURL + "/" + filename, nil
}

// extension 优先使用原文件扩展名，没有时按检测出的类型补
func extension(name, mime string) string {
	if ext := strings.ToLower(filepath.Ext(name)); ext != "" {
		return ext
	}
	if m := mimetype.Lookup(mime); m != nil {
		return m.Extension()
	}
	return ""
}
