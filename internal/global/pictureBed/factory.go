package pictureBed

import (
	"fmt"

	"volunteer-board/config"
)

// New 按配置选择图片存放方式
func New(cfg *config.Config) (Encoder, error) {
	switch cfg.Photos.Mode {
	case config.PhotoInline, "":
		return NewInlineEncoder(cfg.Photos.MaxBytes), nil
	case config.PhotoLocal:
		return NewPictureBed(cfg.Storage.Home, cfg.Storage.BaseURL, cfg.Photos.MaxBytes), nil
	case config.PhotoS3:
		return NewS3Encoder(cfg.S3, cfg.Photos.MaxBytes), nil
	default:
		return nil, fmt.Errorf("未知的 photos.mode: %s", cfg.Photos.Mode)
	}
}
