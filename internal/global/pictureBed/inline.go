package pictureBed

import (
	"context"
	"encoding/base64"
)

// InlineEncoder 把图片编码为 data URI，直接嵌入记录
type InlineEncoder struct {
	MaxBytes int64
}

func NewInlineEncoder(maxBytes int64) *InlineEncoder {
	return &InlineEncoder{MaxBytes: maxBytes}
}

func (e *InlineEncoder) Encode(_ context.Context, f PhotoFile) (string, error) {
	mime, err := detectImage(f, e.MaxBytes)
	if err != nil {
		return "", err
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(f.Data), nil
}
