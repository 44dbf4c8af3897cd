package pictureBed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// PhotoFile 一张待转换的上传图片
type PhotoFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// Encoder 把图片转换成可写入记录 photos 列的文本：data URI 或访问 URL
type Encoder interface {
	Encode(ctx context.Context, f PhotoFile) (string, error)
}

var (
	ErrEmptyFile = errors.New("图片为空")
	ErrNotImage  = errors.New("不是图片文件")
	ErrTooLarge  = errors.New("图片超过大小限制")
)

// detectImage 以文件内容为准判断类型，声明的 Content-Type 只作参考
func detectImage(f PhotoFile, maxBytes int64) (string, error) {
	if len(f.Data) == 0 {
		return "", ErrEmptyFile
	}
	if maxBytes > 0 && int64(len(f.Data)) > maxBytes {
		return "", fmt.Errorf("%w: %s (%d bytes)", ErrTooLarge, f.Name, len(f.Data))
	}
	mtype := mimetype.Detect(f.Data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("%w: %s (%s)", ErrNotImage, f.Name, mtype.String())
	}
	return mtype.String(), nil
}
