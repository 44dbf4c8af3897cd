package board

import (
	"context"
	"sync"

	"volunteer-board/internal/global/pictureBed"
	"volunteer-board/internal/model"

	"golang.org/x/sync/errgroup"
)

// StagePhotos 把一批图片加入表单。只接收剩余名额内的前几张，多出的直接丢弃；
// 每张图片独立并发转换，完成顺序不保证与选择顺序一致。转换失败的图片记日志后跳过。
// 返回接收的张数。
func (c *Controller) StagePhotos(ctx context.Context, vs *ViewState, files []pictureBed.PhotoFile) (int, error) {
	if vs.Draft == nil {
		return 0, ErrModalMismatch
	}
	capacity := model.MaxPhotos - len(vs.Draft.Photos)
	if capacity <= 0 {
		return 0, nil
	}
	if len(files) > capacity {
		c.log.Info("图片超出剩余名额，多余的已忽略", "selected", len(files), "accepted", capacity)
		files = files[:capacity]
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	for _, f := range files {
		g.Go(func() error {
			photo, err := c.encoder.Encode(ctx, f)
			if err != nil {
				c.log.Warn("图片转换失败", "file", f.Name, "error", err)
				return nil
			}
			mu.Lock()
			vs.Draft.Photos = append(vs.Draft.Photos, photo)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return len(files), nil
}

// RemoveStagedPhoto 按位置移除
func (c *Controller) RemoveStagedPhoto(vs *ViewState, index int) error {
	if vs.Draft == nil {
		return ErrModalMismatch
	}
	if index < 0 || index >= len(vs.Draft.Photos) {
		return ErrPhotoIndex
	}
	vs.Draft.Photos = append(vs.Draft.Photos[:index:index], vs.Draft.Photos[index+1:]...)
	return nil
}
