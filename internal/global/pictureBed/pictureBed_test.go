package pictureBed

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"volunteer-board/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngData = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)

func TestDetectImage(t *testing.T) {
	mime, err := detectImage(PhotoFile{Name: "a.png", Data: pngData}, 0)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)

	_, err = detectImage(PhotoFile{Name: "empty.png"}, 0)
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = detectImage(PhotoFile{Name: "notes.txt", Data: []byte("hello, plain text")}, 0)
	assert.ErrorIs(t, err, ErrNotImage)

	_, err = detectImage(PhotoFile{Name: "big.png", Data: pngData}, 8)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestInlineEncoder(t *testing.T) {
	uri, err := NewInlineEncoder(0).Encode(context.Background(), PhotoFile{Name: "a.png", Data: pngData})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	// 声明的类型不作数
	_, err = NewInlineEncoder(0).Encode(context.Background(), PhotoFile{
		Name: "fake.png", ContentType: "image/png", Data: []byte("not really"),
	})
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestPictureBed_Encode(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "photos")
	pb := NewPictureBed(dir, "/static/photos/", 0)

	url, err := pb.Encode(context.Background(), PhotoFile{Name: "Cleanup.PNG", Data: pngData})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/static/photos/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	saved, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/static/photos/")))
	require.NoError(t, err)
	assert.Equal(t, pngData, saved)

	// 没有扩展名时按检测出的类型补
	url, err = pb.Encode(context.Background(), PhotoFile{Name: "blob", Data: pngData})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".png"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	_, err = pb.Encode(context.Background(), PhotoFile{Name: "x.png", Data: []byte("text")})
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "board/a.png", objectKey("/board/", "a.png"))
	assert.Equal(t, "a.png", objectKey("", "a.png"))
}

func TestS3Encoder_ObjectURL(t *testing.T) {
	virtual := NewS3Encoder(config.S3{
		BaseURL: "https://photos.cdn.test/", Endpoint: "https://s3.test", Bucket: "board",
	}, 0)
	assert.Equal(t, "https://photos.cdn.test/board/a.png", virtual.objectURL("board/a.png"))

	pathStyle := NewS3Encoder(config.S3{
		Endpoint: "http://minio.local:9000/", Bucket: "board", UsePathStyle: true,
	}, 0)
	assert.Equal(t, "http://minio.local:9000/board/p/a.png", pathStyle.objectURL("p/a.png"))
}

func TestS3Encoder_RequiresBucket(t *testing.T) {
	_, err := NewS3Encoder(config.S3{Region: "us-east-1"}, 0).
		Encode(context.Background(), PhotoFile{Name: "a.png", Data: pngData})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket")
}

func TestNew(t *testing.T) {
	cfg := config.Default()

	enc, err := New(&cfg)
	require.NoError(t, err)
	assert.IsType(t, &InlineEncoder{}, enc)

	cfg.Photos.Mode = config.PhotoLocal
	enc, err = New(&cfg)
	require.NoError(t, err)
	assert.IsType(t, &PictureBed{}, enc)

	cfg.Photos.Mode = config.PhotoS3
	enc, err = New(&cfg)
	require.NoError(t, err)
	assert.IsType(t, &S3Encoder{}, enc)

	cfg.Photos.Mode = "ftp"
	_, err = New(&cfg)
	assert.Error(t, err)
}
