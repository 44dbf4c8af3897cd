package pictureBed

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"sync"

	"volunteer-board/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Encoder 把图片上传到对象存储，记录中保存访问 URL
type S3Encoder struct {
	cfg      config.S3
	maxBytes int64

	once     sync.Once
	initErr  error
	uploader *manager.Uploader
}

func NewS3Encoder(cfg config.S3, maxBytes int64) *S3Encoder {
	return &S3Encoder{cfg: cfg, maxBytes: maxBytes}
}

// initS3 第一次上传时创建客户端
func (e *S3Encoder) initS3(ctx context.Context) error {
	e.once.Do(func() {
		opts := []func(*awsconfig.LoadOptions) error{
			awsconfig.WithRegion(e.cfg.Region),
		}
		if e.cfg.AccessKey != "" {
			opts = append(opts, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(e.cfg.AccessKey, e.cfg.SecretAccessKey, ""),
			))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			e.initErr = fmt.Errorf("初始化 S3 客户端失败: %w", err)
			return
		}
		client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if e.cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(e.cfg.Endpoint)
			}
			o.UsePathStyle = e.cfg.UsePathStyle
		})
		e.uploader = manager.NewUploader(client)
	})
	return e.initErr
}

func (e *S3Encoder) Encode(ctx context.Context, f PhotoFile) (string, error) {
	mime, err := detectImage(f, e.maxBytes)
	if err != nil {
		return "", err
	}
	if e.cfg.Bucket == "" {
		return "", fmt.Errorf("S3 bucket 未配置")
	}
	if err := e.initS3(ctx); err != nil {
		return "", err
	}

	key := objectKey(e.cfg.Prefix, uuid.NewString()+extension(f.Name, mime))
	_, err = e.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(e.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(f.Data),
		ContentType: aws.String(mime),
	})
	if err != nil {
		return "", fmt.Errorf("上传图片到 S3 失败: %w", err)
	}
	return e.objectURL(key), nil
}

func objectKey(prefix, filename string) string {
	key := path.Join(strings.Trim(prefix, "/"), filename)
	return strings.TrimLeft(key, "/")
}

// objectURL 构建访问 URL，未配置 base_url 时退回到 endpoint
func (e *S3Encoder) objectURL(key string) string {
	base := strings.TrimRight(e.cfg.BaseURL, "/")
	if base == "" {
		base = strings.TrimRight(e.cfg.Endpoint, "/")
	}
	if e.cfg.UsePathStyle {
		return base + "/" + e.cfg.Bucket + "/" + key
	}
	return base + "/" + key
}
