package objectstorage

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"housing-dashboard-service/internal/contextkeys"
	"housing-dashboard-service/internal/core/port"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Uploader - адаптер объектного хранилища. Реализует ObjectStoragePort.
// Ключ объекта: <категория>/<random>-<timestamp>.<ext>.
type S3Uploader struct {
	client    *s3.Client
	bucket    string
	region    string
	publicURL string
}

// Config - настройки подключения к хранилищу.
type Config struct {
	Bucket string
	Region string
	// Endpoint - для S3-совместимых хранилищ. Пусто = AWS.
	Endpoint string
	// PublicURL - базовый публичный URL. Пусто = стандартный virtual-hosted URL.
	PublicURL string
}

// NewS3Uploader создает адаптер и проверяет обязательные настройки.
func NewS3Uploader(ctx context.Context, cfg Config) (*S3Uploader, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 uploader: bucket is required")
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("s3 uploader: failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Uploader{
		client:    client,
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

// Upload загружает файл и возвращает его публичный URL.
func (u *S3Uploader) Upload(ctx context.Context, category, fileName string, content []byte) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "S3Uploader",
		"category":  category,
		"file_name": fileName,
		"size":      len(content),
	})

	key := buildObjectKey(category, fileName)

	contentType := mime.TypeByExtension(filepath.Ext(fileName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		logger.Error("Failed to upload object", err, port.Fields{"key": key})
		return "", fmt.Errorf("failed to upload object %s: %w", key, err)
	}

	url := u.objectURL(key)
	logger.Info("Object uploaded", port.Fields{"key": key, "url": url})
	return url, nil
}

// buildObjectKey - <category>/<random>-<timestamp>.<ext>.
func buildObjectKey(category, fileName string) string {
	random := make([]byte, 6)
	_, _ = rand.Read(random)

	ext := filepath.Ext(fileName)
	return fmt.Sprintf("%s/%s-%d%s", category, hex.EncodeToString(random), time.Now().UnixMilli(), ext)
}

func (u *S3Uploader) objectURL(key string) string {
	if u.publicURL != "" {
		return u.publicURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}
