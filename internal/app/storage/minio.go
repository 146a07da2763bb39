package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// ImageStorage хранит загруженные через админку изображения услуг в MinIO
type ImageStorage struct {
	client     *minio.Client
	bucketName string
}

// ErrUnsupportedFormat возвращается при загрузке файла с неизвестным расширением
var ErrUnsupportedFormat = errors.New("unsupported image format")

var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// NewImageStorage создаёт клиент MinIO и bucket, если его ещё нет
func NewImageStorage(endpoint, accessKey, secretKey, bucketName string, useSSL bool) (*ImageStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logrus.Infof("Bucket %s created successfully", bucketName)
	}

	return &ImageStorage{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// UploadImage кладёт изображение в bucket под уникальным именем
// и возвращает это имя. Принимаются только известные форматы картинок.
func (s *ImageStorage) UploadImage(ctx context.Context, fileData []byte, originalFilename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	contentType, ok := imageContentTypes[ext]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	// Имя на латинице: оригинальные имена бывают кириллическими
	filename := fmt.Sprintf("img_%s_%d%s",
		uuid.New().String()[:8],
		time.Now().Unix(),
		ext)

	reader := bytes.NewReader(fileData)
	_, err := s.client.PutObject(ctx, s.bucketName, filename, reader, int64(len(fileData)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	logrus.Infof("Image %s uploaded successfully", filename)
	return filename, nil
}

// DeleteImage удаляет изображение из bucket
func (s *ImageStorage) DeleteImage(ctx context.Context, filename string) error {
	err := s.client.RemoveObject(ctx, s.bucketName, filename, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	logrus.Infof("Image %s deleted successfully", filename)
	return nil
}

// ImageURL возвращает временную ссылку на изображение (сутки)
func (s *ImageStorage) ImageURL(ctx context.Context, filename string) (string, error) {
	url, err := s.client.PresignedGetObject(ctx, s.bucketName, filename, 24*time.Hour, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return url.String(), nil
}
