package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/JBorrsad/odoonto-mobile/config"
)

type S3Storage struct {
	client *minio.Client
	cfg    config.S3Config
	logger *zap.Logger
}

func NewS3Storage(ctx context.Context, cfg config.S3Config, logger *zap.Logger) (*S3Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{
			Region: cfg.Region,
		})
		if err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
		logger.Info("bucket de exportaciones creado", zap.String("bucket", cfg.Bucket))
	}

	return &S3Storage{
		client: client,
		cfg:    cfg,
		logger: logger,
	}, nil
}

func (s *S3Storage) Upload(ctx context.Context, data []byte, objectName, contentType string) error {
	if len(data) == 0 {
		return errors.New("empty object")
	}

	_, err := s.client.PutObject(ctx, s.cfg.Bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", objectName, err)
	}

	return nil
}

func (s *S3Storage) Delete(ctx context.Context, objectName string) error {
	if objectName == "" {
		return nil
	}

	if err := s.client.RemoveObject(ctx, s.cfg.Bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete %s: %w", objectName, err)
	}

	return nil
}

func (s *S3Storage) GetPresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	if objectName == "" {
		return "", errors.New("empty object name")
	}

	presignedURL, err := s.client.PresignedGetObject(ctx, s.cfg.Bucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", objectName, err)
	}

	return presignedURL.String(), nil
}
