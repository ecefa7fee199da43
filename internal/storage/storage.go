package storage

import (
	"context"
	"time"
)

// ObjectStorage keeps generated agenda exports.
type ObjectStorage interface {
	Upload(ctx context.Context, data []byte, objectName, contentType string) error

	Delete(ctx context.Context, objectName string) error

	GetPresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}
