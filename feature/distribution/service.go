package distribution

import (
	"context"
	"io"
	"time"

	"stocktake/core/storage"

	"github.com/minio/minio-go/v7"
)

// apkObject is the well-known object name the scanner APK is published
// under in the distribution bucket.
const apkObject = "stocktake-scanner.apk"

// Info describes the currently published APK, or nothing when no build
// has been uploaded yet.
type Info struct {
	Available bool      `json:"available"`
	Size      int64     `json:"size,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Service serves the scanner APK from object storage.
type Service struct {
	client storage.Client
	bucket string
}

// NewService creates a new distribution service.
func NewService(client storage.Client, bucket string) *Service {
	return &Service{client: client, bucket: bucket}
}

// Info returns metadata for the published APK. A missing object is not an
// error; it means no build has been published.
func (s *Service) Info(ctx context.Context) (*Info, error) {
	stat, err := s.client.StatObject(ctx, s.bucket, apkObject, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return &Info{Available: false}, nil
		}
		return nil, err
	}
	return &Info{
		Available: true,
		Size:      stat.Size,
		UpdatedAt: stat.LastModified,
	}, nil
}

// Open streams the published APK.
func (s *Service) Open(ctx context.Context) (io.ReadCloser, error) {
	return s.client.GetObject(ctx, s.bucket, apkObject, minio.GetObjectOptions{})
}
