package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Jason26214/MoviesApi/internal/apperr"
)

// PosterStore keeps movie poster images in a MinIO bucket. Object names are
// derived from the movie id so re-uploading a poster replaces the old one.
type PosterStore interface {
	Put(ctx context.Context, movieID, filename, contentType string, r io.Reader, size int64) (string, error)
}

type MinioPosterStore struct {
	client   *minio.Client
	bucket   string
	endpoint string
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func NewMinioPosterStore(cfg MinioConfig) (*MinioPosterStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		log.Printf("Warning: Failed to check bucket existence: %v", err)
	} else if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			log.Printf("Warning: Failed to create bucket: %v", err)
		} else {
			log.Printf("Created bucket: %s", cfg.Bucket)
		}
	}

	return &MinioPosterStore{client: client, bucket: cfg.Bucket, endpoint: cfg.Endpoint}, nil
}

func (s *MinioPosterStore) Put(ctx context.Context, movieID, filename, contentType string, r io.Reader, size int64) (string, error) {
	objectName := fmt.Sprintf("%s_%s", movieID, filename)
	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", apperr.Wrap(err, apperr.Internal, "failed to store poster")
	}
	return fmt.Sprintf("http://%s/%s/%s", s.endpoint, s.bucket, objectName), nil
}
