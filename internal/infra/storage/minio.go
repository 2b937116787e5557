package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/bryanwahyu/chaos-engine/internal/domain/media"
)

const scratchPrefix = "scratch/"

// Store keeps scratch files as objects in a MinIO/S3 bucket.
type Store struct {
	client     *minio.Client
	bucketName string
	region     string
	log        *zap.Logger
}

// New buat koneksi MinIO
func New(ctx context.Context, endpoint, region, bucket, accessKey, secretKey string, useSSL bool, log *zap.Logger) (*Store, error) {
	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, err
	}

	// pastikan bucket ada
	exists, err := cli.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := cli.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return nil, err
		}
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Store{client: cli, bucketName: bucket, region: region, log: log.Named("scratch-minio")}, nil
}

func (s *Store) Put(ctx context.Context, filename string, r io.Reader) (*media.Scratch, error) {
	mimeType, body, err := sniff(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	key := scratchPrefix + scratchKey(filename)
	info, err := s.client.PutObject(ctx, s.bucketName, key, body, -1, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store scratch object: %w", err)
	}
	s.log.Debug("scratch stored", zap.String("key", key), zap.Int64("bytes", info.Size))
	return &media.Scratch{Key: key, Name: filename, MIMEType: mimeType, Size: info.Size}, nil
}

func (s *Store) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to open scratch object: %w", err)
	}
	return obj, nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucketName, key, minio.RemoveObjectOptions{})
}

func (s *Store) Check(ctx context.Context) error {
	ok, err := s.client.BucketExists(ctx, s.bucketName)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("bucket %s not found", s.bucketName)
	}
	return nil
}
