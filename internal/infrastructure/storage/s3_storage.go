package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"vexadrive/internal/infrastructure/database"
	"vexadrive/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3FileStorage stores bill files in an S3 bucket.
//
// Supported env vars:
//   - BILLS_BUCKET (default: vexadrive-bills)
//   - S3_ENDPOINT (optional; e.g. http://localstack:4566)
//
// Keys are uuid-prefixed so two uploads with the same file name never
// collide. The key is opaque to callers; only the bill record holds it.

type S3FileStorage struct {
	client *s3.Client
	bucket string
}

var _ interfaces.IFileStorage = (*S3FileStorage)(nil)

func NewS3FileStorage(ctx context.Context, bucket string) (*S3FileStorage, error) {
	cfg, err := database.NewAWSConfigFromEnv(ctx, "S3_ENDPOINT", s3.ServiceID)
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		// Path-style addressing keeps local emulators working.
		o.UsePathStyle = true
	})
	log.Printf("[storage][s3] client initialized bucket=%s", bucket)
	return &S3FileStorage{client: client, bucket: bucket}, nil
}

func (s *S3FileStorage) Save(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
	key := fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(fileName))
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

func (s *S3FileStorage) Get(ctx context.Context, storageKey string) ([]byte, string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storageKey),
	})
	if err != nil {
		return nil, "", err
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, "", err
	}
	contentType := ""
	if out.ContentType != nil {
		contentType = *out.ContentType
	}
	return data, contentType, nil
}

func (s *S3FileStorage) Delete(ctx context.Context, storageKey string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storageKey),
	})
	return err
}
