package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/ricotama/LAPORin/internal/config"
)

// StorageAdapter wraps the S3-compatible bucket holding offloaded report
// photos. A nil S3 client disables it; callers check Enabled first.
type StorageAdapter struct {
	client       *s3.Client
	bucket       string
	region       string
	publicDomain string
}

type StoredObject struct {
	Key          string
	LastModified time.Time
}

func NewStorageAdapter(cfg *config.AppConfig, s3Client *s3.Client) *StorageAdapter {
	return &StorageAdapter{
		client:       s3Client,
		bucket:       cfg.S3Bucket,
		region:       cfg.S3Region,
		publicDomain: cfg.S3PublicDomain,
	}
}

func (s *StorageAdapter) Enabled() bool {
	return s.client != nil
}

func (s *StorageAdapter) StorePhoto(ctx context.Context, data []byte, contentType string, key string) error {
	if s.client == nil {
		return errors.New("s3 client is not initialized")
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(filepath.ToSlash(key)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	return err
}

func (s *StorageAdapter) Delete(ctx context.Context, key string) error {
	if s.client == nil {
		return errors.New("s3 client is not initialized")
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(filepath.ToSlash(key)),
	})
	return err
}

// ListObjects returns every object under the prefix, paging through the
// bucket until exhausted.
func (s *StorageAdapter) ListObjects(ctx context.Context, prefix string) ([]StoredObject, error) {
	if s.client == nil {
		return nil, errors.New("s3 client is not initialized")
	}

	var objects []StoredObject

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			stored := StoredObject{Key: aws.ToString(obj.Key)}
			if obj.LastModified != nil {
				stored.LastModified = *obj.LastModified
			}
			objects = append(objects, stored)
		}
	}

	return objects, nil
}

func (s *StorageAdapter) GetPublicURL(key string) string {
	if s.publicDomain != "" {
		return fmt.Sprintf("%s/%s", s.publicDomain, filepath.ToSlash(key))
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, filepath.ToSlash(key))
}
