// Package storage keeps product image files in an S3-compatible bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"padelpoint/config"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// objectAPI is the subset of *s3.Client the storage uses.
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3Storage works with AWS S3 and MinIO.
type s3Storage struct {
	client  objectAPI
	bucket  string
	baseURL string
	logger  *slog.Logger
}

func NewS3Storage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.ObjectStorage, error) {
	s3Cfg := cfg.Storage.S3
	if s3Cfg.Bucket == "" {
		return nil, errors.New("storage bucket is not configured")
	}

	opts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(s3Cfg.Region),
	}
	if s3Cfg.AccessKey != "" && s3Cfg.SecretKey != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s3Cfg.AccessKey, s3Cfg.SecretKey, ""),
		))
	}

	awsConfig, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}

	var clientOpts []func(*s3.Options)
	if s3Cfg.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(s3Cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	baseURL := strings.TrimRight(s3Cfg.PublicURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", s3Cfg.Bucket, s3Cfg.Region)
	}

	return &s3Storage{
		client:  s3.NewFromConfig(awsConfig, clientOpts...),
		bucket:  s3Cfg.Bucket,
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

func (s *s3Storage) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", errors.Wrapf(err, "put object %s", key)
	}

	s.logger.Debug("[S3] Object stored", slog.String("key", key), slog.Int64("size", size))

	return s.url(key), nil
}

func (s *s3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errors.Wrapf(err, "delete object %s", key)
	}

	return nil
}

func (s *s3Storage) url(key string) string {
	return s.baseURL + "/" + strings.TrimLeft(key, "/")
}
