package storage

import (
	"context"
	"os"
	"time"

	"campus-pulse/core/config"
	"campus-pulse/core/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Storage hands out presigned upload URLs for event poster images.
// The bucket itself is an external collaborator; nothing is proxied.
type Storage interface {
	PresignPosterUpload(ctx context.Context, key string, contentType string) (string, error)
	ObjectURL(key string) string
}

type s3Storage struct {
	presigner *s3.PresignClient
	bucket    string
	region    string
}

func NewS3Storage(cfg config.S3Config) Storage {
	awsCfg := aws.Config{
		Region: cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			os.Getenv("AWS_ACCESS_KEY_ID"),
			os.Getenv("AWS_SECRET_ACCESS_KEY"),
			"",
		),
	}

	client := s3.NewFromConfig(awsCfg)

	return &s3Storage{
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.Bucket,
		region:    cfg.Region,
	}
}

func (s *s3Storage) PresignPosterUpload(ctx context.Context, key string, contentType string) (string, error) {
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		logger.Error("Storage:PresignPosterUpload", err)
		return "", err
	}
	return req.URL, nil
}

func (s *s3Storage) ObjectURL(key string) string {
	return "https://" + s.bucket + ".s3." + s.region + ".amazonaws.com/" + key
}
