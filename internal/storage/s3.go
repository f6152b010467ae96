package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	appconfig "github.com/darkhuo10/vgameshop/internal/config"
)

// S3Store keeps assets in an S3-compatible bucket (MinIO in development).
type S3Store struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
}

func NewS3Store(cfg *appconfig.Config) (*S3Store, error) {
	endpointURL := fmt.Sprintf("http://%s", cfg.S3Endpoint)
	if cfg.S3UseSSL {
		endpointURL = fmt.Sprintf("https://%s", cfg.S3Endpoint)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpointURL)
		// MinIO serves buckets at the path level, not as subdomains.
		o.UsePathStyle = true
	})

	store := &S3Store{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   cfg.S3Bucket,
	}

	if err := store.ensureBucket(cfg.S3Region); err != nil {
		return nil, err
	}

	return store, nil
}

func (s *S3Store) ensureBucket(region string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err == nil {
		return nil
	}

	log.Printf("Bucket %q not found, creating", s.bucket)

	_, err = s.client.CreateBucket(context.Background(), &s3.CreateBucketInput{
		Bucket: aws.String(s.bucket),
		CreateBucketConfiguration: &s3types.CreateBucketConfiguration{
			LocationConstraint: s3types.BucketLocationConstraint(region),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create bucket %q: %w", s.bucket, err)
	}

	waiter := s3.NewBucketExistsWaiter(s.client)
	if err := waiter.Wait(context.Background(),
		&s3.HeadBucketInput{Bucket: aws.String(s.bucket)}, 30*time.Second); err != nil {
		return fmt.Errorf("failed waiting for bucket %q: %w", s.bucket, err)
	}

	return nil
}

func (s *S3Store) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		Body:        body,
	})

	if err != nil {
		return fmt.Errorf("failed to upload object %q: %w", key, err)
	}

	return nil
}

func (s *S3Store) Download(ctx context.Context, key string) ([]byte, string, error) {
	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		var noSuchKey *s3types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("failed to get object %q: %w", key, err)
	}
	defer output.Body.Close()

	data, err := io.ReadAll(output.Body)

	if err != nil {
		return nil, "", fmt.Errorf("failed to read object %q: %w", key, err)
	}

	return data, aws.ToString(output.ContentType), nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		return fmt.Errorf("failed to delete object %q: %w", key, err)
	}

	return nil
}
