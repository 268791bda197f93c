package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	cfg "github.com/fingold/fingold-backend/internal/config"
)

// Metadata keys written on every archived report
const (
	metaPeriod     = "report-period"
	metaFilename   = "report-filename"
	reportCacheCtl = "private, no-store"
)

// S3ReportStorage archives rendered reports in a private S3 bucket
type S3ReportStorage struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
}

// NewS3ReportStorage connects to the bucket named in s3cfg, creating it when missing
func NewS3ReportStorage(ctx context.Context, s3cfg cfg.S3Config) (*S3ReportStorage, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(s3cfg.Region)}
	if s3cfg.AccessKeyID != "" && s3cfg.SecretAccessKey != "" {
		creds := credentials.NewStaticCredentialsProvider(s3cfg.AccessKeyID, s3cfg.SecretAccessKey, "")
		opts = append(opts, config.WithCredentialsProvider(creds))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		// S3-compatible servers (LocalStack, MinIO) need path-style addressing
		if s3cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s3cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	store := &S3ReportStorage{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    s3cfg.Bucket,
	}
	if err := store.ensureBucket(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *S3ReportStorage) ensureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err == nil {
		return nil
	}
	if !isBucketMissing(err) {
		return fmt.Errorf("failed to check report bucket %q: %w", s.bucket, err)
	}

	if _, err := s.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(s.bucket)}); err != nil {
		return fmt.Errorf("failed to create report bucket %q: %w", s.bucket, err)
	}
	return nil
}

// Put stores a rendered report with its download name and period
func (s *S3ReportStorage) Put(ctx context.Context, obj *ReportObject) error {
	if _, err := s.client.PutObject(ctx, putReportInput(s.bucket, obj)); err != nil {
		return fmt.Errorf("failed to store report %s: %w", obj.Path, err)
	}
	return nil
}

// Delete removes an archived report
func (s *S3ReportStorage) Delete(ctx context.Context, objectPath string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectPath),
	})
	if err != nil {
		return fmt.Errorf("failed to delete report %s: %w", objectPath, err)
	}
	return nil
}

// PresignDownload returns a temporary GET URL that downloads the report as filename
func (s *S3ReportStorage) PresignDownload(ctx context.Context, objectPath string, filename string, expiry time.Duration) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, presignReportInput(s.bucket, objectPath, filename), s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign report %s: %w", objectPath, err)
	}
	return req.URL, nil
}

func putReportInput(bucket string, obj *ReportObject) *s3.PutObjectInput {
	metadata := map[string]string{metaFilename: obj.Filename}
	if obj.Period != "" {
		metadata[metaPeriod] = obj.Period
	}

	return &s3.PutObjectInput{
		Bucket:             aws.String(bucket),
		Key:                aws.String(obj.Path),
		Body:               bytes.NewReader(obj.Data),
		ContentLength:      aws.Int64(int64(len(obj.Data))),
		ContentType:        aws.String(obj.ContentType),
		ContentDisposition: aws.String(AttachmentDisposition(obj.Filename)),
		CacheControl:       aws.String(reportCacheCtl),
		Metadata:           metadata,
	}
}

func presignReportInput(bucket, objectPath, filename string) *s3.GetObjectInput {
	input := &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(objectPath),
	}
	if filename != "" {
		input.ResponseContentDisposition = aws.String(AttachmentDisposition(filename))
	}
	return input
}

func isBucketMissing(err error) bool {
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var noSuchBucket *types.NoSuchBucket
	return errors.As(err, &noSuchBucket)
}
