package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// S3Store implements ObjectStore against an S3 bucket. Uploaded objects are
// always server-side encrypted: aws:kms when a key id is configured, AES256
// otherwise.
type S3Store struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	prefix    string
	kmsKeyID  string
}

func NewS3Store(client *s3.Client, bucket, prefix, kmsKeyID string) *S3Store {
	var presigner *s3.PresignClient
	if client != nil {
		presigner = s3.NewPresignClient(client)
	}
	return &S3Store{
		client:    client,
		presigner: presigner,
		bucket:    bucket,
		prefix:    prefix,
		kmsKeyID:  kmsKeyID,
	}
}

// Upload stores the payload under a fresh key derived from the configured
// prefix, a random uuid and the original file extension.
func (s *S3Store) Upload(ctx context.Context, r io.Reader, filename string) (string, error) {
	if s.client == nil || s.bucket == "" {
		return "", ErrNotConfigured
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read upload payload: %w", err)
	}

	key := s.prefix + newKeySuffix(filename)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimetype.Detect(data).String()),
	}
	if s.kmsKeyID != "" {
		input.ServerSideEncryption = types.ServerSideEncryptionAwsKms
		input.SSEKMSKeyId = aws.String(s.kmsKeyID)
	} else {
		input.ServerSideEncryption = types.ServerSideEncryptionAes256
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("s3 upload failed: %w", err)
	}
	return key, nil
}

// PresignGet returns a temporary signed URL to download an object.
func (s *S3Store) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	if s.presigner == nil || s.bucket == "" {
		return "", ErrNotConfigured
	}

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("presign failed: %w", err)
	}
	return req.URL, nil
}

func newKeySuffix(filename string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		ext = "dat"
	}
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return id + "." + ext
}
