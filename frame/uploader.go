package frame

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

const uploadTimeout = 10 * time.Second

// Credentials and target bucket for publishing rendered frames to an
// S3-compatible object store.
type UploaderConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
}

// Populate an uploader config from the S3_* environment variables.
func UploaderConfigFromEnv() UploaderConfig {
	return UploaderConfig{
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    os.Getenv("S3_REGION"),
		Bucket:    os.Getenv("S3_BUCKET"),
	}
}

// Uploader publishes encoded frames to an object store bucket.
type Uploader struct {
	client *s3.S3
	bucket string
}

// Create a new uploader for the bucket described by the config.
func NewUploader(config UploaderConfig) (*Uploader, error) {
	sess, err := session.NewSession(&aws.Config{
		Credentials:      credentials.NewStaticCredentials(config.AccessKey, config.SecretKey, ""),
		Endpoint:         aws.String(config.Endpoint),
		Region:           aws.String(config.Region),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("frame: could not create S3 session: %w", err)
	}

	return &Uploader{
		client: s3.New(sess),
		bucket: config.Bucket,
	}, nil
}

// Upload the encoded frame under the given key.
func (u *Uploader) Upload(ctx context.Context, data []byte, key, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("frame: could not upload %s: %w", key, err)
	}
	return nil
}
