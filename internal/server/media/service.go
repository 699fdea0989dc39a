// Package media brokers image uploads: the server never proxies image
// bytes, it hands the client a presigned PUT URL on the S3-compatible
// backend and the public URL the stored object will have.
package media

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	sc "github.com/ourstory-app/ourstory/internal/server/config"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// Upload describes one granted upload.
type Upload struct {
	Key       string
	UploadURL string
	PublicURL string
}

type Service struct {
	config *sc.Config
}

func NewService(config *sc.Config) *Service {
	return &Service{config: config}
}

// StorageKey namespaces objects per record so a record's images can be
// listed and cleaned up together.
func StorageKey(recordID, fileName string) string {
	return fmt.Sprintf("memories/%s/%s-%v", recordID, fileName, uuid.New())
}

func (s *Service) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,     // MINIO_ROOT_USER
			s.config.S3RootPassword, // MINIO_ROOT_PASSWORD
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// GrantUpload returns a presigned PUT URL valid for 15 minutes plus the
// public URL of the object once uploaded.
func (s *Service) GrantUpload(ctx context.Context, recordID, fileName string) (Upload, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return Upload{}, err
	}

	bucket := s.config.S3Bucket
	key := StorageKey(recordID, fileName)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return Upload{}, err
	}

	return Upload{
		Key:       key,
		UploadURL: req.URL,
		PublicURL: s.publicURL(key),
	}, nil
}

func (s *Service) publicURL(key string) string {
	base := strings.TrimRight(s.config.S3BaseEndpoint, "/")
	return fmt.Sprintf("%s/%s/%s", base, s.config.S3Bucket, key)
}
