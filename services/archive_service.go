package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appConfig "github.com/milliybrend/reklama-bot/config"
	"github.com/milliybrend/reklama-bot/models"
)

// ArchiveInterface mirrors order attachments into durable storage. Archiving
// is best-effort; a failure never blocks order creation.
type ArchiveInterface interface {
	ArchiveOrderFiles(orderID string, refs []models.FileRef) ([]string, error)
	GetPresignedURL(key string) (string, error)
}

// FileURLResolver resolves a transport file id to a downloadable URL.
// Sender satisfies it.
type FileURLResolver interface {
	FileURL(fileID string) (string, error)
}

// ArchiveService copies Telegram attachments to S3 under orders/<order-id>/.
type ArchiveService struct {
	client     *s3.Client
	bucket     string
	files      FileURLResolver
	httpClient *http.Client
}

// NewArchiveService initializes the S3 client with static credentials, the
// same way the rest of our AWS access is configured.
func NewArchiveService(cfg *appConfig.Config, files FileURLResolver) (*ArchiveService, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)

	return &ArchiveService{
		client:     client,
		bucket:     cfg.AWSS3Bucket,
		files:      files,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// ArchiveOrderFiles downloads each attachment from the transport and uploads
// it under orders/<order-id>/. Per-file failures are logged and skipped; the
// returned keys cover only the files that made it.
func (s *ArchiveService) ArchiveOrderFiles(orderID string, refs []models.FileRef) ([]string, error) {
	var keys []string
	for i, ref := range refs {
		key, err := s.archiveOne(orderID, i, ref)
		if err != nil {
			log.Printf("archive: failed to mirror file %s of %s: %v", ref.FileID, orderID, err)
			continue
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (s *ArchiveService) archiveOne(orderID string, index int, ref models.FileRef) (string, error) {
	url, err := s.files.FileURL(ref.FileID)
	if err != nil {
		return "", err
	}

	resp, err := s.httpClient.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to download attachment: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("warning: failed to close download body: %v", closeErr)
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("attachment download returned status %d", resp.StatusCode)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read attachment: %w", err)
	}

	key := fmt.Sprintf("orders/%s/%d_%s", orderID, index, ref.FileID)

	_, err = s.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(content),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return key, nil
}

// GetPresignedURL generates a presigned URL for accessing a private S3 object
// The URL expires after 1 hour
func (s *ArchiveService) GetPresignedURL(key string) (string, error) {
	if key == "" {
		return "", nil
	}

	presignClient := s3.NewPresignClient(s.client)

	request, err := presignClient.PresignGetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return request.URL, nil
}
