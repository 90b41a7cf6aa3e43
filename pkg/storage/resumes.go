package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Allowed resume file extensions mapped to their content types.
var resumeContentTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// Config holds configuration for the S3-compatible resume bucket.
type Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // optional, for S3-compatible providers
	Bucket          string
	PublicBase      string // public base URL prefix for stored objects
}

// ResumeStore stores candidate resumes in an S3-compatible bucket, one object
// per user at {user_id}/resume.{ext}. Re-uploads overwrite the previous file.
type ResumeStore struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

// NewResumeStore creates the store and its underlying S3 client.
func NewResumeStore(ctx context.Context, cfg Config) (*ResumeStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			// S3-compatible providers require a custom endpoint and
			// path-style addressing
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &ResumeStore{
		client:     client,
		bucket:     cfg.Bucket,
		publicBase: strings.TrimRight(cfg.PublicBase, "/"),
	}, nil
}

// ObjectKey returns the bucket key for a user's resume file.
func ObjectKey(userID, ext string) string {
	return userID + "/resume" + strings.ToLower(ext)
}

// ValidExtension reports whether the filename carries an accepted resume
// extension and returns it when it does.
func ValidExtension(filename string) (string, bool) {
	ext := strings.ToLower(path.Ext(filename))
	_, ok := resumeContentTypes[ext]
	return ext, ok
}

// Upload writes the resume to the bucket and returns its public URL.
func (s *ResumeStore) Upload(ctx context.Context, userID, ext string, content []byte) (string, error) {
	contentType, ok := resumeContentTypes[strings.ToLower(ext)]
	if !ok {
		return "", fmt.Errorf("unsupported resume type: %s", ext)
	}

	key := ObjectKey(userID, ext)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload resume: %w", err)
	}

	return s.PublicURL(key), nil
}

// PublicURL builds the public URL for a stored object.
func (s *ResumeStore) PublicURL(key string) string {
	if s.publicBase != "" {
		return s.publicBase + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}
