package profiles

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/dmitrijs2005/learnhub/internal/common"
	"github.com/dmitrijs2005/learnhub/internal/server/models"
)

// S3API is the part of *s3.Client the repository needs.
type S3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Options locate an S3-compatible bucket (AWS or MinIO).
type S3Options struct {
	User         string
	Password     string
	Bucket       string
	Region       string
	BaseEndpoint string
}

var loadDefaultAWSConfig = config.LoadDefaultConfig

// NewS3Client builds a path-style client with static credentials.
func NewS3Client(ctx context.Context, o S3Options) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(o.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(o.User, o.Password, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(cfg, func(opts *s3.Options) {
		if o.BaseEndpoint != "" {
			opts.BaseEndpoint = aws.String(o.BaseEndpoint)
		}
		opts.UsePathStyle = true
	}), nil
}

// S3Repository keeps one JSON object per user under profiles/<user id>.json.
type S3Repository struct {
	client S3API
	bucket string
	now    func() time.Time
}

func NewS3Repository(client S3API, bucket string) *S3Repository {
	return &S3Repository{client: client, bucket: bucket, now: time.Now}
}

type s3Profile struct {
	Theme     string    `json:"theme"`
	UpdatedAt time.Time `json:"updated_at"`
}

func objectKey(userID string) string {
	return "profiles/" + userID + ".json"
}

func (r *S3Repository) Get(ctx context.Context, userID string) (*models.Profile, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(objectKey(userID)),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("s3 get: %w", err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("s3 read: %w", err)
	}

	var rec s3Profile
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("s3 decode %s: %w", objectKey(userID), err)
	}
	return &models.Profile{UserID: userID, Theme: rec.Theme, UpdatedAt: rec.UpdatedAt}, nil
}

func (r *S3Repository) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	rec := s3Profile{Theme: profile.Theme, UpdatedAt: r.now().UTC()}
	body, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}

	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(objectKey(profile.UserID)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 put: %w", err)
	}
	return &models.Profile{UserID: profile.UserID, Theme: rec.Theme, UpdatedAt: rec.UpdatedAt}, nil
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
