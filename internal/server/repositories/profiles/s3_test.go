package profiles

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/dmitrijs2005/learnhub/internal/common"
	"github.com/dmitrijs2005/learnhub/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memS3 is an in-memory S3API keyed by bucket/key.
type memS3 struct {
	objects map[string][]byte
	putErr  error
	getErr  error
}

func newMemS3() *memS3 { return &memS3{objects: map[string][]byte{}} }

func (m *memS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if m.putErr != nil {
		return nil, m.putErr
	}
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	m.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = b
	return &s3.PutObjectOutput{}, nil
}

func (m *memS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	b, ok := m.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(string(b)))}, nil
}

func TestS3Repository_UpsertThenGet(t *testing.T) {
	store := newMemS3()
	repo := NewS3Repository(store, "learnhub")
	fixed := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	saved, err := repo.Upsert(context.Background(), &models.Profile{UserID: "u-1", Theme: "light"})
	require.NoError(t, err)
	assert.Equal(t, fixed, saved.UpdatedAt)
	assert.Contains(t, store.objects, "learnhub/profiles/u-1.json")

	got, err := repo.Get(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, &models.Profile{UserID: "u-1", Theme: "light", UpdatedAt: fixed}, got)

	_, err = repo.Upsert(context.Background(), &models.Profile{UserID: "u-1", Theme: "dark"})
	require.NoError(t, err)
	got, err = repo.Get(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "dark", got.Theme, "last writer wins")
}

func TestS3Repository_GetMissing(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "typed NoSuchKey", err: &types.NoSuchKey{}},
		{name: "generic NotFound", err: &smithy.GenericAPIError{Code: "NotFound"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemS3()
			store.getErr = tt.err
			repo := NewS3Repository(store, "learnhub")

			_, err := repo.Get(context.Background(), "ghost")
			require.ErrorIs(t, err, common.ErrorNotFound)
		})
	}
}

func TestS3Repository_Failures(t *testing.T) {
	store := newMemS3()
	repo := NewS3Repository(store, "learnhub")

	store.getErr = &smithy.GenericAPIError{Code: "AccessDenied"}
	_, err := repo.Get(context.Background(), "u-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorNotFound)

	store.putErr = errors.New("connection refused")
	_, err = repo.Upsert(context.Background(), &models.Profile{UserID: "u-1", Theme: "dark"})
	require.ErrorContains(t, err, "s3 put")

	store.getErr = nil
	store.objects["learnhub/profiles/u-2.json"] = []byte("{not json")
	_, err = repo.Get(context.Background(), "u-2")
	require.ErrorContains(t, err, "s3 decode")
}

func TestNewS3Client(t *testing.T) {
	c, err := NewS3Client(context.Background(), S3Options{
		User: "admin", Password: "secretpassword", Bucket: "learnhub",
		Region: "us-east-1", BaseEndpoint: "http://127.0.0.1:9000/",
	})
	require.NoError(t, err)
	require.NotNil(t, c)

	orig := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = orig })
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no config")
	}

	_, err = NewS3Client(context.Background(), S3Options{})
	require.ErrorContains(t, err, "load aws config")
}
