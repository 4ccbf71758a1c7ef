package blob

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contracts-electrical/tracker/internal/config"
)

func testS3Cfg() config.S3Cfg {
	return config.S3Cfg{
		Endpoint:     "localhost:9000",
		Region:       "auto",
		AccessKey:    "minio",
		SecretKey:    "minio-secret",
		Bucket:       "site-photos",
		UsePathStyle: true,
	}
}

func TestNewS3_RequiresBucket(t *testing.T) {
	cfg := testS3Cfg()
	cfg.Bucket = ""
	_, err := NewS3(context.Background(), cfg)
	assert.Error(t, err)
}

func TestPresignPut(t *testing.T) {
	s, err := NewS3(context.Background(), testS3Cfg())
	require.NoError(t, err)

	raw, err := s.PresignPut(context.Background(), "attachments/P1_20250102150405/a.jpg", "image/jpeg", 10*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/site-photos/attachments/P1_20250102150405/a.jpg", u.Path)
	assert.Equal(t, "600", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}

func TestPresignPut_EmptyKey(t *testing.T) {
	s, err := NewS3(context.Background(), testS3Cfg())
	require.NoError(t, err)

	_, err = s.PresignPut(context.Background(), "", "", time.Minute)
	assert.Error(t, err)
}
