package blob

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/contracts-electrical/tracker/internal/config"
)

// S3 presigns direct uploads of progress-update attachments. The server never
// handles the object bytes itself.
type S3 struct {
	Presigner *s3.PresignClient
	Bucket    string
}

func NewS3(ctx context.Context, cfg config.S3Cfg) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket is not configured")
	}

	loadOpts := []func(*awsCfg.LoadOptions) error{
		awsCfg.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		loadOpts = append(loadOpts, awsCfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	acfg, err := awsCfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(acfg, func(o *s3.Options) {
		if ep := strings.TrimSpace(cfg.Endpoint); ep != "" {
			if !strings.HasPrefix(ep, "http://") && !strings.HasPrefix(ep, "https://") {
				ep = "https://" + ep
			}
			if u, uerr := url.Parse(ep); uerr == nil {
				o.BaseEndpoint = aws.String(u.String())
			}
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &S3{
		Presigner: s3.NewPresignClient(client),
		Bucket:    cfg.Bucket,
	}, nil
}

// PresignPut returns a URL the client can PUT the object body to.
func (s *S3) PresignPut(ctx context.Context, key, contentType string, expire time.Duration) (string, error) {
	if key == "" {
		return "", errors.New("key is empty")
	}
	params := &s3.PutObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		params.ContentType = aws.String(contentType)
	}
	ps, err := s.Presigner.PresignPutObject(ctx, params, func(po *s3.PresignOptions) {
		po.Expires = expire
	})
	if err != nil {
		return "", fmt.Errorf("presign put: %w", err)
	}
	return ps.URL, nil
}
