package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/contracts-electrical/tracker/internal/modules/repo"
)

// Presigner issues direct-upload URLs for object storage.
type Presigner interface {
	PresignPut(ctx context.Context, key, contentType string, expire time.Duration) (string, error)
}

type AttachmentService interface {
	PresignUpload(ctx context.Context, in PresignInput) (*PresignOutput, error)
}

type attachmentService struct {
	projects repo.ProjectRepo
	blob     Presigner
	expire   func() time.Duration
}

// NewAttachmentService accepts a nil presigner; every call then fails with
// ErrAttachmentsDisabled.
func NewAttachmentService(projects repo.ProjectRepo, blob Presigner, expire func() time.Duration) AttachmentService {
	return &attachmentService{projects: projects, blob: blob, expire: expire}
}

type PresignInput struct {
	ProjectID   string
	Filename    string
	ContentType string
}

type PresignOutput struct {
	URL       string `json:"url"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expiresIn"`
}

func (s *attachmentService) PresignUpload(ctx context.Context, in PresignInput) (*PresignOutput, error) {
	if s.blob == nil {
		return nil, ErrAttachmentsDisabled
	}

	sp, err := s.projects.FindByPrefix(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}

	stem := strings.TrimSuffix(sp.File, filepath.Ext(sp.File))
	ext := strings.ToLower(filepath.Ext(in.Filename))
	key := fmt.Sprintf("attachments/%s/%s%s", stem, uuid.NewString(), ext)

	expire := s.expire()
	url, err := s.blob.PresignPut(ctx, key, in.ContentType, expire)
	if err != nil {
		return nil, fmt.Errorf("presign upload: %w", err)
	}

	return &PresignOutput{URL: url, Key: key, ExpiresIn: int(expire.Seconds())}, nil
}
