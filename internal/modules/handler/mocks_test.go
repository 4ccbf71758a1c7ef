package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/contracts-electrical/tracker/internal/modules/model"
	"github.com/contracts-electrical/tracker/internal/modules/service"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, in service.SignupInput) (*model.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, in service.LoginInput) (*service.LoginOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginOutput), args.Error(1)
}

// MockProjectService is a mock implementation of ProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Create(ctx context.Context, p *model.Project) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func (m *MockProjectService) ListForViewer(ctx context.Context, in service.ListProjectsInput) ([]*model.ViewerProject, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ViewerProject), args.Error(1)
}

func (m *MockProjectService) Get(ctx context.Context, id string) (*model.StoredProject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoredProject), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, id string, p *model.Project) error {
	args := m.Called(ctx, id, p)
	return args.Error(0)
}

func (m *MockProjectService) Delete(ctx context.Context, in service.DeleteProjectInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

// MockAttachmentService is a mock implementation of AttachmentService
type MockAttachmentService struct {
	mock.Mock
}

func (m *MockAttachmentService) PresignUpload(ctx context.Context, in service.PresignInput) (*service.PresignOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PresignOutput), args.Error(1)
}
