package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/contracts-electrical/tracker/internal/modules/model"
	"github.com/contracts-electrical/tracker/internal/modules/repo"
)

// MockUserRepo is a mock implementation of UserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) Append(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

// MockProjectRepo is a mock implementation of ProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, p *model.Project) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func (m *MockProjectRepo) List(ctx context.Context) (*repo.ListProjectsResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repo.ListProjectsResult), args.Error(1)
}

func (m *MockProjectRepo) FindByPrefix(ctx context.Context, id string) (*model.StoredProject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoredProject), args.Error(1)
}

func (m *MockProjectRepo) Update(ctx context.Context, id string, p *model.Project) error {
	args := m.Called(ctx, id, p)
	return args.Error(0)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPresigner is a mock implementation of Presigner
type MockPresigner struct {
	mock.Mock
}

func (m *MockPresigner) PresignPut(ctx context.Context, key, contentType string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, contentType, expire)
	return args.String(0), args.Error(1)
}
