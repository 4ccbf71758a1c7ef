package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/contracts-electrical/tracker/internal/modules/model"
	"github.com/contracts-electrical/tracker/internal/modules/repo"
)

func TestAuthService_Signup(t *testing.T) {
	tests := []struct {
		name      string
		in        SignupInput
		setup     func(*MockUserRepo)
		wantErr   error
		errorMsg  string
		wantRole  string
		expectNil bool
	}{
		{
			name: "email username",
			in:   SignupInput{Username: "site.lead@example.com", FirstName: "Meena", Password: "pw"},
			setup: func(r *MockUserRepo) {
				r.On("FindByUsername", mock.Anything, "site.lead@example.com").Return(nil, repo.ErrUserNotFound)
				r.On("Append", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return u.Username == "site.lead@example.com" && u.Role == model.RoleUser && u.Password == "pw"
				})).Return(nil)
			},
			wantRole: model.RoleUser,
		},
		{
			name: "phone username with plus and explicit role",
			in:   SignupInput{Username: "+919876543210", FirstName: "Ravi", Password: "pw", Role: "admin"},
			setup: func(r *MockUserRepo) {
				r.On("FindByUsername", mock.Anything, "+919876543210").Return(nil, repo.ErrUserNotFound)
				r.On("Append", mock.Anything, mock.Anything).Return(nil)
			},
			wantRole: "admin",
		},
		{
			name: "phone username in arabic-indic digits",
			in:   SignupInput{Username: "١٢٣٤٥٦٧٨٩٠", FirstName: "Omar", Password: "pw"},
			setup: func(r *MockUserRepo) {
				r.On("FindByUsername", mock.Anything, "١٢٣٤٥٦٧٨٩٠").Return(nil, repo.ErrUserNotFound)
				r.On("Append", mock.Anything, mock.Anything).Return(nil)
			},
			wantRole: model.RoleUser,
		},
		{
			name:      "too short phone",
			in:        SignupInput{Username: "12345", FirstName: "x", Password: "pw"},
			setup:     func(r *MockUserRepo) {},
			wantErr:   ErrInvalidUsername,
			expectNil: true,
		},
		{
			name:      "too long phone",
			in:        SignupInput{Username: "1234567890123456", FirstName: "x", Password: "pw"},
			setup:     func(r *MockUserRepo) {},
			wantErr:   ErrInvalidUsername,
			expectNil: true,
		},
		{
			name:      "neither email nor phone",
			in:        SignupInput{Username: "not-a-user", FirstName: "x", Password: "pw"},
			setup:     func(r *MockUserRepo) {},
			wantErr:   ErrInvalidUsername,
			expectNil: true,
		},
		{
			name: "existing username",
			in:   SignupInput{Username: "9876543210", FirstName: "Other", Password: "different"},
			setup: func(r *MockUserRepo) {
				r.On("FindByUsername", mock.Anything, "9876543210").Return(&model.User{Username: "9876543210"}, nil)
			},
			wantErr:   ErrUserExists,
			expectNil: true,
		},
		{
			name: "store read error",
			in:   SignupInput{Username: "9876543210", FirstName: "x", Password: "pw"},
			setup: func(r *MockUserRepo) {
				r.On("FindByUsername", mock.Anything, "9876543210").Return(nil, errors.New("open users file: corrupt"))
			},
			errorMsg:  "corrupt",
			expectNil: true,
		},
		{
			name: "store write error",
			in:   SignupInput{Username: "9876543210", FirstName: "x", Password: "pw"},
			setup: func(r *MockUserRepo) {
				r.On("FindByUsername", mock.Anything, "9876543210").Return(nil, repo.ErrUserNotFound)
				r.On("Append", mock.Anything, mock.Anything).Return(errors.New("disk full"))
			},
			errorMsg:  "disk full",
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockUserRepo{}
			tt.setup(mockRepo)

			svc := NewAuthService(mockRepo)
			u, err := svc.Signup(context.Background(), tt.in)

			if tt.expectNil {
				assert.Error(t, err)
				assert.Nil(t, u)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.in.Username, u.Username)
				assert.Equal(t, tt.in.FirstName, u.FirstName)
				assert.Equal(t, tt.wantRole, u.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	users := []model.User{
		{Username: "9876543210", FirstName: "Ravi", Password: "secret", Role: "user"},
		{Username: "boss@example.com", FirstName: "Meena", Password: "admin-pw", Role: "admin"},
		{Username: "9876543210", FirstName: "Dup", Password: "other", Role: "admin"},
	}

	tests := []struct {
		name     string
		in       LoginInput
		listErr  error
		wantRole string
		wantErr  error
	}{
		{name: "user login", in: LoginInput{Username: "9876543210", Password: "secret"}, wantRole: "user"},
		{name: "admin login", in: LoginInput{Username: "boss@example.com", Password: "admin-pw"}, wantRole: "admin"},
		{name: "duplicate row matched by password", in: LoginInput{Username: "9876543210", Password: "other"}, wantRole: "admin"},
		{name: "wrong password", in: LoginInput{Username: "9876543210", Password: "nope"}, wantErr: ErrInvalidCredentials},
		{name: "unknown user", in: LoginInput{Username: "ghost@example.com", Password: "secret"}, wantErr: ErrInvalidCredentials},
		{name: "store error", in: LoginInput{Username: "9876543210", Password: "secret"}, listErr: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockUserRepo{}
			if tt.listErr != nil {
				mockRepo.On("List", mock.Anything).Return(nil, tt.listErr)
			} else {
				mockRepo.On("List", mock.Anything).Return(users, nil)
			}

			out, err := NewAuthService(mockRepo).Login(context.Background(), tt.in)

			switch {
			case tt.listErr != nil:
				assert.ErrorIs(t, err, tt.listErr)
				assert.NotErrorIs(t, err, ErrInvalidCredentials)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, out)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.wantRole, out.Role)
				assert.Equal(t, tt.in.Username, out.Username)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
