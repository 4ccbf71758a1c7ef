package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/contracts-electrical/tracker/internal/metrics"
	"github.com/contracts-electrical/tracker/internal/modules/model"
	"github.com/contracts-electrical/tracker/internal/modules/repo"
)

// \p{Nd} matches any Unicode decimal digit, not only ASCII.
var phonePattern = regexp.MustCompile(`^\+?\p{Nd}{10,15}$`)

type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*model.User, error)
	Login(ctx context.Context, in LoginInput) (*LoginOutput, error)
}

type authService struct {
	users    repo.UserRepo
	validate *validator.Validate
}

func NewAuthService(users repo.UserRepo) AuthService {
	return &authService{users: users, validate: validator.New()}
}

type SignupInput struct {
	Username  string
	FirstName string
	Password  string
	Role      string
}

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	Role     string `json:"role"`
	Username string `json:"username"`
}

// Signup checks the username shape and uniqueness, then appends the user.
// The uniqueness check and the append are not atomic.
func (s *authService) Signup(ctx context.Context, in SignupInput) (*model.User, error) {
	if !s.validUsername(in.Username) {
		metrics.IncAuthAttempt("signup", "invalid")
		return nil, ErrInvalidUsername
	}

	_, err := s.users.FindByUsername(ctx, in.Username)
	switch {
	case err == nil:
		metrics.IncAuthAttempt("signup", "conflict")
		return nil, ErrUserExists
	case !errors.Is(err, repo.ErrUserNotFound):
		return nil, fmt.Errorf("load users: %w", err)
	}

	role := in.Role
	if role == "" {
		role = model.RoleUser
	}
	u := &model.User{
		Username:  in.Username,
		FirstName: in.FirstName,
		Password:  in.Password,
		Role:      role,
	}
	if err := s.users.Append(ctx, u); err != nil {
		return nil, fmt.Errorf("append user: %w", err)
	}

	metrics.IncAuthAttempt("signup", "ok")
	return u, nil
}

func (s *authService) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	for _, u := range users {
		if u.Username == in.Username && u.Password == in.Password {
			metrics.IncAuthAttempt("login", "ok")
			return &LoginOutput{Role: u.Role, Username: in.Username}, nil
		}
	}

	metrics.IncAuthAttempt("login", "denied")
	return nil, ErrInvalidCredentials
}

func (s *authService) validUsername(username string) bool {
	if phonePattern.MatchString(username) {
		return true
	}
	return s.validate.Var(username, "required,email") == nil
}
