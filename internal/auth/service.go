package auth

import (
	"context"
	"errors"

	"github.com/PSrandula/issue-tracker-app/internal/apperror"
)

type Service struct {
	Users UserRepository
	JWT   *JWT
}

func NewService(users UserRepository, jwtSvc *JWT) *Service {
	return &Service{Users: users, JWT: jwtSvc}
}

// Register creates a user and returns a signed token for the new account.
func (s *Service) Register(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperror.NewValidation("Email and password are required")
	}
	if len(password) < 6 {
		return "", apperror.NewValidation("Password must be at least 6 characters")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return "", apperror.NewStore("Registration failed", err)
	}

	u := &User{Email: email, PasswordHash: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return "", apperror.NewConflict("User exists")
		}
		return "", apperror.NewStore("Registration failed", err)
	}

	token, err := s.JWT.Sign(u.ID)
	if err != nil {
		return "", apperror.NewStore("Registration failed", err)
	}
	return token, nil
}

// Login verifies credentials and returns a signed token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperror.NewValidation("Email and password are required")
	}

	u, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", apperror.NewAuth("Invalid credentials")
		}
		return "", apperror.NewStore("Login failed", err)
	}

	if !ComparePassword(u.PasswordHash, password) {
		return "", apperror.NewAuth("Invalid credentials")
	}

	token, err := s.JWT.Sign(u.ID)
	if err != nil {
		return "", apperror.NewStore("Login failed", err)
	}
	return token, nil
}
