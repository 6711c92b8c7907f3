package services

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/laagvlieger/skills-integrate-mcp-with-copilot/internal/auth"
	"github.com/laagvlieger/skills-integrate-mcp-with-copilot/internal/store"
	"github.com/laagvlieger/skills-integrate-mcp-with-copilot/types"
)

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 8

var (
	// ErrWeakPassword rejects registration with a too-short password.
	ErrWeakPassword = errors.New("password too short")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so a login failure never reveals which part was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// CredentialRepository defines storage operations for user credentials.
type CredentialRepository interface {
	GetByEmail(ctx context.Context, email string) (types.UserCredential, error)
	Create(ctx context.Context, cred types.UserCredential) (types.UserCredential, error)
}

// UserService encapsulates registration and login use-cases.
type UserService struct {
	repo CredentialRepository
}

func NewUserService(repo CredentialRepository) *UserService {
	return &UserService{repo: repo}
}

// GetByEmail returns the stored credential for a normalized email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (types.UserCredential, error) {
	return s.repo.GetByEmail(ctx, strings.ToLower(email))
}

// Register creates a credential for a new account. The email is
// normalized, the salt is fresh per registration, and only the derived
// hash is stored.
func (s *UserService) Register(ctx context.Context, email, password string) (types.UserCredential, error) {
	email = strings.ToLower(email)

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return types.UserCredential{}, store.ErrAlreadyExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return types.UserCredential{}, err
	}

	if len(password) < MinPasswordLength {
		return types.UserCredential{}, ErrWeakPassword
	}

	salt, err := auth.NewSalt()
	if err != nil {
		return types.UserCredential{}, fmt.Errorf("generate salt: %w", err)
	}

	return s.repo.Create(ctx, types.UserCredential{
		Email:        email,
		Salt:         hex.EncodeToString(salt),
		PasswordHash: auth.HashPassword(password, salt),
	})
}

// Authenticate verifies a login attempt and returns the normalized email
// on success. Unknown emails and wrong passwords fail identically.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(email)

	cred, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	salt, err := hex.DecodeString(cred.Salt)
	if err != nil {
		return "", fmt.Errorf("decode stored salt: %w", err)
	}

	if !auth.VerifyPassword(password, salt, cred.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return cred.Email, nil
}
