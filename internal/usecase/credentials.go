package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"fast-food/internal/data/entity"
	"fast-food/internal/data/repository"
	"fast-food/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// CredentialStore owns password hashing and the lookup behind login.
type CredentialStore interface {
	Register(ctx context.Context, name, email, password string, role entity.UserRole) (*entity.User, error)
	Verify(ctx context.Context, email, password string) (*entity.User, error)
}

type credentialStore struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewCredentialStore(users repository.UserRepository, log *zap.Logger) CredentialStore {
	return &credentialStore{
		users: users,
		log:   log.With(zap.String("service", "credentials")),
	}
}

// compared against when the email is unknown so both failure paths cost one bcrypt round
var dummyHash = sync.OnceValue(func() string {
	hash, _ := utils.HashPassword("fast-food-placeholder-password")
	return hash
})

func (s *credentialStore) Register(ctx context.Context, name, email, password string, role entity.UserRole) (*entity.User, error) {
	hashed, err := utils.HashPassword(password)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, &ValidationError{Fields: map[string]string{"password": "Maximum length is 72 bytes"}}
	}
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(name),
		Email:        normalizeEmail(email),
		PasswordHash: hashed,
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			s.log.Info("Registration with existing email", zap.String("email", user.Email))
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("register %s: %w", user.Email, err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))
	return user, nil
}

func (s *credentialStore) Verify(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("verify credentials: %w", err)
	}

	if user == nil {
		utils.CheckPasswordHash(password, dummyHash())
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.log.Info("Password mismatch", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
