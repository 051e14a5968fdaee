package usecase

import (
	"context"

	"fast-food/internal/data/entity"
	"fast-food/internal/dto/request"
	"fast-food/internal/dto/response"
	"fast-food/pkg/token"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	credentials CredentialStore
	tokens      *token.Service
	log         *zap.Logger
}

func NewAuthService(credentials CredentialStore, tokens *token.Service, log *zap.Logger) AuthService {
	return &authService{
		credentials: credentials,
		tokens:      tokens,
		log:         log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	user, err := s.credentials.Register(ctx, req.Name, req.Email, req.Password, entity.RoleCustomer)
	if err != nil {
		return nil, err
	}

	return s.issue(user, "User registered successfully")
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	user, err := s.credentials.Verify(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))
	return s.issue(user, "Login successful")
}

func (s *authService) issue(user *entity.User, message string) (*response.AuthResponse, error) {
	signed, err := s.tokens.Issue(user.ID.String(), user.Email, string(user.Role))
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, err
	}

	return &response.AuthResponse{
		Message: message,
		Token:   signed,
		User:    response.UserToResponse(user),
	}, nil
}
