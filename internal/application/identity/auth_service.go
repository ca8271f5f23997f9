package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kosmanager/backend/internal/domain/identity"
	"github.com/kosmanager/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// TokenIssuer signs access tokens for authenticated owners
type TokenIssuer interface {
	IssueToken(userID uuid.UUID, email string, plan identity.Plan) (token string, expiresAt time.Time, err error)
}

// AuthService handles registration, login and plan changes
type AuthService struct {
	userRepo identity.UserRepository
	tokens   TokenIssuer
	logger   *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.UserRepository, tokens TokenIssuer, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates a new owner account on the free plan
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Email is already registered")
	}

	user, err := identity.NewUser(email, req.Password, req.FullName)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("owner account registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	response := ToUserResponse(user)
	return &response, nil
}

// Login verifies credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid email or password")
		}
		return nil, err
	}

	if !user.VerifyPassword(req.Password) {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid email or password")
	}

	token, expiresAt, err := s.tokens.IssueToken(user.ID, user.Email, user.Plan)
	if err != nil {
		s.logger.Error("failed to issue token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to issue token")
	}

	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      ToUserResponse(user),
	}, nil
}

// GetProfile returns the account behind an owner id
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// UpgradePlan switches the account to the pro plan. Payment collection
// happens outside this system; this is the post-payment hook.
func (s *AuthService) UpgradePlan(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := user.UpgradeToPro(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("account upgraded to pro", zap.String("user_id", user.ID.String()))

	response := ToUserResponse(user)
	return &response, nil
}
