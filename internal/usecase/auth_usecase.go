package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/senda-infinita/internal/config"
	"github.com/senda-infinita/internal/domain"
	"github.com/senda-infinita/internal/domain/repository"
	"github.com/senda-infinita/internal/pkg/errors"
	"github.com/senda-infinita/internal/usecase/dto"
)

// AuthUseCase handles registration and login, issuing HS256 bearer tokens.
// The rest of the service only ever sees the resolved AuthUser.
type AuthUseCase struct {
	userRepo repository.UserRepository
	secret   []byte
	tokenTTL time.Duration
	logger   *zap.Logger
}

// NewAuthUseCase creates a new AuthUseCase.
func NewAuthUseCase(userRepo repository.UserRepository, cfg *config.AuthConfig, logger *zap.Logger) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: cfg.TokenTTL,
		logger:   logger,
	}
}

// Register creates a user with a bcrypt-hashed password and issues a token.
func (uc *AuthUseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := uc.userRepo.Create(ctx, &domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     domain.RoleUser,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	return uc.issueToken(user)
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.ErrUserNotFound.Is(err) {
			return nil, errors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	return uc.issueToken(user)
}

func (uc *AuthUseCase) issueToken(user *domain.User) (*dto.AuthResponse, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(uc.tokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.AuthResponse{
		Token: token,
		User: domain.AuthUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}
