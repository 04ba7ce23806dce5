package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/repository"
	"homelet-backend/internal/security"
)

type authService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.AuthTokenRepository
	tokens    security.TokenManager
}

func NewAuthService(
	userRepo repository.UserRepository,
	tokenRepo repository.AuthTokenRepository,
	tokens security.TokenManager,
) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		tokens:    tokens,
	}
}

func (s *authService) Register(ctx context.Context, username, password, fullName, phone string, role domain.UserRole) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.NewValidation("username and password are required")
	}
	if role != domain.RoleTenant && role != domain.RoleLandlord {
		return nil, domain.NewValidation("role must be TENANT or LANDLORD")
	}
	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, domain.NewConflict("username is already taken")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		FullName:     fullName,
		Phone:        phone,
		Role:         role,
		Status:       domain.UserStatusActive,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, domain.NewAuthorization("invalid username or password")
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.NewAuthorization("invalid username or password")
	}
	if user.Status == domain.UserStatusBlocked {
		return "", nil, domain.NewAuthorization("account is blocked")
	}

	token, jti, expiresAt, err := s.tokens.GenerateAccessToken(user.ID, user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}
	if err := s.tokenRepo.Create(ctx, &domain.AuthToken{
		JTI:       jti,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	}); err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *authService) Logout(ctx context.Context, jti string) error {
	return s.tokenRepo.Revoke(ctx, jti)
}

// ResolveToken validates the JWT, checks it has not been revoked via
// logout, and loads the principal. Returns the JTI so logout can target
// the presented token.
func (s *authService) ResolveToken(ctx context.Context, tokenString string) (*domain.User, string, error) {
	claims, err := s.tokens.ValidateToken(tokenString)
	if err != nil {
		return nil, "", domain.NewAuthorization("invalid or expired token")
	}

	record, err := s.tokenRepo.GetByJTI(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", domain.NewAuthorization("unknown token")
		}
		return nil, "", err
	}
	if record.Revoked {
		return nil, "", domain.NewAuthorization("token has been revoked")
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", domain.NewAuthorization("unknown user")
		}
		return nil, "", err
	}
	if user.Status == domain.UserStatusBlocked {
		return nil, "", domain.NewAuthorization("account is blocked")
	}

	return user, claims.ID, nil
}
