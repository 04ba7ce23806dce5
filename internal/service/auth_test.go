package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/security"
	"homelet-backend/internal/service"
)

func newAuthService() (service.AuthService, *MockUserRepo, *MockTokenRepo, *MockTokenManager) {
	userRepo := new(MockUserRepo)
	tokenRepo := new(MockTokenRepo)
	tokens := new(MockTokenManager)
	return service.NewAuthService(userRepo, tokenRepo, tokens), userRepo, tokenRepo, tokens
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, userRepo, _, _ := newAuthService()
		userRepo.On("GetByUsername", ctx, "tina").Return(nil, sql.ErrNoRows)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := svc.Register(ctx, "tina", "hunter2", "Tina Tenant", "555-0101", domain.RoleTenant)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleTenant, user.Role)
		assert.Equal(t, domain.UserStatusActive, user.Status)
		// The stored hash must verify against the original password.
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2")))
	})

	t.Run("Admin self-registration rejected", func(t *testing.T) {
		svc, _, _, _ := newAuthService()
		_, err := svc.Register(ctx, "eve", "pw", "", "", domain.RoleAdmin)
		assertKind(t, err, domain.ErrKindValidation)
	})

	t.Run("Username taken", func(t *testing.T) {
		svc, userRepo, _, _ := newAuthService()
		userRepo.On("GetByUsername", ctx, "tina").Return(&domain.User{ID: 1, Username: "tina"}, nil)

		_, err := svc.Register(ctx, "tina", "pw", "", "", domain.RoleTenant)
		assertKind(t, err, domain.ErrKindConflict)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)

	activeUser := func() *domain.User {
		return &domain.User{
			ID:           1,
			Username:     "tina",
			PasswordHash: string(hash),
			Role:         domain.RoleTenant,
			Status:       domain.UserStatusActive,
		}
	}

	t.Run("Success records the token and last login", func(t *testing.T) {
		svc, userRepo, tokenRepo, tokens := newAuthService()
		expiresAt := time.Now().Add(time.Hour)
		userRepo.On("GetByUsername", ctx, "tina").Return(activeUser(), nil)
		tokens.On("GenerateAccessToken", int64(1), "tina", domain.RoleTenant).Return("signed.jwt", "jti-1", expiresAt, nil)
		tokenRepo.On("Create", ctx, mock.MatchedBy(func(tok *domain.AuthToken) bool {
			return tok.JTI == "jti-1" && tok.UserID == 1
		})).Return(nil)
		userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		token, user, err := svc.Login(ctx, "tina", "hunter2")
		assert.NoError(t, err)
		assert.Equal(t, "signed.jwt", token)
		assert.NotNil(t, user.LastLoginAt)
	})

	t.Run("Unknown username and wrong password read the same", func(t *testing.T) {
		svc, userRepo, _, _ := newAuthService()
		userRepo.On("GetByUsername", ctx, "ghost").Return(nil, sql.ErrNoRows)
		userRepo.On("GetByUsername", ctx, "tina").Return(activeUser(), nil)

		_, _, errUnknown := svc.Login(ctx, "ghost", "hunter2")
		_, _, errWrongPw := svc.Login(ctx, "tina", "wrong")
		assertKind(t, errUnknown, domain.ErrKindAuthorization)
		assertKind(t, errWrongPw, domain.ErrKindAuthorization)
		assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
	})

	t.Run("Blocked account", func(t *testing.T) {
		svc, userRepo, _, _ := newAuthService()
		blocked := activeUser()
		blocked.Status = domain.UserStatusBlocked
		userRepo.On("GetByUsername", ctx, "tina").Return(blocked, nil)

		_, _, err := svc.Login(ctx, "tina", "hunter2")
		assertKind(t, err, domain.ErrKindAuthorization)
	})
}

func TestAuthService_ResolveToken(t *testing.T) {
	ctx := context.Background()

	claims := &security.UserClaims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ID: "jti-1",
		},
	}

	t.Run("Valid token resolves the principal", func(t *testing.T) {
		svc, userRepo, tokenRepo, tokens := newAuthService()
		tokens.On("ValidateToken", "signed.jwt").Return(claims, nil)
		tokenRepo.On("GetByJTI", ctx, "jti-1").Return(&domain.AuthToken{JTI: "jti-1", UserID: 1}, nil)
		userRepo.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Status: domain.UserStatusActive}, nil)

		user, jti, err := svc.ResolveToken(ctx, "signed.jwt")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "jti-1", jti)
	})

	t.Run("Revoked after logout", func(t *testing.T) {
		svc, _, tokenRepo, tokens := newAuthService()
		tokens.On("ValidateToken", "signed.jwt").Return(claims, nil)
		tokenRepo.On("GetByJTI", ctx, "jti-1").Return(&domain.AuthToken{JTI: "jti-1", UserID: 1, Revoked: true}, nil)

		_, _, err := svc.ResolveToken(ctx, "signed.jwt")
		assertKind(t, err, domain.ErrKindAuthorization)
	})

	t.Run("Invalid signature", func(t *testing.T) {
		svc, _, _, tokens := newAuthService()
		tokens.On("ValidateToken", "garbage").Return(nil, security.ErrInvalidToken)

		_, _, err := svc.ResolveToken(ctx, "garbage")
		assertKind(t, err, domain.ErrKindAuthorization)
	})

	t.Run("Blocked user is rejected even with a live token", func(t *testing.T) {
		svc, userRepo, tokenRepo, tokens := newAuthService()
		tokens.On("ValidateToken", "signed.jwt").Return(claims, nil)
		tokenRepo.On("GetByJTI", ctx, "jti-1").Return(&domain.AuthToken{JTI: "jti-1", UserID: 1}, nil)
		userRepo.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Status: domain.UserStatusBlocked}, nil)

		_, _, err := svc.ResolveToken(ctx, "signed.jwt")
		assertKind(t, err, domain.ErrKindAuthorization)
	})
}

func TestAuthService_Logout(t *testing.T) {
	svc, _, tokenRepo, _ := newAuthService()
	tokenRepo.On("Revoke", context.Background(), "jti-1").Return(nil)
	assert.NoError(t, svc.Logout(context.Background(), "jti-1"))
	tokenRepo.AssertExpectations(t)
}
