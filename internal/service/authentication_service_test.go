package service_test

import (
	"cinedex/internal/apperrors"
	"cinedex/internal/model"
	"cinedex/internal/security"
	"cinedex/internal/service"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ===== МОКИ =====

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepository) FindByUUID(ctx context.Context, uuid string) (*model.User, error) {
	args := m.Called(ctx, uuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepository) Exists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockRefreshTokenService struct {
	mock.Mock
}

func (m *mockRefreshTokenService) Issue(ctx context.Context, userUUID string) (string, *model.RefreshToken, error) {
	args := m.Called(ctx, userUUID)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.RefreshToken), args.Error(2)
}

func (m *mockRefreshTokenService) Validate(ctx context.Context, rawToken string) (*model.RefreshToken, error) {
	args := m.Called(ctx, rawToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RefreshToken), args.Error(1)
}

func (m *mockRefreshTokenService) Rotate(ctx context.Context, rawToken string, expectedUserUUID string) (string, *model.RefreshToken, error) {
	args := m.Called(ctx, rawToken, expectedUserUUID)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.RefreshToken), args.Error(2)
}

func (m *mockRefreshTokenService) Revoke(ctx context.Context, rawToken string) error {
	args := m.Called(ctx, rawToken)
	return args.Error(0)
}

type mockJWTService struct {
	mock.Mock
}

func (m *mockJWTService) GenerateAccessToken(userUUID string, email string) (string, error) {
	args := m.Called(userUUID, email)
	return args.String(0), args.Error(1)
}

func (m *mockJWTService) ValidateAccessToken(tokenString string) (*security.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.Claims), args.Error(1)
}

// ===== ТЕСТЫ =====

func TestLogin_Success(t *testing.T) {
	userRepo := new(mockUserRepository)
	refreshSvc := new(mockRefreshTokenService)
	jwtSvc := new(mockJWTService)
	authService := service.NewAuthenticationService(userRepo, refreshSvc, jwtSvc)

	passwordHash, err := security.HashPassword("P@ssw0rd123")
	require.NoError(t, err)

	userRepo.On("FindByEmail", mock.Anything, "user@example.com").Return(&model.User{
		UUID:         "u1",
		Email:        "user@example.com",
		PasswordHash: passwordHash,
	}, nil)
	refreshSvc.On("Issue", mock.Anything, "u1").
		Return("raw-refresh", &model.RefreshToken{TokenHash: "h1", UserUUID: "u1"}, nil)
	jwtSvc.On("GenerateAccessToken", "u1", "user@example.com").Return("access-jwt", nil)

	pair, err := authService.Login(context.Background(), "user@example.com", "P@ssw0rd123")

	require.NoError(t, err)
	assert.Equal(t, "access-jwt", pair.AccessToken)
	assert.Equal(t, "raw-refresh", pair.RefreshToken)
	userRepo.AssertExpectations(t)
	refreshSvc.AssertExpectations(t)
	jwtSvc.AssertExpectations(t)
}

func TestLogin_UserNotFound(t *testing.T) {
	userRepo := new(mockUserRepository)
	refreshSvc := new(mockRefreshTokenService)
	jwtSvc := new(mockJWTService)
	authService := service.NewAuthenticationService(userRepo, refreshSvc, jwtSvc)

	userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").
		Return(nil, assert.AnError)

	_, err := authService.Login(context.Background(), "ghost@example.com", "P@ssw0rd123")

	// несуществующий email не отличим от неверного пароля
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	refreshSvc.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(mockUserRepository)
	refreshSvc := new(mockRefreshTokenService)
	jwtSvc := new(mockJWTService)
	authService := service.NewAuthenticationService(userRepo, refreshSvc, jwtSvc)

	passwordHash, err := security.HashPassword("P@ssw0rd123")
	require.NoError(t, err)

	userRepo.On("FindByEmail", mock.Anything, "user@example.com").Return(&model.User{
		UUID:         "u1",
		Email:        "user@example.com",
		PasswordHash: passwordHash,
	}, nil)

	_, err = authService.Login(context.Background(), "user@example.com", "неверный")

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	refreshSvc.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
	jwtSvc.AssertNotCalled(t, "GenerateAccessToken", mock.Anything, mock.Anything)
}

func TestRefresh_Success(t *testing.T) {
	userRepo := new(mockUserRepository)
	refreshSvc := new(mockRefreshTokenService)
	jwtSvc := new(mockJWTService)
	authService := service.NewAuthenticationService(userRepo, refreshSvc, jwtSvc)

	rotated := &model.RefreshToken{
		TokenHash: "h2",
		UserUUID:  "u1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	refreshSvc.On("Rotate", mock.Anything, "raw-old", "").Return("raw-new", rotated, nil)
	// email в новом access токене берётся из справочника, а не из
	// состояния на момент выдачи старого токена
	userRepo.On("FindByUUID", mock.Anything, "u1").Return(&model.User{
		UUID:  "u1",
		Email: "renamed@example.com",
	}, nil)
	jwtSvc.On("GenerateAccessToken", "u1", "renamed@example.com").Return("access-jwt-2", nil)

	pair, err := authService.Refresh(context.Background(), "raw-old")

	require.NoError(t, err)
	assert.Equal(t, "access-jwt-2", pair.AccessToken)
	assert.Equal(t, "raw-new", pair.RefreshToken)
	jwtSvc.AssertExpectations(t)
}

func TestRefresh_RotateError(t *testing.T) {
	userRepo := new(mockUserRepository)
	refreshSvc := new(mockRefreshTokenService)
	jwtSvc := new(mockJWTService)
	authService := service.NewAuthenticationService(userRepo, refreshSvc, jwtSvc)

	refreshSvc.On("Rotate", mock.Anything, "raw-old", "").
		Return("", nil, apperrors.ErrRefreshTokenRevoked)

	_, err := authService.Refresh(context.Background(), "raw-old")

	// ошибка ротации уходит наверх как есть, обработчик по ней
	// строит единый 401 ответ
	assert.ErrorIs(t, err, apperrors.ErrRefreshTokenRevoked)
	userRepo.AssertNotCalled(t, "FindByUUID", mock.Anything, mock.Anything)
	jwtSvc.AssertNotCalled(t, "GenerateAccessToken", mock.Anything, mock.Anything)
}

func TestLogout_DelegatesRevoke(t *testing.T) {
	userRepo := new(mockUserRepository)
	refreshSvc := new(mockRefreshTokenService)
	jwtSvc := new(mockJWTService)
	authService := service.NewAuthenticationService(userRepo, refreshSvc, jwtSvc)

	refreshSvc.On("Revoke", mock.Anything, "raw-refresh").Return(nil)

	assert.NoError(t, authService.Logout(context.Background(), "raw-refresh"))
	refreshSvc.AssertExpectations(t)
}
