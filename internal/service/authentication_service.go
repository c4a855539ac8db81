package service

import (
	"cinedex/internal/apperrors"
	"cinedex/internal/model"
	"cinedex/internal/ports"
	"cinedex/internal/security"
	"cinedex/internal/util"
	"context"
)

// AuthenticationService : тонкая оркестрация над RefreshTokenService
// и JWTService. Проверка учётных данных и выпуск пары токенов.
type AuthenticationService struct {
	userRepository      ports.UserRepository
	refreshTokenService ports.RefreshTokenService
	jwtService          ports.JWTServiceInterface
}

func NewAuthenticationService(
	userRepository ports.UserRepository,
	refreshTokenService ports.RefreshTokenService,
	jwtService ports.JWTServiceInterface,
) *AuthenticationService {
	return &AuthenticationService{
		userRepository:      userRepository,
		refreshTokenService: refreshTokenService,
		jwtService:          jwtService,
	}
}

// Login проверяет учётные данные и выпускает новую пару токенов.
// Несуществующий email и неверный пароль дают одну и ту же ошибку,
// чтобы нельзя было перебором выяснить, зарегистрирован ли адрес.
func (s *AuthenticationService) Login(ctx context.Context, email, password string) (*model.TokensPair, error) {
	user, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	rawRefreshToken, _, err := s.refreshTokenService.Issue(ctx, user.UUID)
	if err != nil {
		return nil, util.LogError("ошибка выдачи refresh токена", err)
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.UUID, user.Email)
	if err != nil {
		return nil, util.LogError("ошибка генерации access токена", err)
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: rawRefreshToken,
	}, nil
}

// Refresh ротирует refresh токен и выпускает новый access токен.
// Email берётся из справочника пользователей, а не из старого токена:
// после смены адреса в новых токенах не должно остаться старое значение.
func (s *AuthenticationService) Refresh(ctx context.Context, rawRefreshToken string) (*model.TokensPair, error) {
	newRawToken, refreshToken, err := s.refreshTokenService.Rotate(ctx, rawRefreshToken, "")
	if err != nil {
		return nil, err
	}

	user, err := s.userRepository.FindByUUID(ctx, refreshToken.UserUUID)
	if err != nil {
		return nil, util.LogError("не удалось найти владельца токена", err)
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.UUID, user.Email)
	if err != nil {
		return nil, util.LogError("ошибка генерации access токена", err)
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: newRawToken,
	}, nil
}

// Logout идемпотентно отзывает refresh токен
func (s *AuthenticationService) Logout(ctx context.Context, rawRefreshToken string) error {
	return s.refreshTokenService.Revoke(ctx, rawRefreshToken)
}
