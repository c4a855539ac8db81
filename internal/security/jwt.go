package security

import (
	"cinedex/config"
	"cinedex/internal/util"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	UserContextKey contextKey = "user"

	// ClockSkewLeeway : допуск на рассинхронизацию часов при проверке exp/iat
	ClockSkewLeeway = 30 * time.Second
)

// Ошибки проверки access токена. Expired отличается от остальных:
// по нему клиент понимает, что пора идти на /refresh, а не логиниться заново.
var (
	ErrTokenMalformed        = errors.New("токен имеет неверный формат")
	ErrTokenSignatureInvalid = errors.New("подпись токена невалидна")
	ErrTokenExpired          = errors.New("срок действия токена истёк")
)

type Claims struct {
	UserUUID string `json:"user_uuid"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService подписывает и проверяет access токены.
// Access токен stateless: проверка выполняется только криптографически
// и по сроку действия, без обращения к БД.
type JWTService struct {
	secretKey      []byte
	issuer         string
	audience       string
	accessTokenTTL time.Duration
}

// NewJWTService проверяет конфигурацию подписи и возвращает сервис.
// Короткий ключ или пустой issuer/audience — ошибка конфигурации,
// приложение не должно стартовать.
func NewJWTService(cfg *config.JWTConfig) (*JWTService, error) {
	if len(cfg.SecretKey) < 32 {
		return nil, fmt.Errorf("ключ подписи должен быть не короче 32 байт, получено %d", len(cfg.SecretKey))
	}
	if cfg.Issuer == "" || cfg.Audience == "" {
		return nil, fmt.Errorf("issuer и audience обязательны")
	}

	accessTokenTTL, err := time.ParseDuration(cfg.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга access_token_ttl: %w", err)
	}

	return &JWTService{
		secretKey:      []byte(cfg.SecretKey),
		issuer:         cfg.Issuer,
		audience:       cfg.Audience,
		accessTokenTTL: accessTokenTTL,
	}, nil
}

// GenerateAccessToken выпускает подписанный access токен для пользователя
func (service *JWTService) GenerateAccessToken(userUUID string, email string) (string, error) {
	now := time.Now().UTC()

	claims := Claims{
		UserUUID: userUUID,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userUUID,
			Issuer:    service.issuer,
			Audience:  jwt.ClaimStrings{service.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(service.accessTokenTTL)),
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := jwtToken.SignedString(service.secretKey)
	if err != nil {
		return "", util.LogError("ошибка подписи токена", err)
	}

	return accessToken, nil
}

// ValidateAccessToken проверяет подпись, issuer, audience и срок действия.
// Возвращает ErrTokenMalformed, ErrTokenSignatureInvalid или ErrTokenExpired.
func (service *JWTService) ValidateAccessToken(jwtTokenStr string) (*Claims, error) {
	var claims = &Claims{}

	jwtToken, err := jwt.ParseWithClaims(jwtTokenStr, claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Header["alg"] != jwt.SigningMethodHS256.Alg() {
				return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
			}
			return service.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(service.issuer),
		jwt.WithAudience(service.audience),
		jwt.WithLeeway(ClockSkewLeeway),
	)

	switch {
	case err == nil && jwtToken.Valid:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenInvalidIssuer),
		errors.Is(err, jwt.ErrTokenInvalidAudience):
		return nil, ErrTokenSignatureInvalid
	default:
		return nil, ErrTokenMalformed
	}
}

func JWTMiddleware(jwtService *JWTService) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authorizationHeader := request.Header.Get("Authorization")
			if !strings.HasPrefix(authorizationHeader, "Bearer ") {
				http.Error(writer, "unauthorized", http.StatusUnauthorized)
				return
			}

			token := strings.TrimPrefix(authorizationHeader, "Bearer ")

			claims, err := jwtService.ValidateAccessToken(token)
			if err != nil {
				http.Error(writer, "unauthorized", http.StatusUnauthorized)
				return
			}

			req := request.WithContext(context.WithValue(request.Context(), UserContextKey, claims))
			next.ServeHTTP(writer, req)
		})
	}
}

func GetClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(UserContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, fmt.Errorf("пользователь не авторизован")
	}
	return claims, nil
}
