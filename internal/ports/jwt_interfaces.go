package ports

import "cinedex/internal/security"

type JWTServiceInterface interface {
	GenerateAccessToken(userUUID string, email string) (string, error)
	ValidateAccessToken(tokenStr string) (*security.Claims, error)
}
