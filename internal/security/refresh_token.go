package security

import (
	"cinedex/internal/util"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

// GenerateRefreshToken генерирует секрет refresh токена: 32 байта
// (256 бит) из crypto/rand. Возвращает сырой секрет и его sha256-хэш.
//
// Сырой секрет отдается клиенту, в БД сохраняется только хэш.
func GenerateRefreshToken() (string, string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", "", util.LogError("ошибка генерации рефреш токена", err)
	}

	rawToken := base64.RawURLEncoding.EncodeToString(tokenBytes)
	return rawToken, HashRefreshToken(rawToken), nil
}

// HashRefreshToken вычисляет sha256-хэш секрета. Хэш детерминированный,
// по нему выполняется поиск записи в БД при проверке предъявленного токена.
func HashRefreshToken(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))
	return hex.EncodeToString(sum[:])
}
