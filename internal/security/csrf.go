package security

import (
	"cinedex/internal/util"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"net/http"
)

const (
	// XsrfHeader : заголовок, в котором клиент присылает CSRF токен.
	// SPA читает его значение из cookie XsrfCookie и возвращает серверу.
	XsrfHeader = "X-XSRF-TOKEN"

	// XsrfCookie : cookie с CSRF токеном. Специально не HttpOnly,
	// чтобы JavaScript мог прочитать значение и положить его в заголовок.
	XsrfCookie = "XSRF-TOKEN"

	// RefreshTokenCookie : HttpOnly cookie с refresh токеном
	RefreshTokenCookie = "RT"
)

// GenerateCSRFToken генерирует случайный CSRF токен для double-submit схемы
func GenerateCSRFToken() (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", util.LogError("ошибка генерации CSRF токена", err)
	}
	return base64.RawURLEncoding.EncodeToString(tokenBytes), nil
}

// ValidateCSRFRequest сверяет заголовок X-XSRF-TOKEN со значением cookie.
// Запрос валиден, только если оба присутствуют и совпадают.
func ValidateCSRFRequest(r *http.Request) bool {
	headerToken := r.Header.Get(XsrfHeader)
	if headerToken == "" {
		return false
	}

	cookie, err := r.Cookie(XsrfCookie)
	if err != nil || cookie.Value == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(headerToken), []byte(cookie.Value)) == 1
}
