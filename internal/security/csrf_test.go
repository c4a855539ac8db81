package security_test

import (
	"cinedex/internal/security"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func csrfRequest(headerToken string, cookieToken string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/movie-svc/authentication/refresh", nil)
	if headerToken != "" {
		r.Header.Set(security.XsrfHeader, headerToken)
	}
	if cookieToken != "" {
		r.AddCookie(&http.Cookie{Name: security.XsrfCookie, Value: cookieToken})
	}
	return r
}

func TestValidateCSRFRequest(t *testing.T) {
	token, err := security.GenerateCSRFToken()
	require.NoError(t, err)

	assert.True(t, security.ValidateCSRFRequest(csrfRequest(token, token)))
	assert.False(t, security.ValidateCSRFRequest(csrfRequest(token, "другое-значение")))
	assert.False(t, security.ValidateCSRFRequest(csrfRequest("", token)))
	assert.False(t, security.ValidateCSRFRequest(csrfRequest(token, "")))
	assert.False(t, security.ValidateCSRFRequest(csrfRequest("", "")))
}

func TestGenerateRefreshToken(t *testing.T) {
	rawToken, tokenHash, err := security.GenerateRefreshToken()
	require.NoError(t, err)

	assert.NotEmpty(t, rawToken)
	assert.NotEqual(t, rawToken, tokenHash)

	// хэш детерминированный: по нему ищется запись в БД
	assert.Equal(t, tokenHash, security.HashRefreshToken(rawToken))

	// два вызова не выдают один и тот же секрет
	otherRawToken, _, err := security.GenerateRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, rawToken, otherRawToken)
}
