package handler_test

import (
	"cinedex/internal/apperrors"
	"cinedex/internal/handler"
	"cinedex/internal/model"
	"cinedex/internal/model/requestresponse"
	"cinedex/internal/security"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthenticationService struct {
	mock.Mock
}

func (m *mockAuthenticationService) Login(ctx context.Context, email, password string) (*model.TokensPair, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TokensPair), args.Error(1)
}

func (m *mockAuthenticationService) Refresh(ctx context.Context, rawRefreshToken string) (*model.TokensPair, error) {
	args := m.Called(ctx, rawRefreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TokensPair), args.Error(1)
}

func (m *mockAuthenticationService) Logout(ctx context.Context, rawRefreshToken string) error {
	args := m.Called(ctx, rawRefreshToken)
	return args.Error(0)
}

func newAuthHandler(authService *mockAuthenticationService) *handler.AuthenticationHandler {
	return handler.NewAuthenticationHandler(authService, 168*time.Hour)
}

// refreshRequest собирает валидный запрос на ротацию: refresh токен
// в cookie и совпадающая пара CSRF cookie + заголовок
func refreshRequest(rawRefreshToken string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/movie-svc/authentication/refresh", nil)
	if rawRefreshToken != "" {
		r.AddCookie(&http.Cookie{Name: security.RefreshTokenCookie, Value: rawRefreshToken})
	}
	r.AddCookie(&http.Cookie{Name: security.XsrfCookie, Value: "csrf-token"})
	r.Header.Set(security.XsrfHeader, "csrf-token")
	return r
}

func decodeError(t *testing.T, body *httptest.ResponseRecorder) requestresponse.ErrorResponse {
	t.Helper()
	var resp requestresponse.ErrorResponse
	require.NoError(t, json.NewDecoder(body.Body).Decode(&resp))
	return resp
}

// cookieByName достаёт Set-Cookie из ответа
func cookieByName(t *testing.T, recorder *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

// ===== LOGIN =====

func TestLogin_SetsCookiesAndReturnsAccessToken(t *testing.T) {
	authService := new(mockAuthenticationService)
	authService.On("Login", mock.Anything, "user@example.com", "P@ssw0rd123").
		Return(&model.TokensPair{AccessToken: "access-jwt", RefreshToken: "raw-refresh"}, nil)
	h := newAuthHandler(authService)

	recorder := httptest.NewRecorder()
	body := strings.NewReader(`{"email":"user@example.com","password":"P@ssw0rd123"}`)
	h.Login(recorder, httptest.NewRequest(http.MethodPost, "/movie-svc/authentication/login", body))

	assert.Equal(t, 200, recorder.Code)

	var resp requestresponse.LoginResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "access-jwt", resp.Response.AccessToken)

	// refresh токен уходит только в HttpOnly cookie, в теле его нет
	refreshCookie := cookieByName(t, recorder, security.RefreshTokenCookie)
	require.NotNil(t, refreshCookie)
	assert.Equal(t, "raw-refresh", refreshCookie.Value)
	assert.True(t, refreshCookie.HttpOnly)
	assert.True(t, refreshCookie.Secure)
	assert.Equal(t, "/movie-svc/authentication", refreshCookie.Path)

	// CSRF cookie для double-submit схемы читается из JavaScript
	csrfCookie := cookieByName(t, recorder, security.XsrfCookie)
	require.NotNil(t, csrfCookie)
	assert.False(t, csrfCookie.HttpOnly)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	authService := new(mockAuthenticationService)
	authService.On("Login", mock.Anything, "user@example.com", "неверный").
		Return(nil, apperrors.ErrInvalidCredentials)
	h := newAuthHandler(authService)

	recorder := httptest.NewRecorder()
	body := strings.NewReader(`{"email":"user@example.com","password":"неверный"}`)
	h.Login(recorder, httptest.NewRequest(http.MethodPost, "/movie-svc/authentication/login", body))

	assert.Equal(t, 401, recorder.Code)
	assert.Nil(t, cookieByName(t, recorder, security.RefreshTokenCookie))
}

func TestLogin_EmptyFields(t *testing.T) {
	authService := new(mockAuthenticationService)
	h := newAuthHandler(authService)

	recorder := httptest.NewRecorder()
	body := strings.NewReader(`{"email":"user@example.com"}`)
	h.Login(recorder, httptest.NewRequest(http.MethodPost, "/movie-svc/authentication/login", body))

	assert.Equal(t, 400, recorder.Code)
	authService.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

// ===== REFRESH =====

func TestRefreshToken_ErrorCollapsing(t *testing.T) {
	// любая проблема с токеном даёт один и тот же ответ: по нему
	// нельзя определить, существует ли токен и в каком он состоянии
	testCases := []struct {
		name string
		err  error
	}{
		{"не найден", apperrors.ErrRefreshTokenNotFound},
		{"просрочен", apperrors.ErrRefreshTokenExpired},
		{"отозван", apperrors.ErrRefreshTokenRevoked},
		{"реплей или проигранный CAS", apperrors.ErrRefreshTokenInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			authService := new(mockAuthenticationService)
			authService.On("Refresh", mock.Anything, "raw-refresh").Return(nil, tc.err)
			h := newAuthHandler(authService)

			recorder := httptest.NewRecorder()
			h.RefreshToken(recorder, refreshRequest("raw-refresh"))

			assert.Equal(t, 401, recorder.Code)
			resp := decodeError(t, recorder)
			assert.Equal(t, handler.InvalidRefreshTokenMessage, resp.Error.Text)
		})
	}
}

func TestRefreshToken_MissingCookie(t *testing.T) {
	authService := new(mockAuthenticationService)
	h := newAuthHandler(authService)

	recorder := httptest.NewRecorder()
	h.RefreshToken(recorder, refreshRequest(""))

	// отсутствие cookie не отличимо от невалидного токена
	assert.Equal(t, 401, recorder.Code)
	resp := decodeError(t, recorder)
	assert.Equal(t, handler.InvalidRefreshTokenMessage, resp.Error.Text)
	authService.AssertNotCalled(t, "Refresh", mock.Anything, mock.Anything)
}

func TestRefreshToken_CSRFMismatch(t *testing.T) {
	authService := new(mockAuthenticationService)
	h := newAuthHandler(authService)

	r := refreshRequest("raw-refresh")
	r.Header.Set(security.XsrfHeader, "другое-значение")

	recorder := httptest.NewRecorder()
	h.RefreshToken(recorder, r)

	assert.Equal(t, 403, recorder.Code)
	authService.AssertNotCalled(t, "Refresh", mock.Anything, mock.Anything)
}

func TestRefreshToken_Success(t *testing.T) {
	authService := new(mockAuthenticationService)
	authService.On("Refresh", mock.Anything, "raw-old").
		Return(&model.TokensPair{AccessToken: "access-jwt-2", RefreshToken: "raw-new"}, nil)
	h := newAuthHandler(authService)

	recorder := httptest.NewRecorder()
	h.RefreshToken(recorder, refreshRequest("raw-old"))

	assert.Equal(t, 200, recorder.Code)

	var resp requestresponse.RefreshTokenResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "access-jwt-2", resp.Response.AccessToken)

	// в cookie уезжает уже новый refresh токен
	refreshCookie := cookieByName(t, recorder, security.RefreshTokenCookie)
	require.NotNil(t, refreshCookie)
	assert.Equal(t, "raw-new", refreshCookie.Value)
}

func TestRefreshToken_StoreUnavailable(t *testing.T) {
	authService := new(mockAuthenticationService)
	authService.On("Refresh", mock.Anything, "raw-refresh").
		Return(nil, apperrors.ErrUnavailable)
	h := newAuthHandler(authService)

	recorder := httptest.NewRecorder()
	h.RefreshToken(recorder, refreshRequest("raw-refresh"))

	// недоступность хранилища не 401: клиент не должен посчитать
	// свой токен протухшим из-за сбоя на нашей стороне
	assert.Equal(t, 503, recorder.Code)
}

// ===== LOGOUT =====

func TestLogout_RevokesAndClearsCookie(t *testing.T) {
	authService := new(mockAuthenticationService)
	authService.On("Logout", mock.Anything, "raw-refresh").Return(nil)
	h := newAuthHandler(authService)

	r := httptest.NewRequest(http.MethodPost, "/movie-svc/authentication/logout", nil)
	r.AddCookie(&http.Cookie{Name: security.RefreshTokenCookie, Value: "raw-refresh"})

	recorder := httptest.NewRecorder()
	h.Logout(recorder, r)

	assert.Equal(t, http.StatusNoContent, recorder.Code)

	cleared := cookieByName(t, recorder, security.RefreshTokenCookie)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
	authService.AssertExpectations(t)
}

func TestLogout_WithoutCookie(t *testing.T) {
	authService := new(mockAuthenticationService)
	h := newAuthHandler(authService)

	recorder := httptest.NewRecorder()
	h.Logout(recorder, httptest.NewRequest(http.MethodPost, "/movie-svc/authentication/logout", nil))

	// logout без cookie тоже успешен: идемпотентность
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	authService.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
}
