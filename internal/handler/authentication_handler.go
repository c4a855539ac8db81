package handler

import (
	"cinedex/internal/apperrors"
	"cinedex/internal/model/requestresponse"
	"cinedex/internal/ports"
	"cinedex/internal/security"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"
)

// InvalidRefreshTokenMessage : единственное сообщение, которое клиент
// видит при любой проблеме с refresh токеном. Не найден, просрочен,
// отозван или скомпрометирован — ответ всегда одинаковый, чтобы по
// нему нельзя было определить состояние конкретного токена.
const InvalidRefreshTokenMessage = "Invalid refresh token"

// путь, на который выставляется HttpOnly cookie с refresh токеном:
// refresh и logout, больше он никуда не отправляется
const refreshCookiePath = "/movie-svc/authentication"

type AuthenticationHandler struct {
	ports.AuthenticationService
	refreshTokenTTL time.Duration
}

func NewAuthenticationHandler(
	authenticationService ports.AuthenticationService,
	refreshTokenTTL time.Duration,
) *AuthenticationHandler {
	return &AuthenticationHandler{
		authenticationService,
		refreshTokenTTL,
	}
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Вход по email и паролю. Access токен возвращается в теле, refresh токен уходит в HttpOnly cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса"
// @Success 200 {object} requestresponse.LoginResponse "Успешная аутентификация"
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или пустые поля"
// @Failure 401 {object} requestresponse.ErrorResponse "Неверный email или пароль"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /movie-svc/authentication/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	var req requestresponse.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, 400, "некорректный JSON")
		return
	}

	if req.Email == "" || req.Password == "" {
		sendErrorResponse(w, 400, "email и password обязательны")
		return
	}

	tokens, err := h.AuthenticationService.Login(ctx, req.Email, req.Password)
	if err != nil {
		log.Println(err)
		switch {
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			sendErrorResponse(w, 401, "неверный email или пароль")
		case errors.Is(err, apperrors.ErrUnavailable):
			sendErrorResponse(w, 503, "сервис временно недоступен")
		default:
			sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		}
		return
	}

	if err := h.setAuthCookies(w, tokens.RefreshToken); err != nil {
		sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		return
	}

	resp := requestresponse.LoginResponse{}
	resp.Response.AccessToken = tokens.AccessToken

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// RefreshToken godoc
// @Summary Обновление токенов
// @Description Ротирует refresh токен из cookie и возвращает новый access токен. Требует заголовок X-XSRF-TOKEN
// @Tags Authentication
// @Produce json
// @Param X-XSRF-TOKEN header string true "CSRF токен из cookie XSRF-TOKEN"
// @Success 200 {object} requestresponse.RefreshTokenResponse "Новый access токен"
// @Failure 401 {object} requestresponse.ErrorResponse "Invalid refresh token"
// @Failure 403 {object} requestresponse.ErrorResponse "CSRF проверка не пройдена"
// @Failure 503 {object} requestresponse.ErrorResponse "Хранилище недоступно"
// @Router /movie-svc/authentication/refresh [post]
func (h *AuthenticationHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	if !security.ValidateCSRFRequest(r) {
		sendErrorResponse(w, 403, "CSRF проверка не пройдена")
		return
	}

	cookie, err := r.Cookie(security.RefreshTokenCookie)
	if err != nil || cookie.Value == "" {
		sendErrorResponse(w, 401, InvalidRefreshTokenMessage)
		return
	}

	tokens, err := h.AuthenticationService.Refresh(ctx, cookie.Value)
	if err != nil {
		// конкретная причина остаётся в серверных логах,
		// клиент всегда получает один и тот же ответ
		log.Println(err)
		switch {
		case apperrors.IsRefreshTokenError(err):
			sendErrorResponse(w, 401, InvalidRefreshTokenMessage)
		case errors.Is(err, apperrors.ErrUnavailable):
			sendErrorResponse(w, 503, "сервис временно недоступен")
		default:
			sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		}
		return
	}

	if err := h.setAuthCookies(w, tokens.RefreshToken); err != nil {
		sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		return
	}

	resp := requestresponse.RefreshTokenResponse{}
	resp.Response.AccessToken = tokens.AccessToken

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// Logout godoc
// @Summary Завершение сессии
// @Description Идемпотентно отзывает refresh токен и очищает cookie
// @Tags Authentication
// @Success 204 "Сессия завершена"
// @Failure 503 {object} requestresponse.ErrorResponse "Хранилище недоступно"
// @Router /movie-svc/authentication/logout [post]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cookie, err := r.Cookie(security.RefreshTokenCookie); err == nil && cookie.Value != "" {
		if err := h.AuthenticationService.Logout(ctx, cookie.Value); err != nil {
			log.Println(err)
			if errors.Is(err, apperrors.ErrUnavailable) {
				sendErrorResponse(w, 503, "сервис временно недоступен")
				return
			}
		}
	}

	clearRefreshTokenCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// setAuthCookies выставляет HttpOnly cookie с refresh токеном
// и читаемый из JavaScript cookie с CSRF токеном (double-submit)
func (h *AuthenticationHandler) setAuthCookies(w http.ResponseWriter, rawRefreshToken string) error {
	http.SetCookie(w, &http.Cookie{
		Name:     security.RefreshTokenCookie,
		Value:    rawRefreshToken,
		Path:     refreshCookiePath,
		MaxAge:   int(h.refreshTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})

	csrfToken, err := security.GenerateCSRFToken()
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     security.XsrfCookie,
		Value:    csrfToken,
		Path:     "/",
		MaxAge:   int(h.refreshTokenTTL.Seconds()),
		HttpOnly: false,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})

	return nil
}

func clearRefreshTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     security.RefreshTokenCookie,
		Value:    "",
		Path:     refreshCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

func sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(requestresponse.ErrorResponse{
		Error: requestresponse.ErrorDetail{
			Code: statusCode,
			Text: message,
		},
	})
}
