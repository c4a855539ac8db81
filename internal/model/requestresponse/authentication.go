package requestresponse

// LoginRequest : тело запроса на аутентификацию
type LoginRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"P@ssw0rd123"`
}

// LoginResponse : ответ на успешную аутентификацию.
// Refresh токен в тело не попадает, он уходит в HttpOnly cookie.
type LoginResponse struct {
	Response struct {
		AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	} `json:"response"`
}

// RefreshTokenResponse : ответ на успешное обновление пары токенов
type RefreshTokenResponse struct {
	Response struct {
		AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	} `json:"response"`
}

// ErrorDetail : описание ошибки
type ErrorDetail struct {
	Code int    `json:"code" example:"401"`
	Text string `json:"text" example:"Invalid refresh token"`
}

// ErrorResponse : тело ответа с ошибкой
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
