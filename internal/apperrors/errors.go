package apperrors

import "errors"

// Ошибки аутентификации. Внутри сервиса различаются для логирования
// и мониторинга, но клиенту при работе с refresh токеном всегда
// возвращается один и тот же ответ 401 "Invalid refresh token",
// чтобы нельзя было перебором выяснить состояние конкретного токена.
var (
	// ErrInvalidCredentials : неверная пара email/пароль при логине
	ErrInvalidCredentials = errors.New("неверный email или пароль")

	// ErrRefreshTokenNotFound : токен не найден в хранилище
	ErrRefreshTokenNotFound = errors.New("рефреш токен не найден")

	// ErrRefreshTokenExpired : срок действия токена истёк
	ErrRefreshTokenExpired = errors.New("рефреш токен просрочен")

	// ErrRefreshTokenRevoked : токен был отозван (logout или ротация)
	ErrRefreshTokenRevoked = errors.New("рефреш токен отозван")

	// ErrRefreshTokenInvalid : повторное использование ротированного токена,
	// несовпадение владельца или другой признак компрометации
	ErrRefreshTokenInvalid = errors.New("невалидный рефреш токен")

	// ErrUnavailable : хранилище недоступно; повторять можно только
	// операции чтения
	ErrUnavailable = errors.New("хранилище недоступно")
)

// IsRefreshTokenError сообщает, относится ли ошибка к refresh токену.
// Все такие ошибки схлопываются в единый ответ 401 на уровне handler.
func IsRefreshTokenError(err error) bool {
	return errors.Is(err, ErrRefreshTokenNotFound) ||
		errors.Is(err, ErrRefreshTokenExpired) ||
		errors.Is(err, ErrRefreshTokenRevoked) ||
		errors.Is(err, ErrRefreshTokenInvalid)
}
