package ports

import (
	"cinedex/internal/model"
	"context"
	"time"
)

// Clock : источник текущего времени, подменяется в тестах
type Clock interface {
	Now() time.Time
}

// RefreshTokenStore : хранилище refresh токенов.
// RotateRefreshToken выполняет условный отзыв старого токена и вставку
// нового одной транзакцией — это единственная точка сериализации
// конкурирующих ротаций одного и того же токена.
type RefreshTokenStore interface {
	SaveRefreshToken(ctx context.Context, token *model.RefreshToken) error
	FindByHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error)

	// CompareAndRevoke атомарно выставляет revoked_at, только если токен
	// ещё не отозван и не ротирован. Возвращает false, если условие
	// не выполнилось (токен не найден или уже отозван).
	CompareAndRevoke(ctx context.Context, tokenHash string, revokedAt time.Time) (bool, error)

	// RotateRefreshToken одной транзакцией помечает старый токен
	// отозванным (revoked_at + replaced_by_hash) и вставляет преемника.
	// Возвращает false без записи преемника, если CAS-условие по старому
	// токену не выполнилось.
	RotateRefreshToken(ctx context.Context, oldTokenHash string, revokedAt time.Time, successor *model.RefreshToken) (bool, error)

	// RevokeChain отзывает все токены цепочки ротации, достижимой из
	// tokenHash по replaced_by_hash. Возвращает число отозванных записей.
	RevokeChain(ctx context.Context, tokenHash string, revokedAt time.Time) (int64, error)
}

// RefreshTokenService : выдача, проверка, ротация и отзыв refresh токенов
type RefreshTokenService interface {
	Issue(ctx context.Context, userUUID string) (string, *model.RefreshToken, error)
	Validate(ctx context.Context, rawToken string) (*model.RefreshToken, error)
	Rotate(ctx context.Context, rawToken string, expectedUserUUID string) (string, *model.RefreshToken, error)
	Revoke(ctx context.Context, rawToken string) error
}
