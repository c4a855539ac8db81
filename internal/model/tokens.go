package model

import "time"

// TokenStatus : производное состояние refresh токена.
// В БД не хранится, вычисляется из полей записи.
type TokenStatus string

const (
	TokenStatusActive  TokenStatus = "active"
	TokenStatusExpired TokenStatus = "expired"
	TokenStatusRevoked TokenStatus = "revoked"
	TokenStatusRotated TokenStatus = "rotated"
)

// RefreshToken : запись refresh токена в БД.
// Хранится только sha256-хэш секрета, сам секрет после выдачи
// восстановить нельзя. ReplacedByHash образует цепочку ротации:
// по ней выполняется каскадный отзыв при обнаружении повторного
// использования ротированного токена.
type RefreshToken struct {
	TokenHash      string     `db:"token_hash"`
	UserUUID       string     `db:"user_uuid"`
	CreatedAt      time.Time  `db:"created_at"`
	ExpiresAt      time.Time  `db:"expires_at"`
	RevokedAt      *time.Time `db:"revoked_at"`
	ReplacedByHash *string    `db:"replaced_by_hash"`
}

// Status вычисляет состояние токена на момент now.
// Ротация помечает токен одновременно revoked_at и replaced_by_hash,
// поэтому проверка ReplacedByHash идёт первой.
func (t *RefreshToken) Status(now time.Time) TokenStatus {
	switch {
	case t.ReplacedByHash != nil:
		return TokenStatusRotated
	case t.RevokedAt != nil:
		return TokenStatusRevoked
	case now.After(t.ExpiresAt):
		return TokenStatusExpired
	default:
		return TokenStatusActive
	}
}

// TokensPair содержит пару access и refresh токенов
// swagger:model
type TokensPair struct {
	// Access токен (JWT)
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"accessToken"`

	// Refresh токен (для получения новой пары)
	// example: vcSi0369y1I62wOpxZFpgZ...
	RefreshToken string `json:"refreshToken"`
}
