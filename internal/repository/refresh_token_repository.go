package repository

import (
	"cinedex/config"
	"cinedex/internal/apperrors"
	"cinedex/internal/model"
	"cinedex/internal/util"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type RefreshTokenRepository struct {
	*config.Database
}

func NewRefreshTokenRepository(database *config.Database) *RefreshTokenRepository {
	return &RefreshTokenRepository{database}
}

// SaveRefreshToken сохраняет новый refresh токен в базе данных
func (r *RefreshTokenRepository) SaveRefreshToken(ctx context.Context, refreshToken *model.RefreshToken) error {
	query := `INSERT INTO refresh_tokens (token_hash, user_uuid, created_at, expires_at)
				VALUES ($1, $2, $3, $4)
	`

	_, err := r.DB.ExecContext(ctx, query,
		refreshToken.TokenHash,
		refreshToken.UserUUID,
		refreshToken.CreatedAt,
		refreshToken.ExpiresAt,
	)

	if err != nil {
		util.LogError("[RefreshTokenRepo] ошибка вставки данных в БД", err)
		return fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}

	return nil
}

// FindByHash ищет refresh токен по sha256-хэшу секрета.
// Возвращает apperrors.ErrRefreshTokenNotFound, если записи нет.
func (r *RefreshTokenRepository) FindByHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error) {
	query := `SELECT token_hash, user_uuid, created_at, expires_at, revoked_at, replaced_by_hash
				FROM refresh_tokens WHERE token_hash = $1`

	refreshToken := &model.RefreshToken{}

	err := r.DB.QueryRowContext(ctx, query, tokenHash).Scan(
		&refreshToken.TokenHash,
		&refreshToken.UserUUID,
		&refreshToken.CreatedAt,
		&refreshToken.ExpiresAt,
		&refreshToken.RevokedAt,
		&refreshToken.ReplacedByHash,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrRefreshTokenNotFound
		}
		util.LogError("[RefreshTokenRepo] ошибка при выполнении запроса", err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}

	return refreshToken, nil
}

// CompareAndRevoke атомарно отзывает токен, если он ещё не отозван
// и не ротирован. Условие в WHERE закрывает гонку между конкурентными
// отзывами: выигрывает ровно один UPDATE.
func (r *RefreshTokenRepository) CompareAndRevoke(ctx context.Context, tokenHash string, revokedAt time.Time) (bool, error) {
	query := `UPDATE refresh_tokens SET revoked_at = $2
				WHERE token_hash = $1 AND revoked_at IS NULL AND replaced_by_hash IS NULL`

	result, err := r.DB.ExecContext(ctx, query, tokenHash, revokedAt)
	if err != nil {
		util.LogError("[RefreshTokenRepo] не удалось отозвать рефреш токен", err)
		return false, fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		util.LogError("[RefreshTokenRepo] не удалось проверить, отозван ли токен", err)
		return false, fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}

	return rowsAffected > 0, nil
}

// RotateRefreshToken выполняет ротацию одной транзакцией: условно
// отзывает старый токен (revoked_at + replaced_by_hash) и вставляет
// преемника. Если CAS-условие по старому токену не выполнилось
// (конкурентная ротация успела раньше), транзакция откатывается
// и преемник не создаётся — двух активных потомков быть не может.
func (r *RefreshTokenRepository) RotateRefreshToken(ctx context.Context, oldTokenHash string, revokedAt time.Time, successor *model.RefreshToken) (bool, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		util.LogError("[RefreshTokenRepo] не удалось начать транзакцию", err)
		return false, fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}
	defer tx.Rollback()

	revokeQuery := `UPDATE refresh_tokens SET revoked_at = $2, replaced_by_hash = $3
					WHERE token_hash = $1 AND revoked_at IS NULL AND replaced_by_hash IS NULL`

	result, err := tx.ExecContext(ctx, revokeQuery, oldTokenHash, revokedAt, successor.TokenHash)
	if err != nil {
		util.LogError("[RefreshTokenRepo] не удалось отозвать старый токен", err)
		return false, fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		util.LogError("[RefreshTokenRepo] не удалось проверить результат отзыва", err)
		return false, fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}
	if rowsAffected == 0 {
		return false, nil
	}

	insertQuery := `INSERT INTO refresh_tokens (token_hash, user_uuid, created_at, expires_at)
					VALUES ($1, $2, $3, $4)`

	_, err = tx.ExecContext(ctx, insertQuery,
		successor.TokenHash,
		successor.UserUUID,
		successor.CreatedAt,
		successor.ExpiresAt,
	)
	if err != nil {
		util.LogError("[RefreshTokenRepo] не удалось сохранить новый токен", err)
		return false, fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}

	if err := tx.Commit(); err != nil {
		util.LogError("[RefreshTokenRepo] не удалось закоммитить ротацию", err)
		return false, fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}

	return true, nil
}

// RevokeChain отзывает всю цепочку ротации, достижимую из tokenHash
// по ссылкам replaced_by_hash. Используется при обнаружении повторного
// использования ротированного токена.
func (r *RefreshTokenRepository) RevokeChain(ctx context.Context, tokenHash string, revokedAt time.Time) (int64, error) {
	query := `
		WITH RECURSIVE chain AS (
			SELECT token_hash, replaced_by_hash
			FROM refresh_tokens
			WHERE token_hash = $1
			UNION ALL
			SELECT rt.token_hash, rt.replaced_by_hash
			FROM refresh_tokens AS rt
			INNER JOIN chain AS c ON rt.token_hash = c.replaced_by_hash
		)
		UPDATE refresh_tokens SET revoked_at = $2
		WHERE token_hash IN (SELECT token_hash FROM chain)
		  AND revoked_at IS NULL
	`

	result, err := r.DB.ExecContext(ctx, query, tokenHash, revokedAt)
	if err != nil {
		util.LogError("[RefreshTokenRepo] не удалось отозвать цепочку токенов", err)
		return 0, fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		util.LogError("[RefreshTokenRepo] не удалось проверить результат отзыва цепочки", err)
		return 0, fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}

	return rowsAffected, nil
}
