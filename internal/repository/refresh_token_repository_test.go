package repository_test

import (
	"cinedex/config"
	"cinedex/internal/apperrors"
	"cinedex/internal/model"
	"cinedex/internal/repository"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*repository.RefreshTokenRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return repository.NewRefreshTokenRepository(&config.Database{DB: sqlxDB}), mock
}

var tokenColumns = []string{"token_hash", "user_uuid", "created_at", "expires_at", "revoked_at", "replaced_by_hash"}

func TestSaveRefreshToken(t *testing.T) {
	repo, mock := newTestRepository(t)
	now := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO refresh_tokens")).
		WithArgs("h1", "u1", now, now.Add(time.Hour)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveRefreshToken(context.Background(), &model.RefreshToken{
		TokenHash: "h1",
		UserUUID:  "u1",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRefreshToken_DatabaseDown(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO refresh_tokens")).
		WillReturnError(assert.AnError)

	err := repo.SaveRefreshToken(context.Background(), &model.RefreshToken{TokenHash: "h1"})

	// сбой хранилища помечается как временная недоступность,
	// обработчик по нему отвечает 503, а не 401
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)
}

func TestFindByHash_Success(t *testing.T) {
	repo, mock := newTestRepository(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT token_hash, user_uuid, created_at, expires_at, revoked_at, replaced_by_hash")).
		WithArgs("h1").
		WillReturnRows(sqlmock.NewRows(tokenColumns).
			AddRow("h1", "u1", now, now.Add(time.Hour), nil, nil))

	refreshToken, err := repo.FindByHash(context.Background(), "h1")

	require.NoError(t, err)
	assert.Equal(t, "h1", refreshToken.TokenHash)
	assert.Equal(t, "u1", refreshToken.UserUUID)
	assert.Nil(t, refreshToken.RevokedAt)
	assert.Nil(t, refreshToken.ReplacedByHash)
}

func TestFindByHash_NotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT token_hash")).
		WithArgs("неизвестный").
		WillReturnRows(sqlmock.NewRows(tokenColumns))

	_, err := repo.FindByHash(context.Background(), "неизвестный")

	assert.ErrorIs(t, err, apperrors.ErrRefreshTokenNotFound)
}

func TestCompareAndRevoke(t *testing.T) {
	repo, mock := newTestRepository(t)
	now := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE refresh_tokens SET revoked_at = $2")).
		WithArgs("h1", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	revoked, err := repo.CompareAndRevoke(context.Background(), "h1", now)

	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestCompareAndRevoke_AlreadyRevoked(t *testing.T) {
	repo, mock := newTestRepository(t)
	now := time.Now().UTC()

	// WHERE-условие не выполнилось: токен уже отозван или ротирован
	mock.ExpectExec(regexp.QuoteMeta("UPDATE refresh_tokens SET revoked_at = $2")).
		WithArgs("h1", now).
		WillReturnResult(sqlmock.NewResult(0, 0))

	revoked, err := repo.CompareAndRevoke(context.Background(), "h1", now)

	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRotateRefreshToken_Success(t *testing.T) {
	repo, mock := newTestRepository(t)
	now := time.Now().UTC()
	successor := &model.RefreshToken{
		TokenHash: "h2",
		UserUUID:  "u1",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE refresh_tokens SET revoked_at = $2, replaced_by_hash = $3")).
		WithArgs("h1", now, "h2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO refresh_tokens")).
		WithArgs("h2", "u1", now, now.Add(time.Hour)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rotated, err := repo.RotateRefreshToken(context.Background(), "h1", now, successor)

	require.NoError(t, err)
	assert.True(t, rotated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRotateRefreshToken_CASMiss(t *testing.T) {
	repo, mock := newTestRepository(t)
	now := time.Now().UTC()

	// конкурентная ротация успела первой: UPDATE ничего не затронул,
	// преемник не вставляется, транзакция откатывается
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE refresh_tokens SET revoked_at = $2, replaced_by_hash = $3")).
		WithArgs("h1", now, "h2").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	rotated, err := repo.RotateRefreshToken(context.Background(), "h1", now, &model.RefreshToken{TokenHash: "h2"})

	require.NoError(t, err)
	assert.False(t, rotated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRotateRefreshToken_InsertFails(t *testing.T) {
	repo, mock := newTestRepository(t)
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE refresh_tokens SET revoked_at = $2, replaced_by_hash = $3")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO refresh_tokens")).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	rotated, err := repo.RotateRefreshToken(context.Background(), "h1", now, &model.RefreshToken{TokenHash: "h2"})

	assert.ErrorIs(t, err, apperrors.ErrUnavailable)
	assert.False(t, rotated)
}

func TestRevokeChain(t *testing.T) {
	repo, mock := newTestRepository(t)
	now := time.Now().UTC()

	mock.ExpectExec("WITH RECURSIVE chain").
		WithArgs("h1", now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	revoked, err := repo.RevokeChain(context.Background(), "h1", now)

	require.NoError(t, err)
	assert.Equal(t, int64(3), revoked)
}
