package repository

import (
	"cinedex/config"
	"cinedex/internal/model"
	"cinedex/internal/util"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type MovieRepository struct {
	*config.Database
}

func NewMovieRepository(database *config.Database) *MovieRepository {
	return &MovieRepository{database}
}

// Create : сохраняет новый фильм
func (r *MovieRepository) Create(ctx context.Context, movie *model.Movie) error {
	query := `
	INSERT INTO movies (uuid, title, year)
	VALUES ($1, $2, $3)
	RETURNING created_at
	`

	err := r.DB.QueryRowxContext(ctx, query, movie.UUID, movie.Title, movie.Year).
		Scan(&movie.CreatedAt)
	if err != nil {
		return util.LogError("[MovieRepo] ошибка вставки данных в БД", err)
	}

	return nil
}

// GetByUUID : ищет фильм по UUID
func (r *MovieRepository) GetByUUID(ctx context.Context, movieUUID string) (*model.Movie, error) {
	query := `SELECT uuid, title, year, poster_key, created_at, updated_at FROM movies WHERE uuid = $1`

	var movie model.Movie
	err := r.DB.GetContext(ctx, &movie, query, movieUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("фильм не найден")
		}
		return nil, util.LogError("[MovieRepo] не удалось найти фильм", err)
	}

	return &movie, nil
}

// List : возвращает фильмы, опционально отфильтрованные по году
func (r *MovieRepository) List(ctx context.Context, year int, limit int) ([]model.Movie, error) {
	query := `
		SELECT uuid, title, year, poster_key, created_at, updated_at
		FROM movies
		WHERE ($1 = 0 OR year = $1)
		ORDER BY title
		LIMIT $2
	`

	movies := []model.Movie{}
	err := r.DB.SelectContext(ctx, &movies, query, year, limit)
	if err != nil {
		return nil, util.LogError("[MovieRepo] не удалось получить список фильмов", err)
	}

	return movies, nil
}

// Update : обновляет название и год фильма
func (r *MovieRepository) Update(ctx context.Context, movie *model.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, year = $3, updated_at = NOW()
		WHERE uuid = $1
	`

	result, err := r.DB.ExecContext(ctx, query, movie.UUID, movie.Title, movie.Year)
	if err != nil {
		return util.LogError("[MovieRepo] не удалось обновить фильм", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[MovieRepo] не удалось проверить, обновлён ли фильм", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("фильм не найден")
	}

	return nil
}

// SetPosterKey : сохраняет ключ постера в S3
func (r *MovieRepository) SetPosterKey(ctx context.Context, movieUUID string, posterKey string) error {
	query := `UPDATE movies SET poster_key = $2, updated_at = NOW() WHERE uuid = $1`

	result, err := r.DB.ExecContext(ctx, query, movieUUID, posterKey)
	if err != nil {
		return util.LogError("[MovieRepo] не удалось сохранить ключ постера", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[MovieRepo] не удалось проверить, сохранён ли ключ постера", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("фильм не найден")
	}

	return nil
}

// Delete : удаляет фильм и возвращает удалённую запись
// (ключ постера нужен вызывающему для очистки S3)
func (r *MovieRepository) Delete(ctx context.Context, movieUUID string) (*model.Movie, error) {
	query := `
		DELETE FROM movies
		WHERE uuid = $1
		RETURNING uuid, title, year, poster_key, created_at, updated_at
	`

	var movie model.Movie
	err := r.DB.GetContext(ctx, &movie, query, movieUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("фильм не найден")
		}
		return nil, util.LogError("[MovieRepo] не удалось удалить фильм", err)
	}

	return &movie, nil
}
