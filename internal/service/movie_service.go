package service

import (
	"cinedex/internal/model"
	"cinedex/internal/ports"
	"cinedex/internal/util"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

const defaultListLimit = 100

// MovieService : каталог фильмов поверх Postgres с кэшем в Redis
// и хранением постеров в S3
type MovieService struct {
	movieRepository ports.MovieRepository
	cacheRepository ports.CacheRepository
	s3Storage       ports.S3Storage
	ttl             time.Duration
}

func NewMovieService(
	movieRepository ports.MovieRepository,
	cacheRepository ports.CacheRepository,
	s3Storage ports.S3Storage,
	ttl time.Duration,
) *MovieService {
	return &MovieService{
		movieRepository: movieRepository,
		cacheRepository: cacheRepository,
		s3Storage:       s3Storage,
		ttl:             ttl,
	}
}

func (s *MovieService) CreateMovie(ctx context.Context, title string, year int) (*model.Movie, error) {
	if title == "" {
		return nil, fmt.Errorf("[MovieService] название фильма обязательно")
	}
	if year < 1888 || year > time.Now().Year()+5 {
		return nil, fmt.Errorf("[MovieService] некорректный год выпуска")
	}

	movie := &model.Movie{
		UUID:  uuid.New().String(),
		Title: title,
		Year:  year,
	}

	if err := s.movieRepository.Create(ctx, movie); err != nil {
		return nil, util.LogError("[MovieService] не удалось создать фильм", err)
	}

	return movie, nil
}

// GetMovie возвращает фильм, сначала пробуя кэш.
// Ошибки кэша не фатальны: при недоступном Redis ходим в БД.
func (s *MovieService) GetMovie(ctx context.Context, movieUUID string) (*model.Movie, error) {
	cached, err := s.cacheRepository.GetMovie(ctx, movieUUID)
	if err != nil {
		log.Printf("[MovieService] ошибка чтения из кэша: %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	movie, err := s.movieRepository.GetByUUID(ctx, movieUUID)
	if err != nil {
		return nil, err
	}

	if err := s.cacheRepository.SetMovie(ctx, movie); err != nil {
		log.Printf("[MovieService] не удалось положить фильм в кэш: %v", err)
	}

	return movie, nil
}

func (s *MovieService) ListMovies(ctx context.Context, year int, limit int) ([]model.Movie, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}

	movies, err := s.movieRepository.List(ctx, year, limit)
	if err != nil {
		return nil, util.LogError("[MovieService] не удалось получить список фильмов", err)
	}

	return movies, nil
}

func (s *MovieService) UpdateMovie(ctx context.Context, movieUUID string, title string, year int) (*model.Movie, error) {
	if title == "" {
		return nil, fmt.Errorf("[MovieService] название фильма обязательно")
	}

	movie := &model.Movie{
		UUID:  movieUUID,
		Title: title,
		Year:  year,
	}

	if err := s.movieRepository.Update(ctx, movie); err != nil {
		return nil, err
	}

	if err := s.cacheRepository.DeleteMovie(ctx, movieUUID); err != nil {
		log.Printf("[MovieService] не удалось инвалидировать кэш: %v", err)
	}

	return movie, nil
}

func (s *MovieService) DeleteMovie(ctx context.Context, movieUUID string) error {
	movie, err := s.movieRepository.Delete(ctx, movieUUID)
	if err != nil {
		return err
	}

	if err := s.cacheRepository.DeleteMovie(ctx, movieUUID); err != nil {
		log.Printf("[MovieService] не удалось инвалидировать кэш: %v", err)
	}

	if movie.PosterKey != nil {
		if err := s.s3Storage.DeleteObject(ctx, *movie.PosterKey); err != nil {
			log.Printf("[MovieService] не удалось удалить постер из S3: %v", err)
		}
	}

	return nil
}

// PosterUploadURL выдаёт presigned PUT URL для загрузки постера
// и привязывает ключ объекта к фильму
func (s *MovieService) PosterUploadURL(ctx context.Context, movieUUID string) (string, error) {
	if _, err := s.movieRepository.GetByUUID(ctx, movieUUID); err != nil {
		return "", err
	}

	posterKey := fmt.Sprintf("posters/%s", movieUUID)

	url, err := s.s3Storage.GeneratePresignedPutURL(ctx, posterKey, s.ttl)
	if err != nil {
		return "", util.LogError("[MovieService] не удалось сгенерировать URL загрузки постера", err)
	}

	if err := s.movieRepository.SetPosterKey(ctx, movieUUID, posterKey); err != nil {
		return "", err
	}

	if err := s.cacheRepository.DeleteMovie(ctx, movieUUID); err != nil {
		log.Printf("[MovieService] не удалось инвалидировать кэш: %v", err)
	}

	return url, nil
}

// PosterDownloadURL выдаёт presigned GET URL на постер фильма
func (s *MovieService) PosterDownloadURL(ctx context.Context, movieUUID string) (string, error) {
	movie, err := s.GetMovie(ctx, movieUUID)
	if err != nil {
		return "", err
	}
	if movie.PosterKey == nil {
		return "", fmt.Errorf("[MovieService] у фильма нет постера")
	}

	url, err := s.s3Storage.GeneratePresignedGetURL(ctx, *movie.PosterKey, s.ttl)
	if err != nil {
		return "", util.LogError("[MovieService] не удалось сгенерировать URL постера", err)
	}

	return url, nil
}
