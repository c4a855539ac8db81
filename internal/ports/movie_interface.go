package ports

import (
	"cinedex/internal/model"
	"context"
)

// MovieRepository : SQL слой
type MovieRepository interface {
	Create(ctx context.Context, movie *model.Movie) error
	GetByUUID(ctx context.Context, movieUUID string) (*model.Movie, error)
	List(ctx context.Context, year int, limit int) ([]model.Movie, error)
	Update(ctx context.Context, movie *model.Movie) error
	SetPosterKey(ctx context.Context, movieUUID string, posterKey string) error
	Delete(ctx context.Context, movieUUID string) (*model.Movie, error)
}

type MovieService interface {
	CreateMovie(ctx context.Context, title string, year int) (*model.Movie, error)
	GetMovie(ctx context.Context, movieUUID string) (*model.Movie, error)
	ListMovies(ctx context.Context, year int, limit int) ([]model.Movie, error)
	UpdateMovie(ctx context.Context, movieUUID string, title string, year int) (*model.Movie, error)
	DeleteMovie(ctx context.Context, movieUUID string) error
	PosterUploadURL(ctx context.Context, movieUUID string) (string, error)
	PosterDownloadURL(ctx context.Context, movieUUID string) (string, error)
}
