package ports

import (
	"cinedex/internal/model"
	"context"
)

// CacheRepository : Redis слой
type CacheRepository interface {
	SetMovie(ctx context.Context, movie *model.Movie) error
	GetMovie(ctx context.Context, uuid string) (*model.Movie, error)
	DeleteMovie(ctx context.Context, uuid string) error
}
