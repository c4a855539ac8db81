package repository

import (
	"cinedex/config"
	"cinedex/internal/model"
	"cinedex/internal/util"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

func (r *CacheRepository) SetMovie(ctx context.Context, movie *model.Movie) error {
	data, err := json.Marshal(movie)
	if err != nil {
		return util.LogError("ошибка сериализации фильма", err)
	}

	cmd := r.client.Client.Set(ctx, r.key(movie.UUID), data, r.ttl)
	if err = cmd.Err(); err != nil {
		return util.LogError("ошибка сохранения в Redis", err)
	}
	if cmd.Val() != "OK" {
		return fmt.Errorf("неожиданный ответ Redis: %s", cmd.Val())
	}

	return nil
}

func (r *CacheRepository) GetMovie(ctx context.Context, uuid string) (*model.Movie, error) {
	val, err := r.client.Client.Get(ctx, r.key(uuid)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, util.LogError("ошибка получения фильма из Redis", err)
	}

	var movie model.Movie
	if err := json.Unmarshal([]byte(val), &movie); err != nil {
		return nil, util.LogError("ошибка десериализации фильма из кэша", err)
	}
	return &movie, nil
}

func (r *CacheRepository) DeleteMovie(ctx context.Context, uuid string) error {
	if err := r.client.Client.Del(ctx, r.key(uuid)).Err(); err != nil {
		return util.LogError("ошибка удаления фильма из Redis", err)
	}
	return nil
}

func (r *CacheRepository) key(uuid string) string {
	return fmt.Sprintf("movie:%s", uuid)
}
