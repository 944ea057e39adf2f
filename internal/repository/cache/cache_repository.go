package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/infectieradar-dashboard/internal/domain"
	"github.com/infectieradar-dashboard/internal/domain/repository"
)

const pageKeyPrefix = "page:"

// PageKey - ключ собранной страницы локали
func PageKey(locale string) string {
	return pageKeyPrefix + locale
}

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	err := r.client.Del(ctx, keys...).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.Strings("keys", keys), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.Strings("keys", keys))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// GetPage получает собранную страницу из кеша
func (r *cacheRepository) GetPage(ctx context.Context, locale string) (*domain.Page, error) {
	data, err := r.Get(ctx, PageKey(locale))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var page domain.Page
	if err := sonic.Unmarshal(data, &page); err != nil {
		r.logger.Error("Failed to unmarshal page from cache",
			zap.String("locale", locale),
			zap.Error(err))
		return nil, fmt.Errorf("unmarshal page: %w", err)
	}

	return &page, nil
}

// SetPage сохраняет собранную страницу в кеше
func (r *cacheRepository) SetPage(ctx context.Context, page *domain.Page, ttl time.Duration) error {
	data, err := sonic.ConfigStd.Marshal(page)
	if err != nil {
		r.logger.Error("Failed to marshal page", zap.String("locale", page.Locale), zap.Error(err))
		return fmt.Errorf("marshal page: %w", err)
	}

	return r.Set(ctx, PageKey(page.Locale), data, ttl)
}

// DeletePages сбрасывает страницы локалей
func (r *cacheRepository) DeletePages(ctx context.Context, locales ...string) error {
	keys := make([]string, len(locales))
	for i, l := range locales {
		keys[i] = PageKey(l)
	}
	return r.Delete(ctx, keys...)
}
