package repository

import (
	"context"
	"time"

	"github.com/infectieradar-dashboard/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значения из кеша
	Delete(ctx context.Context, keys ...string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetPage получает собранную страницу локали, nil при промахе
	GetPage(ctx context.Context, locale string) (*domain.Page, error)

	// SetPage сохраняет собранную страницу локали
	SetPage(ctx context.Context, page *domain.Page, ttl time.Duration) error

	// DeletePages сбрасывает страницы указанных локалей
	DeletePages(ctx context.Context, locales ...string) error
}
