package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/infectieradar-dashboard/internal/domain"
)

// MockTableRepository is a mock of TableRepository
type MockTableRepository struct {
	mock.Mock
}

func (m *MockTableRepository) Symptoms(ctx context.Context, locale domain.Locale) ([]domain.SymptomRow, error) {
	args := m.Called(ctx, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SymptomRow), args.Error(1)
}

func (m *MockTableRepository) Trend(ctx context.Context, locale domain.Locale, disease domain.Disease) ([]domain.TrendRow, error) {
	args := m.Called(ctx, locale, disease)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrendRow), args.Error(1)
}

func (m *MockTableRepository) Provinces(ctx context.Context, locale domain.Locale) ([]domain.ProvinceRow, error) {
	args := m.Called(ctx, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProvinceRow), args.Error(1)
}

func (m *MockTableRepository) SexAge(ctx context.Context, locale domain.Locale) ([]domain.SexAgeRow, error) {
	args := m.Called(ctx, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SexAgeRow), args.Error(1)
}

// MockBoundaryRepository is a mock of BoundaryRepository
type MockBoundaryRepository struct {
	mock.Mock
}

func (m *MockBoundaryRepository) Boundaries(ctx context.Context) (*domain.BoundaryCollection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BoundaryCollection), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetPage(ctx context.Context, locale string) (*domain.Page, error) {
	args := m.Called(ctx, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page), args.Error(1)
}

func (m *MockCacheRepository) SetPage(ctx context.Context, page *domain.Page, ttl time.Duration) error {
	args := m.Called(ctx, page, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) DeletePages(ctx context.Context, locales ...string) error {
	args := m.Called(ctx, locales)
	return args.Error(0)
}
