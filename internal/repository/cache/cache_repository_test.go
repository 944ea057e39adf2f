package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/infectieradar-dashboard/internal/domain"
	"github.com/infectieradar-dashboard/internal/repository/cache"
)

func newTestCache(t *testing.T) *cache.Redis {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 1})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	r := cache.NewRedisFromClient(client, zap.NewNop())
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestPageKey(t *testing.T) {
	assert.Equal(t, "page:nl-be", cache.PageKey("nl-be"))
}

func TestCacheRepository_PageRoundTrip(t *testing.T) {
	r := newTestCache(t)
	repo := cache.NewCacheRepository(r)
	ctx := context.Background()

	require.NoError(t, repo.DeletePages(ctx, "en"))

	miss, err := repo.GetPage(ctx, "en")
	require.NoError(t, err)
	assert.Nil(t, miss)

	page := &domain.Page{
		Locale:      "en",
		Route:       "/en",
		LastUpdated: "This page has been last updated at 26.Jun.2024 10:00.",
		Sections: []domain.Section{{
			ID:      domain.SectionSymptoms,
			Heading: "Symptoms and health complaints",
			Figures: []domain.NamedFigure{{
				ID:     domain.FigureSymptoms,
				Figure: domain.Figure{Data: []domain.Trace{{Type: "bar", Y: []any{"Cough"}}}},
			}},
		}},
	}
	require.NoError(t, repo.SetPage(ctx, page, time.Minute))

	exists, err := repo.Exists(ctx, cache.PageKey("en"))
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := repo.GetPage(ctx, "en")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, page.LastUpdated, got.LastUpdated)
	assert.Equal(t, []string{domain.FigureSymptoms}, got.FigureIDs())

	require.NoError(t, repo.DeletePages(ctx, "en", "nl-be"))
	exists, err = repo.Exists(ctx, cache.PageKey("en"))
	require.NoError(t, err)
	assert.False(t, exists)
}
