package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/infectieradar-dashboard/internal/app"
	"github.com/infectieradar-dashboard/internal/config"
)

func TestNewDashboard_CSVWithoutCache(t *testing.T) {
	cfg := &config.Config{
		Data:  config.DataConfig{Dir: t.TempDir(), Source: config.DataSourceCSV, SymptomWeek: "2024/06/19"},
		Cache: config.CacheConfig{Enabled: true},
	}

	d, err := app.NewDashboard(context.Background(), cfg, app.Options{DisableCache: true}, zap.NewNop())
	require.NoError(t, err)
	defer d.Close()

	assert.NotNil(t, d.UseCase)
	assert.Nil(t, d.DB)
	assert.Nil(t, d.Redis)
	assert.Len(t, d.UseCase.Locales().Locales, 4)
}
