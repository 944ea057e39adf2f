package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 8050, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, DataSourceCSV, cfg.Data.Source)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.Cache.PageCacheTTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "dashboard-cache-refreshers", cfg.Worker.ConsumerGroup)
	assert.True(t, cfg.Worker.WatchEnabled)
	assert.True(t, cfg.Worker.RefreshEnabled)
	assert.Equal(t, 500*time.Millisecond, cfg.Worker.WatchDebounce)
	assert.Equal(t,
		"frame-ancestors 'self' https://*.infectieradar.be https://infectieradarbe.staging.influenzanet.info",
		cfg.FrameAncestorsPolicy(),
	)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("API_HOST", "0.0.0.0")
	v.Set("API_PORT", 9000)
	v.Set("DATA_DIR", "/srv/data")
	v.Set("DATA_SOURCE", "POSTGRES")
	v.Set("DB_HOST", "db")
	v.Set("SYMPTOM_WEEK", "2024/06/19")
	v.Set("FRAME_ANCESTORS", "'self'  https://example.org")
	v.Set("PAGE_CACHE_TTL", 60)
	v.Set("WORKER_WATCH_ENABLED", false)

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.GetServerAddr())
	assert.Equal(t, "/srv/data", cfg.Data.Dir)
	assert.Equal(t, DataSourcePostgres, cfg.Data.Source)
	assert.Equal(t, "2024/06/19", cfg.Data.SymptomWeek)
	assert.Equal(t, []string{"'self'", "https://example.org"}, cfg.Server.FrameAncestors)
	assert.Equal(t, time.Minute, cfg.Cache.PageCacheTTL)
	assert.False(t, cfg.Worker.WatchEnabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		set  map[string]interface{}
		msg  string
	}{
		{
			name: "unknown data source",
			set:  map[string]interface{}{"DATA_SOURCE": "excel"},
			msg:  "DATA_SOURCE",
		},
		{
			name: "postgres without host",
			set:  map[string]interface{}{"DATA_SOURCE": "postgres"},
			msg:  "DB_HOST",
		},
		{
			name: "cache without redis",
			set:  map[string]interface{}{"CACHE_ENABLED": true},
			msg:  "REDIS_HOST",
		},
		{
			name: "worker without redis",
			set:  map[string]interface{}{"WORKER_ENABLED": true, "WORKER_REFRESH_ENABLED": false},
			msg:  "WORKER_ENABLED",
		},
		{
			name: "port out of range",
			set:  map[string]interface{}{"API_PORT": 70000},
			msg:  "API_PORT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			for k, val := range tt.set {
				v.Set(k, val)
			}
			_, err := fromViper(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
