package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DataSourceCSV      = "csv"
	DataSourcePostgres = "postgres"
)

// defaultFrameAncestors - родительские origin'ы, которым разрешено встраивать дашборд в iframe
var defaultFrameAncestors = []string{
	"'self'",
	"https://*.infectieradar.be",
	"https://infectieradarbe.staging.influenzanet.info",
}

type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host           string
	Port           int
	Env            string
	FrameAncestors []string
}

type DataConfig struct {
	Dir         string
	Source      string
	SymptomWeek string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	ConnectRetries  int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	Enabled      bool
	PageCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled        bool
	ConsumerGroup  string
	WatchEnabled   bool
	RefreshEnabled bool
	WatchDebounce  time.Duration
	MaxBatchSize   int
}

// Load читает конфигурацию из .env (если файл есть) и переменных окружения
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// .env не обязателен: в контейнере всё приходит через окружение
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return fromViper(viper.GetViper())
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:           v.GetString("API_HOST"),
			Port:           v.GetInt("API_PORT"),
			Env:            v.GetString("API_ENV"),
			FrameAncestors: parseList(v.GetString("FRAME_ANCESTORS"), " "),
		},
		Data: DataConfig{
			Dir:         v.GetString("DATA_DIR"),
			Source:      strings.ToLower(v.GetString("DATA_SOURCE")),
			SymptomWeek: v.GetString("SYMPTOM_WEEK"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
			ConnectRetries:  v.GetInt("DB_CONNECT_RETRIES"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			Enabled:      v.GetBool("CACHE_ENABLED"),
			PageCacheTTL: time.Duration(v.GetInt("PAGE_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:        v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:  v.GetString("WORKER_CONSUMER_GROUP"),
			WatchEnabled:   !v.IsSet("WORKER_WATCH_ENABLED") || v.GetBool("WORKER_WATCH_ENABLED"),
			RefreshEnabled: !v.IsSet("WORKER_REFRESH_ENABLED") || v.GetBool("WORKER_REFRESH_ENABLED"),
			WatchDebounce:  time.Duration(v.GetInt("WATCH_DEBOUNCE_MS")) * time.Millisecond,
			MaxBatchSize:   v.GetInt("WORKER_MAX_BATCH_SIZE"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8050
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if len(cfg.Server.FrameAncestors) == 0 {
		cfg.Server.FrameAncestors = append([]string(nil), defaultFrameAncestors...)
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "data"
	}
	if cfg.Data.Source == "" {
		cfg.Data.Source = DataSourceCSV
	}
	if cfg.Database.ConnectRetries == 0 {
		cfg.Database.ConnectRetries = 5
	}
	if cfg.Cache.PageCacheTTL == 0 {
		cfg.Cache.PageCacheTTL = 15 * time.Minute
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "dashboard-cache-refreshers"
	}
	if cfg.Worker.WatchDebounce == 0 {
		cfg.Worker.WatchDebounce = 500 * time.Millisecond
	}
	if cfg.Worker.MaxBatchSize == 0 {
		cfg.Worker.MaxBatchSize = 20
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("API_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	switch c.Data.Source {
	case DataSourceCSV, DataSourcePostgres:
	default:
		return fmt.Errorf("DATA_SOURCE must be %q or %q, got %q", DataSourceCSV, DataSourcePostgres, c.Data.Source)
	}
	if c.Data.Source == DataSourcePostgres && c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required when DATA_SOURCE=%s", DataSourcePostgres)
	}
	if c.Cache.Enabled && c.Redis.Host == "" {
		return fmt.Errorf("REDIS_HOST is required when CACHE_ENABLED=true")
	}
	// оба воркера работают через stream в Redis
	if c.Worker.Enabled && c.Redis.Host == "" {
		return fmt.Errorf("REDIS_HOST is required when WORKER_ENABLED=true")
	}
	return nil
}

func parseList(s, sep string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// FrameAncestorsPolicy собирает значение заголовка Content-Security-Policy
func (c *Config) FrameAncestorsPolicy() string {
	return "frame-ancestors " + strings.Join(c.Server.FrameAncestors, " ")
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
