package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Auth     AuthConfig
	ORS      ORSConfig
	Upload   UploadConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
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
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	StatsCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type ORSConfig struct {
	BaseURL        string
	APIKey         string
	Profile        string
	RequestTimeout time.Duration
}

type UploadConfig struct {
	Dir       string
	PublicURL string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			StatsCacheTTL: time.Duration(viper.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("JWT_SECRET"),
			TokenTTL:  time.Duration(viper.GetInt("JWT_TTL_HOURS")) * time.Hour,
		},
		ORS: ORSConfig{
			BaseURL:        viper.GetString("ORS_BASE_URL"),
			APIKey:         viper.GetString("ORS_API_KEY"),
			Profile:        viper.GetString("ORS_PROFILE"),
			RequestTimeout: time.Duration(viper.GetInt("ORS_REQUEST_TIMEOUT")) * time.Second,
		},
		Upload: UploadConfig{
			Dir:       viper.GetString("UPLOAD_DIR"),
			PublicURL: viper.GetString("UPLOAD_PUBLIC_URL"),
		},
		Worker: WorkerConfig{
			Enabled:           viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     viper.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(viper.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
		},
	}

	// Set default values if not provided
	if cfg.Cache.StatsCacheTTL == 0 {
		cfg.Cache.StatsCacheTTL = time.Hour
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = 24 * time.Hour
	}
	if cfg.ORS.BaseURL == "" {
		cfg.ORS.BaseURL = "https://api.openrouteservice.org"
	}
	if cfg.ORS.Profile == "" {
		cfg.ORS.Profile = "foot-hiking"
	}
	if cfg.ORS.RequestTimeout == 0 {
		cfg.ORS.RequestTimeout = 15 * time.Second
	}
	if cfg.Upload.Dir == "" {
		cfg.Upload.Dir = "./uploads"
	}
	if cfg.Upload.PublicURL == "" {
		cfg.Upload.PublicURL = "/uploads"
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "catalog-stats-workers"
	}
	if cfg.Worker.StreamReadTimeout == 0 {
		cfg.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}

	return cfg, nil
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
