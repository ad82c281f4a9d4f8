package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	Storage     StorageConfig
	Ingest      IngestConfig
	Composite   CompositeConfig
	Logger      LoggerConfig
	BaseURL     string
	DownloadDir string
}

type ServerConfig struct {
	Host string
	Port int
}

// StorageConfig selects the record store backend: "postgres" (default) or
// "sqlite" for single-host deployments.
type StorageConfig struct {
	Driver string

	Postgres PostgresConfig
	SQLite   SQLiteConfig
}

type PostgresConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode)
}

type SQLiteConfig struct {
	Path string
}

type IngestConfig struct {
	FFprobeBinary    string
	ProbeTimeout     time.Duration
	ProbeConcurrency int
	CallTimeout      time.Duration
}

type CompositeConfig struct {
	Width        int
	Height       int
	FetchTimeout time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8000)
	v.SetDefault("BASE_URL", "http://localhost:8000")
	v.SetDefault("DOWNLOAD_DIR", "downloads")
	v.SetDefault("STORAGE_DRIVER", "postgres")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "")
	v.SetDefault("DATABASE_NAME", "videolinks")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 2)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("SQLITE_PATH", "data/videolinks.db")
	v.SetDefault("FFPROBE_BINARY", "ffprobe")
	v.SetDefault("PROBE_TIMEOUT", "15s")
	v.SetDefault("PROBE_CONCURRENCY", 4)
	v.SetDefault("INGEST_TIMEOUT", "5m")
	v.SetDefault("COMPOSITE_WIDTH", 1280)
	v.SetDefault("COMPOSITE_HEIGHT", 720)
	v.SetDefault("COMPOSITE_FETCH_TIMEOUT", "10s")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Storage: StorageConfig{
			Driver: v.GetString("STORAGE_DRIVER"),
			Postgres: PostgresConfig{
				Host:            v.GetString("DATABASE_HOST"),
				Port:            v.GetInt("DATABASE_PORT"),
				User:            v.GetString("DATABASE_USER"),
				Password:        v.GetString("DATABASE_PASSWORD"),
				Database:        v.GetString("DATABASE_NAME"),
				SSLMode:         v.GetString("DATABASE_SSLMODE"),
				MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
				MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
				ConnMaxLifetime: duration(v, "DATABASE_CONN_MAX_LIFETIME", 30*time.Minute),
			},
			SQLite: SQLiteConfig{
				Path: v.GetString("SQLITE_PATH"),
			},
		},
		Ingest: IngestConfig{
			FFprobeBinary:    v.GetString("FFPROBE_BINARY"),
			ProbeTimeout:     duration(v, "PROBE_TIMEOUT", 15*time.Second),
			ProbeConcurrency: v.GetInt("PROBE_CONCURRENCY"),
			CallTimeout:      duration(v, "INGEST_TIMEOUT", 5*time.Minute),
		},
		Composite: CompositeConfig{
			Width:        v.GetInt("COMPOSITE_WIDTH"),
			Height:       v.GetInt("COMPOSITE_HEIGHT"),
			FetchTimeout: duration(v, "COMPOSITE_FETCH_TIMEOUT", 10*time.Second),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		BaseURL:     v.GetString("BASE_URL"),
		DownloadDir: v.GetString("DOWNLOAD_DIR"),
	}

	return cfg, nil
}

func duration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return fallback
	}
	return d
}
