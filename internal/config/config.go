package config

import (
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "CXTRAUMA_"

type Config struct {
	Primary    Primary          `koanf:"primary"`
	Server     ServerConfig     `koanf:"server"`
	Storage    StorageConfig    `koanf:"storage"`
	Database   DatabaseConfig   `koanf:"database"`
	Redis      RedisConfig      `koanf:"redis"`
	Submission SubmissionConfig `koanf:"submission"`
	Catalog    CatalogConfig    `koanf:"catalog"`
	Logger     LoggerConfig     `koanf:"logger"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port           string        `koanf:"port" validate:"required"`
	ReadTimeout    time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout   time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout    time.Duration `koanf:"idle_timeout" validate:"required"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"required"`
}

const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

type StorageConfig struct {
	Driver     string `koanf:"driver" validate:"required,oneof=memory sqlite postgres"`
	SQLitePath string `koanf:"sqlite_path"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig enables shared cart sessions. An empty URL keeps them in memory.
type RedisConfig struct {
	URL string        `koanf:"url"`
	TTL time.Duration `koanf:"ttl" validate:"required"`
}

type SubmissionConfig struct {
	Delay         time.Duration `koanf:"delay"`
	Namespace     string        `koanf:"namespace" validate:"required"`
	ExamNamespace string        `koanf:"exam_namespace" validate:"required"`
}

// CatalogConfig points at an optional YAML file replacing the built-in
// centers and exams.
type CatalogConfig struct {
	Path string `koanf:"path"`
}

type LoggerConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"omitempty,oneof=json text tint"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env":                 "development",
		"server.port":                 "8080",
		"server.read_timeout":         "10s",
		"server.write_timeout":        "15s",
		"server.idle_timeout":         "60s",
		"server.request_timeout":      "10s",
		"storage.driver":              StorageMemory,
		"storage.sqlite_path":         "data/cxtrauma.db",
		"database.host":               "localhost",
		"database.port":               5432,
		"database.user":               "postgres",
		"database.name":               "cxtrauma",
		"database.ssl_mode":           "disable",
		"database.max_open_conns":     10,
		"database.max_idle_conns":     2,
		"database.conn_max_lifetime":  "1h",
		"database.conn_max_idle_time": "15m",
		"redis.ttl":                   "24h",
		"submission.delay":            "1500ms",
		"submission.namespace":        "cxtrauma_requests",
		"submission.exam_namespace":   "cxtrauma_exam_orders",
		"logger.level":                "info",
		"logger.format":               "json",
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load defaults", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	if err := mainConfig.validateStorage(); err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

func (c *Config) validateStorage() error {
	switch c.Storage.Driver {
	case StorageSQLite:
		if c.Storage.SQLitePath == "" {
			return errors.New("storage.sqlite_path is required for the sqlite driver")
		}
	case StoragePostgres:
		if c.Database.Password == "" {
			return errors.New("database.password is required for the postgres driver")
		}
	}
	if c.Submission.Delay < 0 {
		return errors.New("submission.delay must not be negative")
	}
	return nil
}
