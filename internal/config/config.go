package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL       string        `mapstructure:"DATABASE_URL"`
	CORSOrigins       []string      `mapstructure:"CORS_ORIGIN"`
	Port              string        `mapstructure:"PORT"`
	Environment       string        `mapstructure:"ENV"`
	AutoMigrate       bool          `mapstructure:"AUTO_MIGRATE"`
	ShutdownTimeout   time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	PoolStatsInterval time.Duration `mapstructure:"POOL_STATS_INTERVAL"`
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	return FromEnv(os.Getenv)
}

// FromEnv собирает конфиг из функции чтения переменных окружения
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		DatabaseURL: getenv("DATABASE_URL"),
		CORSOrigins: ParseOrigins(getenv("CORS_ORIGIN")),
		Port:        getenv("PORT"),
		Environment: getenv("ENV"),
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}

	var err error
	if cfg.AutoMigrate, err = parseBool(getenv("AUTO_MIGRATE"), false); err != nil {
		return nil, fmt.Errorf("AUTO_MIGRATE: %w", err)
	}
	if cfg.ShutdownTimeout, err = parseDuration(getenv("SHUTDOWN_TIMEOUT"), 10*time.Second); err != nil {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}
	if cfg.PoolStatsInterval, err = parseDuration(getenv("POOL_STATS_INTERVAL"), time.Minute); err != nil {
		return nil, fmt.Errorf("POOL_STATS_INTERVAL: %w", err)
	}

	// Проверяем обязательные поля
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	return cfg, nil
}

// ParseOrigins разбирает список origin через запятую
func ParseOrigins(raw string) []string {
	origins := []string{}
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// Addr возвращает адрес для http сервера
func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func parseBool(raw string, def bool) (bool, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.ParseBool(raw)
}

func parseDuration(raw string, def time.Duration) (time.Duration, error) {
	if raw == "" {
		return def, nil
	}
	return time.ParseDuration(raw)
}
