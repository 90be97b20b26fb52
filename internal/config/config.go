package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Источники каталога проектов.
const (
	CatalogSourceSeed     = "seed"
	CatalogSourcePostgres = "postgres"
)

// Config хранит все параметры запуска приложения.
type Config struct {
	Env             string
	HTTPPort        string
	CatalogSource   string
	DatabaseURL     string
	MigrationsPath  string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	SessionTTL      time.Duration
	FeaturedSeed    int64
	AllowedOrigins  []string
	RateLimitLimit  int64
	RateLimitPeriod time.Duration
}

// UsesPostgres сообщает, нужно ли подключение к базе.
func (c *Config) UsesPostgres() bool {
	return c.CatalogSource == CatalogSourcePostgres || c.DatabaseURL != ""
}

// UsesRedis сообщает, хранятся ли сессии в Redis.
func (c *Config) UsesRedis() bool {
	return c.RedisAddr != ""
}

// Load читает переменные окружения и возвращает готовую конфигурацию.
func Load() (*Config, error) {
	// Загружаем .env только если он существует, иначе используем системные переменные.
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("config: .env не найден, используем переменные окружения: %v", err)
	}

	env := getEnv("APP_ENV", "development")

	cfg := &Config{
		Env:            env,
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		CatalogSource:  strings.ToLower(getEnv("CATALOG_SOURCE", CatalogSourceSeed)),
		DatabaseURL:    getDatabaseURL(),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
	}

	switch cfg.CatalogSource {
	case CatalogSourceSeed:
	case CatalogSourcePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("config: CATALOG_SOURCE=postgres требует DATABASE_URL или POSTGRESQL_*")
		}
	default:
		return nil, fmt.Errorf("config: неизвестный CATALOG_SOURCE %q", cfg.CatalogSource)
	}

	// CORS allowed origins
	originsStr := getEnv("CORS_ALLOWED_ORIGINS", "")
	if originsStr == "" {
		// Дефолтные значения для development
		if env == "production" {
			return nil, fmt.Errorf("config: CORS_ALLOWED_ORIGINS обязателен в production")
		}
		cfg.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"}
	} else {
		cfg.AllowedOrigins = strings.Split(originsStr, ",")
		for i, origin := range cfg.AllowedOrigins {
			cfg.AllowedOrigins[i] = strings.TrimSpace(origin)
		}
	}

	var err error
	if cfg.RedisDB, err = parseInt(getEnv("REDIS_DB", "0")); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = parseDuration(getEnv("SESSION_TTL", "24h")); err != nil {
		return nil, err
	}
	if cfg.FeaturedSeed, err = parseInt64(getEnv("FEATURED_SEED", strconv.FormatInt(time.Now().UnixNano(), 10))); err != nil {
		return nil, err
	}

	// Rate limiting настройки
	if cfg.RateLimitLimit, err = parseInt64(getEnv("RATE_LIMIT_LIMIT", "120")); err != nil {
		return nil, err
	}
	if cfg.RateLimitPeriod, err = parseDuration(getEnv("RATE_LIMIT_PERIOD", "1m")); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или дефолт; пустое значение считается незаданным.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// getDatabaseURL возвращает DATABASE_URL либо из переменной, либо собирает из отдельных переменных.
// Пустая строка означает, что база не настроена.
func getDatabaseURL() string {
	if dbURL := getEnv("DATABASE_URL", ""); dbURL != "" {
		return dbURL
	}

	// Иначе собираем из отдельных переменных (формат платформы)
	host := getEnv("POSTGRESQL_HOST", "")
	port := getEnv("POSTGRESQL_PORT", "5432")
	user := getEnv("POSTGRESQL_USER", "")
	password := getEnv("POSTGRESQL_PASSWORD", "")
	dbname := getEnv("POSTGRESQL_DBNAME", "")

	if host != "" && user != "" && dbname != "" {
		// url.UserPassword экранирует спецсимволы в логине и пароле
		userInfo := url.UserPassword(user, password)
		return fmt.Sprintf("postgres://%s@%s:%s/%s?sslmode=disable",
			userInfo.String(), host, port, dbname)
	}

	return ""
}

func parseDuration(v string) (time.Duration, error) {
	dur, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: не удалось распарсить длительность %q: %w", v, err)
	}
	return dur, nil
}

func parseInt64(v string) (int64, error) {
	num, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: не удалось распарсить число %q: %w", v, err)
	}
	return num, nil
}

func parseInt(v string) (int, error) {
	num, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: не удалось распарсить число %q: %w", v, err)
	}
	return num, nil
}
