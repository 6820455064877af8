package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Rates    Rates    `validate:"required"`
	Sessions Sessions `validate:"required"`
	Admin    Admin

	// CatalogPath overrides the embedded catalog when set.
	CatalogPath string `validate:"omitempty,filepath"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID      string   `validate:"required"`
	Brokers      []string `validate:"required,min=1,dive,hostname_port"`
	UpdatesTopic string   `validate:"required"`
	RepliesTopic string   `validate:"required,nefield=UpdatesTopic"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`

	// Workers is the number of users whose updates are handled at once.
	Workers int `validate:"gte=1"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`

	AutoMigrate bool
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Rates struct {
	CacheCapacity int           `validate:"gte=1"`
	CacheTTL      time.Duration `validate:"gt=0"`

	// Timezone defines the calendar day a rate is valid for.
	Timezone string `validate:"required,timezone"`

	ProviderURL     string        `validate:"required,url"`
	ProviderTimeout time.Duration `validate:"gt=0"`

	WarmUpSchedule string `validate:"required,cron"`
}

type Sessions struct {
	Capacity    int           `validate:"gte=1"`
	IdleTimeout time.Duration `validate:"gt=0"`
}

type Admin struct {
	UserIDs []int64 `validate:"dive,gt=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID:      env("KAFKA_GROUP_ID", "kory-delivery"),
			UpdatesTopic: env("KAFKA_UPDATES_TOPIC", "bot-updates"),
			RepliesTopic: env("KAFKA_REPLIES_TOPIC", "bot-replies"),
			Brokers:      strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
			Workers:       envInt("KAFKA_WORKERS", 16),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "orders"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),

			AutoMigrate: envBool("POSTGRES_AUTO_MIGRATE", true),
		},

		Rates: Rates{
			CacheCapacity: envInt("RATES_CACHE_CAPACITY", 256),
			CacheTTL:      envDuration("RATES_CACHE_TTL", 24*time.Hour),
			Timezone:      env("RATES_TIMEZONE", "Europe/Moscow"),

			ProviderURL:     env("RATE_PROVIDER_URL", "https://www.cbr-xml-daily.ru/daily_json.js"),
			ProviderTimeout: envDuration("RATE_PROVIDER_TIMEOUT", 5*time.Second),

			WarmUpSchedule: env("RATES_WARMUP_SCHEDULE", "5 0 * * *"),
		},

		Sessions: Sessions{
			Capacity:    envInt("SESSION_CAPACITY", 10000),
			IdleTimeout: envDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
		},

		Admin: Admin{
			UserIDs: envInt64s("ADMIN_USER_IDS"),
		},

		CatalogPath: env("CATALOG_PATH", ""),
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// Location returns the timezone rates are dated in. Call after Validate.
func (r Rates) Location() *time.Location {
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

// envInt64s parses a comma separated list, skipping malformed entries.
func envInt64s(key string) []int64 {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return nil
	}
	var ids []int64
	for _, part := range strings.Split(value, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
