package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"

	defaultDatabase       = "shopping-list"
	productionURL         = "mongodb://localhost/shopping-list"
	developmentURL        = "mongodb://localhost/shopping-list-dev"
	productionEnvironment = "production"
)

// Config holds application configuration. It is built once by LoadConfig and
// handed to the components that need it.
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Store     string `validate:"oneof=mongo memory"`
	StaticDir string
	LogLevel  string
}

type ServerConfig struct {
	Port         string `validate:"required,numeric"`
	Host         string
	Environment  string `validate:"required"`
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type MongoDBConfig struct {
	URI             string        `validate:"required"`
	Database        string        `validate:"required"`
	Timeout         time.Duration `validate:"gt=0"`
	ConnectAttempts int           `validate:"min=1"`
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Addr returns host:port, or "" when Redis is not configured.
func (r RedisConfig) Addr() string {
	if r.Host == "" {
		return ""
	}
	return r.Host + ":" + r.Port
}

type RateLimitConfig struct {
	Enabled       bool
	UseRedis      bool
	RPS           float64 `validate:"gte=0"`
	Burst         int     `validate:"gte=0"`
	WindowSeconds int     `validate:"gte=1"`
}

type overrides struct {
	databaseURL string
	port        string
}

// Override takes precedence over both the environment and the defaults.
type Override func(*overrides)

// WithDatabaseURL pins the store connection string.
func WithDatabaseURL(url string) Override {
	return func(o *overrides) { o.databaseURL = url }
}

// WithPort pins the listen port.
func WithPort(port string) Override {
	return func(o *overrides) { o.port = port }
}

// LoadConfig loads configuration from overrides, environment variables and a
// .env file, in that order of precedence, then validates it.
func LoadConfig(opts ...Override) (*Config, error) {
	_ = godotenv.Load(".env")

	var ov overrides
	for _, opt := range opts {
		opt(&ov)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("ITEM_STORE", StoreMongo)
	v.SetDefault("STATIC_DIR", "public")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MONGODB_TIMEOUT", 10)
	v.SetDefault("MONGODB_CONNECT_ATTEMPTS", 5)
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)
	v.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 1)

	env := v.GetString("APP_ENV")
	uri := firstNonEmpty(ov.databaseURL, v.GetString("DATABASE_URL"), v.GetString("MONGODB_URI"), defaultURL(env))
	port := firstNonEmpty(ov.port, v.GetString("PORT"))

	cfg := &Config{
		Server: ServerConfig{
			Port:         port,
			Host:         v.GetString("SERVER_HOST"),
			Environment:  env,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		MongoDB: MongoDBConfig{
			URI:             uri,
			Database:        firstNonEmpty(v.GetString("MONGODB_DATABASE"), databaseFromURI(uri), defaultDatabase),
			Timeout:         time.Duration(v.GetInt("MONGODB_TIMEOUT")) * time.Second,
			ConnectAttempts: v.GetInt("MONGODB_CONNECT_ATTEMPTS"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Enabled:       v.GetBool("RATE_LIMIT_ENABLED"),
			UseRedis:      v.GetBool("RATE_LIMIT_USE_REDIS"),
			RPS:           v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         v.GetInt("RATE_LIMIT_BURST"),
			WindowSeconds: v.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
		Store:     strings.ToLower(v.GetString("ITEM_STORE")),
		StaticDir: v.GetString("STATIC_DIR"),
		LogLevel:  v.GetString("LOG_LEVEL"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

func defaultURL(env string) string {
	if env == productionEnvironment {
		return productionURL
	}
	return developmentURL
}

// databaseFromURI returns the database path of a mongodb:// URI, or "" when
// the URI has none or cannot be parsed.
func databaseFromURI(uri string) string {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return ""
	}
	return cs.Database
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
